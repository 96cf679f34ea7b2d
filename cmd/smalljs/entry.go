package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"smalljs/interpreter-go/pkg/driver"
	"smalljs/interpreter-go/pkg/interpreter"
)

const manifestName = "package.yml"

var errManifestNotFound = errors.New("package.yml not found")

// runEntry executes a script given either an explicit path or a manifest
// target name; with no arguments it runs the manifest's default target.
func runEntry(args []string) int {
	if len(args) > 1 {
		fmt.Fprintf(os.Stderr, "unexpected arguments: %s\n", strings.Join(args[1:], " "))
		return 1
	}

	scriptPath, err := resolveScriptPath(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return 1
	}

	script, err := driver.LoadScript(scriptPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return 1
	}

	if err := interpreter.Interpret(script, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return 1
	}
	return 0
}

func resolveScriptPath(args []string) (string, error) {
	if len(args) == 1 && looksLikePathCandidate(args[0]) {
		return args[0], nil
	}

	manifest, err := loadManifestFrom(".")
	if err != nil {
		if errors.Is(err, errManifestNotFound) {
			if len(args) == 1 {
				// Not a path on disk and no manifest to resolve it against.
				return "", fmt.Errorf("no such script %q and no %s nearby", args[0], manifestName)
			}
			return "", fmt.Errorf("run requires a script file or a %s with targets", manifestName)
		}
		return "", err
	}

	target := ""
	if len(args) == 1 {
		target = args[0]
	} else {
		target, err = manifest.DefaultTarget()
		if err != nil {
			return "", err
		}
	}
	return manifest.TargetScript(target)
}

func looksLikePathCandidate(arg string) bool {
	if strings.ContainsAny(arg, "/\\") || strings.HasSuffix(arg, ".json") {
		return true
	}
	_, err := os.Stat(arg)
	return err == nil
}

func loadManifestFrom(dir string) (*driver.Manifest, error) {
	path := filepath.Join(dir, manifestName)
	manifest, err := driver.LoadManifest(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, errManifestNotFound
		}
		return nil, fmt.Errorf("failed to load manifest: %w", err)
	}
	return manifest, nil
}
