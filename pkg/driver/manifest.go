// Package driver wires parsed scripts into the interpreter for embedding
// hosts: it loads the yaml package manifest and decodes script files from the
// JSON interchange format.
package driver

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Manifest models package.yml: project metadata plus named script targets.
type Manifest struct {
	Path    string
	Name    string
	Version string
	// Targets maps a target name to the script file it runs, relative to the
	// manifest directory. TargetOrder preserves declaration order so the
	// first target is the default.
	Targets     map[string]string
	TargetOrder []string
}

type manifestDoc struct {
	Name    string    `yaml:"name"`
	Version string    `yaml:"version"`
	Targets yaml.Node `yaml:"targets"`
}

// LoadManifest parses a package.yml from disk.
func LoadManifest(path string) (*Manifest, error) {
	if path == "" {
		return nil, fmt.Errorf("manifest: empty path")
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("manifest: resolve %s: %w", path, err)
	}
	data, err := os.ReadFile(abs)
	if err != nil {
		return nil, err
	}
	var doc manifestDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("manifest: parse %s: %w", path, err)
	}
	if strings.TrimSpace(doc.Name) == "" {
		return nil, fmt.Errorf("manifest: %s is missing name", path)
	}
	manifest := &Manifest{
		Path:    abs,
		Name:    doc.Name,
		Version: doc.Version,
		Targets: map[string]string{},
	}
	if err := decodeTargets(&doc.Targets, manifest); err != nil {
		return nil, fmt.Errorf("manifest: %s: %w", path, err)
	}
	return manifest, nil
}

// decodeTargets walks the yaml mapping node directly so target declaration
// order survives (map decoding would lose it).
func decodeTargets(node *yaml.Node, manifest *Manifest) error {
	if node == nil || node.Kind == 0 {
		return nil
	}
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("targets must be a mapping")
	}
	for idx := 0; idx+1 < len(node.Content); idx += 2 {
		key := node.Content[idx]
		value := node.Content[idx+1]
		if value.Kind != yaml.ScalarNode || strings.TrimSpace(value.Value) == "" {
			return fmt.Errorf("target %s must name a script file", key.Value)
		}
		if _, exists := manifest.Targets[key.Value]; exists {
			return fmt.Errorf("duplicate target %s", key.Value)
		}
		manifest.Targets[key.Value] = value.Value
		manifest.TargetOrder = append(manifest.TargetOrder, key.Value)
	}
	return nil
}

// DefaultTarget returns the first declared target.
func (m *Manifest) DefaultTarget() (string, error) {
	if len(m.TargetOrder) == 0 {
		return "", fmt.Errorf("manifest %s declares no targets", m.Path)
	}
	return m.TargetOrder[0], nil
}

// TargetScript resolves the script path for a target relative to the
// manifest directory.
func (m *Manifest) TargetScript(name string) (string, error) {
	rel, ok := m.Targets[name]
	if !ok {
		names := make([]string, 0, len(m.Targets))
		for target := range m.Targets {
			names = append(names, target)
		}
		sort.Strings(names)
		return "", fmt.Errorf("manifest %s has no target %q (have %s)", m.Path, name, strings.Join(names, ", "))
	}
	return filepath.Join(filepath.Dir(m.Path), rel), nil
}
