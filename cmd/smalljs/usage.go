package main

import (
	"fmt"
	"os"
)

func printUsage() {
	fmt.Fprintf(os.Stderr, `Usage: smalljs <command> [arguments]

Commands:
  run [script.json | target]  execute a script (JSON AST) or a manifest target;
                              with no argument, the default package.yml target
  version                     print the CLI version
  help                        show this message

Scripts are abstract syntax trees in the JSON interchange format produced by
an external parser; smalljs evaluates them and writes print output to stdout.
`)
}
