package driver

import (
	"fmt"
	"os"

	"smalljs/interpreter-go/pkg/ast"
)

// LoadScript reads a script file in the JSON interchange format and decodes
// it into an AST.
func LoadScript(path string) (*ast.Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	script, err := ast.DecodeScript(data)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return script, nil
}
