package ast

import (
	"encoding/json"
	"fmt"
)

// DecodeScript parses the JSON interchange form of a smalljs program:
// {"body": {"type": "Block", "exprs": [...], "line": N}}. Every node object
// carries a "type" discriminator, its per-variant fields, and a "line".
func DecodeScript(data []byte) (*Script, error) {
	var doc struct {
		Body json.RawMessage `json:"body"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode script: %w", err)
	}
	if len(doc.Body) == 0 {
		return nil, fmt.Errorf("decode script: missing body")
	}
	node, err := decodeExpr(doc.Body)
	if err != nil {
		return nil, err
	}
	block, ok := node.(*Block)
	if !ok {
		return nil, fmt.Errorf("decode script: body must be a Block, got %T", node)
	}
	return &Script{Body: block}, nil
}

func decodeExpr(raw json.RawMessage) (Expr, error) {
	var node map[string]json.RawMessage
	if err := json.Unmarshal(raw, &node); err != nil {
		return nil, fmt.Errorf("decode node: %w", err)
	}
	typ, err := decodeString(node, "type")
	if err != nil {
		return nil, err
	}
	line := decodeLine(node)
	switch typ {
	case "Block":
		exprs, err := decodeExprList(node, "exprs")
		if err != nil {
			return nil, fmt.Errorf("decode Block: %w", err)
		}
		return &Block{Exprs: exprs, LineNo: line}, nil
	case "Literal":
		value, err := decodeLiteralValue(node)
		if err != nil {
			return nil, fmt.Errorf("decode Literal: %w", err)
		}
		return &Literal{Value: value, LineNo: line}, nil
	case "Call":
		qualifier, err := decodeChild(node, "qualifier")
		if err != nil {
			return nil, fmt.Errorf("decode Call: %w", err)
		}
		args, err := decodeExprList(node, "args")
		if err != nil {
			return nil, fmt.Errorf("decode Call: %w", err)
		}
		return &Call{Qualifier: qualifier, Args: args, LineNo: line}, nil
	case "Identifier":
		name, err := decodeString(node, "name")
		if err != nil {
			return nil, fmt.Errorf("decode Identifier: %w", err)
		}
		return &Identifier{Name: name, LineNo: line}, nil
	case "VarAssignment":
		name, err := decodeString(node, "name")
		if err != nil {
			return nil, fmt.Errorf("decode VarAssignment: %w", err)
		}
		expr, err := decodeChild(node, "expr")
		if err != nil {
			return nil, fmt.Errorf("decode VarAssignment: %w", err)
		}
		return &VarAssignment{
			Name:        name,
			Expr:        expr,
			Declaration: decodeBool(node, "declaration"),
			LineNo:      line,
		}, nil
	case "Fun":
		name, err := decodeString(node, "name")
		if err != nil {
			return nil, fmt.Errorf("decode Fun: %w", err)
		}
		params, err := decodeStringList(node, "parameters")
		if err != nil {
			return nil, fmt.Errorf("decode Fun: %w", err)
		}
		body, err := decodeBlock(node, "body")
		if err != nil {
			return nil, fmt.Errorf("decode Fun: %w", err)
		}
		return &Fun{
			Name:       name,
			Parameters: params,
			TopLevel:   decodeBool(node, "toplevel"),
			Body:       body,
			LineNo:     line,
		}, nil
	case "Return":
		var expr Expr
		if _, ok := node["expr"]; ok {
			child, err := decodeChild(node, "expr")
			if err != nil {
				return nil, fmt.Errorf("decode Return: %w", err)
			}
			expr = child
		}
		return &Return{Expr: expr, LineNo: line}, nil
	case "If":
		condition, err := decodeChild(node, "condition")
		if err != nil {
			return nil, fmt.Errorf("decode If: %w", err)
		}
		trueBlock, err := decodeBlock(node, "trueBlock")
		if err != nil {
			return nil, fmt.Errorf("decode If: %w", err)
		}
		// An if without an else carries an empty false block.
		falseBlock := &Block{LineNo: line}
		if _, ok := node["falseBlock"]; ok {
			falseBlock, err = decodeBlock(node, "falseBlock")
			if err != nil {
				return nil, fmt.Errorf("decode If: %w", err)
			}
		}
		return &If{Condition: condition, TrueBlock: trueBlock, FalseBlock: falseBlock, LineNo: line}, nil
	case "ObjectLiteral":
		fields, err := decodeObjectFields(node)
		if err != nil {
			return nil, fmt.Errorf("decode ObjectLiteral: %w", err)
		}
		return &ObjectLiteral{Fields: fields, LineNo: line}, nil
	case "FieldAccess":
		receiver, err := decodeChild(node, "receiver")
		if err != nil {
			return nil, fmt.Errorf("decode FieldAccess: %w", err)
		}
		name, err := decodeString(node, "name")
		if err != nil {
			return nil, fmt.Errorf("decode FieldAccess: %w", err)
		}
		return &FieldAccess{Receiver: receiver, Name: name, LineNo: line}, nil
	case "FieldAssignment":
		receiver, err := decodeChild(node, "receiver")
		if err != nil {
			return nil, fmt.Errorf("decode FieldAssignment: %w", err)
		}
		name, err := decodeString(node, "name")
		if err != nil {
			return nil, fmt.Errorf("decode FieldAssignment: %w", err)
		}
		expr, err := decodeChild(node, "expr")
		if err != nil {
			return nil, fmt.Errorf("decode FieldAssignment: %w", err)
		}
		return &FieldAssignment{Receiver: receiver, Name: name, Expr: expr, LineNo: line}, nil
	case "MethodCall":
		receiver, err := decodeChild(node, "receiver")
		if err != nil {
			return nil, fmt.Errorf("decode MethodCall: %w", err)
		}
		name, err := decodeString(node, "name")
		if err != nil {
			return nil, fmt.Errorf("decode MethodCall: %w", err)
		}
		args, err := decodeExprList(node, "args")
		if err != nil {
			return nil, fmt.Errorf("decode MethodCall: %w", err)
		}
		return &MethodCall{Receiver: receiver, Name: name, Args: args, LineNo: line}, nil
	default:
		return nil, fmt.Errorf("decode node: unknown type %q", typ)
	}
}

func decodeChild(node map[string]json.RawMessage, key string) (Expr, error) {
	raw, ok := node[key]
	if !ok {
		return nil, fmt.Errorf("missing %s", key)
	}
	return decodeExpr(raw)
}

func decodeBlock(node map[string]json.RawMessage, key string) (*Block, error) {
	child, err := decodeChild(node, key)
	if err != nil {
		return nil, err
	}
	block, ok := child.(*Block)
	if !ok {
		return nil, fmt.Errorf("%s must be a Block, got %T", key, child)
	}
	return block, nil
}

func decodeExprList(node map[string]json.RawMessage, key string) ([]Expr, error) {
	raw, ok := node[key]
	if !ok {
		return nil, nil
	}
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("%s: %w", key, err)
	}
	exprs := make([]Expr, 0, len(items))
	for _, item := range items {
		expr, err := decodeExpr(item)
		if err != nil {
			return nil, err
		}
		exprs = append(exprs, expr)
	}
	return exprs, nil
}

func decodeObjectFields(node map[string]json.RawMessage) ([]ObjectField, error) {
	raw, ok := node["fields"]
	if !ok {
		return nil, nil
	}
	var items []struct {
		Name  string          `json:"name"`
		Value json.RawMessage `json:"value"`
	}
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("fields: %w", err)
	}
	fields := make([]ObjectField, 0, len(items))
	for _, item := range items {
		value, err := decodeExpr(item.Value)
		if err != nil {
			return nil, err
		}
		fields = append(fields, ObjectField{Name: item.Name, Value: value})
	}
	return fields, nil
}

// decodeLiteralValue keeps the literal domain closed: int64 or string.
func decodeLiteralValue(node map[string]json.RawMessage) (any, error) {
	raw, ok := node["value"]
	if !ok {
		return nil, fmt.Errorf("missing value")
	}
	var num json.Number
	if err := json.Unmarshal(raw, &num); err == nil {
		n, err := num.Int64()
		if err != nil {
			return nil, fmt.Errorf("integer literal %s: %w", num, err)
		}
		return n, nil
	}
	var str string
	if err := json.Unmarshal(raw, &str); err == nil {
		return str, nil
	}
	return nil, fmt.Errorf("literal must be an integer or a string")
}

func decodeString(node map[string]json.RawMessage, key string) (string, error) {
	raw, ok := node[key]
	if !ok {
		return "", fmt.Errorf("missing %s", key)
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", fmt.Errorf("%s: %w", key, err)
	}
	return s, nil
}

func decodeStringList(node map[string]json.RawMessage, key string) ([]string, error) {
	raw, ok := node[key]
	if !ok {
		return nil, nil
	}
	var items []string
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("%s: %w", key, err)
	}
	return items, nil
}

func decodeBool(node map[string]json.RawMessage, key string) bool {
	raw, ok := node[key]
	if !ok {
		return false
	}
	var b bool
	if err := json.Unmarshal(raw, &b); err != nil {
		return false
	}
	return b
}

func decodeLine(node map[string]json.RawMessage) int {
	raw, ok := node["line"]
	if !ok {
		return 0
	}
	var line int
	if err := json.Unmarshal(raw, &line); err != nil {
		return 0
	}
	return line
}
