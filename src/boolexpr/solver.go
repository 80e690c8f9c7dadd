package boolexpr

import (
	"fmt"
)

// Context maps every variable and identifier in scope to its value.
type Context map[string]bool

// Solve evaluates the tree rooted at n using the values in context.
func Solve(n Node, context Context) (bool, error) {
	switch n := n.(type) {
	case *And:
		if len(n.Children) < 2 {
			return false, NewMalformedNodeError("and", len(n.Children))
		}
		for _, child := range n.Children {
			result, err := Solve(child, context)
			if err != nil {
				return false, fmt.Errorf("failed solving AND sub-expression: %w", err)
			}
			if !result {
				return false, nil
			}
		}
		return true, nil

	case *Or:
		if len(n.Children) < 2 {
			return false, NewMalformedNodeError("or", len(n.Children))
		}
		for _, child := range n.Children {
			result, err := Solve(child, context)
			if err != nil {
				return false, fmt.Errorf("failed solving OR sub-expression: %w", err)
			}
			if result {
				return true, nil
			}
		}
		return false, nil

	case *Not:
		if n.Child == nil {
			return false, NewMalformedNodeError("not", 0)
		}
		result, err := Solve(n.Child, context)
		if err != nil {
			return false, fmt.Errorf("failed solving NOT sub-expression: %w", err)
		}
		return !result, nil

	case Literal:
		return bool(n), nil

	case Ref:
		value, ok := context[string(n)]
		if !ok {
			return false, NewUnboundNameError(string(n))
		}
		return value, nil
	}

	return false, fmt.Errorf("unknown node type: %T", n)
}
