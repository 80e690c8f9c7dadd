package boolexpr

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnbalancedParentheses = errors.New("unbalanced parentheses")
	ErrUnmatchedParenthesis  = errors.New("unmatched closing parenthesis")
	ErrEmptyParentheses      = errors.New("empty parentheses")
	ErrOperatorConflict      = errors.New("conflicting operators")
	ErrUnexpectedToken       = errors.New("unexpected token")
	ErrUnexpectedEnd         = errors.New("unexpected end of expression")
	ErrUnknownIdentifier     = errors.New("unknown identifier")
)

// ParseError describes why an expression could not be turned into a tree.
// Position is the index of the offending token in Expression, or
// len(Expression) when the expression ended too early.
type ParseError struct {
	Err        error
	Token      string
	Position   int
	Expression []string
}

// NewParseError creates a ParseError of the given kind pointing at the token
// at position in expression.
func NewParseError(kind error, expression []string, position int) error {
	token := ""
	if position < len(expression) {
		token = expression[position]
	}
	return &ParseError{
		Err:        kind,
		Token:      token,
		Position:   position,
		Expression: expression,
	}
}

func (e *ParseError) Error() string {
	if e.Token == "" {
		return fmt.Sprintf("%v in <%s>", e.Err, strings.Join(e.Expression, " "))
	}
	return fmt.Sprintf("%v '%s' at position %d in <%s>", e.Err, e.Token, e.Position, strings.Join(e.Expression, " "))
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// UnboundNameError is returned when a referenced name has no value in the
// context passed to Solve.
type UnboundNameError struct {
	Name string
}

// NewUnboundNameError creates a new UnboundNameError with the given name.
func NewUnboundNameError(name string) error {
	return &UnboundNameError{Name: name}
}

func (e UnboundNameError) Error() string {
	return fmt.Sprintf("unbound name: %s", e.Name)
}

// MalformedNodeError is returned when an operator node has the wrong number
// of children.
type MalformedNodeError struct {
	Operator string
	Children int
}

func NewMalformedNodeError(operator string, children int) error {
	return &MalformedNodeError{Operator: operator, Children: children}
}

func (e MalformedNodeError) Error() string {
	return fmt.Sprintf("malformed node: '%s' with %d children", e.Operator, e.Children)
}
