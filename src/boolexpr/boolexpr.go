package boolexpr

import (
	"fmt"
	"slices"
	"strings"

	"github.com/samber/lo"
)

// Node is a boolean expression tree node. The set of implementations is
// closed: And, Or, Not, Literal and Ref.
type Node interface {
	// Depth is 0 for leaves and 1 + the smallest child depth for operators.
	Depth() int
	String() string

	node()
}

// And is true when every child is true.
type And struct {
	Children []Node
}

// Or is true when at least one child is true.
type Or struct {
	Children []Node
}

// Not is true when its child is false.
type Not struct {
	Child Node
}

// Literal is one of the keywords True or False.
type Literal bool

// Ref references a variable or a previously assigned identifier by name.
type Ref string

// NewAnd creates a conjunction with its children in canonical order.
func NewAnd(children ...Node) *And {
	return &And{Children: canonicalOrder(children)}
}

// NewOr creates a disjunction with its children in canonical order.
func NewOr(children ...Node) *Or {
	return &Or{Children: canonicalOrder(children)}
}

// NewNot creates the negation of child.
func NewNot(child Node) *Not {
	return &Not{Child: child}
}

// canonicalOrder sorts children by ascending depth, keeping the source
// left-to-right order between children of equal depth.
func canonicalOrder(children []Node) []Node {
	sorted := slices.Clone(children)
	slices.SortStableFunc(sorted, func(a, b Node) int {
		return a.Depth() - b.Depth()
	})
	return sorted
}

func operatorDepth(children []Node) int {
	return 1 + lo.Min(lo.Map(children, func(child Node, _ int) int {
		return child.Depth()
	}))
}

func (n *And) Depth() int { return operatorDepth(n.Children) }
func (n *Or) Depth() int { return operatorDepth(n.Children) }
func (n *Not) Depth() int { return 1 + n.Child.Depth() }
func (n Literal) Depth() int { return 0 }
func (n Ref) Depth() int { return 0 }

func (n *And) String() string { return joinChildren("and", n.Children) }
func (n *Or) String() string { return joinChildren("or", n.Children) }
func (n *Not) String() string { return fmt.Sprintf("not %s", parenthesize(n.Child)) }

func (n Literal) String() string {
	if n {
		return True
	}
	return False
}

func (n Ref) String() string { return string(n) }

func joinChildren(operator string, children []Node) string {
	parts := lo.Map(children, func(child Node, _ int) string {
		return parenthesize(child)
	})
	return strings.Join(parts, " "+operator+" ")
}

func parenthesize(n Node) string {
	if n.Depth() == 0 {
		return n.String()
	}
	if _, ok := n.(*Not); ok {
		return n.String()
	}
	return "(" + n.String() + ")"
}

func (*And) node() {}
func (*Or) node() {}
func (*Not) node() {}
func (Literal) node() {}
func (Ref) node() {}
