package boolexpr

const (
	True       = "True"
	False      = "False"
	AndKeyword = "and"
	OrKeyword  = "or"
	NotKeyword = "not"
	LeftParen  = "("
	RightParen = ")"

	// Equals separates an assignment target from its expression.
	Equals = "="
)

// Scope tells the parser which names may be referenced by an expression.
type Scope interface {
	IsDeclared(name string) bool
}

// Parse validates an expression and builds its canonical tree in one pass.
// The expression must already be split into words by the compiler's lexer, so
// any token that is not a keyword or a parenthesis is taken to be a name.
//
// Every flat level (the tokens between a pair of matching parentheses) is
// either a single operand, a chain of operands joined by one kind of binary
// connective, or a run of `not` followed by exactly one operand. A
// parenthesized group counts as one operand.
//
// Example usage:
//
//	tree, err := boolexpr.Parse([]string{"x", "and", "(", "y", "or", "z", ")"}, scope)
//	if err != nil {
//		return fmt.Errorf("failed to parse expression: %w", err)
//	}
func Parse(expression []string, scope Scope) (Node, error) {
	p := &parser{expression: expression, scope: scope}
	return p.parseLevel(0, len(expression))
}

type parser struct {
	expression []string
	scope      Scope
}

type scanState int

const (
	expectOperand scanState = iota
	afterOperand
	afterConnective
	afterNot
)

func (p *parser) fail(kind error, position int) error {
	return NewParseError(kind, p.expression, position)
}

// parseLevel builds the tree for expression[start:end].
func (p *parser) parseLevel(start, end int) (Node, error) {
	state := expectOperand
	connective := ""
	negations := 0
	var operands []Node

	addOperand := func(operand Node, position int) error {
		if state == afterOperand {
			return p.fail(ErrUnexpectedToken, position)
		}
		for ; negations > 0; negations-- {
			operand = NewNot(operand)
		}
		operands = append(operands, operand)
		state = afterOperand
		return nil
	}

	for i := start; i < end; i++ {
		token := p.expression[i]

		switch token {
		case LeftParen:
			if state == afterOperand {
				return nil, p.fail(ErrUnexpectedToken, i)
			}
			closing, err := p.matchingParen(i, end)
			if err != nil {
				return nil, err
			}
			if closing == i+1 {
				return nil, p.fail(ErrEmptyParentheses, i)
			}
			sub, err := p.parseLevel(i+1, closing)
			if err != nil {
				return nil, err
			}
			if err := addOperand(sub, i); err != nil {
				return nil, err
			}
			i = closing

		case RightParen:
			return nil, p.fail(ErrUnmatchedParenthesis, i)

		case NotKeyword:
			if state == afterOperand {
				return nil, p.fail(ErrUnexpectedToken, i)
			}
			if connective != "" && connective != NotKeyword {
				return nil, p.fail(ErrOperatorConflict, i)
			}
			connective = NotKeyword
			negations++
			state = afterNot

		case AndKeyword, OrKeyword:
			if state != afterOperand {
				return nil, p.fail(ErrUnexpectedToken, i)
			}
			if connective != "" && connective != token {
				return nil, p.fail(ErrOperatorConflict, i)
			}
			connective = token
			state = afterConnective

		case True, False:
			if err := addOperand(Literal(token == True), i); err != nil {
				return nil, err
			}

		default:
			if token == Equals {
				return nil, p.fail(ErrUnexpectedToken, i)
			}
			if !p.scope.IsDeclared(token) {
				return nil, p.fail(ErrUnknownIdentifier, i)
			}
			if err := addOperand(Ref(token), i); err != nil {
				return nil, err
			}
		}
	}

	if state != afterOperand {
		return nil, p.fail(ErrUnexpectedEnd, end)
	}

	switch connective {
	case AndKeyword:
		return NewAnd(operands...), nil
	case OrKeyword:
		return NewOr(operands...), nil
	}
	// a single operand, possibly already wrapped in its negations
	return operands[0], nil
}

// matchingParen returns the index of the parenthesis closing the one at open.
func (p *parser) matchingParen(open, end int) (int, error) {
	depth := 0
	for j := open; j < end; j++ {
		switch p.expression[j] {
		case LeftParen:
			depth++
		case RightParen:
			depth--
			if depth == 0 {
				return j, nil
			}
		}
	}
	return 0, p.fail(ErrUnbalancedParentheses, open)
}
