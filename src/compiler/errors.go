package compiler

import (
	"errors"
	"fmt"

	"github.com/eriklarko/truth-table/src/boolexpr"
)

var (
	ErrInvalidCharacter = errors.New("invalid character")
	ErrDigitLedWord     = errors.New("invalid word starting with a digit")

	ErrInvalidInstruction = errors.New("invalid instruction")
	ErrDuplicateName      = errors.New("name already declared")
	ErrReservedName       = errors.New("reserved name")
	ErrTooManyVariables   = errors.New("too many variables declared")

	// Expression errors are shared with boolexpr so errors.Is works on
	// anything Compile returns.
	ErrUnknownIdentifier     = boolexpr.ErrUnknownIdentifier
	ErrUnbalancedParentheses = boolexpr.ErrUnbalancedParentheses
	ErrUnmatchedParenthesis  = boolexpr.ErrUnmatchedParenthesis
	ErrEmptyParentheses      = boolexpr.ErrEmptyParentheses
	ErrOperatorConflict      = boolexpr.ErrOperatorConflict
	ErrUnexpectedToken       = boolexpr.ErrUnexpectedToken
	ErrUnexpectedEnd         = boolexpr.ErrUnexpectedEnd
)

// LexError is returned when the source text contains something that is not a
// token.
type LexError struct {
	Err    error
	Char   rune
	Line   int
	Column int
}

func NewLexError(kind error, char rune, line, column int) error {
	return &LexError{Err: kind, Char: char, Line: line, Column: column}
}

func (e *LexError) Error() string {
	return fmt.Sprintf("%d:%d: %v: %q", e.Line, e.Column, e.Err, e.Char)
}

func (e *LexError) Unwrap() error {
	return e.Err
}

// InstructionError is returned when an instruction fails validation. Token is
// the offending token, or the zero Token if the instruction as a whole is
// wrong. A Token with a position but no text marks the end of the instruction.
type InstructionError struct {
	Err         error
	Instruction Instruction
	Token       Token
}

func NewInstructionError(err error, instruction Instruction, token Token) error {
	return &InstructionError{Err: err, Instruction: instruction, Token: token}
}

func (e *InstructionError) Error() string {
	if e.Token.Line == 0 {
		return fmt.Sprintf("instruction %d <%s>: %v", e.Instruction.Index+1, e.Instruction, e.Err)
	}

	var parseErr *boolexpr.ParseError
	if e.Token.Text == "" || errors.As(e.Err, &parseErr) {
		// parse errors already name their token
		return fmt.Sprintf("%d:%d: instruction %d <%s>: %v",
			e.Token.Line, e.Token.Column, e.Instruction.Index+1, e.Instruction, e.Err)
	}
	return fmt.Sprintf("%d:%d: instruction %d <%s>: %v: '%s'",
		e.Token.Line, e.Token.Column, e.Instruction.Index+1, e.Instruction, e.Err, e.Token.Text)
}

func (e *InstructionError) Unwrap() error {
	return e.Err
}
