package compiler

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/eriklarko/truth-table/src/boolexpr"
	"github.com/eriklarko/truth-table/src/truthtable"
	"github.com/samber/lo"
)

// MaxVariables is the largest number of variables a program may declare.
const MaxVariables = 64

const (
	VarKeyword      = "var"
	ShowKeyword     = "show"
	ShowOnesKeyword = "show_ones"
)

// ReservedWords can never be declared as a variable or identifier.
var ReservedWords = []string{
	boolexpr.AndKeyword,
	boolexpr.OrKeyword,
	boolexpr.NotKeyword,
	VarKeyword,
	ShowKeyword,
	ShowOnesKeyword,
	boolexpr.True,
	boolexpr.False,
	boolexpr.LeftParen,
	boolexpr.RightParen,
	Equals,
}

func isReserved(name string) bool {
	return lo.Contains(ReservedWords, name)
}

// CompilationState holds the variables and identifiers declared so far, in
// declaration order. Both live in one namespace. It is only ever appended to
// while instructions are processed.
type CompilationState struct {
	variables   []string
	identifiers []truthtable.Identifier
	declared    map[string]struct{}
}

func NewCompilationState() *CompilationState {
	return &CompilationState{
		declared: make(map[string]struct{}),
	}
}

func (s *CompilationState) Variables() []string {
	return s.variables
}

func (s *CompilationState) Identifiers() []truthtable.Identifier {
	return s.identifiers
}

// IsDeclared reports whether name is a declared variable or identifier.
func (s *CompilationState) IsDeclared(name string) bool {
	_, ok := s.declared[name]
	return ok
}

func (s *CompilationState) checkFresh(name string) error {
	if isReserved(name) {
		return ErrReservedName
	}
	if s.IsDeclared(name) {
		return ErrDuplicateName
	}
	return nil
}

func (s *CompilationState) declareVariable(name string) error {
	if err := s.checkFresh(name); err != nil {
		return err
	}
	if len(s.variables) >= MaxVariables {
		return ErrTooManyVariables
	}
	s.variables = append(s.variables, name)
	s.declared[name] = struct{}{}
	return nil
}

func (s *CompilationState) assign(name string, expr boolexpr.Node) {
	s.identifiers = append(s.identifiers, truthtable.Identifier{Name: name, Expr: expr})
	s.declared[name] = struct{}{}
}

// Compile validates the whole program and builds the tree of every
// assignment. Nothing is printed: the returned Program is run separately, so
// an invalid program never produces partial output.
func Compile(source string) (*Program, error) {
	slog.Debug("compiling input", "bytes", len(source))

	tokens, err := Tokenize(source)
	if err != nil {
		return nil, fmt.Errorf("failed to tokenize input: %w", err)
	}
	slog.Debug("tokenized input", "tokens", len(tokens))

	instructions := SplitInstructions(tokens)
	slog.Debug("split instructions", "instructions", len(instructions))

	program := &Program{state: NewCompilationState()}
	for _, instruction := range instructions {
		if err := program.process(instruction); err != nil {
			return nil, err
		}
	}

	return program, nil
}

func (p *Program) process(instruction Instruction) error {
	tokens := instruction.Tokens
	if len(tokens) < 2 {
		return NewInstructionError(ErrInvalidInstruction, instruction, Token{})
	}

	switch {
	case tokens[0].Text == VarKeyword:
		slog.Debug("declaration", "instruction", instruction.String())
		return p.declare(instruction)

	case tokens[1].Text == Equals:
		slog.Debug("assignment", "instruction", instruction.String())
		return p.assign(instruction)

	case tokens[0].Text == ShowKeyword || tokens[0].Text == ShowOnesKeyword:
		slog.Debug("show", "instruction", instruction.String())
		return p.show(instruction)
	}

	return NewInstructionError(ErrInvalidInstruction, instruction, Token{})
}

func (p *Program) declare(instruction Instruction) error {
	for _, token := range instruction.Tokens[1:] {
		if err := p.state.declareVariable(token.Text); err != nil {
			return NewInstructionError(err, instruction, token)
		}
	}
	return nil
}

func (p *Program) assign(instruction Instruction) error {
	target := instruction.Tokens[0]
	if len(instruction.Tokens) < 3 {
		return NewInstructionError(ErrInvalidInstruction, instruction, Token{})
	}
	if err := p.state.checkFresh(target.Text); err != nil {
		return NewInstructionError(err, instruction, target)
	}

	rhs := instruction.Tokens[2:]
	expr, err := boolexpr.Parse(instruction.Words()[2:], p.state)
	if err != nil {
		return NewInstructionError(err, instruction, offendingToken(err, rhs))
	}

	p.state.assign(target.Text, expr)
	return nil
}

// offendingToken maps a parse error back to the source token it points at.
func offendingToken(err error, expression []Token) Token {
	var parseErr *boolexpr.ParseError
	if errors.As(err, &parseErr) && parseErr.Position < len(expression) {
		return expression[parseErr.Position]
	}
	// the expression ended early, point just past its last token
	last := expression[len(expression)-1]
	return Token{Line: last.Line, Column: last.Column + len(last.Text)}
}

func (p *Program) show(instruction Instruction) error {
	names := instruction.Tokens[1:]
	for _, name := range names {
		if isReserved(name.Text) || !p.state.IsDeclared(name.Text) {
			return NewInstructionError(ErrUnknownIdentifier, instruction, name)
		}
	}

	p.displays = append(p.displays, Display{
		Names:       instruction.Words()[1:],
		OnlyOnes:    instruction.Tokens[0].Text == ShowOnesKeyword,
		Variables:   len(p.state.variables),
		Identifiers: len(p.state.identifiers),
	})
	return nil
}
