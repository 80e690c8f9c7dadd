package compiler

import (
	"strings"

	"github.com/samber/lo"
)

// Instruction is the list of tokens between two semicolons. Index is the
// position of the instruction in the program, starting at 0.
type Instruction struct {
	Index  int
	Tokens []Token
}

// Words returns the text of every token in the instruction.
func (i Instruction) Words() []string {
	return lo.Map(i.Tokens, func(token Token, _ int) string {
		return token.Text
	})
}

func (i Instruction) String() string {
	return strings.Join(i.Words(), " ")
}

// SplitInstructions groups tokens into instructions separated by ';'. The
// semicolons are dropped. A final instruction without a terminating ';' is
// kept unless it is empty.
func SplitInstructions(tokens []Token) []Instruction {
	var instructions []Instruction
	var buffer []Token

	for _, token := range tokens {
		if token.Text == Semicolon {
			instructions = append(instructions, Instruction{Index: len(instructions), Tokens: buffer})
			buffer = nil
			continue
		}
		buffer = append(buffer, token)
	}

	if len(buffer) > 0 {
		instructions = append(instructions, Instruction{Index: len(instructions), Tokens: buffer})
	}

	return instructions
}
