package compiler

import (
	"bufio"
	"fmt"
	"io"

	"github.com/eriklarko/truth-table/src/truthtable"
)

// Display is a validated show or show_ones instruction. Variables and
// Identifiers count how many of each had been declared when it appeared; the
// table it prints only covers those.
type Display struct {
	Names       []string
	OnlyOnes    bool
	Variables   int
	Identifiers int
}

// Program is a compiled, fully validated input.
type Program struct {
	state    *CompilationState
	displays []Display
}

func (p *Program) State() *CompilationState {
	return p.state
}

func (p *Program) Displays() []Display {
	return p.displays
}

// Run prints every requested truth table to w, in program order.
func (p *Program) Run(w io.Writer) error {
	out := bufio.NewWriter(w)

	for i, display := range p.displays {
		table := truthtable.New(
			p.state.variables[:display.Variables],
			p.state.identifiers[:display.Identifiers],
		)
		if err := table.Print(out, display.Names, display.OnlyOnes); err != nil {
			return fmt.Errorf("failed to print truth table %d: %w", i+1, err)
		}
	}

	if err := out.Flush(); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
