package truthtable

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/eriklarko/truth-table/src/boolexpr"
	"github.com/samber/lo"
)

// Identifier is a name bound to an expression. An identifier's expression may
// only reference variables and identifiers that come before it.
type Identifier struct {
	Name string
	Expr boolexpr.Node
}

type Table struct {
	variables   []string
	identifiers []Identifier
}

// New creates a table over the given variables, in column order. Every
// identifier is resolved for every row, in the order given.
func New(variables []string, identifiers []Identifier) *Table {
	return &Table{
		variables:   variables,
		identifiers: identifiers,
	}
}

// lastRow is the index of the final row, 2^n - 1 for n variables.
func (t *Table) lastRow() uint64 {
	if len(t.variables) == 0 {
		return 0
	}
	return ^uint64(0) >> (64 - len(t.variables))
}

// assign binds the variables for row index. The last variable varies
// fastest, so row 0 is all false and the final row all true.
func (t *Table) assign(index uint64, context boolexpr.Context) {
	n := len(t.variables)
	for j, name := range t.variables {
		context[name] = index>>(n-1-j)&1 == 1
	}
}

// ForEachRow calls fn with the value of every variable and identifier, for
// every row, in order. The context is reused between rows and must not be
// retained.
func (t *Table) ForEachRow(fn func(context boolexpr.Context) error) error {
	context := make(boolexpr.Context, len(t.variables)+len(t.identifiers))
	last := t.lastRow()

	for index := uint64(0); ; index++ {
		clear(context)
		t.assign(index, context)

		for _, id := range t.identifiers {
			value, err := boolexpr.Solve(id.Expr, context)
			if err != nil {
				return fmt.Errorf("failed to resolve identifier '%s' on row %d: %w", id.Name, index, err)
			}
			context[id.Name] = value
		}

		if err := fn(context); err != nil {
			return err
		}

		if index == last {
			return nil
		}
	}
}

// Header returns the header line for a table showing names.
func (t *Table) Header(names []string) string {
	return "# " + strings.Join(t.variables, " ") + "   " + strings.Join(names, " ")
}

func (t *Table) formatRow(context boolexpr.Context, names []string) string {
	var row strings.Builder
	row.WriteString(" ")
	for _, name := range t.variables {
		row.WriteString(bit(context[name]))
	}
	row.WriteString("  ")
	for _, name := range names {
		row.WriteString(bit(context[name]))
	}
	return row.String()
}

func bit(value bool) string {
	if value {
		return " 1"
	}
	return " 0"
}

// Print writes the header and one line per row to w. With onlyOnes set, rows
// where every shown name is false are left out.
func (t *Table) Print(w io.Writer, names []string, onlyOnes bool) error {
	slog.Debug("printing truth table",
		"variables", t.variables,
		"names", names,
		"only_ones", onlyOnes,
	)

	if _, err := fmt.Fprintln(w, t.Header(names)); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	return t.ForEachRow(func(context boolexpr.Context) error {
		if onlyOnes && !lo.SomeBy(names, func(name string) bool { return context[name] }) {
			return nil
		}
		if _, err := fmt.Fprintln(w, t.formatRow(context, names)); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
		return nil
	})
}
