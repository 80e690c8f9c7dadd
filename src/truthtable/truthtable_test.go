package truthtable_test

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/eriklarko/truth-table/src/boolexpr"
	"github.com/eriklarko/truth-table/src/truthtable"
	"github.com/montanaflynn/stats"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func refs(names ...string) []boolexpr.Node {
	return lo.Map(names, func(name string, _ int) boolexpr.Node {
		return boolexpr.Ref(name)
	})
}

func printTable(t *testing.T, table *truthtable.Table, names []string, onlyOnes bool) []string {
	t.Helper()

	var out bytes.Buffer
	require.NoError(t, table.Print(&out, names, onlyOnes))
	return strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
}

func TestPrint(t *testing.T) {
	table := truthtable.New(
		[]string{"x", "y"},
		[]truthtable.Identifier{{Name: "z", Expr: boolexpr.NewAnd(refs("x", "y")...)}},
	)

	lines := printTable(t, table, []string{"z"}, false)
	assert.Equal(t, []string{
		"# x y   z",
		"  0 0   0",
		"  0 1   0",
		"  1 0   0",
		"  1 1   1",
	}, lines)
}

func TestPrint_OnlyOnes(t *testing.T) {
	table := truthtable.New(
		[]string{"a"},
		[]truthtable.Identifier{{Name: "b", Expr: boolexpr.NewNot(boolexpr.Ref("a"))}},
	)

	lines := printTable(t, table, []string{"a", "b"}, true)
	assert.Equal(t, []string{
		"# a   a b",
		"  0   0 1",
		"  1   1 0",
	}, lines)

	lines = printTable(t, table, []string{"b"}, true)
	assert.Equal(t, []string{
		"# a   b",
		"  0   1",
	}, lines)
}

func TestPrint_OnlyOnesIsSubset(t *testing.T) {
	table := truthtable.New(
		[]string{"a", "b", "c"},
		[]truthtable.Identifier{
			{Name: "d", Expr: boolexpr.NewAnd(refs("a", "b", "c")...)},
			{Name: "e", Expr: boolexpr.NewOr(boolexpr.Ref("d"), boolexpr.NewNot(boolexpr.Ref("a")))},
		},
	)

	all := printTable(t, table, []string{"d", "e"}, false)
	ones := printTable(t, table, []string{"d", "e"}, true)

	assert.Subset(t, all, ones)
	for _, row := range all[1:] {
		shown := lo.Contains(ones, row)
		hasOne := strings.Contains(strings.SplitN(row, "   ", 2)[1], "1")
		assert.Equal(t, hasOne, shown, "row %q", row)
	}
}

func TestPrint_NoVariables(t *testing.T) {
	table := truthtable.New(nil, []truthtable.Identifier{{Name: "t", Expr: boolexpr.Literal(true)}})

	lines := printTable(t, table, []string{"t"}, false)
	assert.Equal(t, []string{"#    t", "    1"}, lines)
}

func TestPrint_IdentifiersSeeEarlierIdentifiers(t *testing.T) {
	table := truthtable.New(
		[]string{"p"},
		[]truthtable.Identifier{
			{Name: "q", Expr: boolexpr.NewNot(boolexpr.Ref("p"))},
			{Name: "r", Expr: boolexpr.NewNot(boolexpr.Ref("q"))},
		},
	)

	lines := printTable(t, table, []string{"q", "r"}, false)
	assert.Equal(t, []string{
		"# p   q r",
		"  0   1 0",
		"  1   0 1",
	}, lines)
}

func TestForEachRow_Order(t *testing.T) {
	for n := 0; n <= 6; n++ {
		t.Run(fmt.Sprintf("%d variables", n), func(t *testing.T) {
			variables := lo.Times(n, func(i int) string { return fmt.Sprintf("v%d", i) })
			table := truthtable.New(variables, nil)

			var rows []string
			err := table.ForEachRow(func(context boolexpr.Context) error {
				rows = append(rows, strings.Join(lo.Map(variables, func(name string, _ int) string {
					return lo.Ternary(context[name], "1", "0")
				}), ""))
				return nil
			})
			require.NoError(t, err)

			require.Len(t, rows, 1<<n)
			for i, row := range rows {
				expected := ""
				if n > 0 {
					expected = fmt.Sprintf("%0*b", n, i)
				}
				assert.Equal(t, expected, row)
			}
		})
	}
}

func TestForEachRow_ColumnDensity(t *testing.T) {
	variables := []string{"a", "b", "c", "d"}
	table := truthtable.New(variables, []truthtable.Identifier{
		{Name: "all", Expr: boolexpr.NewAnd(refs(variables...)...)},
		{Name: "any", Expr: boolexpr.NewOr(refs(variables...)...)},
	})

	columns := map[string][]float64{}
	err := table.ForEachRow(func(context boolexpr.Context) error {
		for name, value := range context {
			columns[name] = append(columns[name], lo.Ternary(value, 1.0, 0.0))
		}
		return nil
	})
	require.NoError(t, err)

	// every variable is true in exactly half the rows
	for _, name := range variables {
		mean, err := stats.Mean(columns[name])
		require.NoError(t, err)
		assert.InDelta(t, 0.5, mean, 1e-9, name)
	}

	mean, err := stats.Mean(columns["all"])
	require.NoError(t, err)
	assert.InDelta(t, 1.0/16, mean, 1e-9)

	mean, err = stats.Mean(columns["any"])
	require.NoError(t, err)
	assert.InDelta(t, 15.0/16, mean, 1e-9)
}

func TestForEachRow_StopsOnError(t *testing.T) {
	table := truthtable.New([]string{"a", "b"}, nil)

	calls := 0
	err := table.ForEachRow(func(context boolexpr.Context) error {
		calls++
		if calls == 2 {
			return errors.New("stop")
		}
		return nil
	})
	assert.EqualError(t, err, "stop")
	assert.Equal(t, 2, calls)
}

func TestForEachRow_UnboundName(t *testing.T) {
	table := truthtable.New([]string{"a"}, []truthtable.Identifier{
		{Name: "b", Expr: boolexpr.NewAnd(boolexpr.Ref("a"), boolexpr.Ref("later"))},
	})

	err := table.ForEachRow(func(boolexpr.Context) error { return nil })
	var unbound *boolexpr.UnboundNameError
	require.ErrorAs(t, err, &unbound)
	assert.Equal(t, "later", unbound.Name)
}

func TestHeader(t *testing.T) {
	table := truthtable.New([]string{"x", "y"}, nil)
	assert.Equal(t, "# x y   x y", table.Header([]string{"x", "y"}))
}
