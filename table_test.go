package ionic_test

import (
	"bytes"
	"strings"
	"sync"
	"testing"

	"github.com/bjaus/ionic"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- Helpers ---

func plainOptions() ionic.Options {
	opts := ionic.DefaultOptions()
	opts.MaxWidth = 80
	opts.ColorEnabled = false
	return opts
}

func lines(s ...string) string {
	return strings.Join(s, "\n") + "\n"
}

func newVar4Table(t *testing.T, opts ionic.Options) *ionic.Table {
	t.Helper()
	table := ionic.New(opts)
	require.NoError(t, table.SetColumnFormat([]ionic.Column{ionic.FixedColumn(2), ionic.FlexColumn(), ionic.FlexColumn()}))
	require.NoError(t, table.AddRow("0", "A", "The Outer World"))
	require.NoError(t, table.AddRow("1", "Hello", "And Another"))
	require.NoError(t, table.AddRow("2", "World", "Further Out"))
	return table
}

// ============================================================
// Tests
// ============================================================

func TestFormatDefault(t *testing.T) {
	t.Parallel()
	table := newVar4Table(t, plainOptions())
	assert.Equal(t, []int{2, 5, 15}, table.Widths())
	assert.Equal(t, lines(
		"+----+-------+-----------------+",
		"| 0  | A     | The Outer World |",
		"+----+-------+-----------------+",
		"| 1  | Hello | And Another     |",
		"+----+-------+-----------------+",
		"| 2  | World | Further Out     |",
		"+----+-------+-----------------+",
	), table.Format())
}

func TestFormatBorderVariants(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		outer, hDivider bool
		want            string
	}{
		"no outer border": {
			hDivider: true,
			want: lines(
				"0  | A     | The Outer World",
				"---+-------+----------------",
				"1  | Hello | And Another    ",
				"---+-------+----------------",
				"2  | World | Further Out    ",
			),
		},
		"no horizontal divider": {
			outer: true,
			want: lines(
				"+----+-------+-----------------+",
				"| 0  | A     | The Outer World |",
				"| 1  | Hello | And Another     |",
				"| 2  | World | Further Out     |",
				"+----+-------+-----------------+",
			),
		},
		"no border or divider": {
			want: lines(
				"0  | A     | The Outer World",
				"1  | Hello | And Another    ",
				"2  | World | Further Out    ",
			),
		},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			opts := plainOptions()
			opts.OuterBorder = tc.outer
			opts.InnerHDivider = tc.hDivider
			assert.Equal(t, tc.want, newVar4Table(t, opts).Format())
		})
	}
}

func TestFormatFlexToFit(t *testing.T) {
	t.Parallel()
	opts := plainOptions()
	opts.MaxWidth = 1000
	opts.OuterBorder = false
	opts.InnerHDivider = false
	table := ionic.New(opts)
	require.NoError(t, table.SetColumnFormat([]ionic.Column{ionic.FlexColumn(), ionic.FlexColumn()}))
	require.NoError(t, table.AddRow("AA", "Hello"))
	require.NoError(t, table.AddRow("BB", "World"))

	assert.Equal(t, []int{2, 5}, table.Widths())
	assert.Equal(t, lines("AA | Hello", "BB | World"), table.Format())
}

func TestFormatNoVerticalDivider(t *testing.T) {
	t.Parallel()
	opts := plainOptions()
	opts.InnerVDivider = false
	table := ionic.New(opts)
	require.NoError(t, table.AddRow("a", "bb"))
	require.NoError(t, table.AddRow("ccc", "d"))
	assert.Equal(t, lines(
		"+---------+",
		"| a    bb |",
		"+---------+",
		"| ccc  d  |",
		"+---------+",
	), table.Format())
}

func TestFormatWrapAndAlign(t *testing.T) {
	t.Parallel()
	table := ionic.New(plainOptions())
	require.NoError(t, table.SetColumnFormat([]ionic.Column{ionic.FixedColumn(10), ionic.FixedColumn(10), ionic.FixedColumn(10)}))
	require.NoError(t, table.AddRow("This is left aligned text", "This text is center aligned", "And finally this is right aligned"))
	require.NoError(t, table.SetColumn(0, ionic.WithAlignment(ionic.AlignLeft)))
	require.NoError(t, table.SetColumn(1, ionic.WithAlignment(ionic.AlignCenter)))
	require.NoError(t, table.SetColumn(2, ionic.WithAlignment(ionic.AlignRight)))

	assert.Equal(t, lines(
		"+------------+------------+------------+",
		"| This is    | This text  |        And |",
		"| left       | is center  |    finally |",
		"| aligned    |  aligned   |    this is |",
		"| text       |            |      right |",
		"|            |            |    aligned |",
		"+------------+------------+------------+",
	), table.Format())
}

func TestFormatHardNewlines(t *testing.T) {
	t.Parallel()
	table := ionic.New(plainOptions())
	require.NoError(t, table.AddRow("ABC\r\nDE", "x"))
	assert.Equal(t, lines(
		"+-----+---+",
		"| ABC | x |",
		"| DE  |   |",
		"+-----+---+",
	), table.Format())
}

func TestFormatTruncatesLongWords(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		width int
		want  string
	}{
		"room for text":     {width: 4, want: "| To.. |"},
		"one char and mark": {width: 3, want: "| T.. |"},
		"only the mark":     {width: 2, want: "| .. |"},
		"part of the mark":  {width: 1, want: "| . |"},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			table := ionic.New(plainOptions())
			require.NoError(t, table.SetColumnFormat([]ionic.Column{ionic.FixedColumn(tc.width)}))
			require.NoError(t, table.AddRow("TooLong"))
			rows := strings.Split(table.Format(), "\n")
			assert.Equal(t, tc.want, rows[1])
		})
	}
}

func TestFormatShrinksToBudget(t *testing.T) {
	t.Parallel()
	opts := plainOptions()
	opts.MaxWidth = 50
	table := ionic.New(opts)
	require.NoError(t, table.SetColumnFormat([]ionic.Column{
		ionic.FixedColumn(1), ionic.FixedColumn(4), ionic.FlexColumn(), ionic.FlexColumn(), ionic.FlexColumn(),
	}))
	require.NoError(t, table.AddRow("1", "4", "Dyn", "Dyn", "Dyn"))
	require.NoError(t, table.AddRow("a", "TooLong", "ABCDEFGHIJKLMNOPQRSTUVWXYZ\nABCDEFGHIJKLMNOPQRSTUVWXYZ", "Hello", orwell))

	assert.Equal(t, 34, table.Budget())
	assert.Equal(t, []int{1, 4, 12, 5, 12}, table.Widths())

	out := table.Format()
	for _, line := range strings.Split(strings.TrimSuffix(out, "\n"), "\n") {
		assert.Len(t, line, 50, "line %q", line)
	}
	assert.Contains(t, out, "| a | To.. | ABCDEFGHIJ.. | Hello | It was a     |")
	assert.Contains(t, out, "|   |      | ABCDEFGHIJ.. |       | bright cold  |")
}

func TestFormatInfeasibleStillRenders(t *testing.T) {
	t.Parallel()
	opts := plainOptions()
	opts.MaxWidth = 8
	table := ionic.New(opts)
	require.NoError(t, table.SetColumnFormat([]ionic.Column{ionic.FixedColumn(1), ionic.FlexColumn()}))
	require.NoError(t, table.AddRow("x", "a rather long value"))

	assert.Equal(t, []int{1, 3}, table.Widths())
	out := table.Format()
	for _, line := range strings.Split(strings.TrimSuffix(out, "\n"), "\n") {
		assert.Len(t, line, 11, "line %q", line)
	}
	assert.Contains(t, out, "| x | a   |")
	assert.Contains(t, out, "|   | r.. |")
}

func TestFormatIndent(t *testing.T) {
	t.Parallel()
	opts := plainOptions()
	opts.Indent = 2
	table := ionic.New(opts)
	require.NoError(t, table.AddRow("a"))
	assert.Equal(t, lines(
		"  +---+",
		"  | a |",
		"  +---+",
	), table.Format())
}

func TestFormatNegativeIndent(t *testing.T) {
	t.Parallel()
	opts := plainOptions()
	opts.Indent = -3
	table := ionic.New(opts)
	require.NoError(t, table.AddRow("a"))
	assert.Equal(t, 76, table.Budget())
	assert.Equal(t, lines(
		"+---+",
		"| a |",
		"+---+",
	), table.Format())
}

func TestTerminalWidthDefault(t *testing.T) {
	t.Setenv(ionic.EnvColumns, "20")
	table := ionic.New(ionic.DefaultOptions())
	require.NoError(t, table.AddRow(strings.Repeat("x", 30)))
	assert.Equal(t, 16, table.Budget())
	assert.Equal(t, []int{16}, table.Widths())
}

func TestFormatBorderStyles(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		style ionic.BorderStyle
		want  string
	}{
		"rounded": {style: ionic.BorderRounded, want: lines(
			"╭───┬───╮",
			"│ a │ b │",
			"├───┼───┤",
			"│ c │ d │",
			"╰───┴───╯",
		)},
		"heavy": {style: ionic.BorderHeavy, want: lines(
			"┏━━━┳━━━┓",
			"┃ a ┃ b ┃",
			"┣━━━╋━━━┫",
			"┃ c ┃ d ┃",
			"┗━━━┻━━━┛",
		)},
		"double": {style: ionic.BorderDouble, want: lines(
			"╔═══╦═══╗",
			"║ a ║ b ║",
			"╠═══╬═══╣",
			"║ c ║ d ║",
			"╚═══╩═══╝",
		)},
		"none": {style: ionic.BorderNone, want: lines(
			"a  b",
			"c  d",
		)},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			opts := plainOptions()
			opts.Border = tc.style
			table := ionic.New(opts)
			require.NoError(t, table.AddRow("a", "b"))
			require.NoError(t, table.AddRow("c", "d"))
			assert.Equal(t, tc.want, table.Format())
		})
	}
}

func TestFormatCustomBorder(t *testing.T) {
	t.Parallel()
	opts := plainOptions()
	opts.Border = ionic.BorderCustom
	opts.HChar, opts.VChar, opts.CornerChar = "=", "I", "O"
	table := ionic.New(opts)
	require.NoError(t, table.AddRow("a", "b"))
	assert.Equal(t, lines(
		"O===O===O",
		"I a I b I",
		"O===O===O",
	), table.Format())
}

func TestFormatCustomBorderFallback(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		h, v, corner string
		want         string
	}{
		"all empty": {want: lines(
			"+---+---+",
			"| a | b |",
			"+---+---+",
		)},
		"only h": {h: "=", want: lines(
			"+===+===+",
			"| a | b |",
			"+===+===+",
		)},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			opts := plainOptions()
			opts.Border = ionic.BorderCustom
			opts.HChar, opts.VChar, opts.CornerChar = tc.h, tc.v, tc.corner
			table := ionic.New(opts)
			require.NoError(t, table.AddRow("a", "b"))
			assert.Equal(t, tc.want, table.Format())
		})
	}
}

func TestFormatColor(t *testing.T) {
	t.Parallel()
	opts := plainOptions()
	opts.ColorEnabled = true
	opts.TableColor = ionic.Blue
	table := newVar4Table(t, opts)
	require.NoError(t, table.SetRow(0, ionic.WithColor(ionic.White)))
	require.NoError(t, table.SetCell(1, 1, ionic.WithColor(ionic.Red)))

	out := table.Format()
	assert.Contains(t, out, ionic.WrapWithColor(ionic.Red.Code(), "Hello"))
	assert.Contains(t, out, ionic.WrapWithColor(ionic.White.Code(), "The Outer World"))
	assert.Contains(t, out, ionic.WrapWithColor(ionic.Blue.Code(), "+----+-------+-----------------+"))

	plain := plainOptions()
	uncolored := newVar4Table(t, plain).Format()
	assert.Equal(t, uncolored, ansi.Strip(out))
}

func TestFormatColorDisabled(t *testing.T) {
	t.Parallel()
	opts := plainOptions()
	opts.TableColor = ionic.Blue
	opts.TextColor = ionic.Green
	table := newVar4Table(t, opts)
	table.SetTable(ionic.WithColor(ionic.BrightCyan))
	assert.NotContains(t, table.Format(), "\x1b[")
}

func TestFormatEmpty(t *testing.T) {
	t.Parallel()
	table := ionic.New(plainOptions())
	assert.Empty(t, table.Format())

	require.NoError(t, table.SetColumnFormat([]ionic.Column{ionic.FlexColumn()}))
	assert.Empty(t, table.Format())
}

func TestFormatEmptyCells(t *testing.T) {
	t.Parallel()
	table := ionic.New(plainOptions())
	require.NoError(t, table.AddRow("", "  "))
	assert.Equal(t, lines(
		"+--+--+",
		"|  |  |",
		"+--+--+",
	), table.Format())
}

func TestFormatDoesNotMutate(t *testing.T) {
	t.Parallel()
	table := newVar4Table(t, plainOptions())
	before, err := table.Cell(2, 2)
	require.NoError(t, err)
	first := table.Format()
	assert.Equal(t, first, table.Format())
	after, err := table.Cell(2, 2)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestWriteTo(t *testing.T) {
	t.Parallel()
	table := newVar4Table(t, plainOptions())
	var buf bytes.Buffer
	n, err := table.WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, int64(buf.Len()), n)
	assert.Equal(t, table.String(), buf.String())
}

func TestAddRow(t *testing.T) {
	t.Parallel()
	table := ionic.New(plainOptions())
	require.NoError(t, table.AddRow("This\r\nis multi-line\n\rstring\n\r  \n", "Hello"))
	assert.Equal(t, []ionic.Column{ionic.FlexColumn(), ionic.FlexColumn()}, table.Columns())

	cell, err := table.Cell(0, 0)
	require.NoError(t, err)
	assert.Equal(t, "This\nis multi-line\nstring", cell.Text)
	assert.Equal(t, 13, cell.DesiredWidth)
	assert.Equal(t, 3, cell.Lines)

	cell, err = table.Cell(0, 1)
	require.NoError(t, err)
	assert.Equal(t, 5, cell.DesiredWidth)
	assert.Equal(t, 1, cell.Lines)
}

func TestAddRowDefaultsStyle(t *testing.T) {
	t.Parallel()
	opts := plainOptions()
	opts.TextColor = ionic.Yellow
	opts.Alignment = ionic.AlignRight
	table := ionic.New(opts)
	require.NoError(t, table.AddRow("a"))
	cell, err := table.Cell(0, 0)
	require.NoError(t, err)
	assert.Equal(t, ionic.Yellow, cell.Color)
	assert.Equal(t, ionic.AlignRight, cell.Align)
}

func TestTableErrors(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		run     func(*ionic.Table) error
		wantErr error
	}{
		"row too short":     {run: func(tb *ionic.Table) error { return tb.AddRow("a") }, wantErr: ionic.ErrColumnMismatch},
		"row too long":      {run: func(tb *ionic.Table) error { return tb.AddRow("a", "b", "c", "d") }, wantErr: ionic.ErrColumnMismatch},
		"format resized":    {run: func(tb *ionic.Table) error { return tb.SetColumnFormat([]ionic.Column{ionic.FlexColumn()}) }, wantErr: ionic.ErrColumnMismatch},
		"bad kind":          {run: func(tb *ionic.Table) error { return tb.SetColumnFormat([]ionic.Column{{Kind: 7}, {}, {}}) }, wantErr: ionic.ErrInvalidColumn},
		"cell row":          {run: func(tb *ionic.Table) error { return tb.SetCell(3, 0) }, wantErr: ionic.ErrOutOfRange},
		"cell column":       {run: func(tb *ionic.Table) error { return tb.SetCell(0, -1) }, wantErr: ionic.ErrOutOfRange},
		"set row":           {run: func(tb *ionic.Table) error { return tb.SetRow(9) }, wantErr: ionic.ErrOutOfRange},
		"set column":        {run: func(tb *ionic.Table) error { return tb.SetColumn(3) }, wantErr: ionic.ErrOutOfRange},
		"get cell":          {run: func(tb *ionic.Table) error { _, err := tb.Cell(0, 3); return err }, wantErr: ionic.ErrOutOfRange},
		"zero fixed column": {run: func(tb *ionic.Table) error { return tb.SetColumnFormat([]ionic.Column{{Kind: ionic.Fixed}, {}, {}}) }, wantErr: ionic.ErrInvalidWidth},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			table := ionic.New(plainOptions())
			require.NoError(t, table.AddRow("a", "b", "c"))
			require.ErrorIs(t, tc.run(table), tc.wantErr)
		})
	}
}

func TestSetColumnFormatFrozen(t *testing.T) {
	t.Parallel()
	cols := []ionic.Column{ionic.FixedColumn(3), ionic.FlexColumn()}
	table := ionic.New(plainOptions())
	require.NoError(t, table.SetColumnFormat(cols))
	require.NoError(t, table.AddRow("a", "b"))

	require.ErrorIs(t, table.SetColumnFormat([]ionic.Column{ionic.FixedColumn(9), ionic.FlexColumn()}), ionic.ErrColumnMismatch)
	require.ErrorIs(t, table.SetColumnFormat([]ionic.Column{ionic.FlexColumn(), ionic.FlexColumn()}), ionic.ErrColumnMismatch)
	require.NoError(t, table.SetColumnFormat(cols))
	assert.Equal(t, cols, table.Columns())
}

func TestSetColumnFormatInferred(t *testing.T) {
	t.Parallel()
	table := ionic.New(plainOptions())
	require.NoError(t, table.AddRow("a", "b"))
	require.ErrorIs(t, table.SetColumnFormat([]ionic.Column{ionic.FixedColumn(2), ionic.FlexColumn()}), ionic.ErrColumnMismatch)
	require.NoError(t, table.SetColumnFormat([]ionic.Column{ionic.FlexColumn(), ionic.FlexColumn()}))
}

func TestFormatConcurrent(t *testing.T) {
	t.Parallel()
	tables := make([]*ionic.Table, 8)
	want := make([]string, len(tables))
	for i := range tables {
		opts := plainOptions()
		opts.MaxWidth = 30 + 5*i
		opts.Border = ionic.BorderStyle(i % 5)
		table := ionic.New(opts)
		require.NoError(t, table.AddRow(strings.Repeat("x", i+1), orwell))
		require.NoError(t, table.AddRow("y", "A Poem.\n\nTo challenge\nthe line breaker"))
		tables[i] = table
		want[i] = table.Format()
	}

	var wg sync.WaitGroup
	for range 4 {
		for i, table := range tables {
			wg.Add(1)
			go func() {
				defer wg.Done()
				assert.Equal(t, want[i], table.Format())
			}()
		}
	}
	wg.Wait()
}

func TestAddRowEmpty(t *testing.T) {
	t.Parallel()
	table := ionic.New(plainOptions())
	require.ErrorIs(t, table.AddRow(), ionic.ErrColumnMismatch)
}

func TestAddRows(t *testing.T) {
	t.Parallel()
	table := ionic.New(plainOptions())
	rows := func(yield func([]string) bool) {
		for _, r := range [][]string{{"a", "b"}, {"c", "d"}, {"e"}, {"f", "g"}} {
			if !yield(r) {
				return
			}
		}
	}
	require.ErrorIs(t, table.AddRows(rows), ionic.ErrColumnMismatch)
	assert.Equal(t, 2, table.NumRows())
}
