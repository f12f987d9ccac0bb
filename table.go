package ionic

import (
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
)

// Ellipsis marks a cell line that was cut to fit its column.
const Ellipsis = ".."

type borderChars struct {
	topLeft, topRight, bottomLeft, bottomRight string
	horizontal, vertical                       string
	topTee, bottomTee, leftTee, rightTee       string
	cross                                      string
}

var borderSets = map[BorderStyle]borderChars{
	BorderASCII:   uniformBorder("-", "|", "+"),
	BorderNone:    uniformBorder(" ", " ", " "),
	BorderRounded: {
		topLeft: "╭", topRight: "╮", bottomLeft: "╰", bottomRight: "╯",
		horizontal: "─", vertical: "│",
		topTee: "┬", bottomTee: "┴", leftTee: "├", rightTee: "┤",
		cross: "┼",
	},
	BorderHeavy: {
		topLeft: "┏", topRight: "┓", bottomLeft: "┗", bottomRight: "┛",
		horizontal: "━", vertical: "┃",
		topTee: "┳", bottomTee: "┻", leftTee: "┣", rightTee: "┫",
		cross: "╋",
	},
	BorderDouble: {
		topLeft: "╔", topRight: "╗", bottomLeft: "╚", bottomRight: "╝",
		horizontal: "═", vertical: "║",
		topTee: "╦", bottomTee: "╩", leftTee: "╠", rightTee: "╣",
		cross: "╬",
	},
}

// uniformBorder uses one corner glyph for every junction.
func uniformBorder(h, v, corner string) borderChars {
	return borderChars{
		topLeft: corner, topRight: corner, bottomLeft: corner, bottomRight: corner,
		horizontal: h, vertical: v,
		topTee: corner, bottomTee: corner, leftTee: corner, rightTee: corner,
		cross: corner,
	}
}

// Table accumulates rows of text and renders them as a fixed-width grid.
//
// Columns are declared with [Table.SetColumnFormat] or inferred from the first
// row as all [Flexible]. Rows are append-only; only the style of existing cells
// can change. Rendering never modifies the table.
//
// A Table is not safe for concurrent mutation. Distinct tables can be rendered
// concurrently.
type Table struct {
	opts Options
	cols []Column
	rows [][]Cell
}

// New returns an empty table. Options are used as given; call
// [Options.Validate] first to reject them. A negative Indent renders as no
// indent and empty [BorderCustom] glyphs fall back to the ASCII ones.
func New(opts Options) *Table {
	return &Table{opts: opts}
}

// Options returns the options the table renders with.
func (t *Table) Options() Options { return t.opts }

// NumColumns returns the number of columns.
func (t *Table) NumColumns() int { return len(t.cols) }

// NumRows returns the number of rows.
func (t *Table) NumRows() int { return len(t.rows) }

// Columns returns a copy of the column formats.
func (t *Table) Columns() []Column {
	out := make([]Column, len(t.cols))
	copy(out, t.cols)
	return out
}

// SetColumnFormat declares the columns. Once rows exist the format is
// frozen: only an identical declaration is accepted.
func (t *Table) SetColumnFormat(cols []Column) error {
	if len(t.rows) > 0 && len(cols) != len(t.cols) {
		return fmt.Errorf("%w: table has %d columns, format declares %d", ErrColumnMismatch, len(t.cols), len(cols))
	}
	for i, c := range cols {
		switch c.Kind {
		case Flexible:
		case Fixed:
			if c.Width < 1 {
				return fmt.Errorf("%w: fixed column %d has width %d", ErrInvalidWidth, i, c.Width)
			}
		default:
			return fmt.Errorf("%w: column %d has kind %s", ErrInvalidColumn, i, c.Kind)
		}
	}
	if len(t.rows) > 0 && !slices.Equal(cols, t.cols) {
		return fmt.Errorf("%w: column format cannot change once rows exist", ErrColumnMismatch)
	}
	t.cols = slices.Clone(cols)
	return nil
}

// AddRow appends a row. The first row of a table without a column format
// declares that many flexible columns; every row must have one cell per
// column.
func (t *Table) AddRow(cells ...string) error {
	if len(t.cols) == 0 {
		if len(cells) == 0 {
			return fmt.Errorf("%w: row has no cells", ErrColumnMismatch)
		}
		t.cols = make([]Column, len(cells))
	}
	if len(cells) != len(t.cols) {
		return fmt.Errorf("%w: row %d has %d cells, want %d", ErrColumnMismatch, len(t.rows), len(cells), len(t.cols))
	}
	row := make([]Cell, len(cells))
	for i, text := range cells {
		row[i] = newCell(text, t.opts)
	}
	t.rows = append(t.rows, row)
	return nil
}

// Cell returns the cell at row, col.
func (t *Table) Cell(row, col int) (Cell, error) {
	if err := t.checkCell(row, col); err != nil {
		return Cell{}, err
	}
	return t.rows[row][col], nil
}

// SetCell patches the style of one cell.
func (t *Table) SetCell(row, col int, opts ...StyleOption) error {
	if err := t.checkCell(row, col); err != nil {
		return err
	}
	for _, opt := range opts {
		opt(&t.rows[row][col])
	}
	return nil
}

// SetRow patches the style of every cell in a row.
func (t *Table) SetRow(row int, opts ...StyleOption) error {
	if row < 0 || row >= len(t.rows) {
		return fmt.Errorf("%w: row %d of %d", ErrOutOfRange, row, len(t.rows))
	}
	for col := range t.rows[row] {
		if err := t.SetCell(row, col, opts...); err != nil {
			return err
		}
	}
	return nil
}

// SetColumn patches the style of every cell in a column.
func (t *Table) SetColumn(col int, opts ...StyleOption) error {
	if col < 0 || col >= len(t.cols) {
		return fmt.Errorf("%w: column %d of %d", ErrOutOfRange, col, len(t.cols))
	}
	for row := range t.rows {
		if err := t.SetCell(row, col, opts...); err != nil {
			return err
		}
	}
	return nil
}

// SetTable patches the style of every cell.
func (t *Table) SetTable(opts ...StyleOption) {
	for row := range t.rows {
		for col := range t.rows[row] {
			for _, opt := range opts {
				opt(&t.rows[row][col])
			}
		}
	}
}

func (t *Table) checkCell(row, col int) error {
	if row < 0 || row >= len(t.rows) {
		return fmt.Errorf("%w: row %d of %d", ErrOutOfRange, row, len(t.rows))
	}
	if col < 0 || col >= len(t.cols) {
		return fmt.Errorf("%w: column %d of %d", ErrOutOfRange, col, len(t.cols))
	}
	return nil
}

// layout is the decoration resolved from Options for one render pass.
type layout struct {
	opts                      Options
	bc                        borderChars
	indent                    string
	outer, hDivider, vDivider bool
}

func newLayout(opts Options) layout {
	l := layout{
		opts:     opts,
		indent:   strings.Repeat(" ", max(opts.Indent, 0)),
		outer:    opts.OuterBorder,
		hDivider: opts.InnerHDivider,
		vDivider: opts.InnerVDivider,
	}
	switch opts.Border {
	case BorderCustom:
		l.bc = uniformBorder(glyphOr(opts.HChar, "-"), glyphOr(opts.VChar, "|"), glyphOr(opts.CornerChar, "+"))
	case BorderNone:
		l.bc = borderSets[BorderNone]
		l.outer, l.hDivider, l.vDivider = false, false, false
	default:
		bc, ok := borderSets[opts.Border]
		if !ok {
			bc = borderSets[BorderASCII]
		}
		l.bc = bc
	}
	return l
}

// glyphOr returns glyph, or fallback when glyph is empty.
func glyphOr(glyph, fallback string) string {
	if glyph == "" {
		return fallback
	}
	return glyph
}

// dividerWidth is the width between two adjacent columns.
func (l layout) dividerWidth() int {
	if l.vDivider {
		return 3
	}
	return 2
}

// budget returns the width left for cell content in an output of outerWidth.
func (l layout) budget(outerWidth, nCols int) int {
	inner := outerWidth - len(l.indent)
	if l.outer {
		inner -= 2 * 2
	}
	if nCols > 1 {
		inner -= l.dividerWidth() * (nCols - 1)
	}
	return inner
}

func (l layout) decorate(s string) string {
	return Colorize(l.opts.TableColor, s, l.opts.ColorEnabled)
}

// outputWidth is the total width the table is laid out for.
func (t *Table) outputWidth() int {
	if t.opts.MaxWidth > 0 {
		return t.opts.MaxWidth
	}
	return TerminalWidth()
}

// Budget returns the width available for cell content once the indent,
// borders and dividers are subtracted from the output width.
func (t *Table) Budget() int {
	return newLayout(t.opts).budget(t.outputWidth(), len(t.cols))
}

// Widths returns the inner width of every column for the current output
// width.
func (t *Table) Widths() []int {
	return t.widths(newLayout(t.opts).budget(t.outputWidth(), len(t.cols)))
}

func (t *Table) widths(budget int) []int {
	desired := make([][]int, len(t.rows))
	for r, row := range t.rows {
		desired[r] = make([]int, len(row))
		for c, cell := range row {
			desired[r][c] = cell.DesiredWidth
		}
	}
	return allocateWidths(t.cols, desired, budget, t.opts.Logger)
}

// Format renders the table. A table without columns or rows renders as "".
func (t *Table) Format() string {
	if len(t.cols) == 0 || len(t.rows) == 0 {
		return ""
	}
	l := newLayout(t.opts)
	outerWidth := t.outputWidth()
	widths := t.widths(l.budget(outerWidth, len(t.cols)))

	var sb strings.Builder
	sb.Grow(outerWidth * len(t.rows) * 2)

	if l.outer {
		l.writeHLine(&sb, widths, l.bc.topLeft, l.bc.topTee, l.bc.topRight)
	}
	for r, row := range t.rows {
		l.writeRow(&sb, row, widths)
		if r+1 < len(t.rows) && l.hDivider {
			l.writeHLine(&sb, widths, l.bc.leftTee, l.bc.cross, l.bc.rightTee)
		}
	}
	if l.outer {
		l.writeHLine(&sb, widths, l.bc.bottomLeft, l.bc.bottomTee, l.bc.bottomRight)
	}
	return sb.String()
}

// String renders the table; see [Table.Format].
func (t *Table) String() string { return t.Format() }

// WriteTo writes the rendered table to w.
func (t *Table) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, t.Format())
	return int64(n), err
}

// Print writes the rendered table to standard output.
func (t *Table) Print() error {
	_, err := t.WriteTo(os.Stdout)
	return err
}

// writeHLine draws a horizontal line that lines up with the cell rows: every
// blank of the row decoration becomes fill and every vertical glyph becomes a
// junction.
func (l layout) writeHLine(sb *strings.Builder, widths []int, left, mid, right string) {
	h := l.bc.horizontal
	var line strings.Builder
	if l.outer {
		line.WriteString(left)
		line.WriteString(h)
	}
	for i, width := range widths {
		if i > 0 {
			if l.vDivider {
				line.WriteString(h + mid + h)
			} else {
				line.WriteString(h + h)
			}
		}
		line.WriteString(strings.Repeat(h, width))
	}
	if l.outer {
		line.WriteString(h)
		line.WriteString(right)
	}
	sb.WriteString(l.indent)
	sb.WriteString(l.decorate(line.String()))
	sb.WriteByte('\n')
}

// writeRow emits one physical line per wrapped line of the tallest cell.
// Cells with fewer lines are padded with blanks.
func (l layout) writeRow(sb *strings.Builder, row []Cell, widths []int) {
	breaks := make([][]Break, len(row))
	nLines := 1
	for c, cell := range row {
		breaks[c] = WordWrap(cell.Text, max(widths[c], 1))
		nLines = max(nLines, len(breaks[c]))
	}

	for line := range nLines {
		sb.WriteString(l.indent)
		if l.outer {
			sb.WriteString(l.decorate(l.bc.vertical + " "))
		}
		for c, cell := range row {
			if c > 0 {
				if l.vDivider {
					sb.WriteString(l.decorate(" " + l.bc.vertical + " "))
				} else {
					sb.WriteString("  ")
				}
			}
			var view string
			if line < len(breaks[c]) {
				view = breaks[c][line].Text(cell.Text)
			}
			sb.WriteString(Colorize(cell.Color, fitCell(view, widths[c], cell.Align), l.opts.ColorEnabled))
		}
		if l.outer {
			sb.WriteString(l.decorate(" " + l.bc.vertical))
		}
		sb.WriteByte('\n')
	}
}

// fitCell returns s padded or cut to exactly width bytes. Text that does not
// fit is cut and marked with [Ellipsis]; alignment only applies to text that
// fits.
func fitCell(s string, width int, align Alignment) string {
	if width <= 0 {
		return ""
	}
	if len(s) > width {
		if width <= len(Ellipsis) {
			return Ellipsis[:width]
		}
		return s[:width-len(Ellipsis)] + Ellipsis
	}
	return alignCell(s, width, align)
}

func alignCell(s string, width int, align Alignment) string {
	pad := width - len(s)
	if pad <= 0 {
		return s
	}
	switch align {
	case AlignRight:
		return strings.Repeat(" ", pad) + s
	case AlignCenter:
		left := pad / 2
		right := pad - left
		return strings.Repeat(" ", left) + s + strings.Repeat(" ", right)
	default:
		return s + strings.Repeat(" ", pad)
	}
}
