package ionic

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// MinColumnWidth is the width every flexible column is forced to when the
// budget cannot hold the table.
const MinColumnWidth = 3

// ColumnKind selects how a column's width is determined.
type ColumnKind int

const (
	Flexible ColumnKind = iota // sized to content, shrunk under budget pressure
	Fixed                      // exactly Column.Width, never shrunk
)

// String returns the kind name accepted by [ParseColumn].
func (k ColumnKind) String() string {
	switch k {
	case Flexible:
		return "flex"
	case Fixed:
		return "fixed"
	default:
		return fmt.Sprintf("ColumnKind(%d)", int(k))
	}
}

// Column declares the width policy of one table column.
type Column struct {
	Kind ColumnKind
	// Width is the inner width of a Fixed column. Flexible columns ignore it.
	Width int
}

// FixedColumn returns a fixed column of the given inner width.
func FixedColumn(width int) Column { return Column{Kind: Fixed, Width: width} }

// FlexColumn returns a flexible column.
func FlexColumn() Column { return Column{Kind: Flexible} }

// String returns the column in the form accepted by [ParseColumn].
func (c Column) String() string {
	if c.Kind == Fixed {
		return "fixed:" + strconv.Itoa(c.Width)
	}
	return c.Kind.String()
}

// ParseColumn parses a column declaration: "flex" or "dynamic" for a flexible
// column, "fixed:N" or a bare "N" for a fixed column of width N.
func ParseColumn(s string) (Column, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	switch v {
	case "flex", "flexible", "dynamic", "dyn", "":
		return FlexColumn(), nil
	}
	if n, ok := strings.CutPrefix(v, "fixed:"); ok {
		v = n
	}
	width, err := strconv.Atoi(v)
	if err != nil {
		return Column{}, fmt.Errorf("%w: %q", ErrInvalidColumn, s)
	}
	if width < 1 {
		return Column{}, fmt.Errorf("%w: fixed column %q must be at least 1 wide", ErrInvalidWidth, s)
	}
	return FixedColumn(width), nil
}

// ParseColumns parses a comma separated list of column declarations.
func ParseColumns(s string) ([]Column, error) {
	parts := strings.Split(s, ",")
	cols := make([]Column, len(parts))
	for i, p := range parts {
		c, err := ParseColumn(p)
		if err != nil {
			return nil, err
		}
		cols[i] = c
	}
	return cols, nil
}

// MarshalYAML encodes the column in its declaration form.
func (c Column) MarshalYAML() (any, error) { return c.String(), nil }

// UnmarshalYAML decodes a column declaration.
func (c *Column) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	v, err := ParseColumn(s)
	if err != nil {
		return err
	}
	*c = v
	return nil
}

// ComputeWidths allocates the inner width of every column.
//
// desired holds, per row, the desired width of each cell: the length of its
// longest line. budget is the width left for cell content once borders and
// dividers are subtracted.
//
// Fixed columns always get their declared width. Flexible columns get their
// widest cell when everything fits. Otherwise the budget left after fixed
// columns is shared: flexible columns that need no more than an even share keep
// their width and the rest split what remains, the last of them absorbing the
// rounding, so the widths add up to budget exactly. When even [MinColumnWidth]
// per flexible column does not fit, every flexible column gets
// MinColumnWidth and the table overflows.
func ComputeWidths(cols []Column, desired [][]int, budget int) ([]int, error) {
	for i, c := range cols {
		if c.Kind == Fixed && c.Width < 1 {
			return nil, fmt.Errorf("%w: fixed column %d has width %d", ErrInvalidWidth, i, c.Width)
		}
	}
	for r, row := range desired {
		if len(row) != len(cols) {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrColumnMismatch, r, len(row), len(cols))
		}
	}
	return allocateWidths(cols, desired, budget, nil), nil
}

func allocateWidths(cols []Column, desired [][]int, budget int, logger *slog.Logger) []int {
	if logger == nil {
		logger = discardLogger
	}
	inner := make([]int, len(cols))

	required := 0
	fixed := 0
	nFlex := 0
	total := 0
	for i, c := range cols {
		if c.Kind == Fixed {
			inner[i] = c.Width
			required += c.Width
			fixed += c.Width
		} else {
			for _, row := range desired {
				inner[i] = max(inner[i], row[i])
			}
			required += MinColumnWidth
			nFlex++
		}
		total += inner[i]
	}
	if total <= budget {
		logger.Debug("column widths fit", "budget", budget, "total", total)
		return inner
	}

	if required >= budget {
		logger.Debug("column widths infeasible", "budget", budget, "required", required)
		for i, c := range cols {
			if c.Kind == Flexible {
				inner[i] = MinColumnWidth
			}
		}
		return inner
	}

	avail := budget - fixed
	grant := avail / nFlex

	var shrink []int
	for i, c := range cols {
		if c.Kind != Flexible {
			continue
		}
		if inner[i] <= grant {
			avail -= inner[i]
		} else {
			shrink = append(shrink, i)
		}
	}
	if len(shrink) == 0 {
		return inner
	}

	grant = avail / len(shrink)
	last := len(shrink) - 1
	for _, i := range shrink[:last] {
		if inner[i] > grant {
			inner[i] = grant
		}
		avail -= inner[i]
	}
	inner[shrink[last]] = avail

	logger.Debug("column widths shrunk", "budget", budget, "shrunk", len(shrink), "grant", grant)
	return inner
}
