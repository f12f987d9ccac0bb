// Package ionic renders tabular text as a fixed-width character grid for the
// terminal.
//
// A [Table] collects rows of strings. Rendering allocates a width to every
// column within the output width, word-wraps each cell to its column, and
// draws borders, dividers, alignment and color around the result. One byte is
// one display column; the package does not measure grapheme widths.
//
//	t := ionic.New(ionic.DefaultOptions())
//	t.SetColumnFormat([]ionic.Column{ionic.FixedColumn(2), ionic.FlexColumn()})
//	t.AddRow("0", "The Outer World")
//	t.AddRow("1", "And Another")
//	t.Print()
//
// # Column Widths
//
// A [Fixed] column is always exactly its declared width, even when that
// overflows the output. A [Flexible] column is as wide as its widest line.
// When the columns do not fit, flexible columns that need less than an even
// share of the remaining width keep it, and the others split the rest; see
// [ComputeWidths]. When even [MinColumnWidth] per flexible column does not
// fit, the layout degrades to minimum-width columns instead of failing.
//
// # Wrapping
//
// Cells wrap at word boundaries (spaces and tabs). Newlines are hard breaks
// and blank lines are kept. A word wider than its column is cut and marked
// with [Ellipsis]. [WordWrap] and [LineBreak] expose the line breaker
// directly.
//
// # Options
//
// [Options] controls borders ([BorderStyle]), dividers, indent, width, colors
// and default alignment. Start from [DefaultOptions]; [LoadOptions] reads
// YAML and [ApplyEnv] honors NO_COLOR and IONIC_MAX_WIDTH.
//
// # Items
//
// [Write] and [Marshal] build a table from values implementing [Rower].
// Optional interfaces refine the table:
//
//   - [Headed]: a header row
//   - [Columned]: column formats
//   - [Aligned]: per-column alignment
//   - [Colored]: per-column color
//
// # Errors
//
// Invalid input such as a row with the wrong number of cells is reported with
// wrapped sentinel errors ([ErrColumnMismatch], [ErrInvalidWidth],
// [ErrOutOfRange], ...). [LineBreak] and [WordWrap] panic on invalid widths,
// which are programming errors.
package ionic
