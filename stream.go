package ionic

import (
	"io"
	"iter"
)

// WriteIter renders items from an iterator as a table. Layout needs every row
// before the first line can be drawn, so items are collected first.
func WriteIter[T any](w io.Writer, opts Options, seq iter.Seq[T]) error {
	return Write(w, opts, collect(seq)...)
}

// WriteChan renders items received from ch as a table once ch is closed.
// It is a thin wrapper around [WriteIter].
func WriteChan[T any](w io.Writer, opts Options, ch <-chan T) error {
	return WriteIter(w, opts, chanToIter(ch))
}

// AddRows appends every row produced by seq, stopping at the first error.
func (t *Table) AddRows(seq iter.Seq[[]string]) error {
	var err error
	seq(func(row []string) bool {
		err = t.AddRow(row...)
		return err == nil
	})
	return err
}

func chanToIter[T any](ch <-chan T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for item := range ch {
			if !yield(item) {
				return
			}
		}
	}
}

func collect[T any](seq iter.Seq[T]) []T {
	var items []T
	seq(func(item T) bool {
		items = append(items, item)
		return true
	})
	return items
}
