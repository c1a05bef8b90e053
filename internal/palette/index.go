// Package palette holds the fixed color palettes that images are reduced to,
// and the nearest-color search over them.
package palette

import (
	"github.com/davesmith10/RGBtoIndexed/internal/color"
)

// Entry is a palette color together with its precomputed Lab representation.
type Entry struct {
	RGB color.RGB
	Lab color.Lab
}

// Index is an ordered, immutable palette prepared for matching. An Index may
// be shared by any number of concurrent conversions.
type Index struct {
	entries []Entry
}

// NewIndex builds an Index from an ordered list of colors. Duplicates are kept;
// order only matters for breaking ties. It fails with a *ValidationError
// wrapping ErrEmptyPalette when colors is empty.
func NewIndex(colors []color.RGB) (*Index, error) {
	if len(colors) == 0 {
		return nil, EmptyPalette()
	}

	entries := make([]Entry, len(colors))
	for i, c := range colors {
		entries[i] = Entry{RGB: c, Lab: c.Lab()}
	}
	return &Index{entries: entries}, nil
}

// Len returns the number of palette entries.
func (idx *Index) Len() int {
	return len(idx.entries)
}

// Entry returns the i-th palette entry.
func (idx *Index) Entry(i int) Entry {
	return idx.entries[i]
}

// Entries returns a copy of all palette entries in order.
func (idx *Index) Entries() []Entry {
	out := make([]Entry, len(idx.entries))
	copy(out, idx.entries)
	return out
}

// Colors returns the palette's RGB colors in order.
func (idx *Index) Colors() []color.RGB {
	out := make([]color.RGB, len(idx.entries))
	for i, e := range idx.entries {
		out[i] = e.RGB
	}
	return out
}
