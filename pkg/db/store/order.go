package store

import (
	"slices"
)

// descending returns a deduplicated copy of seqs ordered from the highest
// row handle to the lowest. Removing rows in this order keeps the handles
// of the rows still to be removed valid in index-addressed tables.
func descending(seqs []uint) []uint {
	out := slices.Clone(seqs)
	slices.Sort(out)
	out = slices.Compact(out)
	slices.Reverse(out)
	return out
}
