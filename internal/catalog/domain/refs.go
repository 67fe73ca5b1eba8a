package domain

import "slices"

// copyRefs returns a new slice holding the same references. A nil input
// yields an empty, non-nil slice.
func copyRefs[T any](refs []*T) []*T {
	out := make([]*T, len(refs))
	copy(out, refs)
	return out
}

// removeRef drops every element that is the same reference as target.
// Entities carry no value equality, so identity is the equality contract.
func removeRef[T any](refs []*T, target *T) []*T {
	return slices.DeleteFunc(refs, func(ref *T) bool { return ref == target })
}
