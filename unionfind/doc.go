// Package unionfind provides a flat, index-based disjoint-set forest
// (union–find) with path compression and size-tracking unions.
//
// What:
//
//   - Store holds N elements labeled 0..N-1 in a single []int32 link array.
//     A negative entry marks a root and stores −(component size); a
//     non-negative entry is the index of the parent.
//   - Find resolves an element to its root and compresses the visited path.
//   - Union merges two components; Same, Size and MaxSize answer queries.
//
// Merge policy:
//
//   - MergeByIndex (default): the root with the smaller index absorbs the
//     root with the larger index, regardless of component sizes. Every root
//     is therefore the smallest element of its component.
//   - MergeBySize: the larger component absorbs the smaller one (ties go to
//     the smaller index). This bounds tree height independently of the order
//     in which indices are merged.
//
// Both policies produce identical partitions; only the choice of root differs.
//
// Complexity:
//
//   - New, Reset:        O(N) time, O(N) memory.
//   - Find, Union, Same: amortized near O(1) (inverse Ackermann with MergeBySize).
//   - MaxSize, Sizes:    O(N).
//
// Errors:
//
//   - ErrNegativeCount: New called with count < 0.
//   - ErrTooLarge:      count does not fit the 32-bit index width.
//
// An index outside [0, Count()) is a programming error and panics.
package unionfind
