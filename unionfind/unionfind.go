package unionfind

import (
	"fmt"
	"sort"

	"github.com/cockroachdb/errors"
)

// Store is a disjoint-set forest over the elements 0..Count()-1.
//
// link[i] < 0  ⇒ i is a root and −link[i] is the size of its component.
// link[i] >= 0 ⇒ link[i] is the parent of i (not necessarily the root).
//
// A Store is not safe for concurrent use: Find mutates the forest.
type Store struct {
	link   []int32
	policy MergePolicy
}

// New returns a Store of count singleton components.
// Returns ErrNegativeCount for count < 0 and ErrTooLarge for count > MaxCount.
// Complexity: O(count) time and memory.
func New(count int, opts ...Option) (*Store, error) {
	if count < 0 {
		return nil, errors.Wrapf(ErrNegativeCount, "New(%d)", count)
	}
	if count > MaxCount {
		return nil, errors.Wrapf(ErrTooLarge, "New(%d): limit is %d", count, MaxCount)
	}
	cfg := newConfig(opts...)
	s := &Store{
		link:   make([]int32, count),
		policy: cfg.policy,
	}
	s.Reset()

	return s, nil
}

// Reset puts every element back into its own singleton component
// without reallocating the link array.
// Complexity: O(N).
func (s *Store) Reset() {
	for i := range s.link {
		s.link[i] = -1
	}
}

// Count returns the number of elements fixed at construction.
func (s *Store) Count() int {
	return len(s.link)
}

// Policy returns the merge policy the Store was built with.
func (s *Store) Policy() MergePolicy {
	return s.policy
}

// Find returns the root of i's component. Every node visited on the way
// is relinked directly to the root, so later lookups on the same path are O(1).
// Panics if i is outside [0, Count()).
func (s *Store) Find(i int) int {
	s.mustContain(i)
	return int(s.find(int32(i)))
}

// find runs in two passes (locate, then relink) so that long chains never
// grow the goroutine stack.
func (s *Store) find(i int32) int32 {
	root := i
	for s.link[root] >= 0 {
		root = s.link[root]
	}
	for i != root {
		next := s.link[i]
		s.link[i] = root
		i = next
	}

	return root
}

// Union merges the components of i and j and reports whether a merge took
// place. Calling Union on two elements that are already connected is a no-op
// and returns false.
//
// The surviving root is chosen by the Store's MergePolicy; its stored size
// becomes the sum of both components and the other root is linked to it.
// Panics if i or j is outside [0, Count()).
func (s *Store) Union(i, j int) bool {
	s.mustContain(i)
	s.mustContain(j)
	ri, rj := s.find(int32(i)), s.find(int32(j))
	if ri == rj {
		return false
	}
	if s.absorbs(rj, ri) {
		ri, rj = rj, ri
	}
	s.link[ri] += s.link[rj]
	s.link[rj] = ri

	return true
}

// absorbs reports whether root a should absorb root b under the policy.
func (s *Store) absorbs(a, b int32) bool {
	if s.policy == MergeBySize && s.link[a] != s.link[b] {
		// Sizes are stored negated: the more negative entry is the larger set.
		return s.link[a] < s.link[b]
	}
	return a < b
}

// Same reports whether i and j belong to the same component.
func (s *Store) Same(i, j int) bool {
	return s.Find(i) == s.Find(j)
}

// Size returns the number of elements in i's component.
func (s *Store) Size(i int) int {
	return int(-s.link[s.Find(i)])
}

// MaxSize returns the size of the largest component, or 0 for an empty Store.
// Complexity: O(N) scan over the link array.
func (s *Store) MaxSize() int {
	var largest int32
	for _, v := range s.link {
		if -v > largest {
			largest = -v
		}
	}

	return int(largest)
}

// Components returns the number of disjoint components.
// Complexity: O(N).
func (s *Store) Components() int {
	n := 0
	for _, v := range s.link {
		if v < 0 {
			n++
		}
	}

	return n
}

// Roots returns the root of every component in ascending index order.
// Complexity: O(N).
func (s *Store) Roots() []int {
	roots := make([]int, 0, s.Components())
	for i, v := range s.link {
		if v < 0 {
			roots = append(roots, i)
		}
	}

	return roots
}

// Sizes returns the size of every component, largest first.
// The sum of the returned slice always equals Count().
// Complexity: O(N + K log K) for K components.
func (s *Store) Sizes() []int {
	sizes := make([]int, 0, s.Components())
	for _, v := range s.link {
		if v < 0 {
			sizes = append(sizes, int(-v))
		}
	}
	sort.Sort(sort.Reverse(sort.IntSlice(sizes)))

	return sizes
}

// String implements fmt.Stringer.
func (s *Store) String() string {
	return fmt.Sprintf("unionfind.Store(count=%d, components=%d, policy=%s)",
		len(s.link), s.Components(), s.policy)
}

func (s *Store) mustContain(i int) {
	if uint(i) >= uint(len(s.link)) {
		panic(errors.AssertionFailedf("unionfind: index %d out of range [0,%d)", i, len(s.link)))
	}
}
