package caravel

import (
	"fmt"
	"iter"
	"slices"
)

// Series is an immutable, indexed view over a columnar value buffer.
//
// The buffer holds the raw elements and is shared, never copied, by every
// Series derived from it through index-only transformations. The index is a
// sequence of positions into the buffer, owned by each view; it defines both
// the logical length of the Series and the logical order of its elements.
// The index may repeat or omit buffer positions, so the logical length is
// independent of the buffer length.
//
// All transformations return a new Series; none mutate the receiver. A
// Series may therefore be shared freely across goroutines without
// synchronization.
type Series[T comparable] struct {
	values []T   // shared immutable buffer
	index  []int // positions into values, owned by this view
}

// ============================================================================
// Construction
// ============================================================================

// NewSeries creates a Series from a slice of values with the default
// identity index [0, 1, ..., len(values)-1]. The slice is copied once so
// later mutation by the caller cannot reach the buffer. A nil slice yields
// an empty Series.
func NewSeries[T comparable](values []T) *Series[T] {
	return &Series[T]{
		values: slices.Clone(values),
		index:  identityIndex(len(values)),
	}
}

// NewSeriesWithIndex creates a Series with an explicit index. Every index
// entry must be within [0, len(values)); the index may reference buffer
// positions more than once or not at all, so the logical length may differ
// from len(values). Both slices are copied.
func NewSeriesWithIndex[T comparable](index []int, values []T) (*Series[T], error) {
	for _, idx := range index {
		if idx < 0 || idx >= len(values) {
			return nil, fmt.Errorf("%w: index entry %d outside [0, %d)", ErrInvalidArgument, idx, len(values))
		}
	}
	return &Series[T]{
		values: slices.Clone(values),
		index:  slices.Clone(index),
	}, nil
}

// derive creates a view sharing the receiver's buffer with a new index.
// The caller hands over ownership of index.
func (s *Series[T]) derive(index []int) *Series[T] {
	return &Series[T]{values: s.values, index: index}
}

func identityIndex(n int) []int {
	index := make([]int, n)
	for i := range index {
		index[i] = i
	}
	return index
}

// ============================================================================
// Accessors
// ============================================================================

// Len returns the logical length of the Series, which is the length of its
// index, not of the underlying buffer.
func (s *Series[T]) Len() int {
	return len(s.index)
}

// IsEmpty returns true if the series has no elements.
func (s *Series[T]) IsEmpty() bool {
	return len(s.index) == 0
}

// At returns the value at logical position i.
func (s *Series[T]) At(i int) (T, error) {
	if i < 0 || i >= len(s.index) {
		var zero T
		return zero, fmt.Errorf("%w: %d (size %d)", ErrOutOfRange, i, len(s.index))
	}
	return s.values[s.index[i]], nil
}

// at is the unchecked form of At, for callers that already validated i.
func (s *Series[T]) at(i int) T {
	return s.values[s.index[i]]
}

// Index returns a copy of the index sequence.
func (s *Series[T]) Index() []int {
	return slices.Clone(s.index)
}

// Values returns a new slice with the buffer re-projected through the
// index: element i is the value at logical position i. Its length is Len(),
// not the buffer length.
func (s *Series[T]) Values() []T {
	projected := make([]T, len(s.index))
	for i, idx := range s.index {
		projected[i] = s.values[idx]
	}
	return projected
}

// Unique returns the distinct values reachable through the index, in
// first-occurrence order. Buffer values the index never references are not
// included.
func (s *Series[T]) Unique() []T {
	seen := make(map[T]struct{}, len(s.index))
	distinct := make([]T, 0)
	for _, idx := range s.index {
		v := s.values[idx]
		if _, ok := seen[v]; !ok {
			seen[v] = struct{}{}
			distinct = append(distinct, v)
		}
	}
	return distinct
}

// All returns an iterator over the values in index order. Each traversal
// starts fresh at logical position 0.
func (s *Series[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, idx := range s.index {
			if !yield(s.values[idx]) {
				return
			}
		}
	}
}

// ============================================================================
// View Transformations
// ============================================================================

// WithIndex returns a new Series whose elements are selected from the
// current Series by logical position. Each entry of newIndex refers to a
// position in [0, Len()) of the receiver, not to a buffer position; entries
// are resolved through the current index, and the result shares the same
// buffer.
func (s *Series[T]) WithIndex(newIndex []int) (*Series[T], error) {
	resolved := make([]int, len(newIndex))
	for i, pos := range newIndex {
		if pos < 0 || pos >= len(s.index) {
			return nil, fmt.Errorf("%w: position %d outside [0, %d)", ErrInvalidArgument, pos, len(s.index))
		}
		resolved[i] = s.index[pos]
	}
	return s.derive(resolved), nil
}

// SortBy returns a new Series ordered by cmp applied to the values. The
// sort is stable and the receiver is left unchanged; only a permutation of
// the index is built, the buffer is shared.
func (s *Series[T]) SortBy(cmp func(a, b T) int) (*Series[T], error) {
	if cmp == nil {
		return nil, fmt.Errorf("%w: nil comparator", ErrInvalidArgument)
	}
	positions := identityIndex(len(s.index))
	slices.SortStableFunc(positions, func(a, b int) int {
		return cmp(s.at(a), s.at(b))
	})
	return s.WithIndex(positions)
}

// Filter returns a new Series keeping logical position i iff mask is true
// at position i. The mask must have the same length as the receiver.
// Relative order among kept positions is preserved and the buffer is
// shared, not copied.
func (s *Series[T]) Filter(mask *Series[bool]) (*Series[T], error) {
	if mask == nil {
		return nil, fmt.Errorf("%w: nil mask", ErrInvalidArgument)
	}
	if mask.Len() != s.Len() {
		return nil, fmt.Errorf("%w: mask size %d != series size %d", ErrInvalidArgument, mask.Len(), s.Len())
	}
	kept := make([]int, 0, len(s.index))
	for i, idx := range s.index {
		if mask.at(i) {
			kept = append(kept, idx)
		}
	}
	return s.derive(kept), nil
}

// Where is a convenience form of Filter taking a raw bool slice.
func (s *Series[T]) Where(mask []bool) (*Series[T], error) {
	return s.Filter(NewSeries(mask))
}

// Slice returns a view of logical positions [start, end). Bounds are
// clamped to the valid range; an inverted range yields an empty Series.
// The buffer is shared.
func (s *Series[T]) Slice(start, end int) *Series[T] {
	if start < 0 {
		start = 0
	}
	if end > len(s.index) {
		end = len(s.index)
	}
	if start >= end {
		return s.derive([]int{})
	}
	return s.derive(slices.Clone(s.index[start:end]))
}

// Head returns a view of the first n elements.
func (s *Series[T]) Head(n int) *Series[T] {
	if n < 0 {
		n = 0
	}
	return s.Slice(0, n)
}

// Tail returns a view of the last n elements.
func (s *Series[T]) Tail(n int) *Series[T] {
	if n < 0 {
		n = 0
	}
	if n > len(s.index) {
		n = len(s.index)
	}
	return s.Slice(len(s.index)-n, len(s.index))
}

// ============================================================================
// Functional Operations
// ============================================================================
//
// Map, Combine, Reduce and Prefix change the element or result type, so
// they are package functions rather than methods.

// Map applies mapper to each value in index order and returns a new Series
// over a fresh identity-indexed buffer of the results. The length is
// unchanged; the buffer is not shared with the input.
func Map[T, U comparable](s *Series[T], mapper func(T) U) (*Series[U], error) {
	if s == nil || mapper == nil {
		return nil, fmt.Errorf("%w: nil series or mapper", ErrInvalidArgument)
	}
	mapped := make([]U, len(s.index))
	for i := range s.index {
		mapped[i] = mapper(s.at(i))
	}
	return NewSeries(mapped), nil
}

// Combine pairs the two Series positionally and applies combiner to each
// pair, returning a new Series of the results over a fresh buffer. Both
// Series must have the same length.
func Combine[T, U, R comparable](a *Series[T], b *Series[U], combiner func(T, U) R) (*Series[R], error) {
	if a == nil || b == nil || combiner == nil {
		return nil, fmt.Errorf("%w: nil series or combiner", ErrInvalidArgument)
	}
	if a.Len() != b.Len() {
		return nil, fmt.Errorf("%w: series sizes %d and %d must match", ErrInvalidArgument, a.Len(), b.Len())
	}
	combined := make([]R, a.Len())
	for i := range combined {
		combined[i] = combiner(a.at(i), b.at(i))
	}
	return NewSeries(combined), nil
}

// Reduce performs a left fold over the values in index order.
func Reduce[T comparable, R any](s *Series[T], accumulator func(R, T) R, initial R) (R, error) {
	var zero R
	if s == nil || accumulator == nil {
		return zero, fmt.Errorf("%w: nil series or accumulator", ErrInvalidArgument)
	}
	result := initial
	for i := range s.index {
		result = accumulator(result, s.at(i))
	}
	return result, nil
}

// Prefix computes an inclusive prefix scan: element i of the result is op
// folded over the first i+1 values. The result has the same length as the
// input and its own fresh buffer.
func Prefix[T, R comparable](s *Series[T], op func(R, T) R, initial R) (*Series[R], error) {
	if s == nil || op == nil {
		return nil, fmt.Errorf("%w: nil series or operator", ErrInvalidArgument)
	}
	result := make([]R, len(s.index))
	running := initial
	for i := range s.index {
		running = op(running, s.at(i))
		result[i] = running
	}
	return NewSeries(result), nil
}
