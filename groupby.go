package caravel

import (
	"fmt"
	"slices"
)

// GroupBy partitions the logical positions of a Series by value equality.
//
// The mapping is built once, in a single pass over the inducing Series, and
// is immutable afterwards: each distinct value maps to the ordered list of
// logical positions where it occurs, and the distinct values themselves are
// kept in first-occurrence order. That order defines the row order of every
// aggregated result. Go maps do not preserve insertion order, so the key
// list is recorded alongside the map during the grouping pass.
type GroupBy[T comparable] struct {
	series *Series[T]
	groups map[T][]int
	keys   []T // distinct values, first-occurrence order
}

// NewGroupBy groups a Series by its values.
func NewGroupBy[T comparable](s *Series[T]) (*GroupBy[T], error) {
	if s == nil {
		return nil, fmt.Errorf("%w: nil series", ErrInvalidArgument)
	}
	g := &GroupBy[T]{
		series: s,
		groups: make(map[T][]int),
	}
	for i := 0; i < s.Len(); i++ {
		v := s.at(i)
		if _, ok := g.groups[v]; !ok {
			g.keys = append(g.keys, v)
		}
		g.groups[v] = append(g.groups[v], i)
	}
	return g, nil
}

// GroupBy groups the series by its values.
func (s *Series[T]) GroupBy() *GroupBy[T] {
	g, _ := NewGroupBy(s)
	return g
}

// Series returns the original inducing Series, unchanged.
func (g *GroupBy[T]) Series() *Series[T] {
	return g.series
}

// Groups returns a copy of the group mapping: for each distinct value, the
// logical positions belonging to that group, in encounter order. Mutating
// the returned map or its slices does not affect the GroupBy.
func (g *GroupBy[T]) Groups() map[T][]int {
	copied := make(map[T][]int, len(g.groups))
	for k, positions := range g.groups {
		copied[k] = slices.Clone(positions)
	}
	return copied
}

// Keys returns the distinct group-key values in first-occurrence order,
// which is also the row order of any aggregated result.
func (g *GroupBy[T]) Keys() []T {
	return slices.Clone(g.keys)
}

// Len returns the number of distinct groups.
func (g *GroupBy[T]) Len() int {
	return len(g.keys)
}

// subSeries builds a fresh default-indexed Series holding the values of one
// group in their original relative order. It is not a view into the
// inducing Series.
func (g *GroupBy[T]) subSeries(key T) *Series[T] {
	positions := g.groups[key]
	vals := make([]T, len(positions))
	for i, pos := range positions {
		vals[i] = g.series.at(pos)
	}
	return NewSeries(vals)
}

// Aggregate applies aggregator to the sub-Series of each group, in Keys()
// order, and returns a new identity-indexed Series of the results, one per
// distinct group.
func Aggregate[T, R comparable](g *GroupBy[T], aggregator func(*Series[T]) R) (*Series[R], error) {
	if g == nil || aggregator == nil {
		return nil, fmt.Errorf("%w: nil group or aggregator", ErrInvalidArgument)
	}
	results := make([]R, 0, len(g.keys))
	for _, key := range g.keys {
		results = append(results, aggregator(g.subSeries(key)))
	}
	return NewSeries(results), nil
}

// ============================================================================
// Built-in Aggregations
// ============================================================================

// Count returns the number of elements per group.
func (g *GroupBy[T]) Count() *Series[int64] {
	counts, _ := Aggregate(g, func(sub *Series[T]) int64 { return sub.Count() })
	return counts
}

// Sum returns the per-group sum.
func (g *GroupBy[T]) Sum(coerce ...NumericFunc[T]) (*Series[float64], error) {
	return g.aggregateFloat((*Series[T]).Sum, coerce)
}

// Mean returns the per-group mean.
func (g *GroupBy[T]) Mean(coerce ...NumericFunc[T]) (*Series[float64], error) {
	return g.aggregateFloat((*Series[T]).Mean, coerce)
}

// Min returns the per-group minimum.
func (g *GroupBy[T]) Min(coerce ...NumericFunc[T]) (*Series[float64], error) {
	return g.aggregateFloat((*Series[T]).Min, coerce)
}

// Max returns the per-group maximum.
func (g *GroupBy[T]) Max(coerce ...NumericFunc[T]) (*Series[float64], error) {
	return g.aggregateFloat((*Series[T]).Max, coerce)
}

func (g *GroupBy[T]) aggregateFloat(stat func(*Series[T], ...NumericFunc[T]) (float64, error), coerce []NumericFunc[T]) (*Series[float64], error) {
	results := make([]float64, 0, len(g.keys))
	for _, key := range g.keys {
		v, err := stat(g.subSeries(key), coerce...)
		if err != nil {
			return nil, fmt.Errorf("group %v: %w", key, err)
		}
		results = append(results, v)
	}
	return NewSeries(results), nil
}
