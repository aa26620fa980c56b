package caravel

import (
	"fmt"
	"math"
	"slices"
)

// NumericFunc coerces an element to float64 for the statistical methods.
// It may fail for element types that have no numeric interpretation.
type NumericFunc[T any] func(T) (float64, error)

// asFloat64 is the default coercion, covering the Go numeric kinds.
func asFloat64(v any) (float64, error) {
	switch x := v.(type) {
	case float64:
		return x, nil
	case float32:
		return float64(x), nil
	case int:
		return float64(x), nil
	case int64:
		return float64(x), nil
	case int32:
		return float64(x), nil
	case int16:
		return float64(x), nil
	case int8:
		return float64(x), nil
	case uint:
		return float64(x), nil
	case uint64:
		return float64(x), nil
	case uint32:
		return float64(x), nil
	case uint16:
		return float64(x), nil
	case uint8:
		return float64(x), nil
	default:
		return 0, fmt.Errorf("%w: cannot coerce %T to float64", ErrNotNumeric, v)
	}
}

// floats coerces every logical value to float64, in index order. All
// statistics go through this projection, so they see only index-referenced
// values, never the raw buffer.
func (s *Series[T]) floats(coerce []NumericFunc[T]) ([]float64, error) {
	fn := func(v T) (float64, error) { return asFloat64(v) }
	if len(coerce) > 0 && coerce[0] != nil {
		fn = coerce[0]
	}
	out := make([]float64, len(s.index))
	for i := range s.index {
		f, err := fn(s.at(i))
		if err != nil {
			return nil, fmt.Errorf("%w: position %d: %v", ErrNotNumeric, i, err)
		}
		out[i] = f
	}
	return out, nil
}

// Count returns the number of logical elements.
func (s *Series[T]) Count() int64 {
	return int64(len(s.index))
}

// Sum returns the sum of all values. An optional coercion function may be
// supplied; by default the Go numeric kinds are accepted. The sum of an
// empty Series is 0.
func (s *Series[T]) Sum(coerce ...NumericFunc[T]) (float64, error) {
	vals, err := s.floats(coerce)
	if err != nil {
		return 0, err
	}
	sum := 0.0
	for _, v := range vals {
		sum += v
	}
	return sum, nil
}

// Mean returns the arithmetic mean of all values.
func (s *Series[T]) Mean(coerce ...NumericFunc[T]) (float64, error) {
	if s.IsEmpty() {
		return 0, fmt.Errorf("%w: cannot compute mean", ErrEmptySeries)
	}
	sum, err := s.Sum(coerce...)
	if err != nil {
		return 0, err
	}
	return sum / float64(len(s.index)), nil
}

// Min returns the smallest value.
func (s *Series[T]) Min(coerce ...NumericFunc[T]) (float64, error) {
	if s.IsEmpty() {
		return 0, fmt.Errorf("%w: cannot compute min", ErrEmptySeries)
	}
	vals, err := s.floats(coerce)
	if err != nil {
		return 0, err
	}
	return slices.Min(vals), nil
}

// Max returns the largest value.
func (s *Series[T]) Max(coerce ...NumericFunc[T]) (float64, error) {
	if s.IsEmpty() {
		return 0, fmt.Errorf("%w: cannot compute max", ErrEmptySeries)
	}
	vals, err := s.floats(coerce)
	if err != nil {
		return 0, err
	}
	return slices.Max(vals), nil
}

// Var returns the sample variance (denominator n-1). At least two elements
// are required.
func (s *Series[T]) Var(coerce ...NumericFunc[T]) (float64, error) {
	if len(s.index) < 2 {
		return 0, fmt.Errorf("%w: variance needs at least 2 elements, have %d", ErrEmptySeries, len(s.index))
	}
	vals, err := s.floats(coerce)
	if err != nil {
		return 0, err
	}
	mean := 0.0
	for _, v := range vals {
		mean += v
	}
	mean /= float64(len(vals))
	diffs := 0.0
	for _, v := range vals {
		d := v - mean
		diffs += d * d
	}
	return diffs / float64(len(vals)-1), nil
}

// Std returns the sample standard deviation, sqrt(Var).
func (s *Series[T]) Std(coerce ...NumericFunc[T]) (float64, error) {
	variance, err := s.Var(coerce...)
	if err != nil {
		return 0, err
	}
	return math.Sqrt(variance), nil
}

// Median returns the median value. The coerced values are sorted first;
// for odd length the middle element is returned, for even length the two
// central elements are averaged.
func (s *Series[T]) Median(coerce ...NumericFunc[T]) (float64, error) {
	if s.IsEmpty() {
		return 0, fmt.Errorf("%w: cannot compute median", ErrEmptySeries)
	}
	vals, err := s.floats(coerce)
	if err != nil {
		return 0, err
	}
	slices.Sort(vals)
	n := len(vals)
	if n%2 != 0 {
		return vals[n/2], nil
	}
	return (vals[n/2-1] + vals[n/2]) / 2, nil
}
