package caravel

import (
	"fmt"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"
)

// ============================================================================
// Arrow Export
// ============================================================================

// ToArrow exports the logical values of a Series (the buffer projected
// through the index) to an Arrow array. Supported element types are
// float64, float32, int64, int32, bool and string. The caller is
// responsible for calling Release() on the returned array.
func ToArrow[T comparable](s *Series[T], mem memory.Allocator) (arrow.Array, error) {
	if s == nil {
		return nil, fmt.Errorf("%w: nil series", ErrInvalidArgument)
	}
	if mem == nil {
		mem = memory.DefaultAllocator
	}

	switch vals := any(s.Values()).(type) {
	case []float64:
		builder := array.NewFloat64Builder(mem)
		defer builder.Release()
		builder.AppendValues(vals, nil)
		return builder.NewArray(), nil

	case []float32:
		builder := array.NewFloat32Builder(mem)
		defer builder.Release()
		builder.AppendValues(vals, nil)
		return builder.NewArray(), nil

	case []int64:
		builder := array.NewInt64Builder(mem)
		defer builder.Release()
		builder.AppendValues(vals, nil)
		return builder.NewArray(), nil

	case []int32:
		builder := array.NewInt32Builder(mem)
		defer builder.Release()
		builder.AppendValues(vals, nil)
		return builder.NewArray(), nil

	case []bool:
		builder := array.NewBooleanBuilder(mem)
		defer builder.Release()
		for _, v := range vals {
			builder.Append(v)
		}
		return builder.NewArray(), nil

	case []string:
		builder := array.NewStringBuilder(mem)
		defer builder.Release()
		builder.AppendValues(vals, nil)
		return builder.NewArray(), nil

	default:
		return nil, fmt.Errorf("unsupported dtype for Arrow export: %s", s.DType())
	}
}

// ToArrowRecord exports a Series as a single-column Arrow Record with the
// given field name. The caller is responsible for calling Release() on the
// returned Record.
func ToArrowRecord[T comparable](name string, s *Series[T], mem memory.Allocator) (arrow.Record, error) {
	arrowType, err := dtypeToArrowType(DTypeOf[T]())
	if err != nil {
		return nil, err
	}
	arr, err := ToArrow(s, mem)
	if err != nil {
		return nil, err
	}
	defer arr.Release()

	schema := arrow.NewSchema([]arrow.Field{{Name: name, Type: arrowType, Nullable: false}}, nil)
	return array.NewRecord(schema, []arrow.Array{arr}, int64(s.Len())), nil
}

// dtypeToArrowType converts a DType to the matching Arrow DataType
func dtypeToArrowType(dtype DType) (arrow.DataType, error) {
	switch dtype {
	case Float64:
		return arrow.PrimitiveTypes.Float64, nil
	case Float32:
		return arrow.PrimitiveTypes.Float32, nil
	case Int64:
		return arrow.PrimitiveTypes.Int64, nil
	case Int32:
		return arrow.PrimitiveTypes.Int32, nil
	case Bool:
		return arrow.FixedWidthTypes.Boolean, nil
	case String:
		return arrow.BinaryTypes.String, nil
	default:
		return nil, fmt.Errorf("unsupported dtype: %s", dtype)
	}
}

// ============================================================================
// Arrow Import
// ============================================================================

// FromArrow creates an identity-indexed Series from an Arrow array. The
// array's element type must match T. Arrays containing nulls are rejected;
// the Series data model has no null slot.
func FromArrow[T comparable](arr arrow.Array) (*Series[T], error) {
	if arr == nil {
		return nil, fmt.Errorf("%w: nil array", ErrInvalidArgument)
	}
	if arr.NullN() > 0 {
		return nil, fmt.Errorf("%w: array contains %d nulls", ErrInvalidArgument, arr.NullN())
	}

	values := make([]T, 0, arr.Len())
	out := any(&values)

	switch a := arr.(type) {
	case *array.Float64:
		dst, ok := out.(*[]float64)
		if !ok {
			return nil, importMismatch[T](arr)
		}
		*dst = append(*dst, a.Float64Values()...)

	case *array.Float32:
		dst, ok := out.(*[]float32)
		if !ok {
			return nil, importMismatch[T](arr)
		}
		*dst = append(*dst, a.Float32Values()...)

	case *array.Int64:
		dst, ok := out.(*[]int64)
		if !ok {
			return nil, importMismatch[T](arr)
		}
		*dst = append(*dst, a.Int64Values()...)

	case *array.Int32:
		dst, ok := out.(*[]int32)
		if !ok {
			return nil, importMismatch[T](arr)
		}
		*dst = append(*dst, a.Int32Values()...)

	case *array.Boolean:
		dst, ok := out.(*[]bool)
		if !ok {
			return nil, importMismatch[T](arr)
		}
		for i := 0; i < a.Len(); i++ {
			*dst = append(*dst, a.Value(i))
		}

	case *array.String:
		dst, ok := out.(*[]string)
		if !ok {
			return nil, importMismatch[T](arr)
		}
		for i := 0; i < a.Len(); i++ {
			*dst = append(*dst, a.Value(i))
		}

	default:
		return nil, fmt.Errorf("unsupported Arrow type for import: %s", arr.DataType())
	}

	return NewSeries(values), nil
}

func importMismatch[T comparable](arr arrow.Array) error {
	return fmt.Errorf("%w: Arrow type %s does not match element type %s",
		ErrInvalidArgument, arr.DataType(), DTypeOf[T]())
}
