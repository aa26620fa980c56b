package caravel

import "fmt"

// DType identifies the element type of a Series, for display and for the
// Arrow/Parquet interop layers.
type DType uint8

const (
	Float64 DType = iota
	Float32
	Int64
	Int32
	Bool
	String

	// Any covers element types without a dedicated dtype; such Series
	// still support every view and grouping operation, but not the
	// interop layers.
	Any
)

// String returns the string representation of the DType
func (d DType) String() string {
	switch d {
	case Float64:
		return "Float64"
	case Float32:
		return "Float32"
	case Int64:
		return "Int64"
	case Int32:
		return "Int32"
	case Bool:
		return "Bool"
	case String:
		return "String"
	case Any:
		return "Any"
	default:
		return fmt.Sprintf("Unknown(%d)", d)
	}
}

// IsNumeric returns true if the dtype is a numeric type
func (d DType) IsNumeric() bool {
	switch d {
	case Float64, Float32, Int64, Int32:
		return true
	default:
		return false
	}
}

// DTypeOf returns the DType for element type T.
func DTypeOf[T comparable]() DType {
	var zero T
	switch any(zero).(type) {
	case float64:
		return Float64
	case float32:
		return Float32
	case int64:
		return Int64
	case int32:
		return Int32
	case bool:
		return Bool
	case string:
		return String
	default:
		return Any
	}
}

// DType returns the dtype of the series' element type.
func (s *Series[T]) DType() DType {
	return DTypeOf[T]()
}
