package caravel

import "testing"

func TestDTypeOf(t *testing.T) {
	if got := DTypeOf[float64](); got != Float64 {
		t.Errorf("DTypeOf[float64]() = %v, want Float64", got)
	}
	if got := DTypeOf[int64](); got != Int64 {
		t.Errorf("DTypeOf[int64]() = %v, want Int64", got)
	}
	if got := DTypeOf[string](); got != String {
		t.Errorf("DTypeOf[string]() = %v, want String", got)
	}
	if got := DTypeOf[bool](); got != Bool {
		t.Errorf("DTypeOf[bool]() = %v, want Bool", got)
	}
	type custom struct{ a int }
	if got := DTypeOf[custom](); got != Any {
		t.Errorf("DTypeOf[custom]() = %v, want Any", got)
	}
}

func TestDTypeString(t *testing.T) {
	cases := map[DType]string{
		Float64: "Float64",
		Float32: "Float32",
		Int64:   "Int64",
		Int32:   "Int32",
		Bool:    "Bool",
		String:  "String",
		Any:     "Any",
	}
	for d, want := range cases {
		if d.String() != want {
			t.Errorf("%d.String() = %q, want %q", d, d.String(), want)
		}
	}
}

func TestDTypeIsNumeric(t *testing.T) {
	for _, d := range []DType{Float64, Float32, Int64, Int32} {
		if !d.IsNumeric() {
			t.Errorf("%s.IsNumeric() = false, want true", d)
		}
	}
	for _, d := range []DType{Bool, String, Any} {
		if d.IsNumeric() {
			t.Errorf("%s.IsNumeric() = true, want false", d)
		}
	}
}

func TestSeriesDType(t *testing.T) {
	if got := NewSeries([]float64{1}).DType(); got != Float64 {
		t.Errorf("DType() = %v, want Float64", got)
	}
}
