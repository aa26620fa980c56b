package caravel

import (
	"strings"
	"testing"
)

func TestString_Short(t *testing.T) {
	s := NewSeries([]int64{1, 2, 3})
	got := s.String()

	if !strings.Contains(got, "Series[Int64] shape: (3,)") {
		t.Errorf("String() missing header: %q", got)
	}
	if !strings.Contains(got, "[1, 2, 3]") {
		t.Errorf("String() missing values: %q", got)
	}
}

func TestString_LongElides(t *testing.T) {
	values := make([]int64, 100)
	for i := range values {
		values[i] = int64(i)
	}
	got := NewSeries(values).String()

	if !strings.Contains(got, "...") {
		t.Errorf("String() of long series should elide the middle: %q", got)
	}
	if !strings.Contains(got, "shape: (100,)") {
		t.Errorf("String() missing shape: %q", got)
	}
	if !strings.Contains(got, "0,") || !strings.Contains(got, "99") {
		t.Errorf("String() should keep head and tail: %q", got)
	}
}

func TestString_LogicalOrder(t *testing.T) {
	s, _ := NewSeriesWithIndex([]int{1, 0}, []string{"a", "b"})
	got := s.String()
	if !strings.Contains(got, `["b", "a"]`) {
		t.Errorf("String() = %q, want logical order [\"b\", \"a\"]", got)
	}
}

func TestFormat_Config(t *testing.T) {
	s := NewSeries([]float64{1.23456789, 2, 3, 4})

	got := s.Format(DisplayConfig{MaxItems: 2, FloatPrecision: 3, ShowDType: false})
	if !strings.Contains(got, "Series shape: (4,)") {
		t.Errorf("Format() header = %q", got)
	}
	if !strings.Contains(got, "1.23,") {
		t.Errorf("Format() should honor FloatPrecision: %q", got)
	}
	if !strings.Contains(got, "...") {
		t.Errorf("Format() should elide with MaxItems=2: %q", got)
	}
}
