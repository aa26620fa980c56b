package caravel

import (
	"bytes"
	"path/filepath"
	"slices"
	"testing"
)

func TestParquetRoundTripFile(t *testing.T) {
	s := NewSeries([]float64{1.5, 2.5, 3.5, 4.5})
	path := filepath.Join(t.TempDir(), "values.parquet")

	if err := WriteParquet(path, s); err != nil {
		t.Fatalf("WriteParquet error: %v", err)
	}

	back, err := ReadParquet[float64](path)
	if err != nil {
		t.Fatalf("ReadParquet error: %v", err)
	}
	if !slices.Equal(back.Values(), s.Values()) {
		t.Errorf("round-trip values = %v, want %v", back.Values(), s.Values())
	}
}

func TestParquetRoundTripBuffer(t *testing.T) {
	s := NewSeries([]int64{10, 20, 30})

	var buf bytes.Buffer
	if err := WriteParquetTo(&buf, s); err != nil {
		t.Fatalf("WriteParquetTo error: %v", err)
	}

	back, err := ReadParquetFrom[int64](bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	if err != nil {
		t.Fatalf("ReadParquetFrom error: %v", err)
	}
	if !slices.Equal(back.Values(), []int64{10, 20, 30}) {
		t.Errorf("round-trip values = %v, want [10 20 30]", back.Values())
	}
}

func TestParquet_WritesLogicalProjection(t *testing.T) {
	// A view's file holds its logical values; reading back yields an
	// identity-indexed series with the same logical content.
	s, _ := NewSeriesWithIndex([]int{2, 0}, []string{"x", "y", "z"})

	var buf bytes.Buffer
	if err := WriteParquetTo(&buf, s); err != nil {
		t.Fatalf("WriteParquetTo error: %v", err)
	}

	back, err := ReadParquetFrom[string](bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	if err != nil {
		t.Fatalf("ReadParquetFrom error: %v", err)
	}
	if !slices.Equal(back.Values(), []string{"z", "x"}) {
		t.Errorf("values = %v, want [z x]", back.Values())
	}
	if !slices.Equal(back.Index(), []int{0, 1}) {
		t.Errorf("Index() = %v, want identity", back.Index())
	}
}
