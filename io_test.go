package caravel

import (
	"bytes"
	"slices"
	"strconv"
	"strings"
	"testing"
)

// ============================================================================
// CSV Tests
// ============================================================================

func TestCSVRoundTrip(t *testing.T) {
	s := NewSeries([]int64{10, 20, 30})

	var buf bytes.Buffer
	if err := WriteCSVToWriter(&buf, "amount", s); err != nil {
		t.Fatalf("WriteCSVToWriter error: %v", err)
	}

	raw, err := ReadCSVFromReader(&buf)
	if err != nil {
		t.Fatalf("ReadCSVFromReader error: %v", err)
	}
	if !slices.Equal(raw.Values(), []string{"10", "20", "30"}) {
		t.Errorf("values = %v, want [10 20 30]", raw.Values())
	}

	// Typed parsing composes with Map.
	parsed, err := Map(raw, func(v string) int64 {
		n, _ := strconv.ParseInt(v, 10, 64)
		return n
	})
	if err != nil {
		t.Fatalf("Map error: %v", err)
	}
	if !slices.Equal(parsed.Values(), s.Values()) {
		t.Errorf("parsed values = %v, want %v", parsed.Values(), s.Values())
	}
}

func TestReadCSV_Options(t *testing.T) {
	input := "# meta\nname,score\nalice, 10\nbob,20\ncarol,30\n"

	s, err := ReadCSVFromReader(strings.NewReader(input), CSVReadOptions{
		Delimiter: ',',
		HasHeader: true,
		SkipRows:  1,
		Column:    1,
		MaxRows:   2,
		TrimSpace: true,
	})
	if err != nil {
		t.Fatalf("ReadCSVFromReader error: %v", err)
	}
	if !slices.Equal(s.Values(), []string{"10", "20"}) {
		t.Errorf("values = %v, want [10 20]", s.Values())
	}
}

func TestReadCSV_ColumnOutOfRange(t *testing.T) {
	_, err := ReadCSVFromReader(strings.NewReader("a,b\n1,2\n"), CSVReadOptions{
		HasHeader: true,
		Column:    5,
	})
	if err == nil {
		t.Error("ReadCSVFromReader should fail for a column outside the record")
	}
}

func TestWriteCSV_LogicalProjection(t *testing.T) {
	s, _ := NewSeriesWithIndex([]int{1, 0}, []string{"first", "second"})

	var buf bytes.Buffer
	if err := WriteCSVToWriter(&buf, "word", s); err != nil {
		t.Fatalf("WriteCSVToWriter error: %v", err)
	}
	want := "word\nsecond\nfirst\n"
	if buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}
}

// ============================================================================
// JSON Tests
// ============================================================================

func TestJSONRoundTrip(t *testing.T) {
	s := NewSeries([]float64{1.5, 2.5})

	var buf bytes.Buffer
	if err := WriteJSONTo(&buf, s); err != nil {
		t.Fatalf("WriteJSONTo error: %v", err)
	}

	back, err := ReadJSONFrom[float64](&buf)
	if err != nil {
		t.Fatalf("ReadJSONFrom error: %v", err)
	}
	if !slices.Equal(back.Values(), s.Values()) {
		t.Errorf("round-trip values = %v, want %v", back.Values(), s.Values())
	}
}

func TestWriteJSON_LogicalProjection(t *testing.T) {
	s, _ := NewSeriesWithIndex([]int{2, 2, 0}, []int64{1, 2, 3})

	var buf bytes.Buffer
	if err := WriteJSONTo(&buf, s); err != nil {
		t.Fatalf("WriteJSONTo error: %v", err)
	}
	if got := strings.TrimSpace(buf.String()); got != "[3,3,1]" {
		t.Errorf("output = %q, want %q", got, "[3,3,1]")
	}
}

func TestReadJSON_Invalid(t *testing.T) {
	if _, err := ReadJSONFrom[int64](strings.NewReader("{not json")); err == nil {
		t.Error("ReadJSONFrom should fail on malformed input")
	}
}
