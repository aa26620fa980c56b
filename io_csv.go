package caravel

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
)

// CSVReadOptions configures CSV reading behavior
type CSVReadOptions struct {
	Delimiter rune // Field delimiter (default ',')
	HasHeader bool // First row is header (default true)
	Column    int  // Which column to read (default 0)
	SkipRows  int  // Skip first N rows
	MaxRows   int  // Max rows to read (0 = unlimited)
	TrimSpace bool // Trim whitespace from values
}

// DefaultCSVReadOptions returns default CSV reading options
func DefaultCSVReadOptions() CSVReadOptions {
	return CSVReadOptions{
		Delimiter: ',',
		HasHeader: true,
		TrimSpace: true,
	}
}

// ReadCSV reads one column of a CSV file into a string Series. Typed
// Series are obtained by parsing afterwards with Map.
func ReadCSV(path string, opts ...CSVReadOptions) (*Series[string], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	return ReadCSVFromReader(f, opts...)
}

// ReadCSVFromReader reads one column of CSV data from r into a string
// Series.
func ReadCSVFromReader(r io.Reader, opts ...CSVReadOptions) (*Series[string], error) {
	opt := DefaultCSVReadOptions()
	if len(opts) > 0 {
		opt = opts[0]
	}
	if opt.Delimiter == 0 {
		opt.Delimiter = ','
	}

	reader := csv.NewReader(r)
	reader.Comma = opt.Delimiter
	reader.FieldsPerRecord = -1

	for i := 0; i < opt.SkipRows; i++ {
		if _, err := reader.Read(); err != nil {
			return nil, fmt.Errorf("failed to skip row %d: %w", i, err)
		}
	}
	if opt.HasHeader {
		if _, err := reader.Read(); err != nil && err != io.EOF {
			return nil, fmt.Errorf("failed to read header: %w", err)
		}
	}

	var values []string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read row: %w", err)
		}
		if opt.Column < 0 || opt.Column >= len(record) {
			return nil, fmt.Errorf("%w: column %d outside record of width %d", ErrInvalidArgument, opt.Column, len(record))
		}
		v := record[opt.Column]
		if opt.TrimSpace {
			v = strings.TrimSpace(v)
		}
		values = append(values, v)
		if opt.MaxRows > 0 && len(values) >= opt.MaxRows {
			break
		}
	}

	return NewSeries(values), nil
}

// WriteCSV writes the logical values of a Series to path as a
// single-column CSV file with a header row.
func WriteCSV[T comparable](path, name string, s *Series[T]) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer f.Close()

	if err := WriteCSVToWriter(f, name, s); err != nil {
		return err
	}
	return f.Close()
}

// WriteCSVToWriter writes the logical values of a Series to w as CSV.
func WriteCSVToWriter[T comparable](w io.Writer, name string, s *Series[T]) error {
	if s == nil {
		return fmt.Errorf("%w: nil series", ErrInvalidArgument)
	}
	writer := csv.NewWriter(w)
	if err := writer.Write([]string{name}); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for i := 0; i < s.Len(); i++ {
		if err := writer.Write([]string{fmt.Sprint(s.at(i))}); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i, err)
		}
	}
	writer.Flush()
	return writer.Error()
}
