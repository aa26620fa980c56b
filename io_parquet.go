package caravel

import (
	"fmt"
	"io"
	"os"

	"github.com/parquet-go/parquet-go"
)

// parquetRow is the single-column row shape used for Series Parquet files.
type parquetRow[T any] struct {
	Value T `parquet:"value"`
}

// WriteParquet writes the logical values of a Series to a single-column
// Parquet file at the given path.
func WriteParquet[T comparable](path string, s *Series[T]) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer f.Close()

	if err := WriteParquetTo(f, s); err != nil {
		return err
	}
	return f.Close()
}

// WriteParquetTo writes the logical values of a Series to w in Parquet
// format.
func WriteParquetTo[T comparable](w io.Writer, s *Series[T]) error {
	if s == nil {
		return fmt.Errorf("%w: nil series", ErrInvalidArgument)
	}
	rows := make([]parquetRow[T], s.Len())
	for i := range rows {
		rows[i] = parquetRow[T]{Value: s.at(i)}
	}
	if err := parquet.Write(w, rows); err != nil {
		return fmt.Errorf("failed to write parquet: %w", err)
	}
	return nil
}

// ReadParquet reads a single-column Parquet file written by WriteParquet
// back into an identity-indexed Series.
func ReadParquet[T comparable](path string) (*Series[T], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	return ReadParquetFrom[T](f, stat.Size())
}

// ReadParquetFrom reads Parquet data from an io.ReaderAt into a Series.
func ReadParquetFrom[T comparable](r io.ReaderAt, size int64) (*Series[T], error) {
	rows, err := parquet.Read[parquetRow[T]](r, size)
	if err != nil {
		return nil, fmt.Errorf("failed to read parquet: %w", err)
	}
	values := make([]T, len(rows))
	for i, row := range rows {
		values[i] = row.Value
	}
	return NewSeries(values), nil
}
