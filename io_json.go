package caravel

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// WriteJSON writes the logical values of a Series to path as a JSON array.
func WriteJSON[T comparable](path string, s *Series[T]) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer f.Close()

	if err := WriteJSONTo(f, s); err != nil {
		return err
	}
	return f.Close()
}

// WriteJSONTo writes the logical values of a Series to w as a JSON array.
// The values are emitted in index order; the index itself is not part of
// the encoding, so a round-trip yields an identity-indexed Series with the
// same logical content.
func WriteJSONTo[T comparable](w io.Writer, s *Series[T]) error {
	if s == nil {
		return fmt.Errorf("%w: nil series", ErrInvalidArgument)
	}
	enc := json.NewEncoder(w)
	if err := enc.Encode(s.Values()); err != nil {
		return fmt.Errorf("failed to encode json: %w", err)
	}
	return nil
}

// ReadJSON reads a JSON array from path into an identity-indexed Series.
func ReadJSON[T comparable](path string) (*Series[T], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	return ReadJSONFrom[T](f)
}

// ReadJSONFrom reads a JSON array from r into an identity-indexed Series.
func ReadJSONFrom[T comparable](r io.Reader) (*Series[T], error) {
	var values []T
	dec := json.NewDecoder(r)
	if err := dec.Decode(&values); err != nil {
		return nil, fmt.Errorf("failed to decode json: %w", err)
	}
	return NewSeries(values), nil
}
