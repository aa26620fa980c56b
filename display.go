package caravel

import (
	"fmt"
	"strconv"
	"strings"
)

// DisplayConfig controls how a Series is formatted by String and Format.
type DisplayConfig struct {
	// MaxItems is the maximum number of elements to display. Longer
	// Series show head and tail elements with "..." in between.
	// Default: 10.
	MaxItems int

	// FloatPrecision is the number of significant digits for float
	// values. Default: 6.
	FloatPrecision int

	// ShowDType controls whether the element dtype is included in the
	// header. Default: true.
	ShowDType bool
}

// DefaultDisplayConfig returns the default display configuration.
func DefaultDisplayConfig() DisplayConfig {
	return DisplayConfig{
		MaxItems:       10,
		FloatPrecision: 6,
		ShowDType:      true,
	}
}

// String renders the Series with the default display configuration.
func (s *Series[T]) String() string {
	return s.Format(DefaultDisplayConfig())
}

// Format renders the Series as a one-line header followed by its logical
// values in index order, eliding the middle of long Series.
func (s *Series[T]) Format(cfg DisplayConfig) string {
	if cfg.MaxItems <= 0 {
		cfg.MaxItems = 10
	}
	if cfg.FloatPrecision <= 0 {
		cfg.FloatPrecision = 6
	}

	var sb strings.Builder
	if cfg.ShowDType {
		fmt.Fprintf(&sb, "Series[%s] shape: (%d,)\n", s.DType(), s.Len())
	} else {
		fmt.Fprintf(&sb, "Series shape: (%d,)\n", s.Len())
	}

	sb.WriteString("[")
	n := s.Len()
	if n <= cfg.MaxItems {
		for i := 0; i < n; i++ {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(formatValue(s.at(i), cfg.FloatPrecision))
		}
	} else {
		head := cfg.MaxItems / 2
		tail := cfg.MaxItems - head
		for i := 0; i < head; i++ {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(formatValue(s.at(i), cfg.FloatPrecision))
		}
		sb.WriteString(", ...")
		for i := n - tail; i < n; i++ {
			sb.WriteString(", ")
			sb.WriteString(formatValue(s.at(i), cfg.FloatPrecision))
		}
	}
	sb.WriteString("]")
	return sb.String()
}

func formatValue(v any, precision int) string {
	switch x := v.(type) {
	case float64:
		return strconv.FormatFloat(x, 'g', precision, 64)
	case float32:
		return strconv.FormatFloat(float64(x), 'g', precision, 32)
	case string:
		return strconv.Quote(x)
	default:
		return fmt.Sprint(x)
	}
}
