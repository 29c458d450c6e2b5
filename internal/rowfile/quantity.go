package rowfile

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"gopkg.in/yaml.v3"
)

// Quantity is a number written either plainly ("1500", "1.5e3") or with an
// SI prefix ("1.5k", "20m", "3u").
type Quantity float64

// UnmarshalYAML implements yaml.Unmarshaler.
func (q *Quantity) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("rowfile: line %d: %w", node.Line, ErrNotNumber)
	}
	v, err := ParseQuantity(node.Value)
	if err != nil {
		return fmt.Errorf("rowfile: line %d: %w", node.Line, err)
	}
	*q = Quantity(v)
	return nil
}

// ParseQuantity parses a plain or SI-prefixed number. A unit after the
// prefix is rejected, so "1k" parses but "1kHz" does not.
func ParseQuantity(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrNotNumber
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		var unit string
		v, unit, err = humanize.ParseSI(microSign(s))
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrNotNumber, s)
		}
		if unit != "" {
			return 0, fmt.Errorf("%w: %q", ErrUnit, s)
		}
	}

	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: %q", ErrNonFinite, s)
	}

	return v, nil
}

// FormatQuantity renders v with an SI prefix and the given unit, keeping at
// most digits decimals.
func FormatQuantity(v float64, digits int, unit string) string {
	return strings.TrimSpace(humanize.SIWithDigits(v, digits, unit))
}

// microSign accepts a trailing ASCII "u" for the micro prefix.
func microSign(s string) string {
	if strings.HasSuffix(s, "u") {
		return strings.TrimSuffix(s, "u") + "µ"
	}
	return s
}
