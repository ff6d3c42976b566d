package goodp

import (
	"fmt"
	"strconv"
	"strings"
)

// ODF geometry attributes carry lengths as strings with an explicit unit,
// e.g. svg:x="8.8cm". The template this library targets uses centimeters
// throughout, so Centimeters is the only unit modeled.

// Centimeters is a length in centimeters.
type Centimeters float64

// String formats the length as an ODF length value ("8.8cm").
// Trailing zeros are trimmed so whole values render as "1cm", not "1.0cm".
func (c Centimeters) String() string {
	s := strconv.FormatFloat(float64(c), 'f', -1, 64)
	return s + "cm"
}

// CM is shorthand for constructing a Centimeters value.
func CM(v float64) Centimeters {
	return Centimeters(v)
}

// ParseCentimeters parses an ODF centimeter length value such as "10.8cm".
func ParseCentimeters(s string) (Centimeters, error) {
	raw, ok := strings.CutSuffix(s, "cm")
	if !ok {
		return 0, fmt.Errorf("not a centimeter length: %q", s)
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid length %q: %w", s, err)
	}
	return Centimeters(v), nil
}
