// Package paint resolves declarative color values into normalized RGB.
//
// A color value in a shape configuration is one of:
//   - the literal "transparent", meaning no paint is applied
//   - a symbolic name from the fixed color table (case-insensitive)
//   - a 6-digit hex string with an optional leading '#'
//
// Resolution is total on that domain and fails hard everywhere else:
// malformed hex and unknown names return an INVALID_COLOR error, never a
// best-effort fallback.
package paint

import (
	"strings"

	"github.com/shapesmith/shapesmith/pkg/errors"
)

// RGB is a resolved paint color with each channel in the range [0, 1].
type RGB struct {
	R float64 `json:"r"`
	G float64 `json:"g"`
	B float64 `json:"b"`
}

// Transparent is the literal value that short-circuits to paint absence.
const Transparent = "transparent"

// Resolve converts a configuration color value into an RGB triple.
// It returns (nil, nil) for Transparent: a transparent fill is the absence
// of paint, not a color. The field name is carried into error messages so
// callers can report which attribute held the offending value.
func Resolve(field, value string) (*RGB, error) {
	if strings.EqualFold(value, Transparent) {
		return nil, nil
	}

	if hex, ok := Lookup(value); ok {
		value = hex
	}

	rgb, err := ParseHex(value)
	if err != nil {
		return nil, errors.New(errors.ErrCodeInvalidColor, "invalid %s color: %q", field, value)
	}
	return &rgb, nil
}

// ParseHex parses a 6-digit hex color with an optional leading '#'.
// Parsing is case-insensitive and rejects every other length or character.
func ParseHex(s string) (RGB, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 {
		return RGB{}, errors.New(errors.ErrCodeInvalidColor, "hex color must have exactly 6 digits: %q", s)
	}

	var channels [3]float64
	for i := range channels {
		hi, ok1 := hexDigit(hex[2*i])
		lo, ok2 := hexDigit(hex[2*i+1])
		if !ok1 || !ok2 {
			return RGB{}, errors.New(errors.ErrCodeInvalidColor, "invalid hex digit in color: %q", s)
		}
		channels[i] = float64(hi<<4|lo) / 255
	}

	return RGB{R: channels[0], G: channels[1], B: channels[2]}, nil
}

func hexDigit(c byte) (uint8, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}
