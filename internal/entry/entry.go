// Package entry decodes raw user input into stored field values.
//
// It is the presentation-side half of input handling: numbers are parsed and
// range-checked here before they ever reach intake.State, which performs no
// validation of its own.
package entry

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/mrsinham/alzforge/internal/intake"
)

var (
	// ErrOutOfRange is returned for a value outside its field's bounds.
	ErrOutOfRange = errors.New("value out of range")

	// ErrNotANumber is returned when a numeric field gets non-numeric text.
	ErrNotANumber = errors.New("not a number")

	// ErrNotNumeric is returned when a numeric helper is used on a categorical field.
	ErrNotNumeric = errors.New("field is not numeric")
)

// validate is shared; validator.Validate caches parsed tags and is safe for
// concurrent use.
var validate = validator.New()

// ParseNumber parses raw text for a numeric field and checks its range.
// Integer fields reject fractional input. Decimal fields are rounded to the
// precision their input displays, so a stored value reads back unchanged.
func ParseNumber(spec intake.FieldSpec, raw string) (float64, error) {
	if spec.Kind == intake.KindCategory {
		return 0, fmt.Errorf("%s: %w", spec.Name, ErrNotNumeric)
	}

	text := strings.TrimSpace(raw)
	if text == "" {
		return 0, fmt.Errorf("%s: value is required: %w", spec.Name, ErrNotANumber)
	}

	var v float64
	if spec.Kind == intake.KindInteger {
		n, err := strconv.Atoi(text)
		if err != nil {
			return 0, fmt.Errorf("%s: must be a whole number: %w", spec.Name, ErrNotANumber)
		}
		v = float64(n)
	} else {
		f, err := strconv.ParseFloat(text, 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return 0, fmt.Errorf("%s: must be a number: %w", spec.Name, ErrNotANumber)
		}
		v = round(f, spec.Precision)
	}

	if err := ValidateRange(spec, v); err != nil {
		return 0, err
	}
	return v, nil
}

// ValidateRange checks v against [spec.Min, spec.Max].
func ValidateRange(spec intake.FieldSpec, v float64) error {
	tag := fmt.Sprintf("gte=%s,lte=%s", formatBound(spec.Min), formatBound(spec.Max))
	if err := validate.Var(v, tag); err != nil {
		return fmt.Errorf("%s must be between %s and %s: %w",
			spec.Name, FormatNumber(spec, spec.Min), FormatNumber(spec, spec.Max), ErrOutOfRange)
	}
	return nil
}

// Clamp pulls v into [spec.Min, spec.Max].
func Clamp(spec intake.FieldSpec, v float64) float64 {
	return math.Min(math.Max(v, spec.Min), spec.Max)
}

// FormatNumber renders v the way the field's input shows it.
func FormatNumber(spec intake.FieldSpec, v float64) string {
	if spec.Kind == intake.KindDecimal {
		return strconv.FormatFloat(v, 'f', spec.Precision, 64)
	}
	return intake.FormatValue(v)
}

// DecodeOption maps a categorical label to its stored code.
func DecodeOption(spec intake.FieldSpec, label string) (float64, error) {
	if spec.Kind != intake.KindCategory {
		return 0, fmt.Errorf("%s: %w", spec.Name, intake.ErrUnknownLabel)
	}
	code, err := intake.ParseOption(spec, label)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", spec.Name, err)
	}
	return code, nil
}

// Decode accepts either a label (categorical fields) or a number.
func Decode(spec intake.FieldSpec, raw string) (float64, error) {
	if spec.Kind == intake.KindCategory {
		return DecodeOption(spec, raw)
	}
	return ParseNumber(spec, raw)
}

// Describe summarizes the accepted values of a field: "1 to 120" for
// numbers, "0=Male, 1=Female" for categories.
func Describe(spec intake.FieldSpec) string {
	if spec.Kind != intake.KindCategory {
		return FormatNumber(spec, spec.Min) + " to " + FormatNumber(spec, spec.Max)
	}
	parts := make([]string, 0, len(spec.Options))
	for _, o := range spec.Options {
		label := o.Label
		if label == "" {
			label = `""`
		}
		parts = append(parts, strconv.Itoa(o.Code)+"="+label)
	}
	return strings.Join(parts, ", ")
}

func round(v float64, precision int) float64 {
	p := math.Pow10(precision)
	return math.Round(v*p) / p
}

func formatBound(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
