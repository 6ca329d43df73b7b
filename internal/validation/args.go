package validation

import (
	"fmt"
	"strconv"
	"strings"

	"fjacquet/currency-csv/internal/parsererror"

	"github.com/shopspring/decimal"
)

const (
	// StdinName selects interactive input instead of a file.
	StdinName = "stdin"
	// StdoutName selects console output instead of a file.
	StdoutName = "stdout"
)

// CSVFileName checks that name looks like "file-name.csv" and returns it with
// a lower-cased extension. The special stream name is returned lower-cased.
func CSVFileName(name, stream string) (string, error) {
	name = strings.TrimSpace(name)
	if strings.EqualFold(name, stream) {
		return stream, nil
	}

	parts := strings.Split(name, ".")
	if len(parts) != 2 || parts[0] == "" {
		return "", &parsererror.ConfigurationError{
			Reason: fmt.Sprintf("invalid file name %q, it must be file-name.csv or %s", name, stream),
		}
	}
	if !strings.EqualFold(parts[1], "csv") {
		return "", &parsererror.ConfigurationError{
			Reason: fmt.Sprintf("invalid extension %q, the file name must end with .csv", parts[1]),
		}
	}
	return parts[0] + ".csv", nil
}

// FieldNumber converts a 1-based field argument to a 0-based index.
// columns <= 0 skips the upper bound check.
func FieldNumber(arg string, columns int) (int, error) {
	arg = strings.TrimSpace(arg)
	if arg == "" || strings.TrimLeft(arg, "0123456789") != "" {
		return 0, &parsererror.ConfigurationError{Reason: fmt.Sprintf("field must be a valid integer, got %q", arg)}
	}
	n, err := strconv.Atoi(arg)
	if err != nil {
		return 0, &parsererror.ConfigurationError{Reason: fmt.Sprintf("field %s is not usable", arg), Err: err}
	}
	if n < 1 {
		return 0, &parsererror.ConfigurationError{Reason: "field numbers start at 1"}
	}
	if columns > 0 && n > columns {
		return 0, &parsererror.ConfigurationError{
			Reason: fmt.Sprintf("field %d is larger than the %d columns of the file", n, columns),
		}
	}
	return n - 1, nil
}

// Multiplier parses a non-negative conversion factor and rounds it to two places.
func Multiplier(arg string) (decimal.Decimal, error) {
	arg = strings.TrimSpace(arg)
	m, err := decimal.NewFromString(arg)
	if err != nil {
		return decimal.Zero, &parsererror.ConfigurationError{
			Reason: fmt.Sprintf("multiplier must be an integer or decimal value, got %q", arg),
			Err:    err,
		}
	}
	if m.IsNegative() {
		return decimal.Zero, &parsererror.ConfigurationError{Reason: fmt.Sprintf("multiplier must not be negative, got %s", arg)}
	}
	return m.Round(2), nil
}
