package validation

import (
	"testing"

	"fjacquet/currency-csv/internal/parsererror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCSVFileName(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		stream   string
		expected string
		hasError bool
	}{
		{"plain", "prices.csv", StdinName, "prices.csv", false},
		{"upper extension", "prices.CSV", StdinName, "prices.csv", false},
		{"mixed extension", " prices.CsV ", StdoutName, "prices.csv", false},
		{"stdin", "STDIN", StdinName, "stdin", false},
		{"stdout", "Stdout", StdoutName, "stdout", false},
		{"stdin not accepted for output", "stdin", StdoutName, "", true},
		{"no extension", "prices", StdinName, "", true},
		{"two dots", "prices.2024.csv", StdinName, "", true},
		{"empty stem", ".csv", StdinName, "", true},
		{"wrong extension", "prices.txt", StdinName, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CSVFileName(tt.input, tt.stream)
			if tt.hasError {
				require.Error(t, err)
				assert.Equal(t, parsererror.KindConfiguration, parsererror.KindOf(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestFieldNumber(t *testing.T) {
	tests := []struct {
		name     string
		arg      string
		columns  int
		expected int
		hasError bool
	}{
		{"first", "1", 3, 0, false},
		{"last", "3", 3, 2, false},
		{"padded", " 2 ", 3, 1, false},
		{"unbounded", "9", 0, 8, false},
		{"zero", "0", 3, 0, true},
		{"too large", "4", 3, 0, true},
		{"negative", "-1", 3, 0, true},
		{"text", "two", 3, 0, true},
		{"empty", "", 3, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FieldNumber(tt.arg, tt.columns)
			if tt.hasError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestMultiplier(t *testing.T) {
	tests := []struct {
		arg      string
		expected string
		hasError bool
	}{
		{"0.85", "0.85", false},
		{"2", "2", false},
		{"1.176", "1.18", false},
		{" 0.5 ", "0.5", false},
		{"0", "0", false},
		{"-1", "", true},
		{"abc", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.arg, func(t *testing.T) {
			got, err := Multiplier(tt.arg)
			if tt.hasError {
				assert.Equal(t, parsererror.KindConfiguration, parsererror.KindOf(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got.String())
		})
	}
}
