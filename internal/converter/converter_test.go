package converter

import (
	"errors"
	"testing"

	"fjacquet/currency-csv/internal/currency"
	"fjacquet/currency-csv/internal/parsererror"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestConvertCell(t *testing.T) {
	tests := []struct {
		name        string
		cell        string
		destination string
		multiplier  string
		expected    string
	}{
		{"usd to eur", "$10.00", "EUR", "0.85", "8,50 €"},
		{"usd to eur second row", "$20.00", "EUR", "0.85", "17,00 €"},
		{"destination by symbol", "$20.00", "€", "0.85", "17,00 €"},
		{"eur to usd grouped", "1 234,56 €", "USD", "1.1", "$1,358.02"},
		{"brl to gbp", "R$ 1.000,00", "GBP", "0.15", "£150.00"},
		{"gbp to brl", "£1,500.00", "BRL", "6.5", "R$ 9.750,00"},
		{"inr to pln", "₹12,345.60", "PLN", "0.05", "617,28 zł"},
		{"krw to hkd", "₩1,000,000", "HKD", "0.0058", "HK$5,800.00"},
		{"padded cell", "  $3.00 ", "THB", "35", "฿105.00"},
		{"zero multiplier", "$3.00", "CNY", "0", "¥0.00"},
		{"rounds half away from zero", "$0.05", "MYR", "0.5", "RM0.03"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ConvertCell(tt.cell, tt.destination, d(tt.multiplier))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestConvertCell_Errors(t *testing.T) {
	tests := []struct {
		name        string
		cell        string
		destination string
		unsupported bool
	}{
		{"unsupported destination", "$10.00", "CHF", true},
		{"unsupported source", "CHF 10.00", "EUR", true},
		{"code instead of symbol in cell", "USD 10.00", "EUR", true},
		{"no symbol", "10.00", "EUR", false},
		{"bad number", "$1.0.0", "EUR", false},
		{"wrong separators for locale", "10.00 €", "USD", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ConvertCell(tt.cell, tt.destination, d("1"))
			require.Error(t, err)
			var unsupported *parsererror.UnsupportedSymbolError
			var numberErr *parsererror.NumberFormatError
			if tt.unsupported {
				assert.True(t, errors.As(err, &unsupported), "got %v", err)
			} else {
				assert.True(t, errors.As(err, &numberErr), "got %v", err)
			}
		})
	}
}

func TestEngine(t *testing.T) {
	e, err := NewEngine("eur", d("0.85"))
	require.NoError(t, err)
	assert.Equal(t, currency.EUR, e.Destination().Code)

	for cell, expected := range map[string]string{"$10.00": "8,50 €", "$1,000.00": "850,00 €"} {
		got, err := e.Convert(cell)
		require.NoError(t, err)
		assert.Equal(t, expected, got)
	}

	_, err = NewEngine("XXX", d("1"))
	assert.Error(t, err)
}

func TestExtractAmount(t *testing.T) {
	amount, src, err := ExtractAmount("R$ 1.234,56")
	require.NoError(t, err)
	assert.Equal(t, currency.BRL, src.Code)
	assert.True(t, d("1234.56").Equal(amount))
}

func TestApply(t *testing.T) {
	assert.Equal(t, "8.50", Apply(d("10"), d("0.85")).StringFixed(2))
	assert.Equal(t, "0.13", Apply(d("0.25"), d("0.5")).StringFixed(2))
	assert.Equal(t, "33.33", Apply(d("100"), d("0.3333")).StringFixed(2))
}

func TestCurrencySymmetry(t *testing.T) {
	tests := []struct {
		from, to   string
		cell       string
		multiplier string
		inverse    string
	}{
		{"USD", "EUR", "$10.00", "0.8", "1.25"},
		{"GBP", "USD", "£1,234.57", "1.25", "0.8"},
		{"EUR", "BRL", "99,99 €", "4", "0.25"},
		{"PLN", "INR", "17,03 zł", "20", "0.05"},
		{"USD", "KRW", "$7.77", "1250", "0.0008"},
	}

	for _, tt := range tests {
		t.Run(tt.from+"->"+tt.to, func(t *testing.T) {
			original, _, err := ExtractAmount(tt.cell)
			require.NoError(t, err)

			there, err := ConvertCell(tt.cell, tt.to, d(tt.multiplier))
			require.NoError(t, err)
			back, err := ConvertCell(there, tt.from, d(tt.inverse))
			require.NoError(t, err)

			roundTripped, src, err := ExtractAmount(back)
			require.NoError(t, err)
			assert.Equal(t, tt.from, string(src.Code))
			assert.True(t, original.Sub(roundTripped).Abs().LessThanOrEqual(d("0.01")),
				"%s -> %s -> %s", tt.cell, there, back)
		})
	}
}
