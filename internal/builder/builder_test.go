package builder

import (
	"bytes"
	"strings"
	"testing"

	"fjacquet/currency-csv/internal/currency"
	"fjacquet/currency-csv/internal/logging"
	"fjacquet/currency-csv/internal/parsererror"
	"fjacquet/currency-csv/internal/table"
	"fjacquet/currency-csv/internal/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func answers(lines ...string) *strings.Reader {
	return strings.NewReader(strings.Join(lines, "\n") + "\n")
}

func TestBuild(t *testing.T) {
	var out bytes.Buffer
	mock := logging.NewMockLogger()
	b := NewBuilder(answers("eur", "2", "Name|Unit Price", "2", "Pen|1234.5", "Ink|0.99"), &out, "|", mock)

	tbl, src, err := b.Build("USD", 1)
	require.NoError(t, err)
	assert.Equal(t, currency.EUR, src.Code)
	assert.Equal(t, &table.Table{
		Columns: []string{"Name", "Unit Price"},
		Rows:    [][]string{{"Pen", "1 234,50 €"}, {"Ink", "0,99 €"}},
	}, tbl)

	assert.Contains(t, out.String(), "Supported Currencies: BRL, CNY, EUR")
	assert.Contains(t, out.String(), "Row 2 Data: ")
	assert.True(t, mock.HasEntry("INFO", "Table built from console input"))

	res, err := validation.Validate(tbl, 1)
	require.NoError(t, err)
	assert.Equal(t, currency.EUR, res.Currency.Code)
}

func TestBuild_CustomSeparator(t *testing.T) {
	b := NewBuilder(answers("GBP", "2", "price;item", "1", "3;tea"), &bytes.Buffer{}, ";", nil)
	tbl, _, err := b.Build("EUR", 0)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"£3.00", "tea"}}, tbl.Rows)
}

func TestBuild_Failures(t *testing.T) {
	tests := []struct {
		name    string
		input   *strings.Reader
		dest    string
		field   int
		kind    parsererror.Kind
		message string
	}{
		{"unsupported currency", answers("CHF"), "USD", 1, parsererror.KindConfiguration, "listed options"},
		{"empty currency", answers(""), "USD", 1, parsererror.KindConfiguration, "listed options"},
		{"same as destination", answers("usd"), "USD", 1, parsererror.KindConfiguration, "must differ"},
		{"column count not a number", answers("EUR", "two"), "USD", 1, parsererror.KindStructural, "whole number"},
		{"column count zero", answers("EUR", "0"), "USD", 1, parsererror.KindStructural, "at least 1"},
		{"column names count mismatch", answers("EUR", "3", "Name|Price"), "USD", 1, parsererror.KindStructural, "expected 3 column names"},
		{"digit column name", answers("EUR", "2", "Name|42"), "USD", 1, parsererror.KindStructural, "only digits"},
		{"field outside columns", answers("EUR", "2", "Name|Price"), "USD", 2, parsererror.KindConfiguration, "outside"},
		{"field not price column", answers("EUR", "2", "Name|Price"), "USD", 0, parsererror.KindStructural, "must contain"},
		{"row count zero", answers("EUR", "2", "Name|Price", "0"), "USD", 1, parsererror.KindStructural, "at least 1"},
		{"row cell count mismatch", answers("EUR", "2", "Name|Price", "1", "Pen"), "USD", 1, parsererror.KindStructural, "expected 2 cells"},
		{"amount not a number", answers("EUR", "2", "Name|Price", "1", "Pen|abc"), "USD", 1, parsererror.KindCurrencyFormat, "plain number"},
		{"negative amount", answers("EUR", "2", "Name|Price", "1", "Pen|-5"), "USD", 1, parsererror.KindCurrencyFormat, "must not be negative"},
		{"input ends early", answers("EUR", "2"), "USD", 1, parsererror.KindIO, "input ended"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBuilder(tt.input, &bytes.Buffer{}, "|", nil)
			tbl, _, err := b.Build(tt.dest, tt.field)
			require.Error(t, err)
			assert.Nil(t, tbl)
			assert.Equal(t, tt.kind, parsererror.KindOf(err), err.Error())
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}

func TestNewBuilder_DefaultSeparator(t *testing.T) {
	b := NewBuilder(strings.NewReader(""), &bytes.Buffer{}, "", nil)
	assert.Equal(t, table.DefaultSeparator, b.sep)
}

func TestBuild_AmountContainsSeparator(t *testing.T) {
	b := NewBuilder(answers("EUR", "2", "Name,Price", "1", "Pen,3"), &bytes.Buffer{}, ",", nil)
	tbl, _, err := b.Build("USD", 1)
	require.Error(t, err)
	assert.Nil(t, tbl)
	assert.Equal(t, parsererror.KindConfiguration, parsererror.KindOf(err))
	assert.Contains(t, err.Error(), "contains the separator")
}
