// Package validation checks that a parsed table is fit for currency conversion.
package validation

import (
	"fmt"
	"strings"

	"fjacquet/currency-csv/internal/currency"
	"fjacquet/currency-csv/internal/logging"
	"fjacquet/currency-csv/internal/parsererror"
	"fjacquet/currency-csv/internal/table"
)

// PriceMarker must appear, case-insensitively, in at least one column name.
const PriceMarker = "price"

// Result describes a table that passed validation.
type Result struct {
	// Currency is the canonical currency of the designated column.
	Currency currency.Currency
	// Rows is the number of data rows checked.
	Rows int
}

// Validator runs the ordered table checks. The first failing check wins.
type Validator struct {
	logger logging.Logger
}

// NewValidator creates a Validator. A nil logger discards output.
func NewValidator(logger logging.Logger) *Validator {
	return &Validator{logger: logging.OrDiscard(logger)}
}

// Validate runs the checks with a discarding logger.
func Validate(t *table.Table, field int) (*Result, error) {
	return NewValidator(nil).Validate(t, field)
}

// Validate checks t at the 0-based designated field. It never mutates t.
func (v *Validator) Validate(t *table.Table, field int) (*Result, error) {
	checks := []func(*table.Table, int) error{
		checkNotEmpty,
		checkPriceColumn,
		checkRowShape,
		checkNoEmptyCells,
	}
	for _, check := range checks {
		if err := check(t, field); err != nil {
			v.logger.WithError(err).Debug("Table rejected")
			return nil, err
		}
	}

	cur, err := canonicalCurrency(t, field)
	if err != nil {
		v.logger.WithError(err).Debug("Table rejected")
		return nil, err
	}
	if err := checkAmounts(t, field, cur); err != nil {
		v.logger.WithError(err).Debug("Table rejected")
		return nil, err
	}

	v.logger.Debug("Table is valid",
		logging.F(logging.FieldSource, string(cur.Code)),
		logging.F(logging.FieldCount, len(t.Rows)),
		logging.F(logging.FieldColumn, field+1))

	return &Result{Currency: cur, Rows: len(t.Rows)}, nil
}

func checkNotEmpty(t *table.Table, _ int) error {
	if t.IsEmpty() {
		return &parsererror.StructuralError{Reason: "file is empty, it must hold column names and matching rows"}
	}
	if len(t.Rows) == 0 {
		return &parsererror.StructuralError{Reason: "no data rows, only column names were found"}
	}
	return nil
}

func checkPriceColumn(t *table.Table, _ int) error {
	if HasPriceColumn(t.Columns) {
		return nil
	}
	return &parsererror.StructuralError{Reason: fmt.Sprintf("at least one column name must contain %q", PriceMarker)}
}

// HasPriceColumn reports whether any name contains the price marker.
func HasPriceColumn(columns []string) bool {
	for _, name := range columns {
		if strings.Contains(strings.ToLower(name), PriceMarker) {
			return true
		}
	}
	return false
}

func checkRowShape(t *table.Table, _ int) error {
	for i, row := range t.Rows {
		if len(row) != len(t.Columns) {
			return &parsererror.StructuralError{
				Row:    i + 1,
				Reason: fmt.Sprintf("expected %d cells to match the columns, got %d", len(t.Columns), len(row)),
			}
		}
	}
	return nil
}

func checkNoEmptyCells(t *table.Table, _ int) error {
	for i, row := range t.Rows {
		for j, cell := range row {
			if cell == "" {
				return &parsererror.StructuralError{Row: i + 1, Column: j + 1, Reason: "cell is empty"}
			}
		}
	}
	return nil
}

// canonicalCurrency finds the single supported symbol of the designated column.
func canonicalCurrency(t *table.Table, field int) (currency.Currency, error) {
	if field < 0 || field >= len(t.Columns) {
		return currency.Currency{}, &parsererror.ConfigurationError{
			Reason: fmt.Sprintf("field %d is outside the %d columns of the table", field+1, len(t.Columns)),
		}
	}

	var canonical string
	var cur currency.Currency
	for i, row := range t.Rows {
		cell := strings.TrimSpace(row[field])
		symbol, ok := currency.ExtractSymbol(cell)
		if !ok {
			return currency.Currency{}, &parsererror.CurrencyFormatError{
				Row: i + 1, Value: cell,
				Reason: "currency data missing, check that the field points at the price column",
			}
		}
		if canonical == "" {
			found, err := currency.LookupSymbol(symbol)
			if err != nil {
				return currency.Currency{}, &parsererror.CurrencyFormatError{
					Row: i + 1, Value: cell,
					Reason: fmt.Sprintf("currency symbol is not supported, use one of %s", strings.Join(currency.Symbols(), " ")),
					Err:    err,
				}
			}
			canonical, cur = symbol, found
			continue
		}
		if symbol != canonical {
			return currency.Currency{}, &parsererror.CurrencyFormatError{
				Row: i + 1, Value: cell,
				Reason: fmt.Sprintf("multiple currencies in one file, found %q after %q", symbol, canonical),
			}
		}
	}
	return cur, nil
}

func checkAmounts(t *table.Table, field int, cur currency.Currency) error {
	for i, row := range t.Rows {
		cell := strings.TrimSpace(row[field])
		if _, err := currency.ParseAmount(currency.StripSymbol(cell, cur.Symbol), cur.Convention); err != nil {
			return &parsererror.CurrencyFormatError{
				Row: i + 1, Value: cell,
				Reason: fmt.Sprintf("amount does not follow %s number formatting", cur.Convention.Locale),
				Err:    err,
			}
		}
	}
	return nil
}
