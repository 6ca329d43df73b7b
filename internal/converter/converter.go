// Package converter rewrites one locale-formatted monetary cell into another
// currency using a fixed multiplier.
package converter

import (
	"errors"
	"strings"

	"fjacquet/currency-csv/internal/currency"
	"fjacquet/currency-csv/internal/parsererror"

	"github.com/shopspring/decimal"
)

var errNoSymbol = errors.New("no currency symbol found")

// Engine converts cells into one destination currency at one multiplier.
type Engine struct {
	destination currency.Currency
	multiplier  decimal.Decimal
}

// NewEngine resolves the destination once for a whole column.
func NewEngine(destination string, multiplier decimal.Decimal) (*Engine, error) {
	dest, err := currency.Lookup(destination)
	if err != nil {
		return nil, err
	}
	return &Engine{destination: dest, multiplier: multiplier}, nil
}

// Destination returns the resolved destination currency.
func (e *Engine) Destination() currency.Currency {
	return e.destination
}

// Convert rewrites cell into the destination currency.
func (e *Engine) Convert(cell string) (string, error) {
	amount, _, err := ExtractAmount(cell)
	if err != nil {
		return "", err
	}
	return currency.FormatAmount(Apply(amount, e.multiplier), e.destination), nil
}

// ConvertCell converts a single cell without building an Engine.
func ConvertCell(cell, destination string, multiplier decimal.Decimal) (string, error) {
	e, err := NewEngine(destination, multiplier)
	if err != nil {
		return "", err
	}
	return e.Convert(cell)
}

// ExtractAmount reads the symbol and the amount of a source cell.
func ExtractAmount(cell string) (decimal.Decimal, currency.Currency, error) {
	cell = strings.TrimSpace(cell)
	symbol, ok := currency.ExtractSymbol(cell)
	if !ok {
		return decimal.Zero, currency.Currency{}, &parsererror.NumberFormatError{
			Value: cell,
			Err:   errNoSymbol,
		}
	}
	src, err := currency.LookupSymbol(symbol)
	if err != nil {
		return decimal.Zero, currency.Currency{}, err
	}
	amount, err := currency.ParseAmount(currency.StripSymbol(cell, symbol), src.Convention)
	if err != nil {
		return decimal.Zero, currency.Currency{}, err
	}
	return amount, src, nil
}

// Apply multiplies and rounds to cents. Every cell goes through this one rule.
func Apply(amount, multiplier decimal.Decimal) decimal.Decimal {
	return currency.RoundCents(amount.Mul(multiplier))
}
