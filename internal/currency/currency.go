// Package currency holds the fixed registry of supported currencies and the
// locale conventions used to read and write their amounts.
package currency

import (
	"sort"
	"strings"

	"fjacquet/currency-csv/internal/parsererror"
)

// Code is the canonical ISO 4217 identifier of a supported currency.
type Code string

const (
	USD Code = "USD"
	EUR Code = "EUR"
	BRL Code = "BRL"
	CNY Code = "CNY"
	INR Code = "INR"
	MYR Code = "MYR"
	PLN Code = "PLN"
	KRW Code = "KRW"
	THB Code = "THB"
	GBP Code = "GBP"
	HKD Code = "HKD"
)

// Position tells where the symbol goes relative to the number.
type Position int

const (
	PrefixAttached Position = iota
	PrefixSpaced
	SuffixAttached
	SuffixSpaced
)

// IsPrefix reports whether the symbol precedes the number.
func (p Position) IsPrefix() bool {
	return p == PrefixAttached || p == PrefixSpaced
}

// IsSpaced reports whether a space separates symbol and number.
func (p Position) IsSpaced() bool {
	return p == PrefixSpaced || p == SuffixSpaced
}

func (p Position) String() string {
	switch p {
	case PrefixAttached:
		return "prefix"
	case PrefixSpaced:
		return "prefix, spaced"
	case SuffixAttached:
		return "suffix"
	case SuffixSpaced:
		return "suffix, spaced"
	default:
		return "unknown"
	}
}

// Convention is the numeric formatting of one locale.
type Convention struct {
	Locale      string
	DecimalSep  string
	GroupingSep string
	Position    Position
}

// Currency is one row of the registry.
type Currency struct {
	Code       Code
	Symbol     string
	Convention Convention
}

func (c Currency) String() string {
	return string(c.Code)
}

var (
	usStyle = func(locale string) Convention {
		return Convention{Locale: locale, DecimalSep: ".", GroupingSep: ",", Position: PrefixAttached}
	}

	registry = []Currency{
		{USD, "$", usStyle("en_US")},
		{EUR, "€", Convention{Locale: "fr_FR", DecimalSep: ",", GroupingSep: " ", Position: SuffixSpaced}},
		{BRL, "R$", Convention{Locale: "pt_BR", DecimalSep: ",", GroupingSep: ".", Position: PrefixSpaced}},
		{CNY, "¥", usStyle("zh_CN")},
		{INR, "₹", usStyle("en_IN")},
		{MYR, "RM", usStyle("en_MY")},
		{PLN, "zł", Convention{Locale: "pl_PL", DecimalSep: ",", GroupingSep: " ", Position: SuffixSpaced}},
		{KRW, "₩", usStyle("ko_KR")},
		{THB, "฿", usStyle("th_TH")},
		{GBP, "£", usStyle("en_GB")},
		{HKD, "HK$", usStyle("zh_HK")},
	}

	byCode   = make(map[Code]Currency, len(registry))
	bySymbol = make(map[string]Currency, len(registry))
)

func init() {
	for _, c := range registry {
		byCode[c.Code] = c
		bySymbol[c.Symbol] = c
	}
}

// Lookup resolves a currency code (case-insensitive) or symbol (exact).
func Lookup(symbolOrCode string) (Currency, error) {
	trimmed := strings.TrimSpace(symbolOrCode)
	if c, ok := byCode[Code(strings.ToUpper(trimmed))]; ok {
		return c, nil
	}
	if c, ok := bySymbol[trimmed]; ok {
		return c, nil
	}
	return Currency{}, &parsererror.UnsupportedSymbolError{Symbol: symbolOrCode}
}

// LookupSymbol resolves a symbol only. Codes are not accepted, so a cell
// reading "USD10.00" is not mistaken for a supported symbol.
func LookupSymbol(symbol string) (Currency, error) {
	if c, ok := bySymbol[symbol]; ok {
		return c, nil
	}
	return Currency{}, &parsererror.UnsupportedSymbolError{Symbol: symbol}
}

// FormatConvention returns the locale convention for a symbol or code.
func FormatConvention(symbolOrCode string) (Convention, error) {
	c, err := Lookup(symbolOrCode)
	if err != nil {
		return Convention{}, err
	}
	return c.Convention, nil
}

// All returns the registry ordered by code.
func All() []Currency {
	out := make([]Currency, len(registry))
	copy(out, registry)
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out
}

// Codes returns the supported codes ordered alphabetically.
func Codes() []string {
	all := All()
	codes := make([]string, len(all))
	for i, c := range all {
		codes[i] = string(c.Code)
	}
	return codes
}

// Symbols returns the supported symbols in code order.
func Symbols() []string {
	all := All()
	symbols := make([]string, len(all))
	for i, c := range all {
		symbols[i] = c.Symbol
	}
	return symbols
}
