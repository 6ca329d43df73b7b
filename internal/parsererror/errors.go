// Package parsererror defines the typed failures raised while parsing,
// validating and converting currency tables.
package parsererror

import (
	"errors"
	"fmt"
)

// Kind classifies a failure for user-facing reporting.
type Kind int

const (
	KindUnknown Kind = iota
	KindStructural
	KindCurrencyFormat
	KindConfiguration
	KindIO
)

func (k Kind) String() string {
	switch k {
	case KindStructural:
		return "structural"
	case KindCurrencyFormat:
		return "currency format"
	case KindConfiguration:
		return "configuration"
	case KindIO:
		return "io"
	default:
		return "unknown"
	}
}

type kinded interface {
	Kind() Kind
}

// KindOf returns the kind of the first typed error in err's chain.
func KindOf(err error) Kind {
	var k kinded
	if errors.As(err, &k) {
		return k.Kind()
	}
	return KindUnknown
}

// ParseError represents a failure to split raw text into a table
type ParseError struct {
	Line   int
	Reason string
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("parse error at line %d: %s", e.Line, e.Reason)
	}
	return fmt.Sprintf("parse error: %s", e.Reason)
}

func (e *ParseError) Kind() Kind { return KindStructural }

// StructuralError reports a table that is empty or not rectangular.
// Row is the 1-based data row, zero when the failure is not row specific.
type StructuralError struct {
	Row    int
	Column int
	Reason string
}

func (e *StructuralError) Error() string {
	switch {
	case e.Row > 0 && e.Column > 0:
		return fmt.Sprintf("invalid table: row %d, column %d: %s", e.Row, e.Column, e.Reason)
	case e.Row > 0:
		return fmt.Sprintf("invalid table: row %d: %s", e.Row, e.Reason)
	default:
		return fmt.Sprintf("invalid table: %s", e.Reason)
	}
}

func (e *StructuralError) Kind() Kind { return KindStructural }

// CurrencyFormatError reports a monetary cell that cannot be interpreted.
type CurrencyFormatError struct {
	Row    int
	Value  string
	Reason string
	Err    error
}

func (e *CurrencyFormatError) Error() string {
	msg := fmt.Sprintf("invalid currency data at row %d ('%s'): %s", e.Row, e.Value, e.Reason)
	if e.Err != nil {
		msg += fmt.Sprintf(": %v", e.Err)
	}
	return msg
}

func (e *CurrencyFormatError) Unwrap() error { return e.Err }

func (e *CurrencyFormatError) Kind() Kind { return KindCurrencyFormat }

// ConfigurationError reports a conversion request that cannot be honoured.
type ConfigurationError struct {
	Reason string
	Err    error
}

func (e *ConfigurationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid request: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("invalid request: %s", e.Reason)
}

func (e *ConfigurationError) Unwrap() error { return e.Err }

func (e *ConfigurationError) Kind() Kind { return KindConfiguration }

// IOError wraps an underlying read or write failure.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

func (e *IOError) Kind() Kind { return KindIO }

// UnsupportedSymbolError is returned for a currency symbol or code outside
// the supported set.
type UnsupportedSymbolError struct {
	Symbol string
}

func (e *UnsupportedSymbolError) Error() string {
	return fmt.Sprintf("unsupported currency '%s'", e.Symbol)
}

func (e *UnsupportedSymbolError) Kind() Kind { return KindCurrencyFormat }

// NumberFormatError is returned when an amount does not follow the
// separators of its locale.
type NumberFormatError struct {
	Value  string
	Locale string
	Err    error
}

func (e *NumberFormatError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("'%s' is not a valid %s amount: %v", e.Value, e.Locale, e.Err)
	}
	return fmt.Sprintf("'%s' is not a valid %s amount", e.Value, e.Locale)
}

func (e *NumberFormatError) Unwrap() error { return e.Err }

func (e *NumberFormatError) Kind() Kind { return KindCurrencyFormat }
