package currency

import (
	"regexp"
	"strings"

	"fjacquet/currency-csv/internal/parsererror"

	"github.com/shopspring/decimal"
)

// symbolPattern matches the first run that is neither digit, space nor separator.
// Non-breaking spaces count as spaces.
var symbolPattern = regexp.MustCompile(`[^0-9\s,.\x{00a0}\x{202f}]+`)

// plainNumber is what a delocalized amount must look like. Amounts are
// never negative: a leading "-" would be read back as the symbol.
var plainNumber = regexp.MustCompile(`^\+?(\d+(\.\d*)?|\.\d+)$`)

// spaceVariants are accepted wherever a locale groups digits with a space.
var spaceVariants = []string{"\u00a0", "\u202f"}

// ExtractSymbol returns the first non-numeric run of cell.
func ExtractSymbol(cell string) (string, bool) {
	symbol := symbolPattern.FindString(cell)
	return symbol, symbol != ""
}

// StripSymbol removes every occurrence of symbol from cell and trims the rest.
func StripSymbol(cell, symbol string) string {
	if symbol == "" {
		return strings.TrimSpace(cell)
	}
	return strings.TrimSpace(strings.ReplaceAll(cell, symbol, ""))
}

// ParseAmount reads a number written with the separators of conv.
// "1.234,56" is 1234.56 for pt_BR, "1 234,56" for fr_FR, "1,234.56" for en_US.
func ParseAmount(text string, conv Convention) (decimal.Decimal, error) {
	s := strings.TrimSpace(text)
	if conv.GroupingSep != "" {
		s = strings.ReplaceAll(s, conv.GroupingSep, "")
		if conv.GroupingSep == " " {
			for _, v := range spaceVariants {
				s = strings.ReplaceAll(s, v, "")
			}
		}
	}
	if conv.DecimalSep != "." {
		if strings.Contains(s, ".") {
			return decimal.Zero, &parsererror.NumberFormatError{Value: text, Locale: conv.Locale}
		}
		s = strings.Replace(s, conv.DecimalSep, ".", 1)
	}
	if !plainNumber.MatchString(s) {
		return decimal.Zero, &parsererror.NumberFormatError{Value: text, Locale: conv.Locale}
	}

	amount, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, &parsererror.NumberFormatError{Value: text, Locale: conv.Locale, Err: err}
	}
	return amount, nil
}

// FormatAmount renders amount rounded to two places in the convention of c,
// e.g. "$1,234.50", "1 234,50 €" or "R$ 1.234,50".
func FormatAmount(amount decimal.Decimal, c Currency) string {
	conv := c.Convention
	rounded := RoundCents(amount)

	fixed := rounded.Abs().StringFixed(2)
	intPart, fracPart, _ := strings.Cut(fixed, ".")
	number := groupDigits(intPart, conv.GroupingSep) + conv.DecimalSep + fracPart

	var b strings.Builder
	if rounded.IsNegative() {
		b.WriteString("-")
	}
	if conv.Position.IsPrefix() {
		b.WriteString(c.Symbol)
		if conv.Position.IsSpaced() {
			b.WriteString(" ")
		}
		b.WriteString(number)
	} else {
		b.WriteString(number)
		if conv.Position.IsSpaced() {
			b.WriteString(" ")
		}
		b.WriteString(c.Symbol)
	}
	return b.String()
}

// RoundCents rounds to two decimal places, half away from zero.
func RoundCents(amount decimal.Decimal) decimal.Decimal {
	return amount.Round(2)
}

func groupDigits(digits, sep string) string {
	if sep == "" || len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteString(sep)
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
