// Package builder assembles a currency table from answers typed at the console.
package builder

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"fjacquet/currency-csv/internal/currency"
	"fjacquet/currency-csv/internal/logging"
	"fjacquet/currency-csv/internal/parsererror"
	"fjacquet/currency-csv/internal/table"
	"fjacquet/currency-csv/internal/validation"

	"github.com/shopspring/decimal"
)

var errEndOfInput = errors.New("input ended before the table was complete")

// Builder prompts for a table one answer at a time.
type Builder struct {
	scanner *bufio.Scanner
	out     io.Writer
	sep     string
	logger  logging.Logger
}

// NewBuilder reads answers from in and writes prompts to out.
func NewBuilder(in io.Reader, out io.Writer, sep string, logger logging.Logger) *Builder {
	if sep == "" {
		sep = table.DefaultSeparator
	}
	return &Builder{
		scanner: bufio.NewScanner(in),
		out:     out,
		sep:     sep,
		logger:  logging.OrDiscard(logger),
	}
}

// Build asks for the source currency, the columns and the rows. The amount in
// the designated field is typed as a plain decimal ("22.83") and stored in
// the source currency's locale format.
func (b *Builder) Build(destination string, field int) (*table.Table, currency.Currency, error) {
	src, err := b.askCurrency(destination)
	if err != nil {
		return nil, currency.Currency{}, err
	}

	columnCount, err := b.askCount("\nEnter the number of columns", "Column Count: ", 1)
	if err != nil {
		return nil, currency.Currency{}, err
	}

	columns, err := b.askColumns(columnCount, field)
	if err != nil {
		return nil, currency.Currency{}, err
	}

	rowCount, err := b.askCount("\nEnter the number of rows", "Row Count: ", 1)
	if err != nil {
		return nil, currency.Currency{}, err
	}

	t := &table.Table{Columns: columns}
	for i := 0; i < rowCount; i++ {
		row, err := b.askRow(i+1, columnCount, field, src)
		if err != nil {
			return nil, currency.Currency{}, err
		}
		t.Rows = append(t.Rows, row)
	}

	b.logger.Info("Table built from console input",
		logging.F(logging.FieldSource, string(src.Code)),
		logging.F(logging.FieldCount, len(t.Rows)))
	return t, src, nil
}

func (b *Builder) askCurrency(destination string) (currency.Currency, error) {
	b.say("Enter the currency of the data, one of:\nSupported Currencies: %s\n", strings.Join(currency.Codes(), ", "))
	answer, err := b.ask("Currency: ")
	if err != nil {
		return currency.Currency{}, err
	}

	src, err := currency.Lookup(answer)
	if err != nil || answer == "" {
		return currency.Currency{}, &parsererror.ConfigurationError{Reason: "currency must be one of the listed options", Err: err}
	}
	if dest, err := currency.Lookup(destination); err == nil && dest.Code == src.Code {
		return currency.Currency{}, &parsererror.ConfigurationError{
			Reason: fmt.Sprintf("source currency %s must differ from the destination currency", src.Code),
		}
	}
	return src, nil
}

func (b *Builder) askCount(intro, prompt string, minimum int) (int, error) {
	b.say("%s\n", intro)
	answer, err := b.ask(prompt)
	if err != nil {
		return 0, err
	}
	n, convErr := strconv.Atoi(answer)
	if convErr != nil || strings.TrimLeft(answer, "0123456789") != "" {
		return 0, &parsererror.StructuralError{Reason: fmt.Sprintf("%q is not a valid whole number", answer)}
	}
	if n < minimum {
		return 0, &parsererror.StructuralError{Reason: fmt.Sprintf("count must be at least %d, got %d", minimum, n)}
	}
	return n, nil
}

func (b *Builder) askColumns(count, field int) ([]string, error) {
	b.say("\nEnter the column names separated by %s, names must not contain it. Example: name1%sname2\n", b.sep, b.sep)
	b.say("The currency column must contain the word %q and be the field given on the command line.\n", validation.PriceMarker)
	answer, err := b.ask("Column Names: ")
	if err != nil {
		return nil, err
	}

	names := strings.Split(answer, b.sep)
	if answer == "" || len(names) != count {
		return nil, &parsererror.StructuralError{
			Reason: fmt.Sprintf("expected %d column names separated by %s, got %q", count, b.sep, answer),
		}
	}
	for i, name := range names {
		name = strings.TrimSpace(name)
		if name == "" || strings.Trim(name, "0123456789") == "" {
			return nil, &parsererror.StructuralError{
				Column: i + 1,
				Reason: fmt.Sprintf("column name %q must not be empty or only digits", name),
			}
		}
		names[i] = name
	}
	if field < 0 || field >= count {
		return nil, &parsererror.ConfigurationError{
			Reason: fmt.Sprintf("field %d is outside the %d columns", field+1, count),
		}
	}
	if !strings.Contains(strings.ToLower(names[field]), validation.PriceMarker) {
		return nil, &parsererror.StructuralError{
			Column: field + 1,
			Reason: fmt.Sprintf("column %q given as the field must contain %q", names[field], validation.PriceMarker),
		}
	}
	return names, nil
}

func (b *Builder) askRow(n, count, field int, src currency.Currency) ([]string, error) {
	b.say("\nEnter row %d separated by %s. Type the %s amount as a plain number, e.g. 22.83\n", n, b.sep, src.Code)
	answer, err := b.ask(fmt.Sprintf("Row %d Data: ", n))
	if err != nil {
		return nil, err
	}

	cells := strings.Split(answer, b.sep)
	if answer == "" || len(cells) != count {
		return nil, &parsererror.StructuralError{
			Row:    n,
			Reason: fmt.Sprintf("expected %d cells separated by %s", count, b.sep),
		}
	}

	amount, err := decimal.NewFromString(strings.TrimSpace(cells[field]))
	if err != nil {
		return nil, &parsererror.CurrencyFormatError{Row: n, Value: cells[field], Reason: "amount must be a plain number", Err: err}
	}
	if amount.IsNegative() {
		return nil, &parsererror.CurrencyFormatError{Row: n, Value: cells[field], Reason: "amount must not be negative"}
	}
	formatted := currency.FormatAmount(amount, src)
	if strings.Contains(formatted, b.sep) {
		return nil, &parsererror.ConfigurationError{
			Reason: fmt.Sprintf("amount %q contains the separator %q, choose another separator", formatted, b.sep),
		}
	}
	cells[field] = formatted
	return cells, nil
}

func (b *Builder) say(format string, args ...interface{}) {
	fmt.Fprintf(b.out, format, args...)
}

func (b *Builder) ask(prompt string) (string, error) {
	fmt.Fprint(b.out, prompt)
	if !b.scanner.Scan() {
		err := b.scanner.Err()
		if err == nil {
			err = errEndOfInput
		}
		return "", &parsererror.IOError{Op: "read", Path: "console", Err: err}
	}
	return strings.TrimSpace(b.scanner.Text()), nil
}
