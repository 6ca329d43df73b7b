// Package common contains shared functionality for command handlers
package common

import (
	"fmt"
	"io"
	"strings"
	"time"

	"fjacquet/currency-csv/internal/builder"
	"fjacquet/currency-csv/internal/container"
	"fjacquet/currency-csv/internal/currency"
	"fjacquet/currency-csv/internal/display"
	"fjacquet/currency-csv/internal/export"
	"fjacquet/currency-csv/internal/fileutils"
	"fjacquet/currency-csv/internal/logging"
	"fjacquet/currency-csv/internal/parsererror"
	"fjacquet/currency-csv/internal/pipeline"
	"fjacquet/currency-csv/internal/report"
	"fjacquet/currency-csv/internal/table"
	"fjacquet/currency-csv/internal/validation"

	"github.com/shopspring/decimal"
)

// ConvertOptions are the raw command-line arguments of a conversion.
type ConvertOptions struct {
	Input      string
	Output     string
	Field      string
	Multiplier string
	Symbol     string
	Report     bool
	XLSX       bool
}

// Outcome lists what a conversion produced.
type Outcome struct {
	Result     *pipeline.Result
	InputPath  string
	OutputPath string
	LedgerPath string
	XLSXPath   string
}

// DataFileName is the name used for tables saved in a given currency.
func DataFileName(code currency.Code) string {
	return fmt.Sprintf("data-%s.csv", code)
}

// ProcessConversion checks the arguments, obtains the table from a file or the
// console, converts it and writes every requested output.
func ProcessConversion(c *container.Container, opts ConvertOptions, in io.Reader, out io.Writer) (*Outcome, error) {
	cfg := c.GetConfig()
	log := c.GetLogger()
	p := c.GetPipeline()

	input, err := validation.CSVFileName(opts.Input, validation.StdinName)
	if err != nil {
		return nil, err
	}
	output, err := validation.CSVFileName(opts.Output, validation.StdoutName)
	if err != nil {
		return nil, err
	}
	multiplier, err := validation.Multiplier(opts.Multiplier)
	if err != nil {
		return nil, err
	}
	dest, err := currency.Lookup(strings.ToUpper(strings.TrimSpace(opts.Symbol)))
	if err != nil {
		return nil, &parsererror.ConfigurationError{
			Reason: fmt.Sprintf("symbol must be one of %s", strings.Join(currency.Codes(), ", ")),
			Err:    err,
		}
	}

	outcome := &Outcome{}
	if output == validation.StdoutName {
		outcome.OutputPath = fileutils.ResolvePath(cfg.Data.Directory, DataFileName(dest.Code))
	} else {
		outcome.OutputPath = fileutils.ResolvePath(cfg.Data.Directory, output)
	}

	// The upper bound is checked against the header by the validator.
	field, err := validation.FieldNumber(opts.Field, 0)
	if err != nil {
		return nil, err
	}
	req := pipeline.Request{Field: field, Destination: string(dest.Code), Multiplier: multiplier}

	var res *pipeline.Result
	if input == validation.StdinName {
		t, src, err := builder.NewBuilder(in, out, p.Separator(), log).Build(string(dest.Code), field)
		if err != nil {
			return nil, err
		}
		outcome.InputPath = fileutils.ResolvePath(cfg.Data.Directory, DataFileName(src.Code))
		if err := p.WriteOutput(outcome.InputPath, table.Serialize(t, p.Separator())); err != nil {
			return nil, err
		}
		log.Info("Console table saved", logging.F(logging.FieldInputFile, outcome.InputPath))

		if res, err = p.RunTable(t, req); err != nil {
			return nil, err
		}
		if err := p.WriteOutput(outcome.OutputPath, res.Output); err != nil {
			return nil, err
		}
		log.Info("Converted file written",
			logging.F(logging.FieldInputFile, outcome.InputPath),
			logging.F(logging.FieldOutputFile, outcome.OutputPath),
			logging.F(logging.FieldRunID, res.RunID))
	} else {
		outcome.InputPath = fileutils.ResolvePath(cfg.Data.Directory, input)
		if res, err = p.ConvertFile(outcome.InputPath, outcome.OutputPath, req); err != nil {
			return nil, err
		}
	}
	outcome.Result = res

	if output == validation.StdoutName {
		if err := display.Print(out, res.Table, cfg.Display.MaxRows); err != nil {
			return nil, &parsererror.IOError{Op: "write", Path: validation.StdoutName, Err: err}
		}
	}

	if opts.Report || cfg.Report.Enabled {
		ledger, err := report.NewLedger(res, time.Now())
		if err != nil {
			return nil, err
		}
		if outcome.LedgerPath, err = c.GetReportGenerator().WriteReport(ledger, cfg.Report.Directory, cfg.Report.Format); err != nil {
			return nil, err
		}
	}

	if opts.XLSX {
		outcome.XLSXPath = strings.TrimSuffix(outcome.OutputPath, ".csv") + ".xlsx"
		if err := export.WriteXLSX(outcome.XLSXPath, res.Table, string(res.Destination.Code)); err != nil {
			return nil, err
		}
		log.Info("Workbook written", logging.F(logging.FieldOutputFile, outcome.XLSXPath))
	}

	return outcome, nil
}

// ProcessValidation checks a file at a 1-based field without converting it.
func ProcessValidation(c *container.Container, input, fieldArg string) (*validation.Result, error) {
	name, err := validation.CSVFileName(input, validation.StdinName)
	if err != nil {
		return nil, err
	}
	if name == validation.StdinName {
		return nil, &parsererror.ConfigurationError{Reason: "validate needs an input file, not stdin"}
	}
	path := fileutils.ResolvePath(c.GetConfig().Data.Directory, name)

	t, enc, err := c.GetPipeline().Load(path)
	if err != nil {
		return nil, err
	}
	field, err := validation.FieldNumber(fieldArg, len(t.Columns))
	if err != nil {
		return nil, err
	}

	res, err := c.GetValidator().Validate(t, field)
	if err != nil {
		return nil, err
	}
	c.GetLogger().Info("File is valid",
		logging.F(logging.FieldInputFile, path),
		logging.F(logging.FieldEncoding, enc),
		logging.F(logging.FieldSource, string(res.Currency.Code)),
		logging.F(logging.FieldCount, res.Rows))
	return res, nil
}

// CurrencyTable lists the supported currencies as a table.
func CurrencyTable() *table.Table {
	t := &table.Table{Columns: []string{"Code", "Symbol", "Locale", "Example"}}
	sample := decimal.RequireFromString("1234567.891")
	for _, cur := range currency.All() {
		t.Rows = append(t.Rows, []string{
			string(cur.Code), cur.Symbol, cur.Convention.Locale, currency.FormatAmount(sample, cur),
		})
	}
	return t
}

// ErrorMessage renders err as the single line shown to the user.
func ErrorMessage(err error) string {
	kind := parsererror.KindOf(err)
	if kind == parsererror.KindUnknown {
		return fmt.Sprintf("Error: %v", err)
	}
	return fmt.Sprintf("Error (%s): %v", kind, err)
}
