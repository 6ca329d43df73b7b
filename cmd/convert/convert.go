// Package convert handles the currency conversion command
package convert

import (
	"fmt"

	"fjacquet/currency-csv/cmd/common"
	"fjacquet/currency-csv/cmd/root"
	"fjacquet/currency-csv/internal/logging"

	"github.com/spf13/cobra"
)

// Options holds the convert flags
var Options = common.ConvertOptions{}

// Cmd represents the convert command
var Cmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert the price column of a CSV file to another currency",
	Long: `Convert the designated price column of a CSV file to another currency.

Every amount in the column must use the same currency symbol. The amounts are
multiplied by --multiplier, rounded to cents and rewritten with the symbol and
number formatting of the destination currency.

Use "-i stdin" to type the table at the console; it is saved as data-<CODE>.csv
before conversion. Use "-o stdout" to print a preview; the result is still saved
as data-<CODE>.csv.

Example:
  currency-csv convert -i prices.csv -o prices-eur.csv --field 2 --multiplier 0.85 --symbol EUR`,
	RunE: convertFunc,
}

func init() {
	Cmd.Flags().StringVar(&Options.Field, "field", "", "1-based number of the price column")
	Cmd.Flags().StringVar(&Options.Multiplier, "multiplier", "", "Conversion factor, rounded to 2 decimal places")
	Cmd.Flags().StringVar(&Options.Symbol, "symbol", "", "Destination currency code, e.g. EUR")
	Cmd.Flags().BoolVar(&Options.Report, "report", false, "Write a ledger of every converted cell")
	Cmd.Flags().BoolVar(&Options.XLSX, "xlsx", false, "Also write the converted table as an XLSX workbook")
	_ = Cmd.MarkFlagRequired("field")
	_ = Cmd.MarkFlagRequired("multiplier")
	_ = Cmd.MarkFlagRequired("symbol")
}

func convertFunc(cmd *cobra.Command, args []string) error {
	c, err := root.GetContainer()
	if err != nil {
		return err
	}

	opts := Options
	opts.Input = root.SharedFlags.Input
	opts.Output = root.SharedFlags.Output

	root.Log.Debug("Convert command called",
		logging.F(logging.FieldInputFile, opts.Input),
		logging.F(logging.FieldOutputFile, opts.Output),
		logging.F(logging.FieldDestination, opts.Symbol))

	outcome, err := common.ProcessConversion(c, opts, cmd.InOrStdin(), cmd.OutOrStdout())
	if err != nil {
		return err
	}

	res := outcome.Result
	fmt.Fprintf(cmd.OutOrStdout(), "\nConverted %d rows from %s to %s: %s\n",
		res.Rows(), res.Source.Code, res.Destination.Code, outcome.OutputPath)
	if outcome.LedgerPath != "" {
		fmt.Fprintf(cmd.OutOrStdout(), "Ledger: %s\n", outcome.LedgerPath)
	}
	if outcome.XLSXPath != "" {
		fmt.Fprintf(cmd.OutOrStdout(), "Workbook: %s\n", outcome.XLSXPath)
	}
	return nil
}
