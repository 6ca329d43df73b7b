// Package validate handles the file validation command
package validate

import (
	"fmt"

	"fjacquet/currency-csv/cmd/common"
	"fjacquet/currency-csv/cmd/root"

	"github.com/spf13/cobra"
)

// Field is the 1-based price column to check
var Field string

// Cmd represents the validate command
var Cmd = &cobra.Command{
	Use:   "validate",
	Short: "Check that a CSV file can be converted",
	Long: `Check that a CSV file has a price column, rectangular rows, no empty cells
and a single supported currency in the designated field, without converting it.

Example:
  currency-csv validate -i prices.csv --field 2`,
	RunE: validateFunc,
}

func init() {
	Cmd.Flags().StringVar(&Field, "field", "", "1-based number of the price column")
	_ = Cmd.MarkFlagRequired("field")
}

func validateFunc(cmd *cobra.Command, args []string) error {
	c, err := root.GetContainer()
	if err != nil {
		return err
	}

	res, err := common.ProcessValidation(c, root.SharedFlags.Input, Field)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s is valid: %d rows in %s (%s)\n",
		root.SharedFlags.Input, res.Rows, res.Currency.Code, res.Currency.Symbol)
	return nil
}
