// Package currencies lists the supported currencies
package currencies

import (
	"fjacquet/currency-csv/cmd/common"
	"fjacquet/currency-csv/internal/display"

	"github.com/spf13/cobra"
)

// Cmd represents the currencies command
var Cmd = &cobra.Command{
	Use:   "currencies",
	Short: "List the supported currencies and their number formatting",
	RunE: func(cmd *cobra.Command, args []string) error {
		return display.PrintAll(cmd.OutOrStdout(), common.CurrencyTable())
	},
}
