package main

import (
	"fmt"
	"os"

	"fjacquet/currency-csv/cmd/common"
	"fjacquet/currency-csv/cmd/configcmd"
	"fjacquet/currency-csv/cmd/convert"
	"fjacquet/currency-csv/cmd/currencies"
	"fjacquet/currency-csv/cmd/root"
	"fjacquet/currency-csv/cmd/validate"
)

func init() {
	root.Init()

	root.Cmd.AddCommand(convert.Cmd)
	root.Cmd.AddCommand(validate.Cmd)
	root.Cmd.AddCommand(currencies.Cmd)
	root.Cmd.AddCommand(configcmd.Cmd)
}

func main() {
	root.Cmd.SilenceErrors = true
	if err := root.Cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, common.ErrorMessage(err))
		os.Exit(1)
	}
}
