// Package configcmd shows the effective configuration
package configcmd

import (
	"fmt"

	"fjacquet/currency-csv/cmd/root"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// Cmd groups the configuration subcommands
var Cmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect the configuration",
}

// ShowCmd prints the effective configuration as YAML
var ShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration as YAML",
	RunE: func(cmd *cobra.Command, args []string) error {
		out, err := yaml.Marshal(root.GetConfig())
		if err != nil {
			return fmt.Errorf("failed to render configuration: %w", err)
		}
		_, err = cmd.OutOrStdout().Write(out)
		return err
	},
}

func init() {
	Cmd.AddCommand(ShowCmd)
}
