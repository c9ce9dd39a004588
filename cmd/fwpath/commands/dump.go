// SPDX-License-Identifier: MIT

package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Output formats accepted by dump --format.
const (
	formatText = "text"
	formatDOT  = "dot"
)

func (c *CLI) newDumpCmd() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "dump",
		Short: "Dump the record store as text or Graphviz DOT",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if format != formatText && format != formatDOT {
				return fmt.Errorf("fwpath: unknown format %q (want %s or %s)", format, formatText, formatDOT)
			}
			en, err := c.compute(cmd)
			if err != nil {
				return err
			}
			if format == formatDOT {
				return en.WriteDOT(cmd.OutOrStdout())
			}

			return en.Dump(cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", formatText, "Output format: text or dot")

	return cmd
}
