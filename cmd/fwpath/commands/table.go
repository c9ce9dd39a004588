// SPDX-License-Identifier: MIT

package commands

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

// unreachable marks a pair without a path in the table.
const unreachable = "-"

func (c *CLI) newTableCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "table",
		Short: "Print the cost matrix, rows are sources and columns are targets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			en, err := c.compute(cmd)
			if err != nil {
				return err
			}

			ids := en.Vertices()
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', tabwriter.AlignRight)
			if _, err = fmt.Fprintf(tw, "\t%s\t\n", strings.Join(ids, "\t")); err != nil {
				return err
			}
			cells := make([]string, len(ids))
			for _, u := range ids {
				for j, v := range ids {
					cost, ok, qerr := en.Cost(u, v)
					if qerr != nil {
						return qerr
					}
					cells[j] = unreachable
					if ok {
						cells[j] = fmt.Sprint(cost)
					}
				}
				if _, err = fmt.Fprintf(tw, "%s\t%s\t\n", u, strings.Join(cells, "\t")); err != nil {
					return err
				}
			}

			return tw.Flush()
		},
	}
}
