// SPDX-License-Identifier: MIT

package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newPathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path FROM TO",
		Short: "Print the best path between two vertices and its cost",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			en, err := c.compute(cmd)
			if err != nil {
				return err
			}

			from, to := args[0], args[1]
			path, ok, err := en.Path(from, to)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if !ok {
				_, err = fmt.Fprintf(out, "%s->%s: no path\n", from, to)
				return err
			}
			cost, _, err := en.Cost(from, to)
			if err != nil {
				return err
			}

			if _, err = fmt.Fprintf(out, "%s->%s cost=%d\n", from, to, cost); err != nil {
				return err
			}
			for _, arc := range path {
				if _, err = fmt.Fprintf(out, "  %s weight=%d\n", arc, arc.Weight()); err != nil {
					return err
				}
			}

			return nil
		},
	}
}
