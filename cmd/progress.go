package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var progressCmd = &cobra.Command{
	Use:   "progress [axis]",
	Short: "Show axis completion",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		deps, err := openSession(cmd, false)
		if err != nil {
			return err
		}
		defer deps.close(cmd.Context())

		if len(args) == 1 {
			if _, err := deps.session.Catalog().GetAxis(args[0]); err != nil {
				return err
			}
		}

		for _, axis := range deps.session.Catalog().Axes() {
			if len(args) == 1 && axis.ID != args[0] {
				continue
			}
			p, err := deps.session.ComputeProgress(axis.ID)
			if err != nil {
				return err
			}
			mark := " "
			if p.Complete {
				mark = "✓"
			}
			fmt.Printf("%s %-12s  %d/%d areas  %3d%%\n", mark, axis.ID, p.ScoredAreas, p.TotalAreas, p.Percent)
		}
		return nil
	},
}
