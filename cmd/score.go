package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Record and list area scores",
}

var scoreSetCmd = &cobra.Command{
	Use:   "set <area> <rank>",
	Short: "Record a level selection for an area",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		rank, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid rank %q: %w", args[1], err)
		}

		deps, err := openSession(cmd, false)
		if err != nil {
			return err
		}
		defer deps.close(cmd.Context())

		p, err := deps.session.SetScore(cmd.Context(), args[0], rank)
		if err != nil {
			return err
		}

		scores, err := deps.session.GetScores(args[0])
		if err != nil {
			return err
		}
		fmt.Printf("%s: %s (%s axis %d%% scored)\n", args[0], formatScores(scores), p.AxisID, p.Percent)
		return nil
	},
}

var scoreListCmd = &cobra.Command{
	Use:   "list [axis]",
	Short: "List scores, optionally filtered to one axis",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		deps, err := openSession(cmd, false)
		if err != nil {
			return err
		}
		defer deps.close(cmd.Context())

		if len(args) == 1 {
			// Fail on unknown axis instead of printing nothing.
			if _, err := deps.session.Catalog().GetAxis(args[0]); err != nil {
				return err
			}
		}

		for _, axis := range deps.session.Catalog().Axes() {
			if len(args) == 1 && axis.ID != args[0] {
				continue
			}
			fmt.Printf("%s\n", axis.Label())
			areas, err := deps.session.ListAreas(axis.ID)
			if err != nil {
				return err
			}
			for _, area := range areas {
				scores, err := deps.session.GetScores(area.ID)
				if err != nil {
					return err
				}
				fmt.Printf("  %-26s  %s\n", area.ID, formatScores(scores))
			}
		}
		return nil
	},
}

func init() {
	scoreCmd.AddCommand(scoreSetCmd)
	scoreCmd.AddCommand(scoreListCmd)
}
