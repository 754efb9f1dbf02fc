package cmd

import (
	"fmt"
	"strings"

	"github.com/abhisek/maturiz/internal/rubric"
	"github.com/spf13/cobra"
)

var rubricCmd = &cobra.Command{
	Use:   "rubric",
	Short: "Inspect the rubric catalog",
}

var rubricListCmd = &cobra.Command{
	Use:   "list",
	Short: "List axes and areas",
	RunE: func(cmd *cobra.Command, args []string) error {
		catalog, err := resolveCatalog(cmd)
		if err != nil {
			return err
		}

		for _, axis := range catalog.Axes() {
			fmt.Printf("%s (%s)\n", axis.Label(), axis.ID)
			areas, err := catalog.AreasForAxis(axis.ID)
			if err != nil {
				return err
			}
			for _, area := range areas {
				fmt.Printf("  %-26s  %s\n", area.ID, area.Name)
			}
		}
		return nil
	},
}

var rubricShowCmd = &cobra.Command{
	Use:   "show <area>",
	Short: "Show an area's maturity levels",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		catalog, err := resolveCatalog(cmd)
		if err != nil {
			return err
		}
		area, err := catalog.GetArea(args[0])
		if err != nil {
			return err
		}

		fmt.Printf("%s (axis: %s)\n", area.Name, area.AxisID)
		fmt.Println(strings.Repeat("─", 60))
		for _, l := range area.Levels {
			fmt.Printf("%d. %s\n   %s\n", l.Rank, l.Title, l.Rubric)
		}
		return nil
	},
}

var rubricValidateCmd = &cobra.Command{
	Use:   "validate <file.yaml>",
	Short: "Validate a custom rubric catalog file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		catalog, err := rubric.LoadFile(args[0])
		if err != nil {
			return err
		}

		areaCount := 0
		for _, axis := range catalog.Axes() {
			n, err := catalog.AreaCount(axis.ID)
			if err != nil {
				return err
			}
			areaCount += n
		}
		fmt.Printf("OK: %d axes, %d areas\n", len(catalog.Axes()), areaCount)
		return nil
	},
}

func init() {
	rubricCmd.AddCommand(rubricListCmd)
	rubricCmd.AddCommand(rubricShowCmd)
	rubricCmd.AddCommand(rubricValidateCmd)
}
