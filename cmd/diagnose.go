package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var diagnoseCmd = &cobra.Command{
	Use:   "diagnose <area>",
	Short: "Propose a level from free-text evidence",
	Long: "Reads evidence text (from --evidence or interactively), asks the " +
		"reasoning service for a level candidate, and writes it to the ledger " +
		"only after explicit confirmation.",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		areaID := args[0]
		stdin := bufio.NewReader(os.Stdin)

		evidence, _ := cmd.Flags().GetString("evidence")
		if evidence == "" {
			fmt.Println("Enter evidence (finish with a single '.' on its own line):")
			var lines []string
			for {
				line, err := stdin.ReadString('\n')
				trimmed := strings.TrimRight(line, "\n")
				if trimmed == "." || err != nil {
					break
				}
				lines = append(lines, trimmed)
			}
			evidence = strings.Join(lines, "\n")
		}

		deps, err := openSession(cmd, true)
		if err != nil {
			return err
		}
		defer deps.close(cmd.Context())

		for {
			cand, err := deps.session.StartDiagnose(cmd.Context(), areaID, evidence)
			if err != nil {
				return err
			}

			fmt.Printf("\nProposed level: %d\n%s\n", cand.Level, cand.Justification)
			fmt.Print("\nAccept? [y]es / [r]etry / [n]o: ")

			choice, err := stdin.ReadString('\n')
			if err != nil && choice == "" {
				return err
			}
			switch strings.ToLower(strings.TrimSpace(choice)) {
			case "y", "yes":
				p, err := deps.session.AcceptCandidate(cmd.Context(), areaID)
				if err != nil {
					return err
				}
				fmt.Printf("Recorded level %d for %s (%s axis %d%% scored)\n", cand.Level, areaID, p.AxisID, p.Percent)
				return nil
			case "r", "retry":
				if err := deps.session.DiscardCandidate(cmd.Context(), areaID); err != nil {
					return err
				}
			default:
				if err := deps.session.DiscardCandidate(cmd.Context(), areaID); err != nil {
					return err
				}
				fmt.Println("Discarded.")
				return nil
			}
		}
	},
}

func init() {
	diagnoseCmd.Flags().StringP("evidence", "e", "", "Evidence text (prompts interactively when omitted)")
}
