package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/abhisek/maturiz/internal/interview"
	"github.com/spf13/cobra"
)

var interviewCmd = &cobra.Command{
	Use:   "interview <area>",
	Short: "Assess an area through a short interview",
	Long: "Runs a multi-turn interview for one area. The reasoning service " +
		"asks questions until it can place the organization on a level; the " +
		"conclusion is written to the ledger only after explicit confirmation. " +
		"Type /quit to abandon the interview at any point.",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		areaID := args[0]

		deps, err := openSession(cmd, true)
		if err != nil {
			return err
		}
		defer deps.close(cmd.Context())

		greeting, err := deps.session.StartInterview(cmd.Context(), areaID)
		if err != nil {
			return err
		}
		fmt.Printf("\n%s\n", greeting.Text)

		stdin := bufio.NewReader(os.Stdin)
		for {
			fmt.Print("\n> ")
			line, rerr := stdin.ReadString('\n')
			text := strings.TrimSpace(line)
			if rerr != nil && text == "" {
				return deps.session.CancelInterview(cmd.Context(), areaID)
			}
			if text == "/quit" {
				fmt.Println("Interview cancelled.")
				return deps.session.CancelInterview(cmd.Context(), areaID)
			}

			turn, err := deps.session.SubmitInterviewTurn(cmd.Context(), areaID, text)
			if err != nil {
				if errors.Is(err, interview.ErrEmptyMessage) {
					continue
				}
				if errors.Is(err, interview.ErrServiceUnavailable) ||
					errors.Is(err, interview.ErrTimedOut) ||
					errors.Is(err, interview.ErrMalformedResponse) {
					// Recoverable: the session keeps waiting for input.
					fmt.Printf("\n%s\n", turn.Text)
					continue
				}
				return err
			}
			fmt.Printf("\n%s\n", turn.Text)

			state, err := deps.session.InterviewState(areaID)
			if err != nil {
				return err
			}
			if state != interview.StateConcluded {
				continue
			}

			c, err := deps.session.InterviewConclusion(areaID)
			if err != nil {
				return err
			}
			fmt.Printf("\nProposed level: %d\n", c.Score)
			fmt.Print("Confirm? [y/N]: ")

			choice, rerr := stdin.ReadString('\n')
			if strings.ToLower(strings.TrimSpace(choice)) == "y" {
				p, err := deps.session.ConfirmConclusion(cmd.Context(), areaID)
				if err != nil {
					return err
				}
				fmt.Printf("Recorded level %d for %s (%s axis %d%% scored)\n", c.Score, areaID, p.AxisID, p.Percent)
				return nil
			}
			if rerr != nil && choice == "" {
				// EOF on the confirmation prompt discards the conclusion.
				return deps.session.CancelInterview(cmd.Context(), areaID)
			}
			fmt.Println("Discarded.")
			return deps.session.CancelInterview(cmd.Context(), areaID)
		}
	},
}
