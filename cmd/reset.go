package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/verba-app/verba/internal/store"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset learner progress",
	Long: `Reset deactivates every scheduled item and restarts the placement
test for the learner. The attempt history is kept.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		name := resolveLearnerName(cmd)

		if yes, _ := cmd.Flags().GetBool("yes"); !yes {
			fmt.Printf("Reset all progress for learner %q? [y/N] ", name)
			line, _ := bufio.NewReader(os.Stdin).ReadString('\n')
			if strings.ToLower(strings.TrimSpace(line)) != "y" {
				fmt.Println("Aborted.")
				return nil
			}
		}

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer st.Close()

		ctx := cmd.Context()
		learner, err := st.LearnerRepo().GetOrCreate(ctx, name)
		if err != nil {
			return fmt.Errorf("load learner: %w", err)
		}
		if err := st.LearnerRepo().Reset(ctx, learner.ID); err != nil {
			return fmt.Errorf("reset: %w", err)
		}
		fmt.Printf("Progress for %q has been reset.\n", name)
		return nil
	},
}

func init() {
	resetCmd.Flags().BoolP("yes", "y", false, "Skip the confirmation prompt")
}
