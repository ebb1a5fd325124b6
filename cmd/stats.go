package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/verba-app/verba/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show learning statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
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
		learner, err := st.LearnerRepo().GetOrCreate(ctx, resolveLearnerName(cmd))
		if err != nil {
			return fmt.Errorf("load learner: %w", err)
		}

		units, err := st.AttemptRepo().UnitStats(ctx, learner.ID)
		if err != nil {
			return fmt.Errorf("query stats: %w", err)
		}
		active, err := st.DueRepo().Active(ctx, learner.ID)
		if err != nil {
			return fmt.Errorf("query schedule: %w", err)
		}

		fmt.Printf("Learner: %s (strictness %s)\n\n", learner.Name, learner.Strictness)

		if len(units) == 0 {
			fmt.Println("No answers recorded yet.")
		} else {
			fmt.Printf("%-24s  %8s  %8s  %5s  %s\n", "Unit", "Answered", "Correct", "Acc", "Last seen")
			fmt.Println(strings.Repeat("─", 72))
			var total, correct int
			for _, u := range units {
				var acc float64
				if u.Total > 0 {
					acc = float64(u.Correct) / float64(u.Total) * 100
				}
				fmt.Printf("%-24s  %8d  %8d  %4.0f%%  %s\n",
					u.UnitKey, u.Total, u.Correct, acc, u.LastSeen.Local().Format("2006-01-02"))
				total += u.Total
				correct += u.Correct
			}
			fmt.Println(strings.Repeat("─", 72))
			var acc float64
			if total > 0 {
				acc = float64(correct) / float64(total) * 100
			}
			fmt.Printf("%-24s  %8d  %8d  %4.0f%%\n", "TOTAL", total, correct, acc)
		}

		if len(active) > 0 {
			now := time.Now()
			var dueNow int
			for _, d := range active {
				if !d.DueAt.After(now) {
					dueNow++
				}
			}
			fmt.Printf("\nScheduled: %d item(s), %d due now.\n", len(active), dueNow)
		}
		return nil
	},
}
