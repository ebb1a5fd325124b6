package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/verba-app/verba/internal/content"
	"github.com/verba-app/verba/internal/importer"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check study content files without importing them",
	Long: `Validate parses content JSON files, runs the offline quality audit
over the exercises, and reports cross-file gaps. The database is not
touched. The command fails when any error-level issue is found;
warnings (legacy items needing review) do not fail it.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		exercisesPath, _ := cmd.Flags().GetString("exercises")
		placementPath, _ := cmd.Flags().GetString("placement")
		rulesPath, _ := cmd.Flags().GetString("rules")
		if exercisesPath == "" && placementPath == "" && rulesPath == "" {
			return fmt.Errorf("nothing to validate: pass --exercises, --placement, and/or --rules")
		}

		bundle, err := loadBundle(exercisesPath, placementPath, rulesPath)
		if err != nil {
			return err
		}
		fmt.Printf("Parsed %d exercises, %d placement items, %d rules.\n",
			len(bundle.exercises), len(bundle.placement), len(bundle.rules))

		byRef := make([]*content.Exercise, len(bundle.exercises))
		for i := range bundle.exercises {
			byRef[i] = &bundle.exercises[i]
		}

		var errors, warnings int
		for _, issue := range content.Audit(byRef) {
			fmt.Println(issue)
			if issue.Severity == content.SeverityError {
				errors++
			} else {
				warnings++
			}
		}

		// Cross-file gaps only mean something when all three kinds are
		// on the table.
		if exercisesPath != "" && placementPath != "" && rulesPath != "" {
			for _, gap := range importer.CrossCheck(bundle.exercises, bundle.placement, bundle.rules) {
				fmt.Println("warning:", gap)
				warnings++
			}
		}

		fmt.Printf("%d error(s), %d warning(s).\n", errors, warnings)
		if errors > 0 {
			return fmt.Errorf("validation failed")
		}
		return nil
	},
}

func init() {
	validateCmd.Flags().String("exercises", "", "Path to unit exercises JSON")
	validateCmd.Flags().String("placement", "", "Path to placement test JSON")
	validateCmd.Flags().String("rules", "", "Path to rule texts JSON")
}
