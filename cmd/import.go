package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/verba-app/verba/internal/content"
	"github.com/verba-app/verba/internal/importer"
	"github.com/verba-app/verba/internal/store"
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import study content from JSON files",
	Long: `Import replaces study content in the database from JSON files.
Each file kind is optional; only the kinds given are replaced.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		exercisesPath, _ := cmd.Flags().GetString("exercises")
		placementPath, _ := cmd.Flags().GetString("placement")
		rulesPath, _ := cmd.Flags().GetString("rules")
		if exercisesPath == "" && placementPath == "" && rulesPath == "" {
			return fmt.Errorf("nothing to import: pass --exercises, --placement, and/or --rules")
		}

		bundle, err := loadBundle(exercisesPath, placementPath, rulesPath)
		if err != nil {
			return err
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
		repo := st.ContentRepo()

		if exercisesPath != "" {
			if err := repo.ReplaceExercises(ctx, bundle.exercises); err != nil {
				return fmt.Errorf("import exercises: %w", err)
			}
			fmt.Printf("Imported %d exercises.\n", len(bundle.exercises))
		}
		if placementPath != "" {
			if err := repo.ReplacePlacement(ctx, bundle.placement); err != nil {
				return fmt.Errorf("import placement: %w", err)
			}
			fmt.Printf("Imported %d placement items.\n", len(bundle.placement))
		}
		if rulesPath != "" {
			if err := repo.ReplaceRules(ctx, bundle.rules); err != nil {
				return fmt.Errorf("import rules: %w", err)
			}
			fmt.Printf("Imported %d rules.\n", len(bundle.rules))
		}

		for _, gap := range importer.CrossCheck(bundle.exercises, bundle.placement, bundle.rules) {
			fmt.Println("note:", gap)
		}
		return nil
	},
}

type contentBundle struct {
	exercises []content.Exercise
	placement []content.PlacementItem
	rules     []content.Rule
}

// loadBundle parses whichever files were given. Parse failures abort
// before anything touches the database.
func loadBundle(exercisesPath, placementPath, rulesPath string) (*contentBundle, error) {
	var b contentBundle
	var err error
	if exercisesPath != "" {
		if b.exercises, err = importer.LoadExercises(exercisesPath); err != nil {
			return nil, fmt.Errorf("load exercises: %w", err)
		}
	}
	if placementPath != "" {
		if b.placement, err = importer.LoadPlacement(placementPath); err != nil {
			return nil, fmt.Errorf("load placement: %w", err)
		}
	}
	if rulesPath != "" {
		if b.rules, err = importer.LoadRules(rulesPath); err != nil {
			return nil, fmt.Errorf("load rules: %w", err)
		}
	}
	return &b, nil
}

func init() {
	importCmd.Flags().String("exercises", "", "Path to unit exercises JSON")
	importCmd.Flags().String("placement", "", "Path to placement test JSON")
	importCmd.Flags().String("rules", "", "Path to rule texts JSON")
}
