package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/verba-app/verba/internal/app"
	"github.com/verba-app/verba/internal/engine"
	"github.com/verba-app/verba/internal/exgen"
	"github.com/verba-app/verba/internal/explain"
	"github.com/verba-app/verba/internal/llm"
	"github.com/verba-app/verba/internal/store"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	learner, err := st.LearnerRepo().GetOrCreate(ctx, resolveLearnerName(cmd))
	if err != nil {
		return fmt.Errorf("load learner: %w", err)
	}

	repos := engine.Repos{
		Learners: st.LearnerRepo(),
		Content:  st.ContentRepo(),
		Due:      st.DueRepo(),
		Attempts: st.AttemptRepo(),
	}

	// The LLM provider is optional: without it the app still drills,
	// it just cannot generate exercises or fresh explanations.
	var gen *exgen.Generator
	var provider llm.Provider
	provider, err = llm.NewProviderFromEnv(ctx, st.LLMEventRepo())
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Exercise generation and explanations will be unavailable.")
		provider = nil
	} else {
		gen = exgen.New(provider, st.ContentRepo())
	}

	return app.Run(app.Options{
		Learner: learner,
		Repos:   repos,
		Engine:  engine.New(repos, gen),
		Explain: explain.NewService(provider, st.ExplainRepo(), st.AttemptRepo()),
	})
}
