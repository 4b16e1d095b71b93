package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/arnav/studium/internal/energy"
	"github.com/arnav/studium/internal/engine"
	"github.com/arnav/studium/internal/llm"
	"github.com/arnav/studium/internal/profile"
	"github.com/arnav/studium/internal/scheduler"
	"github.com/arnav/studium/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "studium",
	Short: "Adaptive study planner",
	Long:  "Studium turns quiz attempts and sleep reports into a day's study plan matched to your cognitive style and energy.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides STUDIUM_DB env var)")
	rootCmd.PersistentFlags().String("user", "default", "Learner ID")

	rootCmd.AddCommand(logCmd)
	rootCmd.AddCommand(profileCmd)
	rootCmd.AddCommand(energyCmd)
	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(feedbackCmd)
	rootCmd.AddCommand(masteryCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then STUDIUM_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

func userID(cmd *cobra.Command) string {
	u, _ := cmd.Flags().GetString("user")
	if u == "" {
		u = "default"
	}
	return u
}

// openEngine builds the engine against the resolved database. Stage
// variants come from the environment so model swaps need no code
// changes:
//
//	STUDIUM_PROFILE_VARIANT   rules (default) | llm
//	STUDIUM_ESTIMATOR_VARIANT formula (default) | trend
//	STUDIUM_SCHEDULER         greedy (default) | exhaustive
func openEngine(cmd *cobra.Command) (*engine.Engine, *store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, nil, fmt.Errorf("resolve database path: %w", err)
	}
	s, err := store.Open(dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open database: %w", err)
	}

	cfg := engine.Config{
		Classifier: profile.Config{Variant: os.Getenv("STUDIUM_PROFILE_VARIANT")},
		Estimator:  energy.Config{Variant: os.Getenv("STUDIUM_ESTIMATOR_VARIANT")},
		Strategy:   scheduler.Config{Variant: os.Getenv("STUDIUM_SCHEDULER")},
	}
	if cfg.Classifier.Variant == "llm" {
		provider, perr := llm.NewProviderFromEnv(context.Background(), s.EventRepo())
		if perr != nil {
			s.Close()
			return nil, nil, fmt.Errorf("configure LLM provider: %w", perr)
		}
		cfg.Provider = provider
	}

	e, err := engine.New(cfg, s.EventRepo(), s.MasteryRepo(), s.PlanRepo())
	if err != nil {
		s.Close()
		return nil, nil, err
	}
	return e, s, nil
}
