package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/arnav/studium/internal/engine"
	"github.com/arnav/studium/internal/scheduler"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Generate and inspect study plans",
}

var planGenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a study plan for the day",
	RunE: func(cmd *cobra.Command, args []string) error {
		slots, _ := cmd.Flags().GetStringSlice("slot")
		subjects, _ := cmd.Flags().GetStringSlice("subject")
		dateStr, _ := cmd.Flags().GetString("date")
		maxSession, _ := cmd.Flags().GetInt("max-session")
		minBreak, _ := cmd.Flags().GetInt("min-break")

		var date time.Time
		if dateStr != "" {
			parsed, err := time.Parse("2006-01-02", dateStr)
			if err != nil {
				return fmt.Errorf("parse date: %w", err)
			}
			date = parsed
		}

		e, s, err := openEngine(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		plan, err := e.GeneratePlan(context.Background(), engine.PlanRequest{
			UserID:   userID(cmd),
			Date:     date,
			Slots:    slots,
			Subjects: subjects,
			Prefs: scheduler.Preferences{
				MaxSessionMinutes: maxSession,
				MinBreakMinutes:   minBreak,
			},
		})
		if err != nil {
			return err
		}

		printPlan(plan)
		return nil
	},
}

var planShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the most recent plan",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, s, err := openEngine(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		rec, err := e.LatestPlan(context.Background(), userID(cmd))
		if err != nil {
			return err
		}
		if rec == nil {
			fmt.Println("No plans yet. Run `studium plan generate` first.")
			return nil
		}

		fmt.Printf("Plan %s (%s, %s)\n", rec.PlanID, rec.Date, rec.Strategy)
		fmt.Printf("Total: %d min, estimated gain %.2f\n\n", rec.TotalMinutes, rec.EstimatedGain)
		for _, slot := range rec.Slots {
			fmt.Printf("  %s  %-10s %-22s %-20s [%s]\n",
				slot.TimeRange, slot.Subject, slot.Topic, slot.Method, slot.Intensity)
			fmt.Printf("    %s\n", slot.Rationale)
		}
		return nil
	},
}

func printPlan(plan *scheduler.Plan) {
	fmt.Printf("Study plan for %s (%s, %s)\n", plan.Date, plan.Metadata.Strategy, plan.Metadata.ModelVersion)
	fmt.Printf("Total: %d min, estimated gain %.2f\n\n", plan.TotalMinutes, plan.EstimatedLearningGain)
	for _, slot := range plan.Slots {
		fmt.Printf("  %s  %-10s %-22s %-20s [%s]\n",
			slot.TimeRange, slot.Subject, slot.Topic, slot.Method, slot.Intensity)
		fmt.Printf("    %s\n", slot.Rationale)
	}
}

func init() {
	planGenerateCmd.Flags().StringSlice("slot", nil, "Availability range HH:MM-HH:MM (repeatable, required)")
	planGenerateCmd.Flags().StringSlice("subject", nil, "Limit to subjects (repeatable; default all)")
	planGenerateCmd.Flags().String("date", "", "Plan date YYYY-MM-DD (default today)")
	planGenerateCmd.Flags().Int("max-session", 60, "Maximum session length in minutes")
	planGenerateCmd.Flags().Int("min-break", 15, "Minimum break between sessions in minutes")

	planCmd.AddCommand(planGenerateCmd)
	planCmd.AddCommand(planShowCmd)
}
