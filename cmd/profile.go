package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show the current cognitive profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, s, err := openEngine(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		prof, err := e.BuildProfile(context.Background(), userID(cmd))
		if err != nil {
			return err
		}

		fmt.Printf("Profile:    %s\n", prof.Type)
		fmt.Printf("Confidence: %.2f\n", prof.Confidence)
		fmt.Printf("Window:     %d events\n", prof.Features.EventCount)
		fmt.Printf("Accuracy:   %.0f%%\n", prof.Features.AccuracyRate*100)
		fmt.Printf("Avg time:   %.1fs\n", prof.Features.RawAvgResponseSecs)
		return nil
	},
}
