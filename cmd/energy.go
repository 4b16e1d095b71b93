package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var energyCmd = &cobra.Command{
	Use:   "energy",
	Short: "Show current energy state",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, s, err := openEngine(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		state, err := e.BuildEnergyState(context.Background(), userID(cmd))
		if err != nil {
			return err
		}

		fmt.Printf("Energy:  %d/100 (%s)\n", state.Score, state.Level)
		fmt.Printf("Fatigue: %.2f\n", state.FatigueIndex)
		fmt.Printf("Do:      %s\n", strings.Join(state.Recommended, ", "))
		fmt.Printf("Avoid:   %s\n", strings.Join(state.Avoid, ", "))
		return nil
	},
}
