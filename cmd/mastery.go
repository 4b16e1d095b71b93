package cmd

import (
	"context"
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

var masteryCmd = &cobra.Command{
	Use:   "mastery",
	Short: "Show recorded topic mastery",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, s, err := openEngine(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		all, err := e.Mastery(context.Background(), userID(cmd))
		if err != nil {
			return err
		}
		if len(all) == 0 {
			fmt.Println("No mastery recorded yet. Submit feedback after a session.")
			return nil
		}

		topics := make([]string, 0, len(all))
		for topic := range all {
			topics = append(topics, topic)
		}
		sort.Strings(topics)

		for _, topic := range topics {
			fmt.Printf("  %-32s %.3f\n", topic, all[topic])
		}
		return nil
	},
}
