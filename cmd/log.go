package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/arnav/studium/internal/features"
)

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Record behavioral events",
}

var logQuizCmd = &cobra.Command{
	Use:   "quiz",
	Short: "Record one quiz attempt",
	RunE: func(cmd *cobra.Command, args []string) error {
		question, _ := cmd.Flags().GetString("question")
		subject, _ := cmd.Flags().GetString("subject")
		secs, _ := cmd.Flags().GetFloat64("seconds")
		correct, _ := cmd.Flags().GetBool("correct")
		confidence, _ := cmd.Flags().GetFloat64("confidence")
		ordinal, _ := cmd.Flags().GetInt("confidence-scale")

		if ordinal > 0 {
			normalized, err := features.NormalizeOrdinalConfidence(ordinal)
			if err != nil {
				return err
			}
			confidence = normalized
		}

		e, s, err := openEngine(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		err = e.RecordQuizAttempt(context.Background(), userID(cmd), features.CognitiveEvent{
			QuestionID:    question,
			Subject:       subject,
			TimeTakenSecs: secs,
			Correct:       correct,
			Confidence:    confidence,
			Timestamp:     time.Now().UTC(),
		})
		if err != nil {
			return err
		}
		fmt.Println("Recorded quiz attempt.")
		return nil
	},
}

var logSleepCmd = &cobra.Command{
	Use:   "sleep",
	Short: "Record a sleep/tiredness self-report",
	RunE: func(cmd *cobra.Command, args []string) error {
		hours, _ := cmd.Flags().GetFloat64("hours")
		tiredness, _ := cmd.Flags().GetInt("tiredness")

		e, s, err := openEngine(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		err = e.RecordEnergyLog(context.Background(), userID(cmd), features.EnergyLog{
			SleepHours: hours,
			Tiredness:  tiredness,
			Timestamp:  time.Now().UTC(),
		})
		if err != nil {
			return err
		}
		fmt.Println("Recorded sleep report.")
		return nil
	},
}

func init() {
	logQuizCmd.Flags().String("question", "", "Question ID (required)")
	logQuizCmd.Flags().String("subject", "", "Subject the question belongs to")
	logQuizCmd.Flags().Float64("seconds", 0, "Seconds taken (required)")
	logQuizCmd.Flags().Bool("correct", false, "Whether the answer was correct")
	logQuizCmd.Flags().Float64("confidence", -1, "Self-reported confidence in [0,1]; omit if not reported")
	logQuizCmd.Flags().Int("confidence-scale", 0, "Ordinal 1-5 confidence; overrides --confidence")
	logQuizCmd.MarkFlagRequired("question")
	logQuizCmd.MarkFlagRequired("seconds")

	logSleepCmd.Flags().Float64("hours", 0, "Hours slept, 0-12 (required)")
	logSleepCmd.Flags().Int("tiredness", 0, "Tiredness 1-10 (required)")
	logSleepCmd.MarkFlagRequired("hours")
	logSleepCmd.MarkFlagRequired("tiredness")

	logCmd.AddCommand(logQuizCmd)
	logCmd.AddCommand(logSleepCmd)
}
