package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var feedbackCmd = &cobra.Command{
	Use:   "feedback",
	Short: "Submit post-session feedback",
	RunE: func(cmd *cobra.Command, args []string) error {
		topic, _ := cmd.Flags().GetString("topic")
		completion, _ := cmd.Flags().GetFloat64("completion")
		difficulty, _ := cmd.Flags().GetInt("difficulty")

		var quiz *float64
		if cmd.Flags().Changed("quiz-accuracy") {
			v, _ := cmd.Flags().GetFloat64("quiz-accuracy")
			quiz = &v
		}

		e, s, err := openEngine(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		res, err := e.RecordFeedback(context.Background(), userID(cmd), topic, completion, difficulty, quiz)
		if err != nil {
			return err
		}

		fmt.Printf("Mastery for %s: %.3f -> %.3f (rate %.3f)\n",
			res.TopicID, res.MasteryBefore, res.MasteryAfter, res.LearningRate)
		return nil
	},
}

func init() {
	feedbackCmd.Flags().String("topic", "", "Topic ID, e.g. math:calculus (required)")
	feedbackCmd.Flags().Float64("completion", 0, "Completion rate in [0,1] (required)")
	feedbackCmd.Flags().Int("difficulty", 3, "Perceived difficulty 1-5")
	feedbackCmd.Flags().Float64("quiz-accuracy", 0, "Post-session quiz accuracy in [0,1]; omit if none taken")
	feedbackCmd.MarkFlagRequired("topic")
	feedbackCmd.MarkFlagRequired("completion")
}
