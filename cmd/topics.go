package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/WaverAndrew/marketing-quiz-app/internal/pool"
)

var topicsCmd = &cobra.Command{
	Use:   "topics",
	Short: "List the topics in the question pool",
	RunE: func(cmd *cobra.Command, args []string) error {
		questions, err := pool.Load(cmd.Context(), resolvePoolSource(cmd))
		if err != nil {
			return fmt.Errorf("load question pool: %w", err)
		}

		topics := pool.Topics(questions)
		for _, tc := range topics {
			fmt.Printf("%4d  %s\n", tc.Count, tc.Topic)
		}
		fmt.Printf("\n%d topics, %d questions\n", len(topics), len(questions))
		return nil
	},
}
