package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/WaverAndrew/marketing-quiz-app/internal/pool"
)

var validateCmd = &cobra.Command{
	Use:   "validate [source]",
	Short: "Check a question pool against the record schema",
	Long:  "Validates a pool (URL or file path; defaults to the configured source) and reports records that would be tolerated-but-degraded by the loader.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		source := resolvePoolSource(cmd)
		if len(args) == 1 {
			source = args[0]
		}

		data, err := pool.ReadSource(cmd.Context(), source)
		if err != nil {
			return err
		}

		issues, err := pool.Validate(data)
		if err != nil {
			return err
		}

		if len(issues) == 0 {
			fmt.Println("Pool is valid.")
			return nil
		}

		for _, issue := range issues {
			fmt.Println(issue)
		}
		return fmt.Errorf("%d invalid record(s)", len(issues))
	},
}
