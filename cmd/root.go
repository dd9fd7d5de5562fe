package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/WaverAndrew/marketing-quiz-app/internal/app"
	"github.com/WaverAndrew/marketing-quiz-app/internal/identity"
	"github.com/WaverAndrew/marketing-quiz-app/internal/pool"
	"github.com/WaverAndrew/marketing-quiz-app/internal/telemetry"
)

var rootCmd = &cobra.Command{
	Use:   "mktquiz",
	Short: "Terminal quiz for marketing exam prep",
	Long:  "MktQuiz — terminal app for drilling multiple-choice marketing exam questions in short, randomized rounds.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("pool", "", "Question pool URL or file path (overrides MKTQUIZ_POOL env var)")
	rootCmd.Flags().String("telemetry", "", "Telemetry collector endpoint (overrides MKTQUIZ_TELEMETRY env var)")

	rootCmd.AddCommand(topicsCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}

// runApp resolves configuration and launches the TUI.
func runApp(cmd *cobra.Command) error {
	sink := resolveSink(cmd)

	clientID, err := identity.ClientID()
	if err != nil {
		// An unwritable data dir degrades to a per-run id.
		fmt.Fprintln(os.Stderr, "Could not persist client id:", err)
	}

	defer func() {
		if hs, ok := sink.(*telemetry.HTTPSink); ok {
			hs.Flush()
		}
	}()

	return app.Run(app.Options{
		PoolSource: resolvePoolSource(cmd),
		Sink:       sink,
		ClientID:   clientID,
	})
}

// resolvePoolSource returns the pool source using the --pool flag
// (highest priority), then MKTQUIZ_POOL, then the published default.
func resolvePoolSource(cmd *cobra.Command) string {
	if p, _ := cmd.Flags().GetString("pool"); p != "" {
		return p
	}
	if p := os.Getenv("MKTQUIZ_POOL"); p != "" {
		return p
	}
	return pool.DefaultSource
}

// resolveSink returns an HTTP sink when a collector endpoint is
// configured and a no-op sink otherwise.
func resolveSink(cmd *cobra.Command) telemetry.Sink {
	endpoint, _ := cmd.Flags().GetString("telemetry")
	if endpoint == "" {
		endpoint = os.Getenv("MKTQUIZ_TELEMETRY")
	}
	if endpoint == "" {
		return telemetry.Nop{}
	}
	return telemetry.NewHTTPSink(endpoint)
}
