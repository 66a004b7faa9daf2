package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/gigsterhq/gigster/internal/app"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "gigster",
	Short: "Swipe through job postings from your terminal",
	Long: `Gigster is a terminal job-discovery app: swipe through job postings,
ask an AI assistant about any role, and apply through a short
conversational flow. Returning users apply with a single swipe.`,
	Version: "0.1.0",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Initialize app with all dependencies
		application, err := app.NewApp(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to initialize app: %w", err)
		}

		// Store app in command context
		cmd.SetContext(app.SetAppInContext(cmd.Context(), application))
		return nil
	},
}

// Execute runs the root command
func Execute() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	rootCmd.SetContext(ctx)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	// Cleanup: close app resources
	if appInstance := app.GetAppFromContext(ctx); appInstance != nil {
		appInstance.Close()
	}
}
