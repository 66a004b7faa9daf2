package cmd

import (
	"fmt"
	"os"

	"github.com/gigsterhq/gigster/internal/config"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long:  "View and update configuration settings",
}

var showConfigCmd = &cobra.Command{
	Use:   "show",
	Short: "Display current configuration",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(titleStyle.Render("Configuration"))
		fmt.Printf("%s %s\n", labelStyle.Render("Config File:"), config.GetConfigPath())
		fmt.Printf("%s %s\n", labelStyle.Render("Default Model:"), config.AppConfig.DefaultModel)

		// Show if the API key is configured (but don't show the actual key)
		if config.AppConfig.GroqKey != "" {
			fmt.Printf("%s %s\n", labelStyle.Render("Groq Key:"), "✓ Configured")
		} else {
			fmt.Printf("%s %s\n", labelStyle.Render("Groq Key:"), "✗ Not configured (rule-based answers only)")
		}

		endpoint := func(label, value string) {
			if value != "" {
				fmt.Printf("%s %s\n", labelStyle.Render(label), value)
			} else {
				fmt.Printf("%s %s\n", labelStyle.Render(label), "✗ Not configured (offline mode)")
			}
		}
		endpoint("Jobs API:", config.AppConfig.JobsAPIURL)
		endpoint("Auth API:", config.AppConfig.AuthAPIURL)
		endpoint("Events API:", config.AppConfig.EventsAPIURL)

		fmt.Printf("%s %.0f\n", labelStyle.Render("Swipe Threshold:"), config.AppConfig.SwipeThreshold)
		fmt.Printf("%s %.0f\n", labelStyle.Render("Tap Delta:"), config.AppConfig.TapDelta)
	},
}

var setConfigCmd = &cobra.Command{
	Use:   "set",
	Short: "Update a configuration value",
	Example: `  gigster config set --key groq_key --value gsk_...
  gigster config set --key jobs_api_url --value https://api.gigster.example
  gigster config set --key swipe_threshold --value 150`,
	Run: func(cmd *cobra.Command, args []string) {
		key, _ := cmd.Flags().GetString("key")
		value, _ := cmd.Flags().GetString("value")

		if key == "" || value == "" {
			fmt.Println("Both --key and --value are required")
			return
		}

		// Validate key
		validKeys := []string{"groq_key", "default_model", "jobs_api_url", "auth_api_url", "events_api_url", "swipe_threshold", "tap_delta"}
		valid := false
		for _, k := range validKeys {
			if k == key {
				valid = true
				break
			}
		}
		if !valid {
			fmt.Printf("Invalid key. Must be one of: %v\n", validKeys)
			return
		}

		if err := config.Set(key, value); err != nil {
			fmt.Fprintf(os.Stderr, "Error updating config: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("✓ Configuration updated: %s\n", key)

		// Reload config
		if err := config.Initialize(); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: Could not reload config: %v\n", err)
		}
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file location",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(config.GetConfigPath())
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(showConfigCmd)
	configCmd.AddCommand(setConfigCmd)
	configCmd.AddCommand(configPathCmd)

	// Flags for set command
	setConfigCmd.Flags().String("key", "", "Configuration key")
	setConfigCmd.Flags().String("value", "", "Configuration value")
}
