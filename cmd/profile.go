package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/gigsterhq/gigster/internal/database"
	"github.com/spf13/cobra"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("12")).
			MarginTop(1).
			MarginBottom(1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10")).
			Bold(true)

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("7"))
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage the cached applicant profile",
	Long:  "View or clear the applicant profile cached on this device after onboarding",
}

var showProfileCmd = &cobra.Command{
	Use:   "show",
	Short: "Display the cached applicant profile",
	Run: func(cmd *cobra.Command, args []string) {
		user, err := database.GetCurrentUser()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error fetching profile: %v\n", err)
			os.Exit(1)
		}

		if user == nil {
			fmt.Println("No profile cached. Apply to a job with 'gigster swipe' or sign in with 'gigster signin'.")
			return
		}

		fmt.Println(titleStyle.Render("Your Profile"))
		fmt.Printf("%s %s %s\n", labelStyle.Render("Name:"), valueStyle.Render(user.FirstName), valueStyle.Render(user.LastName))
		fmt.Printf("%s %s\n", labelStyle.Render("Email:"), valueStyle.Render(user.Email))
		if user.ResumeURL != "" {
			fmt.Printf("%s %s\n", labelStyle.Render("Resume:"), valueStyle.Render(user.ResumeURL))
		}
		fmt.Printf("%s %s\n", labelStyle.Render("Last login:"), valueStyle.Render(user.LastLogin.Local().Format("2006-01-02 15:04")))
	},
}

var clearProfileCmd = &cobra.Command{
	Use:   "clear",
	Short: "Sign out on this device",
	Long:  "Clears the active profile so the next application goes through onboarding again. Swipe history is kept.",
	Run: func(cmd *cobra.Command, args []string) {
		if err := database.ClearCurrentUser(); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing profile: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("✓ Signed out. You'll be asked to register on your next application.")
	},
}

func init() {
	rootCmd.AddCommand(profileCmd)
	profileCmd.AddCommand(showProfileCmd)
	profileCmd.AddCommand(clearProfileCmd)
}
