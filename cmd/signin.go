package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/gigsterhq/gigster/internal/app"
	"github.com/gigsterhq/gigster/internal/auth"
	"github.com/gigsterhq/gigster/internal/database"
	"github.com/gigsterhq/gigster/pkg/models"
	"github.com/spf13/cobra"
)

var signinCmd = &cobra.Command{
	Use:   "signin <email>",
	Short: "Sign in with an email link",
	Long: `Requests a passwordless sign-in link for the given email address.
Open the link from your inbox, then finish with:

  gigster signin complete "<link>"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		application := app.GetAppFromContext(cmd.Context())
		if application == nil {
			return fmt.Errorf("app not initialized")
		}

		email := args[0]
		if err := application.Auth.SendSignInLink(cmd.Context(), email); err != nil {
			switch {
			case errors.Is(err, auth.ErrInvalidEmail):
				fmt.Fprintln(os.Stderr, "That doesn't look like an email address.")
			case errors.Is(err, auth.ErrRateLimited):
				fmt.Fprintf(os.Stderr, "%v\n", err)
			default:
				fmt.Fprintf(os.Stderr, "Error sending sign-in link: %v\n", err)
			}
			os.Exit(1)
		}

		fmt.Printf("✓ Sign-in link sent to %s. Check your inbox!\n", email)
		fmt.Println("Finish with: gigster signin complete \"<link>\"")
		return nil
	},
}

var signinCompleteCmd = &cobra.Command{
	Use:   "complete <link>",
	Short: "Finish signing in with the emailed link",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		application := app.GetAppFromContext(cmd.Context())
		if application == nil {
			return fmt.Errorf("app not initialized")
		}

		identity, err := application.Auth.CompleteSignIn(cmd.Context(), args[0])
		if err != nil {
			if errors.Is(err, auth.ErrInvalidLink) {
				fmt.Fprintln(os.Stderr, "That link is invalid or has expired. Request a new one with 'gigster signin <email>'.")
			} else {
				fmt.Fprintf(os.Stderr, "Error completing sign-in: %v\n", err)
			}
			os.Exit(1)
		}

		user := &models.LocalUser{Email: identity.Email}

		// Pull the remote profile when one exists; a missing profile just
		// means this user has never applied before.
		profile, err := application.Auth.GetProfile(cmd.Context(), identity.UID)
		switch {
		case err == nil:
			user.FirstName = profile.FirstName
			user.LastName = profile.LastName
			user.ResumeURL = profile.ResumeURL
		case errors.Is(err, auth.ErrProfileNotFound):
		default:
			fmt.Fprintf(os.Stderr, "Warning: could not fetch profile: %v\n", err)
		}

		if err := database.SaveUser(user); err != nil {
			return fmt.Errorf("failed to cache profile: %w", err)
		}
		if err := database.SetCurrentUser(user.Email); err != nil {
			return fmt.Errorf("failed to activate profile: %w", err)
		}

		if user.FirstName != "" {
			fmt.Printf("✓ Welcome back, %s!\n", user.FirstName)
		} else {
			fmt.Printf("✓ Signed in as %s.\n", user.Email)
		}
		fmt.Println("Start swiping with 'gigster swipe'.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(signinCmd)
	signinCmd.AddCommand(signinCompleteCmd)
}
