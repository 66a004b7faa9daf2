package cmd

import (
	"fmt"
	"os"

	"github.com/gigsterhq/gigster/internal/app"
	"github.com/gigsterhq/gigster/internal/database"
	"github.com/gigsterhq/gigster/internal/matcher"
	"github.com/gigsterhq/gigster/pkg/models"
	"github.com/spf13/cobra"
)

var jobsCmd = &cobra.Command{
	Use:   "jobs",
	Short: "List available jobs",
	Long:  "Lists the active job postings with match scores and any decisions already made on this device",
	RunE: func(cmd *cobra.Command, args []string) error {
		application := app.GetAppFromContext(cmd.Context())
		if application == nil {
			return fmt.Errorf("app not initialized")
		}

		jobs := application.Jobs.FetchAllActiveJobs(cmd.Context())
		if len(jobs) == 0 {
			fmt.Println("No jobs available right now. Try again later.")
			return nil
		}

		swipes, err := database.GetSwipes()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not read swipe history: %v\n", err)
		}
		decisions := make(map[string]models.SwipeDecision, len(swipes))
		for _, swipe := range swipes {
			decisions[swipe.JobID] = swipe.Decision
		}

		fmt.Println(titleStyle.Render("Available Jobs"))
		for i, job := range jobs {
			marker := " "
			switch decisions[job.ID] {
			case models.DecisionInterested:
				marker = labelStyle.Render("✓")
			case models.DecisionRejected:
				marker = rejectStyle.Render("✗")
			}
			fmt.Printf("%s %2d. %s at %s (%d%% match)\n", marker, i+1, job.Title, job.Company, matcher.Score(job.ID))
			fmt.Printf("       %s  •  %s\n", job.Location, job.Salary)
		}
		fmt.Println("\nStart swiping with 'gigster swipe'.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(jobsCmd)
}
