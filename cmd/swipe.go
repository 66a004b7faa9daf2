package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/gigsterhq/gigster/internal/app"
	"github.com/gigsterhq/gigster/internal/database"
	"github.com/gigsterhq/gigster/internal/gesture"
	"github.com/gigsterhq/gigster/internal/matcher"
	"github.com/gigsterhq/gigster/internal/navigation"
	"github.com/gigsterhq/gigster/internal/session"
	"github.com/gigsterhq/gigster/pkg/models"
	"github.com/spf13/cobra"
)

var (
	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("12")).
			Padding(1, 2)

	rejectStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9")).
			Bold(true)
)

var swipeCmd = &cobra.Command{
	Use:   "swipe",
	Short: "Swipe through the job deck",
	Long: `Browse job cards one at a time: swipe right to apply, left to pass,
tap into the details, or ask the AI assistant about the role.
First-time applicants go through a short conversational onboarding.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		application := app.GetAppFromContext(cmd.Context())
		if application == nil {
			return fmt.Errorf("app not initialized")
		}

		fresh, _ := cmd.Flags().GetBool("fresh")
		if fresh {
			if err := database.ClearAllData(); err != nil {
				return fmt.Errorf("failed to clear cached data: %w", err)
			}
			fmt.Println("Cleared cached profile and swipe history.")
		}

		runSwipe(cmd.Context(), application)
		return nil
	},
}

func runSwipe(ctx context.Context, application *app.App) {
	fmt.Println("Loading jobs...")
	jobs := application.Jobs.FetchAllActiveJobs(ctx)

	sess := session.New(session.Config{
		AI:     application.AI,
		Events: application.Events,
		Store:  database.Store{},
	})
	sess.LoadJobs(jobs)

	reader := bufio.NewReader(os.Stdin)

	for {
		switch sess.Nav().Screen {
		case navigation.ScreenConversationalAI:
			if done := runChat(ctx, sess, reader); done {
				return
			}
		case navigation.ScreenJobDetails:
			if done := detailsTurn(ctx, sess, reader); done {
				return
			}
		default:
			if done := cardTurn(ctx, sess, application, reader); done {
				return
			}
		}
	}
}

// cardTurn renders the top card and handles one command on the deck.
func cardTurn(ctx context.Context, sess *session.Session, application *app.App, reader *bufio.Reader) bool {
	job, ok := sess.Current()
	if !ok {
		fmt.Println(titleStyle.Render("You've seen all available jobs!"))
		fmt.Printf("Swiped right on %d, left on %d.\n", len(sess.Queue().Interested()), len(sess.Queue().Rejected()))
		fmt.Println("\nOptions: [u] undo last swipe  [q] quit")
		fmt.Print("\n> ")

		choice, _ := reader.ReadString('\n')
		switch strings.TrimSpace(strings.ToLower(choice)) {
		case "u":
			sess.Undo()
		case "q":
			return true
		default:
			fmt.Println("Invalid choice")
		}
		return false
	}

	renderCard(job, sess.Queue().Index(), sess.Queue().Len())

	fmt.Println("\nOptions:")
	fmt.Println("  [r] swipe right (apply)   [l] swipe left (pass)")
	fmt.Println("  [d] view details          [a] ask AI about this job")
	fmt.Println("  [u] undo last swipe       [q] quit")
	fmt.Println("  drag <dx> <dy>            simulate a drag release")
	fmt.Print("\n> ")

	input, _ := reader.ReadString('\n')
	input = strings.TrimSpace(input)
	lowered := strings.ToLower(input)

	switch {
	case lowered == "r":
		if toast := sess.SwipeRight(ctx); toast != "" {
			fmt.Println(labelStyle.Render("✓ " + toast))
		}
	case lowered == "l":
		sess.SwipeLeft(ctx)
	case lowered == "d":
		sess.ViewDetails(ctx)
	case lowered == "a":
		sess.AskAI()
	case lowered == "u":
		sess.Undo()
	case lowered == "q":
		return true
	case strings.HasPrefix(lowered, "drag "):
		handleDrag(ctx, sess, application, input)
	default:
		fmt.Println("Invalid choice")
	}
	return false
}

// handleDrag classifies a released drag the same way the card responds
// to a pointer: tap opens details, a long enough horizontal pull swipes.
func handleDrag(ctx context.Context, sess *session.Session, application *app.App, input string) {
	fields := strings.Fields(input)
	if len(fields) != 3 {
		fmt.Println("Usage: drag <dx> <dy>")
		return
	}
	dx, errX := strconv.ParseFloat(fields[1], 64)
	dy, errY := strconv.ParseFloat(fields[2], 64)
	if errX != nil || errY != nil {
		fmt.Println("Usage: drag <dx> <dy>")
		return
	}

	tracker := gesture.NewTracker(
		gesture.WithThreshold(application.Config.SwipeThreshold),
		gesture.WithDelta(application.Config.TapDelta),
	)
	tracker.Start(0, 0)
	tracker.Move(dx, dy)

	if tracker.ShowLikeIndicator() {
		fmt.Println(labelStyle.Render("LIKE"))
	} else if tracker.ShowRejectIndicator() {
		fmt.Println(rejectStyle.Render("NOPE"))
	}

	switch tracker.End() {
	case gesture.Tap:
		sess.ViewDetails(ctx)
	case gesture.SwipeRight:
		if toast := sess.SwipeRight(ctx); toast != "" {
			fmt.Println(labelStyle.Render("✓ " + toast))
		}
	case gesture.SwipeLeft:
		sess.SwipeLeft(ctx)
	default:
		fmt.Println("Card snapped back.")
	}
}

// detailsTurn renders the full posting for the selected job.
func detailsTurn(ctx context.Context, sess *session.Session, reader *bufio.Reader) bool {
	job, ok := sess.Queue().Job(sess.Nav().SelectedJobID)
	if !ok {
		sess.Nav().ToJobCards()
		return false
	}

	fmt.Println("\n" + strings.Repeat("=", 60))
	fmt.Println(titleStyle.Render(job.Title))
	fmt.Printf("%s %s\n", labelStyle.Render("Company:"), valueStyle.Render(job.Company))
	fmt.Printf("%s %s\n", labelStyle.Render("Location:"), valueStyle.Render(job.Location))
	fmt.Printf("%s %s\n", labelStyle.Render("Salary:"), valueStyle.Render(job.Salary))
	fmt.Printf("%s %s\n", labelStyle.Render("Work Type:"), valueStyle.Render(workLocationLabel(job.WorkLocation)))
	fmt.Printf("%s %d%%\n", labelStyle.Render("Match Score:"), matcher.Score(job.ID))
	if job.CommuteEstimate != "" {
		fmt.Printf("%s %s\n", labelStyle.Render("Commute:"), valueStyle.Render(job.CommuteEstimate))
	}

	if job.Description != "" {
		fmt.Println(labelStyle.Render("\nDescription:"))
		fmt.Println(job.Description)
	}
	if len(job.Requirements) > 0 {
		fmt.Println(labelStyle.Render("\nRequirements:"))
		for _, req := range job.Requirements {
			fmt.Printf("  • %s\n", req)
		}
	}
	if len(job.Benefits) > 0 {
		fmt.Println(labelStyle.Render("\nBenefits:"))
		for _, benefit := range job.Benefits {
			fmt.Printf("  • %s\n", benefit)
		}
	}
	if job.AboutCompany != "" {
		fmt.Println(labelStyle.Render("\nAbout the Company:"))
		fmt.Println(job.AboutCompany)
	}

	fmt.Println("\nOptions:")
	fmt.Println("  [a] ask AI about this job")
	fmt.Println("  [r] swipe right (apply)   [l] swipe left (pass)")
	fmt.Println("  [b] back to cards         [q] quit")
	fmt.Print("\n> ")

	choice, _ := reader.ReadString('\n')
	switch strings.TrimSpace(strings.ToLower(choice)) {
	case "a":
		sess.AskAI()
	case "r":
		if toast := sess.SwipeRight(ctx); toast != "" {
			fmt.Println(labelStyle.Render("✓ " + toast))
		}
		if sess.Nav().Screen == navigation.ScreenJobDetails {
			sess.Nav().ToJobCards()
		}
	case "l":
		sess.SwipeLeft(ctx)
		sess.Nav().ToJobCards()
	case "b":
		sess.Nav().ToJobCards()
	case "q":
		return true
	default:
		fmt.Println("Invalid choice")
	}
	return false
}

// runChat drives the conversational AI screen, covering both job Q&A
// and the onboarding dialogue. Returns true when the user quits.
func runChat(ctx context.Context, sess *session.Session, reader *bufio.Reader) bool {
	// The session seeds the transcript with a greeting on entry.
	if msgs := sess.Messages(); len(msgs) > 0 {
		if last := msgs[len(msgs)-1]; last.Sender == models.SenderAI {
			fmt.Printf("\n%s %s\n", labelStyle.Render("AI:"), last.Text)
		}
	}
	fmt.Println(valueStyle.Render("(type 'close' to leave the chat, 'upload <path>' to attach a resume)"))

	for sess.Nav().Screen == navigation.ScreenConversationalAI {
		fmt.Print("You: ")
		input, _ := reader.ReadString('\n')
		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}

		switch {
		case strings.EqualFold(input, "close") || strings.EqualFold(input, "back"):
			sess.CloseAI()
		case strings.EqualFold(input, "quit") || strings.EqualFold(input, "q"):
			return true
		case strings.HasPrefix(strings.ToLower(input), "upload "):
			uploadResume(sess, strings.TrimSpace(input[len("upload "):]))
		default:
			reply := sess.SendMessage(ctx, input)
			if reply != "" {
				fmt.Printf("%s %s\n", labelStyle.Render("AI:"), reply)
			}
		}
	}
	return false
}

// uploadResume stats the file and routes it into the dialogue with the
// MIME type implied by its extension.
func uploadResume(sess *session.Session, path string) {
	info, err := os.Stat(path)
	if err != nil {
		fmt.Printf("Could not read file: %v\n", err)
		return
	}
	reply := sess.AttachResume(filepath.Base(path), resumeMIMEType(path), info.Size())
	if reply != "" {
		fmt.Printf("%s %s\n", labelStyle.Render("AI:"), reply)
	}
}

func resumeMIMEType(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return "application/pdf"
	case ".doc":
		return "application/msword"
	case ".docx":
		return "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	default:
		return ""
	}
}

// renderCard draws the compact card shown on the deck.
func renderCard(job models.Job, index, total int) {
	fmt.Println()
	fmt.Println(cardStyle.Render(fmt.Sprintf(
		"%s\n%s\n\n%s  %s\n%s  •  %d%% match\n\n%s",
		titleStyle.Render(job.Title),
		valueStyle.Render(job.Company),
		job.Location,
		job.Salary,
		workLocationLabel(job.WorkLocation),
		matcher.Score(job.ID),
		job.CompellingHighlight,
	)))
	if len(job.Tags) > 0 {
		fmt.Printf("%s %s\n", labelStyle.Render("Tags:"), strings.Join(job.Tags, ", "))
	}
	fmt.Printf("Job %d of %d\n", index+1, total)
}

func workLocationLabel(w models.WorkLocation) string {
	switch w {
	case models.WorkRemote:
		return "Remote"
	case models.WorkHybrid:
		return "Hybrid"
	default:
		return "Office-based"
	}
}

func init() {
	rootCmd.AddCommand(swipeCmd)
	swipeCmd.Flags().Bool("fresh", false, "Clear the cached profile and swipe history before starting")
}
