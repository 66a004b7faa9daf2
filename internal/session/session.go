// Package session orchestrates the swipe flow: it wires gesture
// outcomes, the job queue, navigation, and the onboarding dialogue
// around one policy decision: has this device completed onboarding
// before?
package session

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/gigsterhq/gigster/internal/navigation"
	"github.com/gigsterhq/gigster/internal/onboarding"
	"github.com/gigsterhq/gigster/internal/queue"
	"github.com/gigsterhq/gigster/pkg/models"
)

// Answerer is the conversational AI collaborator. Its methods never
// fail; they degrade to rule-based answers internally.
type Answerer interface {
	AskAboutJob(question string, job models.Job) string
	GeneralAnswer(question string) string
}

// Recorder is the analytics and application-submission collaborator.
// RecordInteraction failures are log-only; SubmitApplication is the one
// awaited call.
type Recorder interface {
	RecordInteraction(ctx context.Context, userID, jobID string, kind models.InteractionKind) error
	SubmitApplication(ctx context.Context, userID string, job models.Job, applicant models.ApplicantData) (string, error)
}

// UserStore is the local device cache used to detect returning users
// and persist onboarding results.
type UserStore interface {
	GetCurrentUser() (*models.LocalUser, error)
	SaveUser(user *models.LocalUser) error
	SetCurrentUser(email string) error
	RecordSwipe(jobID string, decision models.SwipeDecision) error
}

// Session is the application state for one run. All mutations happen
// synchronously from a single interaction loop; network side effects
// are fire-and-forget except the application submission.
type Session struct {
	queue   *queue.Queue
	nav     *navigation.State
	onboard *onboarding.State

	ai     Answerer
	events Recorder
	store  UserStore
	logger *slog.Logger

	messages   []models.Message
	submitting bool
}

// Config carries the session's collaborators.
type Config struct {
	AI     Answerer
	Events Recorder
	Store  UserStore
	Logger *slog.Logger
}

// New returns an empty session on the job_cards screen.
func New(cfg Config) *Session {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Session{
		queue:  queue.New(),
		nav:    navigation.NewState(),
		ai:     cfg.AI,
		events: cfg.Events,
		store:  cfg.Store,
		logger: logger,
	}
}

// LoadJobs populates the queue and resets swipe progress.
func (s *Session) LoadJobs(jobs []models.Job) {
	s.queue.Load(jobs)
}

// Queue exposes the job queue for rendering.
func (s *Session) Queue() *queue.Queue { return s.queue }

// Nav exposes the navigation state for rendering.
func (s *Session) Nav() *navigation.State { return s.nav }

// Onboarding returns the active onboarding dialogue, or nil.
func (s *Session) Onboarding() *onboarding.State { return s.onboard }

// Messages returns a copy of the chat transcript.
func (s *Session) Messages() []models.Message {
	out := make([]models.Message, len(s.messages))
	copy(out, s.messages)
	return out
}

// Current returns the job on top of the card stack.
func (s *Session) Current() (models.Job, bool) { return s.queue.Current() }

// SwipeLeft rejects the current job: a dislike event is recorded
// best-effort and the queue advances.
func (s *Session) SwipeLeft(ctx context.Context) {
	job, ok := s.queue.Current()
	if !ok {
		return
	}
	s.recordInteraction(ctx, job.ID, models.InteractionDislike)
	s.queue.SwipeLeft(job.ID)
	s.persistSwipe(job.ID, models.DecisionRejected)
}

// SwipeRight accepts the current job. A returning user advances
// immediately and gets a success toast; a first-time user is routed
// into the onboarding dialogue and the queue is not advanced until it
// completes.
func (s *Session) SwipeRight(ctx context.Context) (toast string) {
	job, ok := s.queue.Current()
	if !ok {
		return ""
	}
	s.recordInteraction(ctx, job.ID, models.InteractionLike)

	user, err := s.store.GetCurrentUser()
	if err != nil {
		s.logger.Warn("reading cached user failed", "error", err)
	}
	if user != nil {
		s.queue.SwipeRight(job.ID)
		s.persistSwipe(job.ID, models.DecisionInterested)
		return fmt.Sprintf("Application submitted for %s at %s!", job.Title, job.Company)
	}

	s.startOnboarding(job)
	return ""
}

// startOnboarding opens the conversational AI screen in onboarding
// context. A cached user (saved but not active at swipe time) seeds the
// dialogue directly at the confirmation step.
func (s *Session) startOnboarding(job models.Job) {
	s.nav.ToAI(navigation.ContextOnboarding, job.ID)
	s.messages = nil

	if user, err := s.store.GetCurrentUser(); err == nil && user != nil {
		s.onboard = onboarding.NewFromUser(*user)
		s.addAIMessage(fmt.Sprintf("Hi %s! Ready to apply for the %s position at %s? Type 'yes' to submit your application.", user.FirstName, job.Title, job.Company))
		return
	}
	s.onboard = onboarding.New()
	s.addAIMessage("Hi! Are you already registered with Gigster?")
}

// AskAI opens the conversational AI screen in Q&A context for the
// selected job (or the current card when nothing is selected).
func (s *Session) AskAI() {
	jobID := s.nav.SelectedJobID
	if jobID == "" {
		if job, ok := s.queue.Current(); ok {
			jobID = job.ID
		}
	}
	s.nav.ToAI(navigation.ContextJobQA, jobID)
	s.messages = nil
	if job, ok := s.findJob(jobID); ok {
		s.addAIMessage(fmt.Sprintf("Hi! I'm here to help you learn more about the %s position at %s. What would you like to know?", job.Title, job.Company))
	}
}

// ViewDetails shows the details screen for the current card and records
// a view event.
func (s *Session) ViewDetails(ctx context.Context) {
	job, ok := s.queue.Current()
	if !ok {
		return
	}
	s.recordInteraction(ctx, job.ID, models.InteractionView)
	s.nav.ToJobDetails(job.ID)
}

// CloseAI leaves the conversational screen: Q&A returns to the details
// of the same job, onboarding returns to the card stack. Closing an
// incomplete onboarding dialogue leaves the queue unadvanced.
func (s *Session) CloseAI() {
	if s.nav.AIContext == navigation.ContextJobQA && s.nav.SelectedJobID != "" {
		s.nav.ToJobDetails(s.nav.SelectedJobID)
		return
	}
	s.onboard = nil
	s.nav.ToJobCards()
}

// Undo reverses the most recent swipe.
func (s *Session) Undo() {
	s.queue.Undo()
}

// SendMessage feeds one line of user input to whichever dialogue is
// active and returns the AI's reply.
func (s *Session) SendMessage(ctx context.Context, text string) string {
	if text == "" {
		return ""
	}
	s.addUserMessage(text)

	job, _ := s.findJob(s.nav.SelectedJobID)

	if s.nav.AIContext == navigation.ContextOnboarding && s.onboard != nil {
		result := s.onboard.Process(text, job)
		reply := result.Response
		if result.Action == onboarding.ActionComplete {
			if outcome := s.completeOnboarding(ctx, job); outcome != "" {
				reply = outcome
			}
		}
		if reply != "" {
			s.addAIMessage(reply)
		}
		return reply
	}

	var reply string
	if job.ID != "" {
		reply = s.ai.AskAboutJob(text, job)
	} else {
		reply = s.ai.GeneralAnswer(text)
	}
	s.addAIMessage(reply)
	return reply
}

// AttachResume routes a resume upload into the onboarding dialogue.
func (s *Session) AttachResume(name, mimeType string, size int64) string {
	if s.onboard == nil {
		return ""
	}
	result := s.onboard.AttachResume(name, mimeType, size)
	s.addAIMessage(result.Response)
	return result.Response
}

// completeOnboarding persists the applicant, submits the application,
// advances the queue, and returns to the card stack. A second call
// while a submission is in flight is ignored.
func (s *Session) completeOnboarding(ctx context.Context, job models.Job) string {
	if s.submitting {
		return ""
	}
	s.submitting = true
	defer func() { s.submitting = false }()

	data := s.onboard.Data
	user := &models.LocalUser{
		Email:     data.Email,
		FirstName: data.FirstName,
		LastName:  data.LastName,
		ResumeURL: data.ResumeURL,
	}
	if err := s.store.SaveUser(user); err != nil {
		s.logger.Warn("saving local user failed", "error", err)
	} else if err := s.store.SetCurrentUser(user.Email); err != nil {
		s.logger.Warn("setting current user failed", "error", err)
	}

	if _, err := s.events.SubmitApplication(ctx, data.Email, job, data); err != nil {
		s.logger.Error("application submission failed", "job", job.ID, "error", err)
		return "Sorry, there was an error submitting your application. Please try again."
	}

	s.queue.SwipeRight(job.ID)
	s.persistSwipe(job.ID, models.DecisionInterested)
	s.onboard = nil
	s.nav.ToJobCards()
	return "🎉 Application submitted successfully! Moving to next job..."
}

func (s *Session) recordInteraction(ctx context.Context, jobID string, kind models.InteractionKind) {
	if err := s.events.RecordInteraction(ctx, s.userID(), jobID, kind); err != nil {
		s.logger.Warn("recording interaction failed", "job", jobID, "kind", kind, "error", err)
	}
}

func (s *Session) persistSwipe(jobID string, decision models.SwipeDecision) {
	if err := s.store.RecordSwipe(jobID, decision); err != nil {
		s.logger.Warn("persisting swipe failed", "job", jobID, "error", err)
	}
}

func (s *Session) userID() string {
	user, err := s.store.GetCurrentUser()
	if err != nil || user == nil {
		return "anonymous"
	}
	return user.Email
}

func (s *Session) findJob(jobID string) (models.Job, bool) {
	if jobID == "" {
		return models.Job{}, false
	}
	return s.queue.Job(jobID)
}

func (s *Session) addAIMessage(text string) {
	s.messages = append(s.messages, models.Message{
		ID:        uuid.NewString(),
		Text:      text,
		Sender:    models.SenderAI,
		Timestamp: time.Now(),
	})
}

func (s *Session) addUserMessage(text string) {
	s.messages = append(s.messages, models.Message{
		ID:        uuid.NewString(),
		Text:      text,
		Sender:    models.SenderUser,
		Timestamp: time.Now(),
	})
}
