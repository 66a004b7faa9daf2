package session

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/gigsterhq/gigster/internal/navigation"
	"github.com/gigsterhq/gigster/internal/onboarding"
	"github.com/gigsterhq/gigster/pkg/models"
)

type fakeAI struct{}

func (fakeAI) AskAboutJob(question string, job models.Job) string {
	return fmt.Sprintf("about %s: %s", job.ID, question)
}

func (fakeAI) GeneralAnswer(question string) string { return "general: " + question }

type recordedEvent struct {
	userID string
	jobID  string
	kind   models.InteractionKind
}

type fakeRecorder struct {
	events      []recordedEvent
	submissions []string
	failRecord  bool
	failSubmit  bool
}

func (r *fakeRecorder) RecordInteraction(_ context.Context, userID, jobID string, kind models.InteractionKind) error {
	if r.failRecord {
		return errors.New("analytics down")
	}
	r.events = append(r.events, recordedEvent{userID, jobID, kind})
	return nil
}

func (r *fakeRecorder) SubmitApplication(_ context.Context, userID string, job models.Job, _ models.ApplicantData) (string, error) {
	if r.failSubmit {
		return "", errors.New("backend down")
	}
	r.submissions = append(r.submissions, job.ID)
	return fmt.Sprintf("app-%d", len(r.submissions)), nil
}

type fakeStore struct {
	users   map[string]*models.LocalUser
	current string
	swipes  []models.SwipeRecord
}

func newFakeStore() *fakeStore {
	return &fakeStore{users: map[string]*models.LocalUser{}}
}

func (s *fakeStore) GetCurrentUser() (*models.LocalUser, error) {
	if s.current == "" {
		return nil, nil
	}
	user := *s.users[s.current]
	return &user, nil
}

func (s *fakeStore) SaveUser(user *models.LocalUser) error {
	cp := *user
	s.users[user.Email] = &cp
	return nil
}

func (s *fakeStore) SetCurrentUser(email string) error {
	if _, ok := s.users[email]; !ok {
		return errors.New("unknown user")
	}
	s.current = email
	return nil
}

func (s *fakeStore) RecordSwipe(jobID string, decision models.SwipeDecision) error {
	s.swipes = append(s.swipes, models.SwipeRecord{JobID: jobID, Decision: decision})
	return nil
}

func testJobs() []models.Job {
	return []models.Job{
		{ID: "J1", Title: "Senior Frontend Developer", Company: "TechCorp", Salary: "$120k"},
		{ID: "J2", Title: "Full Stack Engineer", Company: "StartupCo", Salary: "$100k"},
	}
}

func newTestSession(store *fakeStore, recorder *fakeRecorder) *Session {
	s := New(Config{AI: fakeAI{}, Events: recorder, Store: store})
	s.LoadJobs(testJobs())
	return s
}

func TestFirstTimeApplicantFlow(t *testing.T) {
	store := newFakeStore()
	recorder := &fakeRecorder{}
	s := newTestSession(store, recorder)
	ctx := context.Background()

	s.SwipeRight(ctx)

	if s.Nav().Screen != navigation.ScreenConversationalAI {
		t.Fatalf("screen = %v, expected conversational_ai", s.Nav().Screen)
	}
	if s.Nav().AIContext != navigation.ContextOnboarding {
		t.Fatalf("context = %v, expected onboarding", s.Nav().AIContext)
	}
	if s.Queue().Index() != 0 {
		t.Fatalf("index = %d, J1 must stay current until onboarding completes", s.Queue().Index())
	}
	if current, _ := s.Current(); current.ID != "J1" {
		t.Fatalf("current = %v, expected J1", current.ID)
	}

	s.SendMessage(ctx, "no")
	s.SendMessage(ctx, "jane@example.com")
	s.SendMessage(ctx, "Jane")
	s.SendMessage(ctx, "Doe")
	reply := s.SendMessage(ctx, "yes")

	if s.Queue().Index() != 1 {
		t.Errorf("index after completion = %d, expected 1", s.Queue().Index())
	}
	interested := s.Queue().Interested()
	if len(interested) != 1 || interested[0].ID != "J1" {
		t.Errorf("interested = %+v, expected [J1]", interested)
	}
	if s.Nav().Screen != navigation.ScreenJobCards {
		t.Errorf("screen = %v, expected back on job_cards", s.Nav().Screen)
	}
	if len(recorder.submissions) != 1 || recorder.submissions[0] != "J1" {
		t.Errorf("submissions = %v, expected [J1]", recorder.submissions)
	}
	if store.current != "jane@example.com" {
		t.Errorf("current user = %q, expected the onboarded applicant", store.current)
	}
	if reply == "" {
		t.Error("completion should produce a confirmation message")
	}
}

func TestReturningApplicantSkipsOnboarding(t *testing.T) {
	store := newFakeStore()
	store.SaveUser(&models.LocalUser{Email: "jane@example.com", FirstName: "Jane", LastName: "Doe"})
	store.SetCurrentUser("jane@example.com")
	recorder := &fakeRecorder{}
	s := newTestSession(store, recorder)

	toast := s.SwipeRight(context.Background())

	if s.Queue().Index() != 1 {
		t.Errorf("index = %d, expected immediate advance", s.Queue().Index())
	}
	if s.Nav().Screen != navigation.ScreenJobCards {
		t.Errorf("screen = %v, expected to stay on job_cards", s.Nav().Screen)
	}
	if toast == "" {
		t.Error("expected a success toast")
	}
	if s.Onboarding() != nil {
		t.Error("onboarding should not start for a returning user")
	}
}

func TestSwipeLeftAdvancesDespiteAnalyticsFailure(t *testing.T) {
	store := newFakeStore()
	recorder := &fakeRecorder{failRecord: true}
	s := newTestSession(store, recorder)

	s.SwipeLeft(context.Background())

	if s.Queue().Index() != 1 {
		t.Errorf("index = %d, analytics failure must not block the swipe", s.Queue().Index())
	}
	rejected := s.Queue().Rejected()
	if len(rejected) != 1 || rejected[0].ID != "J1" {
		t.Errorf("rejected = %+v, expected [J1]", rejected)
	}
}

func TestInteractionsCarryUserAndKind(t *testing.T) {
	store := newFakeStore()
	recorder := &fakeRecorder{}
	s := newTestSession(store, recorder)
	ctx := context.Background()

	s.SwipeLeft(ctx)
	if len(recorder.events) != 1 {
		t.Fatalf("events = %+v", recorder.events)
	}
	if recorder.events[0].kind != models.InteractionDislike || recorder.events[0].jobID != "J1" {
		t.Errorf("event = %+v", recorder.events[0])
	}
	if recorder.events[0].userID != "anonymous" {
		t.Errorf("userID = %q, expected anonymous without a cached user", recorder.events[0].userID)
	}
}

func TestSubmissionFailureKeepsQueueInPlace(t *testing.T) {
	store := newFakeStore()
	recorder := &fakeRecorder{failSubmit: true}
	s := newTestSession(store, recorder)
	ctx := context.Background()

	s.SwipeRight(ctx)
	s.SendMessage(ctx, "no")
	s.SendMessage(ctx, "jane@example.com")
	s.SendMessage(ctx, "Jane")
	s.SendMessage(ctx, "Doe")
	reply := s.SendMessage(ctx, "yes")

	if s.Queue().Index() != 0 {
		t.Errorf("index = %d, a failed submission must not advance the queue", s.Queue().Index())
	}
	if reply == "" || reply == "🎉 Application submitted successfully! Moving to next job..." {
		t.Errorf("reply = %q, expected an error message", reply)
	}
}

func TestCompletedOnboardingDoesNotResubmit(t *testing.T) {
	store := newFakeStore()
	recorder := &fakeRecorder{}
	s := newTestSession(store, recorder)
	ctx := context.Background()

	s.SwipeRight(ctx)
	s.SendMessage(ctx, "no")
	s.SendMessage(ctx, "jane@example.com")
	s.SendMessage(ctx, "Jane")
	s.SendMessage(ctx, "Doe")
	s.SendMessage(ctx, "yes")
	s.SendMessage(ctx, "yes") // dialogue is closed; routed to Q&A, not a resubmit

	if len(recorder.submissions) != 1 {
		t.Errorf("submissions = %v, expected exactly one", recorder.submissions)
	}
	if s.Queue().Index() != 1 {
		t.Errorf("index = %d, expected 1", s.Queue().Index())
	}
}

func TestSeededOnboardingConfirmsImmediately(t *testing.T) {
	store := newFakeStore()
	recorder := &fakeRecorder{}
	s := New(Config{AI: fakeAI{}, Events: recorder, Store: store})
	s.LoadJobs(testJobs())

	// A user record saved mid-session seeds the dialogue at confirming.
	job, _ := s.Current()
	store.SaveUser(&models.LocalUser{Email: "jane@example.com", FirstName: "Jane", LastName: "Doe"})
	store.SetCurrentUser("jane@example.com")
	s.startOnboarding(job)

	if s.Onboarding() == nil || s.Onboarding().Step != onboarding.StepConfirming {
		t.Fatalf("onboarding = %+v, expected to start at confirming", s.Onboarding())
	}

	s.SendMessage(context.Background(), "yes")
	if s.Queue().Index() != 1 {
		t.Errorf("index = %d, expected 1 after confirming", s.Queue().Index())
	}
	if len(recorder.submissions) != 1 {
		t.Errorf("submissions = %v", recorder.submissions)
	}
}

func TestAskAIAndClose(t *testing.T) {
	store := newFakeStore()
	recorder := &fakeRecorder{}
	s := newTestSession(store, recorder)
	ctx := context.Background()

	s.ViewDetails(ctx)
	if s.Nav().Screen != navigation.ScreenJobDetails || s.Nav().SelectedJobID != "J1" {
		t.Fatalf("nav = %+v, expected details for J1", s.Nav())
	}

	s.AskAI()
	if s.Nav().AIContext != navigation.ContextJobQA {
		t.Fatalf("context = %v, expected job_qa", s.Nav().AIContext)
	}
	if len(s.Messages()) != 1 {
		t.Fatalf("expected a greeting message, got %d", len(s.Messages()))
	}

	reply := s.SendMessage(ctx, "what is the salary?")
	if reply != "about J1: what is the salary?" {
		t.Errorf("reply = %q", reply)
	}

	// Q&A closes back to the same job's details.
	s.CloseAI()
	if s.Nav().Screen != navigation.ScreenJobDetails || s.Nav().SelectedJobID != "J1" {
		t.Errorf("nav after close = %+v, expected details for J1", s.Nav())
	}
}

func TestClosingOnboardingReturnsToCardsWithoutAdvancing(t *testing.T) {
	store := newFakeStore()
	recorder := &fakeRecorder{}
	s := newTestSession(store, recorder)
	ctx := context.Background()

	s.SwipeRight(ctx)
	s.SendMessage(ctx, "no")
	s.CloseAI()

	if s.Nav().Screen != navigation.ScreenJobCards {
		t.Errorf("screen = %v, expected job_cards", s.Nav().Screen)
	}
	if s.Queue().Index() != 0 {
		t.Errorf("index = %d, abandoning onboarding must not advance", s.Queue().Index())
	}
	if s.Onboarding() != nil {
		t.Error("onboarding state should be discarded on close")
	}
}

func TestTranscript(t *testing.T) {
	store := newFakeStore()
	recorder := &fakeRecorder{}
	s := newTestSession(store, recorder)
	ctx := context.Background()

	s.AskAI()
	s.SendMessage(ctx, "hello")

	messages := s.Messages()
	if len(messages) != 3 { // greeting, user, reply
		t.Fatalf("got %d messages, expected 3", len(messages))
	}
	if messages[0].Sender != models.SenderAI || messages[1].Sender != models.SenderUser || messages[2].Sender != models.SenderAI {
		t.Error("unexpected sender sequence")
	}
	seen := map[string]bool{}
	for _, m := range messages {
		if m.ID == "" || seen[m.ID] {
			t.Errorf("message ids must be unique and non-empty: %+v", m)
		}
		seen[m.ID] = true
		if m.Timestamp.IsZero() {
			t.Error("message timestamps must be set")
		}
	}
}

func TestUndoAfterSwipe(t *testing.T) {
	store := newFakeStore()
	s := newTestSession(store, &fakeRecorder{})
	ctx := context.Background()

	s.SwipeLeft(ctx)
	s.Undo()

	if s.Queue().Index() != 0 {
		t.Errorf("index after undo = %d, expected 0", s.Queue().Index())
	}
	if current, _ := s.Current(); current.ID != "J1" {
		t.Errorf("current = %v, expected J1 restored", current.ID)
	}
}
