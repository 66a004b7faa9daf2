// Package navigation tracks which screen is displayed and which job or
// AI context it is associated with.
//
// Screen graph:
//
//	job_cards ──► job_details ──► conversational_ai (job_qa)
//	    │                              ▲
//	    └──────────────────────────────┘ (onboarding)
//
// Transitions are pure, total, and idempotent. Preconditions (such as a
// resolvable job for the job_qa context) are the caller's concern.
package navigation

// Screen identifies one of the application's screens.
type Screen string

const (
	ScreenJobCards         Screen = "job_cards"
	ScreenJobDetails       Screen = "job_details"
	ScreenConversationalAI Screen = "conversational_ai"
)

// AIContext is the purpose the conversational AI screen serves.
type AIContext string

const (
	// ContextNone means the AI screen is not active.
	ContextNone AIContext = ""
	// ContextJobQA is general Q&A about the selected job.
	ContextJobQA AIContext = "job_qa"
	// ContextOnboarding is the application data-collection dialogue.
	ContextOnboarding AIContext = "onboarding"
)

// State is the navigation state. SelectedJobID is set whenever the
// screen is job_details; AIContext is set whenever the screen is
// conversational_ai.
type State struct {
	Screen        Screen
	SelectedJobID string
	AIContext     AIContext
}

// NewState returns the session's starting state.
func NewState() *State {
	return &State{Screen: ScreenJobCards}
}

// ToJobDetails shows the details screen for jobID.
func (s *State) ToJobDetails(jobID string) {
	s.Screen = ScreenJobDetails
	s.SelectedJobID = jobID
}

// ToJobCards returns to the card stack and clears the selection and AI
// context.
func (s *State) ToJobCards() {
	s.Screen = ScreenJobCards
	s.SelectedJobID = ""
	s.AIContext = ContextNone
}

// ToAI opens the conversational AI screen with the given context.
// jobID updates the selection only when non-empty; otherwise whatever
// was previously selected is retained.
func (s *State) ToAI(ctx AIContext, jobID string) {
	s.Screen = ScreenConversationalAI
	s.AIContext = ctx
	if jobID != "" {
		s.SelectedJobID = jobID
	}
}
