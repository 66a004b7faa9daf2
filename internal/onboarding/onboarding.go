// Package onboarding drives the conversational application flow: a
// fixed sequence of steps that collects applicant identity data from
// free-text input, validates it, and signals when the application is
// ready to submit.
package onboarding

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/gigsterhq/gigster/pkg/models"
)

// Step is the dialogue's position in the flow. The sequence is linear:
// ask_existing, collecting, confirming, complete.
type Step string

const (
	StepAskExisting Step = "ask_existing"
	StepCollecting  Step = "collecting"
	StepConfirming  Step = "confirming"
	StepComplete    Step = "complete"
)

// Action tells the caller that a turn crossed a milestone.
type Action string

const (
	// ActionNone means the turn only produced dialogue.
	ActionNone Action = ""
	// ActionConfirm means all data is collected and valid; the flow is
	// waiting for the user to approve submission.
	ActionConfirm Action = "confirm"
	// ActionComplete means the user approved; the caller should persist
	// the applicant record and submit the application.
	ActionComplete Action = "complete"
)

// Resume upload limits. Only PDF and Word documents are accepted.
const (
	maxResumeSize = 5 * 1024 * 1024

	mimePDF  = "application/pdf"
	mimeDoc  = "application/msword"
	mimeDocX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

// State is the onboarding dialogue state. Mutated turn-by-turn by
// Process; StepComplete is terminal for the text channel.
type State struct {
	Step             Step
	Data             models.ApplicantData
	ValidationErrors []string
	CanProceed       bool
	IsExistingUser   bool
}

// Result is one dialogue turn's output.
type Result struct {
	Response string
	Action   Action
}

// New starts the flow for a device with no cached applicant record.
func New() *State {
	return &State{Step: StepAskExisting}
}

// NewFromUser seeds the flow from a cached local user: all fields are
// pre-filled and the dialogue starts directly at the confirmation step.
func NewFromUser(user models.LocalUser) *State {
	return &State{
		Step: StepConfirming,
		Data: models.ApplicantData{
			FirstName: user.FirstName,
			LastName:  user.LastName,
			Email:     user.Email,
			ResumeURL: user.ResumeURL,
		},
		CanProceed:     true,
		IsExistingUser: true,
	}
}

var validate = validator.New()

// Validate checks the collected applicant data and returns
// human-readable messages for every violation. Names must be at least
// two characters after trimming; the email must be well-formed.
func Validate(data models.ApplicantData) []string {
	data.FirstName = strings.TrimSpace(data.FirstName)
	data.LastName = strings.TrimSpace(data.LastName)

	err := validate.Struct(data)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []string{"Please provide all required information."}
	}

	var msgs []string
	for _, fe := range verrs {
		switch fe.Field() {
		case "FirstName":
			msgs = append(msgs, "First name is required (at least 2 characters)")
		case "LastName":
			msgs = append(msgs, "Last name is required (at least 2 characters)")
		case "Email":
			msgs = append(msgs, "Valid email address is required")
		}
	}
	return msgs
}

// Process consumes one line of user input and advances the dialogue.
// Every transition is an atomic update of the whole state: either the
// turn applies fully or the state is left untouched.
func (s *State) Process(input string, job models.Job) Result {
	lowered := strings.ToLower(strings.TrimSpace(input))

	switch s.Step {
	case StepAskExisting:
		s.Step = StepCollecting
		if strings.Contains(lowered, "yes") {
			return Result{Response: "Please enter your email address:"}
		}
		return Result{Response: "Let's get you registered! What's your email address?"}

	case StepCollecting:
		return s.collect(input)

	case StepConfirming:
		if containsAny(lowered, "yes", "apply", "submit") {
			s.Step = StepComplete
			return Result{
				Response: "🎉 Application submitted! Moving to next job...",
				Action:   ActionComplete,
			}
		}
		return Result{Response: "No problem! Let me know when you're ready to apply."}

	case StepComplete:
		// Terminal: identity fields are no longer editable over text.
		return Result{}
	}

	// Unknown step: start over.
	s.Step = StepAskExisting
	return Result{Response: "I'm not sure how to help with that. Let's start over."}
}

// collect runs one slot-fill turn. Slots fill strictly in order: email,
// then first name, then last name. Out-of-order input and multi-field
// messages are not handled.
func (s *State) collect(input string) Result {
	if email, ok := tryExtractEmail(input); ok {
		s.Data.Email = email
		return Result{Response: "Great! What's your first name?"}
	}
	if s.Data.Email != "" && s.Data.FirstName == "" {
		s.Data.FirstName = tryExtractName(input)
		return Result{Response: "And your last name?"}
	}
	if s.Data.FirstName != "" && s.Data.LastName == "" {
		s.Data.LastName = tryExtractName(input)

		s.ValidationErrors = Validate(s.Data)
		if len(s.ValidationErrors) == 0 {
			s.Step = StepConfirming
			s.CanProceed = true
			return Result{
				Response: "Perfect! Ready to apply? Type 'yes' to submit.",
				Action:   ActionConfirm,
			}
		}
		return Result{Response: "Please provide all required information."}
	}
	return Result{Response: "What's your email address?"}
}

// AttachResume is the file-upload side channel. A valid file sets the
// resume reference and forces the confirmation step whatever step the
// dialogue was on; a rejected file produces a message and changes
// nothing.
func (s *State) AttachResume(name, mimeType string, size int64) Result {
	switch mimeType {
	case mimePDF, mimeDoc, mimeDocX:
	default:
		return Result{Response: "Please upload a PDF or Word document for your resume."}
	}
	if size > maxResumeSize {
		return Result{Response: "File size should be less than 5MB. Please choose a smaller file."}
	}

	s.Data.ResumeURL = name
	s.Step = StepConfirming
	return Result{
		Response: fmt.Sprintf("Great! I've received your resume: %s. Ready to submit your application?", name),
	}
}

// tryExtractEmail treats any input containing "@" as an email address.
func tryExtractEmail(input string) (string, bool) {
	if strings.Contains(input, "@") {
		return strings.TrimSpace(input), true
	}
	return "", false
}

// tryExtractName treats the whole input as a single name component.
func tryExtractName(input string) string {
	return strings.TrimSpace(input)
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
