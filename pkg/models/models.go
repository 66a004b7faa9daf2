package models

import "time"

// WorkLocation categorizes where a job is performed.
type WorkLocation string

const (
	WorkRemote WorkLocation = "remote"
	WorkHybrid WorkLocation = "hybrid"
	WorkOffice WorkLocation = "office"
)

// Job represents a job posting fetched from the remote store.
// Jobs are read-only once loaded and uniquely identified by ID.
type Job struct {
	ID                  string       `json:"id"`
	Title               string       `json:"title"`
	Company             string       `json:"company"`
	CompanyLogo         string       `json:"company_logo,omitempty"`
	Location            string       `json:"location"`
	Salary              string       `json:"salary"`
	Description         string       `json:"description"`
	Tags                []string     `json:"tags"`
	Image               string       `json:"image"`
	WorkLocation        WorkLocation `json:"work_location,omitempty"`
	CompellingHighlight string       `json:"compelling_highlight,omitempty"`
	CommuteEstimate     string       `json:"commute_estimate,omitempty"`
	Requirements        []string     `json:"requirements,omitempty"`
	Benefits            []string     `json:"benefits,omitempty"`
	AboutCompany        string       `json:"about_company,omitempty"`
	IsResumeRequired    bool         `json:"is_resume_required,omitempty"`
	PostedAt            *time.Time   `json:"posted_at,omitempty"`
}

// SwipeDecision is the outcome recorded for a swiped job.
type SwipeDecision string

const (
	DecisionInterested SwipeDecision = "interested"
	DecisionRejected   SwipeDecision = "rejected"
)

// SwipeRecord is one entry in the swipe history. Created by a swipe,
// consumed by undo, never mutated.
type SwipeRecord struct {
	JobID    string        `json:"job_id"`
	Decision SwipeDecision `json:"decision"`
}

// LocalUser is the profile cached on the device so returning users can
// skip onboarding.
type LocalUser struct {
	Email     string    `json:"email"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	ResumeURL string    `json:"resume_url,omitempty"`
	LastLogin time.Time `json:"last_login"`
}

// ApplicantData is the identity information collected during onboarding
// and attached to an application submission. Fields are stored trimmed.
type ApplicantData struct {
	FirstName string `json:"first_name" validate:"required,min=2"`
	LastName  string `json:"last_name" validate:"required,min=2"`
	Email     string `json:"email" validate:"required,email"`
	ResumeURL string `json:"resume_url,omitempty"`
}

// Profile is the remote user profile held by the auth collaborator.
type Profile struct {
	UID        string `json:"uid"`
	Email      string `json:"email"`
	FirstName  string `json:"first_name,omitempty"`
	LastName   string `json:"last_name,omitempty"`
	ResumeURL  string `json:"resume_url,omitempty"`
	IsComplete bool   `json:"is_complete"`
}

// InteractionKind classifies a recorded job interaction.
type InteractionKind string

const (
	InteractionView    InteractionKind = "view"
	InteractionLike    InteractionKind = "like"
	InteractionDislike InteractionKind = "dislike"
	InteractionApply   InteractionKind = "apply"
)

// Sender identifies who produced a chat message.
type Sender string

const (
	SenderUser Sender = "user"
	SenderAI   Sender = "ai"
)

// Message is one entry in the conversational AI transcript.
type Message struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Sender    Sender    `json:"sender"`
	Timestamp time.Time `json:"timestamp"`
}
