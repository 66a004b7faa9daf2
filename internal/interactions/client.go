// Package interactions records job interactions and submits
// applications to the backend. Interaction recording is best-effort:
// callers log failures and move on; only application submission is
// awaited and surfaced.
package interactions

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/gigsterhq/gigster/pkg/models"
)

var (
	ErrSubmitFailed  = errors.New("application submission failed")
	ErrNotConfigured = errors.New("interactions backend not configured")
)

// Client posts interactions and applications to the backend. A client
// with an empty base URL records nothing and generates application ids
// locally, so the app works fully offline.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient returns an interactions client for the given base URL.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &Client{
		baseURL:    strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		httpClient: httpClient,
	}
}

type interactionRequest struct {
	UserID    string    `json:"user_id"`
	JobID     string    `json:"job_id"`
	Action    string    `json:"action"`
	Timestamp time.Time `json:"timestamp"`
}

type applicationRequest struct {
	UserID    string               `json:"user_id"`
	JobID     string               `json:"job_id"`
	Status    string               `json:"status"`
	Applicant models.ApplicantData `json:"applicant"`
	JobData   applicationJobData   `json:"job_data"`
}

type applicationJobData struct {
	Title    string `json:"title"`
	Company  string `json:"company"`
	Location string `json:"location"`
	Salary   string `json:"salary"`
}

type applicationResponse struct {
	ID string `json:"id"`
}

// RecordInteraction posts one view/like/dislike/apply event. Errors are
// returned for the caller to log; they must never abort the swipe flow.
func (c *Client) RecordInteraction(ctx context.Context, userID, jobID string, kind models.InteractionKind) error {
	if c.baseURL == "" {
		return ErrNotConfigured
	}

	body, err := json.Marshal(interactionRequest{
		UserID:    userID,
		JobID:     jobID,
		Action:    string(kind),
		Timestamp: time.Now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("encode interaction: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/interactions", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create interaction request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("record interaction: %w", err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return fmt.Errorf("interactions api returned status %d", resp.StatusCode)
	}
	return nil
}

// SubmitApplication files an application for the job and returns the
// application id. Without a backend the id is generated locally so the
// onboarding flow can still complete. An apply interaction is recorded
// alongside, best-effort.
func (c *Client) SubmitApplication(ctx context.Context, userID string, job models.Job, applicant models.ApplicantData) (string, error) {
	if c.baseURL == "" {
		return uuid.NewString(), nil
	}

	body, err := json.Marshal(applicationRequest{
		UserID:    userID,
		JobID:     job.ID,
		Status:    "pending",
		Applicant: applicant,
		JobData: applicationJobData{
			Title:    job.Title,
			Company:  job.Company,
			Location: job.Location,
			Salary:   job.Salary,
		},
	})
	if err != nil {
		return "", fmt.Errorf("encode application: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/applications", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create application request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrSubmitFailed, err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: reading response: %v", ErrSubmitFailed, err)
	}
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return "", fmt.Errorf("%w: status %d", ErrSubmitFailed, resp.StatusCode)
	}

	var parsed applicationResponse
	if err := json.Unmarshal(payload, &parsed); err != nil || parsed.ID == "" {
		// Backend accepted the application but returned no id.
		return uuid.NewString(), nil
	}

	// Mirror the apply event; failure here must not fail the submission.
	_ = c.RecordInteraction(ctx, userID, job.ID, models.InteractionApply)

	return parsed.ID, nil
}
