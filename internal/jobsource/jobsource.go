// Package jobsource fetches the active job list from the remote store.
// The swipe flow must never block on a broken backend, so any fetch
// failure falls back to the built-in job list.
package jobsource

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gigsterhq/gigster/pkg/models"
)

// Client fetches jobs over HTTP from {BaseURL}/jobs?active=true.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient returns a job source for the given base URL. An empty base
// URL means fetches always serve the fallback list.
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL:    baseURL,
		HTTPClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// FetchAllActiveJobs returns the active job list. On any failure the
// built-in fallback list is returned instead of an error; the failure
// is logged.
func (c *Client) FetchAllActiveJobs(ctx context.Context) []models.Job {
	jobs, err := c.fetch(ctx)
	if err != nil {
		slog.Warn("job fetch failed, using built-in list", "error", err)
		return FallbackJobs()
	}
	if len(jobs) == 0 {
		slog.Warn("job source returned no jobs, using built-in list")
		return FallbackJobs()
	}
	return jobs
}

func (c *Client) fetch(ctx context.Context) ([]models.Job, error) {
	if c.BaseURL == "" {
		return nil, fmt.Errorf("no job source configured")
	}

	req, err := http.NewRequestWithContext(ctx, "GET", c.BaseURL+"/jobs?active=true", nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		return nil, fmt.Errorf("job source returned status %d", resp.StatusCode)
	}

	var jobs []models.Job
	if err := json.NewDecoder(resp.Body).Decode(&jobs); err != nil {
		return nil, fmt.Errorf("decoding job list: %w", err)
	}
	return jobs, nil
}
