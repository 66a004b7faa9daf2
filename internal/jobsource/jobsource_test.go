package jobsource

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gigsterhq/gigster/pkg/models"
)

func TestFetchAllActiveJobs(t *testing.T) {
	remote := []models.Job{
		{ID: "r1", Title: "Data Engineer", Company: "Pipeline Inc"},
		{ID: "r2", Title: "SRE", Company: "Uptime Ltd"},
	}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/jobs" {
			t.Errorf("path = %q, expected /jobs", r.URL.Path)
		}
		if r.URL.Query().Get("active") != "true" {
			t.Errorf("query = %q, expected active=true", r.URL.RawQuery)
		}
		json.NewEncoder(w).Encode(remote)
	}))
	defer server.Close()

	c := NewClient(server.URL)
	jobs := c.FetchAllActiveJobs(context.Background())
	if len(jobs) != 2 || jobs[0].ID != "r1" {
		t.Errorf("jobs = %+v, expected the remote list", jobs)
	}
}

func TestFetchFailureFallsBack(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	c := NewClient(server.URL)
	jobs := c.FetchAllActiveJobs(context.Background())
	if len(jobs) != len(FallbackJobs()) {
		t.Errorf("expected the fallback list, got %d jobs", len(jobs))
	}
}

func TestEmptyRemoteListFallsBack(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("[]"))
	}))
	defer server.Close()

	c := NewClient(server.URL)
	jobs := c.FetchAllActiveJobs(context.Background())
	if len(jobs) == 0 {
		t.Error("expected the fallback list, got nothing")
	}
}

func TestUnconfiguredClientServesFallback(t *testing.T) {
	c := NewClient("")
	jobs := c.FetchAllActiveJobs(context.Background())
	if len(jobs) == 0 {
		t.Error("expected the fallback list")
	}
}

func TestFallbackJobsAreCopied(t *testing.T) {
	a := FallbackJobs()
	a[0].Title = "mutated"
	b := FallbackJobs()
	if b[0].Title == "mutated" {
		t.Error("FallbackJobs must return an independent copy")
	}
}

func TestFallbackJobsHaveUniqueIDs(t *testing.T) {
	seen := map[string]bool{}
	for _, job := range FallbackJobs() {
		if job.ID == "" {
			t.Error("fallback job with empty id")
		}
		if seen[job.ID] {
			t.Errorf("duplicate fallback job id %q", job.ID)
		}
		seen[job.ID] = true
	}
}
