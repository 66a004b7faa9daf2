package app

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"time"

	"github.com/gigsterhq/gigster/internal/ai"
	"github.com/gigsterhq/gigster/internal/auth"
	"github.com/gigsterhq/gigster/internal/config"
	"github.com/gigsterhq/gigster/internal/database"
	"github.com/gigsterhq/gigster/internal/interactions"
	"github.com/gigsterhq/gigster/internal/jobsource"
)

// App is the dependency container for the CLI application
type App struct {
	DB         *sql.DB
	Config     *config.Config
	HTTPClient *http.Client

	AI     *ai.Client
	Auth   *auth.Client
	Jobs   *jobsource.Client
	Events *interactions.Client
}

// NewApp initializes and returns a new App instance
func NewApp(ctx context.Context) (*App, error) {
	// Initialize config
	if err := config.Initialize(); err != nil {
		return nil, fmt.Errorf("failed to initialize config: %w", err)
	}

	// Open database and run migrations
	if err := database.Initialize(); err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	// Verify database connection
	if err := database.DB.PingContext(ctx); err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	// Create HTTP client with timeout
	httpClient := &http.Client{
		Timeout: 10 * time.Second,
	}

	cfg := config.AppConfig

	aiClient := ai.NewClient(cfg.GroqKey)
	if cfg.DefaultModel != "" {
		aiClient.Model = cfg.DefaultModel
	}

	return &App{
		DB:         database.DB,
		Config:     cfg,
		HTTPClient: httpClient,
		AI:         aiClient,
		Auth:       auth.NewClient(cfg.AuthAPIURL, httpClient),
		Jobs:       jobsource.NewClient(cfg.JobsAPIURL),
		Events:     interactions.NewClient(cfg.EventsAPIURL, httpClient),
	}, nil
}

// Close closes all resources
func (a *App) Close() error {
	return database.Close()
}
