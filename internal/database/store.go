package database

import "github.com/gigsterhq/gigster/pkg/models"

// Store adapts the package-level cache operations to the orchestrator's
// UserStore interface.
type Store struct{}

func (Store) GetCurrentUser() (*models.LocalUser, error) { return GetCurrentUser() }

func (Store) SaveUser(user *models.LocalUser) error { return SaveUser(user) }

func (Store) SetCurrentUser(email string) error { return SetCurrentUser(email) }

func (Store) RecordSwipe(jobID string, decision models.SwipeDecision) error {
	return RecordSwipe(jobID, decision)
}
