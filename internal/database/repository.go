package database

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/gigsterhq/gigster/pkg/models"
)

// User operations

// SaveUser upserts a user keyed by email and refreshes last_login.
func SaveUser(user *models.LocalUser) error {
	user.LastLogin = time.Now().UTC()
	query := `INSERT INTO users (email, first_name, last_name, resume_url, last_login)
			  VALUES (?, ?, ?, ?, ?)
			  ON CONFLICT(email) DO UPDATE SET
			      first_name = excluded.first_name,
			      last_name = excluded.last_name,
			      resume_url = excluded.resume_url,
			      last_login = excluded.last_login`
	_, err := DB.Exec(query, user.Email, user.FirstName, user.LastName, user.ResumeURL, user.LastLogin)
	return err
}

func FindUserByEmail(email string) (*models.LocalUser, error) {
	query := `SELECT email, first_name, last_name, COALESCE(resume_url, ''), last_login
			  FROM users WHERE email = ?`
	user := &models.LocalUser{}
	err := DB.QueryRow(query, email).Scan(&user.Email, &user.FirstName, &user.LastName,
		&user.ResumeURL, &user.LastLogin)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return user, err
}

// Current-user pointer

// SetCurrentUser marks the user with this email as the active device
// user. The user must already be saved.
func SetCurrentUser(email string) error {
	user, err := FindUserByEmail(email)
	if err != nil {
		return err
	}
	if user == nil {
		return fmt.Errorf("no saved user with email %s", email)
	}
	_, err = DB.Exec(`INSERT OR REPLACE INTO current_user (id, email) VALUES (1, ?)`, email)
	return err
}

// GetCurrentUser returns the active device user, or nil when signed
// out.
func GetCurrentUser() (*models.LocalUser, error) {
	query := `SELECT u.email, u.first_name, u.last_name, COALESCE(u.resume_url, ''), u.last_login
			  FROM current_user c JOIN users u ON u.email = c.email WHERE c.id = 1`
	user := &models.LocalUser{}
	err := DB.QueryRow(query).Scan(&user.Email, &user.FirstName, &user.LastName,
		&user.ResumeURL, &user.LastLogin)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return user, err
}

func ClearCurrentUser() error {
	_, err := DB.Exec(`DELETE FROM current_user`)
	return err
}

// ClearAllData wipes every cached record: users, the active-user
// pointer, and the swipe log.
func ClearAllData() error {
	for _, stmt := range []string{
		`DELETE FROM current_user`,
		`DELETE FROM users`,
		`DELETE FROM swipes`,
	} {
		if _, err := DB.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// Swipe log

// RecordSwipe appends one decision to the local swipe log.
func RecordSwipe(jobID string, decision models.SwipeDecision) error {
	_, err := DB.Exec(`INSERT INTO swipes (job_id, decision) VALUES (?, ?)`, jobID, string(decision))
	return err
}

// GetSwipes returns the swipe log in chronological order.
func GetSwipes() ([]models.SwipeRecord, error) {
	rows, err := DB.Query(`SELECT job_id, decision FROM swipes ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := []models.SwipeRecord{}
	for rows.Next() {
		var rec models.SwipeRecord
		var decision string
		if err := rows.Scan(&rec.JobID, &decision); err != nil {
			return nil, err
		}
		rec.Decision = models.SwipeDecision(decision)
		records = append(records, rec)
	}
	return records, rows.Err()
}
