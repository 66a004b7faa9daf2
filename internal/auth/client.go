// Package auth implements the passwordless email-link sign-in flow
// against the auth backend.
package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/gigsterhq/gigster/pkg/models"
)

var (
	ErrRateLimited     = errors.New("sign-in link was recently sent")
	ErrInvalidEmail    = errors.New("invalid email address")
	ErrInvalidLink     = errors.New("invalid verification link")
	ErrProfileNotFound = errors.New("profile not found")
	ErrUnauthorized    = errors.New("unauthorized")
)

// rateLimitWindow is how long a given email must wait between sign-in
// link requests.
const rateLimitWindow = 60 * time.Second

// Identity is the authenticated user as reported by the backend.
type Identity struct {
	UID   string `json:"uid"`
	Email string `json:"email"`
}

// Callback receives the new identity on every auth state change, or nil
// on sign-out.
type Callback func(*Identity)

// Client is the HTTP auth client. It tracks the current identity and
// fans out state changes to registered listeners. Safe for concurrent
// use.
type Client struct {
	baseURL    string
	httpClient *http.Client
	now        func() time.Time

	mu        sync.Mutex
	lastSent  map[string]time.Time
	current   *Identity
	listeners map[int]Callback
	nextID    int
}

// NewClient returns an auth client for the given backend base URL.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL:    strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		httpClient: httpClient,
		now:        time.Now,
		lastSent:   make(map[string]time.Time),
		listeners:  make(map[int]Callback),
	}
}

type sendLinkRequest struct {
	Email string `json:"email"`
}

type completeSignInRequest struct {
	OOBCode string `json:"oob_code"`
}

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// SendSignInLink asks the backend to email a sign-in link. Requests for
// the same email within the rate-limit window fail with ErrRateLimited.
func (c *Client) SendSignInLink(ctx context.Context, email string) error {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || !strings.Contains(email, "@") {
		return ErrInvalidEmail
	}

	c.mu.Lock()
	if last, ok := c.lastSent[email]; ok {
		if wait := rateLimitWindow - c.now().Sub(last); wait > 0 {
			c.mu.Unlock()
			return fmt.Errorf("%w: please try again in %d seconds", ErrRateLimited, int(wait.Seconds())+1)
		}
	}
	c.mu.Unlock()

	body, err := json.Marshal(sendLinkRequest{Email: email})
	if err != nil {
		return fmt.Errorf("encode send-link request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/auth/send-link", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create send-link request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("send sign-in link: %w", err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read send-link response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return mapAuthError(resp.StatusCode, payload)
	}

	c.mu.Lock()
	c.lastSent[email] = c.now()
	c.mu.Unlock()
	return nil
}

// CompleteSignIn exchanges the emailed link for an identity. The link
// must carry an oobCode query parameter.
func (c *Client) CompleteSignIn(ctx context.Context, link string) (Identity, error) {
	parsed, err := url.Parse(strings.TrimSpace(link))
	if err != nil {
		return Identity{}, ErrInvalidLink
	}
	code := parsed.Query().Get("oobCode")
	if code == "" {
		return Identity{}, ErrInvalidLink
	}

	body, err := json.Marshal(completeSignInRequest{OOBCode: code})
	if err != nil {
		return Identity{}, fmt.Errorf("encode sign-in request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/auth/complete", bytes.NewReader(body))
	if err != nil {
		return Identity{}, fmt.Errorf("create sign-in request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Identity{}, fmt.Errorf("complete sign-in: %w", err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return Identity{}, fmt.Errorf("read sign-in response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return Identity{}, mapAuthError(resp.StatusCode, payload)
	}

	var identity Identity
	if err := json.Unmarshal(payload, &identity); err != nil {
		return Identity{}, fmt.Errorf("decode sign-in response: %w", err)
	}

	c.setIdentity(&identity)
	return identity, nil
}

// SignOut clears the current identity and notifies listeners.
func (c *Client) SignOut() {
	c.setIdentity(nil)
}

// CurrentIdentity returns the signed-in identity, or nil.
func (c *Client) CurrentIdentity() *Identity {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.current == nil {
		return nil
	}
	cp := *c.current
	return &cp
}

// OnAuthStateChange registers a listener. The callback fires
// immediately with the current state and again on every change. The
// returned function unsubscribes.
func (c *Client) OnAuthStateChange(cb Callback) (unsubscribe func()) {
	c.mu.Lock()
	id := c.nextID
	c.nextID++
	c.listeners[id] = cb
	current := c.current
	c.mu.Unlock()

	cb(current)
	return func() {
		c.mu.Lock()
		delete(c.listeners, id)
		c.mu.Unlock()
	}
}

func (c *Client) setIdentity(identity *Identity) {
	c.mu.Lock()
	c.current = identity
	cbs := make([]Callback, 0, len(c.listeners))
	for _, cb := range c.listeners {
		cbs = append(cbs, cb)
	}
	c.mu.Unlock()

	for _, cb := range cbs {
		cb(identity)
	}
}

// GetProfile fetches the remote profile for a user id.
func (c *Client) GetProfile(ctx context.Context, userID string) (models.Profile, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/users/"+url.PathEscape(userID), nil)
	if err != nil {
		return models.Profile{}, fmt.Errorf("create profile request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return models.Profile{}, fmt.Errorf("get profile: %w", err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return models.Profile{}, fmt.Errorf("read profile response: %w", err)
	}
	if resp.StatusCode == http.StatusNotFound {
		return models.Profile{}, ErrProfileNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return models.Profile{}, mapAuthError(resp.StatusCode, payload)
	}

	var profile models.Profile
	if err := json.Unmarshal(payload, &profile); err != nil {
		return models.Profile{}, fmt.Errorf("decode profile: %w", err)
	}
	return profile, nil
}

// UpsertProfile creates or updates the remote profile and returns the
// stored version.
func (c *Client) UpsertProfile(ctx context.Context, userID string, partial models.Profile) (models.Profile, error) {
	partial.UID = userID
	body, err := json.Marshal(partial)
	if err != nil {
		return models.Profile{}, fmt.Errorf("encode profile: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, c.baseURL+"/users/"+url.PathEscape(userID), bytes.NewReader(body))
	if err != nil {
		return models.Profile{}, fmt.Errorf("create profile request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return models.Profile{}, fmt.Errorf("upsert profile: %w", err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return models.Profile{}, fmt.Errorf("read profile response: %w", err)
	}
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return models.Profile{}, mapAuthError(resp.StatusCode, payload)
	}

	var profile models.Profile
	if err := json.Unmarshal(payload, &profile); err != nil {
		return models.Profile{}, fmt.Errorf("decode profile: %w", err)
	}
	return profile, nil
}

func mapAuthError(status int, payload []byte) error {
	var parsed errorResponse
	if err := json.Unmarshal(payload, &parsed); err == nil {
		switch parsed.Error {
		case "rate_limited":
			return ErrRateLimited
		case "invalid_link", "expired_link":
			return ErrInvalidLink
		case "invalid_email":
			return ErrInvalidEmail
		case "unauthorized":
			return ErrUnauthorized
		}
		if parsed.Message != "" {
			return fmt.Errorf("auth api error: %s", parsed.Message)
		}
	}
	if status == http.StatusUnauthorized {
		return ErrUnauthorized
	}
	message := strings.TrimSpace(string(payload))
	if message == "" {
		return fmt.Errorf("auth api error: status %d", status)
	}
	return fmt.Errorf("auth api error: %s", message)
}
