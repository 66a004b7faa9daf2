package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gigsterhq/gigster/pkg/models"
)

func newTestServer(t *testing.T) (*httptest.Server, *int) {
	t.Helper()
	sent := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/auth/send-link":
			sent++
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`{}`))
		case "/auth/complete":
			var req completeSignInRequest
			json.NewDecoder(r.Body).Decode(&req)
			if req.OOBCode != "valid-code" {
				w.WriteHeader(http.StatusBadRequest)
				w.Write([]byte(`{"error":"invalid_link"}`))
				return
			}
			json.NewEncoder(w).Encode(Identity{UID: "u1", Email: "jane@example.com"})
		case "/users/u1":
			switch r.Method {
			case http.MethodGet:
				json.NewEncoder(w).Encode(map[string]interface{}{
					"uid": "u1", "email": "jane@example.com", "first_name": "Jane",
				})
			case http.MethodPut:
				var body map[string]interface{}
				json.NewDecoder(r.Body).Decode(&body)
				body["is_complete"] = true
				json.NewEncoder(w).Encode(body)
			}
		case "/users/missing":
			http.Error(w, `{"error":"not_found"}`, http.StatusNotFound)
		default:
			http.Error(w, "unexpected path "+r.URL.Path, http.StatusTeapot)
		}
	}))
	t.Cleanup(server.Close)
	return server, &sent
}

func TestSendSignInLinkRateLimit(t *testing.T) {
	server, sent := newTestServer(t)
	c := NewClient(server.URL, nil)

	now := time.Now()
	c.now = func() time.Time { return now }

	if err := c.SendSignInLink(context.Background(), "jane@example.com"); err != nil {
		t.Fatalf("first send failed: %v", err)
	}

	err := c.SendSignInLink(context.Background(), "jane@example.com")
	if !errors.Is(err, ErrRateLimited) {
		t.Fatalf("second send error = %v, expected ErrRateLimited", err)
	}
	if err.Error() == ErrRateLimited.Error() {
		t.Error("rate-limit error should describe how long to wait")
	}
	if *sent != 1 {
		t.Errorf("backend received %d requests, expected 1 (rate limit is client-side)", *sent)
	}

	// A different email is not limited.
	if err := c.SendSignInLink(context.Background(), "other@example.com"); err != nil {
		t.Errorf("different email should not be limited: %v", err)
	}

	// After the window passes, the same email can request again.
	c.now = func() time.Time { return now.Add(61 * time.Second) }
	if err := c.SendSignInLink(context.Background(), "jane@example.com"); err != nil {
		t.Errorf("send after window failed: %v", err)
	}
}

func TestSendSignInLinkRejectsBadEmail(t *testing.T) {
	server, _ := newTestServer(t)
	c := NewClient(server.URL, nil)

	for _, email := range []string{"", "   ", "no-at-sign"} {
		if err := c.SendSignInLink(context.Background(), email); !errors.Is(err, ErrInvalidEmail) {
			t.Errorf("SendSignInLink(%q) = %v, expected ErrInvalidEmail", email, err)
		}
	}
}

func TestCompleteSignIn(t *testing.T) {
	server, _ := newTestServer(t)
	c := NewClient(server.URL, nil)

	identity, err := c.CompleteSignIn(context.Background(), "https://app.example.com/auth/verify?oobCode=valid-code&mode=signIn")
	if err != nil {
		t.Fatalf("CompleteSignIn failed: %v", err)
	}
	if identity.UID != "u1" || identity.Email != "jane@example.com" {
		t.Errorf("identity = %+v", identity)
	}
	if got := c.CurrentIdentity(); got == nil || got.UID != "u1" {
		t.Errorf("CurrentIdentity() = %+v, expected u1", got)
	}
}

func TestCompleteSignInRejectsBadLinks(t *testing.T) {
	server, _ := newTestServer(t)
	c := NewClient(server.URL, nil)

	tests := []string{
		"https://app.example.com/auth/verify",               // no code
		"https://app.example.com/auth/verify?oobCode=wrong", // rejected server-side
	}
	for _, link := range tests {
		if _, err := c.CompleteSignIn(context.Background(), link); !errors.Is(err, ErrInvalidLink) {
			t.Errorf("CompleteSignIn(%q) = %v, expected ErrInvalidLink", link, err)
		}
	}
}

func TestOnAuthStateChange(t *testing.T) {
	server, _ := newTestServer(t)
	c := NewClient(server.URL, nil)

	var events []*Identity
	unsubscribe := c.OnAuthStateChange(func(id *Identity) {
		events = append(events, id)
	})

	if len(events) != 1 || events[0] != nil {
		t.Fatalf("expected an immediate nil event, got %+v", events)
	}

	if _, err := c.CompleteSignIn(context.Background(), "x://y?oobCode=valid-code"); err != nil {
		t.Fatalf("sign-in failed: %v", err)
	}
	if len(events) != 2 || events[1] == nil || events[1].UID != "u1" {
		t.Fatalf("expected a sign-in event, got %+v", events)
	}

	c.SignOut()
	if len(events) != 3 || events[2] != nil {
		t.Fatalf("expected a sign-out event, got %+v", events)
	}

	unsubscribe()
	c.SignOut()
	if len(events) != 3 {
		t.Error("unsubscribed listener still received events")
	}
}

func TestGetProfile(t *testing.T) {
	server, _ := newTestServer(t)
	c := NewClient(server.URL, nil)

	profile, err := c.GetProfile(context.Background(), "u1")
	if err != nil {
		t.Fatalf("GetProfile failed: %v", err)
	}
	if profile.FirstName != "Jane" {
		t.Errorf("profile = %+v", profile)
	}

	if _, err := c.GetProfile(context.Background(), "missing"); !errors.Is(err, ErrProfileNotFound) {
		t.Errorf("missing profile error = %v, expected ErrProfileNotFound", err)
	}
}

func TestUpsertProfile(t *testing.T) {
	server, _ := newTestServer(t)
	c := NewClient(server.URL, nil)

	profile, err := c.UpsertProfile(context.Background(), "u1", models.Profile{
		Email:     "jane@example.com",
		FirstName: "Jane",
		LastName:  "Doe",
	})
	if err != nil {
		t.Fatalf("UpsertProfile failed: %v", err)
	}
	if profile.UID != "u1" {
		t.Errorf("uid = %q, expected the path user id to be set", profile.UID)
	}
	if !profile.IsComplete {
		t.Error("expected the stored profile from the backend")
	}
}
