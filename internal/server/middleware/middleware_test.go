package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sssbpuc/campusd/internal/service"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestRequestIDGenerated(t *testing.T) {
	var seen string
	h := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = GetRequestID(r.Context())
	}))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest("GET", "/", nil))

	if seen == "" {
		t.Fatal("expected a request ID on the context")
	}
	if got := rr.Header().Get("X-Request-ID"); got != seen {
		t.Errorf("header ID %q differs from context ID %q", got, seen)
	}
}

func TestRequestIDHonorsClientHeader(t *testing.T) {
	h := RequestID(okHandler())

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("X-Request-ID", "client-supplied-id")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if got := rr.Header().Get("X-Request-ID"); got != "client-supplied-id" {
		t.Errorf("got %q, want client-supplied ID", got)
	}
}

func TestLoggerPassesThrough(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := Logger(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest("GET", "/", nil))
	if rr.Code != http.StatusTeapot {
		t.Errorf("got status %d, want %d", rr.Code, http.StatusTeapot)
	}
}

func TestAuthenticateRejectsMissingToken(t *testing.T) {
	authSvc := service.NewAuthService("test-secret")
	h := Authenticate(authSvc)(okHandler())

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest("GET", "/", nil))
	if rr.Code != http.StatusUnauthorized {
		t.Errorf("got status %d, want 401", rr.Code)
	}
	if ct := rr.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("got Content-Type %q, want application/json", ct)
	}
}

func TestAuthenticateRejectsBadToken(t *testing.T) {
	authSvc := service.NewAuthService("test-secret")
	h := Authenticate(authSvc)(okHandler())

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("Authorization", "Bearer not-a-real-token")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	if rr.Code != http.StatusUnauthorized {
		t.Errorf("got status %d, want 401", rr.Code)
	}
}

func TestAuthenticateAttachesPrincipal(t *testing.T) {
	authSvc := service.NewAuthService("test-secret")
	token, err := authSvc.IssueJWT(httptest.NewRequest("GET", "/", nil).Context(), "admin-1", "a@example.edu", time.Hour)
	if err != nil {
		t.Fatalf("IssueJWT: %v", err)
	}

	var p *Principal
	h := Authenticate(authSvc)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		p = GetPrincipal(r.Context())
	}))

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	h.ServeHTTP(httptest.NewRecorder(), req)

	if p == nil {
		t.Fatal("expected a principal on the context")
	}
	if p.AdminID != "admin-1" || p.Email != "a@example.edu" {
		t.Errorf("got principal %+v, want admin-1 / a@example.edu", p)
	}
}
