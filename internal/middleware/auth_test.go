package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"users-backend/internal/models"
	"users-backend/internal/token"

	"go.mongodb.org/mongo-driver/v2/bson"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func protectedHandler(t *testing.T) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if ClaimsFromContext(r.Context()) == nil {
			t.Error("expected claims in the request context")
		}
		w.WriteHeader(http.StatusOK)
	})
}

func issueToken(t *testing.T, m *token.Manager) string {
	signed, err := m.Issue(&models.User{
		ID:       bson.NewObjectID(),
		Email:    "a@x.com",
		Name:     "A",
		Lastname: "B",
	})
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}
	return signed
}

func TestRequireAuth_MissingHeader(t *testing.T) {
	tokens := token.NewManager("secret", 24*time.Hour)
	m := NewAuthMiddleware(tokens, testLogger())

	req := httptest.NewRequest(http.MethodGet, "/view/all", nil)
	rec := httptest.NewRecorder()

	m.RequireAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler should not be reached")
	})).ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Errorf("expected 403, got %d", rec.Code)
	}
}

func TestRequireAuth_ValidToken(t *testing.T) {
	tokens := token.NewManager("secret", 24*time.Hour)
	m := NewAuthMiddleware(tokens, testLogger())

	req := httptest.NewRequest(http.MethodGet, "/view/all", nil)
	req.Header.Set("Authorization", issueToken(t, tokens))
	rec := httptest.NewRecorder()

	m.RequireAuth(protectedHandler(t)).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
}

func TestRequireAuth_QuotedToken(t *testing.T) {
	tokens := token.NewManager("secret", 24*time.Hour)
	m := NewAuthMiddleware(tokens, testLogger())

	req := httptest.NewRequest(http.MethodGet, "/view/all", nil)
	req.Header.Set("Authorization", `"`+issueToken(t, tokens)+`"`)
	rec := httptest.NewRecorder()

	m.RequireAuth(protectedHandler(t)).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected quote characters to be stripped, got %d", rec.Code)
	}
}

func TestRequireAuth_ExpiredToken(t *testing.T) {
	expired := token.NewManager("secret", -time.Minute)
	m := NewAuthMiddleware(token.NewManager("secret", 24*time.Hour), testLogger())

	req := httptest.NewRequest(http.MethodGet, "/view/all", nil)
	req.Header.Set("Authorization", issueToken(t, expired))
	rec := httptest.NewRecorder()

	m.RequireAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler should not be reached")
	})).ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Errorf("expected 403, got %d", rec.Code)
	}
}

func TestRequireAuth_GarbageToken(t *testing.T) {
	tokens := token.NewManager("secret", 24*time.Hour)
	m := NewAuthMiddleware(tokens, testLogger())

	req := httptest.NewRequest(http.MethodGet, "/view/all", nil)
	req.Header.Set("Authorization", "not-a-token")
	rec := httptest.NewRecorder()

	m.RequireAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler should not be reached")
	})).ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Errorf("expected 403, got %d", rec.Code)
	}
}

func TestStripQuotes(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{`"abc"`, "abc"},
		{`'abc'`, "abc"},
		{`ab"c`, "abc"},
		{"abc", "abc"},
	}

	for _, tt := range tests {
		if got := stripQuotes(tt.in); got != tt.want {
			t.Errorf("stripQuotes(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
