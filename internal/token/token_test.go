package token

import (
	"errors"
	"strings"
	"testing"
	"time"

	"users-backend/internal/models"

	"go.mongodb.org/mongo-driver/v2/bson"
)

func testUser() *models.User {
	return &models.User{
		ID:       bson.NewObjectID(),
		Email:    "a@x.com",
		Name:     "A",
		Lastname: "B",
		Role:     models.UserRoleUser,
	}
}

func TestIssueAndVerify(t *testing.T) {
	m := NewManager("secret", 24*time.Hour)
	user := testUser()

	signed, err := m.Issue(user)
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	claims, err := m.Verify(signed)
	if err != nil {
		t.Fatalf("Verify failed: %v", err)
	}

	if claims.Subject != user.ID.Hex() {
		t.Errorf("expected subject %s, got %s", user.ID.Hex(), claims.Subject)
	}
	if claims.Email != "a@x.com" {
		t.Errorf("expected email a@x.com, got %s", claims.Email)
	}
	if claims.Name != "A" || claims.Lastname != "B" {
		t.Errorf("unexpected name claims: %s %s", claims.Name, claims.Lastname)
	}

	wantExp := claims.IssuedAt.Add(24 * time.Hour)
	if !claims.ExpiresAt.Equal(wantExp) {
		t.Errorf("expected expiry %v, got %v", wantExp, claims.ExpiresAt)
	}
}

func TestVerify_Expired(t *testing.T) {
	m := NewManager("secret", -time.Minute)

	signed, err := m.Issue(testUser())
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	if _, err := m.Verify(signed); !errors.Is(err, ErrExpired) {
		t.Errorf("expected ErrExpired, got %v", err)
	}
}

func TestVerify_ExpiredAtExactInstant(t *testing.T) {
	// a token whose expiry is now must already be rejected
	m := NewManager("secret", 0)

	signed, err := m.Issue(testUser())
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	if _, err := m.Verify(signed); !errors.Is(err, ErrExpired) {
		t.Errorf("expected ErrExpired, got %v", err)
	}
}

func TestVerify_WrongSecret(t *testing.T) {
	m := NewManager("secret", 24*time.Hour)
	other := NewManager("another-secret", 24*time.Hour)

	signed, err := m.Issue(testUser())
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	if _, err := other.Verify(signed); !errors.Is(err, ErrInvalidSignature) {
		t.Errorf("expected ErrInvalidSignature, got %v", err)
	}
}

func TestVerify_TamperedPayload(t *testing.T) {
	m := NewManager("secret", 24*time.Hour)

	signed, err := m.Issue(testUser())
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	parts := strings.Split(signed, ".")
	if len(parts) != 3 {
		t.Fatalf("expected 3 token segments, got %d", len(parts))
	}
	// valid base64url payload from a different claim set
	parts[1] = "eyJzdWIiOiJvdGhlciJ9"
	tampered := strings.Join(parts, ".")

	if _, err := m.Verify(tampered); !errors.Is(err, ErrInvalidSignature) {
		t.Errorf("expected ErrInvalidSignature, got %v", err)
	}
}

func TestVerify_Malformed(t *testing.T) {
	m := NewManager("secret", 24*time.Hour)

	for _, tokenString := range []string{"", "garbage", "a.b"} {
		if _, err := m.Verify(tokenString); !errors.Is(err, ErrMalformed) {
			t.Errorf("Verify(%q): expected ErrMalformed, got %v", tokenString, err)
		}
	}
}
