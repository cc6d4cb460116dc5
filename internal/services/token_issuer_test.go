package services

import (
	"errors"
	"testing"
	"time"

	"github.com/Princeaman007/interships/internal/models"
	"github.com/google/uuid"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	issuer := NewTokenIssuer(testConfig())
	sub := Subject{UserID: uuid.New(), Role: models.RoleAdmin}

	token, err := issuer.IssueAccessToken(sub)
	if err != nil {
		t.Fatalf("IssueAccessToken: %v", err)
	}
	claims, err := issuer.Verify(token, AccessToken)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	id, err := claims.UserID()
	if err != nil || id != sub.UserID {
		t.Fatalf("subject = %v (%v), want %v", id, err, sub.UserID)
	}
	if claims.Role != models.RoleAdmin {
		t.Fatalf("role = %s, want admin", claims.Role)
	}
	if claims.Kind != AccessToken {
		t.Fatalf("kind = %s, want access", claims.Kind)
	}
}

func TestVerifyExpiredToken(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	issuer := NewTokenIssuer(testConfig()).WithClock(func() time.Time { return now })

	token, err := issuer.IssueAccessToken(Subject{UserID: uuid.New(), Role: models.RoleStudent})
	if err != nil {
		t.Fatalf("IssueAccessToken: %v", err)
	}

	now = now.Add(14 * time.Minute)
	if _, err := issuer.Verify(token, AccessToken); err != nil {
		t.Fatalf("token should still be valid: %v", err)
	}

	now = now.Add(2 * time.Minute)
	if _, err := issuer.Verify(token, AccessToken); !errors.Is(err, ErrExpiredToken) {
		t.Fatalf("expected ErrExpiredToken, got %v", err)
	}
}

func TestVerifyRejects(t *testing.T) {
	issuer := NewTokenIssuer(testConfig())
	sub := Subject{UserID: uuid.New(), Role: models.RoleStudent}

	access, err := issuer.IssueAccessToken(sub)
	if err != nil {
		t.Fatalf("IssueAccessToken: %v", err)
	}
	refresh, _, err := issuer.IssueRefreshToken(sub)
	if err != nil {
		t.Fatalf("IssueRefreshToken: %v", err)
	}

	other := testConfig()
	other.JWTSecret = "another-secret"
	foreign, err := NewTokenIssuer(other).IssueAccessToken(sub)
	if err != nil {
		t.Fatalf("IssueAccessToken: %v", err)
	}

	tests := []struct {
		name  string
		token string
		kind  TokenKind
	}{
		{"refresh used as access", refresh, AccessToken},
		{"access used as refresh", access, RefreshToken},
		{"wrong signing key", foreign, AccessToken},
		{"tampered", access + "x", AccessToken},
		{"garbage", "not-a-jwt", AccessToken},
		{"empty", "", RefreshToken},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := issuer.Verify(tt.token, tt.kind); !errors.Is(err, ErrInvalidToken) {
				t.Fatalf("expected ErrInvalidToken, got %v", err)
			}
		})
	}
}

func TestRefreshTokensAreUnique(t *testing.T) {
	issuer := NewTokenIssuer(testConfig())
	sub := Subject{UserID: uuid.New(), Role: models.RoleStudent}

	a, ca, err := issuer.IssueRefreshToken(sub)
	if err != nil {
		t.Fatalf("IssueRefreshToken: %v", err)
	}
	b, cb, err := issuer.IssueRefreshToken(sub)
	if err != nil {
		t.Fatalf("IssueRefreshToken: %v", err)
	}
	if a == b || ca.ID == cb.ID {
		t.Fatal("two refresh tokens share an id")
	}
	if got := ca.ExpiresAt.Sub(ca.IssuedAt.Time); got != issuer.RefreshTTL() {
		t.Fatalf("refresh ttl = %v, want %v", got, issuer.RefreshTTL())
	}
}
