package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/Princeaman007/interships/internal/apperr"
	"github.com/Princeaman007/interships/internal/config"
	"github.com/Princeaman007/interships/internal/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type TokenKind string

const (
	AccessToken  TokenKind = "access"
	RefreshToken TokenKind = "refresh"
)

var (
	ErrInvalidToken = apperr.Unauthenticated("INVALID_TOKEN", "auth.invalid_token")
	ErrExpiredToken = apperr.Unauthenticated("TOKEN_EXPIRED", "auth.token_expired")
)

// Claims is the claim set carried by both token kinds. The subject is the user id.
type Claims struct {
	Role models.Role `json:"role"`
	Kind TokenKind   `json:"typ"`
	jwt.RegisteredClaims
}

// UserID parses the subject claim.
func (c *Claims) UserID() (uuid.UUID, error) {
	return uuid.Parse(c.Subject)
}

// Subject identifies who a token is issued for.
type Subject struct {
	UserID uuid.UUID
	Role   models.Role
}

// TokenIssuer mints and verifies HS256 tokens. Access and refresh tokens are
// signed with different keys so one can never be replayed as the other.
type TokenIssuer struct {
	accessKey  []byte
	refreshKey []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
	now        func() time.Time
}

func NewTokenIssuer(cfg *config.Config) *TokenIssuer {
	return &TokenIssuer{
		accessKey:  []byte(cfg.JWTSecret),
		refreshKey: []byte(cfg.RefreshTokenSecret),
		accessTTL:  cfg.JWTAccessExpiry,
		refreshTTL: cfg.RefreshTokenExpiry,
		now:        time.Now,
	}
}

// WithClock replaces the time source; used by tests.
func (i *TokenIssuer) WithClock(now func() time.Time) *TokenIssuer {
	i.now = now
	return i
}

func (i *TokenIssuer) AccessKey() []byte { return i.accessKey }
func (i *TokenIssuer) RefreshTTL() time.Duration { return i.refreshTTL }

func (i *TokenIssuer) IssueAccessToken(sub Subject) (string, error) {
	token, _, err := i.issue(sub, AccessToken)
	return token, err
}

// IssueRefreshToken returns the signed token and its claims; the claims' ID
// (jti) keys the server-side session record.
func (i *TokenIssuer) IssueRefreshToken(sub Subject) (string, *Claims, error) {
	return i.issue(sub, RefreshToken)
}

func (i *TokenIssuer) issue(sub Subject, kind TokenKind) (string, *Claims, error) {
	ttl, key := i.accessTTL, i.accessKey
	if kind == RefreshToken {
		ttl, key = i.refreshTTL, i.refreshKey
	}

	now := i.now()
	claims := &Claims{
		Role: sub.Role,
		Kind: kind,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   sub.UserID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(key)
	if err != nil {
		return "", nil, fmt.Errorf("sign %s token: %w", kind, err)
	}
	return signed, claims, nil
}

// Verify checks signature, algorithm, expiry and token kind.
func (i *TokenIssuer) Verify(token string, kind TokenKind) (*Claims, error) {
	key := i.accessKey
	if kind == RefreshToken {
		key = i.refreshKey
	}

	claims := &Claims{}
	_, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return key, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(i.now),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}
	if claims.Kind != kind || !claims.Role.Valid() {
		return nil, ErrInvalidToken
	}
	if _, err := claims.UserID(); err != nil {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
