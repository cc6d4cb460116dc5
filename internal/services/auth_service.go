package services

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Princeaman007/interships/internal/apperr"
	"github.com/Princeaman007/interships/internal/config"
	"github.com/Princeaman007/interships/internal/database"
	"github.com/Princeaman007/interships/internal/dto"
	"github.com/Princeaman007/interships/internal/i18n"
	"github.com/Princeaman007/interships/internal/metrics"
	"github.com/Princeaman007/interships/internal/models"
	"github.com/Princeaman007/interships/internal/notify"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	// BcryptCost is the work factor for every stored password.
	BcryptCost      = 10
	verificationTTL = 24 * time.Hour
)

var (
	ErrEmailExists         = apperr.Conflict("EMAIL_EXISTS", "auth.email_exists")
	ErrInvalidCredentials  = apperr.Validation("INVALID_CREDENTIALS", "auth.invalid_credentials")
	ErrEmailNotVerified    = apperr.Unauthenticated("EMAIL_NOT_VERIFIED", "auth.email_not_verified")
	ErrAccountDisabled     = apperr.Forbidden("ACCOUNT_DISABLED", "auth.account_disabled")
	ErrInvalidVerification = apperr.Validation("INVALID_OR_EXPIRED_TOKEN", "auth.verify_invalid")
	ErrUnauthenticated     = apperr.Unauthenticated("UNAUTHENTICATED", "auth.unauthenticated")
	ErrInvalidRefreshToken = apperr.Forbidden("INVALID_TOKEN", "auth.invalid_token")
	ErrPasswordTooLong     = apperr.Validation("PASSWORD_TOO_LONG", "auth.password_too_long")
)

// Session is the result of a login or a refresh.
type Session struct {
	AccessToken    string
	RefreshToken   string
	RefreshExpires time.Time
	User           *models.User
}

type AuthService struct {
	db       *gorm.DB
	cfg      *config.Config
	tokens   *TokenIssuer
	notifier notify.Notifier
	now      func() time.Time
}

func NewAuthService(db *gorm.DB, cfg *config.Config, tokens *TokenIssuer, notifier notify.Notifier) *AuthService {
	return &AuthService{
		db:       db,
		cfg:      cfg,
		tokens:   tokens,
		notifier: notifier,
		now:      time.Now,
	}
}

// Register creates an unverified student and sends the verification link.
// It does not log the user in.
func (s *AuthService) Register(ctx context.Context, req *dto.RegisterRequest, lang i18n.Lang) (*models.User, error) {
	email := NormalizeEmail(req.Email)

	var count int64
	if err := s.db.WithContext(ctx).Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrEmailExists
	}

	hash, err := HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	token, tokenHash, err := newVerificationToken()
	if err != nil {
		return nil, err
	}
	expires := s.now().UTC().Add(verificationTTL)

	user := models.User{
		ID:        uuid.New(),
		FirstName: strings.TrimSpace(req.FirstName),
		LastName:  strings.TrimSpace(req.LastName),
		Gender:    req.Gender,
		Email:     email,
		Password:  hash,
		Role:      models.RoleStudent,
		Profile: models.Profile{
			Country: strings.TrimSpace(req.Country),
			Phone:   strings.TrimSpace(req.Phone),
		},
		IsActive:                   true,
		EmailVerificationTokenHash: &tokenHash,
		EmailVerificationExpires:   &expires,
	}

	if err := s.db.WithContext(ctx).Create(&user).Error; err != nil {
		if database.IsUniqueViolation(err) {
			return nil, ErrEmailExists
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.notifier.Notify(ctx, notify.Event{
		Kind: notify.EmailVerification,
		To:   user.Email,
		Name: user.FirstName,
		Lang: lang,
		Link: s.cfg.VerifyURL(token),
	})

	return &user, nil
}

// ResendVerification issues a fresh link for an unverified account. Unknown
// or already verified emails succeed silently.
func (s *AuthService) ResendVerification(ctx context.Context, email string, lang i18n.Lang) error {
	var user models.User
	err := s.db.WithContext(ctx).
		Where("email = ? AND is_email_verified = ?", NormalizeEmail(email), false).
		First(&user).Error
	if database.IsNotFound(err) {
		return nil
	}
	if err != nil {
		return err
	}

	token, tokenHash, err := newVerificationToken()
	if err != nil {
		return err
	}
	expires := s.now().UTC().Add(verificationTTL)
	if err := s.db.WithContext(ctx).Model(&user).Updates(map[string]interface{}{
		"email_verification_token_hash": tokenHash,
		"email_verification_expires":    expires,
	}).Error; err != nil {
		return err
	}

	s.notifier.Notify(ctx, notify.Event{
		Kind: notify.EmailVerification,
		To:   user.Email,
		Name: user.FirstName,
		Lang: lang,
		Link: s.cfg.VerifyURL(token),
	})
	return nil
}

// VerifyEmail consumes a verification token.
func (s *AuthService) VerifyEmail(ctx context.Context, token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return ErrInvalidVerification
	}

	var user models.User
	err := s.db.WithContext(ctx).Where("email_verification_token_hash = ?", hashToken(token)).First(&user).Error
	if database.IsNotFound(err) {
		return ErrInvalidVerification
	}
	if err != nil {
		return err
	}
	if user.EmailVerificationExpires == nil || s.now().After(*user.EmailVerificationExpires) {
		return ErrInvalidVerification
	}

	return s.db.WithContext(ctx).Model(&user).Updates(map[string]interface{}{
		"is_email_verified":             true,
		"email_verification_token_hash": nil,
		"email_verification_expires":    nil,
	}).Error
}

// Login checks credentials and opens a session. Unknown emails and wrong
// passwords share the same error.
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*Session, error) {
	var user models.User
	err := s.db.WithContext(ctx).Where("email = ?", NormalizeEmail(req.Email)).First(&user).Error
	if database.IsNotFound(err) {
		metrics.Logins.WithLabelValues("invalid_credentials").Inc()
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if !user.IsEmailVerified {
		metrics.Logins.WithLabelValues("not_verified").Inc()
		return nil, ErrEmailNotVerified
	}
	if !user.IsActive {
		metrics.Logins.WithLabelValues("disabled").Inc()
		return nil, ErrAccountDisabled
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		metrics.Logins.WithLabelValues("invalid_credentials").Inc()
		return nil, ErrInvalidCredentials
	}

	now := s.now().UTC()
	if err := s.db.WithContext(ctx).Model(&user).Update("last_login_at", now).Error; err != nil {
		return nil, err
	}
	user.LastLoginAt = &now

	session, err := s.openSession(s.db.WithContext(ctx), &user)
	if err != nil {
		return nil, err
	}
	metrics.Logins.WithLabelValues("success").Inc()
	return session, nil
}

// Refresh rotates a refresh token: the presented token is revoked and a new
// pair is issued. A token that was already used is rejected.
func (s *AuthService) Refresh(ctx context.Context, raw string) (*Session, error) {
	if raw == "" {
		return nil, ErrUnauthenticated
	}
	claims, err := s.tokens.Verify(raw, RefreshToken)
	if err != nil {
		return nil, ErrInvalidRefreshToken
	}
	userID, err := claims.UserID()
	if err != nil {
		return nil, ErrInvalidRefreshToken
	}

	var session *Session
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.RefreshToken{}).
			Where("token_hash = ? AND revoked = ?", hashToken(raw), false).
			Update("revoked", true)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrInvalidRefreshToken
		}

		var user models.User
		if err := tx.First(&user, "id = ?", userID).Error; err != nil {
			if database.IsNotFound(err) {
				return ErrInvalidRefreshToken
			}
			return err
		}
		if !user.IsActive {
			return ErrAccountDisabled
		}

		session, err = s.openSession(tx, &user)
		return err
	})
	if err != nil {
		return nil, err
	}
	return session, nil
}

// Logout revokes the refresh token when one is presented. It never fails on
// unknown or already revoked tokens.
func (s *AuthService) Logout(ctx context.Context, raw string) error {
	if raw == "" {
		return nil
	}
	return s.db.WithContext(ctx).Model(&models.RefreshToken{}).
		Where("token_hash = ?", hashToken(raw)).
		Update("revoked", true).Error
}

func (s *AuthService) openSession(db *gorm.DB, user *models.User) (*Session, error) {
	sub := Subject{UserID: user.ID, Role: user.Role}

	access, err := s.tokens.IssueAccessToken(sub)
	if err != nil {
		return nil, err
	}
	refresh, claims, err := s.tokens.IssueRefreshToken(sub)
	if err != nil {
		return nil, err
	}

	jti, err := uuid.Parse(claims.ID)
	if err != nil {
		return nil, fmt.Errorf("refresh token id: %w", err)
	}
	record := models.RefreshToken{
		ID:        jti,
		UserID:    user.ID,
		TokenHash: hashToken(refresh),
		ExpiresAt: claims.ExpiresAt.Time,
	}
	if err := db.Create(&record).Error; err != nil {
		return nil, fmt.Errorf("failed to store refresh token: %w", err)
	}

	return &Session{
		AccessToken:    access,
		RefreshToken:   refresh,
		RefreshExpires: record.ExpiresAt,
		User:           user,
	}, nil
}

func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), BcryptCost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return "", ErrPasswordTooLong
	}
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func newVerificationToken() (token, hash string, err error) {
	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		return "", "", fmt.Errorf("failed to generate random bytes: %w", err)
	}
	token = hex.EncodeToString(raw)
	return token, hashToken(token), nil
}

func hashToken(token string) string {
	h := sha256.Sum256([]byte(token))
	return fmt.Sprintf("%x", h)
}

// IsAuthError reports whether err is one of the expected authentication failures.
func IsAuthError(err error) bool {
	return errors.Is(err, ErrInvalidCredentials) ||
		errors.Is(err, ErrEmailNotVerified) ||
		errors.Is(err, ErrAccountDisabled)
}
