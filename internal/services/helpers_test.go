package services

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/Princeaman007/interships/internal/config"
	"github.com/Princeaman007/interships/internal/i18n"
	"github.com/Princeaman007/interships/internal/models"
	"github.com/Princeaman007/interships/internal/notify"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const testPassword = "secret1"

// recordingNotifier keeps every event it receives.
type recordingNotifier struct {
	mu     sync.Mutex
	events []notify.Event
}

func (r *recordingNotifier) Notify(_ context.Context, ev notify.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, ev)
}

func (r *recordingNotifier) all() []notify.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]notify.Event(nil), r.events...)
}

func (r *recordingNotifier) last(t *testing.T, kind notify.Kind) notify.Event {
	t.Helper()
	events := r.all()
	for i := len(events) - 1; i >= 0; i-- {
		if events[i].Kind == kind {
			return events[i]
		}
	}
	t.Fatalf("no %s event recorded", kind)
	return notify.Event{}
}

func testConfig() *config.Config {
	return &config.Config{
		Env:                "test",
		JWTSecret:          "access-secret",
		JWTAccessExpiry:    15 * time.Minute,
		RefreshTokenSecret: "refresh-secret",
		RefreshTokenExpiry: 7 * 24 * time.Hour,
		BaseURL:            "http://localhost:5173",
	}
}

// tokenFromLink extracts the token query parameter of a verification link.
func tokenFromLink(t *testing.T, link string) string {
	t.Helper()
	_, token, ok := strings.Cut(link, "token=")
	if !ok || token == "" {
		t.Fatalf("no token in link %q", link)
	}
	return token
}

func createUser(t *testing.T, db *gorm.DB, email string, role models.Role) *models.User {
	t.Helper()
	hash, err := HashPassword(testPassword)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	user := &models.User{
		ID:              uuid.New(),
		FirstName:       "Test",
		LastName:        strings.Split(email, "@")[0],
		Gender:          models.GenderOther,
		Email:           email,
		Password:        hash,
		Role:            role,
		IsActive:        true,
		IsEmailVerified: true,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	return user
}

func createInternship(t *testing.T, db *gorm.DB, start *time.Time) *models.Internship {
	t.Helper()
	in := &models.Internship{
		ID: uuid.New(),
		Translations: i18n.Translations[models.InternshipText]{
			FR: models.InternshipText{Title: "Stage développeur", Description: "Backend Go", Location: "Paris"},
			EN: models.InternshipText{Title: "Developer internship", Description: "Go backend", Location: "Paris"},
		},
		Field:     "IT",
		Country:   "France",
		Type:      models.InternshipHybrid,
		Duration:  "6 months",
		IsActive:  true,
		StartDate: start,
	}
	if err := db.Create(in).Error; err != nil {
		t.Fatalf("create internship: %v", err)
	}
	return in
}
