package services

import (
	"context"
	"errors"
	"io"
	"strings"
	"sync"
	"testing"

	"github.com/Princeaman007/interships/internal/dbtest"
	"github.com/Princeaman007/interships/internal/dto"
	"github.com/Princeaman007/interships/internal/i18n"
	"github.com/Princeaman007/interships/internal/models"
	"github.com/Princeaman007/interships/internal/notify"
	"github.com/Princeaman007/interships/internal/storage"
)

// memStore is an in-memory storage.FileStore.
type memStore struct {
	mu    sync.Mutex
	files map[string][]byte
}

func newMemStore() *memStore { return &memStore{files: map[string][]byte{}} }

func (m *memStore) Save(_ context.Context, key string, r io.Reader, _ int64, _ string) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	url := "/uploads/" + key
	m.files[url] = data
	return url, nil
}

func (m *memStore) Delete(_ context.Context, url string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.files, url)
	return nil
}

func (m *memStore) has(url string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.files[url]
	return ok
}

var gifPixel = []byte("GIF89a\x01\x00\x01\x00\x00\x00\x00;")

func TestChangePassword(t *testing.T) {
	db := dbtest.New(t)
	svc := NewUserService(db, nil)
	ctx := context.Background()
	user := createUser(t, db, "pw@example.com", models.RoleStudent)

	tests := []struct {
		name string
		req  dto.ChangePasswordRequest
		want error
	}{
		{"same password", dto.ChangePasswordRequest{CurrentPassword: testPassword, NewPassword: testPassword}, ErrSamePassword},
		{"wrong current", dto.ChangePasswordRequest{CurrentPassword: "nope-nope", NewPassword: "brand-new"}, ErrInvalidCurrentPassword},
		{"longer than 72 bytes", dto.ChangePasswordRequest{CurrentPassword: testPassword, NewPassword: strings.Repeat("é", 40)}, ErrPasswordTooLong},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := svc.ChangePassword(ctx, user.ID, &tt.req); !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
		})
	}

	if err := svc.ChangePassword(ctx, user.ID, &dto.ChangePasswordRequest{CurrentPassword: testPassword, NewPassword: "brand-new"}); err != nil {
		t.Fatalf("ChangePassword: %v", err)
	}

	cfg := testConfig()
	auth := NewAuthService(db, cfg, NewTokenIssuer(cfg), notify.Nop{})
	if _, err := auth.Login(ctx, &dto.LoginRequest{Email: user.Email, Password: testPassword}); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("old password should fail, got %v", err)
	}
	if _, err := auth.Login(ctx, &dto.LoginRequest{Email: user.Email, Password: "brand-new"}); err != nil {
		t.Fatalf("new password should work: %v", err)
	}
}

func TestUpdateProfile(t *testing.T) {
	db := dbtest.New(t)
	svc := NewUserService(db, nil)
	ctx := context.Background()
	user := createUser(t, db, "me@example.com", models.RoleStudent)
	createUser(t, db, "taken@example.com", models.RoleStudent)

	country := "  Canada "
	got, err := svc.UpdateProfile(ctx, user.ID, &dto.UpdateProfileRequest{FirstName: "Moussa", Country: &country})
	if err != nil {
		t.Fatalf("UpdateProfile: %v", err)
	}
	if got.FirstName != "Moussa" || got.Profile.Country != "Canada" || got.Email != "me@example.com" {
		t.Fatalf("unexpected user %+v", got)
	}

	if _, err := svc.UpdateProfile(ctx, user.ID, &dto.UpdateProfileRequest{Email: "Taken@example.com"}); !errors.Is(err, ErrEmailInUse) {
		t.Fatalf("expected ErrEmailInUse, got %v", err)
	}
}

func TestAvatarLifecycle(t *testing.T) {
	db := dbtest.New(t)
	files := newMemStore()
	svc := NewUserService(db, files)
	ctx := context.Background()
	user := createUser(t, db, "face@example.com", models.RoleStudent)

	img, err := storage.NewImage(gifPixel)
	if err != nil {
		t.Fatalf("NewImage: %v", err)
	}
	first, err := svc.SetAvatar(ctx, user.ID, img)
	if err != nil {
		t.Fatalf("SetAvatar: %v", err)
	}
	firstURL := first.Profile.AvatarURL
	if !files.has(firstURL) {
		t.Fatalf("avatar %q not stored", firstURL)
	}

	second, err := svc.SetAvatar(ctx, user.ID, img)
	if err != nil {
		t.Fatalf("SetAvatar: %v", err)
	}
	if files.has(firstURL) {
		t.Fatal("previous avatar was not removed")
	}

	if err := svc.RemoveAvatar(ctx, user.ID); err != nil {
		t.Fatalf("RemoveAvatar: %v", err)
	}
	if files.has(second.Profile.AvatarURL) {
		t.Fatal("avatar file still present")
	}
	reloaded, err := svc.GetByID(ctx, user.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if reloaded.Profile.AvatarURL != "" {
		t.Fatalf("avatar url = %q, want empty", reloaded.Profile.AvatarURL)
	}
}

func TestDeleteUser(t *testing.T) {
	db := dbtest.New(t)
	svc := NewUserService(db, newMemStore())
	ctx := context.Background()

	admin := createUser(t, db, "admin@example.com", models.RoleAdmin)
	student := createUser(t, db, "gone@example.com", models.RoleStudent)
	apps := NewApplicationService(db, notify.Nop{})
	if _, err := apps.Apply(ctx, student, createInternship(t, db, nil).ID, "", i18n.FR); err != nil {
		t.Fatalf("Apply: %v", err)
	}

	if err := svc.Delete(ctx, admin, admin.ID); !errors.Is(err, ErrCannotDeleteSelf) {
		t.Fatalf("expected ErrCannotDeleteSelf, got %v", err)
	}
	if err := svc.Delete(ctx, admin, student.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := svc.GetByID(ctx, student.ID); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
	var count int64
	db.Model(&models.Application{}).Count(&count)
	if count != 0 {
		t.Fatalf("applications left: %d", count)
	}
}

func TestSetRoleAndActive(t *testing.T) {
	db := dbtest.New(t)
	svc := NewUserService(db, nil)
	ctx := context.Background()
	user := createUser(t, db, "role@example.com", models.RoleStudent)

	if _, err := svc.SetRole(ctx, user.ID, models.Role("root")); !errors.Is(err, ErrInvalidRole) {
		t.Fatalf("expected ErrInvalidRole, got %v", err)
	}
	got, err := svc.SetRole(ctx, user.ID, models.RoleAdmin)
	if err != nil || got.Role != models.RoleAdmin {
		t.Fatalf("SetRole: %v %+v", err, got)
	}

	cfg := testConfig()
	auth := NewAuthService(db, cfg, NewTokenIssuer(cfg), notify.Nop{})
	session, err := auth.Login(ctx, &dto.LoginRequest{Email: user.Email, Password: testPassword})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	if _, err := svc.SetActive(ctx, user.ID, false); err != nil {
		t.Fatalf("SetActive: %v", err)
	}
	if _, err := auth.Refresh(ctx, session.RefreshToken); !errors.Is(err, ErrInvalidRefreshToken) {
		t.Fatalf("disabling should revoke sessions, got %v", err)
	}
	if _, err := auth.Login(ctx, &dto.LoginRequest{Email: user.Email, Password: testPassword}); !errors.Is(err, ErrAccountDisabled) {
		t.Fatalf("expected ErrAccountDisabled, got %v", err)
	}
}

func TestListUsers(t *testing.T) {
	db := dbtest.New(t)
	svc := NewUserService(db, nil)
	ctx := context.Background()
	createUser(t, db, "one@example.com", models.RoleStudent)
	createUser(t, db, "two@example.com", models.RoleStudent)
	createUser(t, db, "chief@example.com", models.RoleAdmin)

	list, err := svc.List(ctx, dto.UserFilter{Role: models.RoleStudent, Page: 1, Limit: 1})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if list.Total != 2 || list.TotalPages != 2 || len(list.Users) != 1 {
		t.Fatalf("unexpected page %+v", list.Page)
	}
	if list.RoleBreakdown[models.RoleAdmin] != 1 || list.RoleBreakdown[models.RoleStudent] != 2 {
		t.Fatalf("unexpected breakdown %v", list.RoleBreakdown)
	}

	found, err := svc.List(ctx, dto.UserFilter{Search: "CHIEF", Page: 1, Limit: 10})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(found.Users) != 1 || found.Users[0].Email != "chief@example.com" {
		t.Fatalf("unexpected search result %+v", found.Users)
	}
}
