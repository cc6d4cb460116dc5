package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/Princeaman007/interships/internal/apperr"
	"github.com/Princeaman007/interships/internal/database"
	"github.com/Princeaman007/interships/internal/dto"
	"github.com/Princeaman007/interships/internal/models"
	"github.com/Princeaman007/interships/internal/storage"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrUserNotFound           = apperr.NotFound("USER_NOT_FOUND", "user.not_found")
	ErrEmailInUse             = apperr.Conflict("EMAIL_EXISTS", "user.email_in_use")
	ErrInvalidCurrentPassword = apperr.Validation("INVALID_CURRENT_PASSWORD", "user.invalid_current_password")
	ErrSamePassword           = apperr.Validation("SAME_PASSWORD", "user.same_password")
	ErrInvalidRole            = apperr.Validation("INVALID_ROLE", "user.invalid_role")
	ErrCannotDeleteSelf       = apperr.Validation("CANNOT_DELETE_SELF", "user.cannot_delete_self")
)

const avatarPrefix = "avatars"

type UserService struct {
	db    *gorm.DB
	files storage.FileStore
	now   func() time.Time
}

func NewUserService(db *gorm.DB, files storage.FileStore) *UserService {
	return &UserService{db: db, files: files, now: time.Now}
}

func (s *UserService) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		if database.IsNotFound(err) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (s *UserService) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, "email = ?", NormalizeEmail(email)).Error; err != nil {
		if database.IsNotFound(err) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// UpdateProfile applies the non-empty fields of req.
func (s *UserService) UpdateProfile(ctx context.Context, id uuid.UUID, req *dto.UpdateProfileRequest) (*models.User, error) {
	user, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if v := strings.TrimSpace(req.FirstName); v != "" {
		updates["first_name"] = v
	}
	if v := strings.TrimSpace(req.LastName); v != "" {
		updates["last_name"] = v
	}
	if req.Gender != "" {
		updates["gender"] = req.Gender
	}
	if req.Country != nil {
		updates["profile_country"] = strings.TrimSpace(*req.Country)
	}
	if req.Phone != nil {
		updates["profile_phone"] = strings.TrimSpace(*req.Phone)
	}
	if req.Email != "" {
		email := NormalizeEmail(req.Email)
		if email != user.Email {
			var count int64
			if err := s.db.WithContext(ctx).Model(&models.User{}).
				Where("email = ? AND id <> ?", email, id).Count(&count).Error; err != nil {
				return nil, err
			}
			if count > 0 {
				return nil, ErrEmailInUse
			}
			updates["email"] = email
		}
	}
	if len(updates) == 0 {
		return user, nil
	}

	if err := s.db.WithContext(ctx).Model(user).Updates(updates).Error; err != nil {
		if database.IsUniqueViolation(err) {
			return nil, ErrEmailInUse
		}
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	return s.GetByID(ctx, id)
}

func (s *UserService) ChangePassword(ctx context.Context, id uuid.UUID, req *dto.ChangePasswordRequest) error {
	if req.CurrentPassword == req.NewPassword {
		return ErrSamePassword
	}
	user, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.CurrentPassword)); err != nil {
		return ErrInvalidCurrentPassword
	}
	hash, err := HashPassword(req.NewPassword)
	if err != nil {
		return err
	}
	return s.db.WithContext(ctx).Model(user).Update("password", hash).Error
}

// SetAvatar stores img and replaces the previous avatar, whose file is
// removed afterwards.
func (s *UserService) SetAvatar(ctx context.Context, id uuid.UUID, img *storage.Image) (*models.User, error) {
	user, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	url, err := storage.SaveImage(ctx, s.files, avatarPrefix, img)
	if err != nil {
		return nil, fmt.Errorf("failed to store avatar: %w", err)
	}
	previous := user.Profile.AvatarURL
	if err := s.db.WithContext(ctx).Model(user).Update("profile_avatar_url", url).Error; err != nil {
		s.removeFile(ctx, url)
		return nil, err
	}
	s.removeFile(ctx, previous)
	user.Profile.AvatarURL = url
	return user, nil
}

func (s *UserService) RemoveAvatar(ctx context.Context, id uuid.UUID) error {
	user, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if user.Profile.AvatarURL == "" {
		return nil
	}
	url := user.Profile.AvatarURL
	if err := s.db.WithContext(ctx).Model(&models.User{ID: id}).Update("profile_avatar_url", "").Error; err != nil {
		return err
	}
	s.removeFile(ctx, url)
	return nil
}

// List returns one page of users, newest first, with a per-role breakdown of
// the whole table.
func (s *UserService) List(ctx context.Context, f dto.UserFilter) (*dto.UserList, error) {
	q := s.db.WithContext(ctx).Model(&models.User{})
	if f.Role != "" {
		if !f.Role.Valid() {
			return nil, ErrInvalidRole
		}
		q = q.Where("role = ?", f.Role)
	}
	if term := strings.TrimSpace(f.Search); term != "" {
		like := "%" + strings.ToLower(term) + "%"
		q = q.Where("LOWER(first_name) LIKE ? OR LOWER(last_name) LIKE ? OR LOWER(email) LIKE ?", like, like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, err
	}
	var users []models.User
	if err := q.Order("created_at DESC").Scopes(database.Paginate(f.Page, f.Limit)).Find(&users).Error; err != nil {
		return nil, err
	}
	breakdown, err := s.roleBreakdown(ctx)
	if err != nil {
		return nil, err
	}

	return &dto.UserList{
		Users:         users,
		RoleBreakdown: breakdown,
		Page: dto.Page{
			Total:       total,
			TotalPages:  database.TotalPages(total, f.Limit),
			CurrentPage: f.Page,
			Limit:       f.Limit,
		},
	}, nil
}

// Stats summarizes the user base. Active users logged in during the last 30
// days; growth covers the current month and the five before it.
func (s *UserService) Stats(ctx context.Context) (*dto.UserStats, error) {
	now := s.now().UTC()
	stats := &dto.UserStats{}

	if err := s.db.WithContext(ctx).Model(&models.User{}).Count(&stats.TotalUsers).Error; err != nil {
		return nil, err
	}
	if err := s.db.WithContext(ctx).Model(&models.User{}).
		Where("last_login_at >= ?", now.AddDate(0, 0, -30)).Count(&stats.ActiveUsers).Error; err != nil {
		return nil, err
	}
	if err := s.db.WithContext(ctx).Model(&models.User{}).
		Where("is_email_verified = ?", true).Count(&stats.VerifiedUsers).Error; err != nil {
		return nil, err
	}
	if err := s.db.WithContext(ctx).Model(&models.User{}).
		Where("profile_avatar_url <> ''").Count(&stats.UsersWithAvatar).Error; err != nil {
		return nil, err
	}
	if stats.TotalUsers > 0 {
		pct := float64(stats.UsersWithAvatar) * 100 / float64(stats.TotalUsers)
		stats.AvatarPercentage = float64(int(pct*100+0.5)) / 100
	}

	breakdown, err := s.roleBreakdown(ctx)
	if err != nil {
		return nil, err
	}
	stats.ByRole = breakdown

	firstOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	for i := 5; i >= 0; i-- {
		from := firstOfMonth.AddDate(0, -i, 0)
		to := from.AddDate(0, 1, 0)
		var n int64
		if err := s.db.WithContext(ctx).Model(&models.User{}).
			Where("created_at >= ? AND created_at < ?", from, to).Count(&n).Error; err != nil {
			return nil, err
		}
		stats.MonthlyGrowth = append(stats.MonthlyGrowth, dto.MonthlyCount{
			Month: from.Format("2006-01"),
			Count: n,
		})
	}
	return stats, nil
}

func (s *UserService) roleBreakdown(ctx context.Context) (map[models.Role]int64, error) {
	var rows []struct {
		Role  models.Role
		Count int64
	}
	if err := s.db.WithContext(ctx).Model(&models.User{}).
		Select("role, COUNT(*) AS count").Group("role").Scan(&rows).Error; err != nil {
		return nil, err
	}
	out := make(map[models.Role]int64, len(models.Roles))
	for _, r := range models.Roles {
		out[r] = 0
	}
	for _, row := range rows {
		out[row.Role] = row.Count
	}
	return out, nil
}

func (s *UserService) SetRole(ctx context.Context, id uuid.UUID, role models.Role) (*models.User, error) {
	if !role.Valid() {
		return nil, ErrInvalidRole
	}
	user, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.db.WithContext(ctx).Model(user).Update("role", role).Error; err != nil {
		return nil, err
	}
	user.Role = role
	return user, nil
}

// SetActive enables or disables an account. Disabling also revokes the
// user's refresh tokens.
func (s *UserService) SetActive(ctx context.Context, id uuid.UUID, active bool) (*models.User, error) {
	user, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(user).Update("is_active", active).Error; err != nil {
			return err
		}
		if active {
			return nil
		}
		return tx.Model(&models.RefreshToken{}).
			Where("user_id = ? AND revoked = ?", id, false).
			Update("revoked", true).Error
	})
	if err != nil {
		return nil, err
	}
	user.IsActive = active
	return user, nil
}

// Delete removes a user together with their applications and sessions.
func (s *UserService) Delete(ctx context.Context, actor *models.User, id uuid.UUID) error {
	if actor.ID == id {
		return ErrCannotDeleteSelf
	}
	user, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("applicant_id = ?", id).Delete(&models.Application{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", id).Delete(&models.RefreshToken{}).Error; err != nil {
			return err
		}
		return tx.Delete(user).Error
	})
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	s.removeFile(ctx, user.Profile.AvatarURL)
	return nil
}

func (s *UserService) removeFile(ctx context.Context, url string) {
	if url == "" || s.files == nil {
		return
	}
	if err := s.files.Delete(ctx, url); err != nil && !errors.Is(err, context.Canceled) {
		slog.Warn("failed to remove stored file", "url", url, "error", err)
	}
}
