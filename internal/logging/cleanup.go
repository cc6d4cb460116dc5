package logging

import (
	"context"
	"log/slog"
	"time"

	"github.com/Princeaman007/interships/internal/models"
	"gorm.io/gorm"
)

// CleanupResult counts the rows removed by Cleanup.
type CleanupResult struct {
	Logs          int64
	RefreshTokens int64
}

// Cleanup deletes system logs older than retentionDays and refresh tokens
// that are expired or were revoked before that cutoff.
func Cleanup(ctx context.Context, db *gorm.DB, retentionDays int, now time.Time) (CleanupResult, error) {
	var out CleanupResult
	cutoff := now.AddDate(0, 0, -retentionDays)

	res := db.WithContext(ctx).Where("timestamp < ?", cutoff).Delete(&models.SystemLog{})
	if res.Error != nil {
		return out, res.Error
	}
	out.Logs = res.RowsAffected

	res = db.WithContext(ctx).
		Where("expires_at < ? OR (revoked = ? AND created_at < ?)", now, true, cutoff).
		Delete(&models.RefreshToken{})
	if res.Error != nil {
		return out, res.Error
	}
	out.RefreshTokens = res.RowsAffected
	return out, nil
}

// StartCleanup runs Cleanup once a day until ctx is cancelled.
func StartCleanup(ctx context.Context, db *gorm.DB, retentionDays int) {
	go func() {
		ticker := time.NewTicker(24 * time.Hour)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				res, err := Cleanup(ctx, db, retentionDays, time.Now())
				if err != nil {
					slog.Error("cleanup failed", "error", err.Error())
					continue
				}
				if res.Logs > 0 || res.RefreshTokens > 0 {
					slog.Info("cleanup completed", "logs", res.Logs, "refresh_tokens", res.RefreshTokens)
				}
			case <-ctx.Done():
				return
			}
		}
	}()
}
