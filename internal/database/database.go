package database

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/Princeaman007/interships/internal/config"
	"github.com/Princeaman007/interships/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func Connect(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.DBMaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.DBMaxIdleConns)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(5 * time.Minute)

	slog.Info("database connected")
	return db, nil
}

// CoreModels are the tables owned by the auth, internship and application services.
func CoreModels() []interface{} {
	return []interface{}{
		&models.User{},
		&models.RefreshToken{},
		&models.Internship{},
		&models.Application{},
		&models.SystemLog{},
	}
}

// Migrate runs AutoMigrate for the core models followed by extra (content modules).
func Migrate(db *gorm.DB, extra ...interface{}) error {
	if err := db.AutoMigrate(CoreModels()...); err != nil {
		return fmt.Errorf("migrate core models: %w", err)
	}
	if len(extra) == 0 {
		return nil
	}
	if err := db.AutoMigrate(extra...); err != nil {
		return fmt.Errorf("migrate module models: %w", err)
	}
	return nil
}

func Ping(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
