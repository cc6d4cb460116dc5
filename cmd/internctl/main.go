// Command internctl runs maintenance tasks against the application database.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/Princeaman007/interships/internal/config"
	"github.com/Princeaman007/interships/internal/content/registry"
	"github.com/Princeaman007/interships/internal/database"
	"github.com/Princeaman007/interships/internal/logging"
	"github.com/Princeaman007/interships/internal/models"
	"github.com/Princeaman007/interships/internal/notify"
	"github.com/Princeaman007/interships/internal/services"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "internctl",
		Short:         "Maintenance commands for the internship platform",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(newMigrateCommand())
	cmd.AddCommand(newSeedCommand())
	cmd.AddCommand(newPromoteCommand())
	cmd.AddCommand(newCleanupCommand())
	return cmd
}

// withDB loads the configuration, opens the database and hands both to fn.
func withDB(cmd *cobra.Command, fn func(ctx context.Context, cfg *config.Config, db *gorm.DB) error) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cfg, err := config.Load(ctx)
	if err != nil {
		return err
	}
	logging.Setup(cfg.IsProduction())

	db, err := database.Connect(cfg)
	if err != nil {
		return err
	}
	defer database.Close(db)
	return fn(ctx, cfg, db)
}

func newMigrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update every table",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDB(cmd, func(ctx context.Context, _ *config.Config, db *gorm.DB) error {
				return migrate(db, cmd.OutOrStdout())
			})
		},
	}
}

func migrate(db *gorm.DB, out io.Writer) error {
	modules := registry.Modules(notify.Nop{})
	if err := database.Migrate(db, registry.Models(modules)...); err != nil {
		return err
	}
	fmt.Fprintln(out, "migrations applied")
	return nil
}

func newSeedCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Insert the default about and service pages",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDB(cmd, func(ctx context.Context, _ *config.Config, db *gorm.DB) error {
				if err := migrate(db, cmd.OutOrStdout()); err != nil {
					return err
				}
				if err := registry.Seed(ctx, db, registry.Modules(notify.Nop{})); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "seed data inserted")
				return nil
			})
		},
	}
}

func newPromoteCommand() *cobra.Command {
	var role string

	cmd := &cobra.Command{
		Use:   "promote <email>",
		Short: "Change the role of an existing account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDB(cmd, func(ctx context.Context, _ *config.Config, db *gorm.DB) error {
				return promote(ctx, services.NewUserService(db, nil), args[0], models.Role(role), cmd.OutOrStdout())
			})
		},
	}

	cmd.Flags().StringVar(&role, "role", string(models.RoleAdmin), "Role to grant (student, admin, superAdmin)")
	return cmd
}

func promote(ctx context.Context, users *services.UserService, email string, role models.Role, out io.Writer) error {
	user, err := users.GetByEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("%s: %w", email, err)
	}
	if _, err := users.SetRole(ctx, user.ID, role); err != nil {
		return err
	}
	fmt.Fprintf(out, "%s is now %s\n", user.Email, role)
	return nil
}

func newCleanupCommand() *cobra.Command {
	var days int

	cmd := &cobra.Command{
		Use:   "cleanup-logs",
		Short: "Delete old system logs and stale refresh tokens",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDB(cmd, func(ctx context.Context, cfg *config.Config, db *gorm.DB) error {
				if days <= 0 {
					days = cfg.LogRetentionDays
				}
				res, err := logging.Cleanup(ctx, db, days, time.Now())
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "deleted %d logs and %d refresh tokens\n", res.Logs, res.RefreshTokens)
				return nil
			})
		},
	}

	cmd.Flags().IntVar(&days, "days", 0, "Retention in days (defaults to LOG_RETENTION_DAYS)")
	return cmd
}
