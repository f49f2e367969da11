package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"certifica_condo/internal/infrastructure/database"
	"certifica_condo/internal/migrate"

	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func main() {
	if err := newRootCmd(viper.New()).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newRootCmd reads dsn/table/timeout from flags, then environment
// (DATABASE_URL, MIGRATIONS_TABLE, MIGRATE_TIMEOUT), then an optional YAML file.
func newRootCmd(v *viper.Viper) *cobra.Command {
	var configFile string

	root := &cobra.Command{
		Use:           "migrate",
		Short:         "Apply or roll back the Postgres schema",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if configFile == "" {
				return nil
			}
			v.SetConfigFile(configFile)
			v.SetConfigType("yaml")
			return v.ReadInConfig()
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&configFile, "config", "", "optional YAML file with dsn/table/timeout")
	flags.String("dsn", "", "Postgres connection string (env DATABASE_URL)")
	flags.String("table", "", "bookkeeping table (env MIGRATIONS_TABLE)")
	flags.Duration("timeout", time.Minute, "overall deadline (env MIGRATE_TIMEOUT)")

	_ = v.BindPFlag("dsn", flags.Lookup("dsn"))
	_ = v.BindPFlag("table", flags.Lookup("table"))
	_ = v.BindPFlag("timeout", flags.Lookup("timeout"))
	_ = v.BindEnv("dsn", "DATABASE_URL")
	_ = v.BindEnv("table", "MIGRATIONS_TABLE")
	_ = v.BindEnv("timeout", "MIGRATE_TIMEOUT")

	root.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Apply all pending migrations",
			RunE: func(cmd *cobra.Command, _ []string) error {
				return withManager(cmd.Context(), v, func(ctx context.Context, m *migrate.Manager) error {
					applied, err := m.Up(ctx)
					if err != nil {
						return err
					}
					if len(applied) == 0 {
						cmd.Println("schema is up to date")
						return nil
					}
					for _, name := range applied {
						cmd.Println("applied", name)
					}
					return nil
				})
			},
		},
		&cobra.Command{
			Use:   "down",
			Short: "Roll back the most recent migration",
			RunE: func(cmd *cobra.Command, _ []string) error {
				return withManager(cmd.Context(), v, func(ctx context.Context, m *migrate.Manager) error {
					name, err := m.Down(ctx)
					if errors.Is(err, migrate.ErrNothingApplied) {
						cmd.Println("nothing to roll back")
						return nil
					}
					if err != nil {
						return err
					}
					cmd.Println("rolled back", name)
					return nil
				})
			},
		},
		&cobra.Command{
			Use:   "status",
			Short: "List applied migrations",
			RunE: func(cmd *cobra.Command, _ []string) error {
				return withManager(cmd.Context(), v, func(ctx context.Context, m *migrate.Manager) error {
					applied, err := m.Status(ctx)
					if err != nil {
						return err
					}
					cmd.Printf("%d migration(s) applied\n", len(applied))
					for _, name := range applied {
						cmd.Println(" ", name)
					}
					return nil
				})
			},
		},
	)
	return root
}

func withManager(ctx context.Context, v *viper.Viper, fn func(context.Context, *migrate.Manager) error) error {
	dsn := strings.TrimSpace(v.GetString("dsn"))
	if dsn == "" {
		return errors.New("no database configured: pass --dsn or set DATABASE_URL")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	if timeout := v.GetDuration("timeout"); timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	db, err := database.OpenPostgres(ctx, dsn)
	if err != nil {
		return fmt.Errorf("connect: %w", err)
	}
	defer func(db *sql.DB) { _ = db.Close() }(db)

	return fn(ctx, migrate.NewManager(db, migrate.WithMigrationsTable(v.GetString("table"))))
}
