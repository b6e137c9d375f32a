package database

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"log/slog"
	"net/url"
	"time"

	migrate "github.com/rubenv/sql-migrate"
	"github.com/uptrace/bun/driver/pgdriver"
)

//go:embed migrations/*.sql
var migrations embed.FS

const pingTimeout = 10 * time.Second

// NewPostgres opens the database and applies pending migrations.
// A non-empty host replaces the host part of dsn.
func NewPostgres(dsn, host string) (*sql.DB, error) {
	dsn, err := overrideHost(dsn, host)
	if err != nil {
		return nil, err
	}

	db := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(dsn)))

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging db: %w", err)
	}

	n, err := Migrate(db)
	if err != nil {
		db.Close()
		return nil, err
	}

	slog.Info("Database ready", "appliedMigrations", n)

	return db, nil
}

func Migrate(db *sql.DB) (int, error) {
	source := &migrate.EmbedFileSystemMigrationSource{
		FileSystem: migrations,
		Root:       "migrations",
	}

	n, err := migrate.Exec(db, "postgres", source, migrate.Up)
	if err != nil {
		return 0, fmt.Errorf("applying migrations: %w", err)
	}

	return n, nil
}

func overrideHost(dsn, host string) (string, error) {
	if host == "" {
		return dsn, nil
	}

	u, err := url.Parse(dsn)
	if err != nil {
		return "", fmt.Errorf("parsing database url: %w", err)
	}
	u.Host = host

	return u.String(), nil
}
