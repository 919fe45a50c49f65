package database

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vancomm/sudoku-server/internal/config"
)

func Connect(ctx context.Context) (*pgxpool.Pool, error) {
	poolConfig, err := config.NewPgxpoolConfig()
	if err != nil {
		return nil, err
	}
	return pgxpool.NewWithConfig(ctx, poolConfig)
}

func ConnectAndMigrate(
	ctx context.Context, migrations fs.FS,
) (*pgxpool.Pool, *migrate.Migrate, error) {
	conn, err := Connect(ctx)
	if err != nil {
		return nil, nil, err
	}
	url, err := config.DbURL()
	if err != nil {
		return nil, nil, err
	}
	source, err := iofs.New(migrations, "migrations")
	if err != nil {
		return nil, nil, fmt.Errorf("unable to create migrations iofs: %w", err)
	}
	migrator, err := migrate.NewWithSourceInstance("iofs", source, url)
	if err != nil {
		return nil, nil, fmt.Errorf("unable to create migrator: %w", err)
	}
	if err := migrator.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return nil, nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	return conn, migrator, nil
}
