package postgres

import (
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed migrations/*.sql
var migrationFS embed.FS

// ErrNoChange: el esquema ya está en la versión objetivo.
var ErrNoChange = migrate.ErrNoChange

// Migrate aplica las migraciones SQL embebidas sobre el DSN indicado.
// direction debe ser "up" o "down".
func Migrate(dsn, direction string) error {
	if dsn == "" {
		return errors.New("migrate: DSN vacío")
	}
	if direction != "up" && direction != "down" {
		return fmt.Errorf("migrate: direction debe ser up o down, se recibió %q", direction)
	}

	src, err := iofs.New(migrationFS, "migrations")
	if err != nil {
		return fmt.Errorf("migrate source: %w", err)
	}
	m, err := migrate.NewWithSourceInstance("iofs", src, dsn)
	if err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	defer func() { _, _ = m.Close() }()

	if direction == "up" {
		err = m.Up()
	} else {
		err = m.Down()
	}
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	return nil
}
