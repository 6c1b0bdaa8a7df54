package sqlite

//nolint:revive
import (
	"embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/golang-migrate/migrate/v4"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
	_ "modernc.org/sqlite"

	"crewlink/config"
	"crewlink/shared"
)

//go:embed migrations/*.sql
var migrations embed.FS

// New opens the local state database and brings its schema up to date. The
// database holds everything the client persists between runs: the auth
// session and unsubmitted review drafts.
func New(config *config.Config) *sqlx.DB {
	path := shared.ExpandHome(config.App.StatePath)

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		log.Fatal().Err(err).Str("path", path).Msg("Failed to create state directory")
	}

	db, err := sqlx.Connect("sqlite", path)
	if err != nil {
		log.Fatal().Err(err).Str("path", path).Msg("Failed to open state database")
	}

	// modernc sqlite serializes writes itself; a single connection avoids
	// SQLITE_BUSY between concurrent cache refreshes.
	db.SetMaxOpenConns(1)

	if err := Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("Failed to migrate state database")
	}

	return db
}

// Migrate applies the embedded schema migrations.
func Migrate(db *sqlx.DB) error {
	source, err := iofs.New(migrations, "migrations")
	if err != nil {
		return fmt.Errorf("error loading embedded migrations: %w", err)
	}

	driver, err := migratesqlite.WithInstance(db.DB, &migratesqlite.Config{})
	if err != nil {
		return fmt.Errorf("error creating migrate driver: %w", err)
	}

	mig, err := migrate.NewWithInstance("iofs", source, "sqlite", driver)
	if err != nil {
		return fmt.Errorf("error creating migrate instance: %w", err)
	}

	if err := mig.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("error running migrations: %w", err)
	}

	return nil
}
