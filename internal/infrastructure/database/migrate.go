package database

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"medical-appointment-assistant/config"

	_ "github.com/go-sql-driver/mysql"
	"github.com/golang-migrate/migrate/v4"
	migratemysql "github.com/golang-migrate/migrate/v4/database/mysql"
	migratepostgres "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/sirupsen/logrus"
)

//go:embed migrations
var migrationsFS embed.FS

// Migrator applies the embedded schema and seed scripts for one dialect.
// It owns a dedicated connection, closed by Close.
type Migrator struct {
	m *migrate.Migrate
}

func NewMigrator(cfg config.DBConfig, timezone string) (*Migrator, error) {
	sqlDriver := "pgx"
	if cfg.Driver == config.DriverMySQL {
		sqlDriver = "mysql"
	}

	db, err := sql.Open(sqlDriver, DSN(cfg, timezone))
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping db: %w", err)
	}

	src, err := iofs.New(migrationsFS, "migrations/"+cfg.Driver)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("source driver: %w", err)
	}

	m, err := newMigrate(cfg.Driver, db, src)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Migrator{m: m}, nil
}

func newMigrate(driver string, db *sql.DB, src source.Driver) (*migrate.Migrate, error) {
	switch driver {
	case config.DriverPostgres:
		dbDriver, err := migratepostgres.WithInstance(db, &migratepostgres.Config{})
		if err != nil {
			return nil, fmt.Errorf("db driver: %w", err)
		}
		return migrate.NewWithInstance("iofs", src, "postgres", dbDriver)
	case config.DriverMySQL:
		dbDriver, err := migratemysql.WithInstance(db, &migratemysql.Config{})
		if err != nil {
			return nil, fmt.Errorf("db driver: %w", err)
		}
		return migrate.NewWithInstance("iofs", src, "mysql", dbDriver)
	default:
		return nil, config.ErrUnsupportedDriver
	}
}

// Up applies every pending migration. Being current already is not an error.
func (mg *Migrator) Up() error {
	if err := mg.m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migrate up: %w", err)
	}
	logrus.Info("Database migrations applied")
	return nil
}

// Down rolls back the given number of migrations.
func (mg *Migrator) Down(steps int) error {
	if err := mg.m.Steps(-steps); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migrate down: %w", err)
	}
	return nil
}

// Force sets the recorded version without running scripts, clearing a dirty state.
func (mg *Migrator) Force(version int) error {
	if err := mg.m.Force(version); err != nil {
		return fmt.Errorf("force version: %w", err)
	}
	return nil
}

func (mg *Migrator) Version() (uint, bool, error) {
	version, dirty, err := mg.m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, false, nil
	}
	return version, dirty, err
}

func (mg *Migrator) Close() error {
	srcErr, dbErr := mg.m.Close()
	return errors.Join(srcErr, dbErr)
}
