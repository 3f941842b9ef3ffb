package database

import (
	"fmt"
	"net/url"

	"medical-appointment-assistant/config"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewConnection opens the gorm pool for the configured driver.
func NewConnection(cfg config.DBConfig, app config.AppConfig) (*gorm.DB, error) {
	dialector, err := dialectorFor(cfg, app.Timezone)
	if err != nil {
		return nil, err
	}

	logLevel := logger.Warn
	if app.IsDevelopment() {
		logLevel = logger.Info
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}

	// Set connection pool settings
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)

	logrus.Infof("Successfully connected to %s database", cfg.Driver)

	return db, nil
}

func dialectorFor(cfg config.DBConfig, timezone string) (gorm.Dialector, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		return postgres.Open(DSN(cfg, timezone)), nil
	case config.DriverMySQL:
		return mysql.Open(DSN(cfg, timezone)), nil
	default:
		return nil, config.ErrUnsupportedDriver
	}
}

// DSN renders the connection string for cfg.Driver. MySQL connections allow
// multi-statement scripts so migrations can run over the same DSN.
func DSN(cfg config.DBConfig, timezone string) string {
	if timezone == "" {
		timezone = "UTC"
	}

	if cfg.Driver == config.DriverMySQL {
		return fmt.Sprintf(
			"%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=%s&multiStatements=true",
			cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.Name, url.QueryEscape(timezone),
		)
	}

	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=%s",
		cfg.Host, cfg.User, cfg.Password, cfg.Name, cfg.Port, timezone,
	)
}
