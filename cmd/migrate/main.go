// Command migrate manages the database schema outside the server.
//
//	migrate up                        apply pending migrations
//	migrate down [steps]              roll back (default 1)
//	migrate force <version>           clear a dirty state
//	migrate version                   print the current version
//	migrate patient <email> <password> <first> [last]
//	                                  create a patient login
package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"medical-appointment-assistant/config"
	"medical-appointment-assistant/internal/domain/entity"
	"medical-appointment-assistant/internal/infrastructure/cache"
	"medical-appointment-assistant/internal/infrastructure/database"
	"medical-appointment-assistant/internal/service"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("load config: %v", err)
	}

	command := "up"
	if len(os.Args) > 1 {
		command = os.Args[1]
	}

	if command == "patient" {
		if err := createPatient(cfg, os.Args[2:]); err != nil {
			logrus.Fatalf("create patient: %v", err)
		}
		return
	}

	migrator, err := database.NewMigrator(cfg.DB, cfg.App.Timezone)
	if err != nil {
		logrus.Fatalf("prepare migrations: %v", err)
	}
	defer migrator.Close()

	switch command {
	case "up":
		err = migrator.Up()
	case "down":
		steps := 1
		if len(os.Args) > 2 {
			steps, err = strconv.Atoi(os.Args[2])
			if err != nil || steps <= 0 {
				logrus.Fatalf("invalid steps: %s", os.Args[2])
			}
		}
		err = migrator.Down(steps)
	case "force":
		if len(os.Args) < 3 {
			logrus.Fatal("usage: migrate force <version>")
		}
		version, convErr := strconv.Atoi(os.Args[2])
		if convErr != nil {
			logrus.Fatalf("invalid version: %v", convErr)
		}
		err = migrator.Force(version)
	case "version":
		version, dirty, vErr := migrator.Version()
		if vErr == nil {
			fmt.Printf("version %d (dirty: %t)\n", version, dirty)
		}
		err = vErr
	default:
		logrus.Fatalf("unknown command %q", command)
	}

	if err != nil {
		logrus.Fatal(err)
	}

	if command != "version" {
		invalidateDoctorCache(cfg)
	}
}

// invalidateDoctorCache clears roster entries cached by a running server.
// The schema change already succeeded, so failures only warn.
func invalidateDoctorCache(cfg *config.Config) {
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		logrus.Warnf("Skipping doctor cache invalidation: %v", err)
		return
	}
	defer redisClient.Close()

	if err := service.InvalidateDoctorCache(context.Background(), redisClient); err != nil {
		logrus.Warnf("Failed to invalidate doctor cache: %v", err)
		return
	}
	logrus.Info("Doctor cache invalidated")
}

func createPatient(cfg *config.Config, args []string) error {
	if len(args) < 3 {
		return fmt.Errorf("usage: migrate patient <email> <password> <first> [last]")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(args[1]), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	user := &entity.User{
		Email:     strings.ToLower(strings.TrimSpace(args[0])),
		Password:  string(hash),
		FirstName: args[2],
	}
	if len(args) > 3 {
		user.LastName = strings.Join(args[3:], " ")
	}

	db, err := database.NewConnection(cfg.DB, cfg.App)
	if err != nil {
		return err
	}
	sqlDB, err := db.DB()
	if err == nil {
		defer sqlDB.Close()
	}

	if err := db.Create(user).Error; err != nil {
		return fmt.Errorf("insert user: %w", err)
	}

	logrus.Infof("Created patient %s with id %d", user.Email, user.ID)
	return nil
}
