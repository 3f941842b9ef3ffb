package main

import (
	"medical-appointment-assistant/cmd/bootstrap"

	"github.com/sirupsen/logrus"
)

func main() {
	app, err := bootstrap.New()
	if err != nil {
		logrus.WithError(err).Fatal("Failed to initialize application")
	}

	// Blocks until SIGINT or SIGTERM
	app.Run()
}
