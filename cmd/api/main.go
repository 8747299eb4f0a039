package main

import (
	"os"

	"github.com/yigit/examtable/internal/pkg/logger"
	"github.com/yigit/examtable/internal/server"
)

// @title Exam Timetable API
// @version 1.0
// @description Generates university exam timetables, audits them for conflicts and drives their two-step validation.

// @contact.name API Support
// @contact.email support@univ.example

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT issued by the account service, as "Bearer <token>"

func main() {
	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
}
