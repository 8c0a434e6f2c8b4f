package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/freecrm-dev/freecrm/db"
	"github.com/freecrm-dev/freecrm/internal/auth"
	"github.com/freecrm-dev/freecrm/internal/handlers"
	"github.com/freecrm-dev/freecrm/internal/logger"
	"github.com/freecrm-dev/freecrm/internal/router"
)

func main() {
	log := logger.New()

	if err := godotenv.Load(); err != nil {
		log.Warn().Err(err).Msg("no .env file loaded")
	}

	if err := auth.InitJWTSecret(); err != nil {
		log.Fatal().Err(err).Msg("jwt secret")
	}

	database, err := db.Connect(os.Getenv("DATABASE_URL"))

	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}

	if err := db.Migrate(database); err != nil {
		log.Fatal().Err(err).Msg("failed to migrate database")
	}

	feedbackPath := os.Getenv("FEEDBACK_LOG")

	if feedbackPath == "" {
		feedbackPath = "feedback.log"
	}

	feedbackLog, feedbackFile, err := logger.NewFile(feedbackPath)

	if err != nil {
		log.Fatal().Err(err).Msg("failed to open feedback log")
	}
	defer feedbackFile.Close()

	h := handlers.New(database, log, feedbackLog, os.Getenv("DOMAIN"))

	r := router.NewRouter(database, h)

	port := os.Getenv("PORT")

	if port == "" {
		port = "3000"
		log.Info().Msg("PORT not set, defaulting to 3000")
	}

	if err := r.Run(":" + port); err != nil {
		log.Fatal().Err(err).Msg("failed to start server")
	}
}
