package main

import (
	"log"

	"bus-booking/cmd"
	"bus-booking/internal/data/repository"
	"bus-booking/internal/wire"
	"bus-booking/pkg/database"
	"bus-booking/pkg/jobs"
	"bus-booking/pkg/notify"
	"bus-booking/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
	)

	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connected successfully")

	repos := repository.NewRepository(db, logger)

	mailer := notify.NewMailer(config.Email, config.Booking.NotifyRetries, logger)
	defer mailer.Close()

	runner, err := jobs.NewRunner(repos, logger)
	if err != nil {
		logger.Fatal("Failed to init job scheduler", zap.Error(err))
	}
	if err := runner.Start(); err != nil {
		logger.Fatal("Failed to start background jobs", zap.Error(err))
	}
	defer runner.Stop()

	app := wire.Wiring(repos, config, mailer, logger)

	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))
	cmd.APIServer(app.Router, config.App.Port)
}
