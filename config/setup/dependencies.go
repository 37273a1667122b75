package setup

import (
	"log/slog"
	"time"

	"property-manager/app"
	"property-manager/config"
	"property-manager/database"
	"property-manager/reminders"
	"property-manager/session"
)

// InitDatabase initializes the SQLite database and runs migrations
func InitDatabase(dbPath string, logger *slog.Logger) (*database.DB, error) {
	db, err := database.New(dbPath)
	if err != nil {
		return nil, err
	}

	if err := db.Migrate(); err != nil {
		db.Close()
		return nil, err
	}

	logger.Info("database initialized", "path", dbPath)
	return db, nil
}

// InitApp initializes the application with all dependencies
func InitApp(db *database.DB, logger *slog.Logger) (*app.App, *reminders.Worker) {
	repo := database.NewRepository(db)

	sessionStore := session.NewStore()
	sessionStore.StartCleanupRoutine()
	logger.Info("session cleanup routine started")

	// Background worker that surfaces obligations coming due
	worker := reminders.NewWorker(
		repo,
		&reminders.LogNotifier{Logger: logger},
		logger,
		time.Hour,
		config.AppConfig.ReminderDays,
	)
	worker.Start()

	application := app.New(repo, sessionStore, logger)
	logger.Info("application initialized")

	return application, worker
}

// Shutdown performs graceful shutdown of all services
func Shutdown(worker *reminders.Worker, db *database.DB, logger *slog.Logger) {
	logger.Info("shutting down services...")

	if worker != nil {
		worker.Stop()
		logger.Info("reminder worker stopped")
	}

	if db != nil {
		db.Close()
		logger.Info("database closed")
	}
}
