package app

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/seva-mitra/core/internal/config"
	"github.com/seva-mitra/core/internal/database"
	"github.com/seva-mitra/core/internal/modules/activity"
	"github.com/seva-mitra/core/internal/modules/complaint"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// App holds all application dependencies.
type App struct {
	cfg    *config.AppConfig
	router http.Handler
	db     *mongo.Database
	logger *zap.Logger
}

// New initializes the application: config → database → routes.
func New(logger *zap.Logger, cfg *config.AppConfig) (*App, error) {
	if cfg == nil {
		return nil, errors.New("config is nil")
	}

	db, err := database.Connect(cfg)
	if err != nil {
		return nil, fmt.Errorf("database: %w", err)
	}

	complaintHandler := complaint.NewHandler(complaint.NewService(complaint.NewMongoStore(db)))
	activityHandler := activity.NewHandler(activity.NewService(activity.NewMongoStore(db)))

	router := NewRouter(logger, cfg, complaintHandler, activityHandler)

	return &App{cfg: cfg, router: router, db: db, logger: logger}, nil
}

// Addr returns the listen address.
func (a *App) Addr() string { return fmt.Sprintf(":%d", a.cfg.Port) }

// Router returns the HTTP handler.
func (a *App) Router() http.Handler { return a.router }

// Shutdown releases the database connection.
func (a *App) Shutdown() {
	if err := database.Disconnect(a.db); err != nil {
		a.logger.Warn("database disconnect", zap.Error(err))
	}
}

var processStart = time.Now()
