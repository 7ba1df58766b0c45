package main

import (
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"

	"taskboard/internal/application/services"
	"taskboard/internal/config"
	"taskboard/internal/delivery/handler"
	"taskboard/internal/delivery/view"
	"taskboard/internal/infrastructure"
	"taskboard/internal/infrastructure/db/gormdb"
)

var log *logrus.Logger

func init() {
	log = logrus.New()
	log.Formatter = &logrus.JSONFormatter{
		FieldMap: logrus.FieldMap{
			logrus.FieldKeyTime:  "timestamp",
			logrus.FieldKeyLevel: "severity",
			logrus.FieldKeyMsg:   "message",
		},
		TimestampFormat: time.RFC3339Nano,
	}
	log.Out = os.Stdout
}

func main() {
	// Best effort: a missing .env just means plain environment variables.
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := gormdb.Open(cfg.PostgresDSN, cfg.SQLitePath)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	log.Info("connected to database")

	var sessions infrastructure.SessionStore
	if cfg.RedisURL != "" {
		redisSessions, err := infrastructure.NewRedisSessionStore(cfg.RedisURL, cfg.SessionTTL)
		if err != nil {
			log.Fatalf("failed to connect to redis: %v", err)
		}
		defer redisSessions.Close()
		sessions = redisSessions
		log.Info("using redis session store")
	} else {
		sessions = infrastructure.NewMemorySessionStore(cfg.SessionTTL)
		log.Info("using in-memory session store")
	}

	userRepo := gormdb.NewUserRepository(db)
	taskRepo := gormdb.NewTaskRepository(db)

	tokens := infrastructure.NewTokenService(cfg.SessionSecret)
	auth := services.NewAuthService(userRepo, sessions, tokens, cfg.SessionTTL)
	tasks := services.NewTaskService(taskRepo)
	limiter := infrastructure.NewLoginLimiter(cfg.LoginRatePerSecond, cfg.LoginBurst)

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Renderer = view.NewRenderer()

	h := handler.New(auth, tasks, limiter, cfg.SessionTTL, log)
	handler.Routes(e, h)

	log.Infof("server listening on :%s", cfg.Port)
	if err := e.Start(":" + cfg.Port); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
