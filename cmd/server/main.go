package main

import (
	"context"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/TQgit/ud-fsnd-project1-fyyur/internal/config"
	"github.com/TQgit/ud-fsnd-project1-fyyur/internal/database"
	"github.com/TQgit/ud-fsnd-project1-fyyur/internal/handler"
	"github.com/TQgit/ud-fsnd-project1-fyyur/internal/middleware"
	"github.com/TQgit/ud-fsnd-project1-fyyur/internal/queue"
	"github.com/TQgit/ud-fsnd-project1-fyyur/internal/repository"
	"github.com/TQgit/ud-fsnd-project1-fyyur/internal/router"
	"github.com/TQgit/ud-fsnd-project1-fyyur/internal/view"
)

func main() {
	_ = godotenv.Load() // .env is optional; real env vars win
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		logrus.WithError(err).Fatal("database connection failed")
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := database.EnsureSchema(ctx, db); err != nil {
		logrus.WithError(err).Fatal("schema bootstrap failed")
	}

	rdb := config.NewRedisClient()
	if rdb == nil {
		logrus.Warn("redis unavailable, page cache disabled")
	}

	renderer, err := view.New()
	if err != nil {
		logrus.WithError(err).Fatal("template parsing failed")
	}

	e := echo.New()
	e.HideBanner = true
	e.Renderer = renderer
	e.HTTPErrorHandler = handler.ErrorHandler
	e.Use(middleware.Logger())

	flash := handler.NewFlashStore(cfg.SessionSecret)
	events := queue.NewPublisher()

	venues := repository.NewVenueRepo(db)
	artists := repository.NewArtistRepo(db)
	shows := repository.NewShowRepo(db)

	router.RegisterRoutes(e,
		&handler.HomeHandler{Flash: flash},
		&handler.VenueHandler{Venues: venues, Shows: shows, Flash: flash, Events: events},
		&handler.ArtistHandler{Artists: artists, Shows: shows, Flash: flash, Events: events},
		&handler.ShowHandler{Shows: shows, Flash: flash, Events: events},
		middleware.PageCache(config.LoadCacheConfig(), rdb),
	)

	logrus.Infof("listening on :%s (env=%s)", cfg.Port, cfg.Env)
	if err := e.Start(":" + cfg.Port); err != nil {
		logrus.Fatal(err)
	}
}
