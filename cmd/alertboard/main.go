package main

import (
	"context"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/infofatec/alertboard/internal/alertboard/api"
	"github.com/infofatec/alertboard/internal/alertboard/cache"
	"github.com/infofatec/alertboard/internal/alertboard/database"
	"github.com/infofatec/alertboard/internal/alertboard/media"
	"github.com/infofatec/alertboard/internal/alertboard/service"
	"github.com/infofatec/alertboard/internal/alertboard/store"
	"github.com/infofatec/alertboard/internal/config"
	"github.com/infofatec/alertboard/internal/middleware"
)

func main() {
	log.Info().Msg("Starting alertboard api server")
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	switch strings.ToLower(cfg.Logging.Level) {
	case "trace":
		zerolog.SetGlobalLevel(zerolog.TraceLevel)
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "info":
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	case "warn", "warning":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	ctx := context.Background()

	// record store; unreachable database is fatal at startup
	db, err := database.New(&cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()

	alertStore := store.NewPgStore(db)
	if err := alertStore.EnsureSchema(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to ensure database schema")
	}

	mediaStore, err := media.NewS3Store(ctx, &cfg.Media)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to init media store")
	}

	listCache := cache.NewFromConfig(&cfg.Redis)
	svc := service.New(alertStore, mediaStore, listCache)

	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(cors.Default())
	router.Use(middleware.RequestID)
	router.Use(middleware.Metrics)
	api.NewApi(router, svc)

	log.Info().Msgf("Starting server on %s", cfg.Server.BindAddr)
	if err := router.Run(cfg.Server.BindAddr); err != nil {
		log.Fatal().Err(err).Msg("start alertboard api server failed.")
	}
	log.Info().Msg("alertboard api server exit...")
}
