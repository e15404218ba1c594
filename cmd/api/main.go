package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/justsurfingit/job-board/internal/assist"
	"github.com/justsurfingit/job-board/internal/config"
	"github.com/justsurfingit/job-board/internal/database"
	"github.com/justsurfingit/job-board/internal/handlers"
	"github.com/justsurfingit/job-board/internal/logging"
	"github.com/justsurfingit/job-board/internal/services"
	"github.com/rs/zerolog/log"
	_ "go.uber.org/automaxprocs"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	logging.Setup(cfg.LogLevel, cfg.LogPretty)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 2. Database connection
	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("database connection failed")
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("migration failed")
	}

	// 3. Core services
	llmService, err := services.NewLLMService(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("llm client init failed")
	}
	jobService := services.NewJobService(db)
	companyService := services.NewCompanyService(db)
	userService := services.NewUserService(db)
	analyticsService := services.NewAnalyticsService(db)

	// 4. Edit sessions for the assisted editors
	sessions := assist.NewSessions(jobService, llmService, assist.Options{
		GenerationTimeout: cfg.GenerationTimeout,
		TTL:               cfg.SessionTTL,
	})
	sessions.StartJanitor(ctx, time.Minute)

	var clipboard assist.Clipboard = assist.NopClipboard{}
	if cfg.ClipboardEnabled {
		clipboard = assist.SystemClipboard{}
	}

	// 5. Router & CORS
	r := gin.Default()
	corsConfig := cors.DefaultConfig()
	if len(cfg.CORSOrigins) == 0 {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = cfg.CORSOrigins
	}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization", handlers.UserHeader}
	r.Use(cors.New(corsConfig))

	router := &handlers.Router{
		Jobs:      handlers.NewJobHandler(llmService, jobService),
		Companies: handlers.NewCompanyHandler(companyService),
		Users:     handlers.NewUserHandler(userService, analyticsService),
		Assist:    handlers.NewAssistHandler(sessions, clipboard),
	}
	router.Register(r)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed to start")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	sessions.CloseAll()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
