package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"github.com/RiegL/ostia-visitas-report/config"
	"github.com/RiegL/ostia-visitas-report/internal/email"
	"github.com/RiegL/ostia-visitas-report/internal/handler"
	appointmentHandler "github.com/RiegL/ostia-visitas-report/internal/handler/appointment"
	authHandler "github.com/RiegL/ostia-visitas-report/internal/handler/auth"
	ministerHandler "github.com/RiegL/ostia-visitas-report/internal/handler/minister"
	patientHandler "github.com/RiegL/ostia-visitas-report/internal/handler/patient"
	"github.com/RiegL/ostia-visitas-report/internal/middleware"
	"github.com/RiegL/ostia-visitas-report/internal/repository/postgres"
	"github.com/RiegL/ostia-visitas-report/internal/router"
	appointmentService "github.com/RiegL/ostia-visitas-report/internal/service/appointment"
	authService "github.com/RiegL/ostia-visitas-report/internal/service/auth"
	ministerService "github.com/RiegL/ostia-visitas-report/internal/service/minister"
	patientService "github.com/RiegL/ostia-visitas-report/internal/service/patient"
	"github.com/RiegL/ostia-visitas-report/internal/session"
	pkgauth "github.com/RiegL/ostia-visitas-report/pkg/auth"
	"github.com/RiegL/ostia-visitas-report/pkg/logger"
	"github.com/RiegL/ostia-visitas-report/pkg/metrics"
	"github.com/RiegL/ostia-visitas-report/pkg/security"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	level, err := zerolog.ParseLevel(cfg.Logging.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}
	appLogger := logger.NewLogger(&logger.Config{
		Level:  level,
		Pretty: cfg.Logging.Pretty,
	})

	db, err := postgres.NewDB(cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()

	m := metrics.NewMetrics("ostia_visitas")

	sessionStore, err := session.NewRedisStore(session.Config{
		URL: cfg.Session.RedisURL,
		TTL: cfg.Session.TTL,
	}, m)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to session store")
	}

	patientRepo := postgres.NewPatientRepository(db)
	ministerRepo := postgres.NewMinisterRepository(db)
	appointmentRepo := postgres.NewAppointmentRepository(db)

	emailSvc := email.NewService(email.Config{
		Enabled:  cfg.Email.Enabled,
		Host:     cfg.Email.Host,
		Port:     cfg.Email.Port,
		Username: cfg.Email.Username,
		Password: cfg.Email.Password,
		From:     cfg.Email.From,
	})

	tokenSvc := pkgauth.NewJWTService(pkgauth.JWTConfig{
		Secret:      cfg.JWT.Secret,
		ExpiryHours: cfg.JWT.ExpiryHours,
	})

	patientSvc := patientService.NewService(patientRepo, appLogger)
	ministerSvc := ministerService.NewService(ministerRepo, security.NewBcryptHasher(bcrypt.DefaultCost), appLogger)
	appointmentSvc := appointmentService.NewService(appointmentRepo, patientRepo, ministerRepo, emailSvc, appLogger)
	authSvc := authService.NewService(ministerSvc, ministerRepo, tokenSvc, sessionStore, appLogger)

	authMW := middleware.NewAuthMiddleware(authSvc, tokenSvc)

	corsCfg := middleware.DefaultCORSConfig()
	if len(cfg.Security.AllowedOrigins) > 0 {
		corsCfg.AllowOrigins = cfg.Security.AllowedOrigins
	}

	r := router.NewRouter(
		router.Config{
			Mode: cfg.Server.Mode,
			CORS: corsCfg,
			RateLimit: middleware.RateLimiterConfig{
				RPS:   cfg.RateLimit.RequestsPerSecond,
				Burst: cfg.RateLimit.Burst,
			},
			Timeout: middleware.TimeoutConfig{Duration: cfg.Server.WriteTimeout},
		},
		m,
		authMW,
		authHandler.NewHandler(authSvc),
		patientHandler.NewHandler(patientSvc, appointmentSvc),
		ministerHandler.NewHandler(ministerSvc),
		appointmentHandler.NewHandler(appointmentSvc),
		handler.NewHealthHandler(db),
	)

	srv := &http.Server{
		Addr:           fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:        r.Engine(),
		ReadTimeout:    cfg.Server.ReadTimeout,
		WriteTimeout:   cfg.Server.WriteTimeout,
		MaxHeaderBytes: cfg.Server.MaxHeaderBytes,
	}

	go func() {
		appLogger.Info(fmt.Sprintf("server listening on %s", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("forced shutdown")
	}
	appLogger.Info("server stopped")
}
