// Affiliate edge gateway: classifies outbound links, injects affiliate
// tags, records analytics, and serves the newsletter and contact endpoints
// for the tenant sites.
//
//	@title			Affiliate Edge Gateway API
//	@version		1.0
//	@description	Link redirect, newsletter, contact, and analytics endpoints.
package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	"affiliateedge/config"
	_ "affiliateedge/docs"
	"affiliateedge/internal/adapters/auth"
	"affiliateedge/internal/adapters/email"
	"affiliateedge/internal/affiliate"
	"affiliateedge/internal/background"
	gatewayhttp "affiliateedge/internal/delivery/http"
	"affiliateedge/internal/delivery/http/controllers"
	"affiliateedge/internal/delivery/http/middleware"
	"affiliateedge/internal/metrics"
	"affiliateedge/internal/repository/postgres"
	"affiliateedge/internal/services"
)

const (
	shutdownTimeout  = 10 * time.Second
	drainTimeout     = 30 * time.Second
	unsubscribeTTL   = 30 * 24 * time.Hour
	migrationsSource = "file://migrations"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := config.NewLogger()
	slog.SetDefault(logger)

	db, err := sql.Open("postgres", cfg.DBUrl)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}

	if cfg.MigrateOnStart {
		if err := postgres.Migrate(db, migrationsSource); err != nil {
			logger.Error("failed to run migrations", "error", err)
			os.Exit(1)
		}
		logger.Info("migrations applied")
	}

	metrics.Init()
	metrics.SetKnownSites(cfg.Sites)

	subscriberRepo := postgres.NewSubscriberRepository(db)
	analyticsRepo := postgres.NewAnalyticsRepository(db)

	runner := background.NewRunner(logger)

	mailer, err := email.NewMailer(email.MailerConfig{
		Provider:    cfg.Email.Provider,
		FromAddress: cfg.Email.FromAddress,
		FromName:    cfg.Email.FromName,
		SES: email.SESConfig{
			Region:          cfg.Email.SESRegion,
			AccessKeyID:     cfg.Email.SESAccessKeyID,
			SecretAccessKey: cfg.Email.SESSecretAccessKey,
		},
	}, logger)
	if err != nil {
		logger.Error("failed to create mailer", "error", err)
		os.Exit(1)
	}

	emailService := services.NewEmailService(mailer, email.NewTemplateRenderer(), cfg.Email.ContactInbox, logger)
	tokenCodec := auth.NewUnsubscribeTokenCodec(cfg.NewsletterTokenSecret, unsubscribeTTL)

	analyticsService := services.NewAnalyticsService(analyticsRepo, runner)
	redirectService := services.NewRedirectService(analyticsService, affiliate.Credentials{
		AmazonTag:             cfg.Affiliate.AmazonAssociateTag,
		BookingAID:            cfg.Affiliate.BookingAffiliateID,
		AgodaAID:              cfg.Affiliate.AgodaAffiliateID,
		GetYourGuidePartnerID: cfg.Affiliate.GetYourGuidePartnerID,
		AiraloReferralCode:    cfg.Affiliate.AiraloReferralCode,
	}, cfg.UTMSourcePrefix)
	newsletterService := services.NewNewsletterService(subscriberRepo, analyticsService, emailService, tokenCodec, runner, cfg.PublicBaseURL)
	contactService := services.NewContactService(analyticsService, emailService, runner)

	mux := gatewayhttp.NewRouter(
		controllers.NewRedirectController(logger, redirectService),
		controllers.NewNewsletterController(logger, newsletterService),
		controllers.NewContactController(logger, contactService),
		controllers.NewAnalyticsController(logger, analyticsService, cfg.AnalyticsToken),
	)

	handler := middleware.Logging(logger, middleware.CORS(middleware.Metrics(mux)))

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting server", "port", cfg.Port, "env", cfg.Environment)
		errCh <- server.ListenAndServe()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stop:
		logger.Info("shutting down", "signal", sig.String())
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", "error", err)
	}

	// Drain in-flight background tasks (welcome emails, analytics inserts)
	// before letting the process exit.
	drainCtx, cancelDrain := context.WithTimeout(context.Background(), drainTimeout)
	defer cancelDrain()
	if err := runner.Wait(drainCtx); err != nil {
		logger.Warn("background tasks did not drain", "error", err)
	}

	logger.Info("server stopped")
}
