package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/armaanv/portfolio/internal/config"
	"github.com/armaanv/portfolio/internal/contact"
	"github.com/armaanv/portfolio/internal/content"
	"github.com/armaanv/portfolio/internal/drafts"
	"github.com/armaanv/portfolio/internal/logging"
	"github.com/armaanv/portfolio/internal/storage"
	"github.com/armaanv/portfolio/internal/web"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

const (
	purgeInterval   = time.Hour
	shutdownTimeout = 10 * time.Second
)

var rootCmd = &cobra.Command{
	Use:          "portfolio",
	Short:        "Serve the armaanv.dev portfolio",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return serve(cmd.Context())
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the web server",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return serve(cmd.Context())
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprintln(cmd.OutOrStdout(), version)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd, versionCmd, draftsCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		logrus.WithError(err).Error("portfolio exited")
		stop()
		os.Exit(1)
	}
}

// setup loads configuration, configures logging and opens the database.
func setup() (config.Config, *drafts.Store, func() error, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, nil, nil, err
	}
	logging.Setup(os.Stdout, cfg.Log.Level, cfg.Log.JSON)

	db, err := storage.Open(cfg.DatabasePath)
	if err != nil {
		return config.Config{}, nil, nil, err
	}
	return cfg, drafts.NewStore(db, cfg.DraftTTL), db.Close, nil
}

func serve(ctx context.Context) error {
	cfg, store, closeDB, err := setup()
	if err != nil {
		return err
	}
	defer closeDB()

	switch cfg.GinMode {
	case gin.DebugMode, gin.ReleaseMode, gin.TestMode:
		gin.SetMode(cfg.GinMode)
	default:
		logrus.WithField("mode", cfg.GinMode).Warn("unknown GIN_MODE, using release")
		gin.SetMode(gin.ReleaseMode)
	}

	site, err := content.Default()
	if err != nil {
		return err
	}

	log := logrus.StandardLogger()
	if !cfg.MailConfigured() {
		log.Warn("SMTP credentials not configured; contact form submissions will fail")
	}
	mailer := contact.NewSMTPMailer(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.User, cfg.SMTP.Pass)
	svc := contact.NewService(mailer, cfg.ToEmail, log)

	go store.RunPurger(ctx, purgeInterval, log)

	r, err := web.NewServer(site, svc, store, cfg.OwnerEmail, log).Router()
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.WithError(err).Error("shutting down")
		}
	}()

	log.WithFields(logrus.Fields{"addr": cfg.Addr(), "version": version}).Info("listening")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("listen: %w", err)
	}
	log.Info("server stopped")
	return nil
}
