package main

import (
	"context"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/pyo-glory/site-gateway/internal/backend"
	"github.com/pyo-glory/site-gateway/internal/config"
	"github.com/pyo-glory/site-gateway/internal/feed"
	"github.com/pyo-glory/site-gateway/internal/handler"
	"github.com/pyo-glory/site-gateway/internal/mediaurl"
	"github.com/pyo-glory/site-gateway/internal/server"
	"github.com/pyo-glory/site-gateway/internal/service"
	"github.com/pyo-glory/site-gateway/internal/theme"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

func main() {
	ctx := context.Background()

	logger, _ := zap.NewProduction()

	if err := loadEnv(); err != nil {
		logger.Warn(".env file not found, using environment variables only")
	}

	if err := initConfig(); err != nil {
		logger.Sugar().Panicf("failed to initialize yaml config: %s", err.Error())
	}

	backendOrigin := os.Getenv("BACKEND_ORIGIN")
	if backendOrigin == "" {
		backendOrigin = viper.GetString("backend.origin")
	}
	backendURL, err := url.Parse(backendOrigin)
	if err != nil || backendURL.Scheme == "" || backendURL.Host == "" {
		logger.Sugar().Panicf("invalid backend origin: %q", backendOrigin)
	}

	siteConfig := config.SiteConfig{
		PublicOrigin:   viper.GetString("site.public-origin"),
		Variant:        viper.GetString("site.variant"),
		PraiseWindow:   viper.GetInt("site.praise-window"),
		MaxUploadBytes: viper.GetInt64("site.max-upload-bytes"),
	}
	if siteConfig.MaxUploadBytes <= 0 {
		siteConfig.MaxUploadBytes = config.DefaultMaxUploadBytes
	}

	th, err := theme.ByVariant(theme.Variant(siteConfig.Variant))
	if err != nil {
		logger.Sugar().Panicf("failed to resolve site variant: %s", err.Error())
	}
	if viper.IsSet("site.require-attachment") {
		th.Policy.RequireAttachment = viper.GetBool("site.require-attachment")
	}
	if viper.IsSet("site.require-agreement") {
		th.Policy.RequireAgreement = viper.GetBool("site.require-agreement")
	}

	store := feed.New(siteConfig.PraiseWindow)
	client := backend.New(logger, backendOrigin)
	rewriter := mediaurl.New(siteConfig.PublicOrigin)

	services := service.New(logger, client, store, th.Policy)
	handlers := handler.New(logger, services, store, rewriter, th, siteConfig, backendURL)

	srv := server.New()
	serverConfig := config.ServerConfig{
		Port:           viper.GetString("app.port"),
		Handler:        handlers.InitRoutes(),
		MaxHeaderBytes: 1 << 20,
		ReadTimeout:    time.Second * 30,
		WriteTimeout:   time.Second * 30,
	}
	go func() {
		if err := srv.Run(serverConfig); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Panicf("failed to run http server: %s", err.Error())
		}
	}()

	// the mount-time fetches; failures surface through the feed state
	go services.RefreshAll(ctx)

	logger.Sugar().Infof("Gateway started for variant %q against backend %s", siteConfig.Variant, backendOrigin)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)
	<-quit

	logger.Info("Gateway shutting down")

	shutdownCtx, cancel := context.WithTimeout(ctx, time.Second*10)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Sugar().Errorf("failed to shut down gracefully: %s", err.Error())
	}
}

func loadEnv() error {
	return godotenv.Load()
}

func initConfig() error {
	viper.AddConfigPath(".")
	viper.SetConfigType("yaml")
	viper.SetConfigName("app")
	return viper.ReadInConfig()
}
