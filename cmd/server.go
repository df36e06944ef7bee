package cmd

import (
	"context"
	"log/slog"
	"net/http"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/IliyanIlievPH/partner-management/api"
	"github.com/IliyanIlievPH/partner-management/infra"
	"github.com/IliyanIlievPH/partner-management/repositories"
	"github.com/IliyanIlievPH/partner-management/usecases"
	"github.com/IliyanIlievPH/partner-management/utils"

	"github.com/cockroachdb/errors"
)

func RunServer() error {
	apiConfig := api.Configuration{
		Env:                 utils.GetEnv("ENV", "development"),
		Port:                utils.GetRequiredEnv[string]("PORT"),
		AllowedOrigins:      splitNonEmpty(utils.GetEnv("ALLOWED_ORIGINS", "")),
		RequestLoggingLevel: utils.GetEnv("REQUEST_LOGGING_LEVEL", "all"),
		DefaultTimeout:      time.Duration(utils.GetEnv("DEFAULT_TIMEOUT_SECOND", 15)) * time.Second,
	}
	pgConfig := infra.PgConfig{
		ConnectionString: utils.GetEnv("PG_CONNECTION_STRING", ""),
		Database:         utils.GetEnv("PG_DATABASE", "partner_management"),
		Hostname:         utils.GetEnv("PG_HOSTNAME", ""),
		Password:         utils.GetEnv("PG_PASSWORD", ""),
		Port:             utils.GetEnv("PG_PORT", "5432"),
		User:             utils.GetEnv("PG_USER", ""),
		SslMode:          utils.GetEnv("PG_SSL_MODE", "prefer"),
	}
	customerProfileConfig := infra.CustomerProfileConfig{
		BaseUrl: utils.GetRequiredEnv[string]("CUSTOMER_PROFILE_BASE_URL"),
		ApiKey:  utils.GetEnv("CUSTOMER_PROFILE_API_KEY", ""),
		Timeout: time.Duration(utils.GetEnv("CUSTOMER_PROFILE_TIMEOUT_SECOND", 10)) * time.Second,
	}
	geocodingConfig := infra.GeocodingConfig{
		BaseUrl: utils.GetRequiredEnv[string]("GEOCODING_BASE_URL"),
		Timeout: time.Duration(utils.GetEnv("GEOCODING_TIMEOUT_SECOND", 10)) * time.Second,
	}

	logger := utils.NewLogger(utils.GetEnv("LOGGING_FORMAT", "text"))
	ctx := utils.StoreLoggerInContext(context.Background(), logger)

	pool, err := infra.NewPostgresConnectionPool(ctx, pgConfig.GetConnectionString())
	if err != nil {
		return errors.Wrap(err, "failed to create connection pool")
	}

	repos := repositories.NewRepositories(pool, customerProfileConfig, geocodingConfig)
	uc := usecases.NewUsecases(repos)

	router := api.InitRouterMiddlewares(ctx, apiConfig)
	server := api.NewServer(router, apiConfig, uc)

	notify, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.InfoContext(ctx, "starting server", slog.String("port", apiConfig.Port))
		err := server.ListenAndServe()
		if !errors.Is(err, http.ErrServerClosed) {
			logger.ErrorContext(ctx, "error while serving the app",
				slog.String("error", err.Error()))
		}
		logger.InfoContext(ctx, "server returned")
	}()

	<-notify.Done()
	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return errors.Wrap(err, "error while shutting down the server")
	}
	return nil
}

func splitNonEmpty(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
