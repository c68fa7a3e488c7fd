package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/hearthapp/hearth-api/internal/api"
	"github.com/hearthapp/hearth-api/internal/api/middleware"
	"github.com/hearthapp/hearth-api/internal/core/ports"
	"github.com/hearthapp/hearth-api/internal/core/service"
	mongodb "github.com/hearthapp/hearth-api/internal/infrastructure/db/mongo"
	redisdb "github.com/hearthapp/hearth-api/internal/infrastructure/db/redis"
	"github.com/hearthapp/hearth-api/internal/infrastructure/http/handlers"
	"github.com/hearthapp/hearth-api/internal/infrastructure/security"
	"github.com/hearthapp/hearth-api/internal/infrastructure/tracing"
	"github.com/hearthapp/hearth-api/internal/pkg/config"
	"github.com/hearthapp/hearth-api/pkg/logger"
)

const (
	shutdownTimeout = 15 * time.Second
	authBurst       = 5
)

func (a *app) serve(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := a.cfg
	log := logger.Component("server")

	shutdownTracing, err := tracing.Init("hearth", cfg.JaegerEndpoint)
	if err != nil {
		return err
	}

	client, db, err := a.connectMongo(ctx)
	if err != nil {
		return err
	}
	log.Info().Str("database", cfg.Mongo.Database).Msg("connected to mongodb")

	if err := mongodb.EnsureIndexes(ctx, db); err != nil {
		_ = mongodb.Disconnect(context.Background(), client)
		return err
	}

	checks := map[string]handlers.Check{"mongodb": handlers.MongoCheck(db)}

	var rdb *goredis.Client
	redisCfg := redisdb.Config{Addr: cfg.Redis.Addr, Password: cfg.Redis.Password, DB: cfg.Redis.DB}
	if redisCfg.Enabled() {
		rdb, err = redisdb.Connect(ctx, redisCfg)
		if err != nil {
			_ = mongodb.Disconnect(context.Background(), client)
			return err
		}
		checks["redis"] = handlers.RedisCheck(rdb)
		log.Info().Str("addr", redisCfg.Addr).Msg("connected to redis")
	}

	trusted, err := cfg.TrustedProxyRanges()
	if err != nil {
		return err
	}

	// --- Dependencies ---
	users := mongodb.NewUserRepository(db)
	accounts := service.NewAccountService(users, tokenIssuer(cfg), security.NewPasswordHasher(0), logger.Component("accounts"))

	router := api.NewRouter(api.Dependencies{
		Accounts:       accounts,
		Messages:       service.NewMessageService(mongodb.NewMessageRepository(db), users, logger.Component("messages")),
		Todos:          service.NewTodoService(mongodb.NewTodoRepository(db), logger.Component("todos")),
		Quotes:         service.NewQuoteService(mongodb.NewQuoteRepository(db), logger.Component("quotes")),
		AuthLimiter:    authLimiter(cfg, rdb),
		Checks:         checks,
		CORSOrigins:    cfg.CORSOrigins,
		TrustedProxies: trusted,
		Registerer:     prometheus.DefaultRegisterer,
		Gatherer:       prometheus.DefaultGatherer,
		Log:            logger.Component("http"),
	})

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.Port).Msg("listening")
		if err := router.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	var errs []error
	select {
	case <-ctx.Done():
		log.Info().Msg("shutting down")
	case err := <-errCh:
		if err != nil {
			log.Error().Err(err).Msg("server stopped")
			errs = append(errs, err)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := router.Shutdown(shutdownCtx); err != nil {
		errs = append(errs, err)
	}
	if err, ok := <-errCh; ok && err != nil {
		errs = append(errs, err)
	}
	if rdb != nil {
		if err := rdb.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	if err := mongodb.Disconnect(shutdownCtx, client); err != nil {
		errs = append(errs, err)
	}
	if err := shutdownTracing(shutdownCtx); err != nil {
		errs = append(errs, err)
	}

	logShutdown(log, errs)
	return errors.Join(errs...)
}

// tokenIssuer signs JWTs when a secret is configured and otherwise hands out
// raw user IDs, which is what existing clients expect.
func tokenIssuer(cfg *config.Config) ports.TokenIssuer {
	if cfg.JWTSecret != "" {
		return security.NewJWTTokens(cfg.JWTSecret, cfg.TokenTTL)
	}
	return security.IDTokens{}
}

// authLimiter returns nil when limiting is disabled.
func authLimiter(cfg *config.Config, rdb *goredis.Client) middleware.Limiter {
	switch {
	case cfg.AuthRatePerMinute <= 0:
		return nil
	case rdb != nil:
		return redisdb.NewWindowLimiter(rdb, cfg.AuthRatePerMinute, time.Minute)
	default:
		return middleware.NewMemoryLimiter(cfg.AuthRatePerMinute, authBurst)
	}
}

func logShutdown(log zerolog.Logger, errs []error) {
	if len(errs) == 0 {
		log.Info().Msg("shutdown complete")
		return
	}
	log.Error().Err(errors.Join(errs...)).Msg("shutdown finished with errors")
}
