package main

import (
	"context"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"

	"github.com/dmitrymomot/sessionkit/modules/auth"
	"github.com/dmitrymomot/sessionkit/pkg/gate"
	"github.com/dmitrymomot/sessionkit/pkg/httpserver"
	"github.com/dmitrymomot/sessionkit/pkg/logger"
	"github.com/dmitrymomot/sessionkit/pkg/pg"
	"github.com/dmitrymomot/sessionkit/pkg/redis"
	"github.com/dmitrymomot/sessionkit/pkg/session"
	"github.com/dmitrymomot/sessionkit/pkg/sessionstore"
	"github.com/dmitrymomot/sessionkit/pkg/signer"
)

type config struct {
	HTTP  httpserver.Config
	Redis redis.Config
	PG    pg.Config
}

func main() {
	_ = godotenv.Load()

	log := logger.New(logger.WithAttr(logger.Component("sessionkit")))
	logger.SetAsDefault(log)

	ctx := context.Background()

	authCfg, err := auth.LoadConfig()
	if err != nil {
		log.ErrorContext(ctx, "failed to load auth config", logger.Error(err))
		os.Exit(1)
	}

	var cfg config
	if err := env.Parse(&cfg); err != nil {
		log.ErrorContext(ctx, "failed to parse environment", logger.Error(err))
		os.Exit(1)
	}

	redisClient, err := redis.Connect(ctx, cfg.Redis)
	if err != nil {
		log.ErrorContext(ctx, "failed to connect to redis", logger.Error(err))
		os.Exit(1)
	}
	defer func() { _ = redisClient.Close() }()

	pool, err := pg.Connect(ctx, cfg.PG)
	if err != nil {
		log.ErrorContext(ctx, "failed to connect to postgres", logger.Error(err))
		os.Exit(1)
	}
	defer pool.Close()

	if err := pg.Migrate(ctx, pool, cfg.PG, log); err != nil {
		log.ErrorContext(ctx, "failed to apply migrations", logger.Error(err))
		os.Exit(1)
	}

	sig, err := signer.New(authCfg.Secret, signer.WithSalt(authCfg.TokenSalt))
	if err != nil {
		log.ErrorContext(ctx, "failed to create signer", logger.Error(err))
		os.Exit(1)
	}

	sessions, err := session.NewService(
		sessionstore.New(redisClient, sig),
		sig,
		authCfg.Session,
		session.WithLogger(log),
	)
	if err != nil {
		log.ErrorContext(ctx, "failed to create session service", logger.Error(err))
		os.Exit(1)
	}

	svc := auth.NewService(
		auth.NewPostgresUserStore(pool),
		signer.NewHasher(),
		sessions,
		auth.WithLogger(log),
	)

	r := chi.NewRouter()
	r.Get("/healthz", httpserver.HealthCheckHandler(ctx, log))
	r.Get("/readyz", httpserver.HealthCheckHandler(ctx, log,
		redis.Healthcheck(redisClient),
		pg.Healthcheck(pool),
	))
	r.Mount("/auth", auth.Router(svc, gate.New(sessions)))

	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
	if err := srv.Run(ctx, r); err != nil {
		log.ErrorContext(ctx, "server stopped", logger.Error(err))
		os.Exit(1)
	}
}
