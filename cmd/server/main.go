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

	"tpb/internal/auth/store/session"
	"tpb/internal/auth/token"
	"tpb/internal/civic/events"
	"tpb/internal/civic/representatives"
	"tpb/internal/civic/store/location"
	"tpb/internal/civic/store/official"
	"tpb/internal/civic/store/thought"
	"tpb/internal/civic/store/user"
	"tpb/internal/clerk/executor"
	clerkhandler "tpb/internal/clerk/handler"
	"tpb/internal/clerk/lookup"
	clerkmetrics "tpb/internal/clerk/metrics"
	"tpb/internal/clerk/model"
	"tpb/internal/clerk/service"
	"tpb/internal/clerk/store/persona"
	"tpb/internal/clerk/usercontext"
	"tpb/internal/platform/config"
	"tpb/internal/platform/httpserver"
	"tpb/internal/platform/logger"
	"tpb/internal/platform/metrics"
	"tpb/internal/platform/postgres"
	"tpb/internal/platform/redis"
	ratelimit "tpb/internal/ratelimit/middleware"
	"tpb/internal/ratelimit/store/bucket"
	httptransport "tpb/internal/transport/http"
)

const (
	tokenIssuer   = "tpb"
	tokenAudience = "tpb-api"
)

// main wires dependencies and keeps the server lifecycle small. Business logic
// lives in the internal service packages.
func main() {
	cfg := config.FromEnv()
	log := logger.New(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Error("server stopped with error", "error", err)
		os.Exit(1)
	}
}

type userStore interface {
	service.UserFinder
	executor.UserTownUpdater
}

type townStore interface {
	usercontext.TownFinder
	executor.TownFinder
}

type thoughtStore interface {
	executor.ThoughtStore
	lookup.ThoughtLister
}

// stores groups the backends chosen at startup.
type stores struct {
	users     userStore
	towns     townStore
	officials representatives.OfficialStore
	thoughts  thoughtStore
	personas  persona.Store
}

func run(ctx context.Context, cfg config.Server, log *slog.Logger) error {
	db, err := postgres.Open(ctx, cfg.Database)
	if err != nil {
		return err
	}
	if db != nil {
		defer db.Close()
		if cfg.Database.AutoMigrate {
			if err := postgres.RunMigrations(ctx, db); err != nil {
				return err
			}
		}
	} else {
		log.Warn("DATABASE_URL not set, using in-memory stores")
	}

	rdb, err := redis.New(ctx, cfg.Redis)
	if err != nil {
		return err
	}
	if rdb != nil {
		defer rdb.Close()
	}

	st := buildStores(db)
	if rdb != nil {
		st.personas = persona.NewRedisCache(st.personas, rdb.Client, cfg.Clerk.PersonaCacheTTL, log)
	}
	if cfg.Clerk.PersonasFile != "" {
		defs, err := persona.LoadFile(cfg.Clerk.PersonasFile)
		if err != nil {
			return err
		}
		if err := persona.Seed(ctx, st.personas, defs); err != nil {
			return err
		}
		log.Info("seeded clerk personas", "count", len(defs))
	}

	publisher, workerDone, err := startEvents(ctx, cfg.Kafka, log)
	if err != nil {
		return err
	}

	invoker, err := model.FromConfig(ctx, cfg.Clerk)
	if err != nil {
		return err
	}

	clerkMetrics := clerkmetrics.New()
	resolver, err := representatives.New(st.officials,
		representatives.WithLogger(log),
		representatives.WithTimeout(cfg.Clerk.StoreTimeout),
	)
	if err != nil {
		return err
	}
	assembler, err := usercontext.New(st.towns, resolver, usercontext.WithLogger(log))
	if err != nil {
		return err
	}
	contextLookup, err := lookup.New(st.towns, st.thoughts, lookup.WithLogger(log))
	if err != nil {
		return err
	}
	execOpts := []executor.Option{
		executor.WithLogger(log),
		executor.WithMetrics(clerkMetrics),
		executor.WithStoreTimeout(cfg.Clerk.StoreTimeout),
	}
	if publisher != nil {
		execOpts = append(execOpts, executor.WithEmitter(publisher))
	}
	exec, err := executor.New(st.thoughts, st.towns, st.users, execOpts...)
	if err != nil {
		return err
	}
	clerk, err := service.New(st.personas, st.users, assembler, invoker, exec,
		service.WithLogger(log),
		service.WithMetrics(clerkMetrics),
		service.WithContextLookup(contextLookup),
		service.WithConfig(&service.Config{
			DefaultModel: cfg.Clerk.DefaultModel,
			MaxTokens:    cfg.Clerk.MaxTokens,
		}),
	)
	if err != nil {
		return err
	}

	var sessions session.Store = session.NewInMemory()
	var buckets ratelimit.BucketStore = bucket.NewInMemoryBucketStore()
	health := map[string]httptransport.HealthCheck{}
	if rdb != nil {
		sessions = session.NewRedis(rdb.Client)
		buckets = bucket.NewRedisStore(rdb.Client)
		health["redis"] = rdb.Health
	}
	limiter := ratelimit.New(buckets, cfg.Clerk.ChatRateLimit, cfg.Clerk.ChatRateWindow, log)
	if db != nil {
		health["postgres"] = db.PingContext
	}

	router := httptransport.NewRouter(httptransport.Deps{
		Logger:   log,
		Metrics:  metrics.New(),
		Tokens:   token.NewService(cfg.JWTSigningKey, tokenIssuer, tokenAudience),
		Sessions: sessions,
		Throttle: limiter.Handler,
		Health:   health,
		Modules:  []httptransport.Registrar{clerkhandler.New(clerk, log)},
	})

	srv := httpserver.New(cfg.Addr, router, cfg.Clerk.ModelTimeout)
	serveErr := make(chan error, 1)
	go func() {
		log.Info("starting tpb server", "addr", cfg.Addr, "provider", cfg.Clerk.Provider)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			return err
		}
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if workerDone != nil {
		<-workerDone
	}
	log.Info("server stopped")
	return nil
}

func buildStores(db *sql.DB) stores {
	if db == nil {
		return stores{
			users:     user.NewInMemory(),
			towns:     location.NewInMemory(),
			officials: official.NewInMemory(),
			thoughts:  thought.NewInMemory(),
			personas:  persona.NewInMemory(),
		}
	}
	return stores{
		users:     user.NewPostgres(db),
		towns:     location.NewPostgres(db),
		officials: official.NewPostgres(db),
		thoughts:  thought.NewPostgres(db),
		personas:  persona.NewPostgres(db),
	}
}

// startEvents runs the civic event worker until ctx ends. Without brokers
// nothing is published.
func startEvents(ctx context.Context, cfg config.KafkaConfig, log *slog.Logger) (*events.Publisher, <-chan struct{}, error) {
	if len(cfg.Brokers) == 0 {
		return nil, nil, nil
	}
	sink, err := events.NewKafkaSink(ctx, cfg.Brokers, cfg.Topic)
	if err != nil {
		return nil, nil, err
	}
	publisher := events.NewPublisher(events.WithPublisherLogger(log))
	worker := events.NewWorker(sink, publisher.Inbox(), log)

	done := make(chan struct{})
	go func() {
		defer close(done)
		defer sink.Close()
		if err := worker.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			log.Error("event worker stopped", "error", err)
		}
	}()
	return publisher, done, nil
}
