package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/quickalba/job-board-system/internal/api"
	"github.com/quickalba/job-board-system/internal/core/domain"
	"github.com/quickalba/job-board-system/internal/core/service"
	"github.com/quickalba/job-board-system/internal/infrastructure/db/memory"
	mongostore "github.com/quickalba/job-board-system/internal/infrastructure/db/mongo"
	redisstore "github.com/quickalba/job-board-system/internal/infrastructure/db/redis"
	"github.com/quickalba/job-board-system/internal/infrastructure/queue"
	"github.com/quickalba/job-board-system/internal/pkg/config"
	"github.com/quickalba/job-board-system/pkg/logger"
)

func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// --- Storage ---
	mongoClient, db, err := mongostore.Connect(ctx, mongostore.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = mongoClient.Disconnect(shutdownCtx)
	}()

	rdb, err := redisstore.Connect(ctx, redisstore.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() { _ = rdb.Close() }()

	jobRepo := mongostore.NewJobRepository(db)
	authRepo := mongostore.NewAuthRepository(db)
	appRepo := mongostore.NewApplicationRepository(db)

	for name, ensure := range map[string]func(context.Context) error{
		"job_postings": jobRepo.EnsureIndexes,
		"users":        authRepo.EnsureIndexes,
		"applications": appRepo.EnsureIndexes,
	} {
		if err := ensure(ctx); err != nil {
			log.Fatal().Err(err).Str("collection", name).Msg("index creation failed")
		}
	}

	if err := seed(ctx, jobRepo, authRepo); err != nil {
		log.Fatal().Err(err).Msg("seeding failed")
	}

	// --- Application intake pipeline ---
	appService := service.NewApplicationService(jobRepo, appRepo, redisstore.NewDedupChecker(rdb), log)
	dispatcher := queue.NewDispatcher(cfg.Workers, appService, log)
	dispatcher.Start(ctx)

	// --- HTTP ---
	e := api.NewRouter(db, rdb, dispatcher, memory.SeedCatalog(), log, api.Config{
		JWTSecret: cfg.JWTSecret,
		TokenTTL:  cfg.TokenTTL,
	})

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()
	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("job board API started")

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
	log.Info().Msg("shutdown complete")
}

// seed loads the canonical posting corpus and the demo accounts when their
// collections are empty, so a fresh environment always serves data.
func seed(ctx context.Context, jobs *mongostore.JobRepository, users *mongostore.AuthRepository) error {
	log := logger.Get()

	count, err := jobs.Count(ctx)
	if err != nil {
		return err
	}
	if count == 0 {
		corpus := memory.SeedJobs()
		if err := jobs.InsertMany(ctx, corpus); err != nil {
			return err
		}
		log.Info().Int("postings", len(corpus)).Msg("seeded posting corpus")
	}

	for _, acc := range memory.SeedAccounts() {
		if _, err := users.FindByEmail(ctx, acc.Email); err == nil {
			continue
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(acc.Password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		now := time.Now().UTC()
		if _, err := users.Create(ctx, &domain.User{
			Email:        acc.Email,
			Name:         acc.Name,
			PasswordHash: string(hash),
			Role:         acc.Role,
			CreatedAt:    now,
			UpdatedAt:    now,
		}); err != nil && err != domain.ErrUserExists {
			return err
		}
		log.Info().Str("email", acc.Email).Str("role", acc.Role).Msg("seeded account")
	}
	return nil
}
