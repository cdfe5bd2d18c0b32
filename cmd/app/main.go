package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/astralvoyages/spacebooking/config"
	"github.com/astralvoyages/spacebooking/internal/bootstrap"
	"github.com/astralvoyages/spacebooking/internal/kafka"
	"github.com/astralvoyages/spacebooking/internal/repository"
	"github.com/astralvoyages/spacebooking/internal/service/booking"
	"github.com/astralvoyages/spacebooking/internal/service/catalog"
	"github.com/astralvoyages/spacebooking/internal/storage"
	"github.com/jackc/pgx/v5/pgxpool"
)

func main() {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var store storage.Store
	var catalogCache catalog.Cache

	switch cfg.Storage.Backend {
	case "postgres":
		pool, err := pgxpool.New(ctx, cfg.Database.DSN())
		if err != nil {
			log.Fatalf("connect postgres: %v", err)
		}
		defer pool.Close()
		pgStore := storage.NewPGStore(pool)
		if err := pgStore.EnsureSchema(ctx); err != nil {
			log.Fatalf("ensure schema: %v", err)
		}
		store = pgStore
	case "memory":
		store = storage.NewMemoryStore()
	default:
		redisStore := storage.NewRedisStore(cfg.Redis, time.Duration(cfg.Catalog.CacheTTLSeconds)*time.Second)
		store = redisStore
		catalogCache = redisStore
	}

	producer := kafka.NewProducer(cfg.Kafka.Brokers)
	defer producer.Close()

	repo := repository.NewBookingRepository(store)
	catalogService := catalog.NewCatalogService(cfg.Catalog.Destinations, catalogCache)
	bookingService := booking.NewBookingService(
		repo,
		catalogService,
		producer,
		cfg.Kafka.BookingEventsTopic,
		booking.WithNotificationsTopic(cfg.Kafka.NotificationsTopic),
	)

	if err := bootstrap.Run(ctx, cfg, repo, bookingService, catalogService); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
