package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	httpapi "cafe-api/cafe-svc/internal/api/http"
	"cafe-api/cafe-svc/internal/service"
	"cafe-api/cafe-svc/internal/storage"
	"cafe-api/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}
	if cfg.APIKey == "" {
		log.Fatal("CAFE_API_KEY must be set")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db := config.MustInitPostgres(cfg)
	defer db.Close()

	repo := storage.NewPostgresRepository(db)
	if err := repo.EnsureSchema(ctx); err != nil {
		log.Fatal("Failed to ensure schema:", err)
	}

	var cache service.CafeCache
	if rdb := config.MustInitRedis(cfg); rdb != nil {
		defer rdb.Close()
		cache = storage.NewRedisCache(rdb, cfg.CacheTTL)
	} else {
		log.Println("REDIS_ADDR not set, cafe list cache and location stats disabled")
	}

	var publisher service.EventPublisher
	if writer := config.NewKafkaWriter(cfg); writer != nil {
		defer writer.Close()
		publisher = storage.NewKafkaPublisher(writer)
	} else {
		log.Println("KAFKA_BROKER not set, cafe events disabled")
	}

	svc := service.NewCafeService(repo, cache, publisher, service.DefaultQRGenerator{Size: cfg.QRSize}, cfg.APIKey)
	handler := httpapi.NewRouter(httpapi.NewHandler(svc))

	if err := httpapi.StartServer(ctx, cfg.HTTPAddr, handler); err != nil {
		log.Fatal(err)
	}
}
