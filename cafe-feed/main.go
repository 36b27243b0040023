package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"cafe-api/cafe-feed/internal/service"
	"cafe-api/cafe-feed/internal/storage"
	"cafe-api/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}
	if cfg.KafkaBroker == "" || cfg.RedisAddr == "" {
		log.Fatal("KAFKA_BROKER and REDIS_ADDR must be set")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db := config.MustInitPostgres(cfg)
	defer db.Close()

	rdb := config.MustInitRedis(cfg)
	defer rdb.Close()

	reader := config.NewKafkaReader(cfg)
	defer reader.Close()

	store := storage.NewStore(rdb)
	reconciler := service.NewReconciler(storage.NewLocationSource(db), store, cfg.ReconcileInterval)
	go reconciler.Run(ctx)

	consumer := service.NewConsumer(reader, store)
	consumer.Start(ctx)
}
