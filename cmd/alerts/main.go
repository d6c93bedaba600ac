package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/meghanshb/go-inventory-tracker.git/internal/alerts"
	"github.com/meghanshb/go-inventory-tracker.git/internal/config"
	"github.com/meghanshb/go-inventory-tracker.git/internal/events"
	"github.com/meghanshb/go-inventory-tracker.git/internal/inventory"
	"github.com/meghanshb/go-inventory-tracker.git/internal/logging"
	"github.com/meghanshb/go-inventory-tracker.git/internal/redisx"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	if err := logging.Init(cfg); err != nil {
		log.Fatalf("logger init: %v", err)
	}
	defer func() { _ = zap.L().Sync() }()

	if len(cfg.KafkaBrokers) == 0 {
		zap.S().Fatal("KAFKA_BROKERS must be set for the alerts worker")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	rdb := redisx.New(cfg.RedisAddr)
	defer rdb.Close()

	svc := &alerts.Service{
		Redis:       rdb,
		ServiceName: cfg.ServiceName + "-alerts",
	}

	group := getenv("ALERTS_GROUP", "inventory-alerts")
	workers := mustAtoi(os.Getenv("ALERTS_WORKERS"), "4")
	cons := events.NewConsumer(cfg.KafkaBrokers, group, inventory.TopicSaleRecorded, workers)

	go func() {
		zap.S().Infof("alerts consumer started: group=%s topic=%s workers=%d",
			group, inventory.TopicSaleRecorded, workers)
		if err := cons.Start(ctx, svc.HandleSaleRecorded); err != nil {
			zap.S().Errorf("consumer exit: %v", err)
			cancel()
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
	zap.S().Info("shutting down alerts worker...")
	cancel()
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func mustAtoi(s, def string) int {
	if s == "" {
		s = def
	}
	i, err := strconv.Atoi(s)
	if err != nil {
		return 1
	}
	return i
}
