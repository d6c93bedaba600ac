package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/meghanshb/go-inventory-tracker.git/internal/config"
	"github.com/meghanshb/go-inventory-tracker.git/internal/events"
	"github.com/meghanshb/go-inventory-tracker.git/internal/httpx"
	"github.com/meghanshb/go-inventory-tracker.git/internal/inventory"
	"github.com/meghanshb/go-inventory-tracker.git/internal/logging"
	"github.com/meghanshb/go-inventory-tracker.git/internal/store"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	if err := logging.Init(cfg); err != nil {
		log.Fatalf("logger init: %v", err)
	}
	defer func() { _ = zap.L().Sync() }()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// persistence adapter: exactly one strategy active
	var (
		st      inventory.Store
		closeFn func()
	)
	switch cfg.StoreDriver {
	case "postgres":
		pg, err := store.ConnectPostgres(ctx, cfg.PostgresDSN)
		if err != nil {
			zap.S().Fatalf("postgres connect: %v", err)
		}
		st, closeFn = pg, pg.Close
	case "bolt":
		bs, err := store.OpenBolt(cfg.BoltPath)
		if err != nil {
			zap.S().Fatalf("bolt open: %v", err)
		}
		st, closeFn = bs, func() { _ = bs.Close() }
	default:
		zap.S().Fatalf("unknown STORE_DRIVER %q", cfg.StoreDriver)
	}
	defer closeFn()
	zap.S().Infof("store ready, driver=%s", cfg.StoreDriver)

	// Kafka producer, optional
	var (
		pub  inventory.Publisher
		prod *events.Producer
	)
	if len(cfg.KafkaBrokers) > 0 {
		prod = events.NewProducer(cfg.KafkaBrokers, 1024)
		prod.Start(ctx)
		pub = prod
		zap.S().Infof("event publishing enabled, brokers=%v", cfg.KafkaBrokers)
	}

	svc, err := inventory.NewService(st, pub, cfg.ServiceName)
	if err != nil {
		zap.S().Fatalf("service init: %v", err)
	}
	if err := svc.Load(ctx); err != nil {
		zap.S().Fatalf("load products: %v", err)
	}

	router := httpx.NewRouter()
	ph := &httpx.ProductsHandler{Service: svc}
	ph.Register(router)

	srv := &http.Server{Addr: cfg.HTTPAddr, Handler: router}

	// graceful shutdown
	go func() {
		zap.S().Infof("HTTP listening at %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zap.S().Fatalf("listen: %v", err)
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
	zap.S().Info("shutting down...")

	ctx2, cancel2 := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel2()
	_ = srv.Shutdown(ctx2)
	if prod != nil {
		prod.Close() // close inbox -> flush & close writer
		prod.WaitClosed()
	}
}
