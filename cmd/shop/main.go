package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"

	"github.com/example/shop-order-service/internal/accounts"
	"github.com/example/shop-order-service/internal/adapter/cli"
	"github.com/example/shop-order-service/internal/adapter/httpapi"
	"github.com/example/shop-order-service/internal/adapter/natsstan"
	"github.com/example/shop-order-service/internal/adapter/repo"
	"github.com/example/shop-order-service/internal/catalog"
	"github.com/example/shop-order-service/internal/config"
	"github.com/example/shop-order-service/internal/domain"
	"github.com/example/shop-order-service/internal/ledger"
	"github.com/example/shop-order-service/internal/seed"
	"github.com/example/shop-order-service/internal/usecase"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cat := catalog.NewMemory()
	led := ledger.NewMemory()
	acc := accounts.NewMemory()

	var store domain.StateStore
	if cfg.DatabaseDSN != "" {
		if strings.HasPrefix(cfg.DatabaseDSN, "postgres://") || strings.HasPrefix(cfg.DatabaseDSN, "postgresql://") {
			pool, err := pgxpool.New(ctx, cfg.DatabaseDSN)
			if err != nil {
				log.Fatalf("db connect: %v", err)
			}
			defer pool.Close()
			if err := repo.EnsureSchema(ctx, pool); err != nil {
				log.Fatalf("init schema: %v", err)
			}
			store = repo.NewPostgresStore(pool)
		} else {
			st, err := repo.OpenSQLite(ctx, cfg.DatabaseDSN)
			if err != nil {
				log.Fatalf("db open: %v", err)
			}
			defer st.Close()
			store = st
		}
		load := usecase.LoadState{Accounts: acc, Catalog: cat, Store: store}
		if err := load.Execute(ctx); err != nil {
			log.Fatalf("load state: %v", err)
		}
	}

	shops := seed.Default()
	if cfg.SeedFile != "" {
		var err error
		shops, err = seed.Load(cfg.SeedFile)
		if err != nil {
			log.Fatalf("seed: %v", err)
		}
	}
	if err := seed.Apply(ctx, shops, usecase.AddStock{Catalog: cat, Store: store}, cat); err != nil {
		log.Fatalf("seed: %v", err)
	}

	var events domain.EventPublisher
	if cfg.NatsURL != "" {
		pub, err := natsstan.Connect(cfg.StanClusterID, cfg.StanClientID, cfg.NatsURL, cfg.StanSubject)
		if err != nil {
			// events are best-effort, run without them
			log.Printf("stan connect: %v", err)
		} else {
			defer pub.Close()
			events = pub
		}
	}

	if cfg.HTTPAddr != "" {
		srv := &http.Server{Addr: cfg.HTTPAddr, Handler: httpapi.NewServer(cat, led).Router}
		go func() {
			log.Printf("storefront listening on %s", cfg.HTTPAddr)
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				log.Fatalf("http: %v", err)
			}
		}()
		defer func() {
			shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancelShutdown()
			_ = srv.Shutdown(shutdownCtx)
		}()
	}

	app := cli.New(os.Stdin, os.Stdout, acc, cat, led, store, events, cfg.DeliveryPacing)
	app.Run(ctx)
}
