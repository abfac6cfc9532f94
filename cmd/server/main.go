package main

import (
	"context"
	"database/sql"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/gymops/memberpulse/ent"
	"github.com/gymops/memberpulse/internal/alertfeed"
	"github.com/gymops/memberpulse/internal/alerting"
	"github.com/gymops/memberpulse/internal/config"
	"github.com/gymops/memberpulse/internal/evaluation"
	"github.com/gymops/memberpulse/internal/eventbus"
	"github.com/gymops/memberpulse/internal/records"
	"github.com/gymops/memberpulse/internal/risk"
	"github.com/gymops/memberpulse/internal/scoring"
	"github.com/gymops/memberpulse/internal/seed"
	"github.com/gymops/memberpulse/internal/server"
	"github.com/gymops/memberpulse/internal/worker"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	_ "github.com/gymops/memberpulse/ent/runtime"
	_ "modernc.org/sqlite"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.LoadEnv()
	if err != nil {
		log.Fatalf("loading configuration: %v", err)
	}

	db, err := sql.Open("sqlite", cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("opening database: %v", err)
	}
	db.SetMaxOpenConns(1)

	// Enable foreign keys explicitly — required for SQLite.
	if _, err := db.ExecContext(ctx, "PRAGMA foreign_keys = ON"); err != nil {
		log.Fatalf("enabling foreign keys: %v", err)
	}

	drv := entsql.OpenDB(dialect.SQLite, db)
	client := ent.NewClient(ent.Driver(drv))
	defer client.Close()

	if err := client.Schema.Create(ctx); err != nil {
		log.Fatalf("running schema migration: %v", err)
	}
	log.Println("database migrated successfully")

	store := records.NewEntStore(client)

	policies, err := config.NewPolicyLoader(cfg.PolicyPath)
	if err != nil {
		log.Fatalf("loading retention policy: %v", err)
	}
	if cfg.PolicyPath != "" {
		stopWatch, err := policies.Watch()
		if err != nil {
			log.Fatalf("watching policy file: %v", err)
		}
		defer stopWatch()
	}

	bus := eventbus.New(256)
	bus.Subscribe("log", eventbus.NewLogConsumer())
	feed := alertfeed.NewHub()
	bus.Subscribe("alertfeed", feed)
	bus.Start(ctx)
	defer bus.Stop()

	var scorer scoring.Scorer = scoring.Unconfigured{}
	if cfg.ScorerURL != "" {
		scorer = scoring.NewHTTPScorer(cfg.ScorerURL)
	} else {
		log.Println("SCORER_URL not set, risk scoring will report prediction unavailable")
	}

	assessor := risk.NewAssessor(store, scorer, policies.Policy, bus)
	generator := alerting.NewGenerator(store, policies.Policy, bus)
	evaluator := evaluation.NewEvaluator(store, bus)

	if cfg.SeedDemo {
		if err := seed.Demo(ctx, store, time.Now().UTC()); err != nil {
			log.Fatalf("seeding demo data: %v", err)
		}
	}

	if cfg.ScanInterval > 0 {
		go worker.NewScanWorker(generator, cfg.ScanInterval).Run(ctx)
	}

	if err := server.Run(ctx, server.Config{
		Port:      cfg.Port,
		Store:     store,
		Assessor:  assessor,
		Generator: generator,
		Evaluator: evaluator,
		Feed:      feed,
		Bus:       bus,
		Policy:    policies.Policy,
	}); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
