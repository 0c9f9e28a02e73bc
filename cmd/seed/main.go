package main

import (
	"context"
	"database/sql"
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/Purvachakravarti/NaologicReflowProject/internal/config"
	"github.com/Purvachakravarti/NaologicReflowProject/internal/repository"
	"github.com/Purvachakravarti/NaologicReflowProject/internal/seed"

	_ "github.com/jackc/pgx/v5/stdlib"
)

func main() {
	var demo bool
	flag.BoolVar(&demo, "demo", true, "insert the demo work centers/work orders scenario")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("load config", "error", err)
		os.Exit(1)
	}

	dbpool, err := sql.Open("pgx", cfg.Database.DSN)
	if err != nil {
		logger.Error("open database pool", "error", err)
		os.Exit(1)
	}
	defer dbpool.Close()

	dbpool.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	dbpool.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	dbpool.SetConnMaxIdleTime(time.Duration(cfg.Database.MaxIdleTime) * time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Database.ConnectTimeout)*time.Second)
	defer cancel()
	if err := dbpool.PingContext(ctx); err != nil {
		logger.Error("ping database", "error", err)
		os.Exit(1)
	}

	repo := repository.NewRepository(cfg, dbpool)

	if !demo {
		logger.Info("nothing to do, pass -demo to insert the demo scenario")
		return
	}

	seed.SeedDemoScenario(repo, cfg.Seed.Operator.Password)
}
