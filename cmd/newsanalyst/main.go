package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"NewsAnalyst/internal/app"
	"NewsAnalyst/internal/config"
	"NewsAnalyst/internal/infrastructure/scheduler"
	"NewsAnalyst/internal/logging"
	"NewsAnalyst/internal/usecase"
)

func main() {
	set := flag.String("set", "default", "named source set from configuration")
	query := flag.String("query", "", "free-text label describing the analysis intent")
	pdfPath := flag.String("pdf", "", "optional path for the rendered PDF report")
	interval := flag.Duration("interval", 0, "optional re-run interval (watch mode)")
	flag.Parse()

	_ = godotenv.Load()

	cfg := config.Load()
	logger := logging.New(cfg.Logging.Level)
	ctx := context.Background()

	application, err := app.New(ctx, cfg, logger, *pdfPath)
	if err != nil {
		logger.Error("startup failed", "error", err)
		os.Exit(1)
	}

	sources := cfg.Sources(*set)
	run := func(time.Time) {
		state := application.Run(ctx, *query, sources)
		printRun(state)
	}

	if *interval > 0 {
		watchCtx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
		defer cancel()

		driver := scheduler.NewIntervalScheduler(*interval)
		if err := driver.Start(watchCtx, run); err != nil {
			logger.Error("scheduler failed", "error", err)
			os.Exit(1)
		}
		<-watchCtx.Done()
		_ = driver.Stop(ctx)
		return
	}

	run(time.Now())
}

// printRun writes the report first, then run statistics, then errors as a
// separate trailing section so diagnostics never obscure the report.
func printRun(state usecase.State) {
	fmt.Println("==================================================")
	fmt.Println("NEWS ANALYSIS REPORT")
	if state.Query != "" {
		fmt.Printf("Query: %s\n", state.Query)
	}
	fmt.Println("==================================================")
	fmt.Println()
	fmt.Println(state.FinalReport)
	fmt.Println()

	stats := state.Stats()
	fmt.Printf("Run statistics: gathered=%d cleaned=%d scored=%d extracted=%d errors=%d\n",
		stats.Gathered, stats.Cleaned, stats.Scored, stats.Extracted, stats.Errors)

	if len(state.Errors) > 0 {
		fmt.Println()
		fmt.Println("Errors:")
		for _, e := range state.Errors {
			fmt.Printf("  - %s\n", e)
		}
	}
}
