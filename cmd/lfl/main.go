package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/azajakins/lfl-stats/internal/app"
	"github.com/azajakins/lfl-stats/internal/config"
	"github.com/azajakins/lfl-stats/internal/interfaces/report"
	"github.com/azajakins/lfl-stats/internal/platform/logging"
	"github.com/azajakins/lfl-stats/internal/usecase"
)

func main() {
	singleFile := flag.String("single", "", "process a single match XML file")
	dir := flag.String("dir", "", "process every XML file in a directory")
	generate := flag.String("generate", "", "write the leaderboard report to the given file")
	maxPlayers := flag.Int("max-players", 0, "truncate player tables after N rows, 0 keeps all")
	format := flag.String("format", "html", "report format: html or json")
	flag.Parse()

	if *singleFile == "" && *dir == "" && *generate == "" {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "load config:", err)
		os.Exit(1)
	}

	logger := logging.NewJSON(cfg.LogLevel)
	defer func() {
		_ = logger.Sync()
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	application, err := app.New(ctx, cfg, logger)
	if err != nil {
		logger.Error("build app", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := application.Close(); err != nil {
			logger.Error("close app", "error", err)
		}
	}()

	if err := run(ctx, application, cfg, logger, *singleFile, *dir, *generate, *maxPlayers, *format); err != nil {
		logger.Error("run failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, application *app.App, cfg config.Config, logger *logging.Logger,
	singleFile, dir, generate string, maxPlayers int, format string) error {

	if singleFile != "" {
		if err := application.Ingestion.ProcessFile(ctx, singleFile); err != nil {
			return err
		}
	}

	if dir != "" {
		result, err := application.Ingestion.ProcessDir(ctx, dir)
		if err != nil {
			return err
		}
		if result.Failed > 0 {
			logger.Warn("some match files failed", "failed", result.Failed)
		}
	}

	if generate != "" {
		limit := maxPlayers
		if limit == 0 {
			limit = cfg.ReportMaxPlayers
		}

		start := time.Now()
		boards, err := application.Ranking.Leaderboards(ctx, limit)
		if err != nil {
			return err
		}

		out, err := os.Create(generate)
		if err != nil {
			return fmt.Errorf("create report file: %w", err)
		}
		defer func() {
			_ = out.Close()
		}()

		if err := renderReport(out, boards, format); err != nil {
			return err
		}

		logger.Info("report generated", "file", generate, "format", format,
			"duration_ms", time.Since(start).Milliseconds())
	}

	return nil
}

func renderReport(out *os.File, boards usecase.Leaderboards, format string) error {
	switch format {
	case "html":
		return report.RenderHTML(out, boards)
	case "json":
		return report.RenderJSON(out, boards)
	default:
		return fmt.Errorf("unknown report format %q: valid values are html, json", format)
	}
}
