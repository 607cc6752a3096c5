// Package app wires repositories and services for the CLI entry point.
package app

import (
	"context"
	"fmt"

	"github.com/azajakins/lfl-stats/internal/config"
	"github.com/azajakins/lfl-stats/internal/domain/matchhistory"
	"github.com/azajakins/lfl-stats/internal/domain/player"
	"github.com/azajakins/lfl-stats/internal/domain/team"
	"github.com/azajakins/lfl-stats/internal/infrastructure/parser/matchxml"
	"github.com/azajakins/lfl-stats/internal/infrastructure/repository/memory"
	"github.com/azajakins/lfl-stats/internal/infrastructure/repository/postgres"
	"github.com/azajakins/lfl-stats/internal/platform/logging"
	"github.com/azajakins/lfl-stats/internal/usecase"
)

// App bundles the wired services and owns the storage handle.
type App struct {
	Ingestion *usecase.IngestionService
	Ranking   *usecase.RankingService

	closers []func() error
}

// New builds the application. With DB_URL set the aggregates persist
// to postgres, otherwise everything lives in process memory (useful
// for tests and dry runs, gone on exit).
func New(ctx context.Context, cfg config.Config, log *logging.Logger) (*App, error) {
	app := &App{}

	var (
		teamRepo    team.Repository
		playerRepo  player.Repository
		historyRepo matchhistory.Repository
	)

	if cfg.DBURL != "" {
		db, err := postgres.Open(ctx, cfg.DBURL)
		if err != nil {
			return nil, fmt.Errorf("connect storage: %w", err)
		}
		app.closers = append(app.closers, db.Close)

		teamRepo = postgres.NewTeamRepository(db)
		playerRepo = postgres.NewPlayerRepository(db)
		historyRepo = postgres.NewMatchHistoryRepository(db)
		log.Info("using postgres storage")
	} else {
		teamRepo = memory.NewTeamRepository()
		playerRepo = memory.NewPlayerRepository()
		historyRepo = memory.NewMatchHistoryRepository()
		log.Warn("DB_URL not set, aggregates are kept in memory only")
	}

	aggregation := usecase.NewAggregationService(teamRepo, playerRepo, historyRepo, log)

	app.Ingestion = usecase.NewIngestionService(matchxml.NewParser(), aggregation, cfg.IngestWorkers, log)
	app.Ranking = usecase.NewRankingService(teamRepo, playerRepo)

	return app, nil
}

func (a *App) Close() error {
	var firstErr error
	for _, closeFn := range a.closers {
		if err := closeFn(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
