package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/azajakins/lfl-stats/internal/domain/matchhistory"
	qb "github.com/azajakins/lfl-stats/internal/platform/querybuilder"
)

type MatchHistoryRepository struct {
	db *sqlx.DB
}

func NewMatchHistoryRepository(db *sqlx.DB) *MatchHistoryRepository {
	return &MatchHistoryRepository{db: db}
}

func (r *MatchHistoryRepository) Exists(ctx context.Context, teamID int64, date string) (bool, error) {
	query, args, err := qb.Select("id").From("match_history").
		Where(
			qb.Eq("team_id", teamID),
			qb.Eq("match_date", date),
		).
		Limit(1).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build select match history query: %w", err)
	}

	var id int64
	err = r.db.GetContext(ctx, &id, query, args...)
	switch {
	case err == nil:
		return true, nil
	case isNotFound(err):
		return false, nil
	default:
		return false, fmt.Errorf("select match history: %w", err)
	}
}

func (r *MatchHistoryRepository) Insert(ctx context.Context, item matchhistory.Record) error {
	query, args, err := qb.InsertInto("match_history").
		Columns("team_id", "match_date").
		Values(item.TeamID, item.Date).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build insert match history query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert match history: %w", err)
	}

	return nil
}
