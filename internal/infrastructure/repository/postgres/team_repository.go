package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/azajakins/lfl-stats/internal/domain/team"
	qb "github.com/azajakins/lfl-stats/internal/platform/querybuilder"
)

type TeamRepository struct {
	db *sqlx.DB
}

func NewTeamRepository(db *sqlx.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

func (r *TeamRepository) GetOrCreateByName(ctx context.Context, name string) (team.Team, error) {
	query, args, err := qb.Select("*").From("teams").
		Where(qb.Eq("name", name)).
		Limit(1).
		ToSQL()
	if err != nil {
		return team.Team{}, fmt.Errorf("build select team by name query: %w", err)
	}

	var row teamTableModel
	err = r.db.GetContext(ctx, &row, query, args...)
	switch {
	case err == nil:
		return row.toDomain(), nil
	case !isNotFound(err):
		return team.Team{}, fmt.Errorf("select team by name: %w", err)
	}

	insertQuery, insertArgs, err := qb.InsertInto("teams").
		Columns("name").
		Values(name).
		Suffix("RETURNING id").
		ToSQL()
	if err != nil {
		return team.Team{}, fmt.Errorf("build insert team query: %w", err)
	}

	created := team.Team{Name: name}
	if err := r.db.GetContext(ctx, &created.ID, insertQuery, insertArgs...); err != nil {
		return team.Team{}, fmt.Errorf("insert team: %w", err)
	}

	return created, nil
}

func (r *TeamRepository) List(ctx context.Context) ([]team.Team, error) {
	query, args, err := qb.Select("*").From("teams").OrderBy("id").ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list teams query: %w", err)
	}

	var rows []teamTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}

	out := make([]team.Team, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}

	return out, nil
}

func (r *TeamRepository) Update(ctx context.Context, item team.Team) error {
	if err := item.Validate(); err != nil {
		return err
	}

	query, args, err := qb.Update("teams").
		Set("games", item.Games).
		Set("wins", item.Wins).
		Set("losses", item.Losses).
		Set("overtime_wins", item.OvertimeWins).
		Set("overtime_losses", item.OvertimeLosses).
		Set("points", item.Points).
		Set("goals_for", item.GoalsFor).
		Set("goals_against", item.GoalsAgainst).
		Set("attendance_sum", item.AttendanceSum).
		Where(qb.Eq("id", item.ID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update team query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("update team: %w", err)
	}

	return nil
}
