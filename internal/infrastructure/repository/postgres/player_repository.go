package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/azajakins/lfl-stats/internal/domain/player"
	qb "github.com/azajakins/lfl-stats/internal/platform/querybuilder"
)

type PlayerRepository struct {
	db *sqlx.DB
}

func NewPlayerRepository(db *sqlx.DB) *PlayerRepository {
	return &PlayerRepository{db: db}
}

func (r *PlayerRepository) GetOrCreateRoster(ctx context.Context, teamID int64, roster []player.Seed) (map[int]player.Player, error) {
	query, args, err := qb.Select("*").From("players").
		Where(qb.Eq("team_id", teamID)).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select players by team query: %w", err)
	}

	var rows []playerTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select players by team: %w", err)
	}

	out := make(map[int]player.Player, len(roster))
	for _, row := range rows {
		out[row.Number] = row.toDomain()
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx create roster players: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for _, seed := range roster {
		if _, ok := out[seed.Number]; ok {
			continue
		}

		created := player.Player{
			TeamID:  teamID,
			Number:  seed.Number,
			Name:    seed.Name,
			Surname: seed.Surname,
			Role:    seed.Role,
		}
		if err := created.Validate(); err != nil {
			return nil, err
		}

		insertQuery, insertArgs, err := qb.InsertInto("players").
			Columns("team_id", "number", "name", "surname", "role").
			Values(teamID, seed.Number, seed.Name, seed.Surname, string(seed.Role)).
			Suffix("RETURNING id").
			ToSQL()
		if err != nil {
			return nil, fmt.Errorf("build insert player query: %w", err)
		}
		if err := tx.GetContext(ctx, &created.ID, insertQuery, insertArgs...); err != nil {
			return nil, fmt.Errorf("insert player %d: %w", seed.Number, err)
		}

		out[seed.Number] = created
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit create roster players: %w", err)
	}

	return out, nil
}

func (r *PlayerRepository) List(ctx context.Context) ([]player.Player, error) {
	query, args, err := qb.Select("*").From("players").OrderBy("team_id", "number").ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list players query: %w", err)
	}

	var rows []playerTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}

	out := make([]player.Player, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}

	return out, nil
}

// UpdateAll persists one team's mutated player rows in a single
// transaction.
func (r *PlayerRepository) UpdateAll(ctx context.Context, items []player.Player) error {
	if len(items) == 0 {
		return nil
	}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx update players: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for _, item := range items {
		query, args, err := qb.Update("players").
			Set("games", item.Games).
			Set("seconds_on_field", item.SecondsOnField).
			Set("yellow_cards", item.YellowCards).
			Set("red_cards", item.RedCards).
			Set("goals", item.Goals).
			Set("assists", item.Assists).
			Set("penalty_goals", item.PenaltyGoals).
			Set("goals_conceded", item.GoalsConceded).
			Where(qb.Eq("id", item.ID)).
			ToSQL()
		if err != nil {
			return fmt.Errorf("build update player query: %w", err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("update player %d: %w", item.Number, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit update players: %w", err)
	}

	return nil
}
