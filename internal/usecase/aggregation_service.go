package usecase

import (
	"context"
	"fmt"

	"github.com/azajakins/lfl-stats/internal/domain/match"
	"github.com/azajakins/lfl-stats/internal/domain/matchhistory"
	"github.com/azajakins/lfl-stats/internal/domain/player"
	"github.com/azajakins/lfl-stats/internal/domain/team"
	"github.com/azajakins/lfl-stats/internal/platform/logging"
)

// AggregationService folds one match record into the season-long team
// and player aggregates. Matches are deduplicated by (team, date)
// history rows, so reprocessing an already-seen match is a no-op.
type AggregationService struct {
	teamRepo    team.Repository
	playerRepo  player.Repository
	historyRepo matchhistory.Repository
	log         *logging.Logger
}

func NewAggregationService(
	teamRepo team.Repository,
	playerRepo player.Repository,
	historyRepo matchhistory.Repository,
	log *logging.Logger,
) *AggregationService {
	if log == nil {
		log = logging.NewNop()
	}
	return &AggregationService{
		teamRepo:    teamRepo,
		playerRepo:  playerRepo,
		historyRepo: historyRepo,
		log:         log,
	}
}

// ProcessResult reports what one ProcessMatch call did. A skipped
// duplicate is a successful no-op, not an error.
type ProcessResult struct {
	Skipped  bool
	Overtime bool
	Length   int
	Home     string
	Away     string
}

// ProcessMatch applies one match to persisted state: outcome
// classification, team counters, card and goal folding, and per-player
// on-field time reconstruction. All player updates for one team commit
// as a single unit.
func (s *AggregationService) ProcessMatch(ctx context.Context, rec match.Record) (ProcessResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AggregationService.ProcessMatch")
	defer span.End()

	if err := rec.Validate(); err != nil {
		return ProcessResult{}, err
	}

	home, away := rec.Teams[0], rec.Teams[1]

	outcome, err := match.ClassifyOutcome(home.Goals, away.Goals)
	if err != nil {
		return ProcessResult{}, fmt.Errorf("classify outcome: %w", err)
	}

	homeTeam, err := s.teamRepo.GetOrCreateByName(ctx, home.Name)
	if err != nil {
		return ProcessResult{}, fmt.Errorf("resolve team %s: %w", home.Name, err)
	}
	awayTeam, err := s.teamRepo.GetOrCreateByName(ctx, away.Name)
	if err != nil {
		return ProcessResult{}, fmt.Errorf("resolve team %s: %w", away.Name, err)
	}

	result := ProcessResult{
		Overtime: outcome.Overtime,
		Length:   outcome.Length,
		Home:     homeTeam.Name,
		Away:     awayTeam.Name,
	}

	for _, t := range []team.Team{homeTeam, awayTeam} {
		seen, err := s.historyRepo.Exists(ctx, t.ID, rec.Date)
		if err != nil {
			return ProcessResult{}, fmt.Errorf("check match history for %s: %w", t.Name, err)
		}
		if seen {
			s.log.InfoContext(ctx, "match already processed, skipping",
				"home", homeTeam.Name, "away", awayTeam.Name, "date", rec.Date)
			result.Skipped = true
			return result, nil
		}
	}

	for _, t := range []team.Team{homeTeam, awayTeam} {
		if err := s.historyRepo.Insert(ctx, matchhistory.Record{TeamID: t.ID, Date: rec.Date}); err != nil {
			return ProcessResult{}, fmt.Errorf("record match history for %s: %w", t.Name, err)
		}
	}

	homeTeam.Games++
	awayTeam.Games++
	homeTeam.AttendanceSum += rec.Attendance
	awayTeam.AttendanceSum += rec.Attendance
	homeTeam.GoalsFor += len(home.Goals)
	homeTeam.GoalsAgainst += len(away.Goals)
	awayTeam.GoalsFor += len(away.Goals)
	awayTeam.GoalsAgainst += len(home.Goals)

	if outcome.HomeWon {
		outcome.Award(&homeTeam, &awayTeam)
	} else {
		outcome.Award(&awayTeam, &homeTeam)
	}

	if err := s.teamRepo.Update(ctx, homeTeam); err != nil {
		return ProcessResult{}, fmt.Errorf("update team %s: %w", homeTeam.Name, err)
	}
	if err := s.teamRepo.Update(ctx, awayTeam); err != nil {
		return ProcessResult{}, fmt.Errorf("update team %s: %w", awayTeam.Name, err)
	}

	if err := s.processTeamPlayers(ctx, homeTeam.ID, home, away, outcome.Length); err != nil {
		return ProcessResult{}, fmt.Errorf("process players of %s: %w", home.Name, err)
	}
	if err := s.processTeamPlayers(ctx, awayTeam.ID, away, home, outcome.Length); err != nil {
		return ProcessResult{}, fmt.Errorf("process players of %s: %w", away.Name, err)
	}

	s.log.InfoContext(ctx, "match aggregated",
		"home", homeTeam.Name, "away", awayTeam.Name, "date", rec.Date,
		"overtime", outcome.Overtime, "length_s", outcome.Length)

	return result, nil
}

// processTeamPlayers applies one team's match events to its player
// aggregates and commits them as a single unit.
func (s *AggregationService) processTeamPlayers(ctx context.Context, teamID int64, our, opponent match.TeamSheet, matchLength int) error {
	seeds := make([]player.Seed, 0, len(our.Roster))
	for _, entry := range our.Roster {
		seeds = append(seeds, player.Seed{
			Number:  entry.Number,
			Name:    entry.Name,
			Surname: entry.Surname,
			Role:    entry.Role,
		})
	}

	players, err := s.playerRepo.GetOrCreateRoster(ctx, teamID, seeds)
	if err != nil {
		return fmt.Errorf("resolve roster: %w", err)
	}

	// A second penalty for the same player in one match escalates the
	// earlier yellow into a single red.
	booked := make(map[int]struct{})
	for _, pen := range our.Penalties {
		p := players[pen.Number]
		if _, again := booked[pen.Number]; again {
			p.YellowCards--
			p.RedCards++
			delete(booked, pen.Number)
		} else {
			p.YellowCards++
			booked[pen.Number] = struct{}{}
		}
		players[pen.Number] = p
	}

	for _, goal := range our.Goals {
		scorer := players[goal.Number]
		if goal.OpenPlay {
			scorer.Goals++
		} else {
			scorer.PenaltyGoals++
		}
		players[goal.Number] = scorer

		for _, assist := range goal.Assists {
			helper := players[assist]
			helper.Assists++
			players[assist] = helper
		}
	}

	for _, entry := range our.Roster {
		playTime, err := our.PlayTime(entry.Number, entry.Role, opponent.Goals, matchLength)
		if err != nil {
			return err
		}

		p := players[entry.Number]
		if playTime.Played {
			p.Games++
			p.SecondsOnField += playTime.Seconds
		}
		p.GoalsConceded += playTime.GoalsConceded
		players[entry.Number] = p
	}

	updated := make([]player.Player, 0, len(our.Roster))
	for _, entry := range our.Roster {
		updated = append(updated, players[entry.Number])
	}

	if err := s.playerRepo.UpdateAll(ctx, updated); err != nil {
		return fmt.Errorf("persist roster: %w", err)
	}

	return nil
}
