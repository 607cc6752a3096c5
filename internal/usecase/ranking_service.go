package usecase

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/panjf2000/ants/v2"

	"github.com/azajakins/lfl-stats/internal/domain/player"
	"github.com/azajakins/lfl-stats/internal/domain/team"
)

// RankingService derives the ranked leaderboard views from the full
// persisted team and player collections. It only reads.
type RankingService struct {
	teamRepo   team.Repository
	playerRepo player.Repository
}

func NewRankingService(teamRepo team.Repository, playerRepo player.Repository) *RankingService {
	return &RankingService{
		teamRepo:   teamRepo,
		playerRepo: playerRepo,
	}
}

// TeamRow is one standings entry with every derived field pre-computed.
type TeamRow struct {
	Name              string
	Games             int
	Wins              int
	Losses            int
	OvertimeWins      int
	OvertimeLosses    int
	GoalsFor          int
	GoalsAgainst      int
	GoalDifference    int
	Points            int
	AverageAttendance float64

	attendanceSum int
}

// PlayerRow is one player leaderboard entry with every derived field
// pre-computed.
type PlayerRow struct {
	Name                string
	Surname             string
	Number              int
	Team                string
	Role                player.Role
	Games               int
	Goals               int
	PenaltyGoals        int
	TotalGoals          int
	Assists             int
	Points              int
	SecondsOnField      int
	MinutesOnField      float64
	PointsPerHour       float64
	GoalsAgainst        int
	GoalsAgainstPerHour float64
}

// Leaderboards bundles the six ranked views.
type Leaderboards struct {
	TeamStandings   []TeamRow
	TopScorers      []PlayerRow
	MostValuable    []PlayerRow
	BestGoalkeepers []PlayerRow
	MostMinutes     []PlayerRow
	TeamPopularity  []TeamRow
}

// Leaderboards computes all six boards over the current collections.
// limit truncates player boards after sorting; zero or a limit beyond
// the collection size means no truncation. Team boards are never
// truncated.
func (s *RankingService) Leaderboards(ctx context.Context, limit int) (Leaderboards, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RankingService.Leaderboards")
	defer span.End()

	if limit < 0 {
		return Leaderboards{}, fmt.Errorf("%w: limit must not be negative", ErrInvalidInput)
	}

	teams, err := s.teamRepo.List(ctx)
	if err != nil {
		return Leaderboards{}, fmt.Errorf("list teams: %w", err)
	}
	players, err := s.playerRepo.List(ctx)
	if err != nil {
		return Leaderboards{}, fmt.Errorf("list players: %w", err)
	}

	teamNames := make(map[int64]string, len(teams))
	for _, t := range teams {
		teamNames[t.ID] = t.Name
	}

	teamRows := make([]TeamRow, 0, len(teams))
	for _, t := range teams {
		teamRows = append(teamRows, TeamRow{
			Name:              t.Name,
			Games:             t.Games,
			Wins:              t.Wins,
			Losses:            t.Losses,
			OvertimeWins:      t.OvertimeWins,
			OvertimeLosses:    t.OvertimeLosses,
			GoalsFor:          t.GoalsFor,
			GoalsAgainst:      t.GoalsAgainst,
			GoalDifference:    t.GoalDifference(),
			Points:            t.Points,
			AverageAttendance: t.AverageAttendance(),
			attendanceSum:     t.AttendanceSum,
		})
	}

	playerRows := make([]PlayerRow, 0, len(players))
	for _, p := range players {
		playerRows = append(playerRows, PlayerRow{
			Name:                p.Name,
			Surname:             p.Surname,
			Number:              p.Number,
			Team:                teamNames[p.TeamID],
			Role:                p.Role,
			Games:               p.Games,
			Goals:               p.Goals,
			PenaltyGoals:        p.PenaltyGoals,
			TotalGoals:          p.TotalGoals(),
			Assists:             p.Assists,
			Points:              p.Points(),
			SecondsOnField:      p.SecondsOnField,
			MinutesOnField:      p.MinutesOnField(),
			PointsPerHour:       p.PointsPerHour(),
			GoalsAgainst:        p.GoalsConceded,
			GoalsAgainstPerHour: p.GoalsAgainstPerHour(),
		})
	}

	var boards Leaderboards
	jobs := []func(){
		func() { boards.TeamStandings = sortTeamStandings(teamRows) },
		func() { boards.TeamPopularity = sortTeamPopularity(teamRows) },
		func() { boards.TopScorers = truncateRows(sortTopScorers(playerRows), limit) },
		func() { boards.MostValuable = truncateRows(sortMostValuable(playerRows), limit) },
		func() { boards.BestGoalkeepers = truncateRows(sortBestGoalkeepers(playerRows), limit) },
		func() { boards.MostMinutes = truncateRows(sortMostMinutes(playerRows), limit) },
	}

	pool, err := ants.NewPool(len(jobs))
	if err != nil {
		return Leaderboards{}, fmt.Errorf("create ranking pool: %w", err)
	}
	defer pool.Release()

	var wg sync.WaitGroup
	for _, job := range jobs {
		job := job
		wg.Add(1)
		if err := pool.Submit(func() {
			defer wg.Done()
			job()
		}); err != nil {
			wg.Done()
			return Leaderboards{}, fmt.Errorf("submit ranking job: %w", err)
		}
	}
	wg.Wait()

	return boards, nil
}

// Comparators below order descending unless stated otherwise. Sorts
// are stable so rows with equal keys keep their input order.

func sortTeamStandings(rows []TeamRow) []TeamRow {
	out := append([]TeamRow(nil), rows...)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Points != out[j].Points {
			return out[i].Points > out[j].Points
		}
		return out[i].GoalDifference > out[j].GoalDifference
	})
	return out
}

// sortTeamPopularity orders by average attendance, cross-multiplying
// attendance sums with game counts so no division is involved.
func sortTeamPopularity(rows []TeamRow) []TeamRow {
	out := append([]TeamRow(nil), rows...)
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Games == b.Games {
			return a.attendanceSum > b.attendanceSum
		}
		return int64(a.attendanceSum)*int64(b.Games) > int64(b.attendanceSum)*int64(a.Games)
	})
	return out
}

func sortTopScorers(rows []PlayerRow) []PlayerRow {
	out := append([]PlayerRow(nil), rows...)
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Points != b.Points {
			return a.Points > b.Points
		}
		if a.TotalGoals != b.TotalGoals {
			return a.TotalGoals > b.TotalGoals
		}
		return a.PointsPerHour > b.PointsPerHour
	})
	return out
}

func sortMostValuable(rows []PlayerRow) []PlayerRow {
	out := append([]PlayerRow(nil), rows...)
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.PointsPerHour != b.PointsPerHour {
			return a.PointsPerHour > b.PointsPerHour
		}
		return a.SecondsOnField > b.SecondsOnField
	})
	return out
}

// sortBestGoalkeepers keeps only goalkeepers and orders by conceded
// rate, ascending: fewer goals against per hour ranks first.
func sortBestGoalkeepers(rows []PlayerRow) []PlayerRow {
	out := make([]PlayerRow, 0, len(rows))
	for _, row := range rows {
		if row.Role == player.RoleGoalkeeper {
			out = append(out, row)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.GoalsAgainstPerHour != b.GoalsAgainstPerHour {
			return a.GoalsAgainstPerHour < b.GoalsAgainstPerHour
		}
		return a.SecondsOnField > b.SecondsOnField
	})
	return out
}

func sortMostMinutes(rows []PlayerRow) []PlayerRow {
	out := append([]PlayerRow(nil), rows...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].SecondsOnField > out[j].SecondsOnField
	})
	return out
}

func truncateRows(rows []PlayerRow, limit int) []PlayerRow {
	if limit <= 0 || limit >= len(rows) {
		return rows
	}
	return rows[:limit]
}
