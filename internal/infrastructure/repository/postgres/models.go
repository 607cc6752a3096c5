package postgres

import (
	"github.com/azajakins/lfl-stats/internal/domain/player"
	"github.com/azajakins/lfl-stats/internal/domain/team"
)

type teamTableModel struct {
	ID             int64  `db:"id"`
	Name           string `db:"name"`
	Games          int    `db:"games"`
	Wins           int    `db:"wins"`
	Losses         int    `db:"losses"`
	OvertimeWins   int    `db:"overtime_wins"`
	OvertimeLosses int    `db:"overtime_losses"`
	Points         int    `db:"points"`
	GoalsFor       int    `db:"goals_for"`
	GoalsAgainst   int    `db:"goals_against"`
	AttendanceSum  int    `db:"attendance_sum"`
}

func (m teamTableModel) toDomain() team.Team {
	return team.Team{
		ID:             m.ID,
		Name:           m.Name,
		Games:          m.Games,
		Wins:           m.Wins,
		Losses:         m.Losses,
		OvertimeWins:   m.OvertimeWins,
		OvertimeLosses: m.OvertimeLosses,
		Points:         m.Points,
		GoalsFor:       m.GoalsFor,
		GoalsAgainst:   m.GoalsAgainst,
		AttendanceSum:  m.AttendanceSum,
	}
}

type playerTableModel struct {
	ID             int64  `db:"id"`
	TeamID         int64  `db:"team_id"`
	Number         int    `db:"number"`
	Name           string `db:"name"`
	Surname        string `db:"surname"`
	Role           string `db:"role"`
	Games          int    `db:"games"`
	SecondsOnField int    `db:"seconds_on_field"`
	YellowCards    int    `db:"yellow_cards"`
	RedCards       int    `db:"red_cards"`
	Goals          int    `db:"goals"`
	Assists        int    `db:"assists"`
	PenaltyGoals   int    `db:"penalty_goals"`
	GoalsConceded  int    `db:"goals_conceded"`
}

func (m playerTableModel) toDomain() player.Player {
	return player.Player{
		ID:             m.ID,
		TeamID:         m.TeamID,
		Number:         m.Number,
		Name:           m.Name,
		Surname:        m.Surname,
		Role:           player.Role(m.Role),
		Games:          m.Games,
		SecondsOnField: m.SecondsOnField,
		YellowCards:    m.YellowCards,
		RedCards:       m.RedCards,
		Goals:          m.Goals,
		Assists:        m.Assists,
		PenaltyGoals:   m.PenaltyGoals,
		GoalsConceded:  m.GoalsConceded,
	}
}
