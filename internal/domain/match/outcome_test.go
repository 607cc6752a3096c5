package match

import (
	"errors"
	"testing"

	"github.com/azajakins/lfl-stats/internal/domain/team"
)

func goalsAt(times ...int) []Goal {
	out := make([]Goal, 0, len(times))
	for i, t := range times {
		out = append(out, Goal{Time: t, Number: i + 1, OpenPlay: true})
	}
	return out
}

func TestClassifyOutcome(t *testing.T) {
	tests := []struct {
		name         string
		home         []Goal
		away         []Goal
		wantOvertime bool
		wantLength   int
		wantHomeWon  bool
	}{
		{
			name:        "goalless side regulation",
			home:        goalsAt(100, 3600),
			away:        nil,
			wantLength:  3600,
			wantHomeWon: true,
		},
		{
			name:        "goal exactly at regulation end is not overtime",
			home:        goalsAt(3600),
			away:        nil,
			wantLength:  3600,
			wantHomeWon: true,
		},
		{
			name:         "overtime goal rounds length up to period boundary",
			home:         goalsAt(1200, 3000),
			away:         goalsAt(4000),
			wantOvertime: true,
			wantLength:   4500,
			wantHomeWon:  true,
		},
		{
			name:         "overtime goal on exact boundary keeps boundary",
			home:         nil,
			away:         goalsAt(4500),
			wantOvertime: true,
			wantLength:   4500,
			wantHomeWon:  false,
		},
		{
			name:         "deep overtime",
			home:         goalsAt(200),
			away:         goalsAt(300, 5401),
			wantOvertime: true,
			wantLength:   6300,
			wantHomeWon:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ClassifyOutcome(tt.home, tt.away)
			if err != nil {
				t.Fatalf("ClassifyOutcome error: %v", err)
			}
			if got.Overtime != tt.wantOvertime {
				t.Fatalf("unexpected overtime: got=%v want=%v", got.Overtime, tt.wantOvertime)
			}
			if got.Length != tt.wantLength {
				t.Fatalf("unexpected length: got=%d want=%d", got.Length, tt.wantLength)
			}
			if got.HomeWon != tt.wantHomeWon {
				t.Fatalf("unexpected winner: got home=%v want home=%v", got.HomeWon, tt.wantHomeWon)
			}
		})
	}
}

func TestClassifyOutcome_DrawRejected(t *testing.T) {
	for _, goals := range [][2][]Goal{
		{nil, nil},
		{goalsAt(100, 200), goalsAt(500, 900)},
	} {
		_, err := ClassifyOutcome(goals[0], goals[1])
		if !errors.Is(err, ErrDrawnMatch) {
			t.Fatalf("expected ErrDrawnMatch, got %v", err)
		}
	}
}

func TestOutcome_Award(t *testing.T) {
	tests := []struct {
		name       string
		overtime   bool
		wantWinner team.Team
		wantLoser  team.Team
		wantTotal  int
	}{
		{
			name:       "regulation",
			wantWinner: team.Team{Wins: 1, Points: 5},
			wantLoser:  team.Team{Losses: 1, Points: 1},
			wantTotal:  6,
		},
		{
			name:       "overtime",
			overtime:   true,
			wantWinner: team.Team{OvertimeWins: 1, Points: 3},
			wantLoser:  team.Team{OvertimeLosses: 1, Points: 2},
			wantTotal:  5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var winner, loser team.Team
			Outcome{Overtime: tt.overtime}.Award(&winner, &loser)

			if winner != tt.wantWinner {
				t.Fatalf("unexpected winner counters: got=%+v want=%+v", winner, tt.wantWinner)
			}
			if loser != tt.wantLoser {
				t.Fatalf("unexpected loser counters: got=%+v want=%+v", loser, tt.wantLoser)
			}
			if got := winner.Points + loser.Points; got != tt.wantTotal {
				t.Fatalf("unexpected points total: got=%d want=%d", got, tt.wantTotal)
			}
		})
	}
}

// A side outscored on count still wins on count even when the only
// overtime goal belongs to the other side: the decision is total
// goals, never recency.
func TestClassifyOutcome_OvertimeGoalDoesNotDecideWinner(t *testing.T) {
	got, err := ClassifyOutcome(goalsAt(1200, 3000), goalsAt(4000))
	if err != nil {
		t.Fatalf("ClassifyOutcome error: %v", err)
	}
	if !got.HomeWon {
		t.Fatalf("expected home side to win on goal count")
	}
	if !got.Overtime || got.Length != 4500 {
		t.Fatalf("expected overtime with length 4500, got overtime=%v length=%d", got.Overtime, got.Length)
	}

	var winner, loser team.Team
	got.Award(&winner, &loser)
	if winner.Points != 3 || winner.OvertimeWins != 1 {
		t.Fatalf("expected overtime-win treatment for winner, got %+v", winner)
	}
}
