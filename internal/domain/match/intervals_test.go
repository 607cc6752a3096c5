package match

import (
	"errors"
	"testing"

	"github.com/azajakins/lfl-stats/internal/domain/player"
)

func TestTeamSheet_PlayTime(t *testing.T) {
	sheet := TeamSheet{
		Name:           "Riga FC",
		StartingLineup: []int{1, 7},
		Substitutions: []Substitution{
			{Time: 1800, Out: 7, In: 9},
			{Time: 3000, Out: 9, In: 7},
		},
	}

	tests := []struct {
		name        string
		number      int
		wantSeconds int
		wantPlayed  bool
	}{
		{name: "starter never substituted plays the whole match", number: 1, wantSeconds: 3600, wantPlayed: true},
		{name: "starter out and back in", number: 7, wantSeconds: 1800 + 600, wantPlayed: true},
		{name: "bench player with one interval", number: 9, wantSeconds: 1200, wantPlayed: true},
		{name: "player never fielded", number: 11, wantSeconds: 0, wantPlayed: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := sheet.PlayTime(tt.number, player.RoleAttacker, nil, RegulationLength)
			if err != nil {
				t.Fatalf("PlayTime error: %v", err)
			}
			if got.Seconds != tt.wantSeconds {
				t.Fatalf("unexpected seconds: got=%d want=%d", got.Seconds, tt.wantSeconds)
			}
			if got.Played != tt.wantPlayed {
				t.Fatalf("unexpected played flag: got=%v want=%v", got.Played, tt.wantPlayed)
			}
		})
	}
}

func TestTeamSheet_PlayTime_OvertimeExtendsFinalInterval(t *testing.T) {
	sheet := TeamSheet{StartingLineup: []int{1}}

	got, err := sheet.PlayTime(1, player.RoleDefender, nil, 4500)
	if err != nil {
		t.Fatalf("PlayTime error: %v", err)
	}
	if got.Seconds != 4500 {
		t.Fatalf("unexpected seconds: got=%d want=4500", got.Seconds)
	}
}

func TestTeamSheet_PlayTime_ZeroDurationStintNotPlayed(t *testing.T) {
	sheet := TeamSheet{
		StartingLineup: []int{1},
		Substitutions: []Substitution{
			{Time: 3600, Out: 1, In: 14},
		},
	}

	got, err := sheet.PlayTime(14, player.RoleAttacker, nil, RegulationLength)
	if err != nil {
		t.Fatalf("PlayTime error: %v", err)
	}
	if got.Seconds != 0 {
		t.Fatalf("unexpected seconds: got=%d want=0", got.Seconds)
	}
	if got.Played {
		t.Fatal("a zero-second stint must not count as a played match")
	}
}

func TestTeamSheet_PlayTime_GoalkeeperConcededWindows(t *testing.T) {
	sheet := TeamSheet{
		StartingLineup: []int{1},
		Substitutions: []Substitution{
			{Time: 1800, Out: 1, In: 12},
		},
	}

	opponentGoals := []Goal{
		{Time: 900, Number: 10, OpenPlay: true},
		// On the instant of the change: charged to the keeper going off.
		{Time: 1800, Number: 10, OpenPlay: true},
		{Time: 2500, Number: 11, OpenPlay: true},
	}

	first, err := sheet.PlayTime(1, player.RoleGoalkeeper, opponentGoals, RegulationLength)
	if err != nil {
		t.Fatalf("PlayTime error: %v", err)
	}
	if first.GoalsConceded != 2 {
		t.Fatalf("starting keeper conceded: got=%d want=2", first.GoalsConceded)
	}

	second, err := sheet.PlayTime(12, player.RoleGoalkeeper, opponentGoals, RegulationLength)
	if err != nil {
		t.Fatalf("PlayTime error: %v", err)
	}
	if second.GoalsConceded != 1 {
		t.Fatalf("relief keeper conceded: got=%d want=1", second.GoalsConceded)
	}
}

func TestTeamSheet_PlayTime_OutfieldPlayerNeverConcedes(t *testing.T) {
	sheet := TeamSheet{StartingLineup: []int{4}}

	got, err := sheet.PlayTime(4, player.RoleDefender, []Goal{{Time: 100, Number: 9, OpenPlay: true}}, RegulationLength)
	if err != nil {
		t.Fatalf("PlayTime error: %v", err)
	}
	if got.GoalsConceded != 0 {
		t.Fatalf("unexpected conceded count for outfield player: %d", got.GoalsConceded)
	}
}

func TestTeamSheet_PlayTime_InconsistentEvents(t *testing.T) {
	tests := []struct {
		name  string
		sheet TeamSheet
	}{
		{
			name: "substituted out while off the field",
			sheet: TeamSheet{
				Substitutions: []Substitution{{Time: 600, Out: 5, In: 6}},
			},
		},
		{
			name: "substituted in while on the field",
			sheet: TeamSheet{
				StartingLineup: []int{5},
				Substitutions:  []Substitution{{Time: 600, Out: 6, In: 5}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.sheet.PlayTime(5, player.RoleAttacker, nil, RegulationLength)
			if !errors.Is(err, ErrInconsistentEvents) {
				t.Fatalf("expected ErrInconsistentEvents, got %v", err)
			}
		})
	}
}
