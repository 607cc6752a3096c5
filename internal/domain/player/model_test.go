package player

import (
	"math"
	"testing"
)

func TestParseRole(t *testing.T) {
	tests := []struct {
		code string
		want Role
	}{
		{code: "U", want: RoleAttacker},
		{code: "A", want: RoleDefender},
		{code: "V", want: RoleGoalkeeper},
	}

	for _, tt := range tests {
		got, err := ParseRole(tt.code)
		if err != nil {
			t.Fatalf("ParseRole(%q) error: %v", tt.code, err)
		}
		if got != tt.want {
			t.Fatalf("ParseRole(%q): got=%s want=%s", tt.code, got, tt.want)
		}
	}

	if _, err := ParseRole("Z"); err == nil {
		t.Fatal("expected error for unknown role code")
	}
	if _, err := ParseRole(""); err == nil {
		t.Fatal("expected error for empty role code")
	}
}

func TestPlayer_Validate(t *testing.T) {
	valid := Player{TeamID: 1, Number: 10, Name: "Janis", Role: RoleAttacker}
	if err := valid.Validate(); err != nil {
		t.Fatalf("expected valid player, got %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*Player)
	}{
		{name: "missing team", mutate: func(p *Player) { p.TeamID = 0 }},
		{name: "non-positive number", mutate: func(p *Player) { p.Number = 0 }},
		{name: "missing name", mutate: func(p *Player) { p.Name = "" }},
		{name: "bad role", mutate: func(p *Player) { p.Role = "striker" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := valid
			tt.mutate(&p)
			if err := p.Validate(); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}

func TestPlayer_DerivedMetrics(t *testing.T) {
	p := Player{
		Goals:          4,
		Assists:        3,
		PenaltyGoals:   2,
		SecondsOnField: 7200,
		GoalsConceded:  6,
	}

	if got := p.Points(); got != 9 {
		t.Fatalf("Points: got=%d want=9", got)
	}
	if got := p.TotalGoals(); got != 6 {
		t.Fatalf("TotalGoals: got=%d want=6", got)
	}
	if got := p.PointsPerHour(); math.Abs(got-4.5) > 1e-9 {
		t.Fatalf("PointsPerHour: got=%v want=4.5", got)
	}
	if got := p.GoalsAgainstPerHour(); math.Abs(got-3.0) > 1e-9 {
		t.Fatalf("GoalsAgainstPerHour: got=%v want=3", got)
	}
	if got := p.MinutesOnField(); math.Abs(got-120) > 1e-9 {
		t.Fatalf("MinutesOnField: got=%v want=120", got)
	}
}

func TestPlayer_RatesWithoutFieldTime(t *testing.T) {
	p := Player{Goals: 5, GoalsConceded: 2}

	if got := p.PointsPerHour(); got != 0 {
		t.Fatalf("expected zero rate without field time, got %v", got)
	}
	if got := p.GoalsAgainstPerHour(); got != 0 {
		t.Fatalf("expected zero conceded rate without field time, got %v", got)
	}
}
