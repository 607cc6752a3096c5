package player

import "fmt"

// Role represents field role categories used in aggregation rules.
type Role string

const (
	RoleAttacker   Role = "attacker"
	RoleDefender   Role = "defender"
	RoleGoalkeeper Role = "goalkeeper"
)

var AllRoles = map[Role]struct{}{
	RoleAttacker:   {},
	RoleDefender:   {},
	RoleGoalkeeper: {},
}

// ParseRole maps the single-letter role codes carried by match files
// (U uzbrucējs, A aizsargs, V vārtsargs) to a Role.
func ParseRole(code string) (Role, error) {
	switch code {
	case "U":
		return RoleAttacker, nil
	case "A":
		return RoleDefender, nil
	case "V":
		return RoleGoalkeeper, nil
	default:
		return "", fmt.Errorf("unknown player role code: %q", code)
	}
}

func (r Role) Valid() bool {
	_, ok := AllRoles[r]
	return ok
}

// Player carries the season-long aggregate counters for one athlete.
// Identity is (team, jersey number); numbers are unique within a team
// but not across teams.
type Player struct {
	ID      int64
	TeamID  int64
	Number  int
	Name    string
	Surname string
	Role    Role

	Games          int
	SecondsOnField int
	YellowCards    int
	RedCards       int
	Goals          int
	Assists        int
	PenaltyGoals   int
	// GoalsConceded counts opponent goals scored while this player kept
	// goal. Stays zero for outfield players.
	GoalsConceded int
}

func (p Player) Validate() error {
	if p.TeamID == 0 {
		return fmt.Errorf("player team id is required")
	}
	if p.Number <= 0 {
		return fmt.Errorf("player number must be positive")
	}
	if p.Name == "" {
		return fmt.Errorf("player name is required")
	}
	if !p.Role.Valid() {
		return fmt.Errorf("invalid player role: %s", p.Role)
	}

	return nil
}

// Points is the scoring metric used by player leaderboards.
func (p Player) Points() int {
	return p.Goals + p.Assists + p.PenaltyGoals
}

// TotalGoals counts open-play and penalty-kick goals together.
func (p Player) TotalGoals() int {
	return p.Goals + p.PenaltyGoals
}

// PointsPerHour is the points rate over time played, zero for a player
// who has not been on the field.
func (p Player) PointsPerHour() float64 {
	if p.SecondsOnField == 0 {
		return 0
	}
	return float64(p.Points()) / float64(p.SecondsOnField) * 3600
}

func (p Player) MinutesOnField() float64 {
	return float64(p.SecondsOnField) / 60
}

// GoalsAgainstPerHour is the conceded-goal rate over time played
// (lower is better), zero for a player who has not been on the field.
func (p Player) GoalsAgainstPerHour() float64 {
	if p.SecondsOnField == 0 {
		return 0
	}
	return float64(p.GoalsConceded) / float64(p.SecondsOnField) * 3600
}
