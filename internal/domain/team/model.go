package team

import "fmt"

// Team carries the season-long aggregate counters for one club.
// A row is created on the first match that mentions the club name
// and mutated after every match it participates in.
type Team struct {
	ID             int64
	Name           string
	Games          int
	Wins           int
	Losses         int
	OvertimeWins   int
	OvertimeLosses int
	Points         int
	GoalsFor       int
	GoalsAgainst   int
	AttendanceSum  int
}

func (t Team) Validate() error {
	if t.Name == "" {
		return fmt.Errorf("team name is required")
	}

	return nil
}

// GoalDifference is goals scored minus goals conceded.
func (t Team) GoalDifference() int {
	return t.GoalsFor - t.GoalsAgainst
}

// AverageAttendance is the mean attendance over played games,
// zero for a team that has not played yet.
func (t Team) AverageAttendance() float64 {
	if t.Games == 0 {
		return 0
	}
	return float64(t.AttendanceSum) / float64(t.Games)
}

// MorePopularThan orders teams by average attendance without dividing:
// att_a * games_b > att_b * games_a. Teams with the same games count
// compare raw attendance sums instead.
func (t Team) MorePopularThan(other Team) bool {
	if t.Games == other.Games {
		return t.AttendanceSum > other.AttendanceSum
	}
	return int64(t.AttendanceSum)*int64(other.Games) > int64(other.AttendanceSum)*int64(t.Games)
}
