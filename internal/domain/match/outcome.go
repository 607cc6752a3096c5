package match

import (
	"fmt"

	"github.com/azajakins/lfl-stats/internal/domain/team"
)

const (
	// RegulationLength is the fixed first phase of a match, in seconds.
	RegulationLength = 3600
	// OvertimePeriod is the length of one overtime period, in seconds.
	OvertimePeriod = 900
)

// Outcome classifies a finished match: whether it ran into overtime,
// the effective match length and which side won.
type Outcome struct {
	Overtime bool
	// Length is the effective match length in seconds: the regulation
	// length, or the last goal time rounded up to an overtime period
	// boundary.
	Length int
	// HomeWon reports whether Teams[0] scored more goals.
	HomeWon bool
}

// ClassifyOutcome determines the outcome from the two teams' goal
// lists. The match went to overtime when the last goal fell after
// regulation; the overtime ends at the period boundary at or after the
// last goal. Equal goal counts are rejected, the award table has no
// draw column.
func ClassifyOutcome(home, away []Goal) (Outcome, error) {
	if len(home) == len(away) {
		return Outcome{}, fmt.Errorf("%w: %d goals each", ErrDrawnMatch, len(home))
	}

	lastGoal := 0
	for _, g := range home {
		if g.Time > lastGoal {
			lastGoal = g.Time
		}
	}
	for _, g := range away {
		if g.Time > lastGoal {
			lastGoal = g.Time
		}
	}

	out := Outcome{
		Overtime: lastGoal > RegulationLength,
		Length:   RegulationLength,
		HomeWon:  len(home) > len(away),
	}
	if out.Overtime {
		out.Length = roundUpToPeriod(lastGoal)
	}

	return out, nil
}

// roundUpToPeriod returns the smallest multiple of OvertimePeriod that
// is >= t.
func roundUpToPeriod(t int) int {
	if rem := t % OvertimePeriod; rem != 0 {
		return t + OvertimePeriod - rem
	}
	return t
}

// Award applies the point table to the winning and losing team
// aggregates: 5/1 points and a win/loss for a regulation result,
// 3/2 points and an overtime win/loss otherwise.
func (o Outcome) Award(winner, loser *team.Team) {
	if o.Overtime {
		winner.OvertimeWins++
		winner.Points += 3
		loser.OvertimeLosses++
		loser.Points += 2
		return
	}

	winner.Wins++
	winner.Points += 5
	loser.Losses++
	loser.Points += 1
}
