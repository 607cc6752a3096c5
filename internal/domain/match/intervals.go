package match

import (
	"fmt"

	"github.com/azajakins/lfl-stats/internal/domain/player"
)

// PlayTime is the reconstructed on-field time of one player in one
// match. GoalsConceded is only tallied for goalkeepers.
type PlayTime struct {
	Seconds       int
	Played        bool
	GoalsConceded int
}

// PlayTime replays the team's substitution events for one roster
// number and reconstructs the player's on-field intervals. The player
// starts ON when listed in the starting lineup, otherwise OFF; each
// substitution toggles the state, and a substitution that contradicts
// the current state fails fast. For goalkeepers, opponent goals inside
// each interval (L, R] are counted as conceded: a goal at the exact
// instant of coming off still counts, a goal at the instant of coming
// on does not.
//
// A player is credited with having played the match only when the
// interval sum is positive.
func (s TeamSheet) PlayTime(number int, role player.Role, opponentGoals []Goal, matchLength int) (PlayTime, error) {
	var result PlayTime

	onField := s.Starting(number)
	lastEvent := 0

	concededBetween := func(left, right int) int {
		n := 0
		for _, g := range opponentGoals {
			if left < g.Time && g.Time <= right {
				n++
			}
		}
		return n
	}

	closeInterval := func(until int) {
		result.Seconds += until - lastEvent
		if role == player.RoleGoalkeeper {
			result.GoalsConceded += concededBetween(lastEvent, until)
		}
	}

	for _, sub := range s.Substitutions {
		switch {
		case sub.Out == number:
			if !onField {
				return PlayTime{}, fmt.Errorf("%w: player %d substituted out while off the field at %ds",
					ErrInconsistentEvents, number, sub.Time)
			}
			closeInterval(sub.Time)
			onField = false
			lastEvent = sub.Time
		case sub.In == number:
			if onField {
				return PlayTime{}, fmt.Errorf("%w: player %d substituted in while on the field at %ds",
					ErrInconsistentEvents, number, sub.Time)
			}
			onField = true
			lastEvent = sub.Time
		}
	}

	if onField {
		closeInterval(matchLength)
	}

	result.Played = result.Seconds > 0

	return result, nil
}
