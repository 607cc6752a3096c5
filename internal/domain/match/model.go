package match

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/azajakins/lfl-stats/internal/domain/player"
)

var (
	ErrInvalidRecord      = errors.New("invalid match record")
	ErrInconsistentEvents = errors.New("inconsistent substitution events")
	ErrDrawnMatch         = errors.New("drawn match is not supported")
)

// Record is one fully parsed match: two team sheets plus the shared
// match attributes. It is the only input the aggregation engine takes.
type Record struct {
	Date       string `validate:"required"`
	Venue      string
	Attendance int         `validate:"gte=0"`
	Referees   []Referee   `validate:"dive"`
	Teams      []TeamSheet `validate:"len=2,dive"`
}

// TeamSheet is one team's side of a match record: the roster, the
// starting lineup and the ordered event lists. All numbers refer to
// roster entries of this team. Event times are seconds from kickoff.
type TeamSheet struct {
	Name           string        `validate:"required"`
	Roster         []RosterEntry `validate:"min=1,dive"`
	StartingLineup []int
	Substitutions  []Substitution `validate:"dive"`
	Penalties      []Penalty      `validate:"dive"`
	Goals          []Goal         `validate:"dive"`
}

type RosterEntry struct {
	Number  int    `validate:"gt=0"`
	Name    string `validate:"required"`
	Surname string
	Role    player.Role `validate:"required"`
}

type Referee struct {
	Name    string
	Surname string
	Main    bool
}

type Substitution struct {
	Time int `validate:"gte=0"`
	Out  int `validate:"gt=0"`
	In   int `validate:"gt=0"`
}

type Penalty struct {
	Time   int `validate:"gte=0"`
	Number int `validate:"gt=0"`
}

type Goal struct {
	Time int `validate:"gte=0"`
	// Number is the scorer's jersey number.
	Number int `validate:"gt=0"`
	// OpenPlay distinguishes goals from game play from penalty kicks.
	OpenPlay bool
	Assists  []int
}

var recordValidator = validator.New()

// Validate checks the structural invariants the aggregation engine
// relies on: exactly two teams, valid roles, and every number referenced
// by an event or the lineup present on that team's roster. A violation
// makes the whole match unprocessable.
func (r Record) Validate() error {
	if err := recordValidator.Struct(r); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidRecord, err)
	}

	for _, sheet := range r.Teams {
		if err := sheet.validate(); err != nil {
			return fmt.Errorf("%w: team %s: %v", ErrInvalidRecord, sheet.Name, err)
		}
	}

	return nil
}

func (s TeamSheet) validate() error {
	known := make(map[int]struct{}, len(s.Roster))
	for _, entry := range s.Roster {
		if !entry.Role.Valid() {
			return fmt.Errorf("player %d has invalid role %q", entry.Number, entry.Role)
		}
		if _, dup := known[entry.Number]; dup {
			return fmt.Errorf("duplicate roster number %d", entry.Number)
		}
		known[entry.Number] = struct{}{}
	}

	checkNumber := func(kind string, number int) error {
		if _, ok := known[number]; !ok {
			return fmt.Errorf("%s references unknown number %d", kind, number)
		}
		return nil
	}

	for _, number := range s.StartingLineup {
		if err := checkNumber("starting lineup", number); err != nil {
			return err
		}
	}
	for _, sub := range s.Substitutions {
		if err := checkNumber("substitution", sub.Out); err != nil {
			return err
		}
		if err := checkNumber("substitution", sub.In); err != nil {
			return err
		}
	}
	for _, pen := range s.Penalties {
		if err := checkNumber("penalty", pen.Number); err != nil {
			return err
		}
	}
	for _, goal := range s.Goals {
		if err := checkNumber("goal", goal.Number); err != nil {
			return err
		}
		for _, assist := range goal.Assists {
			if err := checkNumber("assist", assist); err != nil {
				return err
			}
		}
	}

	return nil
}

// Starting reports whether the given number is in the starting lineup.
func (s TeamSheet) Starting(number int) bool {
	for _, n := range s.StartingLineup {
		if n == number {
			return true
		}
	}
	return false
}
