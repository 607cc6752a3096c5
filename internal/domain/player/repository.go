package player

import "context"

// Seed holds the identity attributes a new player row is created with.
type Seed struct {
	Number  int
	Name    string
	Surname string
	Role    Role
}

// Repository describes player persistence needs from use cases.
type Repository interface {
	// GetOrCreateRoster resolves every seeded number for a team, creating
	// zero-counter rows for numbers that have not been seen before.
	// The result is keyed by jersey number.
	GetOrCreateRoster(ctx context.Context, teamID int64, roster []Seed) (map[int]Player, error)
	List(ctx context.Context) ([]Player, error)
	// UpdateAll persists one team's mutated players as a single atomic
	// unit: either every row commits or none do.
	UpdateAll(ctx context.Context, items []Player) error
}
