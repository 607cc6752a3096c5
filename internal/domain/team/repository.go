package team

import "context"

// Repository describes team persistence needs from use cases.
type Repository interface {
	// GetOrCreateByName resolves a team by its unique name, creating a
	// zero-counter row when the name has not been seen before.
	GetOrCreateByName(ctx context.Context, name string) (Team, error)
	List(ctx context.Context) ([]Team, error)
	Update(ctx context.Context, item Team) error
}
