package matchhistory

import "context"

// Repository describes match-history persistence needs from use cases.
type Repository interface {
	Exists(ctx context.Context, teamID int64, date string) (bool, error)
	Insert(ctx context.Context, item Record) error
}
