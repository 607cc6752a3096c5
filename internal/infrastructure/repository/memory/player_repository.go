package memory

import (
	"context"
	"sync"

	"github.com/azajakins/lfl-stats/internal/domain/player"
)

type playerKey struct {
	teamID int64
	number int
}

type PlayerRepository struct {
	mu     sync.RWMutex
	byKey  map[playerKey]player.Player
	nextID int64
}

func NewPlayerRepository() *PlayerRepository {
	return &PlayerRepository{
		byKey:  make(map[playerKey]player.Player),
		nextID: 1,
	}
}

func (r *PlayerRepository) GetOrCreateRoster(_ context.Context, teamID int64, roster []player.Seed) (map[int]player.Player, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make(map[int]player.Player, len(roster))
	for _, seed := range roster {
		key := playerKey{teamID: teamID, number: seed.Number}
		existing, ok := r.byKey[key]
		if !ok {
			existing = player.Player{
				ID:      r.nextID,
				TeamID:  teamID,
				Number:  seed.Number,
				Name:    seed.Name,
				Surname: seed.Surname,
				Role:    seed.Role,
			}
			if err := existing.Validate(); err != nil {
				return nil, err
			}
			r.nextID++
			r.byKey[key] = existing
		}
		out[seed.Number] = existing
	}

	return out, nil
}

func (r *PlayerRepository) List(_ context.Context) ([]player.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]player.Player, 0, len(r.byKey))
	for _, item := range r.byKey {
		out = append(out, item)
	}

	return out, nil
}

func (r *PlayerRepository) UpdateAll(_ context.Context, items []player.Player) error {
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, item := range items {
		r.byKey[playerKey{teamID: item.TeamID, number: item.Number}] = item
	}

	return nil
}
