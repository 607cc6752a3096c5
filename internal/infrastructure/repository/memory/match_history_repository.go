package memory

import (
	"context"
	"sync"

	"github.com/azajakins/lfl-stats/internal/domain/matchhistory"
)

type historyKey struct {
	teamID int64
	date   string
}

type MatchHistoryRepository struct {
	mu     sync.RWMutex
	seen   map[historyKey]struct{}
	nextID int64
}

func NewMatchHistoryRepository() *MatchHistoryRepository {
	return &MatchHistoryRepository{
		seen:   make(map[historyKey]struct{}),
		nextID: 1,
	}
}

func (r *MatchHistoryRepository) Exists(_ context.Context, teamID int64, date string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.seen[historyKey{teamID: teamID, date: date}]

	return ok, nil
}

func (r *MatchHistoryRepository) Insert(_ context.Context, item matchhistory.Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.seen[historyKey{teamID: item.TeamID, date: item.Date}] = struct{}{}
	r.nextID++

	return nil
}
