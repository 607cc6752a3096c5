package memory

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/azajakins/lfl-stats/internal/domain/team"
)

type TeamRepository struct {
	mu     sync.RWMutex
	byName map[string]team.Team
	nextID int64
}

func NewTeamRepository() *TeamRepository {
	return &TeamRepository{
		byName: make(map[string]team.Team),
		nextID: 1,
	}
}

func (r *TeamRepository) GetOrCreateByName(_ context.Context, name string) (team.Team, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return team.Team{}, fmt.Errorf("team name is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.byName[name]; ok {
		return existing, nil
	}

	created := team.Team{ID: r.nextID, Name: name}
	r.nextID++
	r.byName[name] = created

	return created, nil
}

func (r *TeamRepository) List(_ context.Context) ([]team.Team, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]team.Team, 0, len(r.byName))
	for _, item := range r.byName {
		out = append(out, item)
	}

	return out, nil
}

func (r *TeamRepository) Update(_ context.Context, item team.Team) error {
	if err := item.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.byName[item.Name] = item

	return nil
}
