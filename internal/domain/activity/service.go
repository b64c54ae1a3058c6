package activity

import (
	"context"
	"time"

	"virtual-pet/internal/domain/pets"
	"virtual-pet/internal/platform/logger"

	"github.com/google/uuid"
)

const (
	DefaultLimit = 50
	MaxLimit     = 200
)

// Service lleva el historial de acciones de la sesión. Implementa pets.Observer.
type Service struct {
	repo Repository
	now  func() time.Time
	log  logger.Logger
}

func NewService(repo Repository, log logger.Logger) *Service {
	if log == nil {
		log = logger.Nop()
	}
	return &Service{
		repo: repo,
		now:  time.Now,
		log:  log.With(map[string]any{"component": "activity"}),
	}
}

// Observe no devuelve error: el historial es best-effort y nunca bloquea una acción.
func (s *Service) Observe(ctx context.Context, action pets.Action, p pets.Pet) {
	e := Entry{
		ID:         uuid.NewString(),
		Action:     action,
		OccurredAt: s.now().UTC(),
		PetName:    p.Name,
		Age:        p.Age,
		Hunger:     p.Hunger,
		Fitness:    p.Fitness,
		Alive:      p.IsAlive(),
	}
	if err := s.repo.Create(ctx, e); err != nil {
		s.log.Warn("activity entry dropped", map[string]any{"action": string(action), "error": err.Error()})
	}
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]Entry, error) {
	if filter.Limit <= 0 {
		filter.Limit = DefaultLimit
	}
	if filter.Limit > MaxLimit {
		filter.Limit = MaxLimit
	}
	return s.repo.List(ctx, filter)
}
