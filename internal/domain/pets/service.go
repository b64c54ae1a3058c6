package pets

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"virtual-pet/internal/platform/logger"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrTooYoung     = errors.New("pet too young")
)

// Action identifica lo que el shell le pidió a la mascota.
type Action string

const (
	ActionFeed       Action = "feed"
	ActionWalk       Action = "walk"
	ActionGrowUp     Action = "grow_up"
	ActionRename     Action = "rename"
	ActionAdoptChild Action = "adopt_child"
	ActionReset      Action = "reset"
	ActionHaveChild  Action = "have_child"
)

// Observer recibe cada acción aplicada junto con la mascota resultante.
// Se define acá para evitar ciclos de imports (pets <-> activity).
type Observer interface {
	Observe(ctx context.Context, action Action, p Pet)
}

// Service es el dueño único de la mascota viva de la sesión.
// Serializa el acceso; Pet en sí no se comparte nunca (se devuelven clones).
type Service struct {
	mu    sync.Mutex
	pet   Pet
	dirty bool

	repo Repository
	obs  Observer
	log  logger.Logger
}

// NewService arranca con la mascota por defecto; llamar Restore para cargar el snapshot.
// obs y log pueden ser nil.
func NewService(repo Repository, obs Observer, log logger.Logger) *Service {
	if log == nil {
		log = logger.Nop()
	}
	return &Service{
		pet:  New(),
		repo: repo,
		obs:  obs,
		log:  log.With(map[string]any{"component": "pets"}),
	}
}

func (s *Service) Current() Pet {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pet.Clone()
}

func (s *Service) Feed(ctx context.Context) Pet {
	p, _ := s.apply(ctx, ActionFeed, func(p *Pet) error {
		p.Feed()
		return nil
	})
	return p
}

func (s *Service) Walk(ctx context.Context) Pet {
	p, _ := s.apply(ctx, ActionWalk, func(p *Pet) error {
		p.Walk()
		return nil
	})
	return p
}

func (s *Service) GrowUp(ctx context.Context) Pet {
	p, _ := s.apply(ctx, ActionGrowUp, func(p *Pet) error {
		p.GrowUp()
		return nil
	})
	return p
}

// Rename acepta cualquier texto (incluso vacío); solo recorta espacios.
func (s *Service) Rename(ctx context.Context, name string) Pet {
	name = strings.TrimSpace(name)
	p, _ := s.apply(ctx, ActionRename, func(p *Pet) error {
		p.Rename(name)
		return nil
	})
	return p
}

func (s *Service) AdoptChild(ctx context.Context, name string) (Pet, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return s.Current(), ErrInvalidInput
	}
	return s.apply(ctx, ActionAdoptChild, func(p *Pet) error {
		p.AdoptChild(name)
		return nil
	})
}

// Reset reemplaza la mascota completa, hijos incluidos.
func (s *Service) Reset(ctx context.Context) Pet {
	p, _ := s.apply(ctx, ActionReset, func(p *Pet) error {
		*p = New()
		return nil
	})
	return p
}

// HaveChild hace la transición generacional. Con age < ChildAge no toca nada.
func (s *Service) HaveChild(ctx context.Context) (Pet, error) {
	return s.apply(ctx, ActionHaveChild, func(p *Pet) error {
		if !p.CanHaveChild() {
			return ErrTooYoung
		}
		*p = NextGeneration(*p)
		return nil
	})
}

func (s *Service) apply(ctx context.Context, action Action, fn func(p *Pet) error) (Pet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := fn(&s.pet); err != nil {
		return s.pet.Clone(), err
	}
	s.dirty = true

	out := s.pet.Clone()
	if s.obs != nil {
		s.obs.Observe(ctx, action, out.Clone())
	}
	return out, nil
}

// Restore carga el snapshot guardado. Nunca falla: si no hay snapshot o está
// corrupto/ilegible, la sesión sigue con la mascota por defecto.
func (s *Service) Restore(ctx context.Context) Pet {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.pet = New()
	s.dirty = false

	if s.repo == nil {
		return s.pet.Clone()
	}

	snap, err := s.repo.Load(ctx)
	switch {
	case errors.Is(err, ErrNoSnapshot):
		s.log.Info("no snapshot, starting with default pet", nil)
	case err != nil:
		s.log.Warn("snapshot load failed, starting with default pet", map[string]any{"error": err.Error()})
	default:
		s.pet = snap.Pet()
		s.log.Info("pet restored", map[string]any{"name": s.pet.Name, "status": s.pet.Status()})
	}
	return s.pet.Clone()
}

// Persist guarda el snapshot actual. Si falla, el estado queda sucio para el próximo intento.
func (s *Service) Persist(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.repo == nil {
		s.dirty = false
		return nil
	}
	if err := s.repo.Save(ctx, SnapshotOf(s.pet)); err != nil {
		return err
	}
	s.dirty = false
	return nil
}

func (s *Service) Dirty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dirty
}

// Autosave persiste cada `every` si hubo cambios y hace un último guardado
// cuando ctx se cancela (shutdown). every <= 0 deja solo el guardado final.
func (s *Service) Autosave(ctx context.Context, every time.Duration) error {
	var tick <-chan time.Time
	if every > 0 {
		t := time.NewTicker(every)
		defer t.Stop()
		tick = t.C
	}

	for {
		select {
		case <-ctx.Done():
			saveCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
			defer cancel()
			if err := s.Persist(saveCtx); err != nil {
				s.log.Error("shutdown save failed", map[string]any{"error": err.Error()})
				return err
			}
			s.log.Info("pet saved on shutdown", nil)
			return nil
		case <-tick:
			if !s.Dirty() {
				continue
			}
			if err := s.Persist(ctx); err != nil {
				s.log.Warn("autosave failed", map[string]any{"error": err.Error()})
				continue
			}
			s.log.Debug("pet autosaved", nil)
		}
	}
}
