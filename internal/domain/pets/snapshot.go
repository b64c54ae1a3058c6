package pets

import (
	"math"
	"slices"
)

// Snapshot es la forma persistida de la mascota.
// Los campos son punteros para distinguir "ausente" de "cero": al cargar,
// todo campo ausente toma su valor por defecto en vez de fallar.
type Snapshot struct {
	Name     *string  `json:"name,omitempty"`
	Age      *int     `json:"age,omitempty"`
	Hunger   *int     `json:"hunger,omitempty"`
	Fitness  *int     `json:"fitness,omitempty"`
	Children []string `json:"children"`
}

// SnapshotOf devuelve un snapshot con todos los campos presentes.
func SnapshotOf(p Pet) Snapshot {
	name, age, hunger, fitness := p.Name, p.Age, p.Hunger, p.Fitness
	children := slices.Clone(p.Children)
	if children == nil {
		children = []string{}
	}
	return Snapshot{
		Name:     &name,
		Age:      &age,
		Hunger:   &hunger,
		Fitness:  &fitness,
		Children: children,
	}
}

// Pet reconstruye la mascota aplicando defaults explícitos campo por campo.
func (s Snapshot) Pet() Pet {
	p := New()
	if s.Name != nil {
		p.Name = *s.Name
	}
	if s.Age != nil {
		p.Age = *s.Age
	}
	if s.Hunger != nil {
		p.Hunger = *s.Hunger
	}
	if s.Fitness != nil {
		p.Fitness = *s.Fitness
	}
	if s.Children != nil {
		p.Children = slices.Clone(s.Children)
	}

	// Un snapshot editado a mano no puede romper los invariantes de clamp.
	// El tope de 32 bits deja margen para GrowUp/Walk sin desbordar int.
	p.Age = min(max(p.Age, 0), math.MaxInt32)
	p.Hunger = min(max(p.Hunger, 0), math.MaxInt32)
	p.Fitness = max(min(p.Fitness, FitnessCap), math.MinInt32)
	return p
}
