package pets

import (
	"fmt"
	"slices"
)

const (
	// Umbrales de supervivencia: cruzar cualquiera mata a la mascota.
	MaxHunger  = 10
	MinFitness = 0
	MaxAge     = 30

	// Tope de fitness que aplica Walk.
	FitnessCap = 10

	// Edad mínima para la transición generacional ("have child").
	ChildAge = 10

	step = 3
)

// LifeState es el estado observable de la mascota, siempre derivado de IsAlive.
// @Enum alive, dead
type LifeState string

const (
	Alive LifeState = "alive"
	Dead  LifeState = "dead"
)

// Pet representa la mascota virtual y sus reglas de mutación.
// No tiene locks: el dueño único es Service.
type Pet struct {
	Name     string
	Age      int
	Hunger   int
	Fitness  int
	Children []string
}

// New devuelve una mascota con los valores por defecto.
func New() Pet {
	return Pet{
		Name:     "",
		Age:      0,
		Hunger:   0,
		Fitness:  FitnessCap,
		Children: []string{},
	}
}

func (p *Pet) IsAlive() bool {
	return p.Hunger < MaxHunger && p.Fitness >= MinFitness && p.Age < MaxAge
}

func (p *Pet) State() LifeState {
	if p.IsAlive() {
		return Alive
	}
	return Dead
}

func (p *Pet) Status() string {
	return fmt.Sprintf("Age: %d Hunger: %d Fitness: %d", p.Age, p.Hunger, p.Fitness)
}

// Feed baja hunger en 3 sin pasar de 0.
// Se compara por suma (hunger < 3) para no depender de que la resta no desborde.
func (p *Pet) Feed() {
	if p.Hunger < step {
		p.Hunger = 0
		return
	}
	p.Hunger -= step
}

// Walk sube fitness en 3 sin pasar de FitnessCap.
func (p *Pet) Walk() {
	if p.Fitness > FitnessCap-step {
		p.Fitness = FitnessCap
		return
	}
	p.Fitness += step
}

// GrowUp no tiene topes: es la única acción que puede matar a la mascota.
func (p *Pet) GrowUp() {
	p.Age++
	p.Hunger += step
	p.Fitness -= step
}

func (p *Pet) AdoptChild(name string) {
	p.Children = append(p.Children, name)
}

func (p *Pet) Rename(name string) {
	p.Name = name
}

func (p *Pet) CanHaveChild() bool {
	return p.Age >= ChildAge
}

// Clone copia la mascota incluyendo el slice de hijos.
func (p Pet) Clone() Pet {
	out := p
	out.Children = slices.Clone(p.Children)
	if out.Children == nil {
		out.Children = []string{}
	}
	return out
}

// NextGeneration arma la mascota que reemplaza a p: valores por defecto,
// los hijos de p como hermanos y p misma como último hijo.
// Captura nombre e hijos antes de construir la nueva.
func NextGeneration(p Pet) Pet {
	oldName := p.Name
	oldChildren := slices.Clone(p.Children)

	next := New()
	for _, c := range oldChildren {
		next.AdoptChild(c)
	}
	next.AdoptChild(oldName)
	return next
}
