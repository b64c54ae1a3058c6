package pets

import (
	"slices"
	"testing"
)

func TestNew_Defaults(t *testing.T) {
	p := New()
	if p.Name != "" || p.Age != 0 || p.Hunger != 0 || p.Fitness != 10 || len(p.Children) != 0 {
		t.Fatalf("unexpected default pet: %#v", p)
	}
	if !p.IsAlive() {
		t.Fatalf("default pet must be alive")
	}
	if p.State() != Alive {
		t.Fatalf("expected state alive, got %s", p.State())
	}
}

func TestIsAlive_Thresholds(t *testing.T) {
	cases := []struct {
		name string
		pet  Pet
		want bool
	}{
		{"healthy", Pet{Age: 0, Hunger: 0, Fitness: 10}, true},
		{"hunger 9 still alive", Pet{Hunger: 9, Fitness: 0}, true},
		{"hunger 10 dead", Pet{Hunger: 10, Fitness: 10}, false},
		{"fitness -1 dead", Pet{Fitness: -1}, false},
		{"age 29 alive", Pet{Age: 29, Fitness: 10}, true},
		{"age 30 dead", Pet{Age: 30, Fitness: 10}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.pet.IsAlive(); got != tc.want {
				t.Fatalf("IsAlive() = %v, want %v (%s)", got, tc.want, tc.pet.Status())
			}
		})
	}
}

func TestStatus_Format(t *testing.T) {
	p := Pet{Age: 4, Hunger: 12, Fitness: -2}
	if got := p.Status(); got != "Age: 4 Hunger: 12 Fitness: -2" {
		t.Fatalf("unexpected status %q", got)
	}
}

func TestFeed_ClampsAtZero(t *testing.T) {
	p := Pet{Hunger: 2}
	p.Feed()
	if p.Hunger != 0 {
		t.Fatalf("expected hunger 0, got %d", p.Hunger)
	}

	// idempotente en el piso
	p.Feed()
	if p.Hunger != 0 {
		t.Fatalf("expected hunger to stay 0, got %d", p.Hunger)
	}

	p.Hunger = 7
	p.Feed()
	if p.Hunger != 4 {
		t.Fatalf("expected hunger 4, got %d", p.Hunger)
	}
}

func TestWalk_ClampsAtCap(t *testing.T) {
	p := Pet{Fitness: 9}
	p.Walk()
	if p.Fitness != 10 {
		t.Fatalf("expected fitness 10, got %d", p.Fitness)
	}

	p.Walk()
	if p.Fitness != 10 {
		t.Fatalf("expected fitness to stay 10, got %d", p.Fitness)
	}

	p.Fitness = -5
	p.Walk()
	if p.Fitness != -2 {
		t.Fatalf("expected fitness -2, got %d", p.Fitness)
	}
}

func TestClampInvariants_HoldAfterAnySequence(t *testing.T) {
	p := New()
	ops := []func(){p.Feed, p.Walk, p.GrowUp}

	// secuencia determinística que mezcla las tres acciones
	for i := 0; i < 300; i++ {
		ops[(i*7+i/3)%len(ops)]()
		if p.Hunger < 0 {
			t.Fatalf("step %d: hunger went negative: %d", i, p.Hunger)
		}
		if p.Fitness > FitnessCap {
			t.Fatalf("step %d: fitness above cap: %d", i, p.Fitness)
		}
	}
}

func TestGrowUp_KillsAndFeedRevives(t *testing.T) {
	p := New()
	for i := 0; i < 3; i++ {
		p.GrowUp()
	}
	if p.Hunger != 9 || !p.IsAlive() {
		t.Fatalf("expected hunger 9 and alive, got %s alive=%v", p.Status(), p.IsAlive())
	}

	p.GrowUp()
	if p.Hunger != 12 || p.IsAlive() {
		t.Fatalf("expected hunger 12 and dead, got %s alive=%v", p.Status(), p.IsAlive())
	}
	if p.State() != Dead {
		t.Fatalf("expected state dead, got %s", p.State())
	}
}

func TestEndToEnd_DeathAndRecovery(t *testing.T) {
	p := New()
	for i := 0; i < 4; i++ {
		p.GrowUp()
	}
	if p.Age != 4 || p.Hunger != 12 || p.Fitness != -2 || p.IsAlive() {
		t.Fatalf("after 4x GrowUp: %s alive=%v", p.Status(), p.IsAlive())
	}

	p.Feed()
	if p.Hunger != 9 {
		t.Fatalf("expected hunger 9, got %d", p.Hunger)
	}
	p.Walk()
	if p.Fitness != 1 {
		t.Fatalf("expected fitness 1, got %d", p.Fitness)
	}
	if !p.IsAlive() {
		t.Fatalf("expected pet to recover: %s", p.Status())
	}
}

func TestAgeDeath_IsPermanent(t *testing.T) {
	p := Pet{Age: 30, Hunger: 0, Fitness: 10}
	for i := 0; i < 50; i++ {
		p.Feed()
		p.Walk()
		if p.IsAlive() {
			t.Fatalf("age death must not be recoverable: %s", p.Status())
		}
	}
}

func TestAdoptChild_AppendsInOrder(t *testing.T) {
	p := New()
	p.AdoptChild("Spot")
	p.AdoptChild("Rex")
	p.AdoptChild("Spot")

	want := []string{"Spot", "Rex", "Spot"}
	if !slices.Equal(p.Children, want) {
		t.Fatalf("expected children %v, got %v", want, p.Children)
	}
}

func TestNextGeneration_AdoptsOldPetLast(t *testing.T) {
	old := Pet{Name: "Rusty", Age: 10, Hunger: 6, Fitness: 1, Children: []string{"Spot"}}

	next := NextGeneration(old)

	if next.Name != "" || next.Age != 0 || next.Hunger != 0 || next.Fitness != 10 {
		t.Fatalf("expected default stats, got %#v", next)
	}
	if !slices.Equal(next.Children, []string{"Spot", "Rusty"}) {
		t.Fatalf("expected children [Spot Rusty], got %v", next.Children)
	}
	if !slices.Equal(old.Children, []string{"Spot"}) {
		t.Fatalf("old pet children must not be touched, got %v", old.Children)
	}
}

func TestClone_DoesNotShareChildren(t *testing.T) {
	p := Pet{Children: []string{"A"}}
	c := p.Clone()
	c.Children[0] = "B"
	if p.Children[0] != "A" {
		t.Fatalf("clone shares backing array")
	}
}
