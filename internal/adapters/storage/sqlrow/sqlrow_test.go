package sqlrow

import (
	"database/sql"
	"testing"

	"virtual-pet/internal/domain/pets"
)

func TestColumns_NullsBecomeDefaults(t *testing.T) {
	c := Columns{Name: sql.NullString{String: "Rusty", Valid: true}}

	s, err := c.Snapshot()
	if err != nil {
		t.Fatalf("Snapshot: %v", err)
	}
	p := s.Pet()
	if p.Name != "Rusty" || p.Fitness != 10 || p.Hunger != 0 || len(p.Children) != 0 {
		t.Fatalf("unexpected pet %#v", p)
	}
}

func TestColumns_FullSnapshot(t *testing.T) {
	in := pets.Pet{Name: "Rusty", Age: 11, Hunger: 3, Fitness: -4, Children: []string{"Spot"}}

	c, err := FromSnapshot(pets.SnapshotOf(in))
	if err != nil {
		t.Fatalf("FromSnapshot: %v", err)
	}
	if !c.Fitness.Valid || c.Fitness.Int64 != -4 || c.Children.String != `["Spot"]` {
		t.Fatalf("unexpected columns %#v", c)
	}

	s, err := c.Snapshot()
	if err != nil {
		t.Fatalf("Snapshot: %v", err)
	}
	out := s.Pet()
	if out.Name != in.Name || out.Age != in.Age || out.Fitness != in.Fitness || len(out.Children) != 1 || out.Children[0] != "Spot" {
		t.Fatalf("unexpected pet %#v", out)
	}
}

func TestColumns_BadChildrenJSON(t *testing.T) {
	c := Columns{Children: sql.NullString{String: "{", Valid: true}}
	if _, err := c.Snapshot(); err == nil {
		t.Fatalf("expected decode error")
	}
}
