package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"virtual-pet/internal/domain/pets"

	"github.com/stretchr/testify/require"
)

func TestSnapshotRepo_MissingFile(t *testing.T) {
	repo, err := NewSnapshotRepo(filepath.Join(t.TempDir(), "pet.json"))
	require.NoError(t, err)

	_, err = repo.Load(context.Background())
	require.ErrorIs(t, err, pets.ErrNoSnapshot)
}

func TestSnapshotRepo_SaveThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "pet.json")
	repo, err := NewSnapshotRepo(path)
	require.NoError(t, err)
	ctx := context.Background()

	p := pets.Pet{Name: "Rusty", Age: 12, Hunger: 3, Fitness: -1, Children: []string{"Spot", "Rex"}}
	require.NoError(t, repo.Save(ctx, pets.SnapshotOf(p)))

	got, err := repo.Load(ctx)
	require.NoError(t, err)
	require.Equal(t, p, got.Pet())

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	require.Len(t, entries, 1, "temp files must not be left behind")
}

func TestSnapshotRepo_PartialDocumentTakesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pet.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"name":"Old","hunger":6}`), 0o644))

	repo, err := NewSnapshotRepo(path)
	require.NoError(t, err)

	got, err := repo.Load(context.Background())
	require.NoError(t, err)

	p := got.Pet()
	require.Equal(t, "Old", p.Name)
	require.Equal(t, 6, p.Hunger)
	require.Equal(t, 10, p.Fitness)
	require.Equal(t, 0, p.Age)
	require.Empty(t, p.Children)
}

func TestSnapshotRepo_CorruptFileIsAnError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pet.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"name":`), 0o644))

	repo, err := NewSnapshotRepo(path)
	require.NoError(t, err)

	_, err = repo.Load(context.Background())
	require.Error(t, err)
	require.NotErrorIs(t, err, pets.ErrNoSnapshot)
}

func TestSnapshotRepo_CorruptFileRestoresDefaultPet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pet.json")
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0o644))

	repo, err := NewSnapshotRepo(path)
	require.NoError(t, err)

	svc := pets.NewService(repo, nil, nil)
	p := svc.Restore(context.Background())
	require.Equal(t, pets.New(), p)
}

func TestNewSnapshotRepo_RequiresPath(t *testing.T) {
	_, err := NewSnapshotRepo("  ")
	require.Error(t, err)
}
