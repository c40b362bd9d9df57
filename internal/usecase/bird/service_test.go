package bird

import (
	"context"
	"testing"

	domain "avesnavarre/backend/internal/domain/bird"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryBirdRepo struct {
	nextID int64
	birds  map[int64]*domain.Bird
}

func newMemoryBirdRepo() *memoryBirdRepo {
	return &memoryBirdRepo{nextID: 1, birds: map[int64]*domain.Bird{}}
}

func (m *memoryBirdRepo) Create(_ context.Context, b *domain.Bird) error {
	for _, existing := range m.birds {
		if existing.ScientificName == b.ScientificName {
			return domain.ErrDuplicateSpecies
		}
	}
	b.ID = m.nextID
	m.nextID++
	clone := *b
	m.birds[clone.ID] = &clone
	return nil
}

func (m *memoryBirdRepo) GetByID(_ context.Context, id int64) (*domain.Bird, error) {
	b, ok := m.birds[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	clone := *b
	return &clone, nil
}

func (m *memoryBirdRepo) List(context.Context) ([]*domain.Bird, error) {
	var out []*domain.Bird
	for _, b := range m.birds {
		clone := *b
		out = append(out, &clone)
	}
	return out, nil
}

func (m *memoryBirdRepo) Update(_ context.Context, b *domain.Bird) error {
	if _, ok := m.birds[b.ID]; !ok {
		return domain.ErrNotFound
	}
	clone := *b
	m.birds[b.ID] = &clone
	return nil
}

func (m *memoryBirdRepo) Delete(_ context.Context, id int64) error {
	if _, ok := m.birds[id]; !ok {
		return domain.ErrNotFound
	}
	delete(m.birds, id)
	return nil
}

func TestCreateRequiresNames(t *testing.T) {
	svc := NewService(newMemoryBirdRepo())

	_, err := svc.Create(context.Background(), CreateInput{ScientificName: "Motacilla cinerea"})
	assert.Error(t, err)

	_, err = svc.Create(context.Background(), CreateInput{Name: "Lavandera cascadeña"})
	assert.Error(t, err)
}

func TestCreateRejectsDuplicateSpecies(t *testing.T) {
	svc := NewService(newMemoryBirdRepo())

	input := CreateInput{Name: "Lavandera cascadeña", ScientificName: "Motacilla cinerea"}
	_, err := svc.Create(context.Background(), input)
	require.NoError(t, err)

	input.Name = "Grey Wagtail"
	_, err = svc.Create(context.Background(), input)
	assert.ErrorIs(t, err, domain.ErrDuplicateSpecies)
}

func TestUpdateAppliesPartialFields(t *testing.T) {
	svc := NewService(newMemoryBirdRepo())

	created, err := svc.Create(context.Background(), CreateInput{
		Name:           "Roquero rojo",
		ScientificName: "Monticola saxatilis",
		Habitat:        "roquedos",
	})
	require.NoError(t, err)

	habitat := "roquedos de montaña"
	updated, err := svc.Update(context.Background(), created.ID, UpdateInput{Habitat: &habitat})
	require.NoError(t, err)

	assert.Equal(t, "roquedos de montaña", updated.Habitat)
	assert.Equal(t, "Roquero rojo", updated.Name)
	assert.Equal(t, "Monticola saxatilis", updated.ScientificName)
}

func TestUpdateMissingBird(t *testing.T) {
	svc := NewService(newMemoryBirdRepo())

	name := "x"
	_, err := svc.Update(context.Background(), 99, UpdateInput{Name: &name})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
