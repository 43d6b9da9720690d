package persistence

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/3zk9/portfolio/internal/domain/profile"
)

func TestStaticProfileRepo_Get(t *testing.T) {
	repo := NewStaticProfileRepo()

	p, err := repo.Get(context.Background())
	require.NoError(t, err)
	require.NoError(t, p.Validate())

	assert.Equal(t, "Eric Youmans", p.Name)
	require.Len(t, p.Education, 3)
	assert.Equal(t, "University of Texas, Austin, TX", p.Education[0].School)
	assert.Equal(t, "Montgomery College, Rockville, MD", p.Education[2].School)
	assert.Len(t, p.Experience, 3)
	assert.Len(t, p.Projects, 1)
	assert.Len(t, p.Skills, 7)
}

func TestStaticProfileRepo_CallersCannotMutateSource(t *testing.T) {
	repo := NewStaticProfileRepo()

	first, err := repo.Get(context.Background())
	require.NoError(t, err)
	first.Skills[0] = "COBOL"
	first.Experience[0].Bullets = nil

	second, err := repo.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "React", second.Skills[0])
	assert.Len(t, second.Experience[0].Bullets, 4)
}

func TestNewProfileRepoFrom_CopiesInput(t *testing.T) {
	p := &profile.Profile{Name: "Ada", Role: "Engineer", Skills: []string{"Go"}}
	repo := NewProfileRepoFrom(p)
	p.Skills[0] = "changed"

	got, err := repo.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Go"}, got.Skills)
}

func TestStaticProfileRepo_HonoursCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewStaticProfileRepo().Get(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
