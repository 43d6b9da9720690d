package site

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/3zk9/portfolio/adapters/persistence"
	"github.com/3zk9/portfolio/internal/application/service"
	"github.com/3zk9/portfolio/internal/domain/profile"
	"github.com/3zk9/portfolio/pkg/apperror"
	"github.com/3zk9/portfolio/pkg/logger"
)

type failingRepo struct{ err error }

func (r failingRepo) Get(context.Context) (*profile.Profile, error) { return nil, r.err }

var fixedClock = service.FixedClock{At: time.Date(2031, time.March, 4, 10, 0, 0, 0, time.UTC)}

func TestRenderPage_UsesInjectedClock(t *testing.T) {
	uc := NewRenderPageUseCase(persistence.NewStaticProfileRepo(), fixedClock, logger.NewNopLogger())

	out, err := uc.Execute(context.Background(), RenderInput{Base: "3zk9.io"})
	require.NoError(t, err)

	assert.Equal(t, 2031, out.Year)
	assert.Contains(t, string(out.HTML), "© 2031 Eric Youmans.")
	assert.Contains(t, string(out.HTML), `href="/3zk9.io/resume.pdf"`)
	assert.True(t, strings.HasPrefix(strings.ToLower(string(out.HTML)), "<!doctype html>"))
}

func TestRenderPage_RepositoryErrorPropagates(t *testing.T) {
	boom := errors.New("boom")
	uc := NewRenderPageUseCase(failingRepo{err: boom}, fixedClock, logger.NewNopLogger())

	_, err := uc.Execute(context.Background(), RenderInput{})
	assert.ErrorIs(t, err, boom)
}

func TestRenderPage_RejectsInvalidProfile(t *testing.T) {
	repo := persistence.NewProfileRepoFrom(&profile.Profile{Role: "Engineer"})
	uc := NewRenderPageUseCase(repo, fixedClock, logger.NewNopLogger())

	_, err := uc.Execute(context.Background(), RenderInput{})
	assert.ErrorIs(t, err, apperror.ErrInvalidInput)
}
