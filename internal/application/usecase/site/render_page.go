package site

import (
	"bytes"
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/3zk9/portfolio/internal/application/service"
	"github.com/3zk9/portfolio/internal/domain/profile"
	domainsite "github.com/3zk9/portfolio/internal/domain/site"
	"github.com/3zk9/portfolio/internal/view"
	"github.com/3zk9/portfolio/pkg/apperror"
	"github.com/3zk9/portfolio/pkg/logger"
)

type RenderPageUseCase struct {
	profileRepo profile.Repository
	clock       service.Clock
	logger      logger.Logger
}

func NewRenderPageUseCase(repo profile.Repository, clock service.Clock, log logger.Logger) *RenderPageUseCase {
	return &RenderPageUseCase{
		profileRepo: repo,
		clock:       clock,
		logger:      log,
	}
}

type RenderInput struct {
	Base           string
	Theme          string
	MarqueeSeconds int
	Runtime        bool
}

type RenderOutput struct {
	HTML []byte
	Year int
}

func (uc *RenderPageUseCase) Execute(ctx context.Context, input RenderInput) (*RenderOutput, error) {
	p, err := uc.profileRepo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("load profile failed: %w", err)
	}
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("profile rejected: %w", err)
	}

	year := uc.clock.Now().Year()
	data := view.PageData{
		Profile:        p,
		Year:           year,
		Base:           domainsite.NormalizeBase(input.Base),
		MarqueeSeconds: input.MarqueeSeconds,
		Theme:          input.Theme,
		Runtime:        input.Runtime,
	}

	var buf bytes.Buffer
	if err := view.Page(data).Render(&buf); err != nil {
		return nil, apperror.NewInternal("failed to render page", err)
	}

	uc.logger.Debug("Page rendered",
		zap.String("base", data.Base),
		zap.Int("year", year),
		zap.Int("bytes", buf.Len()),
		zap.Bool("runtime", input.Runtime),
	)
	return &RenderOutput{HTML: buf.Bytes(), Year: year}, nil
}
