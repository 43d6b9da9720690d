package main

import (
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/3zk9/portfolio/adapters/persistence"
	"github.com/3zk9/portfolio/internal/application/service"
	siteUC "github.com/3zk9/portfolio/internal/application/usecase/site"
	"github.com/3zk9/portfolio/internal/config"
	"github.com/3zk9/portfolio/internal/view"
	"github.com/3zk9/portfolio/pkg/logger"
)

type app struct {
	cfg    config.Config
	logger logger.Logger
	build  *siteUC.BuildSiteUseCase
}

func newRootCmd() *cobra.Command {
	var configDir string
	a := &app{}

	root := &cobra.Command{
		Use:           "portfolio",
		Short:         "Build and preview the portfolio site",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig(configDir)
			if err != nil {
				return err
			}
			a.wire(cfg, afero.NewOsFs())
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}
	root.PersistentFlags().StringVar(&configDir, "config", ".", "directory holding config.yaml and .env")

	root.AddCommand(newBuildCmd(a), newServeCmd(a))
	return root
}

func (a *app) wire(cfg config.Config, fs afero.Fs) {
	a.cfg = cfg
	a.logger = logger.NewZapLogger(cfg.App.Env)

	clock := service.SystemClock{}
	profileRepo := persistence.NewStaticProfileRepo()
	render := siteUC.NewRenderPageUseCase(profileRepo, clock, a.logger)
	a.build = siteUC.NewBuildSiteUseCase(fs, view.StaticFS, render, clock, a.logger)
}

func (a *app) buildInput() siteUC.BuildInput {
	return siteUC.BuildInput{
		OutDir:         a.cfg.Site.OutDir,
		Base:           a.cfg.Site.Base,
		EmptyOutDir:    a.cfg.Site.EmptyOutDir,
		PublicDir:      a.cfg.Site.PublicDir,
		Theme:          a.cfg.Site.Theme,
		MarqueeSeconds: a.cfg.Site.MarqueeSeconds,
		WasmPath:       a.cfg.Assets.Wasm,
		WasmExecPath:   a.cfg.Assets.WasmExec,
	}
}
