package main

import (
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	httpAdapter "github.com/3zk9/portfolio/adapters/http"
)

func newServeCmd(a *app) *cobra.Command {
	var port string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Build the site and serve it under its base path",
		RunE: func(cmd *cobra.Command, args []string) error {
			if port == "" {
				port = a.cfg.App.Port
			}

			res, err := a.build.Execute(cmd.Context(), a.buildInput())
			if err != nil {
				return err
			}

			if a.cfg.App.Env == "production" {
				gin.SetMode(gin.ReleaseMode)
			}
			router := httpAdapter.NewRouter(gin.Dir(res.OutDir, false), res.Base, a.logger)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return httpAdapter.ListenAndServe(ctx, net.JoinHostPort("", port), router, a.logger)
		},
	}
	cmd.Flags().StringVar(&port, "port", "", "listen port (overrides app.port)")
	return cmd
}
