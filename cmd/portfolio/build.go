package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newBuildCmd(a *app) *cobra.Command {
	var out, base string

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Render the site into the output directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			in := a.buildInput()
			if out != "" {
				in.OutDir = out
			}
			if base != "" {
				in.Base = base
			}

			res, err := a.build.Execute(cmd.Context(), in)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "built %d files into %s (base %s, build %s)\n", len(res.Files), res.OutDir, res.Base, res.BuildID)
			return nil
		},
	}
	cmd.Flags().StringVar(&out, "out", "", "output directory (overrides site.out_dir)")
	cmd.Flags().StringVar(&base, "base", "", "public base path (overrides site.base)")
	return cmd
}
