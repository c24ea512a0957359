package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/kbukum/edukit/version"
)

func (a *app) versionCommand() *cobra.Command {
	var short bool
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			info := version.Get()
			return a.render(cmd.OutOrStdout(), info, func(w io.Writer) error {
				if short {
					_, err := fmt.Fprintln(w, info.Short())
					return err
				}
				_, err := fmt.Fprintf(w, "%s %s\n", appName, info)
				return err
			})
		},
	}
	cmd.Flags().BoolVar(&short, "short", false, "show short version only")
	return cmd
}
