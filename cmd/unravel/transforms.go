package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zoobzio/unravel"
)

func newTransformsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "transforms",
		Short: "List the transform names decode accepts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			for _, t := range unravel.Transforms() {
				if _, err := fmt.Fprintf(out, "%-10s %s\n", t, t.Label()); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
