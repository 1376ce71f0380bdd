package main

import (
	"github.com/spf13/cobra"

	"github.com/zoobzio/unravel"
)

func newStripCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "strip [text...]",
		Short: "Remove a decode banner from previous output",
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := a.input(cmd, args)
			if err != nil {
				return err
			}
			return a.output(cmd, unravel.StripAnnotation(text))
		},
	}
}
