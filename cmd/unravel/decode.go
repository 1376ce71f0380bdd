package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/zoobzio/unravel"
)

func newDecodeCmd(a *app) *cobra.Command {
	valid := make([]string, 0, len(unravel.Transforms()))
	for _, t := range unravel.Transforms() {
		valid = append(valid, string(t))
	}

	return &cobra.Command{
		Use:   "decode <transform> [text...]",
		Short: "Apply exactly one transform",
		Long: `Apply one named transform. Run "unravel transforms" for the list.
A transform that rejects the input exits non-zero with the failure kind
(InvalidFormat, TooShort or DecodeError) and the reason.

Examples:
  unravel decode hex '48 65 6c 6c 6f'
  unravel decode psBase64 SABpAA==
  pbpaste | unravel decode beautify`,
		Args:      cobra.MinimumNArgs(1),
		ValidArgs: valid,
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := unravel.ParseTransform(args[0])
			if err != nil {
				return err
			}

			text, err := a.input(cmd, args[1:])
			if err != nil {
				return err
			}

			out, err := a.engine.Decode(cmd.Context(), t, text)
			if err != nil {
				a.log.Debug("decode failed", zap.String("transform", string(t)), zap.Error(err))
				return fmt.Errorf("%s: %w", unravel.Kind(err), err)
			}
			return a.output(cmd, out)
		},
	}
}
