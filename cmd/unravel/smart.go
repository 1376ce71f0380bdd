package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newSmartCmd(a *app) *cobra.Command {
	var bodyOnly, asJSON bool

	cmd := &cobra.Command{
		Use:   "smart [text...]",
		Short: "Decode repeatedly until the text looks like plaintext",
		Long: `Run every transform that applies, round after round, until the text
looks like plaintext. The output starts with a banner listing the layers that
were removed. Text that does not decode is printed unchanged.

Examples:
  unravel smart 'SGVsbG8gd29ybGQ='
  echo '%5Cu4f60%5Cu597d' | unravel smart --body
  unravel smart --json 'SABpAA=='`,
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := a.input(cmd, args)
			if err != nil {
				return err
			}

			res := a.engine.Smart(cmd.Context(), text)
			a.log.Debug("smart decode",
				zap.Strings("trace", res.Trace),
				zap.Int("rounds", res.Rounds),
				zap.Strings("warnings", res.Warnings),
			)

			switch {
			case asJSON:
				b, err := json.MarshalIndent(res, "", "  ")
				if err != nil {
					return fmt.Errorf("encode result: %w", err)
				}
				return a.output(cmd, string(b))
			case bodyOnly:
				return a.output(cmd, res.Body)
			default:
				return a.output(cmd, res.Text)
			}
		},
	}

	cmd.Flags().BoolVar(&bodyOnly, "body", false, "print the decoded text without the banner")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the trace, body and warnings as JSON")
	cmd.MarkFlagsMutuallyExclusive("body", "json")
	return cmd
}
