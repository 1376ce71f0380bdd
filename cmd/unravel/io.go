package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/zoobzio/unravel"
)

// maxInput bounds how much stdin is read.
const maxInput = 16 << 20

var errNoInput = errors.New("no input: pass text as arguments, pipe it on stdin or use --clipboard")

// Clipboard access, swapped out in tests.
var (
	readClipboard  = clipboard.ReadAll
	writeClipboard = clipboard.WriteAll
)

var (
	traceStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#87CEEB"))

	warningStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFD700"))

	dividerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

// input returns the text to decode: arguments first, then the clipboard when
// enabled, then stdin.
func (a *app) input(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}

	if a.cfg.Clipboard {
		text, err := readClipboard()
		if err != nil {
			return "", fmt.Errorf("read clipboard: %w", err)
		}
		if text == "" {
			return "", errNoInput
		}
		return text, nil
	}

	b, err := io.ReadAll(io.LimitReader(cmd.InOrStdin(), maxInput))
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	text := strings.TrimRight(string(b), "\r\n")
	if text == "" {
		return "", errNoInput
	}
	return text, nil
}

// output prints result, then the digest line, and copies result to the
// clipboard when enabled.
func (a *app) output(cmd *cobra.Command, result string) error {
	out := cmd.OutOrStdout()

	text := result
	if a.cfg.Color && isTerminal(out) {
		text = styleBanner(result)
	}
	if _, err := fmt.Fprintln(out, text); err != nil {
		return err
	}

	if a.cfg.Digest != "" {
		sum, err := unravel.Digest(unravel.DigestAlgo(a.cfg.Digest), unravel.StripAnnotation(result))
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(out, "%s: %s\n", a.cfg.Digest, sum); err != nil {
			return err
		}
	}

	if a.cfg.Clipboard {
		if err := writeClipboard(result); err != nil {
			return fmt.Errorf("write clipboard: %w", err)
		}
		a.log.Debug("result copied to clipboard", zap.Int("size", len(result)))
	}
	return nil
}

// styleBanner colors the banner line and divider of annotated text.
func styleBanner(text string) string {
	if !unravel.HasAnnotation(text) {
		return text
	}
	head, body, _ := strings.Cut(text, "\n"+unravel.Divider+"\n")

	style := traceStyle
	if strings.HasPrefix(head, unravel.WarningMarker) {
		style = warningStyle
	}
	return style.Render(head) + "\n" + dividerStyle.Render(unravel.Divider) + "\n" + body
}

// isTerminal reports whether w is a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
