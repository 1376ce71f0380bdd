package unravel

import (
	"context"
	"strings"
	"time"
)

// MaxRounds bounds the resolver loop.
const MaxRounds = 15

// SmartResult describes one resolver run.
type SmartResult struct {
	// Text is the annotated output, or the original input when no step applied.
	Text string `json:"text"`

	// Body is the final decoded text without a banner.
	Body string `json:"body"`

	// Trace lists the labels of the applied steps in order.
	Trace []string `json:"trace"`

	// Warnings collects lossy-decode notes from accepted steps.
	Warnings []string `json:"warnings,omitempty"`

	// Rounds is the number of loop iterations run.
	Rounds int `json:"rounds"`
}

// Decoded reports whether at least one step applied.
func (r SmartResult) Decoded() bool {
	return len(r.Trace) > 0
}

// step is an accepted candidate for one round.
type step struct {
	transform Transform
	text      string
	warnings  []string
}

// Smart repeatedly decodes text until it looks like plaintext, nothing more
// applies, or MaxRounds is reached. It never fails: a transform that rejects
// the text is skipped.
//
// Each round tries Unicode, URL, Hex and then the Base64 family, and accepts
// the first output that passes IsValidDecode. The loop stops early once the
// output is valid and no longer looks encoded. Leftover \n, \t, \r, \" and \'
// escapes are resolved once after the loop.
func (e *Engine) Smart(ctx context.Context, text string) SmartResult {
	start := time.Now()

	var (
		trace    []string
		warnings []string
		rounds   int
	)
	current := text

	for rounds < MaxRounds {
		rounds++
		current = StripAnnotation(current)

		s, ok := e.nextStep(current)
		if !ok {
			break
		}
		current = s.text
		trace = append(trace, s.transform.Label())
		warnings = append(warnings, s.warnings...)
		emitSmartRound(ctx, rounds, s.transform, len(current))

		if IsValidDecode(current) && !CouldBeEncoded(current) {
			break
		}
	}
	current = StripAnnotation(current)

	if hasEscapes(current) {
		current = escapeReplacer.Replace(current)
		trace = append(trace, TransformUnescape.Label())
	}

	res := SmartResult{
		Text:     text,
		Body:     current,
		Trace:    trace,
		Warnings: warnings,
		Rounds:   rounds,
	}
	if res.Decoded() {
		res.Text = FormatTrace(trace, current)
	}

	emitSmartComplete(ctx, strings.Join(trace, TraceArrow), rounds, time.Since(start))
	return res
}

// nextStep returns the first candidate, in priority order, whose output
// differs from text and passes IsValidDecode.
func (e *Engine) nextStep(text string) (step, bool) {
	if unicodePattern.MatchString(text) {
		if s, ok := e.try(TransformUnicode, text); ok {
			return s, true
		}
	}

	if percentPattern.MatchString(text) {
		if s, ok := e.try(TransformURL, text); ok {
			return s, true
		}
	}

	if looksHex(text) {
		out, warns, err := decodeHex(text)
		if err == nil && out != text && IsValidDecode(out) {
			return step{transform: TransformHex, text: out, warnings: warns}, true
		}
	}

	if looksBase64(text) {
		if s, ok := e.pickBase64(text); ok {
			return s, true
		}
	}

	return step{}, false
}

// try runs one builtin decoder and reports whether its output is acceptable.
func (e *Engine) try(t Transform, text string) (step, bool) {
	out, err := e.decoders[t].Decode(text)
	if err != nil || out == text || !IsValidDecode(out) {
		return step{}, false
	}
	return step{transform: t, text: out}, true
}

// pickBase64 decodes text as both plain and UTF-16LE Base64 and chooses
// between the valid results. A result without NUL characters beats one with
// them; otherwise the lower ControlRatio wins, and plain Base64 wins a tie.
func (e *Engine) pickBase64(text string) (step, bool) {
	plain, plainOK := e.try(TransformBase64, text)
	wide, wideOK := e.try(TransformPSBase64, text)

	switch {
	case plainOK && wideOK:
		plainNUL, wideNUL := hasNUL(plain.text), hasNUL(wide.text)
		if plainNUL != wideNUL {
			if plainNUL {
				return wide, true
			}
			return plain, true
		}
		if ControlRatio(wide.text) < ControlRatio(plain.text) {
			return wide, true
		}
		return plain, true
	case plainOK:
		return plain, true
	case wideOK:
		return wide, true
	}
	return step{}, false
}

// looksHex is the resolver's pre-check for hex.
func looksHex(text string) bool {
	clean := cleanHex(text)
	return len(clean) >= MinHexDigits && hexDigits.MatchString(clean)
}
