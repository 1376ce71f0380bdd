package unravel

import "strings"

// Banner markers. StripAnnotation recognizes exactly these two.
const (
	WarningMarker = "[!] "
	TraceMarker   = "[*] "
)

// traceTitle precedes the step list in a trace banner.
const traceTitle = "Smart decode: "

// TraceArrow joins step labels in a trace banner.
const TraceArrow = " → "

// dividerWidth is the fixed width of the divider line.
const dividerWidth = 40

// Divider separates a banner from the decoded body.
var Divider = strings.Repeat("─", dividerWidth)

// separator is everything between the banner line and the body.
var separator = "\n" + Divider + "\n"

// FormatTrace prefixes body with a trace banner listing the applied steps in
// order. An empty trace returns body unchanged.
func FormatTrace(trace []string, body string) string {
	if len(trace) == 0 {
		return body
	}
	return TraceMarker + traceTitle + strings.Join(trace, TraceArrow) + separator + body
}

// FormatWarning prefixes body with a warning banner for a lossy decode.
// No warnings returns body unchanged.
func FormatWarning(warnings []string, body string) string {
	if len(warnings) == 0 {
		return body
	}
	return WarningMarker + strings.Join(warnings, "; ") + separator + body
}

// StripAnnotation removes a leading banner produced by FormatTrace or
// FormatWarning. Text without one is returned unchanged, so stripping
// already-stripped text is a no-op.
func StripAnnotation(text string) string {
	if !HasAnnotation(text) {
		return text
	}
	_, body, _ := strings.Cut(text, separator)
	return body
}

// HasAnnotation reports whether text starts with a banner.
func HasAnnotation(text string) bool {
	if !strings.HasPrefix(text, WarningMarker) && !strings.HasPrefix(text, TraceMarker) {
		return false
	}
	head, _, found := strings.Cut(text, separator)
	// The banner is a single line.
	return found && !strings.Contains(head, "\n")
}
