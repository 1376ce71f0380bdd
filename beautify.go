package unravel

import (
	"bytes"
	"encoding/json"
	"strings"
)

// DefaultIndent is the number of spaces beautify indents by.
const DefaultIndent = 2

// beautifyDecoder pretty-prints JSON and code-like text.
type beautifyDecoder struct {
	indent string
}

// BeautifyDecoder returns a formatter that re-indents valid JSON by indent
// spaces. Other text is broken into lines after each bracket and comma, which
// is good enough to read minified code.
func BeautifyDecoder(indent int) Decoder {
	if indent < 0 {
		indent = DefaultIndent
	}
	return &beautifyDecoder{indent: strings.Repeat(" ", indent)}
}

func (d *beautifyDecoder) Decode(text string) (string, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return "", newTransformError(ErrInvalidFormat, TransformBeautify, "nothing to format", nil)
	}

	if json.Valid([]byte(trimmed)) {
		var buf bytes.Buffer
		if err := json.Indent(&buf, []byte(trimmed), "", d.indent); err == nil {
			return buf.String(), nil
		}
	}
	return d.breakLines(trimmed), nil
}

// breakLines inserts a newline after each of { } [ ] , and indents lines by
// bracket depth. Brackets inside quoted strings are left alone.
func (d *beautifyDecoder) breakLines(text string) string {
	var b strings.Builder
	depth := 0
	var quote rune
	escaped := false
	lineStart := true

	for _, r := range text {
		if quote != 0 {
			b.WriteRune(r)
			switch {
			case escaped:
				escaped = false
			case r == '\\':
				escaped = true
			case r == quote:
				quote = 0
			}
			continue
		}

		if lineStart {
			if r == ' ' || r == '\t' {
				continue
			}
			if r == '}' || r == ']' {
				depth = max(depth-1, 0)
			}
			b.WriteString(strings.Repeat(d.indent, depth))
			lineStart = false
		} else if r == '}' || r == ']' {
			depth = max(depth-1, 0)
		}

		b.WriteRune(r)
		switch r {
		case '"', '\'', '`':
			quote = r
		case '{', '[':
			depth++
			b.WriteByte('\n')
			lineStart = true
		case '}', ']', ',':
			b.WriteByte('\n')
			lineStart = true
		case '\n':
			lineStart = true
		}
	}
	return strings.TrimRight(b.String(), "\n")
}
