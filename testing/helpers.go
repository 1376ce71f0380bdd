// Package testing provides fixture encoders and sample records for unravel tests.
//
// The encoders are the inverses of the builtin transforms, so fixtures can be
// written as plaintext and layered:
//
//	in := testing.Layers("whoami", testing.UnicodeEscape, testing.URL)
//	// in resolves through URL then Unicode.
package testing

import (
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"strings"
	"unicode/utf16"
)

// Encoder turns plaintext into one layer of encoding.
type Encoder func(string) string

// Hex encodes s as lowercase hex digit pairs.
func Hex(s string) string {
	return hex.EncodeToString([]byte(s))
}

// Base64 encodes s as padded standard Base64.
func Base64(s string) string {
	return base64.StdEncoding.EncodeToString([]byte(s))
}

// PSBase64 encodes s as Base64 over UTF-16LE, the PowerShell -EncodedCommand form.
func PSBase64(s string) string {
	units := utf16.Encode([]rune(s))
	b := make([]byte, 0, len(units)*2)
	for _, u := range units {
		b = append(b, byte(u), byte(u>>8))
	}
	return base64.StdEncoding.EncodeToString(b)
}

// URL percent-encodes every byte of s.
func URL(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		fmt.Fprintf(&b, "%%%02X", s[i])
	}
	return b.String()
}

// UnicodeEscape writes every character of s as a \uXXXX escape, using
// surrogate pairs outside the BMP.
func UnicodeEscape(s string) string {
	var b strings.Builder
	for _, u := range utf16.Encode([]rune(s)) {
		fmt.Fprintf(&b, `\u%04x`, u)
	}
	return b.String()
}

// Layers applies encoders to s in order; the last one is outermost.
func Layers(s string, encoders ...Encoder) string {
	for _, enc := range encoders {
		s = enc(s)
	}
	return s
}

// PlainRecord is a test type with no decode tags.
type PlainRecord struct {
	ID   string `json:"id" yaml:"id" msgpack:"id" bson:"id"`
	Body string `json:"body" yaml:"body" msgpack:"body" bson:"body"`
}

// Clone implements Cloner[PlainRecord].
func (r PlainRecord) Clone() PlainRecord { return r }

// Incident is a test type with one field per field shape the processor decodes.
type Incident struct {
	ID      string            `json:"id" yaml:"id" msgpack:"id" bson:"id"`
	Command string            `json:"command" yaml:"command" msgpack:"command" bson:"command" decode:"smart"`
	Script  string            `json:"script" yaml:"script" msgpack:"script" bson:"script" decode:"psBase64"`
	Token   string            `json:"token" yaml:"token" msgpack:"token" bson:"token" decode:"hex"`
	Args    []string          `json:"args" yaml:"args" msgpack:"args" bson:"args" decode:"base64"`
	Headers map[string]string `json:"headers" yaml:"headers" msgpack:"headers" bson:"headers" decode:"url"`
}

// Clone implements Cloner[Incident].
func (i Incident) Clone() Incident {
	clone := Incident{ID: i.ID, Command: i.Command, Script: i.Script, Token: i.Token}
	if i.Args != nil {
		clone.Args = make([]string, len(i.Args))
		copy(clone.Args, i.Args)
	}
	if i.Headers != nil {
		clone.Headers = make(map[string]string, len(i.Headers))
		for k, v := range i.Headers {
			clone.Headers[k] = v
		}
	}
	return clone
}

// DecodedIncident returns the plaintext Incident that EncodedIncident encodes.
func DecodedIncident() Incident {
	return Incident{
		ID:      "inc-42",
		Command: "ping -n 1 host",
		Script:  "Write-Host hi",
		Token:   "secret",
		Args:    []string{"alpha", "beta"},
		Headers: map[string]string{"referer": "a b&c"},
	}
}

// EncodedIncident returns DecodedIncident with every tagged field encoded.
// Command is encoded twice, as Unicode escapes and then percent-encoding.
func EncodedIncident() Incident {
	d := DecodedIncident()
	return Incident{
		ID:      d.ID,
		Command: Layers(d.Command, UnicodeEscape, URL),
		Script:  PSBase64(d.Script),
		Token:   Hex(d.Token),
		Args:    []string{Base64(d.Args[0]), Base64(d.Args[1])},
		Headers: map[string]string{"referer": URL(d.Headers["referer"])},
	}
}
