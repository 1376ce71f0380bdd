package yaml

import (
	"context"
	"testing"

	"github.com/zoobzio/unravel"
)

type logLine struct {
	Host    string            `yaml:"host"`
	Message string            `yaml:"message" decode:"smart"`
	Query   map[string]string `yaml:"query" decode:"url"`
}

func (l logLine) Clone() logLine {
	q := make(map[string]string, len(l.Query))
	for k, v := range l.Query {
		q[k] = v
	}
	l.Query = q
	return l
}

func TestContentType(t *testing.T) {
	c := New()
	if c.ContentType() != "application/yaml" {
		t.Errorf("ContentType() = %q, want %q", c.ContentType(), "application/yaml")
	}
}

func TestProcessorLoad(t *testing.T) {
	proc, err := unravel.NewProcessor[logLine](New())
	if err != nil {
		t.Fatalf("NewProcessor() error: %v", err)
	}

	data := []byte(`host: web-01
message: "48656c6c6f20776f726c64"
query:
  q: "a%20b%26c"
`)
	got, err := proc.Load(context.Background(), data)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if got.Message != "Hello world" {
		t.Errorf("Message = %q, want %q", got.Message, "Hello world")
	}
	if got.Query["q"] != "a b&c" {
		t.Errorf("Query[q] = %q, want %q", got.Query["q"], "a b&c")
	}
}

func TestUnmarshalInvalid(t *testing.T) {
	c := New()

	var v struct{ Name string }
	if err := c.Unmarshal([]byte("name: [unclosed"), &v); err == nil {
		t.Error("Unmarshal(invalid) should return error")
	}
}
