package unravel

import (
	"errors"
	"strings"
	"testing"
	"unicode/utf8"
)

func TestBase64Decoder(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"padded", "SGVsbG8=", "Hello"},
		{"missing padding", "SGVsbG8", "Hello"},
		{"two pad chars", "SGk=", "Hi"},
		{"line breaks", "SGVs\nbG8=", "Hello"},
		{"quoted", `"SGVsbG8="`, "Hello"},
		{"utf-8", "5L2g5aW9", "你好"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Base64Decoder().Decode(tt.in)
			if err != nil {
				t.Fatalf("Decode() error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Decode(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestBase64Decoder_Errors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want error
	}{
		{"too few chars", "SG", ErrInvalidFormat},
		{"no alphabet chars", "!!!!", ErrInvalidFormat},
		{"empty", "", ErrInvalidFormat},
		{"remainder one", "SGVsbG8gd", ErrDecode},
		{"misplaced padding", "SG=sbG8=", ErrDecode},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Base64Decoder().Decode(tt.in)
			if !errors.Is(err, tt.want) {
				t.Errorf("Decode(%q) error = %v, want %v", tt.in, err, tt.want)
			}
		})
	}
}

func TestBase64Decoder_InvalidUTF8(t *testing.T) {
	got, err := Base64Decoder().Decode("//79")
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}
	if !utf8.ValidString(got) || !strings.ContainsRune(got, utf8.RuneError) {
		t.Errorf("Decode() = %q, want replacement characters", got)
	}
}

func TestPSBase64Decoder(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"ascii", "SABpAA==", "Hi"},
		{"missing padding", "SABpAA", "Hi"},
		{"byte order mark", "//5IAGkA", "Hi"},
		{"odd trailing byte", "SABpACE=", "Hi"},
		{"cjk", "YE99WQ==", "你好"},
		{"command", "VwByAGkAdABlAC0ASABvAHMAdAAgAGgAaQA=", "Write-Host hi"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := PSBase64Decoder().Decode(tt.in)
			if err != nil {
				t.Fatalf("Decode() error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Decode(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestPSBase64Decoder_RemainderOne(t *testing.T) {
	_, err := PSBase64Decoder().Decode("SABpAAAAA")
	if !errors.Is(err, ErrDecode) {
		t.Fatalf("Decode() error = %v, want ErrDecode", err)
	}
	if Kind(err) != KindDecodeError {
		t.Errorf("Kind() = %q, want %q", Kind(err), KindDecodeError)
	}

	var te *TransformError
	if !errors.As(err, &te) || te.Transform != TransformPSBase64 {
		t.Errorf("error = %v, want psBase64 TransformError", err)
	}
}

func TestPSBase64Decoder_TooShort(t *testing.T) {
	_, err := PSBase64Decoder().Decode("SA")
	if !errors.Is(err, ErrInvalidFormat) {
		t.Errorf("Decode() error = %v, want ErrInvalidFormat", err)
	}
}

func TestLooksBase64(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"SGVsbG8=", true},
		{"  SGVsbG8=\n", true},
		{"SGVsbG8", false},
		{"SGVs bG8=", true},
		{"SGVsbG8=!", false},
	}

	for _, tt := range tests {
		if got := looksBase64(tt.in); got != tt.want {
			t.Errorf("looksBase64(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
