package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zoobzio/unravel"
)

// execute runs the CLI with an isolated config directory.
func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()

	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", home)
	t.Setenv("HOME", home)

	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

// stubClipboard replaces clipboard access and returns what was written.
func stubClipboard(t *testing.T, content string) *string {
	t.Helper()

	var written string
	oldRead, oldWrite := readClipboard, writeClipboard
	readClipboard = func() (string, error) { return content, nil }
	writeClipboard = func(s string) error {
		written = s
		return nil
	}
	t.Cleanup(func() {
		readClipboard, writeClipboard = oldRead, oldWrite
	})
	return &written
}

func TestSmart(t *testing.T) {
	out, _, err := execute(t, "", "smart", "%5Cu4f60%5Cu597d")
	require.NoError(t, err)

	want := unravel.FormatTrace([]string{"URL", "Unicode"}, "你好") + "\n"
	assert.Equal(t, want, out)
}

func TestSmart_Body(t *testing.T) {
	out, _, err := execute(t, "", "smart", "--body", "SGVsbG8=")
	require.NoError(t, err)
	assert.Equal(t, "Hello\n", out)
}

func TestSmart_JSON(t *testing.T) {
	out, _, err := execute(t, "", "smart", "--json", "SABpAA==")
	require.NoError(t, err)

	var res unravel.SmartResult
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, []string{"PS Base64"}, res.Trace)
	assert.Equal(t, "Hi", res.Body)
	assert.Equal(t, 1, res.Rounds)
}

func TestSmart_BodyAndJSONExclusive(t *testing.T) {
	_, _, err := execute(t, "", "smart", "--body", "--json", "SGVsbG8=")
	assert.Error(t, err)
}

func TestSmart_Stdin(t *testing.T) {
	out, _, err := execute(t, "48656c6c6f\n", "smart", "--body")
	require.NoError(t, err)
	assert.Equal(t, "Hello\n", out)
}

func TestSmart_Plaintext(t *testing.T) {
	out, _, err := execute(t, "", "smart", "just", "words")
	require.NoError(t, err)
	assert.Equal(t, "just words\n", out)
}

func TestSmart_NoInput(t *testing.T) {
	_, _, err := execute(t, "", "smart")
	assert.ErrorIs(t, err, errNoInput)
}

func TestSmart_Verbose(t *testing.T) {
	_, errOut, err := execute(t, "", "-v", "smart", "SGVsbG8=")
	require.NoError(t, err)
	assert.Contains(t, errOut, "smart decode")
}

func TestDecode(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"decode", "hex", "48656c6c6f"}, "Hello\n"},
		{[]string{"decode", "hex", "48", "65", "6c"}, "Hel\n"},
		{[]string{"decode", "url", "%E4%BD%A0%E5%A5%BD"}, "你好\n"},
		{[]string{"decode", "base64", "SGVsbG8"}, "Hello\n"},
		{[]string{"decode", "psBase64", "SABpAA=="}, "Hi\n"},
		{[]string{"decode", "beautify", "[1]"}, "[\n  1\n]\n"},
	}

	for _, tt := range tests {
		t.Run(strings.Join(tt.args, " "), func(t *testing.T) {
			out, _, err := execute(t, "", tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestDecode_UnknownTransform(t *testing.T) {
	_, _, err := execute(t, "", "decode", "rot13", "uryyb")
	assert.ErrorIs(t, err, unravel.ErrUnknownTransform)
}

func TestDecode_TransformError(t *testing.T) {
	_, _, err := execute(t, "", "decode", "base64", "SG")
	require.Error(t, err)
	assert.ErrorIs(t, err, unravel.ErrInvalidFormat)
	assert.True(t, strings.HasPrefix(err.Error(), "InvalidFormat: "), err.Error())
}

func TestDecode_MissingTransform(t *testing.T) {
	_, _, err := execute(t, "", "decode")
	assert.Error(t, err)
}

func TestStrip(t *testing.T) {
	annotated := unravel.FormatTrace([]string{"Hex"}, "Hello")

	out, _, err := execute(t, annotated, "strip")
	require.NoError(t, err)
	assert.Equal(t, "Hello\n", out)
}

func TestTransforms(t *testing.T) {
	out, _, err := execute(t, "", "transforms")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Len(t, lines, len(unravel.Transforms()))
	assert.Contains(t, out, "psBase64")
	assert.Contains(t, out, "PS Base64")
}

func TestDigest(t *testing.T) {
	out, _, err := execute(t, "", "--digest", "sha256", "smart", "SGVsbG8=")
	require.NoError(t, err)
	assert.Contains(t, out, "sha256: 185f8db32271fe25f561a6fc938b2e264306ec304eda518007d1764826381969\n")
}

func TestDigest_Invalid(t *testing.T) {
	_, _, err := execute(t, "", "--digest", "md5", "smart", "SGVsbG8=")
	assert.Error(t, err)
}

func TestClipboard(t *testing.T) {
	written := stubClipboard(t, "SGVsbG8=")

	out, _, err := execute(t, "", "--clipboard", "smart", "--body")
	require.NoError(t, err)
	assert.Equal(t, "Hello\n", out)
	assert.Equal(t, "Hello", *written)
}

func TestClipboard_ReadError(t *testing.T) {
	stubClipboard(t, "")
	readClipboard = func() (string, error) { return "", errors.New("no clipboard utility") }

	_, _, err := execute(t, "", "--clipboard", "smart")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read clipboard")
}

func TestClipboard_ArgsWin(t *testing.T) {
	written := stubClipboard(t, "ignored")

	out, _, err := execute(t, "", "--clipboard", "decode", "hex", "4869")
	require.NoError(t, err)
	assert.Equal(t, "Hi\n", out)
	assert.Equal(t, "Hi", *written)
}

func TestConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "unravel.yaml")
	require.NoError(t, os.WriteFile(path, []byte("indent: 4\ndigest: sha256\n"), 0o600))

	out, _, err := execute(t, "", "--config", path, "decode", "beautify", "[1]")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "[\n    1\n]\n"), out)
	assert.Contains(t, out, "sha256: ")
}

func TestConfigFile_Missing(t *testing.T) {
	_, _, err := execute(t, "", "--config", filepath.Join(t.TempDir(), "missing.yaml"), "transforms")
	assert.Error(t, err)
}

func TestStyleBanner(t *testing.T) {
	plain := "no banner"
	assert.Equal(t, plain, styleBanner(plain))

	styled := styleBanner(unravel.FormatTrace([]string{"Hex"}, "Hello"))
	assert.Contains(t, styled, "Smart decode: Hex")
	assert.True(t, strings.HasSuffix(styled, "\nHello"))

	warned := styleBanner(unravel.FormatWarning([]string{"truncated"}, "body"))
	assert.Contains(t, warned, "truncated")
	assert.True(t, strings.HasSuffix(warned, "\nbody"))
}

func TestIsTerminal(t *testing.T) {
	assert.False(t, isTerminal(&bytes.Buffer{}))
}
