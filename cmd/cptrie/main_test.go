package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/forestrie/go-codepointtrie/cptrie"
	"github.com/forestrie/go-codepointtrie/triestore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runCLI parses args as the binary would and returns what the command wrote.
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var c cli
	parser, err := kong.New(&c, append(parserOptions(), kong.Exit(func(int) {}))...)
	require.NoError(t, err)
	ctx, err := parser.Parse(append([]string{"--log-level", "NOOP"}, args...))
	if err != nil {
		return "", err
	}
	var out bytes.Buffer
	stdout = &out
	t.Cleanup(func() { stdout = os.Stdout })
	err = ctx.Run(&c.Globals)
	return out.String(), err
}

func lines(s string) []string { return strings.Split(strings.TrimSpace(s), "\n") }

func TestParseCodePoint(t *testing.T) {
	tests := []struct {
		in      string
		want    uint32
		wantErr bool
	}{
		{in: "U+0041", want: 0x41},
		{in: "u+10ffff", want: 0x10ffff},
		{in: "0x10500", want: 0x10500},
		{in: "65", want: 65},
		{in: "U+", wantErr: true},
		{in: "0xzz", wantErr: true},
		{in: "-1", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseCodePoint(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestInfoCmd_Run(t *testing.T) {
	out, err := runCLI(t, "info", "builtin:planes")
	require.NoError(t, err)
	assert.Contains(t, out, "container:          cpt1\n")
	assert.Contains(t, out, "type:               small\n")
	assert.Contains(t, out, "value width:        1\n")
	assert.Contains(t, out, "high start:         U+100000\n")
	assert.Contains(t, out, "high value:         16\n")

	_, err = runCLI(t, "info", "builtin:nope")
	require.ErrorIs(t, err, triestore.ErrNotFound)
}

func TestGetCmd_Run(t *testing.T) {
	out, err := runCLI(t, "get", "builtin:planes", "U+0041", "0x10500", "U+10FFFF", "U+110000", "--text", "A\U00020500")
	require.NoError(t, err)
	assert.Equal(t, []string{
		"U+0041\t0",
		"U+10500\t1",
		"U+10FFFF\t16",
		"U+110000\t0",
		"U+0041\t0",
		"U+20500\t2",
	}, lines(out))

	_, err = runCLI(t, "get", "builtin:planes", "nonsense")
	require.Error(t, err)
}

func TestRangesCmd_Run(t *testing.T) {
	out, err := runCLI(t, "ranges", "builtin:planes")
	require.NoError(t, err)
	got := lines(out)
	require.Len(t, got, 17)
	assert.Equal(t, "U+0000..U+FFFF\t0", got[0])
	assert.Equal(t, "U+10000..U+1FFFF\t1", got[1])
	assert.Equal(t, "U+100000..U+10FFFF\t16", got[16])

	out, err = runCLI(t, "ranges", "builtin:planes", "--start", "U+1F000", "-n", "2")
	require.NoError(t, err)
	assert.Equal(t, []string{"U+1F000..U+1FFFF\t1", "U+20000..U+2FFFF\t2"}, lines(out))
}

func TestConvertThenValidate(t *testing.T) {
	dir := t.TempDir()
	for _, tc := range []struct {
		file string
		args []string
	}{
		{file: "planes.cpt1", args: []string{"--to", "cpt1"}},
		{file: "planes.icu", args: []string{"--to", "icu"}},
		{file: "planes.cbor.xz", args: []string{"--to", "cbor", "--xz"}},
	} {
		args := append([]string{"convert", "builtin:planes", "-o", filepath.Join(dir, tc.file)}, tc.args...)
		_, err := runCLI(t, args...)
		require.NoError(t, err, tc.file)
	}

	b, err := os.ReadFile(filepath.Join(dir, "planes.cbor.xz"))
	require.NoError(t, err)
	assert.True(t, triestore.IsCompressed(b))

	out, err := runCLI(t, "--dir", dir, "validate")
	require.NoError(t, err)
	assert.Equal(t, []string{
		"ok   planes.cbor",
		"ok   planes.cpt1",
		"ok   planes.icu",
	}, lines(out))

	out, err = runCLI(t, "--dir", dir, "--container", "icu", "get", "planes.icu", "U+30000")
	require.NoError(t, err)
	assert.Equal(t, "U+30000\t3\n", out)

	_, err = runCLI(t, "--dir", dir, "--container", "icu", "get", "planes.cpt1", "U+30000")
	require.ErrorIs(t, err, triestore.ErrUnknownFormat)
}

func TestValidateCmd_ReportsFailures(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "junk"), []byte("junk"), 0o644))
	trie, err := cptrie.Planes()
	require.NoError(t, err)
	blob, err := trie.MarshalBinary()
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "good"), blob, 0o644))

	t.Setenv("CPTRIE_DIR", dir)
	out, err := runCLI(t, "validate")
	require.ErrorIs(t, err, triestore.ErrUnknownFormat)
	got := lines(out)
	require.Len(t, got, 2)
	assert.Equal(t, "ok   good", got[0])
	assert.True(t, strings.HasPrefix(got[1], "FAIL junk: "), got[1])
}

func TestDigestCmd_Run(t *testing.T) {
	trie, err := cptrie.Planes()
	require.NoError(t, err)
	blob, err := trie.MarshalBinary()
	require.NoError(t, err)

	out, err := runCLI(t, "digest", "builtin:planes")
	require.NoError(t, err)
	assert.Equal(t, triestore.Digest(blob)+"  builtin:planes\n", out)
}

func TestContainerFlagRejectsUnknown(t *testing.T) {
	_, err := runCLI(t, "--container", "zip", "info", "builtin:planes")
	require.Error(t, err)
}
