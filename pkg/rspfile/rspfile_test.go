package rspfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecode(t *testing.T) {
	args := []string{
		"bundle",
		"--output", "/tmp/my dir/out.txt",
		"--language", "py,cs",
		"--author", `O'Brien "Bob" $HOME`,
		"--note",
	}

	line, err := Encode(args)
	require.NoError(t, err)
	assert.NotContains(t, line, "\n")

	got, err := Decode(line)
	require.NoError(t, err)
	assert.Equal(t, args, got)
}

func TestEncodeLeavesPlainWordsUnquoted(t *testing.T) {
	line, err := Encode([]string{"bundle", "--sort", "name"})
	require.NoError(t, err)
	assert.Equal(t, "bundle --sort name", line)
}

func TestDecodeHandWrittenFile(t *testing.T) {
	got, err := Decode("bundle --output \"C:/out dir/x.txt\" --language cs js\n--note\n")
	require.NoError(t, err)
	assert.Equal(t, []string{"bundle", "--output", "C:/out dir/x.txt", "--language", "cs", "js", "--note"}, got)
}

func TestDecodeIgnoresEnvironment(t *testing.T) {
	t.Setenv("CODEBUNDLE_TEST_VAR", "leaked")
	got, err := Decode(`--author "$CODEBUNDLE_TEST_VAR"`)
	require.NoError(t, err)
	assert.Equal(t, []string{"--author", ""}, got)
}

func TestDecodeUnterminatedQuote(t *testing.T) {
	_, err := Decode(`--author "Ada`)
	assert.Error(t, err)
}

func TestExpand(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, Write(filepath.Join(dir, "a.rsp"), []string{"bundle", "-l", "py", "-o", "out file.txt"}))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "nested.rsp"), []byte("@a.rsp --note"), 0o644))

	got, err := Expand([]string{"@a.rsp", "-n"}, dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"bundle", "-l", "py", "-o", "out file.txt", "-n"}, got)

	got, err = Expand([]string{"@nested.rsp"}, dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"@a.rsp", "--note"}, got, "response files do not nest")

	got, err = Expand([]string{"@", "version"}, dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"@", "version"}, got)
}

func TestExpandMissingFile(t *testing.T) {
	_, err := Expand([]string{"@missing.rsp"}, t.TempDir())
	assert.ErrorIs(t, err, os.ErrNotExist)
}
