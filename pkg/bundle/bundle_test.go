package bundle

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"codebundle/pkg/registry"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestRunSkipsBinAndRemovesBlankLines(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"a.py":       "import os\n\nprint(os.name)\n",
		"b/bin/c.py": "print('built')\n",
	})
	out := filepath.Join(root, "out.txt")

	cfg := mustConfig(t, Options{Languages: []string{"py"}, Output: out, RemoveEmptyLines: true})
	res, err := Run(root, cfg, registry.Default(), zaptest.NewLogger(t))
	require.NoError(t, err)

	assert.Equal(t, StatusCreated, res.Status)
	assert.Equal(t, 1, res.Files)
	assert.Equal(t, out, res.Output)

	got, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "import os\nprint(os.name)\n\n"+Separator+"\n\n", string(got))
}

func TestRunNoFilesLeavesOutputUntouched(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{"readme.txt": "hello\n"})
	out := filepath.Join(root, "out.txt")

	cfg := mustConfig(t, Options{Languages: []string{"all"}, Output: out})
	res, err := Run(root, cfg, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, StatusNoFiles, res.Status)
	assert.NoFileExists(t, out)

	require.NoError(t, os.WriteFile(out, []byte("previous"), 0o644))
	res, err = Run(root, cfg, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, StatusNoFiles, res.Status)

	got, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "previous", string(got))
}

func TestRunSortByType(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"x.py":  "x\n",
		"a.cpp": "a\n",
	})
	out := filepath.Join(root, "out.txt")

	cfg := mustConfig(t, Options{Languages: []string{"all"}, Output: out, Sort: "type", IncludeNote: true})
	_, err := Run(root, cfg, nil, nil)
	require.NoError(t, err)

	got, err := os.ReadFile(out)
	require.NoError(t, err)
	want := "// Source: " + filepath.Join(root, "a.cpp") + "\na\n\n" + Separator + "\n\n" +
		"// Source: " + filepath.Join(root, "x.py") + "\nx\n\n" + Separator + "\n\n"
	assert.Equal(t, want, string(got))
}

func TestRunDoesNotBundleItsOwnOutput(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{"a.py": "a\n"})
	out := filepath.Join(root, "bundle.py")

	cfg := mustConfig(t, Options{Languages: []string{"py"}, Output: out})
	for i := 0; i < 2; i++ {
		res, err := Run(root, cfg, nil, nil)
		require.NoError(t, err)
		assert.Equal(t, 1, res.Files)
	}

	got, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "a\n\n"+Separator+"\n\n", string(got))
}

func TestRunResolvesRelativeOutput(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{"a.py": "a\n"})
	chdir(t, root)

	cfg := mustConfig(t, Options{Languages: []string{"py"}, Output: "out.txt"})
	res, err := Run(root, cfg, nil, nil)
	require.NoError(t, err)

	wd, err := os.Getwd()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(wd, "out.txt"), res.Output)
	assert.FileExists(t, res.Output)
}

func TestRunMissingRoot(t *testing.T) {
	root := filepath.Join(t.TempDir(), "missing")
	cfg := mustConfig(t, Options{Languages: []string{"py"}, Output: filepath.Join(t.TempDir(), "out.txt")})

	_, err := Run(root, cfg, nil, nil)

	var notFound *SourceNotFoundError
	assert.True(t, errors.As(err, &notFound))
	assert.NoFileExists(t, cfg.Output())
}

func TestRunUnwritableOutput(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{"a.py": "a\n"})
	cfg := mustConfig(t, Options{Languages: []string{"py"}, Output: filepath.Join(root, "no", "such", "out.txt")})

	_, err := Run(root, cfg, nil, nil)

	var writeErr *OutputWriteError
	assert.True(t, errors.As(err, &writeErr))
}
