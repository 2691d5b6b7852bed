package scan

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/unityfix/pkg/rewrite"
	"github.com/walteh/unityfix/pkg/rules"
	"github.com/walteh/unityfix/pkg/status"
)

func writeFile(t *testing.T, root, rel string, content []byte) string {
	t.Helper()
	path := filepath.Join(root, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, content, 0o644))
	return path
}

func newTestScanner(t *testing.T, root string, console *bytes.Buffer) *Scanner {
	t.Helper()
	scanner, err := New(Options{
		Root:      root,
		Rewriter:  rewrite.NewRegexRewriter(),
		Table:     rules.Catalog(),
		Formatter: status.NewDefaultFileFormatter(),
		Console:   console,
	})
	require.NoError(t, err)
	return scanner
}

func TestScanner_RewritesTree(t *testing.T) {
	color.NoColor = true
	root := t.TempDir()

	writeFile(t, root, "a.cs", []byte("var p = FindObjectOfType<Player>();\n"))
	writeFile(t, root, "sub/b.cs", []byte("x = FindObjectsOfType<Enemy>(true);\ny = FindObjectOfType(typeof(Camera));\n"))
	writeFile(t, root, "clean.cs", []byte("public class Clean { }\n"))
	writeFile(t, root, "notes.txt", []byte("FindObjectOfType<Player>();\n"))

	var console bytes.Buffer
	scanner := newTestScanner(t, root, &console)

	summary, err := scanner.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 3, summary.FilesScanned)
	assert.Equal(t, 2, summary.FilesModified)
	assert.Equal(t, 3, summary.TotalChanges)
	assert.Equal(t, 0, summary.Errors)

	got, err := os.ReadFile(filepath.Join(root, "a.cs"))
	require.NoError(t, err)
	assert.Equal(t, "var p = FindFirstObjectByType<Player>();\n", string(got))

	got, err = os.ReadFile(filepath.Join(root, "sub", "b.cs"))
	require.NoError(t, err)
	assert.Equal(t,
		"x = FindObjectsByType<Enemy>(FindObjectsInactive.Include, FindObjectsSortMode.None);\ny = FindFirstObjectByType(typeof(Camera));\n",
		string(got))

	got, err = os.ReadFile(filepath.Join(root, "clean.cs"))
	require.NoError(t, err)
	assert.Equal(t, "public class Clean { }\n", string(got))

	// Wrong extension is never opened, even with matching text inside
	got, err = os.ReadFile(filepath.Join(root, "notes.txt"))
	require.NoError(t, err)
	assert.Equal(t, "FindObjectOfType<Player>();\n", string(got))

	out := console.String()
	assert.Contains(t, out, "Fixed 1 instance(s) in: a.cs")
	assert.Contains(t, out, filepath.Join("sub", "b.cs"))
	assert.Contains(t, out, "Files modified: 2")
	assert.Contains(t, out, "Total changes: 3")
	assert.NotContains(t, out, "clean.cs")
}

func TestScanner_NothingToDo(t *testing.T) {
	color.NoColor = true
	root := t.TempDir()

	writeFile(t, root, "modern.cs", []byte("var p = FindFirstObjectByType<Player>();\n"))

	var console bytes.Buffer
	scanner := newTestScanner(t, root, &console)

	summary, err := scanner.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, summary.FilesScanned)
	assert.Equal(t, 0, summary.FilesModified)
	assert.Equal(t, 0, summary.TotalChanges)
	assert.Contains(t, console.String(), "No deprecated FindObject calls found!")
}

func TestScanner_PerFileErrorDoesNotAbort(t *testing.T) {
	color.NoColor = true
	root := t.TempDir()

	// Binary garbage under the target extension is a per-file error
	writeFile(t, root, "broken.cs", []byte{0xff, 0xfe, 0x00, 0x41})
	writeFile(t, root, "ok.cs", []byte("var p = FindObjectOfType<Player>();\n"))

	var console bytes.Buffer
	scanner := newTestScanner(t, root, &console)

	summary, err := scanner.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, summary.FilesScanned)
	assert.Equal(t, 1, summary.FilesModified)
	assert.Equal(t, 1, summary.TotalChanges)
	assert.Equal(t, 1, summary.Errors)

	// The failing file is reported and left untouched
	assert.Contains(t, console.String(), "Error processing broken.cs")
	got, err := os.ReadFile(filepath.Join(root, "broken.cs"))
	require.NoError(t, err)
	assert.Equal(t, []byte{0xff, 0xfe, 0x00, 0x41}, got)

	got, err = os.ReadFile(filepath.Join(root, "ok.cs"))
	require.NoError(t, err)
	assert.Equal(t, "var p = FindFirstObjectByType<Player>();\n", string(got))
}

func TestScanner_SecondRunIsNoop(t *testing.T) {
	color.NoColor = true
	root := t.TempDir()

	writeFile(t, root, "a.cs", []byte("var p = FindObjectOfType<Player>(false);\n"))

	var console bytes.Buffer
	scanner := newTestScanner(t, root, &console)

	first, err := scanner.Run(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, first.FilesModified)

	second, err := scanner.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, second.FilesModified)
	assert.Equal(t, 0, second.TotalChanges)
}

func TestNew_Validation(t *testing.T) {
	tests := []struct {
		name      string
		setup     func(t *testing.T) Options
		wantError string
	}{
		{
			name: "nonexistent_root",
			setup: func(t *testing.T) Options {
				return Options{Root: filepath.Join(t.TempDir(), "missing")}
			},
			wantError: "checking root path",
		},
		{
			name: "root_is_a_file",
			setup: func(t *testing.T) Options {
				root := t.TempDir()
				path := writeFile(t, root, "file.cs", []byte("x"))
				return Options{Root: path}
			},
			wantError: "not a directory",
		},
		{
			name: "invalid_glob",
			setup: func(t *testing.T) Options {
				return Options{Root: t.TempDir(), Glob: "[invalid"}
			},
			wantError: "invalid glob pattern",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.setup(t))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantError)
		})
	}
}

func TestScanner_CustomGlob(t *testing.T) {
	color.NoColor = true
	root := t.TempDir()

	writeFile(t, root, "a.cs", []byte("FindObjectOfType<A>();"))
	writeFile(t, root, "b.txt", []byte("FindObjectOfType<B>();"))

	var console bytes.Buffer
	scanner, err := New(Options{
		Root:      root,
		Glob:      "**/*.txt",
		Rewriter:  rewrite.NewRegexRewriter(),
		Table:     rules.Catalog(),
		Formatter: status.NewDefaultFileFormatter(),
		Console:   &console,
	})
	require.NoError(t, err)

	summary, err := scanner.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, summary.FilesScanned)
	assert.Equal(t, 1, summary.FilesModified)

	got, err := os.ReadFile(filepath.Join(root, "b.txt"))
	require.NoError(t, err)
	assert.Equal(t, "FindFirstObjectByType<B>();", string(got))

	got, err = os.ReadFile(filepath.Join(root, "a.cs"))
	require.NoError(t, err)
	assert.Equal(t, "FindObjectOfType<A>();", string(got))
}
