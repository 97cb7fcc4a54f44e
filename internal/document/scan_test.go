package document

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func chdir(t *testing.T, dir string) {
	t.Helper()
	origDir, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		_ = os.Chdir(origDir)
	})
}

func TestScanner_Scan(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	writeFile(t, dir, "styles/buttons.selectors.yaml", sampleYAML)
	writeFile(t, dir, "styles/nested/forms.selectors.yaml", sampleYAML)
	writeFile(t, dir, "styles/tables.selectors.json", sampleJSON)
	writeFile(t, dir, "build/generated.selectors.yaml", sampleYAML)
	writeFile(t, dir, ".gitignore", "build/\n")
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "styles", "dir.selectors.yaml"), 0o755))

	s := NewScanner(zaptest.NewLogger(t), ".gitignore")
	files, stats, err := s.Scan([]string{
		"**/*.selectors.yaml",
		"styles/*.selectors.json",
		"styles/buttons.selectors.yaml", // duplicate match
	})
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{
		filepath.Join("styles", "buttons.selectors.yaml"),
		filepath.Join("styles", "nested", "forms.selectors.yaml"),
		filepath.Join("styles", "tables.selectors.json"),
	}, files)
	assert.Equal(t, 4, stats.FilesDiscovered)
	assert.Equal(t, 3, stats.FilesScanned)
	assert.Equal(t, 1, stats.FilesSkipped)
}

func TestScanner_MissingIgnoreFile(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	writeFile(t, dir, "build/a.yaml", sampleYAML)

	s := NewScanner(nil, ".gitignore")
	files, stats, err := s.Scan([]string{"**/*.yaml"})
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join("build", "a.yaml")}, files)
	assert.Equal(t, 0, stats.FilesSkipped)
}

func TestScanner_AbsolutePathsIgnoreGitignore(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	path := writeFile(t, dir, "build/a.yaml", sampleYAML)
	writeFile(t, dir, ".gitignore", "build/\n")

	s := NewScanner(nil, ".gitignore")
	files, _, err := s.Scan([]string{filepath.Join(dir, "build", "*.yaml")})
	require.NoError(t, err)
	assert.Equal(t, []string{path}, files)
}

func TestScanner_BadPattern(t *testing.T) {
	_, _, err := NewScanner(nil, "").Scan([]string{"[unclosed"})
	require.Error(t, err)
}
