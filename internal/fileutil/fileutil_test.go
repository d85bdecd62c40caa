package fileutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "plain title unchanged", input: "Dune", want: "Dune"},
		{name: "colon becomes dash", input: "Dune: Messiah", want: "Dune - Messiah"},
		{name: "slashes replaced", input: "Fahrenheit 451/452", want: "Fahrenheit 451-452"},
		{name: "backslashes replaced", input: "a\\b", want: "a-b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SanitizeFilename(tt.input))
		})
	}
}

func TestBuildCoverFilename(t *testing.T) {
	assert.Equal(t, "Dune - cover.jpg", BuildCoverFilename("Dune"))
	assert.Equal(t, "Dune - Messiah - cover.jpg", BuildCoverFilename("Dune: Messiah"))
}

func TestFileExists(t *testing.T) {
	dir := t.TempDir()

	assert.False(t, FileExists(filepath.Join(dir, "missing.jpg")))
	assert.False(t, FileExists(dir))

	path := filepath.Join(dir, "present.jpg")
	assert.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
	assert.True(t, FileExists(path))
}
