package settings

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFile(t *testing.T) {
	path := writeFile(t, "settings.yaml", `
warn_only: true
user: deploy
port: 2222
keepalive:
  interval: 30s
`)

	s := NewStore(Defaults())
	require.NoError(t, s.LoadFile(path))

	assert.True(t, s.GetBool("warn_only"))
	assert.Equal(t, "deploy", s.GetString("user"))
	assert.Equal(t, 2222, s.GetInt("port"))

	nested, ok := s.Get("keepalive")
	require.True(t, ok)
	m, ok := nested.(map[string]any)
	require.True(t, ok, "nested mappings keep string keys")
	assert.Equal(t, "30s", m["interval"])
}

func TestLoadFileEmpty(t *testing.T) {
	path := writeFile(t, "settings.yaml", "")
	s := NewStore(map[string]any{"user": "deploy"})
	require.NoError(t, s.LoadFile(path))
	assert.Equal(t, "deploy", s.GetString("user"), "empty file leaves the store alone")
}

func TestLoadFileRejectsNonMapping(t *testing.T) {
	path := writeFile(t, "settings.yaml", "- just\n- a\n- list\n")
	s := NewStore(nil)
	err := s.LoadFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "top level must be a mapping")
}

func TestLoadFileMissing(t *testing.T) {
	s := NewStore(nil)
	err := s.LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestLoadFileBadYAML(t *testing.T) {
	path := writeFile(t, "settings.yaml", "user: [unclosed\n")
	s := NewStore(nil)
	require.Error(t, s.LoadFile(path))
}
