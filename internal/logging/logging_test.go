package logging

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_WritesJSONWithSession(t *testing.T) {
	file := filepath.Join(t.TempDir(), "logs", "organizer.log")
	log, err := New("debug", file)
	require.NoError(t, err)

	log.Debug("hello")
	log.Info("saved")
	_ = log.Sync()

	b, err := os.ReadFile(file)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(b)), "\n")
	require.Len(t, lines, 2)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &entry))
	assert.Equal(t, "saved", entry["msg"])
	assert.NotEmpty(t, entry["session_id"])
}

func TestNew_LevelFilters(t *testing.T) {
	file := filepath.Join(t.TempDir(), "organizer.log")
	log, err := New("warn", file)
	require.NoError(t, err)
	log.Info("quiet")
	_ = log.Sync()

	b, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Empty(t, strings.TrimSpace(string(b)))
}

func TestNew_BadLevel(t *testing.T) {
	_, err := New("loud", filepath.Join(t.TempDir(), "x.log"))
	assert.Error(t, err)
}
