package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStateMissingFileIsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")

	state, err := LoadState(path)
	require.NoError(t, err)
	assert.Empty(t, state.Get("player:GAME01"))
}

func TestStateRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")

	state, err := LoadState(path)
	require.NoError(t, err)
	require.NoError(t, state.Set(playerKey("GAME01"), "PLYR02"))

	reloaded, err := LoadState(path)
	require.NoError(t, err)
	assert.Equal(t, "PLYR02", reloaded.Get(playerKey("GAME01")))
}

func TestStateRemove(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")

	state, err := LoadState(path)
	require.NoError(t, err)
	require.NoError(t, state.Set(playerKey("GAME01"), "PLYR02"))
	require.NoError(t, state.Remove(playerKey("GAME01")))

	reloaded, err := LoadState(path)
	require.NoError(t, err)
	assert.Empty(t, reloaded.Get(playerKey("GAME01")))
}

func TestStateCreatesParentDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "state.json")

	state, err := LoadState(path)
	require.NoError(t, err)
	require.NoError(t, state.Set("k", "v"))

	_, err = os.Stat(path)
	assert.NoError(t, err)
}

func TestStateRejectsCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0600))

	_, err := LoadState(path)
	assert.Error(t, err)
}
