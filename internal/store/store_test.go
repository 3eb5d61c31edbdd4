package store_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/clambin/nest-alarm/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "persist", "store.yaml")

	s, err := store.Open(path)
	require.NoError(t, err)

	_, ok := s.Token()
	assert.False(t, ok)

	require.NoError(t, s.Set(store.KeySensorPath, "/tmp/w1_slave"))
	require.NoError(t, s.Set(store.KeyNestToken, "c.token"))

	s, err = store.Open(path)
	require.NoError(t, err)

	value, ok := s.Get(store.KeySensorPath)
	assert.True(t, ok)
	assert.Equal(t, "/tmp/w1_slave", value)

	token, ok := s.Token()
	assert.True(t, ok)
	assert.Equal(t, "c.token", token)

	_, ok = s.Get("foo")
	assert.False(t, ok)
}

func TestStore_EmptyToken(t *testing.T) {
	s, err := store.Open(filepath.Join(t.TempDir(), "store.yaml"))
	require.NoError(t, err)
	require.NoError(t, s.Set(store.KeyNestToken, ""))
	_, ok := s.Token()
	assert.False(t, ok)
}

func TestOpen_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.yaml")
	require.NoError(t, os.WriteFile(path, []byte("- not\n- a map\n"), 0o600))
	_, err := store.Open(path)
	assert.Error(t, err)

	path = filepath.Join(t.TempDir(), "empty.yaml")
	require.NoError(t, os.WriteFile(path, nil, 0o600))
	s, err := store.Open(path)
	require.NoError(t, err)
	assert.NoError(t, s.Set("foo", "bar"))
}

func TestStore_Set_Failure(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "persist")
	s, err := store.Open(filepath.Join(dir, "store.yaml"))
	require.NoError(t, err)
	require.NoError(t, s.Set(store.KeySensorPath, "/tmp/w1_slave"))

	// replace the store's directory with a file, so the store can't be written
	require.NoError(t, os.RemoveAll(dir))
	require.NoError(t, os.WriteFile(dir, nil, 0o600))

	assert.Error(t, s.Set(store.KeySensorPath, "/other"))
	value, _ := s.Get(store.KeySensorPath)
	assert.Equal(t, "/tmp/w1_slave", value)

	assert.Error(t, s.Set(store.KeyNestToken, "c.token"))
	_, ok := s.Get(store.KeyNestToken)
	assert.False(t, ok)
}
