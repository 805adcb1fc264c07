package store

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "mapforge.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestKeystore_RoundTrip(t *testing.T) {
	s := newTestStore(t)

	_, ok, err := s.GetKey("api_key:gemini")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.PutKey("api_key:gemini", "gk-first"))
	value, ok, err := s.GetKey("api_key:gemini")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "gk-first", value)

	// PutKey on an existing name replaces.
	require.NoError(t, s.PutKey("api_key:gemini", "gk-second"))
	value, ok, err = s.GetKey("api_key:gemini")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "gk-second", value)
}

func TestKeystore_Delete(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.PutKey("api_key:openai", "sk-test"))
	require.NoError(t, s.DeleteKey("api_key:openai"))

	_, ok, err := s.GetKey("api_key:openai")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.DeleteKey("api_key:openai"), "deleting a missing key is not an error")
}

func TestKeystore_NamesAreIndependent(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.PutKey("api_key:openai", "sk-a"))
	require.NoError(t, s.PutKey("api_key:anthropic", "ak-b"))

	value, ok, err := s.GetKey("api_key:anthropic")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "ak-b", value)
}

func TestHistory_RecordAndList(t *testing.T) {
	s := newTestStore(t)

	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	entries := []HistoryEntry{
		{ID: "gen-1", CreatedAt: base, Description: "a cave", Width: 16, Height: 16, Archetype: "cave", Attempts: 1, Interpretation: "a winding cave"},
		{ID: "gen-2", CreatedAt: base.Add(time.Minute), Description: "a maze", Width: 32, Height: 32, Archetype: "maze", Attempts: 3, Fallback: true, Interpretation: "generation failed after 3 attempts"},
		{ID: "gen-3", CreatedAt: base.Add(2 * time.Minute), Description: "a tavern", Width: 12, Height: 10, Attempts: 2, Interpretation: "a cozy tavern"},
	}
	for _, e := range entries {
		require.NoError(t, s.RecordGeneration(e))
	}

	got, err := s.RecentGenerations(10)
	require.NoError(t, err)
	require.Len(t, got, 3)

	// Newest first.
	assert.Equal(t, "gen-3", got[0].ID)
	assert.Equal(t, "gen-2", got[1].ID)
	assert.Equal(t, "gen-1", got[2].ID)

	assert.True(t, got[1].Fallback)
	assert.Equal(t, "generation failed after 3 attempts", got[1].Interpretation)
	assert.Equal(t, 32, got[1].Width)
	assert.Equal(t, base.Add(time.Minute).Unix(), got[1].CreatedAt.Unix())
}

func TestHistory_Limit(t *testing.T) {
	s := newTestStore(t)

	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		require.NoError(t, s.RecordGeneration(HistoryEntry{
			ID:          string(rune('a' + i)),
			CreatedAt:   base.Add(time.Duration(i) * time.Second),
			Description: "room",
			Width:       8,
			Height:      8,
			Attempts:    1,
		}))
	}

	got, err := s.RecentGenerations(2)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "e", got[0].ID)
	assert.Equal(t, "d", got[1].ID)
}

func TestHistory_ZeroTimestampDefaultsToNow(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.RecordGeneration(HistoryEntry{
		ID: "gen-now", Description: "room", Width: 8, Height: 8, Attempts: 1,
	}))

	got, err := s.RecentGenerations(1)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.WithinDuration(t, time.Now(), got[0].CreatedAt, time.Minute)
}

func TestOpen_CreatesParentDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "deeper", "mapforge.db")
	s, err := Open(path)
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, s.PutKey("k", "v"))
}
