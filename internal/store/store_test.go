package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/abhisek/vimdrill/internal/quiz"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	st, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })
	return st
}

func TestKnownRepoRoundTrip(t *testing.T) {
	st := openTestStore(t)
	repo := st.KnownRepo()

	require.Empty(t, repo.Load(), "fresh store should have no known items")

	repo.Save(map[string]bool{"b": true, "a": true})
	got := repo.Load()
	require.Equal(t, map[string]bool{"a": true, "b": true}, got)

	// Overwrite: last write wins.
	repo.Save(map[string]bool{"c": true})
	require.Equal(t, map[string]bool{"c": true}, repo.Load())
}

func TestKnownRepoCorruptValue(t *testing.T) {
	st := openTestStore(t)
	repo := st.KnownRepo()

	_, err := st.DB().Exec("INSERT INTO kv (key, value) VALUES (?, ?)", "knownItems", "{not json")
	require.NoError(t, err)

	require.Empty(t, repo.Load(), "corrupt value should degrade to empty set")
}

func TestKnownRepoExport(t *testing.T) {
	st := openTestStore(t)
	repo := st.KnownRepo()
	repo.Save(map[string]bool{"b": true, "a": true})

	path := filepath.Join(t.TempDir(), "knownItems.json")
	n, err := repo.Export(path)
	require.NoError(t, err)
	require.Equal(t, 2, n)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.JSONEq(t, `["a","b"]`, string(data))
}

func TestPrefsRepoTheme(t *testing.T) {
	st := openTestStore(t)
	repo := st.PrefsRepo()

	require.Equal(t, ThemeSystem, repo.Theme())
	require.NoError(t, repo.SetTheme("dark"))
	require.Equal(t, "dark", repo.Theme())
	require.Error(t, repo.SetTheme("sepia"))
	require.Equal(t, "dark", repo.Theme(), "invalid theme must not overwrite")
}

func TestSessionRepoRoundTrip(t *testing.T) {
	st := openTestStore(t)
	repo := st.SessionRepo()

	_, ok := repo.Load()
	require.False(t, ok, "fresh store should have no snapshot")

	snap := quiz.Snapshot{
		SessionID: "s1",
		Phase:     "playing",
		Mode:      quiz.ModeFlash,
		Questions: []quiz.Item{{ID: "a", Category: "Motions", Prompt: "right", Answers: []string{"l"}}},
		Cursor:    0,
		Flashcard: map[string]bool{},
	}
	repo.Save(snap)

	got, ok := repo.Load()
	require.True(t, ok)
	require.Equal(t, snap.SessionID, got.SessionID)
	require.Equal(t, snap.Mode, got.Mode)
	require.Len(t, got.Questions, 1)

	repo.Clear()
	_, ok = repo.Load()
	require.False(t, ok, "snapshot should be gone after Clear")
}

func TestSessionRepoCorruptSnapshotDiscarded(t *testing.T) {
	st := openTestStore(t)
	repo := st.SessionRepo()

	_, err := st.DB().Exec("INSERT INTO kv (key, value) VALUES (?, ?)", "session-snapshot", "][")
	require.NoError(t, err)

	_, ok := repo.Load()
	require.False(t, ok)

	var count int
	require.NoError(t, st.DB().QueryRow("SELECT COUNT(*) FROM kv WHERE key = 'session-snapshot'").Scan(&count))
	require.Zero(t, count, "corrupt snapshot should be deleted")
}
