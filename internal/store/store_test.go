package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err, "open test store")
	t.Cleanup(func() { s.Close() })
	return s
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		{"journal_mode", "wal"},
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestPrefs_IntDefaultsAndSet(t *testing.T) {
	repo := openTestStore(t).PrefsRepo()
	ctx := context.Background()

	v, err := repo.GetInt(ctx, "best_score", 0)
	require.NoError(t, err)
	assert.Equal(t, 0, v)

	v, err = repo.GetInt(ctx, "missing", 42)
	require.NoError(t, err)
	assert.Equal(t, 42, v)

	require.NoError(t, repo.SetInt(ctx, "best_score", 55))
	require.NoError(t, repo.SetInt(ctx, "best_score", 40))
	v, err = repo.GetInt(ctx, "best_score", 0)
	require.NoError(t, err)
	assert.Equal(t, 40, v)
}

func TestPrefs_AddInt(t *testing.T) {
	repo := openTestStore(t).PrefsRepo()
	ctx := context.Background()

	got, err := repo.AddInt(ctx, "total", 10)
	require.NoError(t, err)
	assert.Equal(t, 10, got)

	got, err = repo.AddInt(ctx, "total", 5)
	require.NoError(t, err)
	assert.Equal(t, 15, got)

	v, err := repo.GetInt(ctx, "total", 0)
	require.NoError(t, err)
	assert.Equal(t, 15, v)
}

func TestPrefs_MaxInt(t *testing.T) {
	repo := openTestStore(t).PrefsRepo()
	ctx := context.Background()

	changed, err := repo.MaxInt(ctx, "best", 80)
	require.NoError(t, err)
	assert.True(t, changed)

	changed, err = repo.MaxInt(ctx, "best", 70)
	require.NoError(t, err)
	assert.False(t, changed)

	changed, err = repo.MaxInt(ctx, "best", 80)
	require.NoError(t, err)
	assert.False(t, changed, "equal value is not strictly greater")

	v, err := repo.GetInt(ctx, "best", 0)
	require.NoError(t, err)
	assert.Equal(t, 80, v)
}

func TestPrefs_MaxIntZeroOnEmpty(t *testing.T) {
	repo := openTestStore(t).PrefsRepo()
	changed, err := repo.MaxInt(context.Background(), "best", 0)
	require.NoError(t, err)
	assert.False(t, changed)
}

func TestPrefs_Bool(t *testing.T) {
	repo := openTestStore(t).PrefsRepo()
	ctx := context.Background()

	v, err := repo.GetBool(ctx, "sound_enabled", true)
	require.NoError(t, err)
	assert.True(t, v)

	require.NoError(t, repo.SetBool(ctx, "sound_enabled", false))
	v, err = repo.GetBool(ctx, "sound_enabled", true)
	require.NoError(t, err)
	assert.False(t, v)
}

func TestPrefs_Clear(t *testing.T) {
	repo := openTestStore(t).PrefsRepo()
	ctx := context.Background()

	_, err := repo.AddInt(ctx, "total", 3)
	require.NoError(t, err)
	require.NoError(t, repo.SetBool(ctx, "sound_enabled", false))

	require.NoError(t, repo.Clear(ctx))

	v, err := repo.GetInt(ctx, "total", 0)
	require.NoError(t, err)
	assert.Equal(t, 0, v)
	b, err := repo.GetBool(ctx, "sound_enabled", true)
	require.NoError(t, err)
	assert.True(t, b)
}

func TestPrefs_DurableAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "durable.db")
	ctx := context.Background()

	s, err := Open(path)
	require.NoError(t, err)
	_, err = s.PrefsRepo().AddInt(ctx, "total_quizzes_completed", 1)
	require.NoError(t, err)
	require.NoError(t, s.Close())

	s, err = Open(path)
	require.NoError(t, err)
	defer s.Close()
	v, err := s.PrefsRepo().GetInt(ctx, "total_quizzes_completed", 0)
	require.NoError(t, err)
	assert.Equal(t, 1, v)
}

func TestDefaultDBPath_EnvOverride(t *testing.T) {
	want := filepath.Join(t.TempDir(), "nested", "q.db")
	t.Setenv("QUICKQUIZ_DB", want)

	got, err := DefaultDBPath()
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.DirExists(t, filepath.Dir(want))
}

func TestDefaultDBPath_XDG(t *testing.T) {
	dataHome := t.TempDir()
	t.Setenv("QUICKQUIZ_DB", "")
	t.Setenv("XDG_DATA_HOME", dataHome)

	got, err := DefaultDBPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dataHome, "quickquiz", "quickquiz.db"), got)
}
