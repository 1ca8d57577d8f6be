package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testEnv isolates the command from the caller's config and environment.
func testEnv(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(dir, "data"))
	for _, v := range []string{
		"QUICKQUIZ_DB", "QUICKQUIZ_QUIZ_DIR", "QUICKQUIZ_STATS_BACKEND",
		"QUICKQUIZ_REDIS_ADDR", "QUICKQUIZ_REDIS_PASSWORD", "QUICKQUIZ_REDIS_DB",
	} {
		t.Setenv(v, "")
	}
	return dir
}

func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := NewRootCmd()
	root.SetArgs(args)
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetIn(strings.NewReader(stdin))
	err := root.Execute()
	return out.String(), errOut.String(), err
}

const validQuiz = `title: Space
description: Planets and stars
time_limit: 5
questions:
  - id: 1
    question: Closest planet to the Sun?
    options: [Mercury, Venus]
    correct_answer_index: 0
`

func TestVersion(t *testing.T) {
	out, _, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.Equal(t, "quickquiz (devel)\n", out)
}

func TestQuizzes_List(t *testing.T) {
	dir := testEnv(t)
	quizDir := filepath.Join(dir, "quizzes")
	require.NoError(t, os.MkdirAll(quizDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(quizDir, "space.yaml"), []byte(validQuiz), 0o644))

	out, _, err := execute(t, "", "quizzes", "--quiz-dir", quizDir)
	require.NoError(t, err)
	assert.Contains(t, out, "general")
	assert.Contains(t, out, "technology")
	assert.Contains(t, out, "space")
	assert.Contains(t, out, "15 min")
	assert.Contains(t, out, "3 quizzes")
}

func TestTruncateTitle(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  string
	}{
		{"short padded", "Space", "Space     "},
		{"exact", "0123456789", "0123456789"},
		{"ascii cut", "Planets and stars", "Planets..."},
		{"multibyte cut", "Ünïcödé Çhâllèñgé", "Ünïcödé..."},
		{"wide runes", "日本語のクイズです", "日本語... "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := truncateTitle(tt.title, 10)
			assert.True(t, utf8.ValidString(got))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestQuizzes_ListMultibyteTitle(t *testing.T) {
	dir := testEnv(t)
	long := strings.Replace(validQuiz, "title: Space", "title: Éléments chimiques et propriétés périodiques", 1)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "chimie.yaml"), []byte(long), 0o644))

	out, _, err := execute(t, "", "quizzes", "--quiz-dir", dir)
	require.NoError(t, err)
	assert.True(t, utf8.ValidString(out))
	assert.Contains(t, out, "Éléments chimiques et proprié...")
}

func TestQuizzes_ListWarnsOnBadFile(t *testing.T) {
	dir := testEnv(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.yaml"), []byte("title: [\n"), 0o644))

	out, errOut, err := execute(t, "", "quizzes", "--quiz-dir", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "2 quizzes")
	assert.Contains(t, errOut, "warning:")
	assert.Contains(t, errOut, "broken.yaml")
}

func TestQuizzes_ListWarnsOnMissingDir(t *testing.T) {
	dir := testEnv(t)
	out, errOut, err := execute(t, "", "quizzes", "--quiz-dir", filepath.Join(dir, "missing"))
	require.NoError(t, err)
	assert.Contains(t, out, "2 quizzes")
	assert.Contains(t, errOut, "warning:")
	assert.Contains(t, errOut, "missing")
}

func TestQuizzes_Validate(t *testing.T) {
	dir := testEnv(t)
	good := filepath.Join(dir, "good.yaml")
	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(good, []byte(validQuiz), 0o644))
	require.NoError(t, os.WriteFile(bad, []byte("title: Empty\nquestions: []\n"), 0o644))

	out, _, err := execute(t, "", "quizzes", "validate", good)
	require.NoError(t, err)
	assert.Contains(t, out, "ok   "+good+": Space (1 questions)")

	out, _, err = execute(t, "", "quizzes", "validate", good, bad)
	require.Error(t, err)
	assert.Contains(t, out, "FAIL "+bad)
}

func TestStatsResetSettings_SQLite(t *testing.T) {
	dir := testEnv(t)
	db := filepath.Join(dir, "stats.db")

	out, _, err := execute(t, "", "stats", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "Best score:          0%")
	assert.Contains(t, out, "Overall accuracy:    0.0%")

	out, _, err = execute(t, "", "settings", "sound", "off", "--db", db)
	require.NoError(t, err)
	assert.Equal(t, "sound      off\n", out)

	out, _, err = execute(t, "", "settings", "--db", db)
	require.NoError(t, err)
	assert.Equal(t, "sound      off\nvibration  on\n", out)

	out, _, err = execute(t, "n\n", "reset", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "Aborted.")

	out, _, err = execute(t, "", "settings", "sound", "--db", db)
	require.NoError(t, err)
	assert.Equal(t, "sound      off\n", out)

	out, _, err = execute(t, "y\n", "reset", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "Statistics cleared.")

	out, _, err = execute(t, "", "settings", "sound", "--db", db)
	require.NoError(t, err)
	assert.Equal(t, "sound      on\n", out)
}

func TestSettings_InvalidArgs(t *testing.T) {
	testEnv(t)

	_, _, err := execute(t, "", "settings", "volume", "--ephemeral")
	assert.ErrorContains(t, err, "unknown setting")

	_, _, err = execute(t, "", "settings", "sound", "loud", "--ephemeral")
	assert.ErrorContains(t, err, "invalid value")
}

func TestConfigFileSelectsBackend(t *testing.T) {
	dir := testEnv(t)
	cfgPath := filepath.Join(dir, "config.yaml")

	require.NoError(t, os.WriteFile(cfgPath, []byte("stats:\n  backend: nosuch\n"), 0o644))
	_, _, err := execute(t, "", "stats", "--config", cfgPath)
	assert.ErrorContains(t, err, "unknown stats backend")

	// The memory backend forgets between runs.
	require.NoError(t, os.WriteFile(cfgPath, []byte("stats:\n  backend: memory\n"), 0o644))
	_, _, err = execute(t, "", "settings", "sound", "off", "--config", cfgPath)
	require.NoError(t, err)
	out, _, err := execute(t, "", "settings", "sound", "--config", cfgPath)
	require.NoError(t, err)
	assert.Equal(t, "sound      on\n", out)
}

func TestMissingExplicitConfig(t *testing.T) {
	dir := testEnv(t)
	_, _, err := execute(t, "", "stats", "--config", filepath.Join(dir, "missing.yaml"))
	assert.ErrorContains(t, err, "load config")
}
