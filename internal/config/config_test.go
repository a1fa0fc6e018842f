package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveSQLitePathExplicitCreatesParent(t *testing.T) {
	target := filepath.Join(t.TempDir(), "nested", "dir", "cv.db")

	got := resolveSQLitePath(target)
	assert.Equal(t, target, got)

	info, err := os.Stat(filepath.Dir(target))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestResolveSQLitePathDefault(t *testing.T) {
	oldWD, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(oldWD) })

	got := resolveSQLitePath("")
	assert.Contains(t, got, "cv_portfolio.db")
}

func TestGetEnvAsBool(t *testing.T) {
	t.Setenv("CV_TEST_FLAG", "true")
	assert.True(t, getEnvAsBool("CV_TEST_FLAG", false))

	t.Setenv("CV_TEST_FLAG", "not-a-bool")
	assert.False(t, getEnvAsBool("CV_TEST_FLAG", false))

	assert.True(t, getEnvAsBool("CV_TEST_MISSING", true))
}

func TestGetEnvAsDuration(t *testing.T) {
	t.Setenv("CV_TEST_TTL", "45m")
	assert.Equal(t, 45*time.Minute, getEnvAsDuration("CV_TEST_TTL", "12h"))

	t.Setenv("CV_TEST_TTL", "garbage")
	assert.Equal(t, 12*time.Hour, getEnvAsDuration("CV_TEST_TTL", "12h"))
}
