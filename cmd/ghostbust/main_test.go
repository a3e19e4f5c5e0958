package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDotEnv(t *testing.T) {
	t.Run("a missing file is silent", func(t *testing.T) {
		log, hook := test.NewNullLogger()
		loadDotEnv(log, filepath.Join(t.TempDir(), ".env"))
		assert.Empty(t, hook.AllEntries())
	})

	t.Run("a malformed file is reported", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), ".env")
		require.NoError(t, os.WriteFile(path, []byte("GHOSTBUST-WIDTH=4\n"), 0o644))
		log, hook := test.NewNullLogger()

		loadDotEnv(log, path)

		require.NotNil(t, hook.LastEntry())
		assert.Equal(t, logrus.WarnLevel, hook.LastEntry().Level)
		assert.Contains(t, hook.LastEntry().Message, path)
	})

	t.Run("a valid file is exported", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), ".env")
		require.NoError(t, os.WriteFile(path, []byte("GHOSTBUST_BUSTS=3\n"), 0o644))
		t.Setenv("GHOSTBUST_BUSTS", "")
		os.Unsetenv("GHOSTBUST_BUSTS")
		log, hook := test.NewNullLogger()

		loadDotEnv(log, path)

		assert.Empty(t, hook.AllEntries())
		assert.Equal(t, "3", os.Getenv("GHOSTBUST_BUSTS"))
	})
}
