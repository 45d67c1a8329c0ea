package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	t.Run("missing file falls back to defaults", func(t *testing.T) {
		cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))

		assert.NoError(t, err)
		assert.Equal(t, ":8282", cfg.Addr)
		assert.True(t, cfg.Frontend.Enabled)
		assert.Equal(t, "localhost", cfg.Database.Host)
		assert.Equal(t, 5432, cfg.Database.Port)
		assert.Equal(t, 1, cfg.Notifications.TickSeconds)
		assert.Equal(t, 12, cfg.Recurrence.HorizonMonths)
	})

	t.Run("yaml file overrides defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "application.yaml")
		content := []byte("addr: \":9090\"\ndb:\n  host: db.internal\nrecurrence:\n  horizonmonths: 6\n")
		assert.NoError(t, os.WriteFile(path, content, 0o644))

		cfg, err := Load(path)

		assert.NoError(t, err)
		assert.Equal(t, ":9090", cfg.Addr)
		assert.Equal(t, "db.internal", cfg.Database.Host)
		assert.Equal(t, 6, cfg.Recurrence.HorizonMonths)
		assert.Equal(t, 5432, cfg.Database.Port)
	})

	t.Run("environment overrides the file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "application.yaml")
		assert.NoError(t, os.WriteFile(path, []byte("addr: \":9090\"\n"), 0o644))

		t.Setenv("DALYEOK_ADDR", ":7070")
		t.Setenv("DALYEOK_DB_HOST", "env.internal")

		cfg, err := Load(path)

		assert.NoError(t, err)
		assert.Equal(t, ":7070", cfg.Addr)
		assert.Equal(t, "env.internal", cfg.Database.Host)
	})
}
