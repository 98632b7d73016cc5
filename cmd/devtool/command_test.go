package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_ListSorted(t *testing.T) {
	r := NewRegistry()
	r.Register(&WatchEventsCommand{})
	r.Register(&MigrateCommand{})
	r.Register(&DoctorCommand{})

	cmds := r.List()
	require.Len(t, cmds, 3)
	assert.Equal(t, "doctor", cmds[0].Name())
	assert.Equal(t, "migrate", cmds[1].Name())
	assert.Equal(t, "watch-events", cmds[2].Name())

	_, ok := r.Get("nope")
	assert.False(t, ok)
}

func TestDatabaseURL(t *testing.T) {
	t.Run("explicit url wins", func(t *testing.T) {
		t.Setenv("DB_URL", "postgres://x@y/z")
		assert.Equal(t, "postgres://x@y/z", databaseURL())
	})

	t.Run("built from parts", func(t *testing.T) {
		t.Setenv("DB_URL", "")
		t.Setenv("DB_USER", "hv")
		t.Setenv("DB_PASSWORD", "pw")
		t.Setenv("DB_HOST", "db")
		t.Setenv("DB_PORT", "5433")
		t.Setenv("DB_NAME", "heroes")
		assert.Equal(t, "postgres://hv:pw@db:5433/heroes?sslmode=disable", databaseURL())
	})
}

func TestCheckHostile(t *testing.T) {
	assert.NoError(t, checkHostile("docker", "compose", "ps", "db"))
	assert.Error(t, checkHostile("echo", "a && b"))
	assert.Error(t, checkHostile("echo", "line\nbreak"))
}

func TestAPIURL_TrimsSlash(t *testing.T) {
	t.Setenv("API_URL", "http://localhost:9000/")
	assert.Equal(t, "http://localhost:9000", apiURL())
}
