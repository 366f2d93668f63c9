package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSettings_Defaults(t *testing.T) {
	s, err := LoadSettings("")
	require.NoError(t, err)
	assert.Equal(t, DriverFile, s.Store.Driver)
	assert.Equal(t, "reroi", s.Store.Namespace)
	assert.Equal(t, "console", s.Output.Format)
	assert.NoError(t, s.Validate())

	s, err = LoadSettings(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DriverFile, s.Store.Driver)
}

func TestLoadSettings_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reroi.yaml")
	doc := "store:\n" +
		"  driver: redis\n" +
		"  addr: cache:6379\n" +
		"  db: 2\n" +
		"server:\n" +
		"  addr: :9090\n" +
		"debug: true\n"
	require.NoError(t, os.WriteFile(path, []byte(doc), 0644))

	s, err := LoadSettings(path)
	require.NoError(t, err)
	assert.Equal(t, DriverRedis, s.Store.Driver)
	assert.Equal(t, "cache:6379", s.Store.Addr)
	assert.Equal(t, 2, s.Store.DB)
	assert.Equal(t, "reroi", s.Store.Namespace, "unset keys keep their default")
	assert.Equal(t, ":9090", s.Server.Addr)
	assert.True(t, s.Debug)
}

func TestSettingsValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Settings)
		errMsg string
	}{
		{"unknown driver", func(s *Settings) { s.Store.Driver = "etcd" }, "unknown store driver"},
		{"sqlite without path", func(s *Settings) { s.Store.Driver = DriverSQLite; s.Store.Path = "" }, "store.path is required"},
		{"redis without addr", func(s *Settings) { s.Store.Driver = DriverRedis; s.Store.Addr = "" }, "store.addr is required"},
		{"empty namespace", func(s *Settings) { s.Store.Namespace = "" }, "namespace"},
		{"no server addr", func(s *Settings) { s.Server.Addr = "" }, "server.addr"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := DefaultSettings()
			tt.mutate(&s)
			assert.ErrorContains(t, s.Validate(), tt.errMsg)
		})
	}

	s := DefaultSettings()
	s.Store.Driver = DriverMemory
	s.Store.Path = ""
	assert.NoError(t, s.Validate())
}

func TestLoadSettings_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("store:\n  driver: etcd\n"), 0644))
	_, err := LoadSettings(path)
	assert.ErrorContains(t, err, "settings validation failed")
}
