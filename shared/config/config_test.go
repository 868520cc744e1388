package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func writeConfigFiles(t *testing.T, public, private string) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "public.yaml"), []byte(public), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "private.yaml"), []byte(private), 0o600); err != nil {
		t.Fatal(err)
	}
	return dir
}

func TestMustLoad(t *testing.T) {
	public := "listen_addr: ':8080'\nadmin_listen_addr: ':8081'\napi_base_url: 'http://api:8080'\ncors_allowed_origin: 'http://localhost:8081'\nlog_level: 'debug'\n"
	private := "pg:\n  host: localhost\n  port: 5432\n  user: sipmang\n  password: secret\n  dbname: sipmang\n"
	dir := writeConfigFiles(t, public, private)

	cfg := MustLoad(dir)

	assert.Equal(t, ":8080", cfg.Public.ListenAddr)
	assert.Equal(t, "http://api:8080", cfg.Public.APIBaseURL)
	assert.Equal(t, "debug", cfg.Public.LogLevel)
	assert.Equal(t, "localhost", cfg.Private.Pg.Host)
	assert.Equal(t, 5432, cfg.Private.Pg.Port)
	assert.Equal(t, "secret", cfg.Private.Pg.Password)
}

func TestMustLoad_EnvOverridesPg(t *testing.T) {
	public := "listen_addr: ':8080'\n"
	private := "pg:\n  host: localhost\n  port: 5432\n  user: sipmang\n  password: from-yaml\n  dbname: sipmang\n"
	dir := writeConfigFiles(t, public, private)

	t.Setenv("PG_HOST", "db.internal")
	t.Setenv("PG_PORT", "5433")
	t.Setenv("PG_PASSWORD", "from-env")

	cfg := MustLoad(dir)

	assert.Equal(t, "db.internal", cfg.Private.Pg.Host)
	assert.Equal(t, 5433, cfg.Private.Pg.Port)
	assert.Equal(t, "from-env", cfg.Private.Pg.Password)
	// Untouched fields keep their yaml values.
	assert.Equal(t, "sipmang", cfg.Private.Pg.User)
	assert.Equal(t, "sipmang", cfg.Private.Pg.Dbname)
}

func TestMustLoad_InvalidPgPortEnv(t *testing.T) {
	dir := writeConfigFiles(t,
		"listen_addr: ':8080'\n",
		"pg:\n  host: localhost\n  port: 5432\n  user: sipmang\n  password: secret\n  dbname: sipmang\n")

	t.Setenv("PG_PORT", "not-a-port")

	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("expected panic for invalid PG_PORT, got none")
		}
	}()

	_ = MustLoad(dir)
}

func TestMustLoad_MissingFile(t *testing.T) {
	dir := t.TempDir() // no config files at all

	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("expected panic for missing config file, got none")
		}
	}()

	_ = MustLoad(dir)
}
