package app_test

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"quickchat/internal/app"
	"quickchat/internal/domain"
)

// unsetenv removes key for the duration of the test.
func unsetenv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	_ = os.Unsetenv(key)
}

func Test_LoadConfig_Defaults(t *testing.T) {
	req := require.New(t)
	t.Setenv("QUICKCHAT_HOME", "")
	t.Setenv("QUICKCHAT_PASSPHRASE", "")
	unsetenv(t, "QUICKCHAT_LOG_LEVEL")
	unsetenv(t, "QUICKCHAT_LOG_FORMAT")

	cfg, err := app.LoadConfig(filepath.Join(t.TempDir(), "missing.env"))
	req.NoError(err)
	req.Equal("warn", cfg.LogLevel)
	req.Equal("text", cfg.LogFormat)
	req.Empty(cfg.Passphrase)
}

func Test_LoadConfig_Dotenv_Does_Not_Override_Environment(t *testing.T) {
	req := require.New(t)
	dir := t.TempDir()
	dotenv := filepath.Join(dir, ".env")
	req.NoError(os.WriteFile(dotenv, []byte("QUICKCHAT_HOME=/from/dotenv\nQUICKCHAT_LOG_FORMAT=json\n"), 0o600))

	t.Setenv("QUICKCHAT_HOME", "/from/env")
	unsetenv(t, "QUICKCHAT_LOG_FORMAT")

	cfg, err := app.LoadConfig(dotenv)
	req.NoError(err)
	req.Equal("/from/env", cfg.Home)
	req.Equal("json", cfg.LogFormat)
}

func Test_NewWire_Restores_Previous_Session(t *testing.T) {
	req := require.New(t)
	cfg := app.Config{Home: t.TempDir(), LogLevel: "error", LogFormat: "text"}

	w, err := app.NewWire(cfg, io.Discard)
	req.NoError(err)
	m, err := w.Messages.Create("alice", "+27831234567", "hi")
	req.NoError(err)
	req.NoError(w.Messages.Send(m))

	again, err := app.NewWire(cfg, io.Discard)
	req.NoError(err)
	got, ok := again.Messages.GetByID(m.ID())
	req.True(ok)
	req.Equal("hi", got.Content())
	req.Len(again.Messages.AvailableIDs(), domain.MaxMessages-1)
}

func Test_NewWire_Sealed_Snapshot(t *testing.T) {
	req := require.New(t)
	cfg := app.Config{Home: t.TempDir(), Passphrase: "S3cret!pass", LogLevel: "error"}

	w, err := app.NewWire(cfg, io.Discard)
	req.NoError(err)
	req.True(w.Store.Sealed())
	m, err := w.Messages.Create("alice", "+27831234567", "secret")
	req.NoError(err)
	req.NoError(w.Messages.StoreOnly(m))

	wrong := cfg
	wrong.Passphrase = "nope"
	other, err := app.NewWire(wrong, io.Discard)
	req.NoError(err)
	req.Empty(other.Messages.Stored())

	same, err := app.NewWire(cfg, io.Discard)
	req.NoError(err)
	req.Len(same.Messages.Stored(), 1)
}
