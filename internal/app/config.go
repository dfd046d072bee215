package app

import (
	"fmt"
	"os"
	"path/filepath"

	env "github.com/Netflix/go-env"
	"github.com/joho/godotenv"
)

// Config holds runtime wiring options for building the app.
type Config struct {
	Home       string `env:"QUICKCHAT_HOME"`                     // data directory, default $HOME/.quickchat
	Passphrase string `env:"QUICKCHAT_PASSPHRASE"`               // optional; seals the snapshot at rest
	LogLevel   string `env:"QUICKCHAT_LOG_LEVEL,default=warn"`   // logrus level name
	LogFormat  string `env:"QUICKCHAT_LOG_FORMAT,default=text"` // text or json
}

// LoadConfig reads dotenvFiles (missing ones are skipped) into the process
// environment without overriding variables already set, then decodes the
// QUICKCHAT_* variables into a Config.
func LoadConfig(dotenvFiles ...string) (Config, error) {
	for _, f := range dotenvFiles {
		if _, err := os.Stat(f); err != nil {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return Config{}, fmt.Errorf("load %s: %w", f, err)
		}
	}
	var cfg Config
	if _, err := env.UnmarshalFromEnviron(&cfg); err != nil {
		return Config{}, fmt.Errorf("config error: %w", err)
	}
	return cfg, nil
}

// ResolveHome returns Home, defaulting to ~/.quickchat.
func (c Config) ResolveHome() (string, error) {
	if c.Home != "" {
		return c.Home, nil
	}
	dir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, ".quickchat"), nil
}
