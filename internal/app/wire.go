package app

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"quickchat/internal/domain"
	"quickchat/internal/logging"
	messagesvc "quickchat/internal/services/message"
	"quickchat/internal/store"
)

// Wire bundles the logger, snapshot store and registry for the CLI.
type Wire struct {
	Home     string
	Log      *logrus.Logger
	Store    *store.MessageFileStore
	Messages domain.MessageRegistry
}

// NewWire constructs the dependency graph from cfg and restores the persisted
// working set. Logs go to logOut.
func NewWire(cfg Config, logOut io.Writer) (*Wire, error) {
	home, err := cfg.ResolveHome()
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(home, 0o700); err != nil {
		return nil, err
	}

	log := logging.New(cfg.LogLevel, cfg.LogFormat, logOut)

	var snapshots *store.MessageFileStore
	if cfg.Passphrase != "" {
		snapshots = store.NewSealedMessageFileStore(home, cfg.Passphrase)
	} else {
		snapshots = store.NewMessageFileStore(home)
	}

	registry := messagesvc.New(snapshots, log.WithField("component", "registry"))
	if err := registry.Load(); err != nil {
		return nil, err
	}

	log.WithFields(logrus.Fields{
		"function": "NewWire",
		"snapshot": snapshots.Path(),
		"sealed":   snapshots.Sealed(),
	}).Debug("Registry wired")

	return &Wire{
		Home:     home,
		Log:      log,
		Store:    snapshots,
		Messages: registry,
	}, nil
}
