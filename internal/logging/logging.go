// Package logging builds the logrus logger shared by quickchat's components.
package logging

import (
	"io"
	"strings"

	"github.com/sirupsen/logrus"
)

// New returns a logger writing to out at level in the given format ("text" or
// "json"). An unknown level falls back to info and is reported once.
func New(level, format string, out io.Writer) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(out)

	switch strings.ToLower(format) {
	case "json":
		log.SetFormatter(&logrus.JSONFormatter{})
	default:
		log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	}

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		log.SetLevel(logrus.InfoLevel)
		log.WithFields(logrus.Fields{
			"function": "New",
			"level":    level,
		}).Warn("Unknown log level, using info")
		return log
	}
	log.SetLevel(lvl)
	return log
}
