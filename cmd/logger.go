package cmd

import (
	"github.com/hashicorp/go-hclog"
	"os"
)

// newLogger returns a stderr logger; stdout is reserved for generated code.
// Unknown levels fall back to warn.
func newLogger(level string) hclog.Logger {
	l := hclog.LevelFromString(level)
	if l == hclog.NoLevel {
		l = hclog.Warn
	}

	return hclog.New(&hclog.LoggerOptions{
		Name:   "snapshot-json2c",
		Level:  l,
		Output: os.Stderr,
	})
}
