package logger

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
)

// Options struct
type Options struct {
	Debug    bool
	Level    string // overrides Debug when set: debug, info, warn, error
	Format   string // text or json
	FilePath string // optional, logs go to stderr and the file
}

// Init configures the package level logrus logger
func Init(opts Options) error {
	level := logrus.InfoLevel
	if opts.Debug {
		level = logrus.DebugLevel
	}
	if opts.Level != "" {
		parsed, err := logrus.ParseLevel(strings.ToLower(opts.Level))
		if err != nil {
			return err
		}
		level = parsed
	}
	logrus.SetLevel(level)

	switch strings.ToLower(opts.Format) {
	case "json":
		logrus.SetFormatter(&logrus.JSONFormatter{})
	default:
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	if opts.FilePath == "" {
		logrus.SetOutput(os.Stderr)
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(opts.FilePath), 0o755); err != nil {
		return err
	}
	f, err := os.OpenFile(opts.FilePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	logrus.SetOutput(io.MultiWriter(os.Stderr, f))
	return nil
}
