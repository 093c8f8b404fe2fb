// Package log routes application diagnostics to a daily log file through logrus.
//
// Logging is off unless logs.write is set; every helper is a no-op in that case,
// so the terminal UI is never disturbed by log output.
package log

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/cinebox-cli/cinebox/filesystem"
	"github.com/cinebox-cli/cinebox/key"
	"github.com/cinebox-cli/cinebox/where"
	logrus "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

var enabled bool

// Fields is an alias so callers do not need to import logrus directly.
type Fields = logrus.Fields

// Setup opens today's log file and configures formatter and level from the config.
func Setup() error {
	enabled = viper.GetBool(key.LogsWrite)
	if !enabled {
		logrus.SetOutput(io.Discard)
		return nil
	}

	dir := where.Logs()
	if dir == "" {
		return errors.New("log directory path is empty")
	}

	path := filepath.Join(dir, time.Now().Format("2006-01-02")+".log")

	f, err := filesystem.API().OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0o666)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	logrus.SetOutput(f)

	if viper.GetBool(key.LogsJson) {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{DisableColors: true, FullTimestamp: true})
	}

	level, err := logrus.ParseLevel(viper.GetString(key.LogsLevel))
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)

	return nil
}

// Enabled reports whether log output is being written.
func Enabled() bool {
	return enabled
}

// With returns an entry carrying structured fields. When logging is disabled
// the entry writes to io.Discard.
func With(fields Fields) *logrus.Entry {
	if !enabled {
		discard := logrus.New()
		discard.SetOutput(io.Discard)
		return logrus.NewEntry(discard).WithFields(fields)
	}
	return logrus.WithFields(fields)
}

func Error(args ...any) {
	if enabled {
		logrus.Error(args...)
	}
}

func Errorf(format string, args ...any) {
	if enabled {
		logrus.Errorf(format, args...)
	}
}

func Warn(args ...any) {
	if enabled {
		logrus.Warn(args...)
	}
}

func Warnf(format string, args ...any) {
	if enabled {
		logrus.Warnf(format, args...)
	}
}

func Info(args ...any) {
	if enabled {
		logrus.Info(args...)
	}
}

func Infof(format string, args ...any) {
	if enabled {
		logrus.Infof(format, args...)
	}
}

func Debug(args ...any) {
	if enabled {
		logrus.Debug(args...)
	}
}

func Debugf(format string, args ...any) {
	if enabled {
		logrus.Debugf(format, args...)
	}
}
