package log

import (
	"os"
	"strings"
	"sync"

	cblog "github.com/charmbracelet/log"
)

var (
	logger     *cblog.Logger
	loggerOnce sync.Once
)

func get() *cblog.Logger {
	loggerOnce.Do(func() {
		logger = cblog.NewWithOptions(os.Stderr, cblog.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05",
			Prefix:          "dankpal",
			Level:           cblog.InfoLevel,
		})
	})
	return logger
}

// SetLevel accepts debug, info, warn, error or fatal. Unknown names leave the level unchanged.
func SetLevel(level string) bool {
	lvl, err := cblog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		return false
	}
	get().SetLevel(lvl)
	return true
}

func Debugf(format string, v ...interface{}) { get().Debugf(format, v...) }
func Infof(format string, v ...interface{})  { get().Infof(format, v...) }
func Warnf(format string, v ...interface{})  { get().Warnf(format, v...) }
func Errorf(format string, v ...interface{}) { get().Errorf(format, v...) }
func Fatalf(format string, v ...interface{}) { get().Fatalf(format, v...) }

func Debug(msg interface{}, keyvals ...interface{}) { get().Debug(msg, keyvals...) }
func Info(msg interface{}, keyvals ...interface{})  { get().Info(msg, keyvals...) }
