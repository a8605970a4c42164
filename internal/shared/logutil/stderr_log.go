package logutil

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
)

// StderrLog writes through logrus, levels are filtered here and not in logrus.
type StderrLog struct {
	name      string
	logger    *logrus.Logger
	level     LogLevel
	debugKeys map[string]bool
}

var _ Log = NewStderrLog("")

func NewStderrLog(name string, debugKeys ...string) *StderrLog {
	logger := logrus.New()
	logger.SetLevel(logrus.DebugLevel)
	logger.Out = os.Stderr
	logger.Formatter = &logrus.TextFormatter{
		DisableTimestamp: true,
	}

	sl := &StderrLog{
		name:      name,
		logger:    logger,
		level:     LogLevelWarn,
		debugKeys: map[string]bool{},
	}
	for _, k := range debugKeys {
		if k != "" {
			sl.debugKeys[k] = true
		}
	}

	return sl
}

// UseJSONFormat switches to one JSON object per line with the log name in
// the "logger" field.
func (sl *StderrLog) UseJSONFormat() {
	sl.logger.Formatter = &logrus.JSONFormatter{}
}

func (sl StderrLog) write(level logrus.Level, format string, args []interface{}) {
	msg := fmt.Sprintf(format, args...)

	if _, isJSON := sl.logger.Formatter.(*logrus.JSONFormatter); isJSON {
		entry := logrus.NewEntry(sl.logger)
		if sl.name != "" {
			entry = entry.WithField("logger", sl.name)
		}
		logEntry(entry, level, msg)
		return
	}

	if sl.name != "" {
		msg = fmt.Sprintf("[%s] %s", sl.name, msg)
	}
	logEntry(logrus.NewEntry(sl.logger), level, msg)
}

func logEntry(e *logrus.Entry, level logrus.Level, msg string) {
	switch level {
	case logrus.ErrorLevel:
		e.Error(msg)
	case logrus.WarnLevel:
		e.Warn(msg)
	case logrus.InfoLevel:
		e.Info(msg)
	default:
		e.Debug(msg)
	}
}

func (sl StderrLog) Fatalf(format string, args ...interface{}) {
	sl.write(logrus.ErrorLevel, format, args)
	os.Exit(1)
}

func (sl StderrLog) Errorf(format string, args ...interface{}) {
	if sl.level <= LogLevelError {
		sl.write(logrus.ErrorLevel, format, args)
	}
}

func (sl StderrLog) Warnf(format string, args ...interface{}) {
	if sl.level <= LogLevelWarn {
		sl.write(logrus.WarnLevel, format, args)
	}
}

func (sl StderrLog) Infof(format string, args ...interface{}) {
	if sl.level <= LogLevelInfo {
		sl.write(logrus.InfoLevel, format, args)
	}
}

func (sl StderrLog) Debugf(key string, format string, args ...interface{}) {
	if sl.level <= LogLevelDebug && sl.debugKeys[key] {
		sl.write(logrus.DebugLevel, format, args)
	}
}

func (sl StderrLog) Child(name string) Log {
	child := sl
	if sl.name == "" {
		child.name = name
	} else {
		child.name = sl.name + "/" + name
	}

	return &child
}

func (sl *StderrLog) SetLevel(level LogLevel) {
	sl.level = level
}
