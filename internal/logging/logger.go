// Package logging constructs the process logger and bridges it to the
// narrow logging interface the core service consumes.
package logging

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"pantrycore/internal/config"
	"pantrycore/internal/core"
)

// Fields represents structured logging fields.
type Fields = logrus.Fields

// New creates a configured logger instance. Output is JSON so log
// aggregation can index the fields; the level comes from
// PANTRYCORE_LOG_LEVEL.
func New() *logrus.Logger {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetLevel(config.GetLogLevel())
	return logger
}

// NewWithService creates a logger that stamps a service field on every entry.
func NewWithService(serviceName string) *logrus.Logger {
	logger := New()
	logger.AddHook(serviceHook{name: serviceName})
	return logger
}

type serviceHook struct {
	name string
}

func (serviceHook) Levels() []logrus.Level { return logrus.AllLevels }

func (h serviceHook) Fire(entry *logrus.Entry) error {
	entry.Data["service"] = h.name
	return nil
}

// Adapt wraps a logrus logger in the core.Logger interface. The variadic
// arguments are interpreted as alternating key/value pairs, matching how the
// service emits them.
func Adapt(logger *logrus.Logger) core.Logger {
	return kvAdapter{logger: logger}
}

type kvAdapter struct {
	logger *logrus.Logger
}

func (a kvAdapter) Debug(msg string, args ...any) { a.logger.WithFields(kvFields(args)).Debug(msg) }
func (a kvAdapter) Info(msg string, args ...any)  { a.logger.WithFields(kvFields(args)).Info(msg) }
func (a kvAdapter) Warn(msg string, args ...any)  { a.logger.WithFields(kvFields(args)).Warn(msg) }
func (a kvAdapter) Error(msg string, args ...any) { a.logger.WithFields(kvFields(args)).Error(msg) }

func kvFields(args []any) logrus.Fields {
	fields := make(logrus.Fields, len(args)/2)
	for i := 0; i+1 < len(args); i += 2 {
		key, ok := args[i].(string)
		if !ok {
			key = fmt.Sprint(args[i])
		}
		fields[key] = args[i+1]
	}
	if len(args)%2 != 0 {
		fields["arg"] = args[len(args)-1]
	}
	return fields
}
