package logger

import (
	"context"
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/maxaizer/skillmatch/internal/metrics"
	"github.com/maxaizer/skillmatch/pkg/loki"
	log "github.com/sirupsen/logrus"
)

const (
	lokiSourceField  = "source"
	unknownErrorType = "other"
)

var knownErrorTypes = map[string]bool{
	ErrorTypeDb:        true,
	ErrorTypeAiApi:     true,
	ErrorTypeSearchApi: true,
	ErrorTypeTgApi:     true,
}

// errorTypeOf keeps the metric label set bounded to the known types.
func errorTypeOf(entry *log.Entry) string {
	if errorType, ok := entry.Data[ErrorTypeField].(string); ok && knownErrorTypes[errorType] {
		return errorType
	}
	return unknownErrorType
}

type errorCounterHook struct{}

func (h *errorCounterHook) Fire(entry *log.Entry) error {
	metrics.ErrorsCounter.WithLabelValues(errorTypeOf(entry), entry.Level.String()).Inc()
	return nil
}

func (h *errorCounterHook) Levels() []log.Level {
	return []log.Level{log.WarnLevel, log.ErrorLevel, log.FatalLevel, log.PanicLevel}
}

type lokiErrorLogger struct{}

func (l *lokiErrorLogger) Error(msg string, args ...any) {
	log.WithFields(log.Fields{"args": args, lokiSourceField: "loki"}).Error(msg)
}

type lokiHook struct {
	pusher   *loki.Pusher
	minLevel log.Level
}

func (h *lokiHook) Fire(entry *log.Entry) error {
	// the pusher's own failures must not loop back into it
	if entry.Data[lokiSourceField] == "loki" {
		return nil
	}

	var errorType string
	if _, ok := entry.Data[ErrorTypeField]; ok {
		errorType = errorTypeOf(entry)
	}

	return h.pusher.Push(loki.LogEntry{
		Level:     entry.Level.String(),
		Message:   entry.Message,
		Caller:    callerOf(entry),
		ErrorType: errorType,
		Fields:    fieldsOf(entry),
	})
}

func (h *lokiHook) Levels() []log.Level {
	return log.AllLevels[:h.minLevel+1]
}

func callerOf(entry *log.Entry) string {
	if entry.Caller == nil {
		return ""
	}
	return filepath.Base(entry.Caller.Function) + ":" + strconv.Itoa(entry.Caller.Line)
}

func fieldsOf(entry *log.Entry) map[string]string {
	fields := make(map[string]string, len(entry.Data))
	for key, value := range entry.Data {
		if key == ErrorTypeField || key == lokiSourceField {
			continue
		}
		fields[key] = fmt.Sprint(value)
	}
	if len(fields) == 0 {
		return nil
	}
	return fields
}

func addHooks(ctx context.Context, cfg loki.Config, lokiEnabled bool) error {
	log.AddHook(&errorCounterHook{})

	if !lokiEnabled {
		return nil
	}

	pusher, err := loki.New(ctx, cfg, &lokiErrorLogger{})
	if err != nil {
		return err
	}
	lokiPusher = pusher
	log.AddHook(&lokiHook{pusher: pusher, minLevel: log.GetLevel()})
	log.Info("Loki logging enabled")
	return nil
}
