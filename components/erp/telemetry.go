package erp

import (
	"context"

	"github.com/sirupsen/logrus"
)

// Telemetry records dashboard events for observability.
type Telemetry interface {
	Record(ctx context.Context, event string, payload map[string]any)
}

type noopTelemetry struct{}

func (noopTelemetry) Record(context.Context, string, map[string]any) {}

func normalizeTelemetry(t Telemetry) Telemetry {
	if t == nil {
		return noopTelemetry{}
	}
	return t
}

// LogTelemetry writes every event as one structured log entry.
type LogTelemetry struct {
	logger logrus.FieldLogger
}

// NewLogTelemetry wraps a logrus logger. A nil logger uses logrus' standard logger.
func NewLogTelemetry(logger logrus.FieldLogger) *LogTelemetry {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &LogTelemetry{logger: logger}
}

// Record logs the event with its payload as fields. Error events log at warn level.
func (t *LogTelemetry) Record(_ context.Context, event string, payload map[string]any) {
	fields := logrus.Fields{"event": event}
	for k, v := range payload {
		fields[k] = v
	}
	entry := t.logger.WithFields(fields)
	if _, failed := payload["error"]; failed {
		entry.Warn(event)
		return
	}
	entry.Info(event)
}
