package provisioning

import (
	"fmt"
	"io"
	"maps"
	"slices"
	"time"

	"github.com/go-logr/logr"
	"github.com/go-logr/logr/funcr"
)

// LogrObserver implements Observer on top of a logr.Logger.
// It is used for machine-readable (JSON) output.
type LogrObserver struct {
	logger        logr.Logger
	contextFields map[string]string
}

// NewLogrObserver wraps an existing logr.Logger.
func NewLogrObserver(logger logr.Logger) *LogrObserver {
	return &LogrObserver{
		logger:        logger,
		contextFields: make(map[string]string),
	}
}

// NewJSONObserver returns a LogrObserver writing one JSON object per line to w.
func NewJSONObserver(w io.Writer) *LogrObserver {
	logger := funcr.NewJSON(func(obj string) {
		fmt.Fprintln(w, obj)
	}, funcr.Options{LogTimestamp: true})
	return NewLogrObserver(logger.WithName("azprov"))
}

// Printf implements Logger.
func (o *LogrObserver) Printf(format string, v ...any) {
	o.logger.Info(fmt.Sprintf(format, v...))
}

// Event implements Observer.
func (o *LogrObserver) Event(event Event) {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	fields := mergeFields(o.contextFields, event.Fields)

	kv := []any{"event", string(event.Type)}
	if event.Phase != "" {
		kv = append(kv, "phase", event.Phase)
	}
	if event.Resource != "" {
		kv = append(kv, "resource", event.Resource)
	}
	for _, k := range slices.Sorted(maps.Keys(fields)) {
		kv = append(kv, k, fields[k])
	}

	o.logger.Info(event.Message, kv...)
}

// Progress implements Observer.
func (o *LogrObserver) Progress(phase string, current, total int) {
	o.logger.V(1).Info("progress", "event", string(EventProgress), "phase", phase, "current", current, "total", total)
}

// WithFields implements Observer.
func (o *LogrObserver) WithFields(fields map[string]string) Observer {
	return &LogrObserver{
		logger:        o.logger,
		contextFields: mergeFields(o.contextFields, fields),
	}
}
