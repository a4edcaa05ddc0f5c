// Package meshlog is the logging seam every other package calls
// through instead of touching zerolog directly, mirroring how the
// lvlath teacher repo centralizes structured-field logging behind a
// small internal type rather than scattering fmt.Printf calls.
//
// What:
//   - Pass/Reject: low-volume decision tracing for pipeline passes
//     (one candidate accepted or rejected, and why).
//   - Fatal: reports an invariant violation and panics; callers are
//     not expected to recover from it, the same way the original C
//     library aborts the process on an assertion failure.
//
// Why:
//   - adapt.Run logs one line per pass (whether the pass changed the
//     mesh, and the resulting vertex and element counts); refine logs
//     a reject line at debug level per candidate that fails its
//     child-quality gate, so a developer can turn on -v and see why
//     refinement stalled. coarsen and swap do not log rejections. A
//     single package means the field names stay consistent everywhere.
//
// Errors:
//   - Fatal never returns: it logs at error level, then panics. It is
//     reserved for conditions the spec calls invariant violations
//     (e.g. an independent-set relaxation that failed to converge),
//     never for ordinary validation failures, which return an error.
package meshlog

import (
	"io"
	"os"
	"sync"

	"github.com/rs/zerolog"
)

var (
	mu     sync.RWMutex
	logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}).
		With().Timestamp().Logger()
)

// SetOutput redirects all subsequent log output, and is meant for
// tests and for cmd/meshadapt's -json flag (plain JSON lines instead
// of the human-readable console writer).
func SetOutput(w io.Writer, json bool) {
	mu.Lock()
	defer mu.Unlock()
	if json {
		logger = zerolog.New(w).With().Timestamp().Logger()
		return
	}
	logger = zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: "15:04:05"}).
		With().Timestamp().Logger()
}

// SetLevel sets the minimum level that reaches the output writer.
func SetLevel(level zerolog.Level) {
	mu.Lock()
	defer mu.Unlock()
	logger = logger.Level(level)
}

func event(e *zerolog.Event, msg string, kv []interface{}) {
	for i := 0; i+1 < len(kv); i += 2 {
		key, ok := kv[i].(string)
		if !ok {
			continue
		}
		e = e.Interface(key, kv[i+1])
	}
	e.Msg(msg)
}

// Pass logs a single pipeline-pass summary at info level.
func Pass(msg string, kv ...interface{}) {
	mu.RLock()
	defer mu.RUnlock()
	event(logger.Info(), msg, kv)
}

// Reject logs a single candidate rejection at debug level.
func Reject(msg string, kv ...interface{}) {
	mu.RLock()
	defer mu.RUnlock()
	event(logger.Debug(), msg, kv)
}

// Fatal logs an invariant violation at error level and panics.
func Fatal(msg string, kv ...interface{}) {
	mu.RLock()
	event(logger.Error(), msg, kv)
	mu.RUnlock()
	panic(msg)
}
