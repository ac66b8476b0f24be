package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"
)

// DebugEnvVar switches debug logging on regardless of configuration.
const DebugEnvVar = "DT_DEBUG"

// switchWriter lets Configure redirect output for loggers that were
// created before it was called.
type switchWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (s *switchWriter) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.w.Write(p)
}

func (s *switchWriter) set(w io.Writer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.w = w
}

var (
	level  = new(slog.LevelVar)
	output = &switchWriter{w: os.Stderr}
	root   = slog.New(slog.NewTextHandler(output, &slog.HandlerOptions{Level: level}))
)

func init() {
	Configure(os.Stderr, false)
}

// DebugEnabled returns true if debug mode is enabled via DT_DEBUG environment variable
func DebugEnabled() bool {
	return os.Getenv(DebugEnvVar) != ""
}

// Configure sets the log destination and level. Verbose or DT_DEBUG enables
// debug records; otherwise only warnings and errors are written.
func Configure(w io.Writer, verbose bool) {
	output.set(w)
	if verbose || DebugEnabled() {
		level.Set(slog.LevelDebug)
	} else {
		level.Set(slog.LevelWarn)
	}
}

// Logger returns the process-wide structured logger.
func Logger() *slog.Logger {
	return root
}

// Component returns a logger tagged with the given component name.
func Component(name string) *slog.Logger {
	return root.With(slog.String("component", name))
}

// Debugf logs a formatted debug message
func Debugf(format string, args ...interface{}) {
	root.Debug(fmt.Sprintf(format, args...))
}
