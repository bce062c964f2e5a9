package rlog

import "fmt"

// Logger is an immutable handle naming one region. Obtain handles from
// (*Log).Logger; emitting through the zero value panics.
type Logger struct {
	log    *Log
	region string
}

// Region returns the region name the handle was created with.
func (l Logger) Region() string {
	return l.region
}

// Flush forces buffered lines through to the sink.
func (l Logger) Flush() {
	l.log.Flush()
}

// emit renders and writes a single line. Rendering, including the
// timestamp, happens outside the critical section; only the buffered write
// holds the lock. Write failures are swallowed so that logging can never
// short-circuit program logic.
func (l Logger) emit(level Level, msg string) {
	lg := l.log
	if level < lg.minLevel {
		return
	}
	if !lg.regionEnabled(l.region) {
		return
	}

	color, reset := "", ""
	if lg.color {
		color = level.color()
		reset = colorReset
	}
	ts := lg.now().UTC().Format(timestampLayout)
	line := color + "[" + level.String() + "] [" + l.region + "] [" + ts + "]" + reset + " " + msg + "\n"

	lg.mu.Lock()
	_, _ = lg.buf.WriteString(line)
	lg.mu.Unlock()
}

// Debug logs a message at debug level.
// Thread-safe for concurrent use.
func (l Logger) Debug(msg string) {
	l.emit(LevelDebug, msg)
}

// Debugf logs a debug message formatted with fmt.Sprintf.
// Thread-safe for concurrent use.
func (l Logger) Debugf(format string, args ...any) {
	l.emit(LevelDebug, fmt.Sprintf(format, args...))
}

// Info logs a message at info level.
// Thread-safe for concurrent use.
func (l Logger) Info(msg string) {
	l.emit(LevelInfo, msg)
}

// Infof logs an informational message formatted with fmt.Sprintf.
// Thread-safe for concurrent use.
func (l Logger) Infof(format string, args ...any) {
	l.emit(LevelInfo, fmt.Sprintf(format, args...))
}

// Warn logs a message at warning level.
// Thread-safe for concurrent use.
func (l Logger) Warn(msg string) {
	l.emit(LevelWarn, msg)
}

// Warnf logs a warning message formatted with fmt.Sprintf.
// Thread-safe for concurrent use.
func (l Logger) Warnf(format string, args ...any) {
	l.emit(LevelWarn, fmt.Sprintf(format, args...))
}

// Error logs a message at error level.
// Thread-safe for concurrent use.
func (l Logger) Error(msg string) {
	l.emit(LevelError, msg)
}

// Errorf logs an error message formatted with fmt.Sprintf.
// Thread-safe for concurrent use.
func (l Logger) Errorf(format string, args ...any) {
	l.emit(LevelError, fmt.Sprintf(format, args...))
}

// Fatal logs a message at fatal level, flushes the buffer and terminates
// the process with a non-zero status. It never returns. The flush happens
// even when the message itself is filtered out by the region set, so lines
// buffered by earlier calls reach the sink before the process dies.
func (l Logger) Fatal(msg string) {
	l.emit(LevelFatal, msg)
	l.log.Flush()
	l.log.exit(1)
}

// Fatalf logs a fatal message formatted with fmt.Sprintf, flushes the
// buffer and terminates the process. It never returns.
func (l Logger) Fatalf(format string, args ...any) {
	l.Fatal(fmt.Sprintf(format, args...))
}
