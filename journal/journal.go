// Package journal ships rendered log lines to systemd-journald. Its Writer
// satisfies io.Writer, so it can be handed to rlog as the output sink when
// the journald socket is available.
package journal

import (
	"strings"

	"github.com/coreos/go-systemd/v22/journal"
)

// Available reports whether the journald socket can be reached.
func Available() bool {
	return journal.Enabled()
}

// Writer sends rendered lines to systemd-journald. The journald priority
// is derived from the leading level tag of each line and ANSI escapes are
// stripped. A single Write may carry many lines at once (rlog buffers its
// sink, so a spill or flush delivers the accumulated batch); each embedded
// line becomes its own journal entry with its own priority.
type Writer struct {
	identifier string
}

// NewWriter returns a Writer tagging entries with the given
// SYSLOG_IDENTIFIER.
func NewWriter(identifier string) *Writer {
	return &Writer{identifier: identifier}
}

// send is swapped out by tests.
var send = journal.Send

// Write sends every line in p to the journal. The returned error is
// reported for io.Writer conformance; the logging core swallows it like
// any other sink failure.
func (w *Writer) Write(p []byte) (int, error) {
	vars := map[string]string{"SYSLOG_IDENTIFIER": w.identifier}
	for _, line := range strings.Split(stripANSI(string(p)), "\n") {
		if line == "" {
			continue
		}
		if err := send(line, priorityFor(line), vars); err != nil {
			return 0, err
		}
	}
	return len(p), nil
}

// priorityFor maps the [TAG] at the start of a rendered line to a journald
// priority. Lines without a recognizable tag fall back to informational.
func priorityFor(line string) journal.Priority {
	if len(line) < 5 || line[0] != '[' || line[4] != ']' {
		return journal.PriInfo
	}
	switch line[1:4] {
	case "DBG":
		return journal.PriDebug
	case "INF":
		return journal.PriInfo
	case "WRN":
		return journal.PriWarning
	case "ERR":
		return journal.PriErr
	case "FTL":
		return journal.PriCrit
	}
	return journal.PriInfo
}

// stripANSI removes ANSI escape sequences such as \033[31m and \033[0m.
func stripANSI(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	inEscape := false
	for i := 0; i < len(s); i++ {
		if s[i] == '\033' && i+1 < len(s) && s[i+1] == '[' {
			inEscape = true
			continue
		}
		if inEscape {
			if s[i] == 'm' {
				inEscape = false
			}
			continue
		}
		b.WriteByte(s[i])
	}
	return b.String()
}
