package rlog

import (
	"bufio"
	"errors"
	"io"
	"os"
	"strings"
	"sync"
	"time"
)

const defaultBufferSize = 4096

// timestampLayout is the fixed-width UTC timestamp in every rendered line.
const timestampLayout = "2006-01-02T15:04:05"

// regionCutset is the edge whitespace stripped from region filter tokens.
const regionCutset = " \r\t\x00"

// ErrNilSink is returned by New when Config.Sink is missing.
var ErrNilSink = errors.New("rlog: a sink is required")

// Config defines options for New.
type Config struct {
	// MinLevel is the minimum severity that is emitted.
	// Default: LevelDebug (everything)
	MinLevel Level
	// Regions is a comma-separated list of region names to enable. The
	// token "all" enables every region. Tokens keep their order and their
	// duplicates; see New for the exact trimming rules.
	// Default: "all"
	Regions string
	// Sink receives the rendered lines. Required. The caller keeps the
	// sink valid for the whole lifetime of the Log and closes it after
	// Close; the Log never closes it.
	Sink io.Writer
	// NoColor disables the ANSI escapes around the line header.
	// Default: false (color enabled)
	NoColor bool
	// BufferSize is the size of the write buffer in bytes.
	// Default: 4096
	BufferSize int
}

// Log holds the logging configuration and owns the write buffer over the
// sink. Construct one with New, hand out Logger handles with Logger, and
// call Close exactly once at shutdown.
//
// minLevel, regions and color are set by New and never mutated afterwards,
// so the filtering reads in emit need no synchronization. Only buffer
// writes and flushes take mu.
type Log struct {
	minLevel Level
	regions  []string
	color    bool

	buf *bufio.Writer
	mu  sync.Mutex

	// collaborators, swapped out by tests
	now  func() time.Time
	exit func(int)
}

// New parses the region filter, wraps the sink in a write buffer and
// returns the ready-to-share Log. It fails only when no sink is given.
//
// The region filter is split on "," and each token after the first has
// space, CR, tab and NUL stripped from its edges. The first token is kept
// exactly as split and empty tokens survive as literal entries; this
// mirrors the historical parser so existing filter strings keep their
// meaning.
func New(cfg Config) (*Log, error) {
	if cfg.Sink == nil {
		return nil, ErrNilSink
	}
	filter := cfg.Regions
	if filter == "" {
		filter = "all"
	}
	size := cfg.BufferSize
	if size <= 0 {
		size = defaultBufferSize
	}
	return &Log{
		minLevel: cfg.MinLevel,
		regions:  parseRegions(filter),
		color:    !cfg.NoColor,
		buf:      bufio.NewWriterSize(cfg.Sink, size),
		now:      time.Now,
		exit:     os.Exit,
	}, nil
}

// parseRegions splits a comma-separated region filter. The first fragment
// is appended untrimmed before the loop walks the remainder.
func parseRegions(s string) []string {
	parts := strings.Split(s, ",")
	regions := make([]string, 0, len(parts))
	regions = append(regions, parts[0])
	for _, p := range parts[1:] {
		regions = append(regions, strings.Trim(p, regionCutset))
	}
	return regions
}

// regionEnabled reports whether a region passes the filter. The filter is
// scanned in order; "all" matches every region, otherwise the match is
// exact and case-sensitive.
func (lg *Log) regionEnabled(region string) bool {
	for _, r := range lg.regions {
		if r == "all" || r == region {
			return true
		}
	}
	return false
}

// Flush pushes any buffered bytes through to the sink. Failures are
// swallowed; flushing with nothing pending is a no-op.
func (lg *Log) Flush() {
	lg.mu.Lock()
	_ = lg.buf.Flush()
	lg.mu.Unlock()
}

// Close flushes the buffer (best effort) and releases the parsed region
// filter. It does not close the sink; that stays the caller's job. Call it
// exactly once after a successful New and do not use the Log afterwards.
func (lg *Log) Close() {
	lg.Flush()
	lg.regions = nil
}

// Logger returns a handle that emits under the given region name. Handles
// are cheap immutable values, safe to copy and to use concurrently.
func (lg *Log) Logger(region string) Logger {
	return Logger{log: lg, region: region}
}
