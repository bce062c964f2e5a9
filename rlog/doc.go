// Package rlog provides a small leveled logger with per-region filtering
// and buffered, mutex-guarded output to a single sink.
//
// # Design
//
// All configuration lives in an explicitly constructed Log that the host
// application owns: build it once with New, share it, and Close it at
// shutdown. Logger handles are cheap values naming one region; any number
// of goroutines may emit through shared or distinct handles concurrently.
// Level and region filtering read immutable state and take no lock; only
// the buffered write does.
//
// # Output
//
// Each emitted line has the shape
//
//	[INF] [web] [2024-05-01T17:03:09] listening on port 8080
//
// with the header wrapped in an ANSI color matching the level unless
// Config.NoColor is set. Timestamps are UTC with second precision. Lines
// are accumulated in a write buffer and reach the sink when the buffer
// fills, on Flush, on Close, and always before Fatal terminates the
// process.
//
// # Usage
//
// Initialize once at startup:
//
//	lg, err := rlog.New(rlog.Config{Sink: os.Stdout, Regions: "web,db"})
//	if err != nil {
//		// only fails without a sink
//	}
//	defer lg.Close()
//
//	web := lg.Logger("web")
//	web.Infof("listening on port %d", 8080)
//	web.Warn("slow response")
//
// # Region Filtering
//
// Config.Regions is a comma-separated allow-list matched exactly against
// each handle's region name; the token "all" (the default) matches every
// region. A handle whose region is not listed emits nothing at any level.
//
// # Failure Contract
//
// Emitting is fire and forget: sink write failures are swallowed and the
// line is simply lost. Only New reports errors. Fatal logs, flushes and
// exits with a non-zero status, and never returns.
package rlog
