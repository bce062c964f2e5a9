package rlog

import (
	"strings"
	"sync"
	"testing"
)

// TestConcurrency_SharedHandle verifies that the mutex keeps lines intact
// when many goroutines emit through the same handle.
func TestConcurrency_SharedHandle(t *testing.T) {
	lg, buf := newTestLog(t, Config{NoColor: true})
	app := lg.Logger("app")

	const numGoroutines = 200
	const messagesPerGoroutine = 50

	var wg sync.WaitGroup
	wg.Add(numGoroutines)
	for i := 0; i < numGoroutines; i++ {
		go func(id int) {
			defer wg.Done()
			for j := 0; j < messagesPerGoroutine; j++ {
				app.Infof("goroutine-%d-msg-%d", id, j)
			}
		}(i)
	}
	wg.Wait()
	lg.Flush()

	got := lines(buf)
	expected := numGoroutines * messagesPerGoroutine
	if len(got) != expected {
		t.Fatalf("expected %d log lines, got %d", expected, len(got))
	}
	for i, line := range got {
		if !strings.HasPrefix(line, "[INF] [app] [") {
			t.Fatalf("line %d appears garbled (bad header): %q", i, line)
		}
		if !strings.Contains(line, "goroutine-") {
			t.Fatalf("line %d appears garbled (missing marker): %q", i, line)
		}
	}
}

// TestConcurrency_DistinctHandles verifies safety when every goroutine
// carries its own handle at a different level.
func TestConcurrency_DistinctHandles(t *testing.T) {
	lg, buf := newTestLog(t, Config{NoColor: true})

	const numGoroutines = 100
	const messagesPerGoroutine = 25

	var wg sync.WaitGroup
	wg.Add(numGoroutines)
	for i := 0; i < numGoroutines; i++ {
		go func(id int) {
			defer wg.Done()
			l := lg.Logger("worker")
			for j := 0; j < messagesPerGoroutine; j++ {
				switch j % 4 {
				case 0:
					l.Debugf("worker-%d-debug-%d", id, j)
				case 1:
					l.Infof("worker-%d-info-%d", id, j)
				case 2:
					l.Warnf("worker-%d-warn-%d", id, j)
				default:
					l.Errorf("worker-%d-error-%d", id, j)
				}
			}
		}(i)
	}
	wg.Wait()
	lg.Flush()

	got := lines(buf)
	expected := numGoroutines * messagesPerGoroutine
	if len(got) != expected {
		t.Fatalf("expected %d log lines, got %d", expected, len(got))
	}
	for i, line := range got {
		hasTag := strings.HasPrefix(line, "[DBG]") ||
			strings.HasPrefix(line, "[INF]") ||
			strings.HasPrefix(line, "[WRN]") ||
			strings.HasPrefix(line, "[ERR]")
		if !hasTag {
			t.Fatalf("line %d appears garbled (missing level tag): %q", i, line)
		}
	}
}

// TestConcurrency_FlushDuringWrites interleaves flushes with emits and
// checks that no line is torn or lost.
func TestConcurrency_FlushDuringWrites(t *testing.T) {
	lg, buf := newTestLog(t, Config{NoColor: true})
	app := lg.Logger("app")

	const writers = 50
	const messagesPerWriter = 40

	var wg sync.WaitGroup
	wg.Add(writers * 2)
	for i := 0; i < writers; i++ {
		go func(id int) {
			defer wg.Done()
			for j := 0; j < messagesPerWriter; j++ {
				app.Infof("writer-%d-%d", id, j)
			}
		}(i)
		go func() {
			defer wg.Done()
			for j := 0; j < messagesPerWriter; j++ {
				lg.Flush()
			}
		}()
	}
	wg.Wait()
	lg.Flush()

	got := lines(buf)
	expected := writers * messagesPerWriter
	if len(got) != expected {
		t.Fatalf("expected %d log lines, got %d", expected, len(got))
	}
	for i, line := range got {
		if !strings.HasPrefix(line, "[INF] [app] [") || !strings.Contains(line, "writer-") {
			t.Fatalf("line %d appears garbled: %q", i, line)
		}
	}
}

// TestConcurrency_FilteredCallsAreLockFree is a smoke test that filtered
// emits run concurrently with writers without touching the sink.
func TestConcurrency_FilteredCallsAreLockFree(t *testing.T) {
	lg, buf := newTestLog(t, Config{MinLevel: LevelWarn, Regions: "net", NoColor: true})
	net := lg.Logger("net")
	ui := lg.Logger("ui")

	const numGoroutines = 100

	var wg sync.WaitGroup
	wg.Add(numGoroutines * 2)
	for i := 0; i < numGoroutines; i++ {
		go func(id int) {
			defer wg.Done()
			net.Debugf("below threshold %d", id) // level-filtered
			net.Warnf("net-warn-%d", id)
		}(i)
		go func(id int) {
			defer wg.Done()
			ui.Errorf("ui-error-%d", id) // region-filtered
		}(i)
	}
	wg.Wait()
	lg.Flush()

	got := lines(buf)
	if len(got) != numGoroutines {
		t.Fatalf("expected %d lines (only net warnings), got %d", numGoroutines, len(got))
	}
	for i, line := range got {
		if !strings.Contains(line, "net-warn-") {
			t.Fatalf("line %d should be a net warning, got: %q", i, line)
		}
	}
}
