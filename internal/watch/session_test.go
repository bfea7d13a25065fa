// File: session_test.go
// Title: Watch Session Tests
// Description: Tests for the watch state machine covering single-flight
//              coalescing of rapid changes, pass identifiers, panic
//              recovery, and the synchronous first compile on Start.
// Version: v0.1.0
// Created: 2026-03-08
// Modified: 2026-03-08
//
// Change History:
// - 2026-03-08 v0.1.0: Initial test implementation

package watch

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/locgen/locgen/core/config"
	"github.com/locgen/locgen/internal/discovery"
	"github.com/locgen/locgen/internal/pipeline"
)

func testProject(root string) discovery.Project {
	return discovery.Project{
		ID:     discovery.RootProjectID,
		Name:   "Root Project",
		Root:   root,
		Config: config.Default(),
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("Failed to create directory: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}
}

// stubSession builds a session whose compile function is replaced, so the
// state machine can be driven without filesystem timing
func stubSession(t *testing.T, compile CompileFunc, onCompile OnCompile) *Session {
	t.Helper()
	session := New(testProject(t.TempDir()), onCompile, func(err error) {
		t.Logf("onError: %v", err)
	})
	session.compile = compile
	return session
}

func TestTriggerCoalescing(t *testing.T) {
	var mu sync.Mutex
	var passes []string
	release := make(chan struct{})
	started := make(chan struct{}, 8)

	compile := func(discovery.Project) []pipeline.CompileResult {
		started <- struct{}{}
		<-release
		return nil
	}
	onCompile := func(passID string, _ []pipeline.CompileResult) {
		mu.Lock()
		passes = append(passes, passID)
		mu.Unlock()
	}

	session := stubSession(t, compile, onCompile)

	// First change starts a pass
	session.trigger()
	<-started
	if session.State() != StateCompiling {
		t.Fatalf("Expected StateCompiling, got %v", session.State())
	}

	// Three changes during the running pass coalesce into one pending pass
	session.trigger()
	session.trigger()
	session.trigger()
	if session.State() != StatePendingRecompile {
		t.Fatalf("Expected StatePendingRecompile, got %v", session.State())
	}

	// Finish the first pass; exactly one follow-up runs
	release <- struct{}{}
	<-started
	release <- struct{}{}

	deadline := time.After(2 * time.Second)
	for {
		if session.State() == StateIdle {
			break
		}
		select {
		case <-deadline:
			t.Fatal("Session never returned to idle")
		case <-time.After(5 * time.Millisecond):
		}
	}

	mu.Lock()
	defer mu.Unlock()
	if len(passes) != 2 {
		t.Fatalf("Expected exactly 2 passes, got %d", len(passes))
	}
	if passes[0] == passes[1] {
		t.Error("Pass identifiers must be unique")
	}
}

func TestTriggerWhileIdleRunsOnePass(t *testing.T) {
	var mu sync.Mutex
	count := 0

	session := stubSession(t,
		func(discovery.Project) []pipeline.CompileResult { return nil },
		func(string, []pipeline.CompileResult) {
			mu.Lock()
			count++
			mu.Unlock()
		})

	session.trigger()

	deadline := time.After(2 * time.Second)
	for session.State() != StateIdle {
		select {
		case <-deadline:
			t.Fatal("Session never returned to idle")
		case <-time.After(5 * time.Millisecond):
		}
	}

	mu.Lock()
	defer mu.Unlock()
	if count != 1 {
		t.Errorf("Expected 1 pass, got %d", count)
	}
}

func TestPanicReachesOnError(t *testing.T) {
	errs := make(chan error, 1)

	session := New(testProject(t.TempDir()),
		func(string, []pipeline.CompileResult) {},
		func(err error) { errs <- err })
	session.compile = func(discovery.Project) []pipeline.CompileResult {
		panic("pipeline exploded")
	}

	session.runPassSync()

	select {
	case err := <-errs:
		if err == nil {
			t.Fatal("Expected non-nil error")
		}
	default:
		t.Fatal("Expected panic to reach onError")
	}
}

func TestStartCompilesSynchronously(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "locales", "en.json"), `{"greeting": "Hello"}`)

	var mu sync.Mutex
	var firstResults []pipeline.CompileResult

	session := New(testProject(root),
		func(_ string, results []pipeline.CompileResult) {
			mu.Lock()
			if firstResults == nil {
				firstResults = results
			}
			mu.Unlock()
		},
		func(err error) { t.Logf("onError: %v", err) })

	if err := session.Start(); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	defer session.Stop()

	// Start returns only after the first pass reported
	mu.Lock()
	results := firstResults
	mu.Unlock()
	if results == nil {
		t.Fatal("Expected first compile before Start returned")
	}
	if _, err := os.Stat(filepath.Join(root, "internal", "i18n", "en.go")); err != nil {
		t.Errorf("Expected generated output: %v", err)
	}
}

func TestStopIsIdempotent(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "locales", "en.json"), `{}`)

	session := New(testProject(root),
		func(string, []pipeline.CompileResult) {},
		func(error) {})
	if err := session.Start(); err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	session.Stop()
	session.Stop()
}
