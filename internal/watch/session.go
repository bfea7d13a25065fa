// File: session.go
// Title: Watch Session Implementation
// Description: Implements the continuous compile loop for one project:
//              an fsnotify watch over the locales directory driving a
//              three-state machine that coalesces bursts of changes into
//              single compile passes.
// Version: v0.1.0
// Created: 2026-03-08
// Modified: 2026-03-08
//
// Change History:
// - 2026-03-08 v0.1.0: Initial implementation with fsnotify

package watch

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/google/uuid"

	lgerror "github.com/locgen/locgen/core/error"
	"github.com/locgen/locgen/core/log"
	"github.com/locgen/locgen/internal/discovery"
	"github.com/locgen/locgen/internal/pipeline"
	"github.com/locgen/locgen/utils/filex"
)

// State is the position of a session in its compile cycle.
type State int

const (
	// StateIdle means no pass is running
	StateIdle State = iota

	// StateCompiling means a pass is running and no change arrived since
	// it started
	StateCompiling

	// StatePendingRecompile means a pass is running and at least one
	// change arrived during it; exactly one follow-up pass will run
	StatePendingRecompile
)

// CompileFunc runs one compile pass for a project
type CompileFunc func(discovery.Project) []pipeline.CompileResult

// OnCompile receives the results of every completed pass together with its
// pass identifier
type OnCompile func(passID string, results []pipeline.CompileResult)

// OnError receives pipeline panics and watch errors; the loop keeps
// running afterwards
type OnError func(err error)

// Session is the continuous compile loop of one project.
type Session struct {
	project   discovery.Project
	onCompile OnCompile
	onError   OnError
	compile   CompileFunc

	mu      sync.Mutex
	state   State
	stopped bool

	watcher *fsnotify.Watcher
	done    chan struct{}
	wg      sync.WaitGroup
}

// New creates a session for one project. Neither callback may be nil.
func New(project discovery.Project, onCompile OnCompile, onError OnError) *Session {
	return &Session{
		project:   project,
		onCompile: onCompile,
		onError:   onError,
		compile:   pipeline.Compile,
		state:     StateIdle,
		done:      make(chan struct{}),
	}
}

// Start runs one full compile synchronously, then begins watching the
// locales directory. It returns once the watch is established.
func (s *Session) Start() error {
	s.runPassSync()

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return lgerror.Wrap(err, "failed to create filesystem watcher").
			WithCode(lgerror.CodeWatchError).
			WithOperation("watch.Start")
	}
	s.watcher = watcher

	dir := pipeline.LocalesDir(s.project)
	if filex.IsDir(dir) {
		if err := s.addWatches(dir); err != nil {
			watcher.Close()
			return err
		}
	} else {
		log.Warn("locales directory does not exist yet; watching is inactive until restart",
			log.String("directory", dir))
	}

	s.wg.Add(1)
	go s.loop()
	return nil
}

// Stop tears down the filesystem watch. An in-flight pass finishes and
// still reports through onCompile; no follow-up pass starts afterwards.
func (s *Session) Stop() {
	s.mu.Lock()
	if s.stopped {
		s.mu.Unlock()
		return
	}
	s.stopped = true
	s.mu.Unlock()

	close(s.done)
	if s.watcher != nil {
		s.watcher.Close()
	}
	s.wg.Wait()
}

// State returns the current position in the compile cycle
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// addWatches registers the locales directory and, for existing locale
// subdirectories, each of them
func (s *Session) addWatches(dir string) error {
	if err := s.watcher.Add(dir); err != nil {
		return lgerror.Wrap(err, "failed to watch locales directory").
			WithCode(lgerror.CodeWatchError).
			WithOperation("watch.addWatches").
			WithDetail("directory", dir)
	}

	infos, err := localesSubdirs(dir)
	if err != nil {
		return err
	}
	for _, sub := range infos {
		if err := s.watcher.Add(sub); err != nil {
			log.Warn("failed to watch locale subdirectory",
				log.String("directory", sub), log.Err(err))
		}
	}
	return nil
}

// localesSubdirs lists the immediate subdirectories of the locales
// directory
func localesSubdirs(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, lgerror.Wrap(err, "failed to list locales directory").
			WithCode(lgerror.CodeWatchError).
			WithOperation("watch.localesSubdirs").
			WithDetail("directory", dir)
	}

	var subs []string
	for _, entry := range entries {
		if entry.IsDir() {
			subs = append(subs, filepath.Join(dir, entry.Name()))
		}
	}
	return subs, nil
}

// loop drains watcher events until Stop
func (s *Session) loop() {
	defer s.wg.Done()

	for {
		select {
		case <-s.done:
			return
		case event, ok := <-s.watcher.Events:
			if !ok {
				return
			}
			s.handleEvent(event)
		case err, ok := <-s.watcher.Errors:
			if !ok {
				return
			}
			s.onError(lgerror.Wrap(err, "filesystem watch error").
				WithCode(lgerror.CodeWatchError).
				WithOperation("watch.loop"))
		}
	}
}

// handleEvent reacts to one filesystem event. Created directories join the
// watch so new locales under the namespaced layout are picked up; any
// create, write, remove, or rename triggers a pass.
func (s *Session) handleEvent(event fsnotify.Event) {
	if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
		return
	}

	if event.Op&fsnotify.Create != 0 && filex.IsDir(event.Name) {
		if err := s.watcher.Add(event.Name); err != nil {
			log.Warn("failed to watch new directory",
				log.String("directory", event.Name), log.Err(err))
		}
	}

	log.Debug("translation change detected",
		log.String("path", event.Name), log.String("op", event.Op.String()))
	s.trigger()
}

// trigger advances the state machine on a change. Idle starts a pass;
// during a pass any number of changes coalesce into one pending pass.
func (s *Session) trigger() {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch s.state {
	case StateIdle:
		if s.stopped {
			return
		}
		s.state = StateCompiling
		s.wg.Add(1)
		go func() {
			defer s.wg.Done()
			s.runPassSync()
			s.finishPass()
		}()
	case StateCompiling:
		s.state = StatePendingRecompile
	case StatePendingRecompile:
		// Already pending; further changes fold into the same pass
	}
}

// finishPass re-enters compiling when changes arrived during the pass,
// otherwise returns to idle
func (s *Session) finishPass() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == StatePendingRecompile && !s.stopped {
		s.state = StateCompiling
		s.wg.Add(1)
		go func() {
			defer s.wg.Done()
			s.runPassSync()
			s.finishPass()
		}()
		return
	}
	s.state = StateIdle
}

// runPassSync executes one compile pass and reports it. A panic inside
// the pipeline is converted to an onError call; the loop survives.
func (s *Session) runPassSync() {
	passID := uuid.NewString()

	defer func() {
		if r := recover(); r != nil {
			s.onError(lgerror.New(fmt.Sprintf("compile pass panicked: %v", r)).
				WithCode(lgerror.CodeInternal).
				WithOperation("watch.runPassSync").
				WithDetail("passId", passID))
		}
	}()

	results := s.compile(s.project)
	s.onCompile(passID, results)
}
