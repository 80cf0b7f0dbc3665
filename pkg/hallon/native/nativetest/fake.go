// Package nativetest provides an in-memory native.Library that records every
// call made through it.
package nativetest

import (
	"sync"

	"github.com/hallon-go/hallon/pkg/hallon/native"
)

// Library is a recording fake of the native session API. The zero value is
// not usable; construct one with New.
//
// Configs passed to CreateSession are deep-copied before being recorded so
// tests can observe exactly what the binding handed over, even after the
// binding has scrubbed its own buffers.
type Library struct {
	mu sync.Mutex

	apiVersion int
	buildID    string

	// CreateStatus is returned by the next CreateSession calls. Leave it at
	// native.ErrorOK for success.
	CreateStatus native.Error

	next     native.SessionRef
	states   map[native.SessionRef]native.ConnectionState
	released map[native.SessionRef]int

	configs      []native.Config
	createCalls  int
	releaseCalls int
	stateCalls   int
}

// New returns a fake reporting native.APIVersion.
func New() *Library {
	return &Library{
		apiVersion: native.APIVersion,
		buildID:    "nativetest",
		next:       1,
		states:     make(map[native.SessionRef]native.ConnectionState),
		released:   make(map[native.SessionRef]int),
	}
}

// WithAPIVersion overrides the version the fake reports.
func (l *Library) WithAPIVersion(v int) *Library {
	l.mu.Lock()
	l.apiVersion = v
	l.mu.Unlock()
	return l
}

// FailWith makes subsequent CreateSession calls fail with code.
func (l *Library) FailWith(code native.Error) *Library {
	l.mu.Lock()
	l.CreateStatus = code
	l.mu.Unlock()
	return l
}

func (l *Library) APIVersion() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.apiVersion
}

func (l *Library) BuildID() string { return l.buildID }

func (l *Library) CreateSession(cfg *native.Config) (native.SessionRef, native.Error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.createCalls++
	if cfg != nil {
		rec := *cfg
		rec.ApplicationKey = append([]byte(nil), cfg.ApplicationKey...)
		if cfg.Callbacks != nil {
			cb := *cfg.Callbacks
			rec.Callbacks = &cb
		}
		l.configs = append(l.configs, rec)
	}
	if !l.CreateStatus.OK() {
		return 0, l.CreateStatus
	}
	if cfg == nil {
		return 0, native.ErrorInvalidIndata
	}

	ref := l.next
	l.next++
	l.states[ref] = native.ConnectionLoggedOut
	return ref, native.ErrorOK
}

func (l *Library) ReleaseSession(ref native.SessionRef) native.Error {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.releaseCalls++
	l.released[ref]++
	if _, ok := l.states[ref]; !ok {
		return native.ErrorInvalidIndata
	}
	delete(l.states, ref)
	return native.ErrorOK
}

func (l *Library) ConnectionState(ref native.SessionRef) native.ConnectionState {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.stateCalls++
	st, ok := l.states[ref]
	if !ok {
		return native.ConnectionUndefined
	}
	return st
}

// SetState forces the state reported for ref, including codes outside the
// declared range.
func (l *Library) SetState(ref native.SessionRef, st native.ConnectionState) {
	l.mu.Lock()
	l.states[ref] = st
	l.mu.Unlock()
}

// Configs returns every config passed to CreateSession, in call order.
func (l *Library) Configs() []native.Config {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]native.Config(nil), l.configs...)
}

// LastConfig returns the most recent config, or false if none was recorded.
func (l *Library) LastConfig() (native.Config, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if len(l.configs) == 0 {
		return native.Config{}, false
	}
	return l.configs[len(l.configs)-1], true
}

// Calls reports how many times each native entry point was invoked.
func (l *Library) Calls() (create, release, state int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.createCalls, l.releaseCalls, l.stateCalls
}

// Releases reports how many times ref was released.
func (l *Library) Releases(ref native.SessionRef) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.released[ref]
}

// Live reports the number of sessions created and not yet released.
func (l *Library) Live() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.states)
}

var _ native.Library = (*Library)(nil)
