package hallon

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/hallon-go/hallon/pkg/hallon/logging"
	"github.com/hallon-go/hallon/pkg/hallon/native"
)

type lifecycle int

const (
	uninitialized lifecycle = iota
	live
	released
)

func (l lifecycle) String() string {
	switch l {
	case live:
		return "live"
	case released:
		return "released"
	default:
		return "uninitialized"
	}
}

// Session owns exactly one native sp_session from a successful NewSession
// until Close. It is not safe for concurrent use.
type Session struct {
	id    string
	lib   native.Library
	ref   native.SessionRef
	opts  Options
	state lifecycle
	log   logging.Logger
}

// NewSession resolves opts, validates them and creates the native session.
// On failure no native resource exists and nothing needs closing.
func (b *Binding) NewSession(opts Options) (*Session, error) {
	if err := b.Init(); err != nil {
		return nil, err
	}
	if err := validate(opts); err != nil {
		return nil, err
	}
	resolved, err := resolve(b.fs, b.tempRoot, opts)
	if err != nil {
		return nil, err
	}

	s := &Session{
		id:   uuid.NewString(),
		lib:  b.lib,
		opts: resolved,
	}
	s.log = b.log.With("session", s.id)

	cfg := &native.Config{
		APIVersion:       APIVersion,
		CacheLocation:    resolved.CachePath,
		SettingsLocation: resolved.SettingsPath,
		ApplicationKey:   resolved.ApplicationKey,
		UserAgent:        resolved.UserAgent,
		Callbacks:        &native.Callbacks{},
		UserData:         uintptr(b.serial.Add(1)),
		TinySettings:     true,
	}
	ctx := context.Background()
	ref, status := b.lib.CreateSession(cfg)
	if !status.OK() || ref.IsNull() {
		ZeroizeBytes(resolved.ApplicationKey)
		s.state = released
		if status.OK() {
			status = native.ErrorAPIInitializationFailed
		}
		s.log.Warn(ctx, "native session create failed", "code", int(status), "error", status.String())
		return nil, &NativeSessionError{Code: status}
	}

	s.ref = ref
	s.state = live
	s.log.Debug(ctx, "session created",
		"user_agent", resolved.UserAgent,
		"settings_path", resolved.SettingsPath,
		"cache_path", resolved.CachePath,
		logging.Redacted("application_key"),
		"application_key_len", len(resolved.ApplicationKey),
	)
	return s, nil
}

// ID identifies the session in log records.
func (s *Session) ID() string { return s.id }

// UserAgent returns the resolved user agent.
func (s *Session) UserAgent() string { return s.opts.UserAgent }

// SettingsPath returns the resolved settings location.
func (s *Session) SettingsPath() string { return s.opts.SettingsPath }

// CachePath returns the resolved cache location.
func (s *Session) CachePath() string { return s.opts.CachePath }

// State queries the native connection state.
func (s *Session) State() (ConnectionState, error) {
	if s == nil {
		return Undefined, fmt.Errorf("%w: nil session", ErrInvalidState)
	}
	if s.state != live {
		return Undefined, fmt.Errorf("%w: session is %s", ErrInvalidState, s.state)
	}
	return stateFromNative(s.lib.ConnectionState(s.ref)), nil
}

// LoggedIn reports whether State is LoggedIn.
func (s *Session) LoggedIn() (bool, error) {
	st, err := s.State()
	if err != nil {
		return false, err
	}
	return st == LoggedIn, nil
}

// Close releases the native session. Only the first call on a live session
// reaches the native library; later calls and calls on a nil Session return
// nil.
func (s *Session) Close() error {
	if s == nil || s.state != live {
		return nil
	}

	ref := s.ref
	s.ref = 0
	s.state = released
	status := s.lib.ReleaseSession(ref)
	ZeroizeBytes(s.opts.ApplicationKey)
	s.opts.ApplicationKey = nil

	if !status.OK() {
		s.log.Warn(context.Background(), "native session release failed", "code", int(status))
		return &NativeSessionError{Code: status}
	}
	s.log.Debug(context.Background(), "session released")
	return nil
}
