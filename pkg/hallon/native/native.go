package native

import "fmt"

// APIVersion is the SPOTIFY_API_VERSION the binding is compiled against.
const APIVersion = 4

// SessionRef is an opaque reference to a native sp_session. The zero value is
// the null session.
type SessionRef uintptr

// IsNull reports whether the reference points at no session.
func (r SessionRef) IsNull() bool { return r == 0 }

// Library is the subset of libspotify the binding calls.
//
// CreateSession must either return ErrorOK with a non-null reference or a
// failure code with the null reference. ReleaseSession must never be called
// twice for the same reference.
type Library interface {
	APIVersion() int
	BuildID() string
	CreateSession(cfg *Config) (SessionRef, Error)
	ReleaseSession(ref SessionRef) Error
	ConnectionState(ref SessionRef) ConnectionState
}

// Config mirrors sp_session_config.
type Config struct {
	APIVersion       int
	CacheLocation    string
	SettingsLocation string
	// ApplicationKey is binary; implementations pass pointer and length and
	// never rely on termination.
	ApplicationKey []byte
	UserAgent      string
	Callbacks      *Callbacks
	UserData       uintptr
	TinySettings   bool
}

// Callbacks mirrors sp_session_callbacks. A nil slot is passed to the native
// library as NULL.
type Callbacks struct {
	LoggedIn            func(Error)
	LoggedOut           func()
	MetadataUpdated     func()
	ConnectionError     func(Error)
	MessageToUser       func(string)
	NotifyMainThread    func()
	MusicDelivery       func(frames []byte, numFrames int) int
	PlayTokenLost       func()
	LogMessage          func(string)
	EndOfTrack          func()
	StreamingError      func(Error)
	UserinfoUpdated     func()
	StartPlayback       func()
	StopPlayback        func()
	GetAudioBufferStats func() (samples, stutter int)
}

// Registered returns the number of non-nil hooks.
func (c *Callbacks) Registered() int {
	if c == nil {
		return 0
	}
	n := 0
	for _, set := range []bool{
		c.LoggedIn != nil,
		c.LoggedOut != nil,
		c.MetadataUpdated != nil,
		c.ConnectionError != nil,
		c.MessageToUser != nil,
		c.NotifyMainThread != nil,
		c.MusicDelivery != nil,
		c.PlayTokenLost != nil,
		c.LogMessage != nil,
		c.EndOfTrack != nil,
		c.StreamingError != nil,
		c.UserinfoUpdated != nil,
		c.StartPlayback != nil,
		c.StopPlayback != nil,
		c.GetAudioBufferStats != nil,
	} {
		if set {
			n++
		}
	}
	return n
}

// CallbackSlots is the number of hooks in sp_session_callbacks.
const CallbackSlots = 15

// Error mirrors sp_error.
type Error int

const (
	ErrorOK Error = iota
	ErrorBadAPIVersion
	ErrorAPIInitializationFailed
	ErrorTrackNotPlayable
	ErrorResourceNotLoaded
	ErrorBadApplicationKey
	ErrorBadUsernameOrPassword
	ErrorUserBanned
	ErrorUnableToContactServer
	ErrorClientTooOld
	ErrorOtherPermanent
	ErrorBadUserAgent
	ErrorMissingCallback
	ErrorInvalidIndata
	ErrorIndexOutOfRange
	ErrorUserNeedsPremium
	ErrorOtherTransient
	ErrorIsLoading
)

var errorMessages = [...]string{
	ErrorOK:                      "no error",
	ErrorBadAPIVersion:           "invalid library version",
	ErrorAPIInitializationFailed: "initialization failed",
	ErrorTrackNotPlayable:        "track not playable",
	ErrorResourceNotLoaded:       "resource not loaded",
	ErrorBadApplicationKey:       "invalid application key",
	ErrorBadUsernameOrPassword:   "invalid username or password",
	ErrorUserBanned:              "user banned",
	ErrorUnableToContactServer:   "unable to contact server",
	ErrorClientTooOld:            "client too old",
	ErrorOtherPermanent:          "unknown error",
	ErrorBadUserAgent:            "invalid user agent string",
	ErrorMissingCallback:         "invalid callback struct",
	ErrorInvalidIndata:           "invalid input data",
	ErrorIndexOutOfRange:         "index out of range",
	ErrorUserNeedsPremium:        "a premium account is required",
	ErrorOtherTransient:          "a transient error occurred",
	ErrorIsLoading:               "resource is loading",
}

func (e Error) String() string {
	if e >= 0 && int(e) < len(errorMessages) {
		return errorMessages[e]
	}
	return fmt.Sprintf("native error %d", int(e))
}

// OK reports whether the status is SP_ERROR_OK.
func (e Error) OK() bool { return e == ErrorOK }

// ConnectionState mirrors sp_connectionstate. Values outside the declared
// constants can be reported by newer libraries.
type ConnectionState int

const (
	ConnectionLoggedOut ConnectionState = iota
	ConnectionLoggedIn
	ConnectionDisconnected
	ConnectionUndefined
)
