package hallon

import "github.com/hallon-go/hallon/pkg/hallon/native"

// ConnectionState is the coarse connection status reported by a live
// session.
type ConnectionState int

const (
	// Undefined covers every native status the binding does not recognise.
	Undefined ConnectionState = iota
	LoggedOut
	LoggedIn
	Disconnected
)

func (s ConnectionState) String() string {
	switch s {
	case LoggedOut:
		return "LoggedOut"
	case LoggedIn:
		return "LoggedIn"
	case Disconnected:
		return "Disconnected"
	default:
		return "Undefined"
	}
}

// Symbol returns the snake_case name scripting hosts expose.
func (s ConnectionState) Symbol() string {
	switch s {
	case LoggedOut:
		return "logged_out"
	case LoggedIn:
		return "logged_in"
	case Disconnected:
		return "disconnected"
	default:
		return "undefined"
	}
}

func stateFromNative(st native.ConnectionState) ConnectionState {
	switch st {
	case native.ConnectionLoggedOut:
		return LoggedOut
	case native.ConnectionLoggedIn:
		return LoggedIn
	case native.ConnectionDisconnected:
		return Disconnected
	default:
		return Undefined
	}
}
