package hallon

import (
	"errors"
	"fmt"

	"github.com/hallon-go/hallon/pkg/hallon/internal/backend"
	"github.com/hallon-go/hallon/pkg/hallon/native"
)

var (
	// ErrTypeArgument matches every *TypeArgumentError.
	ErrTypeArgument = errors.New("hallon: wrong argument type")
	// ErrNativeSession matches every *NativeSessionError.
	ErrNativeSession = errors.New("hallon: native session error")
	// ErrInvalidState is returned when a released or never-created session
	// is queried.
	ErrInvalidState  = errors.New("hallon: session is not live")
	ErrArgumentCount = errors.New("hallon: wrong number of arguments")
	ErrNoLibrary     = errors.New("hallon: no native library")
	// ErrNotBuilt reports that libspotify was not linked into the binary.
	ErrNotBuilt = backend.ErrNotBuilt
)

// TypeArgumentError reports a constructor argument of the wrong kind. It is
// raised before any native call.
type TypeArgumentError struct {
	Argument string
	Want     string
	Got      string
}

func (e *TypeArgumentError) Error() string {
	return fmt.Sprintf("hallon: wrong argument type for %s (got %s, want %s)", e.Argument, e.Got, e.Want)
}

func (e *TypeArgumentError) Is(target error) bool { return target == ErrTypeArgument }

// NativeSessionError carries the status code of a failed native call
// verbatim.
type NativeSessionError struct {
	Code native.Error
}

func (e *NativeSessionError) Error() string {
	return fmt.Sprintf("hallon: native session error %d: %s", int(e.Code), e.Code)
}

func (e *NativeSessionError) Is(target error) bool { return target == ErrNativeSession }
