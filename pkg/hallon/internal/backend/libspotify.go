//go:build cgo && libspotify

package backend

/*
#cgo darwin LDFLAGS: -framework libspotify
#cgo !darwin LDFLAGS: -lspotify
#include <stdlib.h>
#include <string.h>
#include <stdint.h>
#include <libspotify/api.h>

static void *hallon_userdata(uintptr_t v) { return (void *)v; }
*/
import "C"

import (
	"sync"
	"unsafe"

	"github.com/hallon-go/hallon/pkg/hallon/native"
)

// allocation holds the C memory handed to sp_session_create. Whether
// libspotify copies the config contents is not documented, so everything
// stays alive until the session has been released.
type allocation struct {
	config    *C.sp_session_config
	callbacks *C.sp_session_callbacks
	key       unsafe.Pointer
	keyLen    C.size_t
	strs      []*C.char
}

func (a *allocation) cstring(s string) *C.char {
	p := C.CString(s)
	a.strs = append(a.strs, p)
	return p
}

// free scrubs the key copy before returning it to the C heap.
func (a *allocation) free() {
	if a.key != nil {
		C.memset(a.key, 0, a.keyLen)
		C.free(a.key)
		a.key = nil
	}
	for _, p := range a.strs {
		C.free(unsafe.Pointer(p))
	}
	a.strs = nil
	if a.callbacks != nil {
		C.free(unsafe.Pointer(a.callbacks))
		a.callbacks = nil
	}
	if a.config != nil {
		C.free(unsafe.Pointer(a.config))
		a.config = nil
	}
}

var (
	mu   sync.Mutex
	live = map[native.SessionRef]*allocation{}
)

func put(ref native.SessionRef, a *allocation) {
	mu.Lock()
	live[ref] = a
	mu.Unlock()
}

func take(ref native.SessionRef) (*allocation, bool) {
	mu.Lock()
	defer mu.Unlock()
	a, ok := live[ref]
	delete(live, ref)
	return a, ok
}

type library struct{}

// Load returns the linked native library.
func Load() (native.Library, error) {
	return library{}, nil
}

// Built reports whether the native bindings are linked in.
func Built() bool { return true }

func (library) APIVersion() int { return int(C.SPOTIFY_API_VERSION) }

func (library) BuildID() string { return C.GoString(C.sp_build_id()) }

func (library) CreateSession(cfg *native.Config) (native.SessionRef, native.Error) {
	if cfg == nil {
		return 0, native.ErrorInvalidIndata
	}
	// Go hooks cannot be trampolined through C yet; every slot stays NULL.
	if cfg.Callbacks.Registered() != 0 {
		return 0, native.ErrorMissingCallback
	}

	a := &allocation{}
	a.callbacks = (*C.sp_session_callbacks)(C.calloc(1, C.sizeof_sp_session_callbacks))
	a.config = (*C.sp_session_config)(C.calloc(1, C.sizeof_sp_session_config))
	if a.callbacks == nil || a.config == nil {
		a.free()
		return 0, native.ErrorAPIInitializationFailed
	}
	if n := len(cfg.ApplicationKey); n > 0 {
		a.key = C.CBytes(cfg.ApplicationKey)
		a.keyLen = C.size_t(n)
	}

	c := a.config
	c.api_version = C.int(cfg.APIVersion)
	c.cache_location = a.cstring(cfg.CacheLocation)
	c.settings_location = a.cstring(cfg.SettingsLocation)
	c.application_key = a.key
	c.application_key_size = a.keyLen
	c.user_agent = a.cstring(cfg.UserAgent)
	c.callbacks = a.callbacks
	c.userdata = C.hallon_userdata(C.uintptr_t(cfg.UserData))
	c.tiny_settings = C.bool(cfg.TinySettings)

	var sess *C.sp_session
	rc := C.sp_session_create(c, &sess)
	if rc != C.SP_ERROR_OK || sess == nil {
		a.free()
		if rc == C.SP_ERROR_OK {
			return 0, native.ErrorAPIInitializationFailed
		}
		return 0, native.Error(rc)
	}

	ref := native.SessionRef(uintptr(unsafe.Pointer(sess)))
	put(ref, a)
	return ref, native.ErrorOK
}

func (library) ReleaseSession(ref native.SessionRef) native.Error {
	a, ok := take(ref)
	if !ok {
		return native.ErrorInvalidIndata
	}
	C.sp_session_release(sessionPtr(ref))
	a.free()
	return native.ErrorOK
}

func (library) ConnectionState(ref native.SessionRef) native.ConnectionState {
	return connectionState(C.sp_session_connectionstate(sessionPtr(ref)))
}

func sessionPtr(ref native.SessionRef) *C.sp_session {
	return (*C.sp_session)(unsafe.Pointer(uintptr(ref)))
}

// connectionState is the only place where sp_connectionstate values are
// translated.
func connectionState(st C.sp_connectionstate) native.ConnectionState {
	switch st {
	case C.SP_CONNECTION_STATE_LOGGED_OUT:
		return native.ConnectionLoggedOut
	case C.SP_CONNECTION_STATE_LOGGED_IN:
		return native.ConnectionLoggedIn
	case C.SP_CONNECTION_STATE_DISCONNECTED:
		return native.ConnectionDisconnected
	case C.SP_CONNECTION_STATE_UNDEFINED:
		return native.ConnectionUndefined
	default:
		return native.ConnectionState(st)
	}
}
