//go:build !cgo || !libspotify

package backend

import "github.com/hallon-go/hallon/pkg/hallon/native"

// Stub for builds without cgo or without the libspotify tag. It compiles
// everywhere and reports ErrNotBuilt.

// Load returns the linked native library.
func Load() (native.Library, error) {
	return nil, ErrNotBuilt
}

// Built reports whether the native bindings are linked in.
func Built() bool { return false }
