package hallon

import "github.com/hallon-go/hallon/pkg/hallon/native"

// APIVersion is the libspotify API version the binding targets.
const APIVersion = native.APIVersion

// Version is populated at build time via ldflags.
var Version = "v0.0.0-in-progress"

// WrapperVersion returns the binding's own version.
func WrapperVersion() string {
	return Version
}
