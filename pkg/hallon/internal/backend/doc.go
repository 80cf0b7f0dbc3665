// Package backend hosts the thin cgo layer that links the hallon binding to
// libspotify. The real implementation lives behind the libspotify build tag
// so the rest of the repository compiles without cgo or the native SDK.
package backend
