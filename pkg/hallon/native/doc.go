// Package native describes the contract between the hallon binding and the
// native libspotify session API.
//
// The Library interface is the only seam through which the binding reaches
// native code. The cgo-backed implementation lives in an internal package
// behind the libspotify build tag; tests substitute the recording fake from
// the nativetest subpackage.
//
// Values in this package mirror the C declarations one to one: Config is
// sp_session_config, Callbacks is sp_session_callbacks, Error is sp_error and
// ConnectionState is sp_connectionstate.
package native
