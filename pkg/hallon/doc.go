// Package hallon binds a libspotify session to Go.
//
// A Binding wraps one native library and is initialised explicitly:
//
//	b := hallon.Default()
//	if err := b.Init(); err != nil {
//	    // hallon.ErrNotBuilt when the libspotify tag was not set
//	}
//	sess, err := b.NewSession(hallon.Options{ApplicationKey: appkey})
//	if err != nil {
//	    return err
//	}
//	defer sess.Close()
//
//	st, err := sess.State() // hallon.LoggedOut right after creation
//
// Omitted options cascade: the user agent defaults to "Hallon", the settings
// path to a fresh temporary directory and the cache path to whatever the
// settings path resolved to. Temporary directories are never removed by this
// package.
//
// A Session has exactly one owner and must be released with Close. The
// package registers no finalizers.
package hallon
