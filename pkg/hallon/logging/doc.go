// Package logging provides a minimal logging facade for the hallon binding.
//
// Logger exposes context-aware leveled methods and With. Two adapters are
// provided:
//
//	// log/slog, nil binds to slog.Default()
//	logger := logging.New(nil)
//
//	// zerolog
//	zl := zerolog.New(os.Stderr).With().Timestamp().Logger()
//	logger := logging.NewZerolog(zl)
//
// Nop discards everything and is what the binding uses when no logger is
// configured.
//
// # Redaction
//
// The application key is a credential. Never log its bytes; log
// Redacted("application_key") together with its length instead.
package logging
