package hallon

import "fmt"

var argumentNames = [...]string{"applicationKey", "userAgent", "settingsPath", "cachePath"}

// NewSessionFromArgs is the positional constructor exposed to scripting
// hosts:
//
//	Session(applicationKey, userAgent = "Hallon", settingsPath = <tmp>, cachePath = settingsPath)
//
// The key accepts []byte or string (taken as raw bytes); the other
// arguments accept string only. Any other kind, nil included, yields a
// *TypeArgumentError before the native library is touched.
func (b *Binding) NewSessionFromArgs(args ...any) (*Session, error) {
	opts, err := optionsFromArgs(args)
	if err != nil {
		return nil, err
	}
	return b.NewSession(opts)
}

func optionsFromArgs(args []any) (Options, error) {
	if n := len(args); n < 1 || n > len(argumentNames) {
		return Options{}, fmt.Errorf("%w (given %d, expected 1..%d)", ErrArgumentCount, n, len(argumentNames))
	}

	var opts Options
	switch v := args[0].(type) {
	case []byte:
		opts.ApplicationKey = v
	case string:
		opts.ApplicationKey = []byte(v)
	default:
		return Options{}, &TypeArgumentError{Argument: argumentNames[0], Want: "[]byte", Got: fmt.Sprintf("%T", v)}
	}

	fields := []*string{&opts.UserAgent, &opts.SettingsPath, &opts.CachePath}
	for i, arg := range args[1:] {
		s, ok := arg.(string)
		if !ok {
			return Options{}, &TypeArgumentError{Argument: argumentNames[i+1], Want: "string", Got: fmt.Sprintf("%T", arg)}
		}
		*fields[i] = s
	}
	return opts, nil
}
