package hallon

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/spf13/afero"
)

const (
	// DefaultUserAgent is used when Options.UserAgent is empty.
	DefaultUserAgent = "Hallon"
	// SettingsDirPrefix names temporary settings directories.
	SettingsDirPrefix = "se.burgestrand.hallon"
)

// Options are the constructor arguments of a Session. Empty strings mean
// "omitted" and are resolved in order: UserAgent, SettingsPath, CachePath.
type Options struct {
	// ApplicationKey is the binary libspotify application key. It is
	// required and copied; the caller may reuse the slice afterwards.
	ApplicationKey []byte
	UserAgent      string
	SettingsPath   string
	// CachePath defaults to the resolved SettingsPath, not to a second
	// temporary directory.
	CachePath string
}

func resolveUserAgent(ua string) string {
	if ua == "" {
		return DefaultUserAgent
	}
	return ua
}

// resolveSettingsPath creates a fresh directory under root when path is
// empty. An empty root selects the system temporary directory.
func resolveSettingsPath(fs afero.Fs, root, path string) (string, error) {
	if path != "" {
		return path, nil
	}
	dir, err := afero.TempDir(fs, root, SettingsDirPrefix)
	if err != nil {
		return "", fmt.Errorf("hallon: create settings directory: %w", err)
	}
	return dir, nil
}

func resolveCachePath(cache, settings string) string {
	if cache == "" {
		return settings
	}
	return cache
}

// resolve returns a copy of o with every default applied. The application
// key is cloned.
func resolve(fs afero.Fs, root string, o Options) (Options, error) {
	out := Options{
		ApplicationKey: bytes.Clone(o.ApplicationKey),
		UserAgent:      resolveUserAgent(o.UserAgent),
	}
	settings, err := resolveSettingsPath(fs, root, o.SettingsPath)
	if err != nil {
		return Options{}, err
	}
	out.SettingsPath = settings
	out.CachePath = resolveCachePath(o.CachePath, settings)
	return out, nil
}

// validate checks argument kinds: a non-empty binary key and strings that
// can cross into C.
func validate(o Options) error {
	if len(o.ApplicationKey) == 0 {
		return &TypeArgumentError{Argument: "applicationKey", Want: "non-empty byte buffer", Got: "empty buffer"}
	}
	for _, f := range []struct {
		name, value string
	}{
		{"userAgent", o.UserAgent},
		{"settingsPath", o.SettingsPath},
		{"cachePath", o.CachePath},
	} {
		if strings.IndexByte(f.value, 0) >= 0 {
			return &TypeArgumentError{Argument: f.name, Want: "string", Got: "string containing NUL"}
		}
	}
	return nil
}
