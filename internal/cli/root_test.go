package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hallon-go/hallon/pkg/hallon"
	"github.com/hallon-go/hallon/pkg/hallon/native"
	"github.com/hallon-go/hallon/pkg/hallon/native/nativetest"
)

type harness struct {
	fs  afero.Fs
	lib *nativetest.Library
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	h := &harness{fs: afero.NewMemMapFs(), lib: nativetest.New()}
	require.NoError(t, afero.WriteFile(h.fs, "/appkey.key", []byte{0x01, 0x00, 0x02}, 0o600))
	return h
}

func (h *harness) run(args ...string) (string, string, error) {
	cmd := NewRootCmd(Deps{
		Fs: h.fs,
		NewBinding: func(opts ...hallon.BindingOption) *hallon.Binding {
			return hallon.NewBinding(h.lib, append(opts, hallon.WithFilesystem(h.fs))...)
		},
	})
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestRootCommand(t *testing.T) {
	t.Run("version flag", func(t *testing.T) {
		out, _, err := newHarness(t).run("--version")
		require.NoError(t, err)
		assert.Contains(t, out, "hallon version")
		assert.Contains(t, out, hallon.WrapperVersion())
	})

	t.Run("help flag", func(t *testing.T) {
		out, _, err := newHarness(t).run("--help")
		require.NoError(t, err)
		assert.Contains(t, out, "libspotify")
	})

	t.Run("global flags", func(t *testing.T) {
		cmd := NewRootCmd(Deps{})
		configFlag := cmd.PersistentFlags().Lookup("config")
		require.NotNil(t, configFlag)
		assert.Equal(t, "", configFlag.DefValue)

		levelFlag := cmd.PersistentFlags().Lookup("log-level")
		require.NotNil(t, levelFlag)
		assert.Equal(t, "info", levelFlag.DefValue)
	})
}

func TestVersionCommand(t *testing.T) {
	out, _, err := newHarness(t).run("version")
	require.NoError(t, err)
	assert.Contains(t, out, "libspotify api 4")
	assert.Contains(t, out, "libspotify build nativetest")
}

func TestVersionCommandWithoutLibrary(t *testing.T) {
	h := newHarness(t)
	h.lib.WithAPIVersion(1)
	out, _, err := h.run("version")
	require.NoError(t, err)
	assert.Contains(t, out, "libspotify unavailable")
}

func TestStateCommand(t *testing.T) {
	h := newHarness(t)
	out, _, err := h.run("state", "--appkey-file", "/appkey.key", "--log-level", "error")
	require.NoError(t, err)

	assert.Contains(t, out, "state: logged_out")
	cfg, ok := h.lib.LastConfig()
	require.True(t, ok)
	assert.Equal(t, []byte{0x01, 0x00, 0x02}, cfg.ApplicationKey)
	assert.Equal(t, hallon.DefaultUserAgent, cfg.UserAgent)
	assert.Equal(t, cfg.SettingsLocation, cfg.CacheLocation)
	assert.True(t, strings.Contains(out, "settings: "+cfg.SettingsLocation))

	_, release, _ := h.lib.Calls()
	assert.Equal(t, 1, release, "session must be closed")
}

func TestStateCommandFromConfigFile(t *testing.T) {
	h := newHarness(t)
	require.NoError(t, afero.WriteFile(h.fs, "/hallon.yaml", []byte(`
appkey_file: /appkey.key
user_agent: Hallon (cli)
settings_path: tmp
log:
  level: error
  format: json
`), 0o644))

	out, _, err := h.run("state", "--config", "/hallon.yaml", "--cache-path", "tmp/cache")
	require.NoError(t, err)
	assert.Contains(t, out, "cache: tmp/cache")

	cfg, _ := h.lib.LastConfig()
	assert.Equal(t, "Hallon (cli)", cfg.UserAgent)
	assert.Equal(t, "tmp", cfg.SettingsLocation)
	assert.Equal(t, "tmp/cache", cfg.CacheLocation)
}

func TestStateCommandNativeFailure(t *testing.T) {
	h := newHarness(t)
	h.lib.FailWith(native.ErrorBadApplicationKey)

	_, _, err := h.run("state", "--appkey-file", "/appkey.key", "--log-level", "error")
	require.Error(t, err)
	assert.ErrorIs(t, err, hallon.ErrNativeSession)
}

func TestStateCommandRequiresKey(t *testing.T) {
	_, _, err := newHarness(t).run("state", "--log-level", "error")
	assert.ErrorContains(t, err, "appkey_file")
}

func TestInvalidLogLevel(t *testing.T) {
	_, _, err := newHarness(t).run("version", "--log-level", "loud")
	assert.ErrorContains(t, err, "invalid log level")
}
