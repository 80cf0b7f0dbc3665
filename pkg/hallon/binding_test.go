package hallon_test

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hallon-go/hallon/pkg/hallon"
	"github.com/hallon-go/hallon/pkg/hallon/logging"
	"github.com/hallon-go/hallon/pkg/hallon/native"
	"github.com/hallon-go/hallon/pkg/hallon/native/nativetest"
)

func TestInitIsIdempotent(t *testing.T) {
	lib := nativetest.New()
	b := hallon.NewBinding(lib)

	require.NoError(t, b.Init())
	require.NoError(t, b.Init())
	assert.Equal(t, "nativetest", b.LibraryBuildID())
}

func TestInitRejectsAPIVersionMismatch(t *testing.T) {
	b := hallon.NewBinding(nativetest.New().WithAPIVersion(3))

	err := b.Init()
	var nativeErr *hallon.NativeSessionError
	require.ErrorAs(t, err, &nativeErr)
	assert.Equal(t, native.ErrorBadAPIVersion, nativeErr.Code)
	assert.Same(t, err, b.Init(), "init result is cached")

	_, err = b.NewSession(hallon.Options{ApplicationKey: appKey})
	assert.ErrorIs(t, err, hallon.ErrNativeSession)
	assert.Empty(t, b.LibraryBuildID())
}

func TestInitWithoutLibrary(t *testing.T) {
	err := hallon.NewBinding(nil).Init()
	assert.ErrorIs(t, err, hallon.ErrNoLibrary)
}

func TestDefaultBinding(t *testing.T) {
	err := hallon.Default().Init()
	if err == nil {
		t.Skip("native bindings linked; stub path not exercised")
	}
	assert.True(t, errors.Is(err, hallon.ErrNotBuilt), "unexpected error: %v", err)
}

func TestSessionLogsRedactedKey(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New(slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	b := hallon.NewBinding(nativetest.New(), hallon.WithLogger(logger))

	sess, err := b.NewSession(hallon.Options{ApplicationKey: []byte("secret-key"), SettingsPath: "tmp"})
	require.NoError(t, err)
	require.NoError(t, sess.Close())

	out := buf.String()
	assert.Contains(t, out, "session created")
	assert.Contains(t, out, logging.Placeholder())
	assert.Contains(t, out, sess.ID())
	assert.NotContains(t, out, "secret-key")
}

func TestWrapperVersion(t *testing.T) {
	assert.Equal(t, hallon.Version, hallon.WrapperVersion())
	assert.Equal(t, 4, hallon.APIVersion)
}
