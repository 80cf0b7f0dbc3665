package nativetest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hallon-go/hallon/pkg/hallon/native"
)

func TestLibraryRecordsDeepCopy(t *testing.T) {
	lib := New()
	key := []byte{0x01, 0x00, 0x02}
	cfg := &native.Config{ApplicationKey: key, UserAgent: "ua", Callbacks: &native.Callbacks{}}

	ref, status := lib.CreateSession(cfg)
	require.True(t, status.OK())
	require.False(t, ref.IsNull())

	key[0] = 0xff
	rec, ok := lib.LastConfig()
	require.True(t, ok)
	assert.Equal(t, []byte{0x01, 0x00, 0x02}, rec.ApplicationKey)
	assert.NotSame(t, cfg.Callbacks, rec.Callbacks)
}

func TestLibraryFailureReturnsNullRef(t *testing.T) {
	lib := New().FailWith(native.ErrorBadApplicationKey)

	ref, status := lib.CreateSession(&native.Config{})
	assert.True(t, ref.IsNull())
	assert.Equal(t, native.ErrorBadApplicationKey, status)
	assert.Equal(t, 0, lib.Live())
}

func TestLibraryStateAndRelease(t *testing.T) {
	lib := New()
	ref, _ := lib.CreateSession(&native.Config{})

	assert.Equal(t, native.ConnectionLoggedOut, lib.ConnectionState(ref))
	lib.SetState(ref, native.ConnectionDisconnected)
	assert.Equal(t, native.ConnectionDisconnected, lib.ConnectionState(ref))

	assert.True(t, lib.ReleaseSession(ref).OK())
	assert.False(t, lib.ReleaseSession(ref).OK())
	assert.Equal(t, 2, lib.Releases(ref))

	create, release, state := lib.Calls()
	assert.Equal(t, 1, create)
	assert.Equal(t, 2, release)
	assert.Equal(t, 2, state)
}
