package hallon

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/spf13/afero"

	"github.com/hallon-go/hallon/pkg/hallon/internal/backend"
	"github.com/hallon-go/hallon/pkg/hallon/logging"
	"github.com/hallon-go/hallon/pkg/hallon/native"
)

// Binding is the entry point of the package: one native library plus the
// ambient dependencies sessions are built with. It holds no global state;
// hosts create one and call Init once, further calls are no-ops.
type Binding struct {
	lib     native.Library
	loadErr error

	fs       afero.Fs
	tempRoot string
	log      logging.Logger

	serial atomic.Uint64

	once    sync.Once
	initErr error
}

// BindingOption configures a Binding.
type BindingOption func(*Binding)

// WithLogger sets the logger sessions inherit. The default discards output.
func WithLogger(l logging.Logger) BindingOption {
	return func(b *Binding) {
		if l != nil {
			b.log = l
		}
	}
}

// WithFilesystem sets the filesystem default settings directories are
// created on. The default is the OS filesystem.
func WithFilesystem(fs afero.Fs) BindingOption {
	return func(b *Binding) {
		if fs != nil {
			b.fs = fs
		}
	}
}

// WithTempRoot sets the parent of default settings directories. Empty
// selects the system temporary directory.
func WithTempRoot(dir string) BindingOption {
	return func(b *Binding) { b.tempRoot = dir }
}

// NewBinding wraps lib.
func NewBinding(lib native.Library, opts ...BindingOption) *Binding {
	b := &Binding{
		lib: lib,
		fs:  afero.NewOsFs(),
		log: logging.Nop(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Default wraps the linked libspotify. When the binary was built without it,
// Init reports ErrNotBuilt.
func Default(opts ...BindingOption) *Binding {
	lib, err := backend.Load()
	b := NewBinding(lib, opts...)
	b.loadErr = err
	return b
}

// Init checks that the library is usable and speaks APIVersion. It runs
// once; every call returns the first result.
func (b *Binding) Init() error {
	b.once.Do(func() {
		b.initErr = b.init()
		if b.initErr != nil {
			b.log.Error(context.Background(), "hallon init failed", "error", b.initErr)
			return
		}
		b.log.Debug(context.Background(), "hallon initialised",
			"api_version", APIVersion,
			"build_id", b.lib.BuildID(),
		)
	})
	return b.initErr
}

func (b *Binding) init() error {
	if b.loadErr != nil {
		return fmt.Errorf("hallon: load native library: %w", b.loadErr)
	}
	if b.lib == nil {
		return ErrNoLibrary
	}
	if v := b.lib.APIVersion(); v != APIVersion {
		return fmt.Errorf("hallon: library speaks api version %d, want %d: %w",
			v, APIVersion, &NativeSessionError{Code: native.ErrorBadAPIVersion})
	}
	return nil
}

// LibraryBuildID returns the native build identifier, or "" when the
// library is unavailable.
func (b *Binding) LibraryBuildID() string {
	if b.Init() != nil {
		return ""
	}
	return b.lib.BuildID()
}
