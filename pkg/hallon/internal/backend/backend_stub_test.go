//go:build !cgo || !libspotify

package backend

import (
	"errors"
	"testing"
)

func TestLoadReturnsStubError(t *testing.T) {
	lib, err := Load()
	if !errors.Is(err, ErrNotBuilt) {
		t.Fatalf("unexpected error from Load: %v", err)
	}
	if lib != nil {
		t.Fatalf("expected nil library, got %+v", lib)
	}
	if Built() {
		t.Fatal("stub build must not report native bindings")
	}
}
