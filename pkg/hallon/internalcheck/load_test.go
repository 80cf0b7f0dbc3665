package internalcheck

import (
	"testing"

	"golang.org/x/tools/go/packages"
)

// checkedPackages are the packages that handle the application key or own
// native sessions.
var checkedPackages = []string{
	"github.com/hallon-go/hallon/pkg/hallon",
	"github.com/hallon-go/hallon/pkg/hallon/internal/backend",
}

func load(t *testing.T) []*packages.Package {
	t.Helper()
	cfg := &packages.Config{
		Mode: packages.NeedSyntax | packages.NeedTypes | packages.NeedTypesInfo | packages.NeedFiles | packages.NeedName,
	}
	pkgs, err := packages.Load(cfg, checkedPackages...)
	if err != nil {
		t.Fatalf("load packages: %v", err)
	}
	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			t.Fatalf("package %s: %v", pkg.PkgPath, e)
		}
	}
	return pkgs
}
