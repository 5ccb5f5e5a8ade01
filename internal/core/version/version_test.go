package version

import (
	"runtime"
	"testing"
)

func TestInfo_Defaults(t *testing.T) {
	b := Info("tirefit")
	if b.Service != "tirefit" || b.Version != "dev" || b.Commit != "none" || b.Date != "unknown" {
		t.Fatalf("unexpected build info %+v", b)
	}
	if b.GoVersion != runtime.Version() {
		t.Fatalf("go version = %q", b.GoVersion)
	}
	if got := b.String(); got != "tirefit dev (none, unknown)" {
		t.Fatalf("String = %q", got)
	}
}
