package tests

import (
	"testing"

	"github.com/acm-uic/acm-catalog/internal/agent/cli"
)

func TestVersionCmd_PrintsBuildInfo(t *testing.T) {
	out, err := runCmd(t, cli.NewVersionCmd("1.2.3", "2026-08-30"))
	if err != nil {
		t.Fatalf("version returned error: %v", err)
	}
	if !contains(out, "version=1.2.3") || !contains(out, "build_date=2026-08-30") {
		t.Fatalf("unexpected output: %q", out)
	}
}
