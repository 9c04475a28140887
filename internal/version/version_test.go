package version

import (
	"runtime"
	"strings"
	"testing"
)

func TestInfo(t *testing.T) {
	info := Info()

	if !strings.HasPrefix(info, "latscope ") {
		t.Errorf("Info() = %q, want latscope prefix", info)
	}
	if !strings.Contains(info, runtime.GOOS+"/"+runtime.GOARCH) {
		t.Errorf("Info() = %q, missing platform", info)
	}
}

func TestInfo_FieldsPopulated(t *testing.T) {
	Info()

	// After initialization every field has either the ldflags value or a
	// fallback; none may stay empty.
	if Version == "" || Commit == "" || Date == "" {
		t.Errorf("Version=%q Commit=%q Date=%q, want all non-empty", Version, Commit, Date)
	}
}
