package version

import "testing"

func TestFormatVersion_DevBuild(t *testing.T) {
	got := FormatVersion("dev", "none", "unknown")
	if got != "dev (development build)" {
		t.Errorf("unexpected dev format: %q", got)
	}
}

func TestFormatVersion_Release(t *testing.T) {
	got := FormatVersion("v1.2.0", "abc1234", "2024-06-01")
	want := "v1.2.0 (commit: abc1234, built: 2024-06-01)"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}
