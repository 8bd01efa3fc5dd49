package system

import (
	"runtime"
	"testing"
)

func TestProbe(t *testing.T) {
	dir := t.TempDir()

	defer func() {
		if r := recover(); r != nil {
			t.Fatalf("Probe panicked: %v", r)
		}
	}()

	env := Probe(dir)
	if env == nil {
		t.Fatal("Probe returned nil")
	}

	if env.OS != runtime.GOOS {
		t.Errorf("OS = %q, want %q", env.OS, runtime.GOOS)
	}
	if env.TempDir != dir {
		t.Errorf("TempDir = %q, want %q", env.TempDir, dir)
	}
	if env.TempUsed < 0 || env.TempUsed > 100 {
		t.Errorf("TempUsed out of range: %f", env.TempUsed)
	}

	t.Logf("Environment: platform=%q host=%q admin=%v free=%d", env.Platform, env.Hostname, env.IsAdmin, env.TempFree)
}

func TestResolveTempDir(t *testing.T) {
	if got := ResolveTempDir(`D:\scratch`); got != `D:\scratch` {
		t.Errorf("configured dir not honored, got %q", got)
	}

	t.Setenv("TEMP", "/tmp/solarwin-temp")
	if got := ResolveTempDir(""); got != "/tmp/solarwin-temp" {
		t.Errorf("TEMP not honored, got %q", got)
	}

	t.Setenv("TEMP", "")
	if got := ResolveTempDir(""); got == "" {
		t.Error("fallback temp dir is empty")
	}
}

func TestIsAdminDoesNotPanic(t *testing.T) {
	defer func() {
		if r := recover(); r != nil {
			t.Fatalf("IsAdmin panicked: %v", r)
		}
	}()
	t.Logf("IsAdmin = %v", IsAdmin())
}
