package probe_test

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	probe "github.com/sliverarmory/reflektor-probe"
)

func TestStartWritesMarkerToOverridePath(t *testing.T) {
	markerPath := filepath.Join(t.TempDir(), "reflektor_marker.txt")
	t.Setenv(probe.EnvMarkerPath, markerPath)

	probe.Start()

	got, err := os.ReadFile(markerPath)
	if err != nil {
		t.Fatalf("read marker %s: %v", markerPath, err)
	}
	if string(got) != probe.Payload {
		t.Fatalf("unexpected marker bytes: got=%q want=%q", got, probe.Payload)
	}
}

func TestResolvePathReturnsOverrideVerbatim(t *testing.T) {
	const override = "./relative dir/with spaces.txt"
	t.Setenv(probe.EnvMarkerPath, override)

	if got := probe.ResolvePath(); got != override {
		t.Fatalf("ResolvePath: got=%q want=%q", got, override)
	}
}

func TestResolvePathDefaultWhenOverrideEmpty(t *testing.T) {
	t.Setenv(probe.EnvMarkerPath, "")

	want := "/tmp/reflektor_marker.txt"
	if runtime.GOOS == "windows" {
		want = `C:\Windows\Temp\reflektor_marker.txt`
	}
	if got := probe.ResolvePath(); got != want {
		t.Fatalf("ResolvePath: got=%q want=%q", got, want)
	}
}

func TestStartWithEmptyOverrideWritesDefaultPath(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("writing the C:\\Windows\\Temp default needs elevation")
	}

	t.Setenv(probe.EnvMarkerPath, "")
	defaultPath := "/tmp/reflektor_marker.txt"
	_ = os.Remove(defaultPath)
	t.Cleanup(func() {
		_ = os.Remove(defaultPath)
	})

	probe.Start()

	got, err := os.ReadFile(defaultPath)
	if err != nil {
		t.Fatalf("read marker %s: %v", defaultPath, err)
	}
	if string(got) != probe.Payload {
		t.Fatalf("unexpected marker bytes: got=%q want=%q", got, probe.Payload)
	}
}

func TestWriteMarkerTruncatesPreviousContent(t *testing.T) {
	markerPath := filepath.Join(t.TempDir(), "reflektor_marker.txt")
	if err := os.WriteFile(markerPath, []byte("stale content from an earlier run"), 0o644); err != nil {
		t.Fatalf("seed marker %s: %v", markerPath, err)
	}

	probe.WriteMarker(markerPath)
	probe.WriteMarker(markerPath)

	got, err := os.ReadFile(markerPath)
	if err != nil {
		t.Fatalf("read marker %s: %v", markerPath, err)
	}
	if string(got) != probe.Payload {
		t.Fatalf("marker not truncated to payload: got=%q want=%q", got, probe.Payload)
	}
}

func TestWriteMarkerMissingParentDirIsSilent(t *testing.T) {
	markerPath := filepath.Join(t.TempDir(), "does-not-exist", "reflektor_marker.txt")

	probe.WriteMarker(markerPath)

	if _, err := os.Stat(markerPath); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected no marker at %s, stat err=%v", markerPath, err)
	}
}

func TestStartStatusReturnsStatusCodeOnSuccess(t *testing.T) {
	markerPath := filepath.Join(t.TempDir(), "reflektor_marker.txt")
	t.Setenv(probe.EnvMarkerPath, markerPath)

	if got := probe.StartStatus(); got != probe.StatusCode {
		t.Fatalf("StartStatus: got=%d want=%d", got, probe.StatusCode)
	}

	got, err := os.ReadFile(markerPath)
	if err != nil {
		t.Fatalf("read marker %s: %v", markerPath, err)
	}
	if string(got) != probe.Payload {
		t.Fatalf("unexpected marker bytes: got=%q want=%q", got, probe.Payload)
	}
}

func TestStartStatusReturnsStatusCodeWhenWriteFails(t *testing.T) {
	markerPath := filepath.Join(t.TempDir(), "does-not-exist", "reflektor_marker.txt")
	t.Setenv(probe.EnvMarkerPath, markerPath)

	if got := probe.StartStatus(); got != probe.StatusCode {
		t.Fatalf("StartStatus after failed write: got=%d want=%d", got, probe.StatusCode)
	}
	if _, err := os.Stat(markerPath); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected no marker at %s, stat err=%v", markerPath, err)
	}
}
