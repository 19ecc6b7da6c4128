// Package probe implements the reflektor loader-verification marker: when
// an entry point runs, a fixed two-byte payload is written to a resolvable
// file path so an external host can confirm the module executed.
package probe

import (
	"os"
	"runtime"
)

// EnvMarkerPath overrides the marker file location when set and non-empty.
const EnvMarkerPath = "REFLEKTOR_MARKER"

// Payload is the exact marker content a successful probe run leaves behind.
const Payload = "ok"

// StatusCode is returned by StartStatus regardless of write outcome, so a
// host can confirm execution, but not write success, from the return value.
const StatusCode = 1337

const (
	defaultMarkerPathWindows = `C:\Windows\Temp\reflektor_marker.txt`
	defaultMarkerPathPOSIX   = "/tmp/reflektor_marker.txt"
)

// ResolvePath returns the marker file path: the environment override when
// set and non-empty, verbatim, otherwise the platform default. It reads the
// process environment fresh on every call, never fails, and never returns
// an empty string.
func ResolvePath() string {
	if path := os.Getenv(EnvMarkerPath); path != "" {
		return path
	}
	if runtime.GOOS == "windows" {
		return defaultMarkerPathWindows
	}
	return defaultMarkerPathPOSIX
}

// WriteMarker writes the marker payload to path, truncating any previous
// content. All failures (permissions, missing parent directory, invalid
// path) are swallowed: the probe must never raise into its host, and the
// marker file's absence is the only failure signal an observer gets.
func WriteMarker(path string) {
	_ = writeFileBytes(path, []byte(Payload))
}

// Start resolves the marker path and writes the marker. The shared library
// build exports this as StartW.
func Start() {
	WriteMarker(ResolvePath())
}

// StartStatus runs Start and returns StatusCode unconditionally. The shared
// library build exports this as StartWStatus.
func StartStatus() int {
	Start()
	return StatusCode
}
