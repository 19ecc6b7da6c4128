//go:build (linux || darwin) && !cgo

package loader

import "errors"

type dynHandle = uintptr

var errNoCgo = errors.New("dynamic loading requires cgo on this platform")

func dlOpen(path string) (dynHandle, error) {
	_ = path
	return 0, errNoCgo
}

func dlResolve(handle dynHandle, name string) (uintptr, error) {
	_ = handle
	_ = name
	return 0, errNoCgo
}

func dlCall0(addr uintptr) uintptr {
	_ = addr
	return 0
}

func dlClose(handle dynHandle) error {
	_ = handle
	return nil
}
