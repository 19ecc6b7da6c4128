//go:build !windows && !darwin && !linux

package loader

import "errors"

type dynHandle = uintptr

var errUnsupported = errors.New("dynamic loading is only supported on windows, darwin, and linux")

func dlOpen(path string) (dynHandle, error) {
	_ = path
	return 0, errUnsupported
}

func dlResolve(handle dynHandle, name string) (uintptr, error) {
	_ = handle
	_ = name
	return 0, errUnsupported
}

func dlCall0(addr uintptr) uintptr {
	_ = addr
	return 0
}

func dlClose(handle dynHandle) error {
	_ = handle
	return nil
}
