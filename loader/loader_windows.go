//go:build windows

package loader

import (
	"syscall"

	"golang.org/x/sys/windows"
)

type dynHandle = windows.Handle

func dlOpen(path string) (dynHandle, error) {
	return windows.LoadLibrary(path)
}

func dlResolve(handle dynHandle, name string) (uintptr, error) {
	return windows.GetProcAddress(handle, name)
}

// dlCall0 invokes a zero-argument export; last-error semantics are ignored.
func dlCall0(addr uintptr) uintptr {
	ret, _, _ := syscall.SyscallN(addr)
	return ret
}

func dlClose(handle dynHandle) error {
	return windows.FreeLibrary(handle)
}
