//go:build (linux || darwin) && cgo

package loader

/*
#cgo linux LDFLAGS: -ldl
#include <dlfcn.h>
#include <stdint.h>
#include <stdlib.h>

static uintptr_t probe_call0(uintptr_t fn) {
	return ((uintptr_t (*)(void))fn)();
}
*/
import "C"

import (
	"errors"
	"unsafe"
)

type dynHandle = uintptr

// lastDlError drains dlerror after a failed call. dlerror must already have
// been cleared before the call for the result to be trustworthy.
func lastDlError(fallback string) error {
	if msg := C.dlerror(); msg != nil {
		return errors.New(C.GoString(msg))
	}
	return errors.New(fallback)
}

func dlOpen(path string) (dynHandle, error) {
	cPath := C.CString(path)
	defer C.free(unsafe.Pointer(cPath))

	C.dlerror()
	handle := C.dlopen(cPath, C.RTLD_NOW|C.RTLD_LOCAL)
	if handle == nil {
		return 0, lastDlError("dlopen failed")
	}
	return dynHandle(uintptr(handle)), nil
}

func dlResolve(handle dynHandle, name string) (uintptr, error) {
	cName := C.CString(name)
	defer C.free(unsafe.Pointer(cName))

	C.dlerror()
	addr := C.dlsym(unsafe.Pointer(handle), cName)
	if addr == nil {
		return 0, lastDlError("dlsym failed")
	}
	return uintptr(addr), nil
}

func dlCall0(addr uintptr) uintptr {
	return uintptr(C.probe_call0(C.uintptr_t(addr)))
}

func dlClose(handle dynHandle) error {
	C.dlerror()
	if C.dlclose(unsafe.Pointer(handle)) != 0 {
		return lastDlError("dlclose failed")
	}
	return nil
}
