// Package loader opens a built shared-library artifact from disk and calls
// its exported entry points, standing in for the external host that the
// probe exists to verify.
package loader

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"
)

var ErrLibraryClosed = errors.New("loader: library is closed")

// Library is an open shared-library handle.
type Library struct {
	mu     sync.RWMutex
	handle dynHandle
	closed bool
}

// OpenLibrary loads the shared library at path with the platform's dynamic
// loader.
func OpenLibrary(path string) (*Library, error) {
	if path == "" {
		return nil, errors.New("loader: empty library path")
	}
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("loader: stat library: %w", err)
	}

	handle, err := dlOpen(path)
	if err != nil {
		return nil, fmt.Errorf("loader: open library %s: %w", path, err)
	}
	return &Library{handle: handle}, nil
}

// CallExport resolves and calls a zero-argument exported function,
// discarding its return value.
func (library *Library) CallExport(name string) error {
	_, err := library.CallExportStatus(name)
	return err
}

// CallExportStatus resolves and calls a zero-argument exported function and
// returns its raw return value. The name is tried both with and without a
// leading underscore, since darwin images carry the prefix.
func (library *Library) CallExportStatus(name string) (uintptr, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return 0, errors.New("loader: export name cannot be empty")
	}

	library.mu.RLock()
	defer library.mu.RUnlock()

	if library.closed {
		return 0, ErrLibraryClosed
	}

	candidates := []string{name}
	if strings.HasPrefix(name, "_") {
		candidates = append(candidates, strings.TrimPrefix(name, "_"))
	} else {
		candidates = append(candidates, "_"+name)
	}

	var (
		addr uintptr
		err  error
	)
	for _, candidate := range candidates {
		addr, err = dlResolve(library.handle, candidate)
		if err == nil {
			break
		}
	}
	if err != nil {
		return 0, fmt.Errorf("loader: resolve export %q: %w", name, err)
	}

	return dlCall0(addr), nil
}

// Close unloads the library. Closing twice is a no-op. Unmapping a Go
// c-shared module while its runtime is live can crash the process, so
// callers exercising such artifacts should leak the handle instead.
func (library *Library) Close() error {
	library.mu.Lock()
	defer library.mu.Unlock()

	if library.closed {
		return nil
	}
	library.closed = true

	if library.handle == 0 {
		return nil
	}
	return dlClose(library.handle)
}
