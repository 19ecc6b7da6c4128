//go:build windows

package probe

import "golang.org/x/sys/windows"

// writeFileBytes is the handle-based variant of the marker write:
// CREATE_ALWAYS truncates any existing marker, and read/write sharing lets
// a watching host read the file while the handle is still open.
func writeFileBytes(path string, payload []byte) error {
	pathPtr, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return err
	}

	handle, err := windows.CreateFile(
		pathPtr,
		windows.GENERIC_WRITE,
		windows.FILE_SHARE_READ|windows.FILE_SHARE_WRITE,
		nil,
		windows.CREATE_ALWAYS,
		windows.FILE_ATTRIBUTE_NORMAL,
		0,
	)
	if err != nil {
		return err
	}

	var written uint32
	writeErr := windows.WriteFile(handle, payload, &written, nil)
	closeErr := windows.CloseHandle(handle)
	if writeErr != nil {
		return writeErr
	}
	return closeErr
}
