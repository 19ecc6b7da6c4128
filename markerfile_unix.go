//go:build !windows

package probe

import (
	"bufio"
	"os"
)

// writeFileBytes is the buffered-stream variant of the marker write,
// equivalent to fopen("wb")/fwrite/fclose.
func writeFileBytes(path string, payload []byte) error {
	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}

	writer := bufio.NewWriter(file)
	if _, err := writer.Write(payload); err != nil {
		_ = file.Close()
		return err
	}
	if err := writer.Flush(); err != nil {
		_ = file.Close()
		return err
	}
	return file.Close()
}
