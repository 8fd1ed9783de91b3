//go:build linux || freebsd

package writer

import (
	"os"

	"golang.org/x/sys/unix"
)

// syncFile flushes file data to disk. fdatasync is enough since the rename
// that follows commits the metadata.
func syncFile(f *os.File) error {
	return unix.Fdatasync(int(f.Fd()))
}
