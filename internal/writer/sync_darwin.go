//go:build darwin

package writer

import (
	"os"

	"golang.org/x/sys/unix"
)

// syncFile uses F_FULLFSYNC so the data reaches the physical disk, not just
// the drive cache.
func syncFile(f *os.File) error {
	_, err := unix.FcntlInt(f.Fd(), unix.F_FULLFSYNC, 0)
	return err
}
