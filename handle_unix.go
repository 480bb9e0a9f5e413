//go:build unix

package sysview

import (
	"time"

	"golang.org/x/sys/unix"
)

// Handle is the native OS reference for an open file: a POSIX file
// descriptor. Copying a Handle copies the descriptor number only; the
// underlying open file is not duplicated.
type Handle int

// InvalidHandle is the handle value that never refers to an open file.
const InvalidHandle Handle = -1

func fromFd(fd uintptr) Handle {
	return Handle(fd)
}

// Valid reports whether h is in the range of real descriptors. It does not
// check that the descriptor is currently open.
func (h Handle) Valid() bool {
	return h >= 0
}

// Size returns the current size of the file behind h, queried directly at
// the platform level without going through the owning stream.
func (h Handle) Size() (int64, error) {
	var st unix.Stat_t
	if err := unix.Fstat(int(h), &st); err != nil {
		return 0, err
	}

	return st.Size, nil
}

// ModTime returns the modification time of the file behind h.
func (h Handle) ModTime() (time.Time, error) {
	var st unix.Stat_t
	if err := unix.Fstat(int(h), &st); err != nil {
		return time.Time{}, err
	}

	return time.Unix(st.Mtim.Unix()), nil
}

// SameFile reports whether h and other refer to the same underlying file,
// compared by device and inode.
func (h Handle) SameFile(other Handle) (bool, error) {
	var a, b unix.Stat_t
	if err := unix.Fstat(int(h), &a); err != nil {
		return false, err
	}
	if err := unix.Fstat(int(other), &b); err != nil {
		return false, err
	}

	return a.Dev == b.Dev && a.Ino == b.Ino, nil
}
