//go:build !unix && !windows

package sysview

import "time"

// Handle is a descriptor-shaped shim for platforms without real native
// handles, such as js. The virtual filesystem the runtime emulates still
// hands out descriptor numbers, but they support no platform-level queries.
type Handle int

// InvalidHandle is the handle value that never refers to an open file.
const InvalidHandle Handle = -1

func fromFd(fd uintptr) Handle {
	return Handle(fd)
}

// Valid reports whether h is in the range of real descriptors.
func (h Handle) Valid() bool {
	return h >= 0
}

// Size is not available on this platform.
func (h Handle) Size() (int64, error) {
	return 0, ErrNotSupported
}

// ModTime is not available on this platform.
func (h Handle) ModTime() (time.Time, error) {
	return time.Time{}, ErrNotSupported
}

// SameFile is not available on this platform.
func (h Handle) SameFile(Handle) (bool, error) {
	return false, ErrNotSupported
}
