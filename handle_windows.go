//go:build windows

package sysview

import (
	"time"

	"golang.org/x/sys/windows"
)

// Handle is the native OS reference for an open file: an opaque
// pointer-sized Windows HANDLE. Copying a Handle copies the value only; the
// underlying open file is not duplicated.
type Handle windows.Handle

// InvalidHandle is the handle value that never refers to an open file.
const InvalidHandle = Handle(windows.InvalidHandle)

func fromFd(fd uintptr) Handle {
	return Handle(fd)
}

// Valid reports whether h looks like a real handle value. It does not check
// that the handle is currently open.
func (h Handle) Valid() bool {
	return h != InvalidHandle && h != 0
}

// Size returns the current size of the file behind h, queried directly at
// the platform level without going through the owning stream.
func (h Handle) Size() (int64, error) {
	var size int64
	if err := windows.GetFileSizeEx(windows.Handle(h), &size); err != nil {
		return 0, err
	}

	return size, nil
}

// ModTime returns the last-write time of the file behind h.
func (h Handle) ModTime() (time.Time, error) {
	var info windows.ByHandleFileInformation
	if err := windows.GetFileInformationByHandle(windows.Handle(h), &info); err != nil {
		return time.Time{}, err
	}

	return time.Unix(0, info.LastWriteTime.Nanoseconds()), nil
}

// SameFile reports whether h and other refer to the same underlying file,
// compared by volume serial number and file index.
func (h Handle) SameFile(other Handle) (bool, error) {
	var a, b windows.ByHandleFileInformation
	if err := windows.GetFileInformationByHandle(windows.Handle(h), &a); err != nil {
		return false, err
	}
	if err := windows.GetFileInformationByHandle(windows.Handle(other), &b); err != nil {
		return false, err
	}

	same := a.VolumeSerialNumber == b.VolumeSerialNumber &&
		a.FileIndexHigh == b.FileIndexHigh &&
		a.FileIndexLow == b.FileIndexLow
	return same, nil
}
