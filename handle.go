package sysview

import (
	"fmt"
	"io"
	"os"
	"syscall"
)

// File returns the native handle backing an open file.
//
// The descriptor is read through the file's syscall.Conn capability rather
// than os.File.Fd, so the runtime poller registration is left untouched and
// the descriptor is not switched to blocking mode. The only error case is a
// file that is already closed.
func File(f *os.File) (Handle, error) {
	return Conn(f)
}

// Fd returns the handle of any value granting the Fd accessor. It cannot
// fail: the conversion is a pure value cast.
//
// Prefer File or Conn when the source also implements syscall.Conn; calling
// Fd on an os.File has the side effect of disabling the runtime poller for
// that descriptor.
func Fd(f Fder) Handle {
	return fromFd(f.Fd())
}

// Conn returns the handle guarded by a syscall.Conn capability.
//
// The handle is captured inside RawConn.Control, which excludes a concurrent
// runtime-managed close for the duration of the read.
func Conn(c syscall.Conn) (Handle, error) {
	rc, err := c.SyscallConn()
	if err != nil {
		return InvalidHandle, err
	}

	h := InvalidHandle
	if err := rc.Control(func(fd uintptr) {
		h = fromFd(fd)
	}); err != nil {
		return InvalidHandle, err
	}

	return h, nil
}

// Stream returns the handle behind an arbitrary stream shape, delegating
// through whatever accessor the stream grants. Capability access via
// syscall.Conn is preferred over the raw Fd accessor.
//
// Streams that grant no accessor at all, such as in-memory buffers or
// bufio wrappers, report ErrNoHandle.
func Stream(r io.Reader) (Handle, error) {
	switch s := r.(type) {
	case *os.File:
		return File(s)
	case syscall.Conn:
		return Conn(s)
	case Fder:
		return Fd(s), nil
	}

	return InvalidHandle, fmt.Errorf("%w: %T", ErrNoHandle, r)
}
