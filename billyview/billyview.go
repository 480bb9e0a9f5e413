// Package billyview extracts native OS handles from billy.File streams.
//
// Only filesystems actually backed by the OS grant a handle; osfs files do,
// in-memory backends like memfs have nothing to expose and report
// sysview.ErrNoHandle. Wrapping helpers that hide the underlying file, such
// as chroot, also report ErrNoHandle: the accessor only reaches as far as
// the capability the stream grants.
package billyview

import (
	"fmt"
	"syscall"

	"github.com/go-git/go-billy/v5"

	"github.com/go-git/go-sysview"
)

// File returns the native handle backing a billy stream. The handle is a
// non-owning view; closing f invalidates it.
func File(f billy.File) (sysview.Handle, error) {
	switch s := f.(type) {
	case syscall.Conn:
		return sysview.Conn(s)
	case sysview.Fder:
		return sysview.Fd(s), nil
	}

	return sysview.InvalidHandle, fmt.Errorf("%w: %T", sysview.ErrNoHandle, f)
}
