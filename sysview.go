// Package sysview provides non-owning views of operating system resources
// held inside higher-level file and stream abstractions.
// It allows you to:
// * Obtain the native OS handle backing an open os.File.
// * Obtain the handle behind any stream shape that grants access to it.
// * Query a handle directly at the platform level (size, mtime, identity).
// The returned handle is a view, not a transfer: the package never closes,
// duplicates or invalidates it. A handle stays valid exactly as long as the
// owning file or stream remains open; querying after close is the caller's
// bug, not a checked condition.
package sysview

import "errors"

var (
	ErrNoHandle     = errors.New("stream has no native handle")
	ErrNotSupported = errors.New("feature not supported")
)

// Fder is the classic accessor granted by types that expose their
// descriptor directly, such as os.File and the osfs files of go-billy.
type Fder interface {
	Fd() uintptr
}
