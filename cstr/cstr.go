// Package cstr provides a non-owning view over NUL-terminated string data,
// the shape expected on the other side of the syscall boundary.
//
// A View never owns the bytes it reads from a caller-provided buffer, and
// never exposes the terminator through its length-based accessors. Interior
// NUL bytes are rejected at construction, so a valid View always denotes
// exactly the sequence up to its terminator.
package cstr

import (
	"bytes"
	"errors"
	"strings"
)

var (
	ErrInteriorNUL   = errors.New("cstr: interior NUL byte")
	ErrNotTerminated = errors.New("cstr: buffer is not NUL-terminated")
)

// View is a read-only view of a NUL-terminated byte sequence. The zero View
// denotes the empty string. Copying a View copies the view, not the bytes.
type View struct {
	// b holds the viewed bytes including the terminating NUL, or is nil for
	// the zero View.
	b []byte
}

// empty backs Ptr for the zero View.
var empty = []byte{0}

// FromString copies s into a fresh NUL-terminated buffer and returns a View
// of it. Strings containing a NUL byte cannot be represented and report
// ErrInteriorNUL.
func FromString(s string) (View, error) {
	if strings.IndexByte(s, 0) >= 0 {
		return View{}, ErrInteriorNUL
	}

	b := make([]byte, len(s)+1)
	copy(b, s)
	return View{b: b}, nil
}

// FromBytes returns a View of b up to its first NUL byte, without copying.
// The caller keeps ownership of b and must not mutate the viewed prefix for
// the lifetime of the View. Buffers with no terminator report
// ErrNotTerminated.
func FromBytes(b []byte) (View, error) {
	i := bytes.IndexByte(b, 0)
	if i < 0 {
		return View{}, ErrNotTerminated
	}

	return View{b: b[: i+1 : i+1]}, nil
}

// Len returns the number of bytes before the terminator.
func (v View) Len() int {
	if len(v.b) == 0 {
		return 0
	}
	return len(v.b) - 1
}

// Empty reports whether the view denotes the empty string.
func (v View) Empty() bool {
	return v.Len() == 0
}

// String returns the viewed bytes as a Go string. The terminator is not
// included.
func (v View) String() string {
	if len(v.b) == 0 {
		return ""
	}
	return string(v.b[:len(v.b)-1])
}

// Bytes returns the viewed bytes without the terminator. The slice aliases
// the viewed buffer; callers must treat it as read-only.
func (v View) Bytes() []byte {
	if len(v.b) == 0 {
		return nil
	}
	return v.b[: len(v.b)-1 : len(v.b)-1]
}

// Ptr returns a pointer to the first byte of the NUL-terminated sequence,
// suitable for passing to syscalls. For the zero View it points at a shared
// empty string.
func (v View) Ptr() *byte {
	if len(v.b) == 0 {
		return &empty[0]
	}
	return &v.b[0]
}

// Equal reports whether two views denote the same string.
func (v View) Equal(o View) bool {
	return bytes.Equal(v.Bytes(), o.Bytes())
}

// Clone returns a View over a fresh copy of the viewed bytes, independent of
// the original buffer's lifetime.
func (v View) Clone() View {
	if len(v.b) == 0 {
		return View{}
	}

	b := make([]byte, len(v.b))
	copy(b, v.b)
	return View{b: b}
}
