//go:build !wasm

// Package test provides a conformance suite for handle-source shapes: any
// stream abstraction whose open files can be mapped to a native OS handle
// must satisfy it.
package test

import (
	"io"

	. "gopkg.in/check.v1"

	"github.com/go-git/go-sysview"
)

// Source is one open stream under test, together with the accessor that
// maps it to a native handle and the stream-level view of the file size.
type Source interface {
	Handle() (sysview.Handle, error)
	Size() (int64, error)
	io.Closer
}

// HandleSuite verifies the accessor contract over a single handle-source
// shape: open streams must yield stable, valid handles that agree with the
// stream's own view of the file.
type HandleSuite struct {
	// New opens a stream over a fresh file holding payload.
	New func(c *C, payload string) Source
}

func (s *HandleSuite) TestValid(c *C) {
	src := s.New(c, "anything")
	defer src.Close()

	h, err := src.Handle()
	c.Assert(err, IsNil)
	c.Assert(h.Valid(), Equals, true)
}

func (s *HandleSuite) TestStable(c *C) {
	src := s.New(c, "anything")
	defer src.Close()

	h1, err := src.Handle()
	c.Assert(err, IsNil)
	h2, err := src.Handle()
	c.Assert(err, IsNil)
	c.Assert(h1, Equals, h2)
}

func (s *HandleSuite) TestAgreesWithPlatform(c *C) {
	src := s.New(c, "exactly 16 bytes")
	defer src.Close()

	h, err := src.Handle()
	c.Assert(err, IsNil)

	fromHandle, err := h.Size()
	c.Assert(err, IsNil)

	fromStream, err := src.Size()
	c.Assert(err, IsNil)
	c.Assert(fromHandle, Equals, fromStream)
}

func (s *HandleSuite) TestDistinct(c *C) {
	a := s.New(c, "first")
	defer a.Close()
	b := s.New(c, "second")
	defer b.Close()

	ha, err := a.Handle()
	c.Assert(err, IsNil)
	hb, err := b.Handle()
	c.Assert(err, IsNil)
	c.Assert(ha, Not(Equals), hb)
}

func (s *HandleSuite) TestCopy(c *C) {
	src := s.New(c, "anything")
	defer src.Close()

	h, err := src.Handle()
	c.Assert(err, IsNil)

	copied := h
	c.Assert(copied, Equals, h)

	fromOriginal, err := h.Size()
	c.Assert(err, IsNil)
	fromCopy, err := copied.Size()
	c.Assert(err, IsNil)
	c.Assert(fromCopy, Equals, fromOriginal)
}
