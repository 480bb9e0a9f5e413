//go:build !wasm

package sysview_test

import (
	"os"
	"path/filepath"
	"testing"

	. "github.com/onsi/gomega"

	"github.com/go-git/go-sysview"
)

func openPayload(t *testing.T, payload string) *os.File {
	t.Helper()

	name := filepath.Join(t.TempDir(), "payload")
	if err := os.WriteFile(name, []byte(payload), 0o600); err != nil {
		t.Fatal(err)
	}

	f, err := os.OpenFile(name, os.O_RDWR, 0)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { f.Close() })

	return f
}

func TestHandleStability(t *testing.T) {
	g := NewWithT(t)
	f := openPayload(t, "anything")

	first, err := sysview.File(f)
	g.Expect(err).ToNot(HaveOccurred())

	for i := 0; i < 10; i++ {
		h, err := sysview.File(f)
		g.Expect(err).ToNot(HaveOccurred())
		g.Expect(h).To(Equal(first))
	}
}

func TestHandleCopySemantics(t *testing.T) {
	g := NewWithT(t)
	f := openPayload(t, "anything")

	h, err := sysview.File(f)
	g.Expect(err).ToNot(HaveOccurred())

	copied := h
	g.Expect(copied).To(Equal(h))

	// The copy is a view of the same open file, not a duplicate of it.
	fromOriginal, err := h.Size()
	g.Expect(err).ToNot(HaveOccurred())
	fromCopy, err := copied.Size()
	g.Expect(err).ToNot(HaveOccurred())
	g.Expect(fromCopy).To(Equal(fromOriginal))
}

func TestHandleSeesLiveState(t *testing.T) {
	g := NewWithT(t)
	f := openPayload(t, "anything")

	h, err := sysview.File(f)
	g.Expect(err).ToNot(HaveOccurred())

	before, err := h.Size()
	g.Expect(err).ToNot(HaveOccurred())

	_, err = f.Write([]byte(" and more"))
	g.Expect(err).ToNot(HaveOccurred())
	g.Expect(f.Sync()).To(Succeed())

	after, err := h.Size()
	g.Expect(err).ToNot(HaveOccurred())
	g.Expect(after).To(BeNumerically(">", before))
}

func TestHandleDistinctness(t *testing.T) {
	g := NewWithT(t)

	handles := map[sysview.Handle]bool{}
	for i := 0; i < 5; i++ {
		f := openPayload(t, "anything")
		h, err := sysview.File(f)
		g.Expect(err).ToNot(HaveOccurred())
		g.Expect(handles).ToNot(HaveKey(h))
		handles[h] = true
	}
}
