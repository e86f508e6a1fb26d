package txfifo

import (
	"testing"
	"time"
)

func TestNewFrameFifoDefaultsOpaqueToUUID(t *testing.T) {
	f := NewFrameFifo("", Unbounded, 0)
	defer f.Close()

	if f.Opaque() == "" {
		t.Fatal("expected a generated opaque identity when none was supplied")
	}
}

func TestNewFrameFifoKeepsSuppliedOpaque(t *testing.T) {
	f := NewFrameFifo("decoder-out", Unbounded, 0)
	defer f.Close()

	if f.Opaque() != "decoder-out" {
		t.Fatalf("expected opaque %q, got %q", "decoder-out", f.Opaque())
	}
}

func TestMirrorFramesFanOut(t *testing.T) {
	src := NewFrameFifo("src", Unbounded, 0)
	d1 := NewFrameFifo("d1", Unbounded, 0)
	d2 := NewFrameFifo("d2", Unbounded, 0)
	defer src.Close()
	defer d1.Close()
	defer d2.Close()

	if err := MirrorFrames(d1, src); err != nil {
		t.Fatalf("mirror d1: %v", err)
	}
	if err := MirrorFrames(d2, src); err != nil {
		t.Fatalf("mirror d2: %v", err)
	}

	frame := NewFrame([]byte("x"), 1, 1, time.Time{})
	if err := src.Push(frame); err != nil {
		t.Fatalf("push: %v", err)
	}

	for name, f := range map[string]*FrameFifo{"src": src, "d1": d1, "d2": d2} {
		got, err := f.Pop()
		if err != nil {
			t.Fatalf("%s pop: %v", name, err)
		}
		got.Free()
	}
}

func TestUnmirrorFramesDetaches(t *testing.T) {
	src := NewFrameFifo("src", Unbounded, 0)
	dst := NewFrameFifo("dst", Unbounded, BlockNoInput)
	defer src.Close()
	defer dst.Close()

	if err := MirrorFrames(dst, src); err != nil {
		t.Fatalf("mirror: %v", err)
	}
	if err := UnmirrorFrames(dst, src); err != nil {
		t.Fatalf("unmirror: %v", err)
	}

	if err := src.Push(NewFrame(nil, 0, 0, time.Time{})); err != nil {
		t.Fatalf("push: %v", err)
	}
	if _, err := dst.PopFlags(PullNoBlock); err != ErrTryAgain {
		t.Fatalf("expected detached dst to receive nothing, got err=%v", err)
	}
}
