package term

import (
	"errors"
	"io"
	"testing"
)

func TestMemorySourceReadsInOrder(t *testing.T) {
	src := NewMemorySource([]byte{0x1b, '[', 'A'})

	want := []byte{0x1b, '[', 'A'}
	for i, w := range want {
		b, err := src.ReadByte()
		if err != nil {
			t.Fatalf("byte %d: unexpected error %v", i, err)
		}
		if b != w {
			t.Errorf("byte %d = 0x%02x, want 0x%02x", i, b, w)
		}
	}
}

func TestMemorySourceWouldBlock(t *testing.T) {
	src := NewMemorySource(nil)

	if _, err := src.ReadByte(); !errors.Is(err, ErrWouldBlock) {
		t.Errorf("empty source should return ErrWouldBlock, got %v", err)
	}
	ready, err := src.Wait(0)
	if ready || err != nil {
		t.Errorf("Wait on empty source = %v, %v, want false, nil", ready, err)
	}

	src.Feed([]byte{'x'})
	ready, err = src.Wait(0)
	if !ready || err != nil {
		t.Errorf("Wait after Feed = %v, %v, want true, nil", ready, err)
	}
}

func TestMemorySourceEOF(t *testing.T) {
	src := NewMemorySource([]byte{'a'})
	src.Close()

	// Queued bytes drain before EOF.
	if b, err := src.ReadByte(); err != nil || b != 'a' {
		t.Fatalf("ReadByte = %q, %v, want 'a', nil", b, err)
	}
	if _, err := src.ReadByte(); !errors.Is(err, io.EOF) {
		t.Errorf("drained closed source should return io.EOF, got %v", err)
	}
	if _, err := src.Wait(0); !errors.Is(err, io.EOF) {
		t.Errorf("Wait on drained closed source should return io.EOF, got %v", err)
	}
}
