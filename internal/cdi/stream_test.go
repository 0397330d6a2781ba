package cdi

import (
	"testing"
)

func TestStream_Reads(t *testing.T) {
	s := NewStream([]byte{0x01, 0x02, 0x03, 0x04, 0x05})
	b, err := s.ReadByte()
	if err != nil || b != 0x01 {
		t.Fatalf("ReadByte = %v, %v", b, err)
	}
	v, err := s.ReadUint32()
	if err != nil || v != 0x05040302 {
		t.Fatalf("ReadUint32 = %#x, %v", v, err)
	}
	if _, err := s.ReadByte(); err != ErrStreamEOF {
		t.Errorf("expected EOF, got %v", err)
	}
}

func TestStream_ReadUTF16(t *testing.T) {
	// "ab" NUL-padded to 4 code units.
	s := NewStream([]byte{'a', 0, 'b', 0, 0, 0, 0, 0})
	got, err := s.ReadUTF16(4)
	if err != nil {
		t.Fatalf("ReadUTF16: %v", err)
	}
	if got != "ab" {
		t.Errorf("ReadUTF16 = %q, want %q", got, "ab")
	}
	if s.Remaining() != 0 {
		t.Errorf("Remaining = %d, field must be consumed past the NUL", s.Remaining())
	}
}

func TestStream_ReadUTF16_Truncated(t *testing.T) {
	s := NewStream([]byte{'a', 0})
	if _, err := s.ReadUTF16(4); err != ErrStreamEOF {
		t.Errorf("expected EOF, got %v", err)
	}
}
