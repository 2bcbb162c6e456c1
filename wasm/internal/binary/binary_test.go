package binary

import (
	"bytes"
	"testing"
)

// TestU32RoundTrip tests LEB128 encode/decode agreement
func TestU32RoundTrip(t *testing.T) {
	values := []uint32{0, 1, 127, 128, 16383, 16384, 624485, 1<<32 - 1}
	for _, v := range values {
		w := NewWriter()
		w.WriteU32(v)
		r := NewReader(w.Bytes())
		got, err := r.ReadU32()
		if err != nil {
			t.Fatalf("ReadU32(%d) error = %v", v, err)
		}
		if got != v {
			t.Errorf("round trip %d -> %d", v, got)
		}
		if r.Remaining() != 0 {
			t.Errorf("value %d left %d trailing bytes", v, r.Remaining())
		}
	}
}

func TestU32Encoding(t *testing.T) {
	w := NewWriter()
	w.WriteU32(624485)
	if !bytes.Equal(w.Bytes(), []byte{0xE5, 0x8E, 0x26}) {
		t.Errorf("WriteU32(624485) = % X", w.Bytes())
	}
}

func TestReadU32Overflow(t *testing.T) {
	r := NewReader([]byte{0x80, 0x80, 0x80, 0x80, 0x80, 0x01})
	if _, err := r.ReadU32(); err != ErrOverflow {
		t.Errorf("error = %v, want ErrOverflow", err)
	}

	// fifth byte carries bits past 31; Go would silently shift them away
	r = NewReader([]byte{0xFF, 0xFF, 0xFF, 0xFF, 0x1F})
	if _, err := r.ReadU32(); err != ErrOverflow {
		t.Errorf("high-bit fifth byte: error = %v, want ErrOverflow", err)
	}

	r = NewReader([]byte{0xFF, 0xFF, 0xFF, 0xFF, 0x0F})
	got, err := r.ReadU32()
	if err != nil || got != 1<<32-1 {
		t.Errorf("max uint32 = %d, %v", got, err)
	}
}

func TestNames(t *testing.T) {
	w := NewWriter()
	w.WriteName("aot_component_wrapper_0")
	r := NewReader(w.Bytes())
	got, err := r.ReadName()
	if err != nil {
		t.Fatalf("ReadName() error = %v", err)
	}
	if got != "aot_component_wrapper_0" {
		t.Errorf("ReadName() = %q", got)
	}

	// length prefix of 2 followed by an invalid UTF-8 byte pair
	r = NewReader([]byte{0x02, 0xFF, 0xFE})
	if _, err := r.ReadName(); err == nil {
		t.Error("ReadName should reject invalid UTF-8")
	}
}

func TestU32LE(t *testing.T) {
	w := NewWriter()
	w.WriteU32LE(0x6D736100)
	if !bytes.Equal(w.Bytes(), []byte{0x00, 0x61, 0x73, 0x6D}) {
		t.Errorf("WriteU32LE = % X", w.Bytes())
	}
	r := NewReader(w.Bytes())
	got, err := r.ReadU32LE()
	if err != nil || got != 0x6D736100 {
		t.Errorf("ReadU32LE = %#x, %v", got, err)
	}
}

func TestReadBytesBounds(t *testing.T) {
	r := NewReader([]byte{1, 2, 3})
	if _, err := r.ReadBytes(4); err == nil {
		t.Error("ReadBytes past end should fail")
	}
	if _, err := r.ReadBytes(-1); err == nil {
		t.Error("ReadBytes with negative count should fail")
	}
}
