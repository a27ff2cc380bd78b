package scex

import (
	"errors"
	"testing"
)

func TestDecodePixelTable(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		subType byte
		data    []byte
		want    [4]byte
	}{
		{name: "rgba8888", subType: 0, data: []byte{0x11, 0x22, 0x33, 0x44}, want: [4]byte{0x11, 0x22, 0x33, 0x44}},
		{name: "rgba8888-alt-code", subType: 1, data: []byte{0xDE, 0xAD, 0xBE, 0xEF}, want: [4]byte{0xDE, 0xAD, 0xBE, 0xEF}},
		{name: "rgba4444-max", subType: 2, data: []byte{0xFF, 0xFF}, want: [4]byte{0xF0, 0xF0, 0xF0, 0xF0}},
		{name: "rgba4444-mixed", subType: 2, data: []byte{0x3C, 0xA1}, want: [4]byte{0xA0, 0x10, 0x30, 0xC0}},
		{name: "rgba5551-opaque", subType: 3, data: []byte{0xFF, 0xFF}, want: [4]byte{0xF8, 0xF8, 0xF8, 0x80}},
		{name: "rgba5551-transparent", subType: 3, data: []byte{0xFE, 0xFF}, want: [4]byte{0xF8, 0xF8, 0xF8, 0x00}},
		{name: "rgb565-max", subType: 4, data: []byte{0xFF, 0xFF}, want: [4]byte{248, 252, 248, 255}},
		{name: "rgb565-green-only", subType: 4, data: []byte{0xE0, 0x07}, want: [4]byte{0, 252, 0, 255}},
		{name: "la88", subType: 6, data: []byte{0x40, 0xC8}, want: [4]byte{0xC8, 0xC8, 0xC8, 0x40}},
		{name: "l8", subType: 10, data: []byte{0x7F}, want: [4]byte{127, 127, 127, 127}},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			r := NewReader(tc.data)
			got, err := decodePixel(r, tc.subType)
			if err != nil {
				t.Fatalf("decodePixel: %v", err)
			}
			if got != tc.want {
				t.Fatalf("decodePixel(%d, % x) = %v, want %v", tc.subType, tc.data, got, tc.want)
			}
			if r.Remaining() != 0 {
				t.Fatalf("decodePixel left %d bytes unread", r.Remaining())
			}
		})
	}
}

func TestDecodePixelUnknownSubType(t *testing.T) {
	t.Parallel()

	for _, subType := range []byte{5, 7, 9, 11, 99} {
		r := NewReader([]byte{0xAA, 0xBB, 0xCC, 0xDD})
		_, err := decodePixel(r, subType)
		if !errors.Is(err, ErrUnknownPixelType) {
			t.Fatalf("decodePixel(%d) error = %v, want ErrUnknownPixelType", subType, err)
		}
	}
}

func TestDecodePixelTruncatedInput(t *testing.T) {
	t.Parallel()

	// Saturating reads: missing bytes decode as zero instead of failing.
	r := NewReader([]byte{0x11, 0x22})
	got, err := decodePixel(r, 0)
	if err != nil {
		t.Fatalf("decodePixel: %v", err)
	}
	if want := [4]byte{0x11, 0x22, 0, 0}; got != want {
		t.Fatalf("decodePixel on truncated input = %v, want %v", got, want)
	}
}
