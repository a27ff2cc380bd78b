package scex

import "fmt"

// decodePixel reads one packed sample in the given sub-format and expands it
// to 8-bit RGBA. Channels narrower than 8 bits are shifted toward the most
// significant end of the output byte; nothing is rounded.
func decodePixel(r *Reader, subType byte) ([4]byte, error) {
	switch subType {
	case 0, 1: // RGBA8888
		var px [4]byte
		r.fill(px[:])
		return px, nil

	case 2: // RGBA4444
		px := r.ReadUint16()
		return [4]byte{
			byte(((px >> 12) & 0xF) << 4),
			byte(((px >> 8) & 0xF) << 4),
			byte(((px >> 4) & 0xF) << 4),
			byte((px & 0xF) << 4),
		}, nil

	case 3: // RGBA5551
		px := r.ReadUint16()
		return [4]byte{
			byte(((px >> 11) & 0x1F) << 3),
			byte(((px >> 6) & 0x1F) << 3),
			byte(((px >> 1) & 0x1F) << 3),
			byte((px & 0x1) * 0x80),
		}, nil

	case 4: // RGB565, always opaque
		px := r.ReadUint16()
		return [4]byte{
			byte(((px >> 11) & 0x1F) << 3),
			byte(((px >> 5) & 0x3F) << 2),
			byte((px & 0x1F) << 3),
			255,
		}, nil

	case 6: // LA88, luminance replicated across RGB
		px := r.ReadUint16()
		l := byte(px >> 8)
		return [4]byte{l, l, l, byte(px)}, nil

	case 10: // L8
		l := r.ReadUint8()
		return [4]byte{l, l, l, l}, nil

	default:
		return [4]byte{}, fmt.Errorf("%w: %d", ErrUnknownPixelType, subType)
	}
}
