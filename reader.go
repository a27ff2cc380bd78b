package scex

import (
	"encoding/binary"
	"strings"
	"unicode/utf8"
)

// Reader is a forward-only cursor over an in-memory buffer with saturating
// reads. Running off the end of the buffer never fails: a read that asks for
// more bytes than remain consumes everything that is left and pads the result
// with zeros. Packages are routinely truncated or padded in the wild, so the
// chunk loop relies on this to degrade instead of erroring out mid-file.
type Reader struct {
	data []byte
	pos  int
}

// NewReader returns a Reader positioned at the start of data. The buffer is
// not copied; the caller must not mutate it while reading.
func NewReader(data []byte) *Reader {
	return &Reader{data: data}
}

// Remaining reports how many bytes are left to read.
func (r *Reader) Remaining() int {
	return len(r.data) - r.pos
}

// Offset reports how many bytes have been consumed so far.
func (r *Reader) Offset() int {
	return r.pos
}

// ReadBytes reads up to n bytes. If fewer than n remain, the short tail is
// returned and the cursor stops at the end of the buffer.
func (r *Reader) ReadBytes(n int) []byte {
	if n < 0 {
		return nil
	}
	if n > r.Remaining() {
		n = r.Remaining()
	}

	out := r.data[r.pos : r.pos+n]
	r.pos += n

	return out
}

// Skip advances the cursor by up to n bytes, clamped at the end of the buffer.
func (r *Reader) Skip(n int) {
	if n < 0 {
		return
	}
	if n > r.Remaining() {
		n = r.Remaining()
	}
	r.pos += n
}

// seekTo repositions the cursor to an absolute offset, clamped to the buffer.
// It never rewinds: the chunk loop only ever realigns forward.
func (r *Reader) seekTo(offset int) {
	if offset < r.pos {
		return
	}
	if offset > len(r.data) {
		offset = len(r.data)
	}
	r.pos = offset
}

// fill copies up to len(buf) remaining bytes into buf and advances the
// cursor. Bytes past the end of the buffer stay zero.
func (r *Reader) fill(buf []byte) {
	n := copy(buf, r.data[r.pos:])
	r.pos += n
}

// ReadUint8 reads one byte, or 0 at the end of the buffer.
func (r *Reader) ReadUint8() uint8 {
	var buf [1]byte
	r.fill(buf[:])

	return buf[0]
}

// ReadUint16 reads a little-endian uint16, zero-padded at the end of the buffer.
func (r *Reader) ReadUint16() uint16 {
	var buf [2]byte
	r.fill(buf[:])

	return binary.LittleEndian.Uint16(buf[:])
}

// ReadUint32 reads a little-endian uint32, zero-padded at the end of the buffer.
func (r *Reader) ReadUint32() uint32 {
	var buf [4]byte
	r.fill(buf[:])

	return binary.LittleEndian.Uint32(buf[:])
}

// ReadInt16 reads a little-endian int16, zero-padded at the end of the buffer.
func (r *Reader) ReadInt16() int16 {
	return int16(r.ReadUint16())
}

// ReadInt32 reads a little-endian int32, zero-padded at the end of the buffer.
func (r *Reader) ReadInt32() int32 {
	return int32(r.ReadUint32())
}

// ReadString reads n bytes and decodes them as UTF-8, replacing invalid
// sequences rather than failing.
func (r *Reader) ReadString(n int) string {
	raw := r.ReadBytes(n)
	if utf8.Valid(raw) {
		return string(raw)
	}

	var b strings.Builder
	b.Grow(len(raw))
	for len(raw) > 0 {
		ch, size := utf8.DecodeRune(raw)
		b.WriteRune(ch)
		raw = raw[size:]
	}

	return b.String()
}
