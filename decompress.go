package scex

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"
	"github.com/ulikunitz/xz/lzma"
)

// Compression scheme magics. Packages carry no scheme field; the compressed
// payload is sniffed instead, independent of the package version.
var (
	magicSCLZ = []byte{0x53, 0x43, 0x4C, 0x5A} // "SCLZ", LZHAM
	magicZstd = []byte{0x28, 0xB5, 0x2F, 0xFD} // zstd frame
)

// zstdDecoder is shared across calls; zstd.Decoder is safe for concurrent use.
var zstdDecoder *zstd.Decoder

func init() {
	var err error
	zstdDecoder, err = zstd.NewReader(nil)
	if err != nil {
		panic("scex: zstd decoder initialization failed: " + err.Error())
	}
}

// Decompress inflates a compressed package payload. The scheme is picked by
// magic bytes: "SCLZ" marks LZHAM, the zstd frame magic marks zstd, and
// anything else is treated as the headerless LZMA variant used by older
// packages.
//
// LZHAM has no Go implementation, so SCLZ payloads fail with
// ErrLZHAMUnsupported after the stream parameters have been parsed; the
// error names the dictionary size so the file can at least be identified.
func Decompress(data []byte) ([]byte, error) {
	switch {
	case bytes.HasPrefix(data, magicSCLZ):
		return decompressSCLZ(data)
	case bytes.HasPrefix(data, magicZstd):
		return decompressZstd(data)
	default:
		return decompressLZMA(data)
	}
}

// decompressSCLZ parses the SCLZ stream parameters and reports the payload
// as undecodable on this platform.
func decompressSCLZ(data []byte) ([]byte, error) {
	if len(data) < 9 {
		return nil, fmt.Errorf("%w: SCLZ stream truncated at %d bytes", ErrDecompress, len(data))
	}

	dictSizeLog2 := data[4]
	uncompressedSize := binary.LittleEndian.Uint32(data[5:9])

	return nil, fmt.Errorf("%w (SCLZ, dict 2^%d, %d bytes)", ErrLZHAMUnsupported, dictSizeLog2, uncompressedSize)
}

func decompressZstd(data []byte) ([]byte, error) {
	out, err := zstdDecoder.DecodeAll(data, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: zstd: %v", ErrDecompress, err)
	}

	return out, nil
}

// decompressLZMA inflates the headerless LZMA variant. The stream is a
// classic LZMA-alone stream with the upper half of the 8-byte uncompressed
// size field omitted: 5 bytes of properties, then a little-endian uint32
// size. Splicing 4 zero bytes after offset 9 restores the 13-byte header
// the decoder expects.
func decompressLZMA(data []byte) ([]byte, error) {
	if len(data) < 9 {
		return nil, fmt.Errorf("%w: LZMA stream truncated at %d bytes", ErrDecompress, len(data))
	}

	spliced := make([]byte, 0, len(data)+4)
	spliced = append(spliced, data[:9]...)
	spliced = append(spliced, 0, 0, 0, 0)
	spliced = append(spliced, data[9:]...)

	lr, err := lzma.NewReader(bytes.NewReader(spliced))
	if err != nil {
		return nil, fmt.Errorf("%w: LZMA: %v", ErrDecompress, err)
	}

	out, err := io.ReadAll(lr)
	if err != nil {
		return nil, fmt.Errorf("%w: LZMA: %v", ErrDecompress, err)
	}

	return out, nil
}

// unwrapPackage parses the package header and returns the container bytes,
// decompressing them when the version calls for it.
//
// The header is two BE fields (version at [2:6], hash length at [6:10])
// followed by the hash itself; 10+hashLength bytes in total. Versions 0, 1
// and 3 compress the remainder; any other version stores the container as-is
// after the header.
func unwrapPackage(data []byte) ([]byte, error) {
	if len(data) < 35 {
		return nil, fmt.Errorf("%w: %d bytes", ErrFileTooSmall, len(data))
	}

	version := binary.BigEndian.Uint32(data[2:6])
	hashLength := int(binary.BigEndian.Uint32(data[6:10]))

	headerSize := 10 + hashLength
	if headerSize < 10 || headerSize > len(data) {
		// Malformed hash length field; the stock header carries an MD5.
		headerSize = 10 + 16
	}
	body := data[headerSize:]

	switch version {
	case 0, 1, 3:
		return Decompress(body)
	default:
		return body, nil
	}
}
