package scex

import (
	"fmt"
	"image"
	"path/filepath"
	"strings"
)

// Sprite chunk types. 27 and 28 store their pixels in 32x32 block-tiled
// order; 1 and 24 are plain raster. Every other chunk type is opaque
// payload (metadata, hashes, unrelated assets) and is skipped by its
// declared size.
const (
	chunkSprite      = 1
	chunkSpriteAlt   = 24
	chunkTiledSprite = 27
	chunkTiledAlt    = 28
)

// TexResult reports what a texture package extraction produced.
type TexResult struct {
	// Sprites holds the paths of the written images, in container order.
	Sprites []string
	// Skipped holds one error per image chunk that could not be decoded.
	// A bad sprite never aborts its siblings, so callers that care must
	// surface these themselves.
	Skipped []error
}

// ExtractTex decodes a _tex.sc texture package and writes every sprite it
// contains to outDir as PNG. Output files are named after name with every
// ".sc" removed and one underscore appended per sprite ordinal, so a
// three-sprite package yields base.png, base_.png and base__.png.
//
// Packages shorter than a valid header fail with ErrFileTooSmall and
// undecodable compression fails with the ErrDecompress family; both are
// fatal for the whole package. An unknown pixel sub-format only abandons the
// chunk at hand (reported in TexResult.Skipped) and parsing resumes at the
// next chunk boundary. A write failure aborts with the partial result.
func ExtractTex(data []byte, name string, outDir string) (*TexResult, error) {
	container, err := unwrapPackage(data)
	if err != nil {
		return nil, err
	}

	base := strings.ReplaceAll(name, ".sc", "")
	r := NewReader(container)
	result := &TexResult{}

	for r.Remaining() > 0 {
		chunkType := r.ReadUint8()
		chunkSize := r.ReadUint32()

		switch chunkType {
		case chunkSprite, chunkSpriteAlt, chunkTiledSprite, chunkTiledAlt:
		default:
			r.Skip(int(chunkSize))
			continue
		}

		// The declared size spans the image header and pixel data. A
		// failed decode leaves the cursor mid-chunk, so realign to the
		// boundary before scanning on.
		boundary := r.Offset() + int(chunkSize)

		img, err := decodeSprite(r, chunkType)
		if err != nil {
			result.Skipped = append(result.Skipped, fmt.Errorf("chunk type %d: %w", chunkType, err))
			r.seekTo(boundary)
			continue
		}

		path := filepath.Join(outDir, base+strings.Repeat("_", len(result.Sprites))+".png")
		if err := writePNG(img, path); err != nil {
			return result, err
		}
		result.Sprites = append(result.Sprites, path)
	}

	return result, nil
}

// decodeSprite reads one image chunk body (sub-format byte, dimensions,
// pixel data) from the cursor. Pixels are emitted in raster order for plain
// chunks; tiled chunks collect the flat block-scan sequence first and fold
// it back afterwards.
func decodeSprite(r *Reader, chunkType byte) (*image.NRGBA, error) {
	subType := r.ReadUint8()
	width := int(r.ReadUint16())
	height := int(r.ReadUint16())

	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	tiled := chunkType == chunkTiledSprite || chunkType == chunkTiledAlt

	var pixels [][4]byte
	if tiled {
		pixels = make([][4]byte, 0, width*height)
	}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			px, err := decodePixel(r, subType)
			if err != nil {
				return nil, err
			}
			if tiled {
				pixels = append(pixels, px)
			} else {
				setPixel(img, x, y, px)
			}
		}
	}

	if tiled {
		deinterleaveTiles(img, pixels, width, height)
	}

	return img, nil
}
