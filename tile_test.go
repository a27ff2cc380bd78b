package scex

import (
	"fmt"
	"image"
	"testing"
)

// blockScanCoords lists every (x, y) of a width by height grid in the 32x32
// block-scan order tiled sprite sheets are serialized in. It mirrors the
// order deinterleaveTiles expects its flat input to follow.
func blockScanCoords(width, height int) [][2]int {
	coords := make([][2]int, 0, width*height)
	tilesY := (height + tileSize - 1) / tileSize
	tilesX := (width + tileSize - 1) / tileSize

	for ty := 0; ty < tilesY; ty++ {
		for tx := 0; tx < tilesX; tx++ {
			for y := ty * tileSize; y < (ty+1)*tileSize && y < height; y++ {
				for x := tx * tileSize; x < (tx+1)*tileSize && x < width; x++ {
					coords = append(coords, [2]int{x, y})
				}
			}
		}
	}

	return coords
}

func TestDeinterleaveTilesRoundTrip(t *testing.T) {
	t.Parallel()

	tests := []struct {
		width  int
		height int
	}{
		{width: 32, height: 32},  // single exact tile
		{width: 64, height: 64},  // multiple exact tiles
		{width: 50, height: 40},  // partial edge tiles on both axes
		{width: 7, height: 5},    // smaller than one tile
		{width: 33, height: 1},   // single row crossing a tile boundary
		{width: 100, height: 33}, // ragged in both directions
	}

	for _, tc := range tests {
		tc := tc
		t.Run(fmt.Sprintf("%dx%d", tc.width, tc.height), func(t *testing.T) {
			t.Parallel()

			// Give every coordinate a unique sample, serialize it in
			// block-scan order, then deinterleave and expect the original
			// raster back.
			sample := func(x, y int) [4]byte {
				n := y*tc.width + x
				return [4]byte{byte(n), byte(n >> 8), byte(n >> 16), 0xFF}
			}

			coords := blockScanCoords(tc.width, tc.height)
			if len(coords) != tc.width*tc.height {
				t.Fatalf("block scan visits %d coordinates, want %d", len(coords), tc.width*tc.height)
			}

			flat := make([][4]byte, 0, len(coords))
			for _, c := range coords {
				flat = append(flat, sample(c[0], c[1]))
			}

			img := image.NewNRGBA(image.Rect(0, 0, tc.width, tc.height))
			deinterleaveTiles(img, flat, tc.width, tc.height)

			for y := 0; y < tc.height; y++ {
				for x := 0; x < tc.width; x++ {
					want := sample(x, y)
					o := img.PixOffset(x, y)
					got := [4]byte{img.Pix[o], img.Pix[o+1], img.Pix[o+2], img.Pix[o+3]}
					if got != want {
						t.Fatalf("pixel (%d,%d) = %v, want %v", x, y, got, want)
					}
				}
			}
		})
	}
}
