package scex

import "image"

// tileSize is the block edge used by tiled sprite sheets (chunk types 27/28).
const tileSize = 32

// deinterleaveTiles places a flat pixel sequence stored in 32x32 block-scan
// order onto img in raster order. Tiles are visited left to right, top to
// bottom; inside a tile rows run top to bottom and columns left to right,
// clipped at the image edge for partial tiles. The i-th input sample lands
// on the i-th coordinate of that scan, which is exactly how tiled sheets
// were serialized.
func deinterleaveTiles(img *image.NRGBA, pixels [][4]byte, width, height int) {
	tilesY := (height + tileSize - 1) / tileSize
	tilesX := (width + tileSize - 1) / tileSize

	i := 0
	for ty := 0; ty < tilesY; ty++ {
		for tx := 0; tx < tilesX; tx++ {
			yEnd := (ty + 1) * tileSize
			if yEnd > height {
				yEnd = height
			}
			xEnd := (tx + 1) * tileSize
			if xEnd > width {
				xEnd = width
			}

			for y := ty * tileSize; y < yEnd; y++ {
				for x := tx * tileSize; x < xEnd; x++ {
					setPixel(img, x, y, pixels[i])
					i++
				}
			}
		}
	}
}

// setPixel writes one RGBA sample without color model conversion.
func setPixel(img *image.NRGBA, x, y int, px [4]byte) {
	o := img.PixOffset(x, y)
	copy(img.Pix[o:o+4], px[:])
}
