// Package render turns sim display buffers into pixels.
package render

import (
	"image"
	"image/color"
)

// fillBinaryRGBA converts binary cell data (0/1) into RGBA pixels in buf.
func fillBinaryRGBA(buf []byte, cells []uint8, on, off color.Color) {
	rOn, gOn, bOn, aOn := on.RGBA()
	rOff, gOff, bOff, aOff := off.RGBA()
	for i, c := range cells {
		base := i * 4
		if c != 0 {
			buf[base+0] = uint8(rOn >> 8)
			buf[base+1] = uint8(gOn >> 8)
			buf[base+2] = uint8(bOn >> 8)
			buf[base+3] = uint8(aOn >> 8)
			continue
		}
		buf[base+0] = uint8(rOff >> 8)
		buf[base+1] = uint8(gOff >> 8)
		buf[base+2] = uint8(bOff >> 8)
		buf[base+3] = uint8(aOff >> 8)
	}
}

// fillPaletteRGBA converts cell values into RGBA pixels using a palette.
// Values past the end of the palette use its last color.
func fillPaletteRGBA(buf []byte, cells []uint8, palette []color.RGBA) {
	last := len(palette) - 1
	for i, c := range cells {
		idx := int(c)
		if idx > last {
			idx = last
		}
		base := i * 4
		col := palette[idx]
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}

// Fill writes cells into buf. Without a palette non-zero cells are white on
// black.
func Fill(buf []byte, cells []uint8, palette []color.RGBA) {
	if len(palette) == 0 {
		fillBinaryRGBA(buf, cells, color.White, color.Black)
		return
	}
	fillPaletteRGBA(buf, cells, palette)
}

// Image renders a w*h display buffer into an RGBA image, each cell scale
// pixels wide. It returns nil when cells does not match the dimensions.
func Image(w, h int, cells []uint8, palette []color.RGBA, scale int) *image.RGBA {
	if w <= 0 || h <= 0 || len(cells) != w*h {
		return nil
	}
	if scale <= 0 {
		scale = 1
	}
	base := make([]byte, 4*w*h)
	Fill(base, cells, palette)
	img := image.NewRGBA(image.Rect(0, 0, w*scale, h*scale))
	for y := 0; y < h*scale; y++ {
		for x := 0; x < w*scale; x++ {
			src := ((y/scale)*w + x/scale) * 4
			copy(img.Pix[img.PixOffset(x, y):], base[src:src+4])
		}
	}
	return img
}
