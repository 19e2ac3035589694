/*
NAME
  clut.go

DESCRIPTION
  clut.go builds the default CLUT defined by ETSI EN 300 743 section 10,
  used whenever a region references a CLUT id that has not (yet) been
  installed by a CLUT definition segment.

AUTHOR
  Saxon A. Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package dvbsub

// rgbToY, rgbToCr and rgbToCb implement the fixed-point BT.601 RGB to YCbCr
// transform used to build the default CLUT. Integer division truncates
// toward zero, as it does in C, so the two are bit-for-bit equivalent for
// the handful of (R, G, B) combinations the default CLUT is built from.
func rgbToY(r, g, b uint8) uint8 {
	return uint8((77*int32(r) + 150*int32(g) + 29*int32(b)) / 256)
}

func rgbToCr(r, g, b uint8) uint8 {
	return uint8((-44*int32(r) - 87*int32(g) + 131*int32(b)) / 256)
}

func rgbToCb(r, g, b uint8) uint8 {
	return uint8((131*int32(r) - 110*int32(g) - 21*int32(b)) / 256)
}

func rgbColor(r, g, b, t uint8) Color {
	return Color{Y: rgbToY(r, g, b), Cr: rgbToCr(r, g, b), Cb: rgbToCb(r, g, b), T: t}
}

// newDefaultCLUT builds the standard fallback CLUT: a 4-entry (2-bpp)
// palette and a 16-entry (4-bpp) palette per EN 300 743 section 10, and a
// 256-entry (8-bpp) palette filled with fill since the standard leaves the
// 8-bpp default implementation-defined.
func newDefaultCLUT(fill Color) *CLUT {
	c := &CLUT{Known: true}

	// 4-entry (2-bpp) CLUT.
	c.C2[0] = Color{T: 0xFF}
	c.C2[1] = rgbColor(0xFF, 0xFF, 0xFF, 0)
	c.C2[2] = rgbColor(0, 0, 0, 0)
	c.C2[3] = rgbColor(0x7F, 0x7F, 0x7F, 0)

	// 16-entry (4-bpp) CLUT: bit 0 = R, bit 1 = G, bit 2 = B, bit 3 selects
	// full (0..7) or half (8..15) intensity; index 0 is fully transparent.
	for i := uint8(0); i < 16; i++ {
		if i == 0 {
			c.C4[i] = Color{T: 0xFF}
			continue
		}
		var level uint8 = 0x7F
		if i&0x8 == 0 {
			level = 0xFF
		}
		var r, g, b uint8
		if i&0x1 != 0 {
			r = level
		}
		if i&0x2 != 0 {
			g = level
		}
		if i&0x4 != 0 {
			b = level
		}
		c.C4[i] = rgbColor(r, g, b, 0)
	}

	// 256-entry (8-bpp) CLUT: implementation-defined default.
	for i := range c.C8 {
		c.C8[i] = fill
	}

	return c
}

// defaultOpaqueWhite is the fill color used for the 8-bpp default palette
// unless a Store is constructed with WithDefault8BPPFill.
var defaultOpaqueWhite = rgbColor(0xFF, 0xFF, 0xFF, 0)
