/*
NAME
  types.go

DESCRIPTION
  types.go defines the ETSI EN 300 743 object model: the page, its regions,
  their objects, the pixel subimages that make up an object, and the color
  look-up tables used to turn pixel codes into YCbCr + alpha.

AUTHOR
  Saxon A. Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package dvbsub provides a decoder for DVB subtitles as specified by
// ETSI EN 300 743. It consumes already-demultiplexed, already-timestamped
// subtitle data units and produces positioned YCbCr + alpha subpictures.
package dvbsub

// Object types, as per ETSI EN 300 743 table 6.
const (
	ObjectBasicBitmap     = 0x00
	ObjectBasicChar       = 0x01
	ObjectCompositeString = 0x02
)

// Object coding methods, as per ETSI EN 300 743 section 7.2.4.
const (
	CodingPixels     = 0x00
	CodingCharacters = 0x01
)

// PageState describes the state carried by a page composition segment, as
// per ETSI EN 300 743 table 3.
type PageState uint8

const (
	PageStateNormal      PageState = 0x00
	PageStateAcquisition PageState = 0x01
	PageStateModeChange  PageState = 0x02
)

// Color is a single CLUT entry: luma, the two chroma components, and
// transparency, each in the 8-bit YCbCr range.
type Color struct {
	Y, Cr, Cb, T uint8
}

// CLUT is a color look-up table as defined by a CLUT definition segment. It
// holds one palette per supported pixel depth.
type CLUT struct {
	ID      uint8
	Version uint8
	Known   bool // Known distinguishes a CLUT that has been seen on the wire from the zero value.

	C2 [4]Color
	C4 [16]Color
	C8 [256]Color
}

// RegionDef is a page-local placement of a region, as carried by a page
// composition segment.
type RegionDef struct {
	ID   uint8
	X, Y uint16
}

// Page is the top-level subtitle container. At most one is ever current.
type Page struct {
	ID      uint16
	Timeout uint8 // Seconds.
	Version uint8
	State   PageState
	Regions []RegionDef // Rendering order is this slice's order.
}

// ObjectDef is a region-local placement of an object.
type ObjectDef struct {
	ID       uint16
	Type     uint8
	Provider uint8
	X, Y     uint16
	FG, BG   uint8 // Only meaningful for ObjectBasicChar and ObjectCompositeString.
}

// Region is a rectangular display area carrying one or more objects and
// referencing a CLUT.
type Region struct {
	ID         uint8
	Version    uint8
	Fill       bool
	Width      uint16
	Height     uint16
	LevelComp  uint8
	Depth      uint8
	CLUTID     uint8
	Code8      uint8 // Default 8-bpp pixel code.
	Code4      uint8 // Default 4-bpp pixel code.
	Code2      uint8 // Default 2-bpp pixel code.
	ObjectDefs []ObjectDef
}

// RLERun is a single run-length-encoded run: Length pixels of Color, decoded
// at the given bit Depth (2, 4 or 8), which selects the palette used to
// resolve Color to an actual Color at render time.
type RLERun struct {
	Length uint16
	Color  uint8
	Depth  uint8
}

// Subimage is one field (top or bottom) of an object's pixel data: a
// sequence of RLE runs, plus the column count of each row, since nothing in
// the standard requires rows to be of uniform length.
type Subimage struct {
	Rows uint16
	Cols []uint16 // len(Cols) == Rows.
	Runs []RLERun
}

// Object is a pixel or character resource. Pixel objects are interlace-split
// into top and bottom subimages; character objects carry no subimages.
type Object struct {
	ID             uint16
	Version        uint8
	CodingMethod   uint8
	NonModifyColor bool
	Top            *Subimage
	Bottom         *Subimage
}
