/*
NAME
  render.go

DESCRIPTION
  render.go turns the current page, its regions and their objects into a
  Subpicture: a timed, positioned set of planar YCbCr + alpha rasters ready
  for composition onto a video frame.

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

// RasterFormat describes the pixel dimensions a caller must allocate a
// RegionRaster at.
type RasterFormat struct {
	Width, Height int
}

// RegionRaster is a planar YCbCr 4:4:4 + 8-bit alpha raster for one region.
// The chroma planes share the luma plane's pitch, matching the reference
// decoder's assumption that downstream compositors accept 4:4:4 directly.
type RegionRaster struct {
	Y, U, V, A []byte
	Pitch      int
	Width      int
	Height     int
}

// PositionedRegion is a RegionRaster placed at (X, Y) on the subpicture's
// canvas, in the page's rendering order.
type PositionedRegion struct {
	X, Y   uint16
	Raster RegionRaster
}

// Subpicture is the decoder's output: a page's regions, rendered and
// positioned, valid from StartPTS until StopPTS.
type Subpicture struct {
	StartPTS  int64
	StopPTS   int64
	Ephemeral bool
	Regions   []PositionedRegion
}

// PixelBufferFactory allocates the output buffers a Decoder writes into.
// Implementations are host-supplied so that raster memory can be pooled or
// owned by whatever compositor ultimately consumes a Subpicture.
type PixelBufferFactory interface {
	NewSubpicture() *Subpicture
	NewRegion(fmt RasterFormat) (RegionRaster, error)
}

// render builds a Subpicture from page, resolving each of its region
// placements against the store. A region or object that cannot be resolved
// is skipped and logged; the rest of the page still renders.
func render(s *Store, page *Page, pts int64, factory PixelBufferFactory, log Log) (*Subpicture, error) {
	sp := factory.NewSubpicture()
	sp.StartPTS = pts
	sp.StopPTS = pts + int64(page.Timeout)*1_000_000
	sp.Ephemeral = true

	for _, rd := range page.Regions {
		region, ok := s.Region(rd.ID)
		if !ok {
			logRenderErr(log, ErrMissingRegion, "region", rd.ID)
			continue
		}
		raster, err := paintRegion(s, region, factory, log)
		if err != nil {
			continue
		}
		sp.Regions = append(sp.Regions, PositionedRegion{X: rd.X, Y: rd.Y, Raster: raster})
	}
	return sp, nil
}

// paintRegion allocates a raster for region, fills its background if the
// region declares one, and paints every object it places.
func paintRegion(s *Store, region *Region, factory PixelBufferFactory, log Log) (RegionRaster, error) {
	raster, err := factory.NewRegion(RasterFormat{Width: int(region.Width), Height: int(region.Height)})
	if err != nil {
		return RegionRaster{}, err
	}

	clut := s.ResolveCLUT(region.CLUTID)

	if region.Fill {
		depth, code := regionFillCode(region)
		fillRaster(raster, resolveColor(clut, depth, code))
	}

	for _, def := range region.ObjectDefs {
		obj, ok := s.Object(def.ID)
		if !ok {
			logRenderErr(log, ErrMissingObject, "object", def.ID)
			continue
		}
		paintObject(raster, int(def.X), int(def.Y), obj, clut)
	}

	return raster, nil
}

// logRenderErr reports a non-fatal render-time lookup failure, if a Log was
// configured.
func logRenderErr(log Log, err error, idKey string, id interface{}) {
	if log == nil {
		return
	}
	log(logLevelWarning, "render: skipping entry", "error", err.Error(), idKey, id)
}

// regionFillCode picks the default pixel code and bit depth a region's
// background fill uses, selected by its declared bit depth per ETSI EN 300
// 743 table 4.
func regionFillCode(region *Region) (depth, code uint8) {
	switch region.Depth {
	case 0x01:
		return 2, region.Code2
	case 0x02:
		return 4, region.Code4
	default:
		return 8, region.Code8
	}
}

// fillRaster sets every pixel of raster to c.
func fillRaster(raster RegionRaster, c Color) {
	for row := 0; row < raster.Height; row++ {
		for col := 0; col < raster.Width; col++ {
			setPixel(raster, col, row, c)
		}
	}
}

// paintObject paints obj's interlaced fields into raster at (ox, oy). The
// top field supplies even output rows and the bottom field odd output rows,
// relative to the object's placement.
func paintObject(raster RegionRaster, ox, oy int, obj *Object, clut *CLUT) {
	paintSubimage(raster, ox, oy, 0, obj.Top, clut)
	paintSubimage(raster, ox, oy, 1, obj.Bottom, clut)
}

// paintSubimage paints one field of an object's pixel data. rowOffset is 0
// for the top field and 1 for the bottom field; output rows advance two at
// a time to interleave the two fields.
func paintSubimage(raster RegionRaster, ox, oy, rowOffset int, img *Subimage, clut *CLUT) {
	if img == nil {
		return
	}

	runIdx := 0
	for r := 0; r < int(img.Rows); r++ {
		cols := int(img.Cols[r])
		outRow := oy + rowOffset + r*2
		x := ox
		consumed := 0
		for consumed < cols && runIdx < len(img.Runs) {
			run := img.Runs[runIdx]
			runIdx++
			c := resolveColor(clut, run.Depth, run.Color)
			for i := 0; i < int(run.Length); i++ {
				setPixel(raster, x+i, outRow, c)
			}
			x += int(run.Length)
			consumed += int(run.Length)
		}
	}
}

// resolveColor looks up a run's color code in the palette matching its bit
// depth.
func resolveColor(clut *CLUT, depth, code uint8) Color {
	switch depth {
	case 2:
		return clut.C2[code&0x3]
	case 4:
		return clut.C4[code&0xF]
	default:
		return clut.C8[code]
	}
}

// DefaultPixelBufferFactory allocates plain heap-backed rasters, one flat
// byte slice per plane. It suits callers that consume a Subpicture
// synchronously and don't need pooled or externally-owned buffers.
type DefaultPixelBufferFactory struct{}

func (DefaultPixelBufferFactory) NewSubpicture() *Subpicture { return &Subpicture{} }

func (DefaultPixelBufferFactory) NewRegion(fmt RasterFormat) (RegionRaster, error) {
	n := fmt.Width * fmt.Height
	return RegionRaster{
		Y:      make([]byte, n),
		U:      make([]byte, n),
		V:      make([]byte, n),
		A:      make([]byte, n),
		Pitch:  fmt.Width,
		Width:  fmt.Width,
		Height: fmt.Height,
	}, nil
}

// setPixel writes c into raster at (x, y), silently clipping out-of-bounds
// writes. Alpha is derived from the CLUT entry's transparency: fully
// transparent (T = 0xFF) maps to alpha 0.
func setPixel(raster RegionRaster, x, y int, c Color) {
	if x < 0 || y < 0 || x >= raster.Width || y >= raster.Height {
		return
	}
	idx := y*raster.Pitch + x
	if idx >= len(raster.Y) {
		return
	}
	raster.Y[idx] = c.Y
	raster.U[idx] = c.Cb
	raster.V[idx] = c.Cr
	raster.A[idx] = 0xFF - c.T
}
