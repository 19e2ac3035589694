/*
NAME
  region.go

DESCRIPTION
  region.go parses a region composition segment (ETSI EN 300 743 section
  7.2.2), which declares a region's geometry, the CLUT and default pixel
  codes it uses, and the list of objects placed within it.

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

import (
	"bytes"

	"github.com/ausocean/dvbsub/bits"
)

// Object types that carry foreground/background pixel codes in their region
// placement entry, as per ETSI EN 300 743 table 5.
func objectCarriesPixelCodes(t uint8) bool {
	return t == ObjectBasicChar || t == ObjectCompositeString
}

// parseRegionSegment decodes a region composition segment's payload and
// installs the resulting Region into s.
//
// A region whose version number matches the already-installed region with
// the same id is a no-op, per the idempotence requirement on versioned
// updates.
func parseRegionSegment(s *Store, payload []byte) error {
	br := bits.NewBitReader(bytes.NewReader(payload))
	fr := newFieldReader(br)

	id := uint8(fr.read(8))
	version := uint8(fr.read(4))
	fill := fr.bit()
	fr.skip(3) // reserved
	width := uint16(fr.read(16))
	height := uint16(fr.read(16))
	levelComp := uint8(fr.read(3))
	depth := uint8(fr.read(3))
	fr.skip(2) // reserved
	clutID := uint8(fr.read(8))
	code8 := uint8(fr.read(8))
	code4 := uint8(fr.read(4))
	code2 := uint8(fr.read(2))
	fr.skip(2) // reserved

	if cur, ok := s.Region(id); ok && cur.Version == version {
		return nil
	}

	var defs []ObjectDef
	for br.BytesRead() < len(payload) && fr.err() == nil {
		objID := uint16(fr.read(16))
		objType := uint8(fr.read(2))
		provider := uint8(fr.read(2))
		x := uint16(fr.read(12))
		fr.skip(4) // reserved
		y := uint16(fr.read(12))

		def := ObjectDef{ID: objID, Type: objType, Provider: provider, X: x, Y: y}
		if objectCarriesPixelCodes(objType) {
			def.FG = uint8(fr.read(8))
			def.BG = uint8(fr.read(8))
		}
		defs = append(defs, def)
	}
	if err := fr.err(); err != nil {
		return err
	}

	s.PutRegion(&Region{
		ID:         id,
		Version:    version,
		Fill:       fill,
		Width:      width,
		Height:     height,
		LevelComp:  levelComp,
		Depth:      depth,
		CLUTID:     clutID,
		Code8:      code8,
		Code4:      code4,
		Code2:      code2,
		ObjectDefs: defs,
	})
	return nil
}
