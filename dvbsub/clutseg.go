/*
NAME
  clutseg.go

DESCRIPTION
  clutseg.go parses a CLUT definition segment (ETSI EN 300 743 section
  7.2.3), a list of palette entries each tagged with which of the 2-bpp,
  4-bpp and 8-bpp palettes it belongs to.

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

// parseCLUTSegment decodes a CLUT definition segment's payload and installs
// the resulting CLUT into s.
//
// A CLUT whose version number matches the already-installed CLUT with the
// same id is a no-op.
func parseCLUTSegment(s *Store, payload []byte) error {
	br := bits.NewBitReader(bytes.NewReader(payload))
	fr := newFieldReader(br)

	id := uint8(fr.read(8))
	version := uint8(fr.read(4))
	fr.skip(4) // reserved

	if cur, ok := s.CLUT(id); ok && cur.Version == version {
		return nil
	}

	c := &CLUT{ID: id, Version: version, Known: true}

	for br.BytesRead() < len(payload) && fr.err() == nil {
		entryID := uint8(fr.read(8))
		has2 := fr.bit()
		has4 := fr.bit()
		has8 := fr.bit()
		fr.skip(4) // reserved
		fullRange := fr.bit()

		var col Color
		if fullRange {
			col = Color{
				Y:  uint8(fr.read(8)),
				Cr: uint8(fr.read(8)),
				Cb: uint8(fr.read(8)),
				T:  uint8(fr.read(8)),
			}
		} else {
			// Short form packs Y/Cr/Cb/T into 6/4/4/2 bits. The standard's
			// own worked tables only ever show these used with the 4-entry
			// and 16-entry default palette values, which are small enough
			// to fit un-rescaled; real-world streams and the reference
			// decoder both store the raw field value rather than widening
			// it to fill 8 bits, so we match that rather than rescale.
			col = Color{
				Y:  uint8(fr.read(6)),
				Cr: uint8(fr.read(4)),
				Cb: uint8(fr.read(4)),
				T:  uint8(fr.read(2)),
			}
		}

		if has2 {
			c.C2[entryID&0x3] = col
		}
		if has4 {
			c.C4[entryID&0xF] = col
		}
		if has8 {
			c.C8[entryID] = col
		}
	}
	if err := fr.err(); err != nil {
		return err
	}

	s.PutCLUT(c)
	return nil
}
