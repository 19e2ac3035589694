/*
NAME
  page.go

DESCRIPTION
  page.go parses a page composition segment (ETSI EN 300 743 section 7.2.1),
  the segment that declares the page's timeout, version, state and its
  region placements, and applies the epoch transition implied by its state.

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

// parsePageSegment decodes a page composition segment's payload and installs
// the resulting Page into s, applying a Store reset or object purge first if
// the page's state demands it.
//
// A page composition segment carrying the same version number as the
// already-installed page is a no-op: re-submitting identical segment data
// must leave the store bitwise unchanged. While no page is installed, a
// segment in the normal state is also a no-op: decoding waits for an
// acquisition point or a mode change.
func parsePageSegment(s *Store, pageID uint16, payload []byte) error {
	br := bits.NewBitReader(bytes.NewReader(payload))
	fr := newFieldReader(br)

	timeout := uint8(fr.read(8))
	version := uint8(fr.read(4))
	state := PageState(fr.read(2))
	fr.skip(2) // reserved

	cur := s.Page()
	if cur != nil && cur.ID == pageID && cur.Version == version {
		return nil
	}
	if cur == nil && state == PageStateNormal {
		return nil
	}

	var regions []RegionDef
	for br.BytesRead() < len(payload) && fr.err() == nil {
		id := uint8(fr.read(8))
		fr.skip(8) // reserved
		x := uint16(fr.read(16))
		y := uint16(fr.read(16))
		regions = append(regions, RegionDef{ID: id, X: x, Y: y})
	}
	if err := fr.err(); err != nil {
		return err
	}

	switch state {
	case PageStateModeChange:
		s.Reset()
	case PageStateAcquisition:
		s.PurgeObjects()
	}

	s.SetPage(&Page{
		ID:      pageID,
		Timeout: timeout,
		Version: version,
		State:   state,
		Regions: regions,
	})
	return nil
}
