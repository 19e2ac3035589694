/*
NAME
  object.go

DESCRIPTION
  object.go parses an object data segment (ETSI EN 300 743 section 7.2.4),
  the segment that carries a pixel object's run-length-coded top and bottom
  field subimages.

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

	"github.com/pkg/errors"

	"github.com/ausocean/dvbsub/bits"
)

// parseObjectSegment decodes an object data segment's payload and installs
// the resulting Object into s. Character-coded objects are not supported:
// parsing stops after the header and ErrUnsupportedCoding is returned, as
// per the scope of this decoder.
//
// An object whose version number matches the already-installed object with
// the same id is a no-op.
func parseObjectSegment(s *Store, payload []byte) error {
	br := bits.NewBitReader(bytes.NewReader(payload))
	fr := newFieldReader(br)

	id := uint16(fr.read(16))
	version := uint8(fr.read(4))
	coding := uint8(fr.read(2))
	nonModify := fr.bit()
	fr.skip(1) // reserved

	if cur, ok := s.Object(id); ok && cur.Version == version {
		return nil
	}

	if coding != CodingPixels {
		return ErrUnsupportedCoding
	}

	topLen := int(fr.read(16))
	bottomLen := int(fr.read(16))
	if err := fr.err(); err != nil {
		return err
	}

	rest := payload[br.BytesRead():]
	if topLen+bottomLen > len(rest) {
		return ErrStreamTruncated
	}

	top, err := decodeSubimage(rest[:topLen])
	if err != nil {
		return errors.Wrap(err, "decoding top field")
	}

	var bottom *Subimage
	if bottomLen == 0 {
		// No bottom field carried: the object is non-interlaced, and the
		// top field is used for both output fields.
		bottom = top
	} else {
		bottom, err = decodeSubimage(rest[topLen : topLen+bottomLen])
		if err != nil {
			return errors.Wrap(err, "decoding bottom field")
		}
	}

	s.PutObject(&Object{
		ID:             id,
		Version:        version,
		CodingMethod:   coding,
		NonModifyColor: nonModify,
		Top:            top,
		Bottom:         bottom,
	})
	return nil
}
