/*
NAME
  errors.go

DESCRIPTION
  errors.go defines the sentinel error kinds used throughout the decoder.
  None of them are fatal to the decoder; each names a local, recoverable
  condition as described by ETSI EN 300 743's tolerance for malformed or
  unsupported segments.

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

import "errors"

var (
	// ErrWrongDataIdentifier is returned when a unit's data identifier byte
	// is not 0x20.
	ErrWrongDataIdentifier = errors.New("dvbsub: wrong data identifier")

	// ErrMissingEndMarker indicates the 0xFF end marker was not found where
	// expected. Non-fatal: rendering is still attempted if a page exists.
	ErrMissingEndMarker = errors.New("dvbsub: end marker not found")

	// ErrStreamTruncated indicates a read ran past the end of the unit's
	// buffer. The current segment is abandoned.
	ErrStreamTruncated = errors.New("dvbsub: stream truncated")

	// ErrUnknownSegmentType indicates a segment type other than page
	// composition, region composition, CLUT definition, object data and
	// end of display set.
	ErrUnknownSegmentType = errors.New("dvbsub: unknown segment type")

	// ErrUnsupportedCoding indicates an object-data segment coded as
	// characters rather than pixels.
	ErrUnsupportedCoding = errors.New("dvbsub: unsupported object coding method")

	// ErrMissingRegion indicates a page's region definition names a region
	// id never seen in a region composition segment.
	ErrMissingRegion = errors.New("dvbsub: region not found")

	// ErrMissingObject indicates a region's object definition names an
	// object id never seen in an object data segment.
	ErrMissingObject = errors.New("dvbsub: object not found")

	// ErrNonDatedUnit indicates a unit arrived with pts <= 0.
	ErrNonDatedUnit = errors.New("dvbsub: non-dated subtitle unit")
)
