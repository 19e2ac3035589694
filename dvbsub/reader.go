/*
NAME
  reader.go

DESCRIPTION
  reader.go provides fieldReader, a thin wrapper around a bits.BitReader that
  accumulates a sticky error across a sequence of field reads, so that segment
  parsers can read a whole record without checking an error after every
  field, and inspect err() once at the end.

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

import "github.com/ausocean/dvbsub/bits"

// fieldReader wraps a bits.BitReader with a sticky error. Once a read fails,
// subsequent reads are no-ops that return zero values, and err() surfaces
// ErrStreamTruncated.
//
// Unlike the read helper this is modelled on, fieldReader uses a pointer
// receiver throughout, so the sticky error actually persists across calls.
type fieldReader struct {
	br *bits.BitReader
	e  error
}

// newFieldReader returns a fieldReader over br.
func newFieldReader(br *bits.BitReader) *fieldReader {
	return &fieldReader{br: br}
}

// read returns the next n bits (1 <= n <= 32) as the low bits of a uint32.
// Does nothing and returns 0 if the reader already has a sticky error.
func (r *fieldReader) read(n int) uint32 {
	if r.e != nil {
		return 0
	}
	v, err := r.br.ReadBits(n)
	if err != nil {
		r.e = ErrStreamTruncated
		return 0
	}
	return uint32(v)
}

// peek is as read, but does not advance the reader.
func (r *fieldReader) peek(n int) uint32 {
	if r.e != nil {
		return 0
	}
	v, err := r.br.PeekBits(n)
	if err != nil {
		r.e = ErrStreamTruncated
		return 0
	}
	return uint32(v)
}

// bit reads a single bit and returns it as a bool.
func (r *fieldReader) bit() bool {
	return r.read(1) != 0
}

// skip advances the reader by n bits, discarding them.
func (r *fieldReader) skip(n int) {
	if r.e != nil || n == 0 {
		return
	}
	if err := r.br.SkipBits(n); err != nil {
		r.e = ErrStreamTruncated
	}
}

// align advances the reader to the next byte boundary.
func (r *fieldReader) align() {
	if r.e != nil {
		return
	}
	if err := r.br.AlignByte(); err != nil {
		r.e = ErrStreamTruncated
	}
}

// err returns the sticky error, if any.
func (r *fieldReader) err() error {
	return r.e
}
