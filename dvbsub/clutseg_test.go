/*
NAME
  clutseg_test.go

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

import "testing"

func TestParseCLUTSegmentFullRangeEntry(t *testing.T) {
	s := NewStore()
	payload := []byte{
		0x03, 0x10, // id=3, version=1
		0x01, 0x81, 0x10, 0x20, 0x30, 0x00, // entry 1, 2bpp, full range
	}
	if err := parseCLUTSegment(s, payload); err != nil {
		t.Fatalf("parseCLUTSegment: %v", err)
	}

	c, ok := s.CLUT(3)
	if !ok {
		t.Fatalf("CLUT 3 not installed")
	}
	want := Color{Y: 0x10, Cr: 0x20, Cb: 0x30, T: 0x00}
	if c.C2[1] != want {
		t.Errorf("C2[1] = %+v, want %+v", c.C2[1], want)
	}
}

func TestParseCLUTSegmentShortFormNotRescaled(t *testing.T) {
	s := NewStore()
	payload := []byte{
		0x03, 0x10, // id=3, version=1
		0x01, 0x81, 0x10, 0x20, 0x30, 0x00, // entry 1, 2bpp, full range
		0x02, 0x40, 0x55, 0x4D, // entry 2, 4bpp, short form
	}
	if err := parseCLUTSegment(s, payload); err != nil {
		t.Fatalf("parseCLUTSegment: %v", err)
	}

	c, _ := s.CLUT(3)
	// Short form carries raw field values, not rescaled to fill 8 bits.
	want := Color{Y: 21, Cr: 5, Cb: 3, T: 1}
	if c.C4[2] != want {
		t.Errorf("C4[2] = %+v, want raw %+v", c.C4[2], want)
	}
}

func TestParseCLUTSegmentRepeatedVersionIsNoOp(t *testing.T) {
	s := NewStore()
	payload := []byte{0x03, 0x10}
	if err := parseCLUTSegment(s, payload); err != nil {
		t.Fatalf("parseCLUTSegment: %v", err)
	}
	first, _ := s.CLUT(3)

	if err := parseCLUTSegment(s, payload); err != nil {
		t.Fatalf("parseCLUTSegment (repeat): %v", err)
	}
	second, _ := s.CLUT(3)
	if first != second {
		t.Errorf("repeated identical CLUT definition segment replaced the CLUT, want no-op")
	}
}
