/*
NAME
  bitreader_test.go

DESCRIPTION
  Tests for BitReader, focusing on SkipBits and AlignByte, which have no
  analogue in the reader this package is descended from.

AUTHOR
  Saxon A. Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package bits

import (
	"bytes"
	"testing"
)

func TestReadBits(t *testing.T) {
	br := NewBitReader(bytes.NewReader([]byte{0x8f, 0xe3}))
	for _, want := range []struct {
		n int
		v uint64
	}{
		{4, 0x8},
		{2, 0x3},
		{4, 0xf},
		{6, 0x23},
	} {
		got, err := br.ReadBits(want.n)
		if err != nil {
			t.Fatalf("ReadBits(%d): %v", want.n, err)
		}
		if got != want.v {
			t.Errorf("ReadBits(%d) = 0x%x, want 0x%x", want.n, got, want.v)
		}
	}
}

func TestSkipBits(t *testing.T) {
	br := NewBitReader(bytes.NewReader([]byte{0xff, 0x00, 0xab}))
	if err := br.SkipBits(12); err != nil {
		t.Fatalf("SkipBits: %v", err)
	}
	got, err := br.ReadBits(12)
	if err != nil {
		t.Fatalf("ReadBits: %v", err)
	}
	if want := uint64(0x0ab); got != want {
		t.Errorf("got 0x%x, want 0x%x", got, want)
	}
}

func TestAlignByte(t *testing.T) {
	br := NewBitReader(bytes.NewReader([]byte{0xff, 0xab}))
	if _, err := br.ReadBits(3); err != nil {
		t.Fatalf("ReadBits: %v", err)
	}
	if br.ByteAligned() {
		t.Fatalf("expected reader to be unaligned after reading 3 bits")
	}
	if err := br.AlignByte(); err != nil {
		t.Fatalf("AlignByte: %v", err)
	}
	if !br.ByteAligned() {
		t.Fatalf("expected reader to be aligned")
	}
	got, err := br.ReadBits(8)
	if err != nil {
		t.Fatalf("ReadBits: %v", err)
	}
	if want := uint64(0xab); got != want {
		t.Errorf("got 0x%x, want 0x%x", got, want)
	}

	// AlignByte on an already-aligned reader is a no-op.
	if err := br.AlignByte(); err != nil {
		t.Fatalf("AlignByte on aligned reader: %v", err)
	}
	if n := br.BytesRead(); n != 2 {
		t.Errorf("BytesRead() = %d, want 2", n)
	}
}

func TestSkipBitsTruncated(t *testing.T) {
	br := NewBitReader(bytes.NewReader([]byte{0x00}))
	if err := br.SkipBits(16); err == nil {
		t.Fatalf("expected error skipping past end of stream")
	}
}
