/*
NAME
  rle_test.go

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
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ausocean/dvbsub/bits"
)

func newFR(data []byte) *fieldReader {
	return newFieldReader(bits.NewBitReader(bytes.NewReader(data)))
}

func TestDecode2BPP(t *testing.T) {
	// "01" (pixel color 1) + "00" (c=0) + "1" (switch1) + "0" (switch2) + "00" (end of block).
	fr := newFR([]byte{0x48})
	cols, runs := decode2BPP(fr)
	if fr.err() != nil {
		t.Fatalf("unexpected error: %v", fr.err())
	}
	if cols != 1 {
		t.Errorf("cols = %d, want 1", cols)
	}
	want := []RLERun{{Length: 1, Color: 1, Depth: 2}}
	if diff := cmp.Diff(want, runs); diff != "" {
		t.Errorf("runs mismatch (-want +got):\n%s", diff)
	}
}

func TestDecode2BPPShortRun(t *testing.T) {
	// "00" (c=0) + "0" (switch1=0) + "011" (n=3, length=3+3=6) + "10" (color=2),
	// then "00" + "1" + "0" + "00" (end of block) + "00" (padding).
	fr := newFR([]byte{0x0E, 0x20})
	cols, runs := decode2BPP(fr)
	if fr.err() != nil {
		t.Fatalf("unexpected error: %v", fr.err())
	}
	want := []RLERun{{Length: 6, Color: 2, Depth: 2}}
	if diff := cmp.Diff(want, runs); diff != "" {
		t.Errorf("runs mismatch (-want +got):\n%s", diff)
	}
	if cols != 6 {
		t.Errorf("cols = %d, want 6", cols)
	}
}

func TestDecode4BPP(t *testing.T) {
	// "0101" (pixel color 5) + "0000" (c=0) + "0" (switch1=0) + "000" (peek3=0, end of block).
	fr := newFR([]byte{0x50, 0x00})
	cols, runs := decode4BPP(fr)
	if fr.err() != nil {
		t.Fatalf("unexpected error: %v", fr.err())
	}
	want := []RLERun{{Length: 1, Color: 5, Depth: 4}}
	if diff := cmp.Diff(want, runs); diff != "" {
		t.Errorf("runs mismatch (-want +got):\n%s", diff)
	}
	if cols != 1 {
		t.Errorf("cols = %d, want 1", cols)
	}
}

func TestDecode8BPP(t *testing.T) {
	// 0x09 (pixel color 9) + 0x00 (c=0) + "0" (switch1=0) + 7 zero bits (end of block).
	fr := newFR([]byte{0x09, 0x00, 0x00})
	cols, runs := decode8BPP(fr)
	if fr.err() != nil {
		t.Fatalf("unexpected error: %v", fr.err())
	}
	want := []RLERun{{Length: 1, Color: 9, Depth: 8}}
	if diff := cmp.Diff(want, runs); diff != "" {
		t.Errorf("runs mismatch (-want +got):\n%s", diff)
	}
	if cols != 1 {
		t.Errorf("cols = %d, want 1", cols)
	}
}

func TestDecodeSubimageOneRow(t *testing.T) {
	data := []byte{dataType2BPP, 0x48, dataTypeEndLine}
	img, err := decodeSubimage(data)
	if err != nil {
		t.Fatalf("decodeSubimage: %v", err)
	}
	if img.Rows != 1 {
		t.Errorf("Rows = %d, want 1", img.Rows)
	}
	wantCols := []uint16{1}
	if diff := cmp.Diff(wantCols, img.Cols); diff != "" {
		t.Errorf("Cols mismatch (-want +got):\n%s", diff)
	}
	wantRuns := []RLERun{{Length: 1, Color: 1, Depth: 2}}
	if diff := cmp.Diff(wantRuns, img.Runs); diff != "" {
		t.Errorf("Runs mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeSubimageRowAccounting(t *testing.T) {
	img, err := decodeSubimage([]byte{dataType2BPP, 0x48, dataTypeEndLine})
	if err != nil {
		t.Fatalf("decodeSubimage: %v", err)
	}
	for r := 0; r < int(img.Rows); r++ {
		var sum uint16
		for _, run := range img.Runs {
			sum += run.Length
		}
		if sum != img.Cols[r] {
			t.Errorf("row %d: sum of run lengths = %d, want %d", r, sum, img.Cols[r])
		}
	}
}
