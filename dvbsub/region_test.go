/*
NAME
  region_test.go

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
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseRegionSegment(t *testing.T) {
	s := NewStore()
	payload := []byte{
		0x01,                   // id=1
		0x18,                   // version=1, fill=1, reserved
		0x00, 0x64,             // width=100
		0x00, 0x32,             // height=50
		0x2C,                   // levelComp=1, depth=3
		0x02,                   // clutID=2
		0x07,                   // code8=7
		0x34,                   // code4=3, code2=1
		0x00, 0x05,             // object id=5
		0x10, 0x0A, 0x00, 0x14, // type=0, provider=1, x=10, y=20
	}
	if err := parseRegionSegment(s, payload); err != nil {
		t.Fatalf("parseRegionSegment: %v", err)
	}

	r, ok := s.Region(1)
	if !ok {
		t.Fatalf("region 1 not installed")
	}
	if r.Version != 1 || !r.Fill || r.Width != 100 || r.Height != 50 {
		t.Errorf("region = %+v, unexpected base fields", r)
	}
	if r.LevelComp != 1 || r.Depth != 3 || r.CLUTID != 2 {
		t.Errorf("region = %+v, unexpected geometry/clut fields", r)
	}
	if r.Code8 != 7 || r.Code4 != 3 || r.Code2 != 1 {
		t.Errorf("region = %+v, unexpected default pixel codes", r)
	}

	want := []ObjectDef{{ID: 5, Type: 0, Provider: 1, X: 10, Y: 20}}
	if diff := cmp.Diff(want, r.ObjectDefs); diff != "" {
		t.Errorf("ObjectDefs mismatch (-want +got):\n%s", diff)
	}
}

func TestParseRegionSegmentCharacterObjectCarriesPixelCodes(t *testing.T) {
	s := NewStore()
	payload := []byte{
		0x02,       // id=2
		0x00,       // version=0, fill=0
		0x00, 0x10, // width=16
		0x00, 0x10, // height=16
		0x00,       // levelComp=0, depth=0
		0x00,       // clutID=0
		0x00,       // code8=0
		0x00,       // code4=0, code2=0
		0x00, 0x01, // object id=1
		0x40, 0x00, 0x00, 0x00, // type=1 (char), provider=0, x=0, y=0
		0x09, 0x02, // fg=9, bg=2
	}
	if err := parseRegionSegment(s, payload); err != nil {
		t.Fatalf("parseRegionSegment: %v", err)
	}

	r, _ := s.Region(2)
	if len(r.ObjectDefs) != 1 {
		t.Fatalf("ObjectDefs = %+v, want 1 entry", r.ObjectDefs)
	}
	def := r.ObjectDefs[0]
	if def.Type != ObjectBasicChar || def.FG != 9 || def.BG != 2 {
		t.Errorf("object def = %+v, want type=char fg=9 bg=2", def)
	}
}

func TestParseRegionSegmentRepeatedVersionIsNoOp(t *testing.T) {
	s := NewStore()
	payload := []byte{
		0x01, 0x00, 0x00, 0x10, 0x00, 0x10,
		0x00, 0x00, 0x00, 0x00,
	}
	if err := parseRegionSegment(s, payload); err != nil {
		t.Fatalf("parseRegionSegment: %v", err)
	}
	first, _ := s.Region(1)

	if err := parseRegionSegment(s, payload); err != nil {
		t.Fatalf("parseRegionSegment (repeat): %v", err)
	}
	second, _ := s.Region(1)
	if first != second {
		t.Errorf("repeated identical region-composition segment replaced the region, want no-op")
	}
}
