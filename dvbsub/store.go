/*
NAME
  store.go

DESCRIPTION
  store.go provides Store, the object store that accumulates page, region,
  object and CLUT state across subtitle units within one epoch. Where the
  reference decoder uses intrusive singly-linked lists threaded through each
  entity, Store uses maps keyed by id: there is no ownership cycle to reason
  about and lookups are O(1) rather than O(n).

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

// Store holds all state accumulated from subtitle segments: at most one
// page, the region set, the object set, and the CLUT table. It is owned by
// a single Decoder and is not safe for concurrent use.
type Store struct {
	page    *Page
	regions map[uint8]*Region
	objects map[uint16]*Object
	cluts   [256]*CLUT

	defaultCLUT *CLUT
}

// StoreOption configures a Store at construction.
type StoreOption func(*Store)

// WithDefault8BPPFill overrides the fill color used for the 256-entry
// default CLUT, which ETSI EN 300 743 leaves implementation-defined.
func WithDefault8BPPFill(c Color) StoreOption {
	return func(s *Store) {
		s.defaultCLUT = newDefaultCLUT(c)
	}
}

// NewStore returns an empty Store with the default CLUT built.
func NewStore(opts ...StoreOption) *Store {
	s := &Store{
		regions:     make(map[uint8]*Region),
		objects:     make(map[uint16]*Object),
		defaultCLUT: newDefaultCLUT(defaultOpaqueWhite),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Page returns the current page, or nil if none has been installed.
func (s *Store) Page() *Page { return s.page }

// SetPage installs p as the current page.
func (s *Store) SetPage(p *Page) { s.page = p }

// Region looks up a region by id.
func (s *Store) Region(id uint8) (*Region, bool) {
	r, ok := s.regions[id]
	return r, ok
}

// PutRegion inserts or replaces a region.
func (s *Store) PutRegion(r *Region) { s.regions[r.ID] = r }

// Object looks up an object by id.
func (s *Store) Object(id uint16) (*Object, bool) {
	o, ok := s.objects[id]
	return o, ok
}

// PutObject inserts or replaces an object.
func (s *Store) PutObject(o *Object) { s.objects[o.ID] = o }

// CLUT looks up an installed CLUT by id. It does not fall back to the
// default CLUT; callers needing that fallback should use ResolveCLUT.
func (s *Store) CLUT(id uint8) (*CLUT, bool) {
	c := s.cluts[id]
	return c, c != nil
}

// PutCLUT installs a CLUT at its id.
func (s *Store) PutCLUT(c *CLUT) { s.cluts[c.ID] = c }

// ResolveCLUT returns the installed CLUT for id, or the fabricated default
// CLUT if none has been installed.
func (s *Store) ResolveCLUT(id uint8) *CLUT {
	if c := s.cluts[id]; c != nil {
		return c
	}
	return s.defaultCLUT
}

// Reset frees everything: the page, all regions, all objects and all
// installed CLUTs. Called on a page composition segment carrying the
// mode-change state, marking the end of an epoch.
func (s *Store) Reset() {
	s.page = nil
	s.regions = make(map[uint8]*Region)
	s.objects = make(map[uint16]*Object)
	for i := range s.cluts {
		s.cluts[i] = nil
	}
}

// PurgeObjects frees only the object set, leaving the page, regions and
// CLUTs intact. Called on a page composition segment carrying the
// acquisition state, to discard stale bitmaps ahead of a fresh acquisition.
func (s *Store) PurgeObjects() {
	s.objects = make(map[uint16]*Object)
}
