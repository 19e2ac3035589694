/*
NAME
  decoder.go

DESCRIPTION
  decoder.go provides Decoder, the entry point of the package: it validates
  and unwraps a subtitle data unit's PES payload, dispatches its segments
  into a Store, and renders a Subpicture from whatever page is current once
  the unit has been fully processed.

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

import "github.com/pkg/errors"

// Log levels passed to a Log function, mirroring github.com/ausocean/utils/logging.
const (
	LogLevelDebug   int8 = 0
	LogLevelInfo    int8 = 1
	LogLevelWarning int8 = 2
	LogLevelError   int8 = 3
)

// Unexported aliases used internally so callers within this package don't
// have to stutter the exported names.
const (
	logLevelDebug   = LogLevelDebug
	logLevelInfo    = LogLevelInfo
	logLevelWarning = LogLevelWarning
	logLevelError   = LogLevelError
)

// Log receives one structured log entry. A nil Log discards everything.
// Signature matches github.com/ausocean/utils/logging.Logger.Log.
type Log func(lvl int8, msg string, args ...interface{})

// Config configures a Decoder.
type Config struct {
	// PrimaryPageID and AncillaryPageID select which page id(s) this
	// Decoder accepts segments for. Segments for any other page id are
	// consumed and discarded.
	PrimaryPageID   uint16
	AncillaryPageID uint16
	// HasAncillary indicates whether AncillaryPageID should also be
	// accepted; by default only PrimaryPageID is.
	HasAncillary bool

	// Log receives diagnostic output. Optional.
	Log Log

	// Factory allocates Subpicture and RegionRaster values. Required.
	Factory PixelBufferFactory

	// Default8BPPFill overrides the fill color of the fallback 256-entry
	// CLUT, which ETSI EN 300 743 leaves implementation-defined.
	Default8BPPFill Color
}

// Decoder decodes a sequence of DVB subtitle data units into subpictures.
// A Decoder is not safe for concurrent use; the reference decoder it is
// modelled on also confines all state to a single decoder_sys_t.
type Decoder struct {
	cfg     Config
	store   *Store
	pageIDs map[uint16]bool
}

// NewDecoder returns a Decoder configured by cfg.
func NewDecoder(cfg Config) *Decoder {
	var opts []StoreOption
	if (cfg.Default8BPPFill != Color{}) {
		opts = append(opts, WithDefault8BPPFill(cfg.Default8BPPFill))
	}

	pageIDs := map[uint16]bool{cfg.PrimaryPageID: true}
	if cfg.HasAncillary {
		pageIDs[cfg.AncillaryPageID] = true
	}

	return &Decoder{
		cfg:     cfg,
		store:   NewStore(opts...),
		pageIDs: pageIDs,
	}
}

// Unit is one already-demultiplexed, already-timestamped subtitle data unit:
// exactly one PES payload and its presentation timestamp in microseconds.
type Unit struct {
	Data []byte
	PTS  int64
}

// Decode processes one subtitle data unit. It returns a Subpicture whenever
// the store holds a complete, renderable page after processing, and nil
// otherwise. No error returned from Decode is fatal: the Decoder remains
// usable for the next unit regardless.
func (d *Decoder) Decode(u Unit) (*Subpicture, error) {
	if u.PTS <= 0 {
		return nil, ErrNonDatedUnit
	}
	if len(u.Data) < 2 {
		return nil, ErrStreamTruncated
	}
	if u.Data[0] != dataIdentifier {
		return nil, ErrWrongDataIdentifier
	}
	// Data[1] is the subtitle stream id byte. Real streams don't agree on its
	// value, and the reference decoder never enforces it either (its check is
	// compiled out); skip over it rather than reject otherwise-valid units.

	err := processSegments(d.store, u.Data[2:], d.pageIDs, d.cfg.Log)
	if err != nil && err != ErrMissingEndMarker {
		return nil, errors.Wrap(err, "processing segments")
	}

	page := d.store.Page()
	if page == nil {
		return nil, nil
	}

	sp, rerr := render(d.store, page, u.PTS, d.cfg.Factory, d.cfg.Log)
	if rerr != nil {
		return nil, errors.Wrap(rerr, "rendering page")
	}
	return sp, nil
}
