/*
NAME
  tsdemux.go

DESCRIPTION
  Package tsdemux extracts subtitle data units for a single configured PID
  out of an MPEG-TS byte stream, reassembling PES payloads across TS packets
  and handing the caller exactly the byte slice and presentation timestamp
  that github.com/ausocean/dvbsub/dvbsub.Decoder.Decode expects.

  This is deliberately not a general demultiplexer: it tracks one PID, does
  not parse PAT/PMT, and assumes the caller already knows which PID carries
  the subtitle elementary stream.

AUTHOR
  Saxon A. Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package tsdemux

import (
	"io"

	"github.com/Comcast/gots/packet"
	gotspes "github.com/Comcast/gots/pes"
	"github.com/pkg/errors"

	"github.com/ausocean/dvbsub/container/mts/pes"
	"github.com/ausocean/dvbsub/dvbsub"
)

// PacketSize is the fixed size of an MPEG-TS packet.
const PacketSize = 188

// ErrWrongStreamID indicates a PES packet's stream id was not the private
// stream 1 id DVB subtitling is carried on.
var ErrWrongStreamID = errors.New("tsdemux: not a subtitle PES stream")

// Extract reads 188-byte MPEG-TS packets from r, reassembles the PES
// payloads carried by the packet(s) with the given PID, and emits one
// dvbsub.Unit per reassembled payload on the returned channel. The error
// channel carries at most one error, after which both channels are closed.
// Packets with a different PID are skipped without affecting reassembly
// state.
func Extract(r io.Reader, pid uint16) (<-chan dvbsub.Unit, <-chan error) {
	units := make(chan dvbsub.Unit)
	errs := make(chan error, 1)

	go func() {
		defer close(units)
		defer close(errs)

		var buf []byte
		var pts int64
		var raw packet.Packet

		flush := func() {
			if len(buf) > 0 {
				units <- dvbsub.Unit{Data: buf, PTS: pts}
			}
			buf = nil
		}

		for {
			_, err := io.ReadFull(r, raw[:])
			if err == io.EOF || err == io.ErrUnexpectedEOF {
				flush()
				return
			}
			if err != nil {
				errs <- err
				return
			}
			if raw.PID() != pid {
				continue
			}

			payload, err := raw.Payload()
			if err != nil {
				continue // No payload in this packet (e.g. adaptation-field-only).
			}

			if raw.PayloadUnitStartIndicator() {
				flush()
				header, err := gotspes.NewPESHeader(payload)
				if err != nil {
					continue
				}
				if int(header.StreamId()) != pes.PrivateStream1SID {
					errs <- errors.Wrapf(ErrWrongStreamID, "stream id 0x%02x (%s)", header.StreamId(), mimeOrUnknown(int(header.StreamId())))
					return
				}
				pts = ptsToMicros(int64(header.PTS()))
				payload = header.Data()
			}

			buf = append(buf, payload...)
		}
	}()

	return units, errs
}

// ptsToMicros converts a 90kHz PES PTS value to microseconds.
func ptsToMicros(pts int64) int64 {
	return (pts * 1_000_000) / 90_000
}

// mimeOrUnknown names the elementary stream type a PES stream id actually
// carries, so a wrong-stream-id error says what was found instead of just
// what wasn't.
func mimeOrUnknown(streamID int) string {
	mt, err := pes.SIDToMIMEType(streamID)
	if err != nil {
		return "unknown"
	}
	return mt
}
