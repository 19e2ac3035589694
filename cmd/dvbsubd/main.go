/*
NAME
  dvbsubd is a command line tool that decodes DVB subtitle data carried in
  an MPEG-TS file and logs the timing and region layout of each decoded
  subpicture.

AUTHOR
  Saxon A. Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package main

import (
	"flag"
	"os"

	"github.com/ausocean/utils/logging"
	lumberjack "gopkg.in/natefinch/lumberjack.v2"

	"github.com/ausocean/dvbsub/dvbsub"
	"github.com/ausocean/dvbsub/tsdemux"
)

// Logging configuration.
const (
	logPath      = "/var/log/dvbsubd/dvbsubd.log"
	logMaxSize   = 100 // MB
	logMaxBackup = 10
	logMaxAge    = 28 // days
	logVerbosity = logging.Debug
	logSuppress  = false
)

func main() {
	tsPath := flag.String("ts", "", "path to an MPEG-TS file")
	pid := flag.Uint("pid", 0, "PID carrying the DVB subtitle elementary stream")
	pageID := flag.Uint("page", 0, "composition page id of the subtitle service")
	ancillaryPageID := flag.Uint("ancillary-page", 0, "optional ancillary page id whose segments are also accepted")
	flag.Parse()

	fileLog := &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    logMaxSize,
		MaxBackups: logMaxBackup,
		MaxAge:     logMaxAge,
	}
	log := logging.New(logVerbosity, fileLog, logSuppress)

	if *tsPath == "" {
		log.Fatal("no ts file path provided, check usage")
	}

	f, err := os.Open(*tsPath)
	if err != nil {
		log.Fatal("could not open ts file", "error", err)
	}
	defer f.Close()

	cfg := dvbsub.Config{
		PrimaryPageID: uint16(*pageID),
		Log:           logAdapter(log),
		Factory:       dvbsub.DefaultPixelBufferFactory{},
	}
	if *ancillaryPageID != 0 {
		cfg.AncillaryPageID = uint16(*ancillaryPageID)
		cfg.HasAncillary = true
	}
	dec := dvbsub.NewDecoder(cfg)

	units, errs := tsdemux.Extract(f, uint16(*pid))
	for units != nil || errs != nil {
		select {
		case u, ok := <-units:
			if !ok {
				units = nil
				continue
			}
			sp, err := dec.Decode(u)
			if err != nil {
				log.Error("decode failed", "error", err)
				continue
			}
			if sp == nil {
				continue
			}
			log.Info("decoded subpicture",
				"startPTS", sp.StartPTS,
				"stopPTS", sp.StopPTS,
				"regions", len(sp.Regions),
			)
		case err, ok := <-errs:
			if !ok {
				errs = nil
				continue
			}
			log.Error("demux failed", "error", err)
		}
	}
}

// logAdapter bridges the richer logging.Logger interface the rest of the
// AusOcean stack uses to the minimal Log callback dvbsub.Config expects,
// so the decoder package itself stays free of a direct logging dependency.
func logAdapter(l logging.Logger) dvbsub.Log {
	return func(lvl int8, msg string, args ...interface{}) {
		switch lvl {
		case dvbsub.LogLevelError:
			l.Error(msg, args...)
		case dvbsub.LogLevelWarning:
			l.Warning(msg, args...)
		case dvbsub.LogLevelInfo:
			l.Info(msg, args...)
		default:
			l.Debug(msg, args...)
		}
	}
}
