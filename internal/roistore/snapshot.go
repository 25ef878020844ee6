package roistore

import (
	"fmt"
	"io"

	"github.com/mmadfox/minigeo"
	"github.com/mmadfox/minigeo/internal/hash"
	"github.com/vmihailenco/msgpack/v5"
)

const SnapshotVersion = 1

type snapshot struct {
	Version  int      `msgpack:"v"`
	Checksum uint64   `msgpack:"c"`
	Records  []record `msgpack:"r"`
}

type record struct {
	ID  string `msgpack:"id"`
	WKT string `msgpack:"wkt"`
}

func checksum(records []record) uint64 {
	fields := make([]string, 0, 2*len(records))
	for _, r := range records {
		fields = append(fields, r.ID, r.WKT)
	}
	return hash.Fields(fields...)
}

// WriteSnapshot encodes rois with msgpack. Only polygons and multipolygons
// can be written.
func WriteSnapshot(w io.Writer, rois []minigeo.ROI) error {
	snap := snapshot{
		Version: SnapshotVersion,
		Records: make([]record, len(rois)),
	}
	for i, roi := range rois {
		text, err := wktOf(roi)
		if err != nil {
			return err
		}
		snap.Records[i] = record{ID: roi.ID, WKT: text}
	}
	snap.Checksum = checksum(snap.Records)
	return msgpack.NewEncoder(w).Encode(&snap)
}

// ReadSnapshot decodes a snapshot written by WriteSnapshot.
func ReadSnapshot(r io.Reader) ([]minigeo.ROI, error) {
	var snap snapshot
	if err := msgpack.NewDecoder(r).Decode(&snap); err != nil {
		return nil, err
	}
	if snap.Version != SnapshotVersion {
		return nil, fmt.Errorf("%w: %d", ErrSnapshotVersion, snap.Version)
	}
	if checksum(snap.Records) != snap.Checksum {
		return nil, ErrSnapshotChecksum
	}
	rois := make([]minigeo.ROI, len(snap.Records))
	for i, rec := range snap.Records {
		geom, err := minigeo.ParseWKT(rec.WKT)
		if err != nil {
			return nil, fmt.Errorf("record %s: %w", rec.ID, err)
		}
		rois[i] = minigeo.ROI{ID: rec.ID, Geometry: geom}
	}
	return rois, nil
}
