package roistore

import "errors"

var (
	ErrUnknownFormat    = errors.New("roistore/source: unknown format")
	ErrPathNotDefined   = errors.New("roistore/source: path not defined")
	ErrInvalidFeature   = errors.New("roistore/geojson: invalid feature")
	ErrSnapshotChecksum = errors.New("roistore/snapshot: checksum mismatch")
	ErrSnapshotVersion  = errors.New("roistore/snapshot: unsupported version")
	ErrSnapshotGeometry = errors.New("roistore/snapshot: geometry has no WKT form")
)
