package main

import (
	"context"
	"errors"
	"os"

	"github.com/mmadfox/minigeo"
	"github.com/mmadfox/minigeo/internal/config"
	"github.com/mmadfox/minigeo/internal/roistore"
	"go.uber.org/zap"
)

// loadROIs prefers the snapshot when one exists. Otherwise the sources are
// read and, if configured, written to the snapshot path.
func loadROIs(ctx context.Context, conf *config.Config, logger *zap.Logger) ([]minigeo.ROI, error) {
	if path := conf.Snapshot.Path; len(path) > 0 {
		f, err := os.Open(path)
		switch {
		case err == nil:
			defer f.Close()
			rois, err := roistore.ReadSnapshot(f)
			if err != nil {
				return nil, err
			}
			logger.Info("rois restored from snapshot",
				zap.String("path", path),
				zap.Int("rois", len(rois)))
			return rois, nil
		case !errors.Is(err, os.ErrNotExist) || len(conf.Sources) == 0:
			return nil, err
		}
	}

	rois, err := roistore.LoadSources(ctx, conf.Sources...)
	if err != nil {
		return nil, err
	}
	logger.Info("rois loaded from sources",
		zap.Int("sources", len(conf.Sources)),
		zap.Int("rois", len(rois)))

	if conf.Snapshot.Write && len(conf.Snapshot.Path) > 0 {
		if err := writeSnapshot(conf.Snapshot.Path, rois); err != nil {
			return nil, err
		}
		logger.Info("snapshot written", zap.String("path", conf.Snapshot.Path))
	}
	return rois, nil
}

func writeSnapshot(path string, rois []minigeo.ROI) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := roistore.WriteSnapshot(f, rois); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return err
	}
	return f.Close()
}
