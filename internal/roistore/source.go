package roistore

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/mmadfox/minigeo"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
)

type Format string

const (
	FormatWKT     Format = "wkt"
	FormatGeoJSON Format = "geojson"
)

// Source is a file of ROIs. An empty Format is taken from the file
// extension: .json and .geojson are GeoJSON, anything else is WKT lines.
type Source struct {
	Path   string `yaml:"path"`
	Format Format `yaml:"format"`
}

func (s Source) format() (Format, error) {
	switch strings.ToLower(string(s.Format)) {
	case string(FormatWKT):
		return FormatWKT, nil
	case string(FormatGeoJSON):
		return FormatGeoJSON, nil
	case "":
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownFormat, s.Format)
	}
	switch strings.ToLower(filepath.Ext(s.Path)) {
	case ".json", ".geojson":
		return FormatGeoJSON, nil
	default:
		return FormatWKT, nil
	}
}

// Load reads every ROI of the source.
func (s Source) Load() ([]minigeo.ROI, error) {
	if len(s.Path) == 0 {
		return nil, ErrPathNotDefined
	}
	format, err := s.format()
	if err != nil {
		return nil, err
	}
	switch format {
	case FormatGeoJSON:
		data, err := os.ReadFile(s.Path)
		if err != nil {
			return nil, err
		}
		rois, err := ReadGeoJSON(data)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", s.Path, err)
		}
		return rois, nil
	default:
		f, err := os.Open(s.Path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		rois, err := ReadWKT(f)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", s.Path, err)
		}
		return rois, nil
	}
}

// LoadSources loads the sources concurrently and concatenates their ROIs in
// the order the sources were given. The first failure cancels the rest.
func LoadSources(ctx context.Context, sources ...Source) ([]minigeo.ROI, error) {
	results := make([][]minigeo.ROI, len(sources))
	group, ctx := errgroup.WithContext(ctx)
	sem := semaphore.NewWeighted(int64(runtime.NumCPU()))
	for i := range sources {
		i := i
		group.Go(func() error {
			if err := sem.Acquire(ctx, 1); err != nil {
				return err
			}
			defer sem.Release(1)
			rois, err := sources[i].Load()
			if err != nil {
				return err
			}
			results[i] = rois
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}
	var total int
	for _, rois := range results {
		total += len(rois)
	}
	rois := make([]minigeo.ROI, 0, total)
	for _, r := range results {
		rois = append(rois, r...)
	}
	return rois, nil
}
