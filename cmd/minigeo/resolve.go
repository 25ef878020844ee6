package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mmadfox/minigeo"
	"go.uber.org/zap"
)

// resolve reads "lon lat" lines and writes the IDs of the ROIs containing
// each coordinate, comma separated, or "-" when there are none. Malformed
// lines are logged and skipped.
func resolve(r io.Reader, w io.Writer, locator *minigeo.Locator, logger *zap.Logger) error {
	scanner := bufio.NewScanner(r)
	out := bufio.NewWriter(w)
	var lineno int
	for scanner.Scan() {
		lineno++
		line := strings.TrimSpace(scanner.Text())
		if len(line) == 0 {
			continue
		}
		c, err := parseLonLat(line)
		if err != nil {
			logger.Warn("skip line", zap.Int("line", lineno), zap.Error(err))
			continue
		}
		rois := locator.Locate(c)
		ids := "-"
		if len(rois) > 0 {
			names := make([]string, len(rois))
			for i, roi := range rois {
				names[i] = roi.ID
			}
			ids = strings.Join(names, ",")
		}
		if _, err := fmt.Fprintf(out, "%s\t%s\n", line, ids); err != nil {
			return err
		}
		if err := out.Flush(); err != nil {
			return err
		}
	}
	return scanner.Err()
}

func parseLonLat(line string) (minigeo.Coordinate, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return minigeo.Coordinate{}, fmt.Errorf("want 2 values, got %d", len(fields))
	}
	lon, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return minigeo.Coordinate{}, err
	}
	lat, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return minigeo.Coordinate{}, err
	}
	return minigeo.FromLonLat(lon, lat), nil
}
