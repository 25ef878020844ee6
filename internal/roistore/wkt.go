package roistore

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/mmadfox/minigeo"
	"github.com/rs/xid"
)

const maxLineSize = 16 * 1024 * 1024

// ReadWKT reads one POLYGON or MULTIPOLYGON per line. A line may start with
// an ID followed by a tab; lines without one get a generated ID. Blank lines
// and lines starting with # are skipped.
func ReadWKT(r io.Reader) ([]minigeo.ROI, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	rois := make([]minigeo.ROI, 0, 16)
	var lineno int
	for scanner.Scan() {
		lineno++
		line := strings.TrimSpace(scanner.Text())
		if len(line) == 0 || strings.HasPrefix(line, "#") {
			continue
		}
		id, text := splitWKTLine(line)
		geom, err := minigeo.ParseWKT(text)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineno, err)
		}
		if len(id) == 0 {
			id = xid.New().String()
		}
		rois = append(rois, minigeo.ROI{ID: id, Geometry: geom})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return rois, nil
}

func splitWKTLine(line string) (id, text string) {
	i := strings.IndexByte(line, '\t')
	if i < 0 {
		return "", line
	}
	prefix := strings.TrimSpace(line[:i])
	if _, found := minigeo.LookupKeyword(prefix); found {
		return "", line
	}
	return prefix, line[i+1:]
}

// WriteWKT writes rois in the format ReadWKT reads.
func WriteWKT(w io.Writer, rois []minigeo.ROI) error {
	bw := bufio.NewWriter(w)
	for _, roi := range rois {
		text, err := wktOf(roi)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(bw, "%s\t%s\n", roi.ID, text); err != nil {
			return err
		}
	}
	return bw.Flush()
}

type wktWriter interface {
	WKT() string
}

func wktOf(roi minigeo.ROI) (string, error) {
	w, ok := roi.Geometry.(wktWriter)
	if !ok {
		return "", fmt.Errorf("%w: %s is %v", ErrSnapshotGeometry, roi.ID, kindOf(roi.Geometry))
	}
	if mp, ok := roi.Geometry.(*minigeo.MultiPolygon); ok && mp.IsEmpty() {
		return "", fmt.Errorf("%w: %s is empty", ErrSnapshotGeometry, roi.ID)
	}
	return w.WKT(), nil
}

func kindOf(g minigeo.Geometry) minigeo.Kind {
	if g == nil {
		return minigeo.UnknownKind
	}
	return g.Kind()
}
