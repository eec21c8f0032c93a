package studio

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"plotstudio/geom"
)

// SaveOffsets writes an alignment offset to a two-column CSV file, the
// format the alignment wizard produces.
func SaveOffsets(path string, offset geom.Vec2) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create offsets file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{
		strconv.FormatFloat(offset.X, 'f', -1, 64),
		strconv.FormatFloat(offset.Y, 'f', -1, 64),
	}); err != nil {
		return fmt.Errorf("failed to write offsets: %w", err)
	}
	w.Flush()
	return w.Error()
}

// LoadOffsets reads an alignment offset from a two-column CSV file.
func LoadOffsets(path string) (geom.Vec2, error) {
	f, err := os.Open(path)
	if err != nil {
		return geom.Vec2{}, fmt.Errorf("failed to open offsets file: %w", err)
	}
	defer f.Close()

	record, err := csv.NewReader(f).Read()
	if err != nil {
		return geom.Vec2{}, fmt.Errorf("failed to read offsets: %w", err)
	}
	if len(record) != 2 {
		return geom.Vec2{}, fmt.Errorf("offsets file has %d columns, want 2", len(record))
	}

	x, err := strconv.ParseFloat(record[0], 64)
	if err != nil {
		return geom.Vec2{}, fmt.Errorf("bad x offset %q: %w", record[0], err)
	}
	y, err := strconv.ParseFloat(record[1], 64)
	if err != nil {
		return geom.Vec2{}, fmt.Errorf("bad y offset %q: %w", record[1], err)
	}
	return geom.V(x, y), nil
}
