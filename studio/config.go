package studio

import (
	"encoding/json"
	"fmt"

	"plotstudio/geom"
	"plotstudio/objects"
	"plotstudio/plotter"
)

// Point is the JSON form of a 2D point.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Vec converts to a geometry vector.
func (p Point) Vec() geom.Vec2 {
	return geom.V(p.X, p.Y)
}

// CanvasConfig describes one canvas placement.
type CanvasConfig struct {
	Size  Point `json:"size"`
	Start Point `json:"start"`
	End   Point `json:"end"`
}

// CleanerConfig describes one brush cleaner fixture.
type CleanerConfig struct {
	Pos    Point   `json:"pos"`
	Radius float64 `json:"radius"`
}

// PlotterConfig holds the hardware connection settings.
type PlotterConfig struct {
	Device       string  `json:"device"`
	StepsPerUnit float64 `json:"steps_per_unit"`
	Speed        float64 `json:"speed"`
	PenDelayMS   int     `json:"pen_delay_ms"`
}

// Config is the JSON studio description.
type Config struct {
	WorkingMin  Point                    `json:"working_min"`
	WorkingMax  Point                    `json:"working_max"`
	Plotter     PlotterConfig            `json:"plotter"`
	Canvases    map[string]CanvasConfig  `json:"canvases"`
	Cleaners    map[string]CleanerConfig `json:"cleaners"`
	OffsetsFile string                   `json:"offsets_file,omitempty"`
}

// LoadConfig parses a JSON configuration and applies defaults.
func LoadConfig(jsonData []byte) (*Config, error) {
	var config Config

	if err := json.Unmarshal(jsonData, &config); err != nil {
		return nil, err
	}

	applyDefaults(&config)

	return &config, nil
}

// applyDefaults fills in missing configuration values with sensible defaults
func applyDefaults(config *Config) {
	if config.WorkingMax.X == 0 && config.WorkingMax.Y == 0 {
		config.WorkingMax = Point{X: 6, Y: 4} // AxiDraw V3 bed, inches
	}
	if config.Plotter.Device == "" {
		config.Plotter.Device = "/dev/ttyACM0"
	}
	if config.Plotter.StepsPerUnit == 0 {
		config.Plotter.StepsPerUnit = 2032
	}
	if config.Plotter.Speed == 0 {
		config.Plotter.Speed = 2.0
	}
	if config.Plotter.PenDelayMS == 0 {
		config.Plotter.PenDelayMS = 300
	}
}

// DefaultConfig returns the configuration for a bare AxiDraw with no
// objects placed.
func DefaultConfig() *Config {
	config := &Config{}
	applyDefaults(config)
	return config
}

// Build constructs a studio on the given plotter from the configuration:
// working area, canvases, cleaners, and the persisted alignment offset if
// an offsets file is configured.
func (c *Config) Build(p plotter.Plotter) (*Studio, error) {
	s := New(p)
	s.SetWorkingArea(c.WorkingMin.Vec(), c.WorkingMax.Vec())

	for name, cc := range c.Canvases {
		canvas, err := objects.NewCanvas(cc.Size.Vec(), cc.Start.Vec(), cc.End.Vec())
		if err != nil {
			return nil, fmt.Errorf("canvas %q: %w", name, err)
		}
		s.Add(canvas, name)
	}
	for name, cc := range c.Cleaners {
		s.Add(objects.NewBrushCleaner(cc.Pos.Vec(), cc.Radius), name)
	}

	if c.OffsetsFile != "" {
		offset, err := LoadOffsets(c.OffsetsFile)
		if err != nil {
			return nil, fmt.Errorf("offsets file %s: %w", c.OffsetsFile, err)
		}
		p.SetAlignmentOffsets(offset)
	}

	return s, nil
}
