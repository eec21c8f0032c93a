// Package axidraw drives an AxiDraw pen plotter through the EiBotBoard
// (EBB) serial command set. It implements the plotter.Plotter capability:
// every motion is recorded exactly as the in-memory mock records it, with
// the alignment offset applied before the position reaches the path log
// and the hardware.
package axidraw

import (
	"fmt"
	"math"
	"strings"

	"plotstudio/geom"
	"plotstudio/plotter"
	"plotstudio/serial"
)

// Config holds the hardware parameters of an AxiDraw connection.
type Config struct {
	// Serial is the port configuration.
	Serial *serial.Config

	// StepsPerUnit converts plotter units to motor steps. The stock
	// AxiDraw runs 2032 steps per inch at 16x microstepping.
	StepsPerUnit float64

	// Speed is the travel speed in plotter units per second, used to
	// derive SM move durations.
	Speed float64

	// PenDelayMS is the servo settle time passed to SP commands.
	PenDelayMS int
}

// DefaultConfig returns the stock AxiDraw configuration for a device path.
func DefaultConfig(device string) Config {
	return Config{
		Serial:       serial.DefaultConfig(device),
		StepsPerUnit: 2032, // 16x microstepping, inches
		Speed:        2.0,
		PenDelayMS:   300,
	}
}

// Plotter is a hardware-backed plotter.Plotter. It is single-owner and
// not safe for concurrent use.
type Plotter struct {
	cfg     Config
	port    serial.Port
	rec     plotter.Recorder
	version string
}

// Connect opens the serial port, identifies the board and enables the
// motors. The returned plotter starts at the origin with the pen up; home
// the carriage before connecting.
func Connect(cfg Config) (*Plotter, error) {
	port, err := serial.Open(cfg.Serial)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to plotter: %w", err)
	}

	p, err := New(port, cfg)
	if err != nil {
		port.Close()
		return nil, err
	}
	return p, nil
}

// New wraps an already open port. It queries the board version and
// enables both motors at 16x microstepping.
func New(port serial.Port, cfg Config) (*Plotter, error) {
	p := &Plotter{cfg: cfg, port: port}

	version, err := p.query("V")
	if err != nil {
		return nil, fmt.Errorf("failed to identify EBB: %w", err)
	}
	p.version = version

	if err := p.command("EM,1,1"); err != nil {
		return nil, fmt.Errorf("failed to enable motors: %w", err)
	}
	return p, nil
}

// Version returns the EBB firmware version string reported at connect.
func (p *Plotter) Version() string {
	return p.version
}

// Close disables the motors and closes the serial port.
func (p *Plotter) Close() error {
	cmdErr := p.command("EM,0,0")
	if err := p.port.Close(); err != nil {
		return err
	}
	return cmdErr
}

// PenUp raises the pen.
func (p *Plotter) PenUp() error {
	if err := p.command(fmt.Sprintf("SP,1,%d", p.cfg.PenDelayMS)); err != nil {
		return fmt.Errorf("pen up: %w", err)
	}
	p.rec.SetPen(plotter.Up)
	return nil
}

// PenDown lowers the pen.
func (p *Plotter) PenDown() error {
	if err := p.command(fmt.Sprintf("SP,0,%d", p.cfg.PenDelayMS)); err != nil {
		return fmt.Errorf("pen down: %w", err)
	}
	p.rec.SetPen(plotter.Down)
	return nil
}

// SetPenState sets the pen state directly.
func (p *Plotter) SetPenState(s plotter.PenState) error {
	if s == plotter.Down {
		return p.PenDown()
	}
	return p.PenUp()
}

// MoveTo moves to a global position without changing the pen state. The
// alignment offset is applied first; the adjusted position is recorded
// and sent to the board.
func (p *Plotter) MoveTo(dst geom.Vec2) error {
	from := p.rec.Pos()
	adjusted := p.rec.Move(dst)
	delta := adjusted.Sub(from)

	// The AxiDraw uses mixed-axis geometry: motor 1 drives x+y and
	// motor 2 drives x-y.
	m1 := int(math.Round((delta.X + delta.Y) * p.cfg.StepsPerUnit))
	m2 := int(math.Round((delta.X - delta.Y) * p.cfg.StepsPerUnit))
	if m1 == 0 && m2 == 0 {
		return nil
	}

	duration := int(math.Round(delta.Length() / p.cfg.Speed * 1000))
	if duration < 1 {
		duration = 1
	}

	if err := p.command(fmt.Sprintf("SM,%d,%d,%d", duration, m1, m2)); err != nil {
		return fmt.Errorf("move to (%g,%g): %w", adjusted.X, adjusted.Y, err)
	}
	return nil
}

// LineTo lowers the pen and moves.
func (p *Plotter) LineTo(dst geom.Vec2) error {
	if err := p.PenDown(); err != nil {
		return err
	}
	return p.MoveTo(dst)
}

// Pos returns the current device-true position.
func (p *Plotter) Pos() geom.Vec2 {
	return p.rec.Pos()
}

// State returns the current pen state.
func (p *Plotter) State() plotter.PenState {
	return p.rec.State()
}

// Path returns the recorded motion history.
func (p *Plotter) Path() []plotter.Segment {
	return p.rec.Path()
}

// SetAlignmentOffsets sets the additive position correction.
func (p *Plotter) SetAlignmentOffsets(v geom.Vec2) {
	p.rec.SetAlignmentOffsets(v)
}

// ResetAlignmentOffsets clears the position correction.
func (p *Plotter) ResetAlignmentOffsets() {
	p.rec.ResetAlignmentOffsets()
}

// command sends one EBB command and consumes the OK acknowledgment.
func (p *Plotter) command(cmd string) error {
	if _, err := p.query(cmd); err != nil {
		return err
	}
	return nil
}

// query sends one EBB command and returns the response line. EBB error
// responses start with '!'.
func (p *Plotter) query(cmd string) (string, error) {
	if _, err := p.port.Write([]byte(cmd + "\r")); err != nil {
		return "", fmt.Errorf("write %q: %w", cmd, err)
	}
	line, err := p.readLine()
	if err != nil {
		return "", fmt.Errorf("response to %q: %w", cmd, err)
	}
	if strings.HasPrefix(line, "!") {
		return "", fmt.Errorf("EBB error for %q: %s", cmd, line)
	}
	return line, nil
}

// readLine reads one CRLF-terminated response line.
func (p *Plotter) readLine() (string, error) {
	var buf []byte
	b := make([]byte, 1)
	for {
		n, err := p.port.Read(b)
		if err != nil {
			return "", err
		}
		if n == 0 {
			return "", fmt.Errorf("timeout after %d bytes", len(buf))
		}
		if b[0] == '\n' {
			return string(buf), nil
		}
		if b[0] != '\r' {
			buf = append(buf, b[0])
		}
	}
}
