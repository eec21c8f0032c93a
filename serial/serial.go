package serial

import (
	"io"
)

// Port represents a serial port interface
// This abstraction allows for different implementations:
// - Native serial (using github.com/tarm/serial)
// - Fake port (for testing the hardware adapter without a plotter)
type Port interface {
	io.ReadWriteCloser

	// Flush flushes any buffered data
	Flush() error
}

// Config holds serial port configuration
type Config struct {
	// Device path (e.g., "/dev/ttyACM0", "COM3")
	Device string

	// Baud rate (the EBB is USB CDC, so the rate is nominal)
	Baud int

	// Read timeout in milliseconds (0 = blocking)
	ReadTimeout int
}

// DefaultConfig returns a default configuration for an EiBotBoard plotter
func DefaultConfig(device string) *Config {
	return &Config{
		Device:      device,
		Baud:        9600, // Ignored by USB CDC, kept for RS-232 bridges
		ReadTimeout: 2000, // EBB acks are immediate; 2s covers long moves
	}
}
