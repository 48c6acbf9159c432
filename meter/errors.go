package meter

import "errors"

var (
	// ErrUnknownMeter is returned for a Meter key naming no known kind.
	ErrUnknownMeter = errors.New("meter: unknown meter kind")

	// ErrNoMeters is returned by Load for a skin without meters.
	ErrNoMeters = errors.New("meter: skin has no meters")
)
