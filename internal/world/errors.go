package world

import "errors"

var (
	// ErrInvalidWorld reports a world description that cannot form a usable
	// grid or instance: bad dimensions, cells out of bounds, a goal or the
	// start on a blocked cell, or too many goals.
	ErrInvalidWorld = errors.New("invalid world")

	// ErrInvalidMap reports map text that cannot be parsed.
	ErrInvalidMap = errors.New("invalid map")

	// ErrUnsupportedFormat reports a world file extension with no loader.
	ErrUnsupportedFormat = errors.New("unsupported world file format")
)
