package config

import "errors"

// Validation errors returned (wrapped) by Config.Validate.
var (
	// ErrInvalidDimensions indicates a non-positive display size or cube size.
	ErrInvalidDimensions = errors.New("config: display and cube dimensions must be positive")

	// ErrCameraTooClose indicates points could reach or pass the camera plane.
	ErrCameraTooClose = errors.New("config: camera distance must exceed the rotated cube extent")

	// ErrInvalidScale indicates a non-positive scale, aspect or negative fps.
	ErrInvalidScale = errors.New("config: scale factors must be positive")

	// ErrInvalidBackground indicates a background that is not exactly one glyph.
	ErrInvalidBackground = errors.New("config: background must be a single character")

	ErrUnknownProjection   = errors.New("config: unknown projection")
	ErrUnknownPresentation = errors.New("config: unknown presentation")
	ErrUnknownPreset       = errors.New("config: unknown rotation preset")
	ErrUnknownLayout       = errors.New("config: unknown layout")
	ErrUnknownMethod       = errors.New("config: unknown rotation method")
)
