package renderer

import "errors"

var (
	ErrInvalidWidth         = errors.New("renderer: image width must be positive")
	ErrInvalidAspectRatio   = errors.New("renderer: aspect ratio must be positive")
	ErrInvalidSamples       = errors.New("renderer: samples per pixel must be positive")
	ErrInvalidBounces       = errors.New("renderer: max bounces must be positive")
	ErrInvalidFOV           = errors.New("renderer: vertical fov must be in (0, 180) degrees")
	ErrInvalidFocusDistance = errors.New("renderer: focus distance must be positive")
	ErrDegenerateView       = errors.New("renderer: look-from and look-at must differ")
	ErrDegenerateUp         = errors.New("renderer: up vector must not be parallel to the view direction")
	ErrInvalidWorkers       = errors.New("renderer: worker count must not be negative")
)
