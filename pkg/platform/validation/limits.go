package validation

// Request-level bounds, checked before any domain parsing.
const (
	MinRequestIDLength    = 3
	MaxRequestIDLength    = 100
	MinRequestEmailLength = 3
	MaxRequestEmailLength = 255
)
