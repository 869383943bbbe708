package settings

import "errors"

var (
	// ErrUnavailable is returned when the runtime host name cannot be
	// determined and no API base URL can be derived. The error is not
	// recoverable: retrying without a changed environment cannot succeed,
	// so startup must abort or supply an explicit fallback host.
	ErrUnavailable = errors.New("configuration unavailable: runtime host name could not be determined")
	// ErrInvalidRecord is returned when resolved settings violate a
	// validation rule (negative limits, malformed version, empty language).
	ErrInvalidRecord = errors.New("invalid settings record")
)
