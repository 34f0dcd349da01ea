package desktop

import "errors"

// Build failures. Callers check them with errors.Is and render nothing.
var (
	ErrParse             = errors.New("layout document could not be parsed")
	ErrMissingField      = errors.New("layout document is missing a required field")
	ErrDesktopNotFound   = errors.New("desktop not found")
	ErrNoViewGroups      = errors.New("layout document declares no view groups")
	ErrDanglingReference = errors.New("layout document has dangling references")
)
