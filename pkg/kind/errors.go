package kind

import "errors"

// ErrUnknownKind is returned when a name does not match any data kind.
var ErrUnknownKind = errors.New("unknown data kind")
