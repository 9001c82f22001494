package inspect

import "errors"

// ErrUnknownType is returned by Lookup when no descriptor was registered
// for the requested identifier.
var ErrUnknownType = errors.New("inspect: unknown type")
