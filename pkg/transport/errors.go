package transport

import "errors"

// ErrUnknownTransport is returned by New for a kind no sub-package has
// registered (typically because its package was never imported).
var ErrUnknownTransport = errors.New("transport: unknown interface kind")
