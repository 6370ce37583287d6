package iso14229

import "errors"

// Programmer errors. These are never signaled on the wire, only returned
// synchronously to the caller that misused the API (see spec §7 regime 1).
var (
	ErrIllegalArgument     = errors.New("iso14229: illegal argument")
	ErrUnknownService      = errors.New("iso14229: unknown service id")
	ErrAlreadyEnabled      = errors.New("iso14229: service already enabled")
	ErrRegistryFull        = errors.New("iso14229: registry is full")
	ErrDuplicateRoutine    = errors.New("iso14229: routine id already registered")
	ErrDownloadHandlerBusy = errors.New("iso14229: download handler already registered")
)
