package apperr

import "errors"

// ErrInvalidInput is returned when a provided input fails validation,
// e.g. a malformed operation:target spec on the scan command.
// Use errors.Is(err, apperr.ErrInvalidInput) to detect validation failures.
var ErrInvalidInput = errors.New("invalid input")

// ErrRequestFailed marks a lookup that failed at the transport level or with a
// non-2xx status. It never crosses the scan package's public boundary directly;
// its message ends up under the "error" key of the returned document.
var ErrRequestFailed = errors.New("request failed")

// ErrDecodeFailed is returned when the server responds with a body that is not
// well-formed JSON. This is the only failure mode the single-call lookups
// surface as a Go error.
var ErrDecodeFailed = errors.New("decoding response failed")
