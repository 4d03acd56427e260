package ceremony

import "errors"

var errUnknownPhase = errors.New("ceremony: unknown phase")
