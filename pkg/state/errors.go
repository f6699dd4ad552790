package state

import "errors"

// ErrNormalization marks vendor payloads that could not be reduced to
// canonical form. The engine records the device as incomplete and moves
// on; absent optional data never raises it.
var ErrNormalization = errors.New("normalization failed")
