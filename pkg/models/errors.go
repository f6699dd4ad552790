package models

import "errors"

// ErrConfig marks configuration faults: invalid design documents,
// duplicate check registrations, unrecognized product models. The engine
// aborts the whole run when it sees one.
var ErrConfig = errors.New("configuration error")
