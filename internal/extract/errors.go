package extract

import "errors"

// ErrInvalidDocument is returned when the input cannot be parsed as HTML at
// all (empty or unreadable). It is the engine's only hard failure: every
// other anomaly degrades to a documented default instead.
//
// Callers should test with errors.Is so batch runs can distinguish "page
// had no product" from "page could not be read".
var ErrInvalidDocument = errors.New("invalid document")
