package unravel

// Decodable bypasses reflection for decode tags.
// When a record type implements it, Processor calls DecodeFields instead of
// walking the struct's decode tags.
type Decodable interface {
	// DecodeFields transforms the receiver's encoded fields using e.
	// The receiver is either freshly unmarshaled or a clone, so mutations are safe.
	DecodeFields(e *Engine) error
}
