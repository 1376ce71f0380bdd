package unravel

// Cloner allows record types to provide deep copy logic.
// Implementing this interface is required for use with Processor.
//
// Apply decodes a clone, so the Clone method must return a copy whose
// slices and maps are not shared with the receiver:
//
//	func (e Event) Clone() Event {
//	    args := make([]string, len(e.Args))
//	    copy(args, e.Args)
//	    return Event{ID: e.ID, Args: args}
//	}
//
// Types with only value fields can return the receiver:
//
//	func (e Event) Clone() Event { return e }
type Cloner[T any] interface {
	Clone() T
}
