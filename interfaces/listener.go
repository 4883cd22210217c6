package interfaces

// Listener is invoked with the payload an event was emitted with.
// A non-nil error aborts delivery to the listeners registered after it.
type Listener func(payload ...interface{}) error
