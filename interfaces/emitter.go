package interfaces

// Emitter dispatches payloads to the listeners registered for an event name.
type Emitter[K comparable] interface {
	Register(eventName K, listener Listener)
	Emit(eventName K, payload ...interface{}) error
}
