package eventemitter

// Subscription identifies one listener registered through Subscribe or Once.
// It only applies to the Emitter that issued it.
type Subscription[K comparable] struct {
	owner     *Emitter[K]
	id        uint64
	eventName K
}

// EventName returns the event the listener was registered for.
func (s Subscription[K]) EventName() K {
	return s.eventName
}
