package eventemitter

import "reflect"

// Event binds an event name to the payload type its listeners receive.
// Payloads with several values are modelled as a struct.
//
//	var MouseClick = eventemitter.NewEvent[Point]("mouseClick")
//
//	eventemitter.On(em, MouseClick, func(p Point) error { ... })
//	eventemitter.Fire(em, MouseClick, Point{X: 1})
type Event[K comparable, P any] struct {
	Name K
}

func NewEvent[P any, K comparable](name K) Event[K, P] {
	return Event[K, P]{Name: name}
}

// On registers a listener that only accepts payloads of type P.
func On[K comparable, P any](e *Emitter[K], event Event[K, P], listener func(P) error) {
	e.Register(event.Name, bind(event, listener))
}

// OnceOn is On for a listener that runs at most once.
func OnceOn[K comparable, P any](e *Emitter[K], event Event[K, P], listener func(P) error) (Subscription[K], error) {
	return e.Once(event.Name, bind(event, listener))
}

// Fire emits event with a payload the compiler has already checked.
func Fire[K comparable, P any](e *Emitter[K], event Event[K, P], payload P) error {
	return e.Emit(event.Name, payload)
}

// bind adapts a typed listener to the untyped signature. A payload that is not a
// single P, which can only arrive through Emit, returns an InvalidPayloadError.
func bind[K comparable, P any](event Event[K, P], listener func(P) error) Listener {
	if listener == nil {
		return nil
	}

	ptype := reflect.TypeOf((*P)(nil)).Elem()

	return func(payload ...interface{}) error {
		if len(payload) != 1 {
			return InvalidPayloadError{Name: event.Name, Expected: ptype.String(), Got: payload}
		}

		if payload[0] == nil && nillable(ptype) {
			var zero P
			return listener(zero)
		}

		p, ok := payload[0].(P)
		if !ok {
			return InvalidPayloadError{Name: event.Name, Expected: ptype.String(), Got: payload}
		}
		return listener(p)
	}
}

func nillable(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Interface, reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return true
	}
	return false
}
