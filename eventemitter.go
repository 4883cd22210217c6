// Package eventemitter registers listeners against event names and invokes them,
// synchronously and in registration order, when an event is emitted.
//
//	em := eventemitter.New[string](log)
//	em.Register("mouseClick", func(payload ...interface{}) error {
//		fmt.Println(payload...)
//		return nil
//	})
//	err := em.Emit("mouseClick", Point{X: 1})
//
// Emitting a name that was never registered returns an UnregisteredEventError.
// A listener error is returned unmodified and the listeners after it are skipped.
//
// Emit works on a snapshot of the listeners taken before the first one runs, so a
// listener that registers or removes listeners for the event being emitted only
// affects the next Emit. Once listeners are the exception: one removed before it is
// reached is not called.
package eventemitter

import (
	"sync"

	I "github.com/compozed/eventemitter/interfaces"
	"github.com/compozed/eventemitter/logger"
)

// Listener is the untyped listener signature.
type Listener = I.Listener

type entry struct {
	id       uint64
	listener Listener
	once     bool
}

// Emitter has an ordered sequence of listeners for each registered event name.
type Emitter[K comparable] struct {
	mu        sync.Mutex
	listeners map[K][]entry
	names     []K
	nextID    uint64
	Log       I.Logger
}

// New returns an empty Emitter. A nil log discards everything.
func New[K comparable](log I.Logger) *Emitter[K] {
	if log == nil {
		log = logger.Discard
	}
	return &Emitter[K]{
		listeners: make(map[K][]entry),
		Log:       log,
	}
}

// Register appends listener to the listeners of eventName.
// The event name is registered even if listener is nil.
func (e *Emitter[K]) Register(eventName K, listener Listener) {
	e.add(eventName, listener, false)
}

// Subscribe is Register returning a Subscription that can be passed to Unsubscribe.
func (e *Emitter[K]) Subscribe(eventName K, listener Listener) (Subscription[K], error) {
	if listener == nil {
		return Subscription[K]{}, InvalidListenerError{}
	}
	return e.add(eventName, listener, false), nil
}

// Once registers a listener that is removed right before it is called, so it runs
// exactly once: on the first Emit of eventName that reaches it.
func (e *Emitter[K]) Once(eventName K, listener Listener) (Subscription[K], error) {
	if listener == nil {
		return Subscription[K]{}, InvalidListenerError{}
	}
	return e.add(eventName, listener, true), nil
}

// Emit calls every listener of eventName with payload, in the order they were registered.
// It stops at the first listener that returns an error and returns that error.
func (e *Emitter[K]) Emit(eventName K, payload ...interface{}) error {
	entries, ok := e.snapshot(eventName)
	if !ok {
		return UnregisteredEventError{Name: eventName}
	}

	for _, ent := range entries {
		// a re-entrant Emit may already have called it
		if ent.once && !e.removeID(eventName, ent.id) {
			continue
		}
		if err := ent.listener(payload...); err != nil {
			return err
		}
	}

	e.Log.Debugf("a %v event has been emitted", eventName)
	return nil
}

// Unsubscribe removes the listener behind sub. The event name stays registered.
// A Subscription issued by another Emitter removes nothing.
func (e *Emitter[K]) Unsubscribe(sub Subscription[K]) bool {
	if sub.owner != e {
		return false
	}
	if !e.removeID(sub.eventName, sub.id) {
		return false
	}
	e.Log.Debugf("listener for [%v] event removed", sub.eventName)
	return true
}

// Off removes every listener of eventName and reports whether there were any.
// The event name stays registered, so emitting it afterwards is not an error.
func (e *Emitter[K]) Off(eventName K) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	entries, ok := e.listeners[eventName]
	if !ok {
		return false
	}
	e.listeners[eventName] = []entry{}
	e.Log.Debugf("all listeners for [%v] event removed", eventName)
	return len(entries) > 0
}

// IsRegistered reports whether eventName was ever passed to a registering method.
func (e *Emitter[K]) IsRegistered(eventName K) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	_, ok := e.listeners[eventName]
	return ok
}

// ListenerCount returns how many listeners eventName currently has.
func (e *Emitter[K]) ListenerCount(eventName K) int {
	e.mu.Lock()
	defer e.mu.Unlock()

	return len(e.listeners[eventName])
}

// EventNames returns the registered event names in the order they were first registered.
func (e *Emitter[K]) EventNames() []K {
	e.mu.Lock()
	defer e.mu.Unlock()

	names := make([]K, len(e.names))
	copy(names, e.names)
	return names
}

func (e *Emitter[K]) add(eventName K, listener Listener, once bool) Subscription[K] {
	e.mu.Lock()
	defer e.mu.Unlock()

	entries, ok := e.listeners[eventName]
	if !ok {
		entries = []entry{}
		e.names = append(e.names, eventName)
	}

	if listener == nil {
		e.listeners[eventName] = entries
		e.Log.Debugf("[%v] event registered without a listener", eventName)
		return Subscription[K]{owner: e, eventName: eventName}
	}

	e.nextID++
	e.listeners[eventName] = append(entries, entry{id: e.nextID, listener: listener, once: once})
	e.Log.Debugf("listener for [%v] event added successfully", eventName)

	return Subscription[K]{owner: e, id: e.nextID, eventName: eventName}
}

// snapshot copies the entries of eventName so listeners can run without the lock.
func (e *Emitter[K]) snapshot(eventName K) ([]entry, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	entries, ok := e.listeners[eventName]
	if !ok {
		return nil, false
	}

	snapshot := make([]entry, len(entries))
	copy(snapshot, entries)
	return snapshot, true
}

func (e *Emitter[K]) removeID(eventName K, id uint64) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	entries := e.listeners[eventName]
	for i, ent := range entries {
		if ent.id == id {
			e.listeners[eventName] = remove(entries, i)
			return true
		}
	}
	return false
}

func remove(entries []entry, i int) []entry {
	kept := make([]entry, 0, len(entries)-1)
	kept = append(kept, entries[:i]...)
	return append(kept, entries[i+1:]...)
}
