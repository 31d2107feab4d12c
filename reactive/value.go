// Package reactive holds values that notify subscribers when they change.
package reactive

import "sync"

// Value is a reactive value with a single writer and any number of readers.
type Value[T comparable] struct {
	mu     sync.RWMutex
	value  T
	set    bool
	nextID int
	subs   map[int]func(T)
}

// NewValue creates a Value that starts unset.
func NewValue[T comparable]() *Value[T] {
	return &Value[T]{subs: make(map[int]func(T))}
}

// Get returns the current value and whether it has ever been set.
func (v *Value[T]) Get() (T, bool) {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.value, v.set
}

// Set stores x and notifies subscribers, unless x equals the current value.
// It reports whether the value changed.
func (v *Value[T]) Set(x T) bool {
	v.mu.Lock()
	if v.set && v.value == x {
		v.mu.Unlock()
		return false
	}
	v.value = x
	v.set = true
	subs := make([]func(T), 0, len(v.subs))
	for id := 0; id < v.nextID; id++ {
		if fn, ok := v.subs[id]; ok {
			subs = append(subs, fn)
		}
	}
	v.mu.Unlock()

	for _, fn := range subs {
		fn(x)
	}
	return true
}

// Subscribe registers fn to run after every change, in subscription order.
// The returned func unsubscribes; calling it more than once is harmless.
func (v *Value[T]) Subscribe(fn func(T)) (unsubscribe func()) {
	v.mu.Lock()
	defer v.mu.Unlock()
	id := v.nextID
	v.nextID++
	v.subs[id] = fn

	return func() {
		v.mu.Lock()
		defer v.mu.Unlock()
		delete(v.subs, id)
	}
}

// Reset drops every subscriber.
func (v *Value[T]) Reset() {
	v.mu.Lock()
	defer v.mu.Unlock()
	clear(v.subs)
}
