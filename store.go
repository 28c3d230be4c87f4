package displayfmt

import "sync"

// Readable exposes a value that can be read and observed
type Readable[T any] interface {
	// Get returns the current value
	Get() T
	// Subscribe calls fn with the current value and again after every change.
	// The returned func removes the subscription.
	Subscribe(fn func(T)) (unsubscribe func())
}

// Dependency is anything a Derived value can recompute from
type Dependency interface {
	// OnChange registers fn to run after the value changes, without an initial call
	OnChange(fn func()) (unsubscribe func())
}

type subscriber[T any] struct {
	id uint64
	fn func(T)
}

// subscribers is not safe on its own; owners guard it with their mutex.
type subscribers[T any] struct {
	next    uint64
	entries []subscriber[T]
}

func (s *subscribers[T]) add(fn func(T)) uint64 {
	s.next++
	s.entries = append(s.entries, subscriber[T]{id: s.next, fn: fn})
	return s.next
}

func (s *subscribers[T]) remove(id uint64) {
	for i, entry := range s.entries {
		if entry.id == id {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			return
		}
	}
}

func (s *subscribers[T]) snapshot() []func(T) {
	if len(s.entries) == 0 {
		return nil
	}
	out := make([]func(T), len(s.entries))
	for i, entry := range s.entries {
		out[i] = entry.fn
	}
	return out
}

func notify[T any](fns []func(T), value T) {
	for _, fn := range fns {
		fn(value)
	}
}

// Store is a writable observable value. Subscribers run synchronously on the
// goroutine that performed the write, after the lock is released.
type Store[T any] struct {
	mu    sync.RWMutex
	value T
	equal func(a, b T) bool
	subs  subscribers[T]
}

var _ Readable[int] = &Store[int]{}
var _ Dependency = &Store[int]{}

// NewStore builds a store that notifies on every Set.
func NewStore[T any](initial T) *Store[T] {
	return &Store[T]{value: initial}
}

// NewComparableStore builds a store that skips notifications when the new
// value equals the current one.
func NewComparableStore[T comparable](initial T) *Store[T] {
	return &Store[T]{
		value: initial,
		equal: func(a, b T) bool { return a == b },
	}
}

// Get returns the current value
func (s *Store[T]) Get() T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.value
}

// Set replaces the value and notifies subscribers
func (s *Store[T]) Set(value T) {
	s.mu.Lock()
	if s.equal != nil && s.equal(s.value, value) {
		s.mu.Unlock()
		return
	}
	s.value = value
	fns := s.subs.snapshot()
	s.mu.Unlock()

	notify(fns, value)
}

// Update sets the value to fn(current)
func (s *Store[T]) Update(fn func(T) T) {
	if fn == nil {
		return
	}
	s.Set(fn(s.Get()))
}

// Subscribe implements Readable
func (s *Store[T]) Subscribe(fn func(T)) func() {
	if fn == nil {
		return func() {}
	}

	s.mu.Lock()
	id := s.subs.add(fn)
	current := s.value
	s.mu.Unlock()

	fn(current)

	return s.unsubscriber(id)
}

// OnChange implements Dependency
func (s *Store[T]) OnChange(fn func()) func() {
	if fn == nil {
		return func() {}
	}

	s.mu.Lock()
	id := s.subs.add(func(T) { fn() })
	s.mu.Unlock()

	return s.unsubscriber(id)
}

func (s *Store[T]) unsubscriber(id uint64) func() {
	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			s.subs.remove(id)
			s.mu.Unlock()
		})
	}
}

// Derived is a read only value recomputed whenever one of its dependencies
// changes. Readers keep seeing the previous value until the new one is ready.
type Derived[T any] struct {
	mu      sync.RWMutex
	compute func() T
	value   T
	subs    subscribers[T]
	unsubs  []func()
	closed  bool
}

var _ Readable[int] = &Derived[int]{}
var _ Dependency = &Derived[int]{}

// Derive computes an initial value and subscribes to deps for recomputation
func Derive[T any](compute func() T, deps ...Dependency) *Derived[T] {
	d := &Derived[T]{compute: compute}
	d.value = compute()

	for _, dep := range deps {
		if dep == nil {
			continue
		}
		d.unsubs = append(d.unsubs, dep.OnChange(d.refresh))
	}

	return d
}

func (d *Derived[T]) refresh() {
	d.mu.RLock()
	closed := d.closed
	d.mu.RUnlock()
	if closed {
		return
	}

	value := d.compute()

	d.mu.Lock()
	d.value = value
	fns := d.subs.snapshot()
	d.mu.Unlock()

	notify(fns, value)
}

// Get returns the latest computed value
func (d *Derived[T]) Get() T {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.value
}

// Subscribe implements Readable
func (d *Derived[T]) Subscribe(fn func(T)) func() {
	if fn == nil {
		return func() {}
	}

	d.mu.Lock()
	id := d.subs.add(fn)
	current := d.value
	d.mu.Unlock()

	fn(current)

	return d.unsubscriber(id)
}

// OnChange implements Dependency
func (d *Derived[T]) OnChange(fn func()) func() {
	if fn == nil {
		return func() {}
	}

	d.mu.Lock()
	id := d.subs.add(func(T) { fn() })
	d.mu.Unlock()

	return d.unsubscriber(id)
}

// Close detaches the value from its dependencies. The last value stays readable.
func (d *Derived[T]) Close() {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return
	}
	d.closed = true
	unsubs := d.unsubs
	d.unsubs = nil
	d.mu.Unlock()

	for _, unsubscribe := range unsubs {
		unsubscribe()
	}
}

func (d *Derived[T]) unsubscriber(id uint64) func() {
	var once sync.Once
	return func() {
		once.Do(func() {
			d.mu.Lock()
			d.subs.remove(id)
			d.mu.Unlock()
		})
	}
}
