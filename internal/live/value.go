package live

import "sync"

// Value is an observable value: it always has a current value and pushes
// every change to its subscribers. Like Stream, each subscriber channel is
// conflated to the latest value.
//
// T is copied on every read, so state types must treat their slices as
// immutable and replace them instead of mutating in place.
type Value[T any] struct {
	mu   sync.Mutex
	v    T
	next uint64
	subs map[uint64]chan T
}

// NewValue creates a Value holding initial.
func NewValue[T any](initial T) *Value[T] {
	return &Value[T]{v: initial, subs: make(map[uint64]chan T)}
}

// Load returns the current value.
func (x *Value[T]) Load() T {
	x.mu.Lock()
	defer x.mu.Unlock()
	return x.v
}

// Store replaces the current value and notifies subscribers.
func (x *Value[T]) Store(v T) {
	x.Update(func(T) T { return v })
}

// Update applies fn to the current value atomically, stores and returns the result.
func (x *Value[T]) Update(fn func(T) T) T {
	x.mu.Lock()
	defer x.mu.Unlock()

	x.v = fn(x.v)
	for _, ch := range x.subs {
		offer(ch, x.v)
	}
	return x.v
}

// Subscribe returns a channel that immediately holds the current value and
// then receives every later one. Calling cancel closes the channel.
func (x *Value[T]) Subscribe() (updates <-chan T, cancel func()) {
	ch := make(chan T, 1)

	x.mu.Lock()
	id := x.next
	x.next++
	x.subs[id] = ch
	ch <- x.v
	x.mu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			x.mu.Lock()
			delete(x.subs, id)
			close(ch)
			x.mu.Unlock()
		})
	}
}

// offer replaces any unread value in ch with v. The caller must be the only
// sender on ch, otherwise the final send could block.
func offer[T any](ch chan T, v T) {
	select {
	case ch <- v:
		return
	default:
	}
	select {
	case <-ch:
	default:
	}
	ch <- v
}
