package stores

import "sync"

// Writable is a value with subscribers. Subscribers run outside the lock,
// in subscription order.
type Writable[T any] struct {
	mu     sync.Mutex
	value  T
	nextID int
	subs   map[int]func(T)
	order  []int
}

func NewWritable[T any](initial T) *Writable[T] {
	return &Writable[T]{value: initial, subs: map[int]func(T){}}
}

func (w *Writable[T]) Get() T {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.value
}

func (w *Writable[T]) Set(v T) {
	w.Update(func(T) T { return v })
}

// Update replaces the value with fn(current) and notifies subscribers.
func (w *Writable[T]) Update(fn func(T) T) {
	w.mu.Lock()
	w.value = fn(w.value)
	v := w.value
	subs := w.snapshot()
	w.mu.Unlock()

	for _, s := range subs {
		s(v)
	}
}

// Subscribe calls fn with the current value and again after every change.
// The returned func unsubscribes; calling it twice is harmless.
func (w *Writable[T]) Subscribe(fn func(T)) (unsubscribe func()) {
	w.mu.Lock()
	w.nextID++
	id := w.nextID
	w.subs[id] = fn
	w.order = append(w.order, id)
	v := w.value
	w.mu.Unlock()

	fn(v)

	var once sync.Once
	return func() {
		once.Do(func() {
			w.mu.Lock()
			defer w.mu.Unlock()
			delete(w.subs, id)
			for i, o := range w.order {
				if o == id {
					w.order = append(w.order[:i], w.order[i+1:]...)
					break
				}
			}
		})
	}
}

func (w *Writable[T]) snapshot() []func(T) {
	out := make([]func(T), 0, len(w.order))
	for _, id := range w.order {
		out = append(out, w.subs[id])
	}
	return out
}
