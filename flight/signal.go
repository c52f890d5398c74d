package flight

// ListenerID identifies one subscription on a Signal. Zero is never issued.
type ListenerID uint64

type listener[T any] struct {
	id ListenerID
	fn func(T)
}

// Signal is the listener list for one notification channel.
// Emit is synchronous and calls listeners in subscription order.
type Signal[T any] struct {
	listeners []listener[T]
	nextID    ListenerID
}

// Trigger is a signal without payload, used for discrete input actions.
type Trigger = Signal[struct{}]

// Subscribe registers fn and returns the handle to pass to Unsubscribe.
func (s *Signal[T]) Subscribe(fn func(T)) ListenerID {
	if fn == nil {
		return 0
	}
	s.nextID++
	s.listeners = append(s.listeners, listener[T]{id: s.nextID, fn: fn})
	return s.nextID
}

// Unsubscribe removes the listener registered under id.
// It reports whether a listener was removed.
func (s *Signal[T]) Unsubscribe(id ListenerID) bool {
	for i, l := range s.listeners {
		if l.id != id {
			continue
		}
		// Copy so an Emit in progress keeps iterating its own slice.
		next := make([]listener[T], 0, len(s.listeners)-1)
		next = append(next, s.listeners[:i]...)
		next = append(next, s.listeners[i+1:]...)
		s.listeners = next
		return true
	}
	return false
}

func (s *Signal[T]) Emit(v T) {
	for _, l := range s.listeners {
		l.fn(v)
	}
}

// Fire emits a payload-free signal.
func Fire(t *Trigger) {
	t.Emit(struct{}{})
}

func (s *Signal[T]) Len() int {
	return len(s.listeners)
}
