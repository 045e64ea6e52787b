package notify

// Subscription is a handle on a registered callback. Close detaches it and is
// safe to call more than once.
type Subscription interface {
	Close()
}

type subscription struct {
	close func()
}

func (s *subscription) Close() {
	if s.close != nil {
		s.close()
		s.close = nil
	}
}

// SubscriptionFunc adapts a plain function to a Subscription.
func SubscriptionFunc(fn func()) Subscription {
	return &subscription{close: fn}
}

// Stream is the read side of a Feed.
type Stream[E any] interface {
	Subscribe(fn func(E)) Subscription
}

type listener[E any] struct {
	id uint64
	fn func(E)
}

// Feed delivers events synchronously to its listeners in subscription order.
// A Feed is not safe for concurrent use.
type Feed[E any] struct {
	nextID    uint64
	listeners []listener[E]
}

func (f *Feed[E]) Subscribe(fn func(E)) Subscription {
	f.nextID++
	id := f.nextID
	f.listeners = append(f.listeners, listener[E]{id: id, fn: fn})
	return &subscription{close: func() { f.remove(id) }}
}

func (f *Feed[E]) remove(id uint64) {
	for i, l := range f.listeners {
		if l.id == id {
			f.listeners = append(f.listeners[:i:i], f.listeners[i+1:]...)
			return
		}
	}
}

// Send delivers e to a snapshot of the current listeners, so callbacks may
// subscribe or unsubscribe without disturbing this delivery.
func (f *Feed[E]) Send(e E) {
	if len(f.listeners) == 0 {
		return
	}
	snapshot := make([]listener[E], len(f.listeners))
	copy(snapshot, f.listeners)
	for _, l := range snapshot {
		if f.live(l.id) {
			l.fn(e)
		}
	}
}

func (f *Feed[E]) live(id uint64) bool {
	for _, l := range f.listeners {
		if l.id == id {
			return true
		}
	}
	return false
}

// Len is the number of live listeners.
func (f *Feed[E]) Len() int {
	return len(f.listeners)
}
