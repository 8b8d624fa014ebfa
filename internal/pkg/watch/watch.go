// Package watch provides the change-notification primitive the engines
// publish through. Subscribers poll a snapshot after each signal; the version
// lets them drop signals that arrive for state they have already read.
package watch

import "sync"

type Notifier struct {
	mu      sync.Mutex
	version uint64
	nextID  uint64
	subs    map[uint64]chan struct{}
}

func NewNotifier() *Notifier {
	return &Notifier{subs: make(map[uint64]chan struct{})}
}

// Notify bumps the version and signals every subscriber. The channel send is
// non-blocking: a subscriber that has not drained its channel still holds one
// pending signal, which is enough for snapshot polling.
func (n *Notifier) Notify() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.version++
	for _, ch := range n.subs {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}

func (n *Notifier) Version() uint64 {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.version
}

// Subscribe returns a signal channel and a cancel func. Cancel is idempotent.
func (n *Notifier) Subscribe() (<-chan struct{}, func()) {
	n.mu.Lock()
	defer n.mu.Unlock()
	id := n.nextID
	n.nextID++
	ch := make(chan struct{}, 1)
	n.subs[id] = ch
	return ch, func() {
		n.mu.Lock()
		defer n.mu.Unlock()
		delete(n.subs, id)
	}
}
