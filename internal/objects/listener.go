package objects

import "sync"

// ChangeListener is notified synchronously whenever an Object's value
// changes, mirroring the original onChange callback (spec.md §4.1).
type ChangeListener interface {
	OnChange(obj Object)
}

// listenerRegistry implements the shared plumbing described in spec.md
// §2 ("Change-listener registry"): an ordered, mutex-protected list with
// snapshot-based notification. The teacher's cooperative single-thread
// model lets the original skip locking; we run the timer loop, each
// port's reader loop and the status API as real goroutines, so the lock
// is the Go-idiomatic stand-in for that single-thread guarantee.
type listenerRegistry struct {
	mu   sync.Mutex
	list []ChangeListener
}

func (r *listenerRegistry) add(l ChangeListener) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.list = append(r.list, l)
}

func (r *listenerRegistry) remove(l ChangeListener) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, x := range r.list {
		if x == l {
			r.list = append(r.list[:i], r.list[i+1:]...)
			return
		}
	}
}

func (r *listenerRegistry) contains(l ChangeListener) bool {
	for _, x := range r.list {
		if x == l {
			return true
		}
	}
	return false
}

// notify takes a snapshot of the registered listeners and calls each in
// insertion order, skipping any listener removed since the snapshot was
// taken. A listener added mid-notification is not part of the snapshot
// and so never observes the in-progress change, matching spec.md §4.1's
// contract.
func (r *listenerRegistry) notify(obj Object) {
	r.mu.Lock()
	snapshot := make([]ChangeListener, len(r.list))
	copy(snapshot, r.list)
	r.mu.Unlock()

	for _, l := range snapshot {
		r.mu.Lock()
		live := r.contains(l)
		r.mu.Unlock()
		if !live {
			continue
		}
		l.OnChange(obj)
	}
}
