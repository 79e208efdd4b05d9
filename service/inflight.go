// file: service/inflight.go

package service

import (
	"errors"
	"sync"

	"golang.org/x/sync/singleflight"
)

// ErrBusy is returned when a view already has a different action in flight
// for the same session.
var ErrBusy = errors.New("another action is in flight for this view")

const (
	// MsgBusy is shown when a submission is rejected with ErrBusy.
	MsgBusy = "Ya hay una operación en curso. Espera a que termine."
	// MsgProcessing is shown on a form reopened while its submission runs.
	MsgProcessing = "Procesando..."
)

type flight struct {
	input   string
	waiters int
	done    bool
	result  interface{}
}

// Inflight allows at most one backend action per (session, view). A repeated
// submission of the same input joins the action already running and gets its
// result; a different input is rejected with ErrBusy until it finishes.
type Inflight struct {
	mu     sync.Mutex
	active map[string]*flight
	group  singleflight.Group
}

func NewInflight() *Inflight {
	return &Inflight{active: make(map[string]*flight)}
}

// Loading reports whether the view has an action in flight for session.
func (f *Inflight) Loading(session, view string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.active[session+"|"+view]
	return ok
}

func (f *Inflight) enter(slot, input string) (*flight, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	cur := f.active[slot]
	if cur != nil && cur.input != input {
		return nil, ErrBusy
	}
	if cur == nil {
		cur = &flight{input: input}
		f.active[slot] = cur
	}
	cur.waiters++
	return cur, nil
}

func (f *Inflight) leave(slot string, cur *flight) {
	f.mu.Lock()
	defer f.mu.Unlock()

	cur.waiters--
	if cur.waiters == 0 && f.active[slot] == cur {
		delete(f.active, slot)
	}
}

func (f *Inflight) finish(cur *flight, result interface{}) {
	f.mu.Lock()
	defer f.mu.Unlock()
	cur.done = true
	cur.result = result
}

func (f *Inflight) finished(cur *flight) (interface{}, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return cur.result, cur.done
}

// Run executes fn as the action of view for session. shared is true when the
// result came from an action started by an earlier submission.
func Run[T any](f *Inflight, session, view, input string, fn func() T) (result T, shared bool, err error) {
	slot := session + "|" + view
	cur, err := f.enter(slot, input)
	if err != nil {
		return result, false, err
	}
	defer f.leave(slot, cur)

	// A submission that arrives after the action returned, while earlier
	// callers are still leaving, reuses the finished flight's result.
	var reused bool
	v, _, shared := f.group.Do(slot+"|"+input, func() (interface{}, error) {
		if v, ok := f.finished(cur); ok {
			reused = true
			return v, nil
		}
		v := fn()
		f.finish(cur, v)
		return v, nil
	})
	return v.(T), shared || reused, nil
}
