// Package notify implements the weakly-held subscriber registry and the
// coalesced change-notification pass that drives widget restyling.
package notify

import (
	"sync"
	"time"
	"weak"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/tintlab/tint/internal/logging"
)

// DefaultWindow is the debounce window for coalescing rapid mutations. A
// color-slider drag performs dozens of writes per second; one notification
// per window keeps hundreds of live widgets from repainting on every
// intermediate value.
const DefaultWindow = 25 * time.Millisecond

// entry is one registered subscriber. alive reports whether the owner is
// still reachable; fire invokes the owner's update hook if it is.
type entry struct {
	alive func() bool
	fire  func()
}

// Registry holds subscribers by opaque handle and delivers at most one
// notification per coalesced batch. Subscribers registered through
// Subscribe are weakly held: the registry never keeps an owner reachable,
// and collected owners are pruned on the next pass.
type Registry struct {
	logger zerolog.Logger
	window time.Duration

	mu        sync.Mutex
	subs      map[string]entry
	timer     *time.Timer
	scheduled bool
	closed    bool
	batches   uint64
}

// NewRegistry creates a registry with the given coalescing window; zero or
// negative means DefaultWindow.
func NewRegistry(window time.Duration) *Registry {
	if window <= 0 {
		window = DefaultWindow
	}
	return &Registry{
		logger: logging.Component("notify"),
		window: window,
		subs:   make(map[string]entry),
	}
}

// Subscribe registers owner's hook, holding owner only weakly. The hook
// must not capture the owner (use a method expression); it receives the
// owner pointer at delivery time, and is skipped once the owner has been
// collected.
func Subscribe[T any](r *Registry, owner *T, hook func(*T)) string {
	wp := weak.Make(owner)
	return r.add(entry{
		alive: func() bool { return wp.Value() != nil },
		fire: func() {
			if p := wp.Value(); p != nil {
				hook(p)
			}
		},
	})
}

// SubscribeFunc registers a strongly-held callback for subscribers that
// manage their own lifetime; they must Unsubscribe on teardown.
func (r *Registry) SubscribeFunc(fn func()) string {
	return r.add(entry{
		alive: func() bool { return true },
		fire:  fn,
	})
}

func (r *Registry) add(e entry) string {
	handle := uuid.NewString()
	r.mu.Lock()
	r.subs[handle] = e
	r.mu.Unlock()
	return handle
}

// Unsubscribe removes a subscriber by handle. Best-effort: weak subscribers
// drop out on collection anyway.
func (r *Registry) Unsubscribe(handle string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.subs[handle]; !ok {
		return false
	}
	delete(r.subs, handle)
	return true
}

// Signal records that shared theming state changed. The first signal in a
// quiet period schedules a flush one window later; further signals within
// the window restart it rather than stacking extra notifications.
func (r *Registry) Signal() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return
	}
	if r.scheduled {
		r.timer.Reset(r.window)
		return
	}
	r.scheduled = true
	r.timer = time.AfterFunc(r.window, r.flushScheduled)
}

func (r *Registry) flushScheduled() {
	r.mu.Lock()
	if r.closed || !r.scheduled {
		r.mu.Unlock()
		return
	}
	r.scheduled = false
	r.mu.Unlock()
	r.NotifyAll()
}

// Flush cancels any pending timer and delivers the batch synchronously.
func (r *Registry) Flush() {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return
	}
	pending := r.scheduled
	if pending {
		r.timer.Stop()
		r.scheduled = false
	}
	r.mu.Unlock()
	if pending {
		r.NotifyAll()
	}
}

// NotifyAll invokes every live subscriber's hook exactly once. Iteration
// runs over a snapshot, so hooks may re-entrantly subscribe or unsubscribe,
// and owners collected mid-pass are simply skipped. Delivery order is
// unspecified.
func (r *Registry) NotifyAll() {
	r.mu.Lock()
	snapshot := make([]entry, 0, len(r.subs))
	for handle, e := range r.subs {
		if !e.alive() {
			delete(r.subs, handle)
			continue
		}
		snapshot = append(snapshot, e)
	}
	r.batches++
	r.mu.Unlock()

	for _, e := range snapshot {
		e.fire()
	}

	r.logger.Debug().Int("subscribers", len(snapshot)).Msg("notification batch delivered")
}

// Live returns the number of currently reachable subscribers, pruning dead
// ones as a side effect.
func (r *Registry) Live() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	for handle, e := range r.subs {
		if !e.alive() {
			delete(r.subs, handle)
		}
	}
	return len(r.subs)
}

// Batches returns how many notification passes have run.
func (r *Registry) Batches() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.batches
}

// Close cancels any pending flush and drops all subscribers. Signals after
// Close are ignored.
func (r *Registry) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return
	}
	r.closed = true
	if r.scheduled {
		r.timer.Stop()
		r.scheduled = false
	}
	r.subs = make(map[string]entry)
}
