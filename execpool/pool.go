package execpool

import (
	"errors"
	"fmt"
	"iter"
	"sync"
)

const DefaultCapacity = 64

var (
	ErrCapacityExceeded = errors.New("executor capacity exceeded")
	ErrConfigured       = errors.New("capacity already configured")
	ErrInUse            = errors.New("capacity cannot change after slots were acquired")
	ErrInvalidCapacity  = errors.New("invalid capacity")
	ErrInvalidSlot      = errors.New("invalid slot")
	ErrNotHeld          = errors.New("slot not held")
	ErrNilUnit          = errors.New("nil unit")
)

type CapacityExceededError struct {
	Capacity int
}

func (c *CapacityExceededError) Error() string {
	return fmt.Sprintf("the maximum number of executors is used (%d)", c.Capacity)
}

func (c *CapacityExceededError) Is(target error) bool {
	return target == ErrCapacityExceeded
}

// Pool assigns slot ids to live units. Slots are reused round-robin: the
// scan for a vacant slot starts right after the most recently assigned one.
type Pool[T any] struct {
	mu         sync.Mutex
	slots      []*T
	last       int
	live       int
	configured bool
	used       bool
}

func New[T any](capacity int) *Pool[T] {
	if capacity < 1 {
		capacity = DefaultCapacity
	}
	return &Pool[T]{
		slots: make([]*T, capacity),
		last:  -1,
	}
}

// Configure sets the capacity. It may be called once, before the first
// Acquire.
func (p *Pool[T]) Configure(capacity int) error {
	if capacity < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidCapacity, capacity)
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.used {
		return ErrInUse
	}
	if p.configured {
		return ErrConfigured
	}
	p.configured = true
	p.slots = make([]*T, capacity)
	return nil
}

func (p *Pool[T]) Acquire(unit *T) (int, error) {
	if unit == nil {
		return -1, ErrNilUnit
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.used = true

	capacity := len(p.slots)
	n := -1
	for i := range capacity {
		probe := (p.last + 1 + i) % capacity
		if p.slots[probe] == nil {
			n = probe
			break
		}
	}
	if n < 0 {
		return -1, &CapacityExceededError{
			Capacity: capacity,
		}
	}

	p.last = n
	p.slots[n] = unit
	p.live++
	return n, nil
}

func (p *Pool[T]) Release(id int) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if id < 0 || id >= len(p.slots) {
		return fmt.Errorf("%w: %d", ErrInvalidSlot, id)
	}
	if p.slots[id] == nil {
		return fmt.Errorf("%w: %d", ErrNotHeld, id)
	}
	p.slots[id] = nil
	p.live--
	return nil
}

func (p *Pool[T]) Capacity() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.slots)
}

func (p *Pool[T]) Live() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.live
}

func (p *Pool[T]) Get(id int) (*T, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if id < 0 || id >= len(p.slots) || p.slots[id] == nil {
		return nil, false
	}
	return p.slots[id], true
}

// Range iterates a snapshot of live units in slot order.
func (p *Pool[T]) Range() iter.Seq2[int, *T] {
	p.mu.Lock()
	snapshot := make([]*T, len(p.slots))
	copy(snapshot, p.slots)
	p.mu.Unlock()
	return func(yield func(int, *T) bool) {
		for id, unit := range snapshot {
			if unit == nil {
				continue
			}
			if !yield(id, unit) {
				return
			}
		}
	}
}
