package faults

import (
	"sync"
	"sync/atomic"
)

// Signal is the two-level cancellation request of one run.
// A cooperative request is observed at checkpoints. A forced request also
// closes ForcedDone so a controller can abandon the run without waiting for
// a checkpoint.
type Signal struct {
	requested atomic.Bool
	forced    atomic.Bool

	mu         sync.Mutex
	fault      *Fault
	done       chan struct{}
	forcedDone chan struct{}
}

func NewSignal() *Signal {
	return &Signal{
		done:       make(chan struct{}),
		forcedDone: make(chan struct{}),
	}
}

// Cancel requests cooperative cancellation. Only the first request counts;
// it reports whether this call set the signal.
func (s *Signal) Cancel(msg string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fault != nil {
		return false
	}
	s.fault = Canceled(false, msg)
	s.requested.Store(true)
	close(s.done)
	return true
}

// Force requests forced cancellation, upgrading a pending cooperative
// request. An empty msg keeps the message of an earlier request.
func (s *Signal) Force(msg string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.forced.Load() {
		return false
	}
	if msg == "" && s.fault != nil && s.fault.Message != canceledMessage {
		msg = s.fault.Message
	}
	s.fault = Canceled(true, msg)
	if !s.requested.Load() {
		s.requested.Store(true)
		close(s.done)
	}
	s.forced.Store(true)
	close(s.forcedDone)
	return true
}

func (s *Signal) Requested() bool {
	return s.requested.Load()
}

func (s *Signal) Forced() bool {
	return s.forced.Load()
}

// Done is closed on the first request of either kind.
func (s *Signal) Done() <-chan struct{} {
	return s.done
}

func (s *Signal) ForcedDone() <-chan struct{} {
	return s.forcedDone
}

// Err returns the cancellation fault, or nil if nothing was requested.
func (s *Signal) Err() error {
	if !s.requested.Load() {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fault
}

// Checkpoint is called by running code at safe points.
func (s *Signal) Checkpoint() error {
	return s.Err()
}
