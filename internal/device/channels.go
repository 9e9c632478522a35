package device

import "fmt"

// defaultChannelCap is the number of hardware PWM channels available
// on the target board.
const defaultChannelCap = 16

// ChannelAllocator hands out hardware PWM channels, a finite global
// resource shared across every PWM-mode entry. The registry owns the
// single allocator and passes it by reference to the PWM handler so
// channel assignment never collides.
//
// Single-threaded: allocation happens only during registration on one
// goroutine.
type ChannelAllocator struct {
	next int
	cap  int
}

// NewChannelAllocator returns an allocator with the given capacity.
// A non-positive capacity falls back to the board default.
func NewChannelAllocator(capacity int) *ChannelAllocator {
	if capacity <= 0 {
		capacity = defaultChannelCap
	}
	return &ChannelAllocator{cap: capacity}
}

// Allocate returns the next free channel, or ErrChannelsExhausted when
// the pool is empty.
func (a *ChannelAllocator) Allocate() (int, error) {
	if a.next >= a.cap {
		return 0, fmt.Errorf("%w: %d channels in use", ErrChannelsExhausted, a.cap)
	}
	ch := a.next
	a.next++
	return ch, nil
}

// Allocated returns the number of channels handed out.
func (a *ChannelAllocator) Allocated() int {
	return a.next
}
