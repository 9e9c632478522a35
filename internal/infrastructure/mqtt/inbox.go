package mqtt

import "sync"

// Message is one inbound command held until the scheduler drains it.
type Message struct {
	Topic   string
	Payload string
}

// Inbox is a fixed-capacity FIFO bridging paho's delivery goroutines to
// the single scheduler goroutine. Paho invokes handlers concurrently;
// device logic must not. Handlers push, the scheduler tick drains.
//
// When full, the oldest message is overwritten: a stale command that
// was never processed is worth less than the one that just arrived.
type Inbox struct {
	mu       sync.Mutex
	buf      []Message
	capacity int
	head     int // next write position
	count    int
	dropped  int
}

// NewInbox returns an Inbox holding at most capacity messages.
func NewInbox(capacity int) *Inbox {
	return &Inbox{
		buf:      make([]Message, capacity),
		capacity: capacity,
	}
}

// Push appends a message, overwriting the oldest when full.
func (b *Inbox) Push(topic string, payload []byte) {
	b.mu.Lock()
	defer b.mu.Unlock()

	msg := Message{Topic: topic, Payload: string(payload)}
	if b.count == b.capacity {
		b.dropped++
		// Overwrite oldest: head is already pointing at it
		b.buf[b.head] = msg
		b.head = (b.head + 1) % b.capacity
		return
	}
	b.buf[b.head] = msg
	b.head = (b.head + 1) % b.capacity
	b.count++
}

// Drain removes and returns all buffered messages, oldest first.
// It also returns the number of messages dropped since the last drain.
func (b *Inbox) Drain() ([]Message, int) {
	b.mu.Lock()
	defer b.mu.Unlock()

	dropped := b.dropped
	b.dropped = 0

	if b.count == 0 {
		return nil, dropped
	}

	result := make([]Message, b.count)
	// Oldest item is at (head - count) mod capacity
	start := (b.head - b.count + b.capacity) % b.capacity
	for i := 0; i < b.count; i++ {
		result[i] = b.buf[(start+i)%b.capacity]
	}

	b.count = 0
	b.head = 0
	return result, dropped
}

// Len returns the number of buffered messages.
func (b *Inbox) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.count
}
