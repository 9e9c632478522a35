package device

// StateStore holds the last-commanded value per pin so an actuator's
// state producer can report back without re-reading hardware.
//
// Each handler owns its own store, injected at construction; entries
// are created at init and never removed, so the map is bounded by the
// configured pin count. Mutation happens only on the scheduler
// goroutine.
type StateStore struct {
	values map[int]string
}

// NewStateStore returns an empty store.
func NewStateStore() *StateStore {
	return &StateStore{values: make(map[int]string)}
}

// Set records the last-commanded value for a pin.
func (s *StateStore) Set(pin int, value string) {
	s.values[pin] = value
}

// Get returns the last-commanded value for a pin, or SentinelError if
// the pin was never initialised.
func (s *StateStore) Get(pin int) string {
	v, ok := s.values[pin]
	if !ok {
		return SentinelError
	}
	return v
}

// Len returns the number of tracked pins.
func (s *StateStore) Len() int {
	return len(s.values)
}
