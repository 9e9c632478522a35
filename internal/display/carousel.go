package display

// Item is one line of display content: a short label and the latest
// value for it.
type Item struct {
	Label string
	Value string
}

// Carousel is a rotating window over device readings for an attached
// character display. Rendering is out of scope; the carousel only
// decides what is currently shown.
//
// Used from the single scheduler/UI goroutine, no locking.
type Carousel struct {
	items  []Item
	index  int
	status func() bool
}

// NewCarousel creates a carousel. status reports broker connectivity
// for the header line; nil means always offline.
func NewCarousel(status func() bool) *Carousel {
	if status == nil {
		status = func() bool { return false }
	}
	return &Carousel{status: status}
}

// Refresh replaces the item set with fresh readings. The index is
// preserved when still in range so the view does not jump on every
// refresh, and clamped to the new length otherwise.
func (c *Carousel) Refresh(items []Item) {
	c.items = items
	if len(items) == 0 {
		c.index = 0
		return
	}
	if c.index >= len(items) {
		c.index = 0
	}
}

// Rotate advances the view by one item, wrapping at the end. With no
// items the index resets to zero; with a single item it stays there.
func (c *Carousel) Rotate() {
	if len(c.items) == 0 {
		c.index = 0
		return
	}
	c.index = (c.index + 1) % len(c.items)
}

// Current returns the item in view, and false when there is nothing
// to show.
func (c *Carousel) Current() (Item, bool) {
	if len(c.items) == 0 {
		return Item{}, false
	}
	return c.items[c.index], true
}

// Len returns the number of items in rotation.
func (c *Carousel) Len() int {
	return len(c.items)
}

// Status renders broker connectivity for the display header.
func (c *Carousel) Status() string {
	if c.status() {
		return "online"
	}
	return "offline"
}
