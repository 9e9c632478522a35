package mqtt

import (
	"fmt"
)

// Subscribe registers a handler for messages on a topic.
//
// Topics may carry MQTT wildcards:
//   - + (single-level): "/grayedge-01/digital_output/+/set" matches any device name
//   - # (multi-level): "/grayedge-01/#" matches the node's whole tree
//
// Paho invokes handlers on its own goroutines; the composition root
// subscribes every command topic with a handler that only pushes into
// an Inbox, so device logic stays on the scheduler goroutine and
// handlers never block.
//
// The subscription is tracked and restored automatically after a
// reconnect.
//
// Returns nil on success, or a wrapped error describing the failure.
func (c *Client) Subscribe(topic string, qos byte, handler MessageHandler) error {
	if topic == "" {
		return ErrInvalidTopic
	}
	if qos > maxQoS {
		return ErrInvalidQoS
	}
	if handler == nil {
		return fmt.Errorf("%w: handler cannot be nil", ErrSubscribeFailed)
	}
	if !c.IsConnected() {
		return ErrNotConnected
	}

	// Track first so a reconnect racing this call still restores the
	// topic; untrack again if the broker refuses it.
	c.track(topic, qos, handler)

	token := c.client.Subscribe(topic, qos, c.wrapHandler(handler))
	if !token.WaitTimeout(defaultPublishTimeout) {
		c.untrack(topic)
		return fmt.Errorf("%w: timeout after %v", ErrSubscribeFailed, defaultPublishTimeout)
	}
	if err := token.Error(); err != nil {
		c.untrack(topic)
		return fmt.Errorf("%w: %w", ErrSubscribeFailed, err)
	}

	return nil
}

// Unsubscribe stops delivery for a topic. The topic must match the
// subscribed pattern exactly. Messages already in flight may still be
// delivered.
func (c *Client) Unsubscribe(topic string) error {
	if topic == "" {
		return ErrInvalidTopic
	}
	if !c.IsConnected() {
		return ErrNotConnected
	}

	c.untrack(topic)

	token := c.client.Unsubscribe(topic)
	if !token.WaitTimeout(defaultPublishTimeout) {
		return fmt.Errorf("%w: timeout after %v", ErrUnsubscribeFailed, defaultPublishTimeout)
	}
	if err := token.Error(); err != nil {
		return fmt.Errorf("%w: %w", ErrUnsubscribeFailed, err)
	}

	return nil
}

// track records a subscription for restoration on reconnect.
func (c *Client) track(topic string, qos byte, handler MessageHandler) {
	c.subMu.Lock()
	defer c.subMu.Unlock()
	c.subscriptions[topic] = subscription{
		topic:   topic,
		qos:     qos,
		handler: handler,
	}
}

// untrack removes a subscription from reconnect restoration.
func (c *Client) untrack(topic string) {
	c.subMu.Lock()
	defer c.subMu.Unlock()
	delete(c.subscriptions, topic)
}

// SubscriptionCount returns the number of tracked subscriptions.
// After startup this equals the number of registered consumers.
func (c *Client) SubscriptionCount() int {
	c.subMu.RLock()
	defer c.subMu.RUnlock()
	return len(c.subscriptions)
}

// HasSubscription reports whether the exact topic string is tracked.
// No pattern matching is done.
func (c *Client) HasSubscription(topic string) bool {
	c.subMu.RLock()
	defer c.subMu.RUnlock()
	_, exists := c.subscriptions[topic]
	return exists
}
