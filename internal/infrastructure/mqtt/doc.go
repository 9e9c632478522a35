// Package mqtt provides MQTT client connectivity for Gray Logic Edge.
//
// This package manages:
//   - Connection to the broker with auto-reconnect
//   - Message publishing with QoS guarantees
//   - Topic subscriptions with wildcard support
//   - Last Will and Testament (LWT) for node offline detection
//   - An Inbox bridging paho's concurrent delivery to the single
//     scheduler goroutine
//
// # Architecture
//
// Gray Logic Edge uses MQTT as its only control surface. The node
// publishes retained device state under its own topic tree and
// receives actuator commands on per-device command topics.
//
//	Gray Logic Core ↔ MQTT Broker ↔ Edge Nodes
//
// Every topic starts with a leading slash followed by the node's
// client ID, e.g. /grayedge-01/digital_output/heater/set. The retained
// status topic /grayedge-01/status carries "online" or "offline";
// the broker publishes "offline" via LWT when the node crashes.
//
// # Security Considerations
//
//   - TLS is required for production deployments (cfg.Broker.TLS=true)
//   - Credentials are validated against broker ACL
//   - Anonymous access is only for local development
//   - Message payloads are not encrypted beyond TLS transport
//
// # Usage
//
//	client, err := mqtt.Connect(cfg.MQTT)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer client.Close()
//
//	inbox := mqtt.NewInbox(64)
//	client.Subscribe("/grayedge-01/digital_output/heater/set", 1,
//	    func(topic string, payload []byte) error {
//	        inbox.Push(topic, payload)
//	        return nil
//	    })
package mqtt
