package influxdb

import (
	"time"

	"github.com/influxdata/influxdb-client-go/v2/api/write"
)

// WriteSensorReading records one numeric reading from a producer device.
//
// The write is non-blocking; data is batched and sent asynchronously.
// Sentinel payloads ("nan", "error") never reach this method; the
// scheduler only mirrors parseable numeric values.
//
// Parameters:
//   - device: the configured device name (e.g., "boiler-flow")
//   - metric: the reading kind from the topic (e.g., "temperature", "humidity", "value")
//   - value: the numeric value to record
//
// Example:
//
//	client.WriteSensorReading("boiler-flow", "temperature", 54.25)
func (c *Client) WriteSensorReading(device string, metric string, value float64) {
	if !c.IsConnected() {
		return
	}

	point := write.NewPoint(
		"edge_readings",
		map[string]string{
			"node":   c.nodeID,
			"device": device,
			"metric": metric,
		},
		map[string]interface{}{
			"value": value,
		},
		time.Now(),
	)

	c.writeAPI.WritePoint(point)
}

// WritePoint writes a custom point with full control over tags and fields.
//
// Use this for measurements that don't fit WriteSensorReading. The
// node tag is always added.
func (c *Client) WritePoint(measurement string, tags map[string]string, fields map[string]interface{}) {
	if !c.IsConnected() {
		return
	}

	if tags == nil {
		tags = make(map[string]string)
	}
	tags["node"] = c.nodeID

	point := write.NewPoint(measurement, tags, fields, time.Now())
	c.writeAPI.WritePoint(point)
}
