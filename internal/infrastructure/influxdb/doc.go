// Package influxdb provides optional time-series telemetry for Gray
// Logic Edge.
//
// The node mirrors numeric sensor readings into an InfluxDB v2 bucket
// alongside the retained MQTT publishes. MQTT remains the control
// surface; this sink only feeds history and dashboards, and the node
// operates fully with it disabled.
//
// # Data Model
//
// Readings land in the edge_readings measurement:
//
//	edge_readings,node=grayedge-01,device=boiler-flow,metric=temperature value=54.25
//
// Tags stay low-cardinality (node, device name, topic category); the
// reading itself is the single value field.
//
// # Error Handling
//
// Writes are non-blocking and batched by the underlying client. Async
// write failures surface through SetOnError; a down InfluxDB never
// stalls the scheduler tick.
package influxdb
