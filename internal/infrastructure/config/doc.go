// Package config loads and validates Gray Logic Edge configuration.
//
// Configuration lives in a single YAML file covering broker connection,
// logging, the optional InfluxDB telemetry sink, and the declarative
// pin table that the device registry turns into running producers and
// consumers.
//
// # Example
//
//	node:
//	  name: "greenhouse-edge"
//	mqtt:
//	  broker:
//	    host: "10.0.0.2"
//	    port: 1883
//	    client_id: "greenhouse-edge"
//	  qos: 1
//	logging:
//	  level: "info"
//	  format: "json"
//	pins:
//	  - pin: 13
//	    mode: "OUTPUT_DIGITAL"
//	    name: "grow-light"
//	    default_state: 0
//	    polling_interval: 5000
//	  - pin: 34
//	    mode: "INPUT_ANALOG"
//	    name: "tank-level"
//	    polling_interval: 1000
//
// # Secrets
//
// Broker credentials and the InfluxDB token can be supplied via
// GRAYEDGE_MQTT_USERNAME, GRAYEDGE_MQTT_PASSWORD and
// GRAYEDGE_INFLUXDB_TOKEN instead of the file; the environment wins
// when both are present.
//
// Pin entries are carried here as raw data only. Capability validation
// and mode parsing happen in the pins package, where invalid entries
// are skipped one by one without failing the load.
package config
