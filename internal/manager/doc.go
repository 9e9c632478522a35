// Package manager drives the cooperative scheduling loop of a Gray
// Logic Edge node.
//
// # Concurrency Model
//
// One goroutine, one pass per tick, no preemption. Everything the
// device layer does — hardware writes, retained publishes, state-store
// mutation, watchdog reverts, kickstart resolution — happens inside
// Tick, so no locking exists anywhere in the device path. The only
// concurrent actors are paho's delivery goroutines, and they stop at
// the inbox boundary.
//
// Handlers must keep sensor reads bounded: a slow read stalls the
// whole tick, including the consumer watchdog.
//
// # Ordering Guarantees
//
// Producers publish in registration order. Inbound dispatch is
// single-match, first registered wins. The kickstart sweep runs last
// in the tick, after dispatch and watchdogs, so a command issued in
// the same tick always supersedes a stale pending kickstart.
package manager
