// Package strix provides a minimal event distribution core for embedded
// state machine frameworks: fixed-capacity per-listener event buffers and a
// fixed-capacity registry that fans broadcasts out to every registered
// listener.
//
// Design decisions:
//   - Fixed capacity: listener buffers and registries never grow or
//     reallocate; capacity is set at construction and enforced on every
//     mutation
//   - True FIFO: listeners drain in arrival order through a ring buffer,
//     so Dequeue really does return the oldest event
//   - Borrowed references: the registry never owns a listener; the creator
//     controls its lifetime and must deregister before discarding it
//   - Identity matching: deregistration matches by listener identity, never
//     by value, so two empty listeners stay distinguishable
//   - Detailed partial failure: a broadcast that misses some listeners
//     reports exactly which ones failed and why, instead of a bare error
//   - Single-threaded core: operations are synchronous call/return with no
//     locking; concurrent callers bring their own synchronization
//
// Component hierarchy:
//   - Event: immutable identifier tag, passed by copy
//   - Listener: fixed-capacity FIFO buffer, owned by one state machine
//   - Registry: fixed-capacity set of borrowed listener references with
//     broadcast fan-out
//   - Hook: optional observer for registry activity (logging, metrics)
//
// Example usage:
//
//	reg := strix.NewRegistry(strix.WithHook(strix.LoggingHook()))
//	motor := strix.NewListener(strix.WithListenerName("motor"))
//	display := strix.NewListener(strix.WithListenerName("display"))
//
//	if err := reg.Register(ctx, motor); err != nil { ... }
//	if err := reg.Register(ctx, display); err != nil { ... }
//
//	if err := reg.Broadcast(ctx, strix.NewEvent(42)); err != nil {
//	    var derr *strix.DeliveryError
//	    if errors.As(err, &derr) {
//	        // derr.Failures names every listener that missed the event
//	    }
//	}
//
//	for motor.Len() > 0 {
//	    event, _ := motor.Dequeue()
//	    dispatch(event)
//	}
//
// The core never serializes and never touches the network. The optional
// NATS bridge under internal/bridge mirrors broadcasts across processes
// using the Envelope wire form defined in this package.
package strix
