// Package bridge mirrors a registry's broadcasts across processes over
// NATS. A bridge subscribes to a subject and feeds every decoded envelope
// into its local registry; Publish delivers locally and forwards to the
// subject so peer bridges pick the event up.
//
// The core registry is single-threaded; the bridge guards it with a mutex
// because NATS delivers on its own goroutine. That lock covers only
// bridge-driven access — hosts that also touch the registry directly must
// coordinate with the bridge or route everything through it.
//
// Example usage:
//
//	conn, err := natsx.NewClient()
//	if err != nil {
//	    return err
//	}
//	b, err := bridge.NATS(conn, "fsm.events", reg)
//	if err != nil {
//	    return err
//	}
//	defer b.Close()
//
//	if err := b.Publish(ctx, strix.NewEvent(42)); err != nil { ... }
package bridge
