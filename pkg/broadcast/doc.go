// Package broadcast provides a generic in-memory pub/sub primitive used to fan
// out state changes (session updates, settings changes) to interested observers.
//
// Delivery is non-blocking: a subscriber that cannot keep up loses messages
// instead of stalling the publisher. Subscriptions are tied to a context and
// cleaned up automatically when it is canceled.
//
// Usage:
//
//	b := broadcast.NewMemoryBroadcaster[string](16)
//	defer b.Close()
//
//	sub := b.Subscribe(ctx)
//	go func() {
//		for msg := range sub.Receive(ctx) {
//			fmt.Println(msg.Data)
//		}
//	}()
//
//	b.Broadcast(ctx, broadcast.Message[string]{Data: "hello"})
package broadcast
