// Package async provides a minimal single-shot future for modeling
// asynchronous request/response operations.
//
// A Future resolves exactly once. Both live network calls and simulated
// (mock) calls return the same Future type, so callers cannot distinguish
// the two by their calling convention:
//
//	fut := async.Run(ctx, func(ctx context.Context) (User, error) {
//		return fetchUser(ctx, id)
//	})
//
//	user, err := fut.Await()
package async
