// Package mockapi is a self-contained development backend implementing the
// wishcowork HTTP contract over seeded in-memory data: /auth, /properties,
// /blogs, /news, /events, /pricing, and /views.
//
// It exists so the frontend services can be exercised in live mode without
// a deployed API: mount Handler in an httptest server, or run cmd/mockapi.
// State resets on restart.
package mockapi
