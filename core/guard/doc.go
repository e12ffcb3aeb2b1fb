// Package guard decides whether a navigation to a protected destination
// proceeds, redirects to login, or redirects to a forbidden fallback.
//
// Two guard variants share one structure: AuthGuard requires any
// authenticated user, AdminGuard additionally requires the admin role. Both
// validate the stored credential first and never allow optimistically; the
// originally requested path is preserved so login can return the visitor to
// it afterwards.
//
// A Gate combines the guards with a route table (see AdminRoutes) and is
// adaptable to net/http middleware for server-rendered deployments.
package guard
