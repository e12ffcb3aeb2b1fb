package guard

import (
	"context"
	"net/url"
)

// SessionChecker is the slice of the session manager the guards consume.
type SessionChecker interface {
	// ValidateToken must be called before any capability query; guards never
	// allow navigation on unvalidated state.
	ValidateToken(ctx context.Context) bool
	IsAuthenticated() bool
	IsAdmin() bool
}

// DecisionKind classifies the outcome of a navigation check.
type DecisionKind int

const (
	// Allow lets the navigation proceed.
	Allow DecisionKind = iota
	// RedirectToLogin sends the visitor to the login page, preserving the
	// originally requested destination for post-login return.
	RedirectToLogin
	// RedirectToForbidden sends an authenticated non-admin to the fallback
	// destination.
	RedirectToForbidden
)

// Decision is the ephemeral result of a single navigation attempt.
type Decision struct {
	Kind DecisionKind
	// Target is the redirect destination; empty for Allow.
	Target string
	// ReturnURL is the originally requested path, set for RedirectToLogin.
	ReturnURL string
}

// Allowed reports whether the navigation may proceed.
func (d Decision) Allowed() bool {
	return d.Kind == Allow
}

// RedirectURL renders the redirect target including the returnUrl query
// parameter for login redirects.
func (d Decision) RedirectURL() string {
	if d.Kind == RedirectToLogin && d.ReturnURL != "" {
		return d.Target + "?returnUrl=" + url.QueryEscape(d.ReturnURL)
	}
	return d.Target
}

// AuthGuard gates destinations that require any authenticated user.
type AuthGuard struct {
	sessions  SessionChecker
	loginPath string
}

// NewAuthGuard creates a guard redirecting unauthenticated visitors to
// loginPath.
func NewAuthGuard(sessions SessionChecker, loginPath string) *AuthGuard {
	return &AuthGuard{sessions: sessions, loginPath: loginPath}
}

// Check decides whether navigation to destination proceeds. The decision is
// made only after token validation resolves; there is no optimistic allow.
func (g *AuthGuard) Check(ctx context.Context, destination string) Decision {
	if g.sessions.ValidateToken(ctx) && g.sessions.IsAuthenticated() {
		return Decision{Kind: Allow}
	}
	return Decision{Kind: RedirectToLogin, Target: g.loginPath, ReturnURL: destination}
}

// AdminGuard gates destinations that require the admin role. Authenticated
// non-admins are sent to the forbidden fallback; everyone else to login.
type AdminGuard struct {
	sessions      SessionChecker
	loginPath     string
	forbiddenPath string
}

// NewAdminGuard creates a guard with the given login and forbidden targets.
func NewAdminGuard(sessions SessionChecker, loginPath, forbiddenPath string) *AdminGuard {
	return &AdminGuard{sessions: sessions, loginPath: loginPath, forbiddenPath: forbiddenPath}
}

// Check decides whether navigation to destination proceeds.
func (g *AdminGuard) Check(ctx context.Context, destination string) Decision {
	valid := g.sessions.ValidateToken(ctx)
	switch {
	case valid && g.sessions.IsAuthenticated() && g.sessions.IsAdmin():
		return Decision{Kind: Allow}
	case valid && g.sessions.IsAuthenticated():
		return Decision{Kind: RedirectToForbidden, Target: g.forbiddenPath}
	default:
		return Decision{Kind: RedirectToLogin, Target: g.loginPath, ReturnURL: destination}
	}
}
