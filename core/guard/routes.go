package guard

import (
	"context"
	"strings"
)

// Access is the protection level a destination requires.
type Access int

const (
	AccessPublic Access = iota
	AccessAuth
	AccessAdmin
)

// route binds a path prefix to an access level. Longer prefixes win.
type route struct {
	prefix string
	access Access
	exact  bool
}

// Routes maps destinations to access levels.
type Routes struct {
	rules []route
}

// NewRoutes creates an empty route table; unmatched paths are public.
func NewRoutes() *Routes {
	return &Routes{}
}

// Exact registers a single exact-match destination.
func (r *Routes) Exact(path string, access Access) *Routes {
	r.rules = append(r.rules, route{prefix: path, access: access, exact: true})
	return r
}

// Prefix registers a path-prefix rule covering the whole subtree.
func (r *Routes) Prefix(prefix string, access Access) *Routes {
	r.rules = append(r.rules, route{prefix: strings.TrimRight(prefix, "/"), access: access})
	return r
}

// AccessFor resolves the access level for path. Exact rules win over prefix
// rules; among prefix rules, the longest match wins.
func (r *Routes) AccessFor(path string) Access {
	path = strings.TrimRight(path, "/")
	if path == "" {
		path = "/"
	}

	best := AccessPublic
	bestLen := -1
	for _, rule := range r.rules {
		if rule.exact {
			if path == rule.prefix {
				return rule.access
			}
			continue
		}
		if path == rule.prefix || strings.HasPrefix(path, rule.prefix+"/") {
			if len(rule.prefix) > bestLen {
				best = rule.access
				bestLen = len(rule.prefix)
			}
		}
	}
	return best
}

// AdminRoutes is the default route table for the admin console: the login
// page is public, everything else under /admin requires the admin role, and
// all public content routes stay open.
func AdminRoutes() *Routes {
	return NewRoutes().
		Exact("/admin/login", AccessPublic).
		Prefix("/admin", AccessAdmin)
}

// Gate combines the two guard variants with a route table into a single
// navigation decision point.
type Gate struct {
	routes *Routes
	auth   *AuthGuard
	admin  *AdminGuard
}

// NewGate wires a session checker to a route table. Login and forbidden
// targets follow the consuming site's conventions.
func NewGate(sessions SessionChecker, routes *Routes, opts ...GateOption) *Gate {
	cfg := gateConfig{loginPath: "/admin/login", forbiddenPath: "/"}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Gate{
		routes: routes,
		auth:   NewAuthGuard(sessions, cfg.loginPath),
		admin:  NewAdminGuard(sessions, cfg.loginPath, cfg.forbiddenPath),
	}
}

type gateConfig struct {
	loginPath     string
	forbiddenPath string
}

// GateOption configures a Gate.
type GateOption func(*gateConfig)

// WithLoginPath overrides the login destination.
func WithLoginPath(path string) GateOption {
	return func(c *gateConfig) {
		if path != "" {
			c.loginPath = path
		}
	}
}

// WithForbiddenPath overrides the forbidden fallback destination.
func WithForbiddenPath(path string) GateOption {
	return func(c *gateConfig) {
		if path != "" {
			c.forbiddenPath = path
		}
	}
}

// Check resolves the access level for destination and runs the matching
// guard. Public destinations always allow.
func (g *Gate) Check(ctx context.Context, destination string) Decision {
	switch g.routes.AccessFor(pathOnly(destination)) {
	case AccessAdmin:
		return g.admin.Check(ctx, destination)
	case AccessAuth:
		return g.auth.Check(ctx, destination)
	default:
		return Decision{Kind: Allow}
	}
}

// pathOnly strips a query string or fragment from a destination URL.
func pathOnly(dest string) string {
	if i := strings.IndexAny(dest, "?#"); i >= 0 {
		return dest[:i]
	}
	return dest
}
