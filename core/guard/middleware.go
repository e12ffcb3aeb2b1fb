package guard

import "net/http"

// Middleware adapts a Gate into standard net/http middleware for
// server-rendered deployments. Denied navigations answer with a 302 to the
// decision's redirect target, carrying the original path in the returnUrl
// query parameter for login redirects.
func Middleware(gate *Gate) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			dest := r.URL.Path
			if r.URL.RawQuery != "" {
				dest += "?" + r.URL.RawQuery
			}

			decision := gate.Check(r.Context(), dest)
			if decision.Allowed() {
				next.ServeHTTP(w, r)
				return
			}
			http.Redirect(w, r, decision.RedirectURL(), http.StatusFound)
		})
	}
}
