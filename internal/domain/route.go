package domain

import "strings"

// Routes
const (
	RouteRoot      = "/"
	RouteAuth      = "/auth"
	RouteDashboard = "/dashboard"
	RouteAbout     = "/about"
)

// IsAuthRoute reports whether path is the sign-in route or one of its sub-paths
func IsAuthRoute(path string) bool {
	return path == RouteAuth || strings.HasPrefix(path, RouteAuth+"/")
}

// IsPublicRoute reports whether path can be viewed without a session
func IsPublicRoute(path string) bool {
	return path == RouteRoot || path == RouteAbout
}

// Redirect decides where a visitor must be sent for the given session state and path.
// No decision is made while the session is still being restored or before any page is open.
func Redirect(authenticated, loading bool, path string) (string, bool) {
	if loading || path == "" {
		return "", false
	}

	authPage := IsAuthRoute(path)

	if !authenticated && !authPage && !IsPublicRoute(path) {
		return RouteAuth, true
	}

	if authenticated && authPage {
		return RouteDashboard, true
	}

	if path == RouteRoot {
		if authenticated {
			return RouteDashboard, true
		}
		return RouteAuth, true
	}

	return "", false
}
