package service

import (
	"phonegate/internal/domain"

	"go.uber.org/zap"
)

// RouteGuard redirects a visitor based on session state and current page.
// It re-runs on every session change and every navigation.
type RouteGuard struct {
	session *SessionStore
	nav     Navigator
	logger  *zap.Logger
}

// NewRouteGuard creates a guard; call Start to begin watching
func NewRouteGuard(session *SessionStore, nav Navigator, logger *zap.Logger) *RouteGuard {
	return &RouteGuard{
		session: session,
		nav:     nav,
		logger:  logger,
	}
}

// Start subscribes to session and path changes, evaluates once and returns a stop function
func (g *RouteGuard) Start() (stop func()) {
	unsubSession := g.session.Subscribe(g.Evaluate)
	unsubNav := g.nav.Subscribe(func(string) { g.Evaluate() })

	g.Evaluate()

	return func() {
		unsubSession()
		unsubNav()
	}
}

// Evaluate applies the redirect policy to the current state
func (g *RouteGuard) Evaluate() {
	_, authenticated := g.session.Token()
	path := g.nav.CurrentPath()

	target, ok := domain.Redirect(authenticated, g.session.IsLoading(), path)
	if !ok {
		return
	}

	g.logger.Debug("Redirecting",
		zap.String("from", path),
		zap.String("to", target),
		zap.Bool("authenticated", authenticated),
	)
	g.nav.Navigate(target)
}
