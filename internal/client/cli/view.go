package cli

// View identifies a navigable screen by its stable path.
type View string

const (
	// ViewEntry is the public login/signup screen.
	ViewEntry View = "/"

	// ViewDashboard is the protected data screen.
	ViewDashboard View = "/dashboard"
)

// EvaluateGuard reconciles a view about to be shown with the current session
// state and returns the view that should actually be rendered: the entry
// screen is skipped for an authenticated user, the dashboard is unreachable
// for an anonymous one. The guard only observes; it never changes session
// state itself.
func EvaluateGuard(view View, authenticated bool) View {
	switch view {
	case ViewEntry:
		if authenticated {
			return ViewDashboard
		}
	case ViewDashboard:
		if !authenticated {
			return ViewEntry
		}
	}
	return view
}
