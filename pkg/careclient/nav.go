package careclient

import "context"

// Link is one navigation entry.
type Link struct {
	Label string
	Route string
}

// Routes used by the navigation shell.
const (
	RouteLanding      = "/"
	RouteAuth         = "/auth"
	RouteDashboard    = "/dashboard"
	RouteMedications  = "/medications"
	RouteAppointments = "/appointments"
	RouteContacts     = "/emergency-contacts"
	RouteActivities   = "/activities"
	RouteProfile      = "/profile"
)

// Nav decides which navigation links are visible and handles the sign-out
// flow. Beyond the mobile menu flag everything it shows is derived from
// the session.
type Nav struct {
	session  *SessionContext
	menuOpen bool
}

func NewNav(session *SessionContext) *Nav {
	return &Nav{session: session}
}

// ToggleMenu flips the mobile menu and reports the new state.
func (n *Nav) ToggleMenu() bool {
	n.menuOpen = !n.menuOpen
	return n.menuOpen
}

// MenuOpen reports whether the mobile menu is showing.
func (n *Nav) MenuOpen() bool {
	return n.menuOpen
}

// Links returns the visible navigation entries. Signed-out visitors get
// the landing page and the sign-in prompt.
func (n *Nav) Links() []Link {
	if n.session.CurrentUser() == nil {
		return []Link{
			{Label: "Home", Route: RouteLanding},
			{Label: "Sign In", Route: RouteAuth},
		}
	}
	return []Link{
		{Label: "Dashboard", Route: RouteDashboard},
		{Label: "Medications", Route: RouteMedications},
		{Label: "Appointments", Route: RouteAppointments},
		{Label: "Emergency Contacts", Route: RouteContacts},
		{Label: "Activities", Route: RouteActivities},
		{Label: "Profile", Route: RouteProfile},
	}
}

// SignOut ends the session and reports where to go next. On failure the
// session is untouched and the caller stays where they are.
func (n *Nav) SignOut(ctx context.Context) (string, error) {
	if err := n.session.SignOut(ctx); err != nil {
		return "", err
	}
	return RouteLanding, nil
}
