package domain

// Destination is an abstract landing target. Handlers translate it into a
// redirect path; the core never renders anything.
type Destination string

const (
	DestinationLogin             Destination = "login"
	DestinationAdminDashboard    Destination = "admin_dashboard"
	DestinationCustomerDashboard Destination = "customer_dashboard"
)

// destinationPaths maps each destination to its canonical route.
var destinationPaths = map[Destination]string{
	DestinationLogin:             "/",
	DestinationAdminDashboard:    "/dashboard/admin/",
	DestinationCustomerDashboard: "/dashboard/customer/",
}

// Path returns the route for the destination. Unknown values fall back to
// the login entry point.
func (d Destination) Path() string {
	if p, ok := destinationPaths[d]; ok {
		return p
	}
	return destinationPaths[DestinationLogin]
}

// Session is the request-scoped authentication context. It is built per
// request from the verified token and passed explicitly into every guard.
type Session struct {
	Authenticated bool
	User          *User
}

// IsAdminAuthenticated reports whether the session belongs to an
// authenticated admin. Never panics: an anonymous session simply fails.
func (s Session) IsAdminAuthenticated() bool {
	return s.Authenticated && s.User != nil && s.User.Role.IsAdmin()
}

// ResolveDestination maps a user to its landing page. The login fallback is
// only reachable if the role invariant is violated in the store.
func ResolveDestination(u *User) Destination {
	switch {
	case u == nil:
		return DestinationLogin
	case u.Role.IsAdmin():
		return DestinationAdminDashboard
	case u.Role.IsCustomer():
		return DestinationCustomerDashboard
	default:
		return DestinationLogin
	}
}

// Outcome is the result of a guarded access decision.
type Outcome struct {
	Allowed bool
	// Destination is where an allowed request lands.
	Destination Destination
	// Message and Fallback describe a denial: user-facing text plus the
	// destination the caller is bounced to.
	Message  string
	Fallback Destination
}

// MsgAccessDenied is shown when an authenticated user hits a dashboard its
// role does not grant.
const MsgAccessDenied = "Access denied. You do not have permission to view this page."

func allowed(d Destination) Outcome {
	return Outcome{Allowed: true, Destination: d}
}

func denied(msg string, fallback Destination) Outcome {
	return Outcome{Message: msg, Fallback: fallback}
}

// GuardCustomerDashboard gates entry to the customer dashboard. An admin is
// bounced to its own dashboard, not to login; only anonymous callers land on
// the login page.
func GuardCustomerDashboard(s Session) Outcome {
	if !s.Authenticated || s.User == nil {
		return denied("", DestinationLogin)
	}
	if !s.User.Role.IsCustomer() {
		return denied(MsgAccessDenied, ResolveDestination(s.User))
	}
	return allowed(DestinationCustomerDashboard)
}

// GuardAdminDashboard gates entry to the admin dashboard and every account
// mutation. A failed admin check always falls back to the login entry point,
// regardless of role — a different policy than the customer guard.
func GuardAdminDashboard(s Session) Outcome {
	if !s.IsAdminAuthenticated() {
		return denied(MsgAccessDenied, DestinationLogin)
	}
	return allowed(DestinationAdminDashboard)
}
