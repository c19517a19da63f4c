package domain

import "testing"

func TestParseRole(t *testing.T) {
	if r, err := ParseRole("ADMIN"); err != nil || r != RoleAdmin {
		t.Fatalf("expected RoleAdmin, got %q err=%v", r, err)
	}
	if r, err := ParseRole("CUSTOMER"); err != nil || r != RoleCustomer {
		t.Fatalf("expected RoleCustomer, got %q err=%v", r, err)
	}
	if r, err := ParseRole(""); err != nil || r != RoleCustomer {
		t.Fatalf("expected default role for empty input, got %q err=%v", r, err)
	}
	if _, err := ParseRole("ROOT"); err != ErrInvalidRole {
		t.Fatalf("expected ErrInvalidRole, got %v", err)
	}
}

func TestRolePredicates_Disjoint(t *testing.T) {
	for _, r := range []Role{RoleAdmin, RoleCustomer} {
		if r.IsAdmin() == r.IsCustomer() {
			t.Fatalf("role %q: predicates must be mutually exclusive", r)
		}
		if !r.IsAdmin() && !r.IsCustomer() {
			t.Fatalf("role %q: exactly one predicate must hold", r)
		}
	}
}

func TestResolveDestination(t *testing.T) {
	admin := &User{ID: 1, Username: "root", Role: RoleAdmin}
	customer := &User{ID: 2, Username: "alice", Role: RoleCustomer}

	if d := ResolveDestination(admin); d != DestinationAdminDashboard {
		t.Fatalf("expected admin dashboard, got %q", d)
	}
	if d := ResolveDestination(customer); d != DestinationCustomerDashboard {
		t.Fatalf("expected customer dashboard, got %q", d)
	}
	// pure: same input, same answer
	if ResolveDestination(customer) != ResolveDestination(customer) {
		t.Fatalf("resolver is not deterministic")
	}
	// defensive arm: corrupted role lands on login
	if d := ResolveDestination(&User{ID: 3, Role: "GHOST"}); d != DestinationLogin {
		t.Fatalf("expected login fallback for invalid role, got %q", d)
	}
	if d := ResolveDestination(nil); d != DestinationLogin {
		t.Fatalf("expected login for nil user, got %q", d)
	}
}

func TestGuardCustomerDashboard(t *testing.T) {
	admin := &User{ID: 1, Role: RoleAdmin}
	customer := &User{ID: 2, Role: RoleCustomer}

	out := GuardCustomerDashboard(Session{Authenticated: true, User: customer})
	if !out.Allowed || out.Destination != DestinationCustomerDashboard {
		t.Fatalf("customer should be allowed: %+v", out)
	}

	// an admin is bounced to the admin dashboard, not to login
	out = GuardCustomerDashboard(Session{Authenticated: true, User: admin})
	if out.Allowed {
		t.Fatalf("admin must not enter the customer dashboard")
	}
	if out.Fallback != DestinationAdminDashboard {
		t.Fatalf("expected admin dashboard fallback, got %q", out.Fallback)
	}
	if out.Message != MsgAccessDenied {
		t.Fatalf("unexpected message: %q", out.Message)
	}

	out = GuardCustomerDashboard(Session{})
	if out.Allowed || out.Fallback != DestinationLogin {
		t.Fatalf("anonymous caller must be routed to login: %+v", out)
	}
}

func TestGuardAdminDashboard(t *testing.T) {
	admin := &User{ID: 1, Role: RoleAdmin}
	customer := &User{ID: 2, Role: RoleCustomer}

	out := GuardAdminDashboard(Session{Authenticated: true, User: admin})
	if !out.Allowed || out.Destination != DestinationAdminDashboard {
		t.Fatalf("admin should be allowed: %+v", out)
	}

	// a customer falls back to login, never to its own dashboard
	out = GuardAdminDashboard(Session{Authenticated: true, User: customer})
	if out.Allowed || out.Fallback != DestinationLogin {
		t.Fatalf("customer denial must fall back to login: %+v", out)
	}

	out = GuardAdminDashboard(Session{User: admin})
	if out.Allowed {
		t.Fatalf("unauthenticated session must fail the admin check")
	}
}

func TestDestinationPath(t *testing.T) {
	if DestinationAdminDashboard.Path() != "/dashboard/admin/" {
		t.Fatalf("unexpected admin path: %s", DestinationAdminDashboard.Path())
	}
	if Destination("bogus").Path() != "/" {
		t.Fatalf("unknown destination must fall back to login path")
	}
}
