package careclient

import (
	"context"
	"testing"
)

func TestNavLinksSignedOut(t *testing.T) {
	nav := NewNav(NewSessionContext(newFakeBackend()))

	links := nav.Links()
	if len(links) != 2 || links[0].Route != RouteLanding || links[1].Route != RouteAuth {
		t.Errorf("links = %+v, want landing and sign-in only", links)
	}
}

func TestNavToggleMenu(t *testing.T) {
	nav := NewNav(NewSessionContext(newFakeBackend()))

	if nav.MenuOpen() {
		t.Error("menu should start closed")
	}
	if !nav.ToggleMenu() {
		t.Error("first toggle should open the menu")
	}
	if nav.ToggleMenu() {
		t.Error("second toggle should close the menu")
	}
}

func TestNavLinksSignedIn(t *testing.T) {
	sess := NewSessionContext(newFakeBackend())
	if err := sess.SignIn(context.Background(), "mary@example.com", "pw"); err != nil {
		t.Fatalf("SignIn() error = %v", err)
	}
	nav := NewNav(sess)

	links := nav.Links()
	routes := make(map[string]bool)
	for _, l := range links {
		routes[l.Route] = true
	}
	for _, want := range []string{RouteDashboard, RouteMedications, RouteAppointments, RouteContacts, RouteActivities, RouteProfile} {
		if !routes[want] {
			t.Errorf("missing link to %s", want)
		}
	}
	if routes[RouteLanding] {
		t.Error("signed-in nav should not show the landing link")
	}
}

func TestNavSignOutRedirects(t *testing.T) {
	sess := NewSessionContext(newFakeBackend())
	if err := sess.SignIn(context.Background(), "mary@example.com", "pw"); err != nil {
		t.Fatalf("SignIn() error = %v", err)
	}
	nav := NewNav(sess)

	route, err := nav.SignOut(context.Background())
	if err != nil {
		t.Fatalf("SignOut() error = %v", err)
	}
	if route != RouteLanding {
		t.Errorf("route = %q, want landing", route)
	}
	if sess.CurrentUser() != nil {
		t.Error("expected session cleared")
	}
}

func TestNavSignOutFailureStaysPut(t *testing.T) {
	backend := newFakeBackend()
	sess := NewSessionContext(backend)
	if err := sess.SignIn(context.Background(), "mary@example.com", "pw"); err != nil {
		t.Fatalf("SignIn() error = %v", err)
	}
	backend.signOutErr = errBackendDown
	nav := NewNav(sess)

	if _, err := nav.SignOut(context.Background()); err == nil {
		t.Fatal("expected sign-out to fail")
	}
	if sess.CurrentUser() == nil {
		t.Error("failed sign-out must leave the session")
	}
	if len(nav.Links()) == 1 {
		t.Error("nav must still show the signed-in links")
	}
}
