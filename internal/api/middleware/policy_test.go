package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/grupocrm/crm-system/internal/core/domain"
)

func policyContext(path string, principal *domain.Principal) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if principal != nil {
		c.Set(principalKey, *principal)
	}
	return c
}

func testRules() []Rule {
	return []Rule{
		Public("/auth/**"),
		Public("/health/**"),
		RequireRoles("/admin/**", domain.RoleAdmin),
		RequireRoles("/tasks/**", domain.RoleUser, domain.RoleAdmin),
	}
}

func runPolicy(c echo.Context, rules ...Rule) (bool, error) {
	called := false
	handler := Policy(rules...)(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})
	return called, handler(c)
}

func httpStatus(t *testing.T, err error) int {
	t.Helper()
	var he *echo.HTTPError
	if !errors.As(err, &he) {
		t.Fatalf("expected *echo.HTTPError, got %v", err)
	}
	return he.Code
}

func TestPolicy_PublicRouteWithoutPrincipal(t *testing.T) {
	c := policyContext("/auth/login", nil)
	called, err := runPolicy(c, testRules()...)
	if err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("public route must be reachable unauthenticated")
	}
}

func TestPolicy_ProtectedRouteWithoutPrincipal(t *testing.T) {
	c := policyContext("/tasks", nil)
	called, err := runPolicy(c, testRules()...)
	if called {
		t.Fatalf("handler must not run unauthenticated")
	}
	if code := httpStatus(t, err); code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", code)
	}
}

func TestPolicy_InsufficientRole(t *testing.T) {
	c := policyContext("/admin/activities", &domain.Principal{Username: "alice", Role: domain.RoleUser})
	called, err := runPolicy(c, testRules()...)
	if called {
		t.Fatalf("handler must not run with insufficient role")
	}
	if code := httpStatus(t, err); code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", code)
	}
}

func TestPolicy_AdminAllowed(t *testing.T) {
	c := policyContext("/admin/activities", &domain.Principal{Username: "root", Role: domain.RoleAdmin})
	called, err := runPolicy(c, testRules()...)
	if err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("admin must reach admin routes")
	}
}

func TestPolicy_OperatorAllowed(t *testing.T) {
	c := policyContext("/tasks", &domain.Principal{Username: "alice", Role: domain.RoleUser})
	called, err := runPolicy(c, testRules()...)
	if err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("user must reach task routes")
	}
}

func TestPolicy_FirstMatchWins(t *testing.T) {
	// A broad public rule listed first shadows the stricter rule below it.
	rules := []Rule{
		Public("/admin/status"),
		RequireRoles("/admin/**", domain.RoleAdmin),
	}

	c := policyContext("/admin/status", nil)
	called, err := runPolicy(c, rules...)
	if err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("first matching rule must win")
	}

	c = policyContext("/admin/activities", nil)
	called, err = runPolicy(c, rules...)
	if called {
		t.Fatalf("later rule must still apply to other paths")
	}
	if code := httpStatus(t, err); code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", code)
	}
}

func TestPolicy_ImplicitRuleRequiresAuthentication(t *testing.T) {
	// No rule matches /unlisted: the implicit final rule admits any
	// authenticated principal and rejects anonymous callers.
	c := policyContext("/unlisted", nil)
	called, err := runPolicy(c, testRules()...)
	if called {
		t.Fatalf("unmatched route must not run unauthenticated")
	}
	if code := httpStatus(t, err); code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", code)
	}

	c = policyContext("/unlisted", &domain.Principal{Username: "alice", Role: domain.RoleUser})
	called, err = runPolicy(c, testRules()...)
	if err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("authenticated principal must pass the implicit rule")
	}
}

func TestMatchPattern(t *testing.T) {
	cases := []struct {
		pattern string
		path    string
		want    bool
	}{
		{"/auth/**", "/auth/login", true},
		{"/auth/**", "/auth/login/extra", true},
		{"/auth/**", "/auth", true},
		{"/auth/**", "/authx", false},
		{"/tasks/*", "/tasks/42", true},
		{"/tasks/*", "/tasks/42/sub", false},
		{"/tasks/*", "/tasks", false},
		{"/metrics", "/metrics", true},
		{"/metrics", "/metrics/extra", false},
		{"/*/activities", "/admin/activities", true},
		{"/*/activities", "/admin/other", false},
	}
	for _, tc := range cases {
		if got := matchPattern(tc.pattern, tc.path); got != tc.want {
			t.Errorf("matchPattern(%q, %q) = %v, want %v", tc.pattern, tc.path, got, tc.want)
		}
	}
}
