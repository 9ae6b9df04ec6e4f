package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/grupocrm/crm-system/internal/api/metrics"
)

type access int

const (
	accessPublic access = iota
	accessAuthenticated
	accessRoles
)

// Rule binds a route pattern to an access requirement. Patterns are
// slash-separated; "*" matches exactly one segment and a trailing "**"
// matches the rest of the path.
type Rule struct {
	pattern string
	access  access
	roles   map[string]struct{}
}

// Public declares a route reachable without any authentication. Role checks
// are bypassed entirely, so a broken token cannot lock a client out.
func Public(pattern string) Rule {
	return Rule{pattern: pattern, access: accessPublic}
}

// Authenticated declares a route open to any authenticated principal.
func Authenticated(pattern string) Rule {
	return Rule{pattern: pattern, access: accessAuthenticated}
}

// RequireRoles declares a route open only to principals holding one of the
// given roles.
func RequireRoles(pattern string, roles ...string) Rule {
	set := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		set[r] = struct{}{}
	}
	return Rule{pattern: pattern, access: accessRoles, roles: set}
}

// Policy evaluates the ordered rule table against the request path after the
// Auth filter has run. The first matching rule wins; when no rule matches,
// the implicit final rule applies: any authenticated principal is admitted.
// Unauthenticated access yields 401, insufficient role yields 403, so a
// client can tell "log in" apart from "you don't have permission".
func Policy(rules ...Rule) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			rule, matched := firstMatch(rules, c.Request().URL.Path)
			if matched && rule.access == accessPublic {
				metrics.AuthzDecisionsTotal.WithLabelValues("public").Inc()
				return next(c)
			}

			principal, ok := PrincipalFrom(c)
			if !ok {
				metrics.AuthzDecisionsTotal.WithLabelValues("unauthenticated").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
			}

			if matched && rule.access == accessRoles {
				if _, allowed := rule.roles[principal.Role]; !allowed {
					metrics.AuthzDecisionsTotal.WithLabelValues("forbidden").Inc()
					return echo.NewHTTPError(http.StatusForbidden, "insufficient role")
				}
			}

			metrics.AuthzDecisionsTotal.WithLabelValues("allowed").Inc()
			return next(c)
		}
	}
}

func firstMatch(rules []Rule, path string) (Rule, bool) {
	for _, r := range rules {
		if matchPattern(r.pattern, path) {
			return r, true
		}
	}
	return Rule{}, false
}

// matchPattern matches a slash-separated pattern against a request path.
// "*" matches one segment, a trailing "**" matches any remainder including
// the empty one.
func matchPattern(pattern, path string) bool {
	pp := splitPath(pattern)
	sp := splitPath(path)

	for i, seg := range pp {
		if seg == "**" {
			return true
		}
		if i >= len(sp) {
			return false
		}
		if seg != "*" && seg != sp[i] {
			return false
		}
	}
	return len(pp) == len(sp)
}

func splitPath(p string) []string {
	p = strings.Trim(p, "/")
	if p == "" {
		return nil
	}
	return strings.Split(p, "/")
}
