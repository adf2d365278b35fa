package router

import (
	"fmt"
	"strings"
)

// Well-known destinations used by guard redirects.
const (
	PathLogin        = "/login"
	PathAccessDenied = "/unauthorized"
)

// Access is the static access requirement attached to a route at table
// construction time.
type Access struct {
	// RequiresAuth gates the route behind a live session. Implicitly true
	// for any route carrying RequiredRoles.
	RequiresAuth bool

	// RequiredRoles grants entry to sessions carrying at least one of the
	// named roles. Empty means any authenticated user.
	RequiredRoles []string
}

// Route is one navigable screen.
type Route struct {
	Path   string
	Title  string
	Access Access
}

// Table is the validated route table.
type Table struct {
	routes map[string]*Route
}

// NewTable validates the routes and builds the table. Construction rejects
// duplicate or blank paths, blank role names, and role requirements on
// routes that do not require authentication: the role guard is never the
// sole gate on a route.
func NewTable(routes []Route) (*Table, error) {
	t := &Table{routes: make(map[string]*Route, len(routes))}

	for i := range routes {
		r := routes[i]

		if r.Path == "" || !strings.HasPrefix(r.Path, "/") {
			return nil, fmt.Errorf("route %q: path must start with /", r.Path)
		}
		if _, dup := t.routes[r.Path]; dup {
			return nil, fmt.Errorf("route %q: duplicate path", r.Path)
		}
		if len(r.Access.RequiredRoles) > 0 && !r.Access.RequiresAuth {
			return nil, fmt.Errorf("route %q: required roles without required authentication", r.Path)
		}
		for _, role := range r.Access.RequiredRoles {
			if strings.TrimSpace(role) == "" {
				return nil, fmt.Errorf("route %q: blank role name", r.Path)
			}
		}

		t.routes[r.Path] = &r
	}

	return t, nil
}

// Lookup returns the route registered at path.
func (t *Table) Lookup(path string) (*Route, bool) {
	r, ok := t.routes[path]
	return r, ok
}
