package router

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/imarchenko/stockroom/internal/logging"
)

// ErrNoRoute is returned when the target path is not in the table.
var ErrNoRoute = errors.New("no such route")

// maxRedirects bounds denial chains; two hops (target → login or
// access-denied) is the normal worst case.
const maxRedirects = 4

// Navigator owns the route table and the two-stage guard pipeline:
// authenticate, then authorize, with early exit. It tracks the current
// location and follows a denial's redirect to its destination.
type Navigator struct {
	table        *Table
	authenticate Guard
	authorize    Guard
	log          logging.Logger

	mu      sync.Mutex
	gen     uint64
	current string
}

func NewNavigator(table *Table, authenticate, authorize Guard, log logging.Logger) *Navigator {
	return &Navigator{
		table:        table,
		authenticate: authenticate,
		authorize:    authorize,
		log:          log.With("component", "navigator"),
	}
}

// Navigate moves to target, running the guards. When a guard denies, the
// redirect is followed and the landed route is returned. A navigation
// superseded by a newer one before it resolves leaves the current location
// untouched; the guards' session side effects are atomic and commit either
// way.
func (n *Navigator) Navigate(ctx context.Context, target string) (*Route, error) {
	n.mu.Lock()
	n.gen++
	gen := n.gen
	n.mu.Unlock()

	location := target
	for hop := 0; hop < maxRedirects; hop++ {
		path := pathOnly(location)

		route, ok := n.table.Lookup(path)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrNoRoute, path)
		}

		d := n.authenticate.Check(ctx, route, location)
		if d.Allowed {
			d = n.authorize.Check(ctx, route, location)
		}
		if !d.Allowed {
			n.log.Debug(ctx, "navigation denied", "target", location, "redirect", d.RedirectTo)
			location = d.RedirectTo
			continue
		}

		n.mu.Lock()
		if gen == n.gen {
			n.current = location
		}
		n.mu.Unlock()
		return route, nil
	}

	return nil, fmt.Errorf("redirect chain from %s did not settle", target)
}

// Current returns the current location, including any query.
func (n *Navigator) Current() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.current
}

// CurrentPath returns the current location without its query.
func (n *Navigator) CurrentPath() string {
	return pathOnly(n.Current())
}

// ReturnURL returns the returnUrl parameter of the current location, or ""
// when none is present.
func (n *Navigator) ReturnURL() string {
	return queryParam(n.Current(), "returnUrl")
}

func pathOnly(location string) string {
	if i := strings.IndexByte(location, '?'); i >= 0 {
		return location[:i]
	}
	return location
}

func queryParam(location, name string) string {
	i := strings.IndexByte(location, '?')
	if i < 0 {
		return ""
	}
	values, err := url.ParseQuery(location[i+1:])
	if err != nil {
		return ""
	}
	return values.Get(name)
}
