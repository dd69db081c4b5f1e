package app

import (
	"fmt"
	"regexp"

	"github.com/signet-labs/signet"
	"github.com/signet-labs/signet/errors"
)

// isPath defines valid message paths, eg. "multisig/confirm".
var isPath = regexp.MustCompile(`^[a-z0-9_]+(/[a-z0-9_]+)*$`).MatchString

// Router maps message paths to handlers.
type Router struct {
	routes map[string]signet.Handler
}

var _ signet.Registry = (*Router)(nil)

// NewRouter initializes a router with no routes
func NewRouter() *Router {
	return &Router{
		routes: make(map[string]signet.Handler),
	}
}

// Handle adds a new route. It panics on an invalid path or when the
// path is registered already, as both are programmer errors.
func (r *Router) Handle(path string, h signet.Handler) {
	if !isPath(path) {
		panic(fmt.Sprintf("invalid path: %q", path))
	}
	if _, ok := r.routes[path]; ok {
		panic(fmt.Sprintf("duplicate path: %q", path))
	}
	r.routes[path] = h
}

// Handler returns the registered handler. It always returns a non-nil
// handler, unknown paths resolve to one that fails with a not found
// error.
func (r *Router) Handler(path string) signet.Handler {
	if h, ok := r.routes[path]; ok {
		return h
	}
	return notFoundHandler(path)
}

type notFoundHandler string

var _ signet.Handler = notFoundHandler("")

func (p notFoundHandler) Check(ctx signet.Context, db signet.KVStore, tx signet.Tx) (signet.CheckResult, error) {
	return signet.CheckResult{}, errors.Wrapf(errors.ErrNotFound, "no handler for path %q", string(p))
}

func (p notFoundHandler) Deliver(ctx signet.Context, db signet.KVStore, tx signet.Tx) (signet.DeliverResult, error) {
	return signet.DeliverResult{}, errors.Wrapf(errors.ErrNotFound, "no handler for path %q", string(p))
}
