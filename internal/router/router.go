package router

import (
	"strings"

	"github.com/Brownie44l1/webserver/internal/request"
	"github.com/Brownie44l1/webserver/internal/response"
)

// Handler is a function that handles one parsed request
type Handler func(w *response.Writer, req *request.Request)

// Route pairs a method with a literal path prefix
type Route struct {
	Method  string
	Prefix  string
	Handler Handler
}

// Router dispatches to the first registered route whose method matches
// exactly and whose prefix is a byte prefix of the path. There is no
// segment-boundary check: "/static" also matches "/staticfoo".
type Router struct {
	routes   []*Route
	notFound Handler
}

// New creates a new router
func New() *Router {
	return &Router{
		routes: make([]*Route, 0),
		notFound: func(w *response.Writer, _ *request.Request) {
			w.NotFound()
		},
	}
}

// Handle registers a new route. Routes are tried in registration order.
func (r *Router) Handle(method, prefix string, handler Handler) {
	r.routes = append(r.routes, &Route{
		Method:  method,
		Prefix:  prefix,
		Handler: handler,
	})
}

// GET is a shortcut for Handle("GET", ...)
func (r *Router) GET(prefix string, handler Handler) {
	r.Handle("GET", prefix, handler)
}

// NotFound replaces the fallback handler
func (r *Router) NotFound(handler Handler) {
	r.notFound = handler
}

// Match finds the first route for method and path
func (r *Router) Match(method, path string) *Route {
	for _, route := range r.routes {
		if route.Method != method {
			continue
		}
		if strings.HasPrefix(path, route.Prefix) {
			return route
		}
	}
	return nil
}

// ServeHTTP routes req, falling back to the not-found handler when req is
// nil or nothing matches.
func (r *Router) ServeHTTP(w *response.Writer, req *request.Request) {
	if req == nil {
		r.notFound(w, req)
		return
	}

	route := r.Match(req.Method, req.Path)
	if route == nil {
		r.notFound(w, req)
		return
	}

	route.Handler(w, req)
}
