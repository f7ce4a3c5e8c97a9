package router

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Brownie44l1/webserver/internal/request"
	"github.com/Brownie44l1/webserver/internal/response"
)

func named(name string) Handler {
	return func(w *response.Writer, _ *request.Request) {
		w.SendText(name)
	}
}

func newTestRouter() *Router {
	r := New()
	r.GET("/static", named("static"))
	r.GET("/calc", named("calc"))
	r.GET("/sleep", named("sleep"))
	return r
}

func serve(t *testing.T, r *Router, raw string) (string, response.Outcome) {
	t.Helper()

	var req *request.Request
	if raw != "" {
		var err error
		req, err = request.Parse([]byte(raw))
		require.NoError(t, err)
	}

	buf := &bytes.Buffer{}
	w := response.NewWriter(buf)
	r.ServeHTTP(w, req)

	out := buf.String()
	i := bytes.Index(buf.Bytes(), []byte("\r\n\r\n"))
	require.GreaterOrEqual(t, i, 0, "response has no header terminator: %q", out)
	return out[i+4:], w.Outcome()
}

func TestRouterDispatch(t *testing.T) {
	r := newTestRouter()

	tests := []struct {
		raw  string
		want string
	}{
		{"GET /static/index.html HTTP/1.1", "static"},
		{"GET /calc/add/1/2 HTTP/1.1", "calc"},
		{"GET /sleep/1 HTTP/1.1", "sleep"},
		// Literal byte prefix, not path segments
		{"GET /staticfoo HTTP/1.1", "static"},
		{"GET /calculator HTTP/1.1", "calc"},
		{"GET /sleepy HTTP/1.1", "sleep"},
	}

	for _, tt := range tests {
		body, outcome := serve(t, r, tt.raw)
		assert.Equal(t, tt.want, body, tt.raw)
		assert.Equal(t, response.OutcomeOK, outcome, tt.raw)
	}
}

func TestRouterNotFound(t *testing.T) {
	r := newTestRouter()

	tests := []string{
		"GET / HTTP/1.1",
		"GET /index.html HTTP/1.1",
		"GET /Static/x HTTP/1.1",
		"GET static/x HTTP/1.1",
		"POST /calc/add/1/2 HTTP/1.1",
		"get /calc/add/1/2 HTTP/1.1",
	}

	for _, raw := range tests {
		body, outcome := serve(t, r, raw)
		assert.Equal(t, response.NotFoundBody, body, raw)
		assert.Equal(t, response.OutcomeNotFound, outcome, raw)
	}
}

func TestRouterNilRequest(t *testing.T) {
	body, outcome := serve(t, newTestRouter(), "")
	assert.Equal(t, response.NotFoundBody, body)
	assert.Equal(t, response.OutcomeNotFound, outcome)
}

func TestRouterFirstMatchWins(t *testing.T) {
	r := New()
	r.GET("/a", named("short"))
	r.GET("/ab", named("long"))

	body, _ := serve(t, r, "GET /abc HTTP/1.1")
	assert.Equal(t, "short", body)
}

func TestRouterCustomNotFound(t *testing.T) {
	r := New()
	r.NotFound(named("custom"))

	body, _ := serve(t, r, "GET /nothing HTTP/1.1")
	assert.Equal(t, "custom", body)
}

func TestMatch(t *testing.T) {
	r := newTestRouter()

	route := r.Match("GET", "/calc/mul/2/3")
	require.NotNil(t, route)
	assert.Equal(t, "/calc", route.Prefix)

	assert.Nil(t, r.Match("PUT", "/calc/mul/2/3"))
	assert.Nil(t, r.Match("GET", "/cal"))
}
