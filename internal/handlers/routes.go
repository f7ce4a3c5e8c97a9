package handlers

import "github.com/Brownie44l1/webserver/internal/router"

// Routes registers the three GET prefixes in match order: /static, /calc,
// /sleep. Everything else is not found.
func Routes(staticDir string, confineStatic bool) *router.Router {
	r := router.New()
	r.GET("/static", NewStatic(staticDir, confineStatic).ServeHTTP)
	r.GET("/calc", Calc)
	r.GET("/sleep", NewSleep().ServeHTTP)
	return r
}
