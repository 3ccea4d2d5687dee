package handler

import (
	"dochouse/internal/middleware"
	"dochouse/internal/repository"

	"github.com/gin-gonic/gin"
)

// RouteEntry binds one protected route to the role it requires. Every
// privileged route must appear in a table like this; handlers never
// decide their own guards.
type RouteEntry struct {
	Method  string
	Path    string
	Role    string // empty means any authenticated caller
	Handler gin.HandlerFunc
}

// RegisterProtected attaches entries under rg, composing the auth
// middleware first and, where a role is named, a store-backed role
// guard after it.
func RegisterProtected(rg *gin.RouterGroup, authMW gin.HandlerFunc, userRepo repository.UserRepository, entries []RouteEntry) {
	for _, e := range entries {
		chain := []gin.HandlerFunc{authMW}
		if e.Role != "" {
			chain = append(chain, middleware.RequireRole(userRepo, e.Role))
		}
		chain = append(chain, e.Handler)
		rg.Handle(e.Method, e.Path, chain...)
	}
}
