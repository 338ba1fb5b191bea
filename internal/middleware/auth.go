package middleware

import (
	"github.com/gin-gonic/gin"

	"aether/internal/model"
)

const scopeKey = "aether.scope"

// Auth resolves the caller identity from request headers and stores a
// model.Scope on the gin context. Requests without a workspace header
// fall back to the configured default workspace.
func (mw Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		sc := model.Scope{
			UserID:      c.GetHeader("X-User-ID"),
			Username:    c.GetHeader("X-Username"),
			WorkspaceID: c.GetHeader("X-Workspace-ID"),
		}
		if sc.WorkspaceID == "" {
			sc.WorkspaceID = mw.defaultWorkspaceID
		}

		c.Set(scopeKey, sc)
		c.Next()
	}
}

// ScopeFromGin extracts the model.Scope stored by Auth. Returns the
// zero scope when the middleware did not run.
func ScopeFromGin(c *gin.Context) model.Scope {
	v, ok := c.Get(scopeKey)
	if !ok {
		return model.Scope{}
	}
	sc, ok := v.(model.Scope)
	if !ok {
		return model.Scope{}
	}
	return sc
}
