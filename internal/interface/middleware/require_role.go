package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/taskhive/taskhive/internal/domain/entity"
	"github.com/taskhive/taskhive/pkg/response"
)

// RequireRoles rejects the request with 403 unless the session role is one
// of the allowed roles. Runs after Auth, so an absent role means the chain
// is misconfigured and the request is denied.
func RequireRoles(allowed ...entity.Role) gin.HandlerFunc {
	set := make(map[entity.Role]struct{}, len(allowed))
	for _, r := range allowed {
		set[r] = struct{}{}
	}
	return func(c *gin.Context) {
		role := entity.Role(c.GetString(CtxUserRoleKey))
		if _, ok := set[role]; !ok {
			response.Error[any](c, http.StatusForbidden, "forbidden", nil)
			return
		}
		c.Next()
	}
}
