package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/taskhive/taskhive/internal/container"
	"github.com/taskhive/taskhive/internal/domain/entity"
	handlers "github.com/taskhive/taskhive/internal/interface/http"
	"github.com/taskhive/taskhive/internal/interface/middleware"
	"github.com/taskhive/taskhive/pkg/helpers"
)

// UserModule wires the user listing routes.
// GET /api/users is admin only; GET /api/users/role/user also admits
// moderators. The role gates repeat inside the services so the rules hold
// even off the HTTP path.
type UserModule struct {
	Handler *handlers.UserHandler
	JWT     *helpers.JWTManager
}

func NewUserModule(h *handlers.UserHandler, jwt *helpers.JWTManager) *UserModule {
	return &UserModule{Handler: h, JWT: jwt}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/")
	auth.Use(middleware.Auth(container.GetRedis(), m.JWT))
	auth.Use(middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID(), nil))
	{
		auth.GET("/users", middleware.RequireRoles(entity.RoleAdmin), m.Handler.List)
		auth.GET("/users/role/user", middleware.RequireRoles(entity.RoleAdmin, entity.RoleModerator), m.Handler.ListAssignable)
	}
}
