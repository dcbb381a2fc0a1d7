package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/taskhive/taskhive/internal/container"
	handlers "github.com/taskhive/taskhive/internal/interface/http"
	"github.com/taskhive/taskhive/internal/interface/middleware"
	"github.com/taskhive/taskhive/pkg/helpers"
)

// ProjectModule wires the project CRUD routes. Every route is authenticated;
// ownership rules live in the service, not here.
type ProjectModule struct {
	Handler *handlers.ProjectHandler
	JWT     *helpers.JWTManager
}

func NewProjectModule(h *handlers.ProjectHandler, jwt *helpers.JWTManager) *ProjectModule {
	return &ProjectModule{Handler: h, JWT: jwt}
}

func (m *ProjectModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/")
	auth.Use(middleware.Auth(container.GetRedis(), m.JWT))
	auth.Use(middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID(), nil))
	{
		auth.GET("/projects", m.Handler.List)
		auth.POST("/projects", m.Handler.Create)
		auth.GET("/projects/:id", m.Handler.Get)
		auth.PATCH("/projects/:id", m.Handler.Update)
		auth.DELETE("/projects/:id", m.Handler.Delete)
	}
}
