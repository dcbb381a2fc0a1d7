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

// DashboardModule wires the dashboard aggregates and the admin analytics
// view.
type DashboardModule struct {
	Handler *handlers.DashboardHandler
	JWT     *helpers.JWTManager
}

func NewDashboardModule(h *handlers.DashboardHandler, jwt *helpers.JWTManager) *DashboardModule {
	return &DashboardModule{Handler: h, JWT: jwt}
}

func (m *DashboardModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/")
	auth.Use(middleware.Auth(container.GetRedis(), m.JWT))
	auth.Use(middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID(), nil))
	{
		auth.GET("/dashboard/stats", m.Handler.Stats)
		auth.GET("/dashboard/projects", m.Handler.Projects)
		auth.GET("/dashboard/tasks", m.Handler.Tasks)
		auth.GET("/analytics", middleware.RequireRoles(entity.RoleAdmin), m.Handler.Analytics)
	}
}
