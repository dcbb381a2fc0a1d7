package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/taskhive/taskhive/internal/container"
	handlers "github.com/taskhive/taskhive/internal/interface/http"
	"github.com/taskhive/taskhive/internal/interface/middleware"
	"github.com/taskhive/taskhive/pkg/helpers"
)

// TaskModule wires the task lifecycle routes plus full-text search.
type TaskModule struct {
	Handler *handlers.TaskHandler
	JWT     *helpers.JWTManager
}

func NewTaskModule(h *handlers.TaskHandler, jwt *helpers.JWTManager) *TaskModule {
	return &TaskModule{Handler: h, JWT: jwt}
}

func (m *TaskModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/")
	auth.Use(middleware.Auth(container.GetRedis(), m.JWT))
	auth.Use(middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID(), nil))
	{
		auth.GET("/tasks", m.Handler.List)
		auth.POST("/tasks", m.Handler.Create)
		auth.PATCH("/tasks/:id", m.Handler.Update)
		auth.DELETE("/tasks/:id", m.Handler.Delete)
		// Search tasks via Elasticsearch
		auth.GET("/tasks/search", m.Handler.Search)
	}
}
