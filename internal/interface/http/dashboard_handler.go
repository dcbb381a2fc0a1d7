package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/taskhive/taskhive/internal/application"
	"github.com/taskhive/taskhive/internal/interface/middleware"
	"github.com/taskhive/taskhive/pkg/response"
)

type DashboardHandler struct {
	Svc    *application.DashboardService
	Logger *logrus.Logger
}

func NewDashboardHandler(svc *application.DashboardService, logger *logrus.Logger) *DashboardHandler {
	return &DashboardHandler{Svc: svc, Logger: logger}
}

// Stats returns the role-specific dashboard aggregate.
func (h *DashboardHandler) Stats(c *gin.Context) {
	stats, err := h.Svc.Stats(c.Request.Context(), middleware.ActorFrom(c))
	if err != nil {
		writeServiceError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, stats, "dashboard stats", nil)
}

func (h *DashboardHandler) Projects(c *gin.Context) {
	projects, err := h.Svc.DashboardProjects(c.Request.Context(), middleware.ActorFrom(c))
	if err != nil {
		writeServiceError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, projects, "dashboard projects", nil)
}

func (h *DashboardHandler) Tasks(c *gin.Context) {
	tasks, err := h.Svc.DashboardTasks(c.Request.Context(), middleware.ActorFrom(c))
	if err != nil {
		writeServiceError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, tasks, "dashboard tasks", nil)
}

// Analytics is the admin-only chart data endpoint.
func (h *DashboardHandler) Analytics(c *gin.Context) {
	a, err := h.Svc.ComputeAnalytics(c.Request.Context(), middleware.ActorFrom(c))
	if err != nil {
		writeServiceError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, a, "analytics", nil)
}
