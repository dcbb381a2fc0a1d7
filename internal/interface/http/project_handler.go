package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/taskhive/taskhive/internal/application"
	"github.com/taskhive/taskhive/internal/domain/repository"
	"github.com/taskhive/taskhive/internal/interface/middleware"
	"github.com/taskhive/taskhive/pkg/response"
	"github.com/taskhive/taskhive/pkg/validation"
)

type ProjectHandler struct {
	Svc    *application.ProjectService
	Logger *logrus.Logger
}

func NewProjectHandler(svc *application.ProjectService, logger *logrus.Logger) *ProjectHandler {
	return &ProjectHandler{Svc: svc, Logger: logger}
}

type createProjectRequest struct {
	Name        string  `json:"name" binding:"required,min=1,max=255"`
	Description string  `json:"description"`
	ManagerID   *string `json:"managerId" binding:"omitempty,uuid"`
	IsActive    *bool   `json:"isActive"`
}

type updateProjectRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=1,max=255"`
	Description *string `json:"description"`
	ManagerID   *string `json:"managerId" binding:"omitempty,uuid"`
	IsActive    *bool   `json:"isActive"`
}

func (h *ProjectHandler) List(c *gin.Context) {
	projects, err := h.Svc.List(c.Request.Context(), middleware.ActorFrom(c))
	if err != nil {
		writeServiceError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, projects, "projects", nil)
}

func (h *ProjectHandler) Get(c *gin.Context) {
	p, err := h.Svc.Get(c.Request.Context(), middleware.ActorFrom(c), c.Param("id"))
	if err != nil {
		writeServiceError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, p, "project", nil)
}

func (h *ProjectHandler) Create(c *gin.Context) {
	var req createProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	p, err := h.Svc.Create(c.Request.Context(), middleware.ActorFrom(c), application.CreateProjectInput{
		Name:        req.Name,
		Description: req.Description,
		ManagerID:   req.ManagerID,
		IsActive:    req.IsActive,
	})
	if err != nil {
		writeServiceError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusCreated, p, "project created", nil)
}

func (h *ProjectHandler) Update(c *gin.Context) {
	var req updateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	p, err := h.Svc.Update(c.Request.Context(), middleware.ActorFrom(c), c.Param("id"), repository.ProjectUpdate{
		Name:        req.Name,
		Description: req.Description,
		ManagerID:   req.ManagerID,
		IsActive:    req.IsActive,
	})
	if err != nil {
		writeServiceError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, p, "project updated", nil)
}

func (h *ProjectHandler) Delete(c *gin.Context) {
	if err := h.Svc.Delete(c.Request.Context(), middleware.ActorFrom(c), c.Param("id")); err != nil {
		writeServiceError(c, h.Logger, err)
		return
	}
	response.Success[any](c, http.StatusOK, map[string]any{"deleted": true}, "project deleted", nil)
}
