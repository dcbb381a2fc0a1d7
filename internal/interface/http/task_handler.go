package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/taskhive/taskhive/internal/application"
	"github.com/taskhive/taskhive/internal/domain/entity"
	"github.com/taskhive/taskhive/internal/domain/lifecycle"
	"github.com/taskhive/taskhive/internal/interface/middleware"
	"github.com/taskhive/taskhive/pkg/response"
	"github.com/taskhive/taskhive/pkg/validation"
)

type TaskHandler struct {
	Svc    *application.TaskService
	Logger *logrus.Logger
}

func NewTaskHandler(svc *application.TaskService, logger *logrus.Logger) *TaskHandler {
	return &TaskHandler{Svc: svc, Logger: logger}
}

type createTaskRequest struct {
	ProjectID    string  `json:"projectId" binding:"required,uuid"`
	Title        string  `json:"title" binding:"required,min=1,max=255"`
	Description  string  `json:"description"`
	AssignedToID *string `json:"assignedToId" binding:"omitempty,uuid"`
}

type updateTaskRequest struct {
	Title           *string `json:"title" binding:"omitempty,min=1,max=255"`
	Description     *string `json:"description"`
	Status          *string `json:"status" binding:"omitempty,oneof=open in_progress resolved closed"`
	AssignedToID    *string `json:"assignedToId"`
	ResolutionNotes *string `json:"resolutionNotes"`
	IsVerified      *bool   `json:"isVerified"`
}

func (r updateTaskRequest) patch() lifecycle.Patch {
	p := lifecycle.Patch{
		Title:           r.Title,
		Description:     r.Description,
		AssignedToID:    r.AssignedToID,
		ResolutionNotes: r.ResolutionNotes,
		IsVerified:      r.IsVerified,
	}
	if r.Status != nil {
		st := entity.TaskStatus(*r.Status)
		p.Status = &st
	}
	return p
}

func (h *TaskHandler) List(c *gin.Context) {
	tasks, err := h.Svc.List(c.Request.Context(), middleware.ActorFrom(c))
	if err != nil {
		writeServiceError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, tasks, "tasks", nil)
}

func (h *TaskHandler) Create(c *gin.Context) {
	var req createTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	t, err := h.Svc.Create(c.Request.Context(), middleware.ActorFrom(c), application.CreateTaskInput{
		ProjectID:    req.ProjectID,
		Title:        req.Title,
		Description:  req.Description,
		AssignedToID: req.AssignedToID,
	})
	if err != nil {
		writeServiceError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusCreated, t, "task created", nil)
}

func (h *TaskHandler) Update(c *gin.Context) {
	var req updateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	t, err := h.Svc.Update(c.Request.Context(), middleware.ActorFrom(c), c.Param("id"), req.patch())
	if err != nil {
		writeServiceError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, t, "task updated", nil)
}

func (h *TaskHandler) Delete(c *gin.Context) {
	if err := h.Svc.Delete(c.Request.Context(), middleware.ActorFrom(c), c.Param("id")); err != nil {
		writeServiceError(c, h.Logger, err)
		return
	}
	response.Success[any](c, http.StatusOK, map[string]any{"deleted": true}, "task deleted", nil)
}

// Search runs the full-text task search, still bounded by the caller's
// regular visibility.
func (h *TaskHandler) Search(c *gin.Context) {
	q := c.Query("q")
	if q == "" {
		response.Error[any](c, http.StatusBadRequest, "missing query parameter q", nil)
		return
	}
	size, _ := strconv.Atoi(c.DefaultQuery("size", "10"))
	tasks, err := h.Svc.Search(c.Request.Context(), middleware.ActorFrom(c), q, size)
	if err != nil {
		writeServiceError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, tasks, "search results", nil)
}
