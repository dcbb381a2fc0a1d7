package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/taskhive/taskhive/internal/application"
	"github.com/taskhive/taskhive/internal/interface/middleware"
	"github.com/taskhive/taskhive/pkg/response"
)

type UserHandler struct {
	Svc    *application.UserService
	Logger *logrus.Logger
}

func NewUserHandler(svc *application.UserService, logger *logrus.Logger) *UserHandler {
	return &UserHandler{Svc: svc, Logger: logger}
}

// List is the admin-only full user listing.
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.Svc.ListAll(c.Request.Context(), middleware.ActorFrom(c))
	if err != nil {
		writeServiceError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, users, "users", nil)
}

// ListAssignable returns plain users, for assignee pickers.
func (h *UserHandler) ListAssignable(c *gin.Context) {
	users, err := h.Svc.ListAssignable(c.Request.Context(), middleware.ActorFrom(c))
	if err != nil {
		writeServiceError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, users, "assignable users", nil)
}
