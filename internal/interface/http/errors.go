package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/taskhive/taskhive/internal/application"
	"github.com/taskhive/taskhive/pkg/response"
)

// writeServiceError maps the application error taxonomy onto HTTP statuses.
// Authorization failures stay distinguishable from not-found so a caller can
// tell "you may not" from "it does not exist". Anything outside the taxonomy
// is a 500 and gets logged.
func writeServiceError(c *gin.Context, logger *logrus.Logger, err error) {
	switch {
	case errors.Is(err, application.ErrInvalidCredentials):
		response.Error[any](c, http.StatusUnauthorized, "invalid username or password", nil)
	case errors.Is(err, application.ErrForbidden):
		response.Error[any](c, http.StatusForbidden, err.Error(), nil)
	case errors.Is(err, application.ErrNotFound):
		response.Error[any](c, http.StatusNotFound, "not found", nil)
	case errors.Is(err, application.ErrValidation), errors.Is(err, application.ErrConflict):
		response.Error[any](c, http.StatusBadRequest, err.Error(), nil)
	default:
		if logger != nil {
			logger.WithError(err).Error("unhandled service error")
		}
		response.Error[any](c, http.StatusInternalServerError, "internal server error", nil)
	}
}
