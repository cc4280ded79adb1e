package handler

import (
	"errors"
	"net/http"

	"fleetflow/internal/ifta"
	"fleetflow/internal/service"
	"fleetflow/pkg/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// writeError maps the IFTA error taxonomy onto HTTP statuses.
func writeError(c *gin.Context, log *zap.Logger, err error) {
	var validationErr *ifta.ValidationError
	var dependencyErr *ifta.DependencyError

	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, response.Invalid(http.StatusBadRequest, validationErr.Errors))
	case errors.Is(err, ifta.ErrNotFound):
		c.JSON(http.StatusNotFound, response.Error(http.StatusNotFound, err.Error()))
	case errors.Is(err, ifta.ErrReturnFiled):
		c.JSON(http.StatusConflict, response.Error(http.StatusConflict, err.Error()))
	case errors.Is(err, service.ErrELDNotConfigured):
		c.JSON(http.StatusServiceUnavailable, response.Error(http.StatusServiceUnavailable, err.Error()))
	case errors.As(err, &dependencyErr):
		c.JSON(http.StatusBadGateway, response.Error(http.StatusBadGateway, err.Error()))
	default:
		log.Error("request failed", zap.String("path", c.FullPath()), zap.Error(err))
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, "Internal server error"))
	}
	_ = c.Error(err)
}
