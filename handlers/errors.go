package handlers

import (
	"errors"
	"net/http"

	"serviceboard/services"
	"serviceboard/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// respondError maps a service error onto the HTTP error envelope.
// Store failures only carry the underlying error text when exposeDetails is set.
func respondError(c *gin.Context, err error, action string, exposeDetails bool) {
	var verr *services.ValidationError
	var nferr *services.NotFoundError

	switch {
	case errors.As(err, &verr):
		utils.JSONError(c, http.StatusBadRequest, verr.Message, "")
	case errors.As(err, &nferr):
		utils.JSONError(c, http.StatusNotFound, nferr.Error(), "")
	case errors.Is(err, services.ErrUnauthorized):
		utils.JSONError(c, http.StatusUnauthorized, "Unauthorized access", "")
	default:
		utils.LoggerFrom(c).Error(action, zap.Error(err))
		details := ""
		if exposeDetails {
			details = err.Error()
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, utils.ErrorResponse{
			Message: "Internal Server Error",
			Details: details,
		})
	}
}

func invalidBody(c *gin.Context, err error) {
	utils.JSONError(c, http.StatusBadRequest, "Invalid request body", err.Error())
}
