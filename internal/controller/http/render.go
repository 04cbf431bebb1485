package http

import (
	"simple-sns/pkg/apperrors"
	"simple-sns/pkg/logger"

	"github.com/gin-gonic/gin"
)

// renderError maps a domain error to its fixed status code. Only the kind
// name goes to the caller; the detail stays in the logs.
func renderError(c *gin.Context, log *logger.Logger, err error) {
	kind := apperrors.KindOf(err)
	if kind == apperrors.KindInternal {
		log.Error("Internal error on %s: %v", c.FullPath(), err)
	}
	c.JSON(apperrors.HTTPStatus(kind), gin.H{"error": string(kind)})
}
