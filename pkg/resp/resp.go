package resp

import (
	"net/http"

	"github.com/Subhashreel/orders/pkg/apperr"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, gin.H{"ok": true, "data": data})
}
func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, gin.H{"ok": true, "data": data})
}
func BadRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": msg})
}
func NotFound(c *gin.Context, msg string) {
	c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": msg})
}
func Unauthorized(c *gin.Context, msg string) {
	c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": msg})
}
func Forbidden(c *gin.Context, msg string) {
	c.JSON(http.StatusForbidden, gin.H{"ok": false, "error": msg})
}

// ServerError hides the cause from the client; it is logged instead.
func ServerError(c *gin.Context, err error) {
	log.WithFields(log.Fields{
		"request_id": c.GetString("requestId"),
		"path":       c.FullPath(),
	}).WithError(err).Error("request failed")
	c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "internal server error"})
}

// Error writes err using the status that matches its kind.
func Error(c *gin.Context, err error) {
	switch apperr.KindOf(err) {
	case apperr.KindNotFound:
		NotFound(c, err.Error())
	case apperr.KindBadRequest:
		BadRequest(c, err.Error())
	case apperr.KindUnauthorized:
		Unauthorized(c, err.Error())
	case apperr.KindForbidden:
		Forbidden(c, err.Error())
	case apperr.KindUnavailable:
		c.JSON(http.StatusServiceUnavailable, gin.H{"ok": false, "error": err.Error()})
	default:
		ServerError(c, err)
	}
}
