package utils

import "github.com/gin-gonic/gin"

const (
	CtxStaffID   = "staffId"
	CtxRole      = "role"
	CtxRequestID = "requestId"
)

func CurrentStaffID(c *gin.Context) uint {
	v, _ := c.Get(CtxStaffID)
	if id, ok := v.(uint); ok {
		return id
	}
	return 0
}

func CurrentRole(c *gin.Context) string {
	return c.GetString(CtxRole)
}

func RequestID(c *gin.Context) string {
	return c.GetString(CtxRequestID)
}
