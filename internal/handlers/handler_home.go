package handlers

import "github.com/gin-gonic/gin"

// GetHome is a trivial liveness probe handler.
func GetHome(c *gin.Context) {
	c.String(200, "OK")
}
