package utils

import (
	"github.com/gin-gonic/gin"
)

// JSONResponse sends data as the bare JSON body, the shape API consumers expect
func JSONResponse(c *gin.Context, status int, data any) {
	c.JSON(status, data)
}

// JSONError sends the {"error": message} body the client surfaces verbatim
func JSONError(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, gin.H{
		"error": message,
	})
}
