package server

import (
	"strings"
	"time"

	"release-auction/internal/repository"
	handler "release-auction/services/bidding/handler"
	"release-auction/utils"

	"github.com/gin-gonic/gin"
)

// RequestLoggerMiddleware logs incoming requests with timing
func RequestLoggerMiddleware(c *gin.Context) {
	start := time.Now()

	c.Next() // process request

	utils.Info("HTTP Request", map[string]any{
		"method":  c.Request.Method,
		"path":    c.Request.URL.Path,
		"status":  c.Writer.Status(),
		"latency": time.Since(start).String(),
	})
}

// BearerBidderMiddleware resolves "Authorization: Bearer <token>" to a user.
// Unknown or missing tokens are let through; such bids are anonymous.
func BearerBidderMiddleware(resolver repository.BidderResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
		if ok {
			if user, found := resolver.UserByToken(strings.TrimSpace(token)); found {
				c.Set(handler.BidderContextKey, user)
			}
		}
		c.Next()
	}
}
