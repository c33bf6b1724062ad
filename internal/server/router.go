package server

import (
	bidding "release-auction/internal/biddingService"
	"release-auction/internal/repository"
	handler "release-auction/services/bidding/handler"

	"github.com/gin-gonic/gin"
)

// Store is what the sandbox API needs from its backing storage
type Store interface {
	handler.AuctionStore
	repository.BidderResolver
}

// SetupRouter configures the sandbox API routes under /api
func SetupRouter(store Store, clock bidding.Clock) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestLoggerMiddleware) // custom request logging

	biddingHandler := handler.NewBiddingHandler(store, clock)

	api := router.Group("/api")
	api.Use(BearerBidderMiddleware(store))

	properties := api.Group("/properties")
	{
		properties.GET("/:property_id", biddingHandler.GetPropertyHandler)
		properties.GET("/:property_id/bids", biddingHandler.GetBidsByPropertyHandler)
	}

	bids := api.Group("/bids")
	{
		bids.POST("/properties/:property_id/bids", biddingHandler.RecordBidHandler)
	}

	users := api.Group("/users")
	{
		users.GET("/:user_id/bids", biddingHandler.GetBidsByUserHandler)
	}

	return router
}
