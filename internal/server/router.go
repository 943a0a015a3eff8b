package server

import (
	"github.com/gin-gonic/gin"

	bidding "resale-negotiation/internal/biddingService"
	negotiation "resale-negotiation/internal/negotiationService"
	biddinghandler "resale-negotiation/services/bidding/handler"
	negotiationhandler "resale-negotiation/services/negotiation/handler"
)

// SetupRouter configures all Gin routes for the application
func SetupRouter(biddingService *bidding.BiddingService, negotiationService *negotiation.NegotiationService) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestLoggerMiddleware) // custom request logging

	biddingHandler := biddinghandler.NewBiddingHandler(biddingService)
	negotiationHandler := negotiationhandler.NewNegotiationHandler(negotiationService)

	bids := router.Group("/bids")
	{
		bids.POST("", biddingHandler.PlaceBidHandler)
	}

	items := router.Group("/items")
	{
		items.GET("", biddingHandler.ListItemsHandler)
		items.GET("/:item_id", biddingHandler.GetItemHandler)
		items.GET("/:item_id/bids", biddingHandler.GetBidsByItemHandler)
		items.GET("/:item_id/winning", biddingHandler.GetWinningBidHandler)
		items.GET("/:item_id/price", biddingHandler.GetCurrentPriceHandler)
	}

	threads := router.Group("/threads")
	{
		threads.POST("", negotiationHandler.OpenThreadHandler)
		threads.GET("/:thread_id", negotiationHandler.GetThreadHandler)
		threads.POST("/:thread_id/messages", negotiationHandler.PostMessageHandler)
		threads.POST("/:thread_id/read", negotiationHandler.MarkReadHandler)
		threads.POST("/:thread_id/close", negotiationHandler.CloseThreadHandler)
	}

	users := router.Group("/users")
	{
		users.GET("/:user_id/items", biddingHandler.GetItemsByUserHandler)
		users.GET("/:user_id/threads", negotiationHandler.GetThreadsByUserHandler)
	}

	return router
}
