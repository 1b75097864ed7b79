package server

import (
	bidding "github.com/Abdoulkarim93/Mazora-Auctons-sub001/internal/biddingService"
	"github.com/Abdoulkarim93/Mazora-Auctons-sub001/internal/content"
	"github.com/Abdoulkarim93/Mazora-Auctons-sub001/internal/currency"
	"github.com/Abdoulkarim93/Mazora-Auctons-sub001/internal/i18n"
	"github.com/Abdoulkarim93/Mazora-Auctons-sub001/internal/identity"
	"github.com/Abdoulkarim93/Mazora-Auctons-sub001/internal/notify"
	handler "github.com/Abdoulkarim93/Mazora-Auctons-sub001/services/market/handler"

	"github.com/gin-gonic/gin"
)

// Dependencies are the application services the router exposes
type Dependencies struct {
	Engine          *bidding.AuctionEngine
	Identity        *identity.Manager
	Toasts          *notify.Queue
	Translator      *i18n.Translator
	Prices          *currency.Converter
	FAQ             *content.FAQService
	Probe           handler.HealthProbe
	Origin          string
	DefaultLanguage string
}

// SetupRouter configures all Gin routes for the application
func SetupRouter(deps Dependencies) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestLoggerMiddleware) // custom request logging
	router.Use(CorsMiddleware(deps.Origin))

	auctionHandler := handler.NewAuctionHandler(deps.Engine)
	inventoryHandler := handler.NewInventoryHandler(deps.Engine)
	communityHandler := handler.NewCommunityHandler(deps.Engine)
	sessionHandler := handler.NewSessionHandler(deps.Identity)
	adminHandler := handler.NewAdminHandler(deps.Identity)
	supportHandler := handler.NewSupportHandler(
		deps.Identity, deps.Toasts, deps.Translator, deps.Prices, deps.FAQ, deps.Probe, deps.DefaultLanguage,
	)

	session := router.Group("/session")
	{
		session.GET("", sessionHandler.CurrentHandler)
		session.POST("/login", sessionHandler.LoginHandler)
		session.POST("/register", sessionHandler.RegisterHandler)
		session.POST("/logout", sessionHandler.LogoutHandler)
		session.PATCH("/user", sessionHandler.UpdateUserHandler)
		session.POST("/wallet/topup", sessionHandler.TopUpHandler)
		session.POST("/auth-code", sessionHandler.AuthCodeHandler)
		session.GET("/bids", auctionHandler.BidHistoryHandler)
	}

	auctions := router.Group("/auctions")
	{
		auctions.GET("", auctionHandler.ListAuctionsHandler)
		auctions.GET("/:id", auctionHandler.GetAuctionHandler)
		auctions.POST("/:id/bids", auctionHandler.PlaceBidHandler)
		auctions.POST("/:id/buy-now", auctionHandler.BuyNowHandler)
		auctions.POST("/:id/bids/:bid_id/accept", auctionHandler.AcceptBidHandler)
		auctions.POST("/:id/watch", auctionHandler.ToggleWatchHandler)
	}

	inventory := router.Group("/inventory")
	{
		inventory.GET("", inventoryHandler.ListInventoryHandler)
		inventory.POST("", inventoryHandler.AddItemHandler)
		inventory.PATCH("/:id", inventoryHandler.UpdateItemHandler)
		inventory.DELETE("/:id", inventoryHandler.CancelListingHandler)
	}

	admin := router.Group("/admin")
	{
		admin.GET("/users", adminHandler.ListUsersHandler)
		admin.POST("/users", adminHandler.CreateUserHandler)
		admin.PATCH("/users/:id", adminHandler.UpdateUserHandler)
		admin.DELETE("/users/:id", adminHandler.DeleteUserHandler)
	}

	router.GET("/requests", communityHandler.ListRequestsHandler)
	router.POST("/requests", communityHandler.SubmitRequestHandler)
	router.POST("/feedback", communityHandler.LeaveFeedbackHandler)
	router.GET("/users/:id/feedback", communityHandler.UserFeedbackHandler)

	router.GET("/toasts", supportHandler.ToastsHandler)
	router.DELETE("/toasts/:id", supportHandler.DismissToastHandler)
	router.GET("/i18n/:lang/*key", supportHandler.TranslateHandler)
	router.GET("/price", supportHandler.PriceHandler)
	router.GET("/help/faq", supportHandler.FAQHandler)
	router.GET("/health", supportHandler.HealthHandler)

	return router
}
