package handler

import (
	"net/http"

	bidding "github.com/Abdoulkarim93/Mazora-Auctons-sub001/internal/biddingService"
	model "github.com/Abdoulkarim93/Mazora-Auctons-sub001/internal/models"
	"github.com/Abdoulkarim93/Mazora-Auctons-sub001/services/market/helpers"
	"github.com/Abdoulkarim93/Mazora-Auctons-sub001/utils"

	"github.com/gin-gonic/gin"
)

type AuctionHandler struct {
	service AuctionServiceInterface
}

func NewAuctionHandler(service AuctionServiceInterface) *AuctionHandler {
	return &AuctionHandler{service: service}
}

// ListAuctionsHandler handles GET /auctions
func (h *AuctionHandler) ListAuctionsHandler(c *gin.Context) {
	filter := bidding.AuctionFilter{
		Status:   model.AuctionStatus(c.Query("status")),
		Category: c.Query("category"),
		SellerID: c.Query("seller_id"),
		Search:   c.Query("q"),
	}
	auctions := h.service.ListAuctions(filter)
	if auctions == nil {
		auctions = []model.AuctionItem{}
	}

	utils.JSONResponse(c, http.StatusOK, auctions, "auctions retrieved successfully")
	helpers.LogSuccess("ListAuctionsHandler", "auctions retrieved successfully", map[string]any{"count": len(auctions)})
}

// GetAuctionHandler handles GET /auctions/:id and counts the view
func (h *AuctionHandler) GetAuctionHandler(c *gin.Context) {
	auctionID := c.Param("id")
	if err := h.service.RecordView(auctionID); err != nil {
		helpers.HandleServiceError(c, "GetAuctionHandler", err, map[string]any{"auction_id": auctionID})
		return
	}
	auction, err := h.service.GetAuction(auctionID)
	if err != nil {
		helpers.HandleServiceError(c, "GetAuctionHandler", err, map[string]any{"auction_id": auctionID})
		return
	}
	minNext, err := h.service.MinimumNextBid(auctionID)
	if err != nil {
		helpers.HandleServiceError(c, "GetAuctionHandler", err, map[string]any{"auction_id": auctionID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.AuctionDetail{AuctionItem: auction, MinimumNextBid: minNext}, "auction retrieved successfully")
}

// PlaceBidHandler handles POST /auctions/:id/bids
func (h *AuctionHandler) PlaceBidHandler(c *gin.Context) {
	auctionID := c.Param("id")
	var req helpers.PlaceBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "PlaceBidHandler", err)
		return
	}

	bid, err := h.service.PlaceBid(auctionID, req.Amount)
	if err != nil {
		helpers.HandleServiceError(c, "PlaceBidHandler", err, map[string]any{"auction_id": auctionID, "amount": req.Amount})
		return
	}
	minNext, err := h.service.MinimumNextBid(auctionID)
	if err != nil {
		// the bid is committed; only the hint is missing
		utils.Warn("PlaceBidHandler: minimum next bid unavailable", map[string]any{"auction_id": auctionID, "error": err.Error()})
	}

	utils.JSONResponse(c, http.StatusCreated, helpers.NewBidResponse(auctionID, bid, minNext), "bid recorded successfully")
	helpers.LogSuccess("PlaceBidHandler", "bid recorded successfully", map[string]any{
		"bid_id":     bid.ID,
		"auction_id": auctionID,
		"amount":     bid.Amount,
	})
}

// BuyNowHandler handles POST /auctions/:id/buy-now
func (h *AuctionHandler) BuyNowHandler(c *gin.Context) {
	auctionID := c.Param("id")
	if err := h.service.BuyNow(auctionID); err != nil {
		helpers.HandleServiceError(c, "BuyNowHandler", err, map[string]any{"auction_id": auctionID})
		return
	}
	auction, err := h.service.GetAuction(auctionID)
	if err != nil {
		helpers.HandleServiceError(c, "BuyNowHandler", err, map[string]any{"auction_id": auctionID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, auction, "purchase completed")
	helpers.LogSuccess("BuyNowHandler", "purchase completed", map[string]any{"auction_id": auctionID})
}

// AcceptBidHandler handles POST /auctions/:id/bids/:bid_id/accept
func (h *AuctionHandler) AcceptBidHandler(c *gin.Context) {
	auctionID, bidID := c.Param("id"), c.Param("bid_id")
	if err := h.service.AcceptUnderReserveBid(auctionID, bidID); err != nil {
		helpers.HandleServiceError(c, "AcceptBidHandler", err, map[string]any{"auction_id": auctionID, "bid_id": bidID})
		return
	}
	auction, err := h.service.GetAuction(auctionID)
	if err != nil {
		helpers.HandleServiceError(c, "AcceptBidHandler", err, map[string]any{"auction_id": auctionID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, auction, "bid accepted")
	helpers.LogSuccess("AcceptBidHandler", "bid accepted", map[string]any{"auction_id": auctionID, "bid_id": bidID})
}

// ToggleWatchHandler handles POST /auctions/:id/watch
func (h *AuctionHandler) ToggleWatchHandler(c *gin.Context) {
	auctionID := c.Param("id")
	watching, err := h.service.ToggleWatchlist(auctionID)
	if err != nil {
		helpers.HandleServiceError(c, "ToggleWatchHandler", err, map[string]any{"auction_id": auctionID})
		return
	}
	utils.JSONResponse(c, http.StatusOK, helpers.WatchResponse{AuctionID: auctionID, Watching: watching}, "watchlist updated")
}

// BidHistoryHandler handles GET /session/bids
func (h *AuctionHandler) BidHistoryHandler(c *gin.Context) {
	records, err := h.service.BidHistory()
	if err != nil {
		helpers.HandleServiceError(c, "BidHistoryHandler", err, nil)
		return
	}
	utils.JSONResponse(c, http.StatusOK, records, "bid history retrieved successfully")
}
