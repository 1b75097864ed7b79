package handler

import (
	"net/http"

	"github.com/Abdoulkarim93/Mazora-Auctons-sub001/services/market/helpers"
	"github.com/Abdoulkarim93/Mazora-Auctons-sub001/utils"

	"github.com/gin-gonic/gin"
)

type CommunityHandler struct {
	service CommunityServiceInterface
}

func NewCommunityHandler(service CommunityServiceInterface) *CommunityHandler {
	return &CommunityHandler{service: service}
}

// ListRequestsHandler handles GET /requests
func (h *CommunityHandler) ListRequestsHandler(c *gin.Context) {
	utils.JSONResponse(c, http.StatusOK, h.service.ListBuyerRequests(), "buyer requests retrieved successfully")
}

// SubmitRequestHandler handles POST /requests
func (h *CommunityHandler) SubmitRequestHandler(c *gin.Context) {
	var req helpers.BuyerRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "SubmitRequestHandler", err)
		return
	}
	created, err := h.service.SubmitBuyerRequest(req.Title, req.Description, req.Category, req.Budget)
	if err != nil {
		helpers.HandleServiceError(c, "SubmitRequestHandler", err, nil)
		return
	}
	utils.JSONResponse(c, http.StatusCreated, created, "buyer request posted")
}

// LeaveFeedbackHandler handles POST /feedback
func (h *CommunityHandler) LeaveFeedbackHandler(c *gin.Context) {
	var req helpers.FeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "LeaveFeedbackHandler", err)
		return
	}
	fb, err := h.service.LeaveFeedback(req.AuctionID, req.ToUserID, req.Rating, req.Comment)
	if err != nil {
		helpers.HandleServiceError(c, "LeaveFeedbackHandler", err, map[string]any{"to_user_id": req.ToUserID})
		return
	}
	utils.JSONResponse(c, http.StatusCreated, fb, "feedback recorded")
}

// UserFeedbackHandler handles GET /users/:id/feedback
func (h *CommunityHandler) UserFeedbackHandler(c *gin.Context) {
	utils.JSONResponse(c, http.StatusOK, h.service.ListFeedback(c.Param("id")), "feedback retrieved successfully")
}
