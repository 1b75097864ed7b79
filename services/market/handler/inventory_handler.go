package handler

import (
	"net/http"

	model "github.com/Abdoulkarim93/Mazora-Auctons-sub001/internal/models"
	"github.com/Abdoulkarim93/Mazora-Auctons-sub001/services/market/helpers"
	"github.com/Abdoulkarim93/Mazora-Auctons-sub001/utils"

	"github.com/gin-gonic/gin"
)

type InventoryHandler struct {
	service InventoryServiceInterface
}

func NewInventoryHandler(service InventoryServiceInterface) *InventoryHandler {
	return &InventoryHandler{service: service}
}

// ListInventoryHandler handles GET /inventory
func (h *InventoryHandler) ListInventoryHandler(c *gin.Context) {
	items, err := h.service.Inventory()
	if err != nil {
		helpers.HandleServiceError(c, "ListInventoryHandler", err, nil)
		return
	}
	utils.JSONResponse(c, http.StatusOK, items, "inventory retrieved successfully")
}

// AddItemHandler handles POST /inventory
func (h *InventoryHandler) AddItemHandler(c *gin.Context) {
	var req model.NewInventoryItem
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "AddItemHandler", err)
		return
	}

	item, err := h.service.AddToInventory(req)
	if err != nil {
		helpers.HandleServiceError(c, "AddItemHandler", err, map[string]any{"title": req.Title})
		return
	}

	message := "item saved as draft"
	if item.Status == model.InventoryActive {
		message = "item published"
	}
	utils.JSONResponse(c, http.StatusCreated, item, message)
	helpers.LogSuccess("AddItemHandler", message, map[string]any{"item_id": item.ID})
}

// UpdateItemHandler handles PATCH /inventory/:id
func (h *InventoryHandler) UpdateItemHandler(c *gin.Context) {
	itemID := c.Param("id")
	var upd model.InventoryUpdate
	if err := helpers.BindStrict(c, &upd); err != nil {
		helpers.HandleServiceError(c, "UpdateItemHandler", err, map[string]any{"item_id": itemID})
		return
	}

	item, err := h.service.UpdateInventoryItem(itemID, upd)
	if err != nil {
		helpers.HandleServiceError(c, "UpdateItemHandler", err, map[string]any{"item_id": itemID})
		return
	}
	utils.JSONResponse(c, http.StatusOK, item, "item updated")
	helpers.LogSuccess("UpdateItemHandler", "item updated", map[string]any{"item_id": itemID, "status": item.Status})
}

// CancelListingHandler handles DELETE /inventory/:id
func (h *InventoryHandler) CancelListingHandler(c *gin.Context) {
	itemID := c.Param("id")
	if err := h.service.CancelListing(itemID); err != nil {
		helpers.HandleServiceError(c, "CancelListingHandler", err, map[string]any{"item_id": itemID})
		return
	}
	utils.JSONResponse(c, http.StatusOK, gin.H{"id": itemID}, "listing cancelled")
	helpers.LogSuccess("CancelListingHandler", "listing cancelled", map[string]any{"item_id": itemID})
}
