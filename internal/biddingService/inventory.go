package bidding

import (
	"fmt"

	"github.com/Abdoulkarim93/Mazora-Auctons-sub001/internal/marketerrors"
	"github.com/Abdoulkarim93/Mazora-Auctons-sub001/internal/models"
	"github.com/Abdoulkarim93/Mazora-Auctons-sub001/internal/repository"
	"github.com/Abdoulkarim93/Mazora-Auctons-sub001/utils"
)

// AddToInventory adds an item to the session user's inventory. An item asking to be active
// is published only if it is the user's first item or the user may publish; otherwise it is
// kept as a draft.
func (e *AuctionEngine) AddToInventory(req models.NewInventoryItem) (models.InventoryItem, error) {
	var item models.InventoryItem

	err := e.repo.Update(func(s *repository.State) error {
		user := s.SessionUser()
		if user == nil {
			return fmt.Errorf("service: add inventory item: %w", marketerrors.ErrNotAuthenticated)
		}

		status := req.Status
		if status == "" {
			status = models.InventoryActive
		}
		if status != models.InventoryActive && status != models.InventoryDraft {
			return fmt.Errorf("service: add inventory item with status %q: %w", status, marketerrors.ErrInvalidInput)
		}

		item = models.InventoryItem{
			ID:           utils.GenerateID(),
			Title:        req.Title,
			Description:  req.Description,
			Category:     req.Category,
			Condition:    req.Condition,
			Media:        append([]string(nil), req.Media...),
			VideoURL:     req.VideoURL,
			StartPrice:   req.StartPrice,
			ReservePrice: req.ReservePrice,
			BuyNowPrice:  req.BuyNowPrice,
			Status:       status,
			CreatedAt:    e.now(),
			ListedAt:     req.ListedAt,
			ExpiryDate:   req.ExpiryDate,
			Location:     req.Location,
			Quantity:     req.Quantity,
		}
		if len(item.Media) > 0 {
			item.ImageURL = item.Media[0]
		}
		if item.Quantity <= 0 {
			item.Quantity = 1
		}

		firstItem := firstItemID(user) == ""
		if firstItem {
			user.FirstItemID = item.ID
		}
		user.Inventory = append([]models.InventoryItem{item}, user.Inventory...)
		stored := &user.Inventory[0]

		if stored.Status == models.InventoryActive {
			e.syncListing(s, user, stored, firstItem)
		}
		item = stored.Clone()
		return nil
	})
	if err != nil {
		return models.InventoryItem{}, err
	}

	utils.Info("inventory item added", map[string]any{"item_id": item.ID, "status": item.Status})
	if item.Status == models.InventoryActive {
		e.notifier.Notify("success", "toast.item_published")
	} else {
		e.notifier.Notify("info", "toast.item_saved_draft")
	}
	return item, nil
}

// UpdateInventoryItem applies an update to one of the session user's items. Publishing goes
// through the same gate as AddToInventory; moving an item to draft or sold withdraws its auction.
func (e *AuctionEngine) UpdateInventoryItem(itemID string, upd models.InventoryUpdate) (models.InventoryItem, error) {
	var item models.InventoryItem

	err := e.repo.Update(func(s *repository.State) error {
		user := s.SessionUser()
		if user == nil {
			return fmt.Errorf("service: update inventory item %s: %w", itemID, marketerrors.ErrNotAuthenticated)
		}
		stored := findInventory(user, itemID)
		if stored == nil {
			return fmt.Errorf("service: update inventory item %s: %w", itemID, marketerrors.ErrItemNotFound)
		}
		if upd.Status != nil && !validInventoryStatus(*upd.Status) {
			return fmt.Errorf("service: update inventory item %s to %q: %w", itemID, *upd.Status, marketerrors.ErrInvalidInput)
		}

		upd.Apply(stored)

		switch {
		case upd.Publishes():
			e.syncListing(s, user, stored, stored.ID == firstItemID(user))
		case upd.Status != nil:
			s.RemoveAuction(stored.ID)
		}
		item = stored.Clone()
		return nil
	})
	if err != nil {
		return models.InventoryItem{}, err
	}

	utils.Info("inventory item updated", map[string]any{"item_id": itemID, "status": item.Status})
	return item, nil
}

// CancelListing drops an item from the session user's inventory and removes any auction with
// the same id.
func (e *AuctionEngine) CancelListing(itemID string) error {
	err := e.repo.Update(func(s *repository.State) error {
		user := s.SessionUser()
		if user == nil {
			return fmt.Errorf("service: cancel listing %s: %w", itemID, marketerrors.ErrNotAuthenticated)
		}
		kept := user.Inventory[:0]
		removed := false
		for _, it := range user.Inventory {
			if it.ID == itemID {
				removed = true
				continue
			}
			kept = append(kept, it)
		}
		user.Inventory = kept

		if s.RemoveAuction(itemID) {
			removed = true
		}
		if !removed {
			return fmt.Errorf("service: cancel listing %s: %w", itemID, marketerrors.ErrItemNotFound)
		}
		return nil
	})
	if err != nil {
		return err
	}

	utils.Info("listing cancelled", map[string]any{"item_id": itemID})
	e.notifier.Notify("info", "toast.listing_cancelled")
	return nil
}

// firstItemID returns the id of the first item the user ever added. Users stored before the
// marker existed get their oldest remaining item recorded.
func firstItemID(user *models.User) string {
	if user.FirstItemID == "" && len(user.Inventory) > 0 {
		user.FirstItemID = user.Inventory[len(user.Inventory)-1].ID
	}
	return user.FirstItemID
}

// syncListing is the single place where an inventory item and its auction are brought in line.
// An ineligible seller gets the item forced back to draft and any auction withdrawn.
func (e *AuctionEngine) syncListing(s *repository.State, seller *models.User, item *models.InventoryItem, firstItem bool) {
	if !firstItem && !seller.CanPublish {
		item.Status = models.InventoryDraft
		s.RemoveAuction(item.ID)
		utils.Info("publication refused, kept as draft", map[string]any{"item_id": item.ID, "seller_id": seller.ID})
		return
	}

	item.Status = models.InventoryActive
	if item.ListedAt == nil {
		listed := e.now()
		item.ListedAt = &listed
	}
	s.UpsertAuction(e.auctionFromItem(item, seller, s.Auction(item.ID)))
}

func (e *AuctionEngine) auctionFromItem(item *models.InventoryItem, seller *models.User, existing *models.AuctionItem) models.AuctionItem {
	startsAt := *item.ListedAt
	endsAt := startsAt.Add(DefaultAuctionDuration)
	if item.ExpiryDate != nil {
		endsAt = *item.ExpiryDate
	}

	a := models.AuctionItem{
		ID:           item.ID,
		Title:        item.Title,
		Description:  item.Description,
		Category:     item.Category,
		Condition:    item.Condition,
		ImageURL:     item.ImageURL,
		Media:        append([]string(nil), item.Media...),
		VideoURL:     item.VideoURL,
		CurrentBid:   item.StartPrice,
		StartPrice:   item.StartPrice,
		ReservePrice: item.ReservePrice,
		BuyNowPrice:  item.BuyNowPrice,
		Currency:     e.currency,
		StartsAt:     startsAt,
		EndsAt:       endsAt,
		Status:       models.AuctionActive,
		Bids:         []models.Bid{},
		SellerID:     seller.ID,
		SellerName:   displayName(seller),
		IsVerified:   seller.IsVerified,
		Location:     item.Location,
		Quantity:     item.Quantity,
	}

	if existing != nil {
		a.Bids = existing.Bids
		a.Views = existing.Views
		if len(existing.Bids) > 0 {
			a.CurrentBid = existing.CurrentBid
		}
		// deadlines never move backwards
		if existing.EndsAt.After(a.EndsAt) {
			a.EndsAt = existing.EndsAt
		}
	}
	return a
}

func findInventory(user *models.User, itemID string) *models.InventoryItem {
	for i := range user.Inventory {
		if user.Inventory[i].ID == itemID {
			return &user.Inventory[i]
		}
	}
	return nil
}

func validInventoryStatus(s models.InventoryStatus) bool {
	switch s {
	case models.InventoryDraft, models.InventoryActive, models.InventorySold:
		return true
	}
	return false
}
