package bidding

import (
	"fmt"
	"strings"

	"github.com/Abdoulkarim93/Mazora-Auctons-sub001/internal/marketerrors"
	"github.com/Abdoulkarim93/Mazora-Auctons-sub001/internal/models"
	"github.com/Abdoulkarim93/Mazora-Auctons-sub001/internal/repository"
	"github.com/Abdoulkarim93/Mazora-Auctons-sub001/utils"
	"github.com/shopspring/decimal"
)

// minimum step between displayed bids, as a fraction of the current bid
var bidIncrementRate = decimal.NewFromFloat(0.05)

// AuctionFilter narrows ListAuctions. Zero values match everything.
type AuctionFilter struct {
	Status   models.AuctionStatus
	Category string
	SellerID string
	Search   string
}

func (f AuctionFilter) matches(a models.AuctionItem) bool {
	if f.Status != "" && a.Status != f.Status {
		return false
	}
	if f.Category != "" && !strings.EqualFold(a.Category, f.Category) {
		return false
	}
	if f.SellerID != "" && a.SellerID != f.SellerID {
		return false
	}
	if f.Search != "" {
		q := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(a.Title), q) && !strings.Contains(strings.ToLower(a.Description), q) {
			return false
		}
	}
	return true
}

// ListAuctions returns the auctions matching filter, closing any whose deadline has passed first
func (e *AuctionEngine) ListAuctions(filter AuctionFilter) []models.AuctionItem {
	if _, err := e.CloseExpired(); err != nil {
		utils.Warn("close expired auctions failed", map[string]any{"error": err.Error()})
	}

	all := e.repo.ListAuctions()
	out := make([]models.AuctionItem, 0, len(all))
	for _, a := range all {
		if filter.matches(a) {
			out = append(out, a)
		}
	}
	return out
}

// GetAuction returns one auction by id
func (e *AuctionEngine) GetAuction(auctionID string) (models.AuctionItem, error) {
	if auctionID == "" {
		return models.AuctionItem{}, fmt.Errorf("service: %w - empty auction ID", marketerrors.ErrInvalidInput)
	}
	a, err := e.repo.GetAuction(auctionID)
	if err != nil {
		return models.AuctionItem{}, fmt.Errorf("service: failed to get auction %s: %w", auctionID, err)
	}
	return a, nil
}

// CloseExpired marks every active auction past its deadline as ended and returns how many changed
func (e *AuctionEngine) CloseExpired() (int, error) {
	now := e.now()
	pending := false
	e.repo.View(func(s *repository.State) {
		for _, a := range s.Auctions {
			if a.Status == models.AuctionActive && !a.EndsAt.After(now) {
				pending = true
				return
			}
		}
	})
	if !pending {
		return 0, nil
	}

	closed := 0
	err := e.repo.Update(func(s *repository.State) error {
		for i := range s.Auctions {
			a := &s.Auctions[i]
			if a.Status == models.AuctionActive && !a.EndsAt.After(now) {
				a.Status = models.AuctionEnded
				closed++
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	utils.Info("expired auctions closed", map[string]any{"count": closed})
	return closed, nil
}

// RecordView increments an auction's view counter
func (e *AuctionEngine) RecordView(auctionID string) error {
	return e.repo.Update(func(s *repository.State) error {
		a := s.Auction(auctionID)
		if a == nil {
			return fmt.Errorf("service: record view %s: %w", auctionID, marketerrors.ErrAuctionNotFound)
		}
		a.Views++
		return nil
	})
}

// ToggleWatchlist adds or removes an auction from the session user's watchlist and reports
// whether it is now watched
func (e *AuctionEngine) ToggleWatchlist(auctionID string) (bool, error) {
	watching := false
	err := e.repo.Update(func(s *repository.State) error {
		user := s.SessionUser()
		if user == nil {
			return fmt.Errorf("service: toggle watchlist %s: %w", auctionID, marketerrors.ErrNotAuthenticated)
		}
		if s.Auction(auctionID) == nil {
			return fmt.Errorf("service: toggle watchlist %s: %w", auctionID, marketerrors.ErrAuctionNotFound)
		}
		for i, id := range user.Watchlist {
			if id == auctionID {
				user.Watchlist = append(user.Watchlist[:i], user.Watchlist[i+1:]...)
				return nil
			}
		}
		user.Watchlist = append(user.Watchlist, auctionID)
		watching = true
		return nil
	})
	return watching, err
}

// Inventory returns the session user's inventory, newest first
func (e *AuctionEngine) Inventory() ([]models.InventoryItem, error) {
	user, err := e.repo.SessionUser()
	if err != nil {
		return nil, fmt.Errorf("service: list inventory: %w", err)
	}
	if user.Inventory == nil {
		return []models.InventoryItem{}, nil
	}
	return user.Inventory, nil
}

// BidHistory returns the session user's bid records, newest first
func (e *AuctionEngine) BidHistory() ([]models.BidRecord, error) {
	user, err := e.repo.SessionUser()
	if err != nil {
		return nil, fmt.Errorf("service: list bid history: %w", err)
	}
	if user.BidHistory == nil {
		return []models.BidRecord{}, nil
	}
	return user.BidHistory, nil
}

// MinimumNextBid is the lowest amount the UI should offer: the current bid plus 5%, rounded up,
// at least one unit. PlaceBid does not enforce it.
func (e *AuctionEngine) MinimumNextBid(auctionID string) (float64, error) {
	a, err := e.GetAuction(auctionID)
	if err != nil {
		return 0, err
	}
	current := decimal.NewFromFloat(a.CurrentBid)
	step := current.Mul(bidIncrementRate).Ceil()
	if step.LessThan(decimal.NewFromInt(1)) {
		step = decimal.NewFromInt(1)
	}
	if len(a.Bids) == 0 {
		// the opening bid may match the start price
		return a.CurrentBid, nil
	}
	next, _ := current.Add(step).Float64()
	return next, nil
}
