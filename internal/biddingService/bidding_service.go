package bidding

import (
	"fmt"
	"time"

	"github.com/Abdoulkarim93/Mazora-Auctons-sub001/internal/marketerrors"
	"github.com/Abdoulkarim93/Mazora-Auctons-sub001/internal/models"
	"github.com/Abdoulkarim93/Mazora-Auctons-sub001/internal/repository"
	"github.com/Abdoulkarim93/Mazora-Auctons-sub001/utils"
)

const (
	// SnipeWindow is how close to the deadline a bid must land to extend the auction
	SnipeWindow = 2 * time.Minute
	// SnipeExtension is added to the deadline each time a bid lands inside SnipeWindow
	SnipeExtension = 2 * time.Minute
	// DefaultAuctionDuration applies when a published item has no explicit expiry date
	DefaultAuctionDuration = 24 * time.Hour
)

// Notifier receives user-facing events as translation keys
type Notifier interface {
	Notify(kind, messageKey string)
}

type nopNotifier struct{}

func (nopNotifier) Notify(string, string) {}

// AuctionEngine owns auction and inventory state transitions
type AuctionEngine struct {
	repo     repository.MarketDB
	notifier Notifier
	currency string
	now      func() time.Time
}

// NewAuctionEngine creates an engine over repo. A nil notifier discards events.
func NewAuctionEngine(repo repository.MarketDB, notifier Notifier, currency string) *AuctionEngine {
	if notifier == nil {
		notifier = nopNotifier{}
	}
	return &AuctionEngine{
		repo:     repo,
		notifier: notifier,
		currency: currency,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// PlaceBid records a bid from the session user. Any amount is accepted and becomes the
// current bid; callers are expected to have checked MinimumNextBid.
func (e *AuctionEngine) PlaceBid(auctionID string, amount float64) (models.Bid, error) {
	var bid models.Bid
	var extended bool

	err := e.repo.Update(func(s *repository.State) error {
		user := s.SessionUser()
		if user == nil {
			return fmt.Errorf("service: place bid on %s: %w", auctionID, marketerrors.ErrNotAuthenticated)
		}
		auction := s.Auction(auctionID)
		if auction == nil {
			return fmt.Errorf("service: place bid on %s: %w", auctionID, marketerrors.ErrAuctionNotFound)
		}

		now := e.now()
		bid = models.Bid{
			ID:         utils.GenerateID(),
			BidderID:   user.ID,
			BidderName: displayName(user),
			Amount:     amount,
			Timestamp:  now,
		}
		auction.Bids = append([]models.Bid{bid}, auction.Bids...)

		if remaining := auction.EndsAt.Sub(now); remaining > 0 && remaining <= SnipeWindow {
			auction.EndsAt = auction.EndsAt.Add(SnipeExtension)
			extended = true
		}

		// last bid wins the display, even when lower than an earlier bid
		auction.CurrentBid = amount

		status := models.BidPendingSeller
		if amount >= auction.ReservePrice {
			status = models.BidWinning
		}
		upsertBidRecord(user, recordFor(auction, bid.ID, amount, status, now))
		joinAuction(user, auction.ID)
		return nil
	})
	if err != nil {
		return models.Bid{}, err
	}

	utils.Info("bid placed", map[string]any{
		"auction_id": auctionID,
		"bid_id":     bid.ID,
		"bidder_id":  bid.BidderID,
		"amount":     amount,
		"extended":   extended,
	})
	e.notifier.Notify("success", "toast.bid_placed")
	if extended {
		e.notifier.Notify("info", "toast.auction_extended")
	}
	return bid, nil
}

// BuyNow closes the auction for the session user at its buy-now price and debits their wallet.
// The auction stays in the collection with status ended.
func (e *AuctionEngine) BuyNow(auctionID string) error {
	var price float64
	var buyerID string

	err := e.repo.Update(func(s *repository.State) error {
		user := s.SessionUser()
		if user == nil {
			return fmt.Errorf("service: buy now %s: %w", auctionID, marketerrors.ErrNotAuthenticated)
		}
		auction := s.Auction(auctionID)
		if auction == nil {
			return fmt.Errorf("service: buy now %s: %w", auctionID, marketerrors.ErrAuctionNotFound)
		}

		if auction.BuyNowPrice != nil {
			price = *auction.BuyNowPrice
		}
		auction.Status = models.AuctionEnded
		upsertBidRecord(user, recordFor(auction, utils.GenerateID(), price, models.BidWon, e.now()))
		// no floor: the wallet may go negative
		user.WalletBalance -= price
		buyerID = user.ID
		return nil
	})
	if err != nil {
		return err
	}

	utils.Info("auction bought now", map[string]any{"auction_id": auctionID, "buyer_id": buyerID, "price": price})
	e.notifier.Notify("success", "toast.buy_now_done")
	return nil
}

// AcceptUnderReserveBid lets the seller close the auction at a bid below the reserve price.
// The bidder's record is located by bid id across all users.
func (e *AuctionEngine) AcceptUnderReserveBid(auctionID, bidID string) error {
	var accepted models.Bid

	err := e.repo.Update(func(s *repository.State) error {
		auction := s.Auction(auctionID)
		if auction == nil {
			return fmt.Errorf("service: accept bid %s: %w", bidID, marketerrors.ErrAuctionNotFound)
		}
		found := false
		for _, b := range auction.Bids {
			if b.ID == bidID {
				accepted = b
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("service: accept bid %s on %s: %w", bidID, auctionID, marketerrors.ErrBidNotFound)
		}

		auction.Status = models.AuctionEnded
		auction.CurrentBid = accepted.Amount

		markRecordWon(s, bidID)

		seller := s.User(auction.SellerID)
		if seller == nil {
			seller = s.SessionUser()
		}
		if seller != nil {
			for i := range seller.Inventory {
				if seller.Inventory[i].ID == auctionID {
					seller.Inventory[i].Status = models.InventorySold
				}
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	utils.Info("under-reserve bid accepted", map[string]any{
		"auction_id": auctionID,
		"bid_id":     bidID,
		"bidder_id":  accepted.BidderID,
		"amount":     accepted.Amount,
	})
	e.notifier.Notify("success", "toast.item_sold")
	return nil
}

func markRecordWon(s *repository.State, bidID string) {
	for u := range s.Users {
		history := s.Users[u].BidHistory
		for r := range history {
			if history[r].ID == bidID {
				history[r].Status = models.BidWon
				return
			}
		}
	}
}

// upsertBidRecord keeps one record per auction, newest first
func upsertBidRecord(user *models.User, rec models.BidRecord) {
	history := make([]models.BidRecord, 0, len(user.BidHistory)+1)
	history = append(history, rec)
	for _, r := range user.BidHistory {
		if r.AuctionID != rec.AuctionID {
			history = append(history, r)
		}
	}
	user.BidHistory = history
}

// joinAuction counts an auction towards participation only the first time
func joinAuction(user *models.User, auctionID string) {
	for _, id := range user.ParticipatedAuctions {
		if id == auctionID {
			return
		}
	}
	user.ParticipatedAuctions = append(user.ParticipatedAuctions, auctionID)
	user.ParticipationCount++
}

func recordFor(a *models.AuctionItem, id string, amount float64, status models.BidRecordStatus, at time.Time) models.BidRecord {
	return models.BidRecord{
		ID:           id,
		AuctionID:    a.ID,
		AuctionTitle: a.Title,
		AuctionImage: a.ImageURL,
		Amount:       amount,
		Status:       status,
		Timestamp:    at,
		Condition:    a.Condition,
	}
}

func displayName(u *models.User) string {
	if u.Name != "" {
		return u.Name
	}
	return u.Username
}
