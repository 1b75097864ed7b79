package helpers

import (
	"time"

	"github.com/Abdoulkarim93/Mazora-Auctons-sub001/internal/identity"
	model "github.com/Abdoulkarim93/Mazora-Auctons-sub001/internal/models"
)

// Request DTOs
type LoginRequest struct {
	Role       model.Role `json:"role" binding:"omitempty,oneof=buyer seller admin"`
	Identifier string     `json:"identifier" binding:"required"`
	Password   string     `json:"password"`
}

type AuthCodeRequest struct {
	Identifier string `json:"identifier" binding:"required"`
}

type TopUpRequest struct {
	Amount float64 `json:"amount" binding:"required,gt=0"`
}

type PlaceBidRequest struct {
	Amount float64 `json:"amount" binding:"required,gt=0"`
}

type BuyerRequestRequest struct {
	Title       string  `json:"title" binding:"required"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Budget      float64 `json:"budget" binding:"gte=0"`
}

type FeedbackRequest struct {
	AuctionID string `json:"auctionId" binding:"required"`
	ToUserID  string `json:"toUserId" binding:"required"`
	Rating    int    `json:"rating" binding:"required,min=1,max=5"`
	Comment   string `json:"comment"`
}

// Response DTOs
type BidResponse struct {
	BidID          string  `json:"bid_id"`
	AuctionID      string  `json:"auction_id"`
	BidderID       string  `json:"bidder_id"`
	BidderName     string  `json:"bidder_name"`
	Amount         float64 `json:"amount"`
	CreatedAt      string  `json:"created_at"`
	MinimumNextBid float64 `json:"minimum_next_bid"`
}

type AuctionDetail struct {
	model.AuctionItem
	MinimumNextBid float64 `json:"minimumNextBid"`
}

type SessionResponse struct {
	User   model.User           `json:"user"`
	Access identity.AccessFlags `json:"access"`
}

type WatchResponse struct {
	AuctionID string `json:"auction_id"`
	Watching  bool   `json:"watching"`
}

type AuthCodeResponse struct {
	Identifier string `json:"identifier"`
	Code       string `json:"code"`
}

type PriceResponse struct {
	Amount    float64 `json:"amount"`
	Currency  string  `json:"currency"`
	Converted string  `json:"converted"`
	Formatted string  `json:"formatted"`
}

type TranslationResponse struct {
	Lang  string `json:"lang"`
	Key   string `json:"key"`
	Value string `json:"value"`
}

type HealthResponse struct {
	Connected bool   `json:"connected"`
	Time      string `json:"time"`
}

// PublicUser strips credentials before a user leaves the process
func PublicUser(u model.User) model.User {
	u.Password = ""
	return u
}

// NewSessionResponse pairs a user with the flags derived from their role
func NewSessionResponse(u model.User) SessionResponse {
	return SessionResponse{User: PublicUser(u), Access: identity.Access(u)}
}

// NewBidResponse renders a bid with the amount the next bidder must offer
func NewBidResponse(auctionID string, b model.Bid, minNext float64) BidResponse {
	return BidResponse{
		BidID:          b.ID,
		AuctionID:      auctionID,
		BidderID:       b.BidderID,
		BidderName:     b.BidderName,
		Amount:         b.Amount,
		CreatedAt:      b.Timestamp.UTC().Format(time.RFC3339),
		MinimumNextBid: minNext,
	}
}
