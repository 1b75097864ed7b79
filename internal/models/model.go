package models

import "time"

// Role is the account type of a marketplace participant
type Role string

const (
	RoleBuyer  Role = "buyer"
	RoleSeller Role = "seller"
	RoleAdmin  Role = "admin"
)

// AuctionStatus is the lifecycle state of a published listing
type AuctionStatus string

const (
	AuctionActive AuctionStatus = "active"
	AuctionEnded  AuctionStatus = "ended"
)

// InventoryStatus is the lifecycle state of a seller's inventory item
type InventoryStatus string

const (
	InventoryDraft  InventoryStatus = "draft"
	InventoryActive InventoryStatus = "active"
	InventorySold   InventoryStatus = "sold"
)

// BidRecordStatus is the buyer-side view of a bid's outcome
type BidRecordStatus string

const (
	BidPendingSeller BidRecordStatus = "pending_seller"
	BidWinning       BidRecordStatus = "winning"
	BidWon           BidRecordStatus = "won"
)

// User represents a participant in the marketplace
type User struct {
	ID                   string          `json:"id"`
	Username             string          `json:"username"`
	Name                 string          `json:"name"`
	Email                string          `json:"email,omitempty"`
	Phone                string          `json:"phone,omitempty"`
	Password             string          `json:"password,omitempty"`
	Role                 Role            `json:"role"`
	WalletBalance        float64         `json:"walletBalance"`
	FrozenBalance        float64         `json:"frozenBalance"`
	ReputationScore      float64         `json:"reputationScore"`
	ParticipationCount   int             `json:"participationCount"`
	ParticipatedAuctions []string        `json:"participatedAuctions"`
	BidHistory           []BidRecord     `json:"bidHistory"`
	Inventory            []InventoryItem `json:"inventory"`
	Watchlist            []string        `json:"watchlist,omitempty"`
	PreferredCurrency    string          `json:"preferredCurrency,omitempty"`
	CountryCode          string          `json:"countryCode,omitempty"`
	PreferredLanguage    string          `json:"preferredLanguage,omitempty"`
	SellerTier           string          `json:"sellerTier,omitempty"`
	IsVerified           bool            `json:"isVerified"`
	IsBlocked            bool            `json:"isBlocked"`
	CanPublish           bool            `json:"canPublish"`
	FirstItemID          string          `json:"firstItemId,omitempty"`
	ReferralCode         string          `json:"referralCode,omitempty"`
	ReferredBy           string          `json:"referredBy,omitempty"`
	FreeQuotesRemaining  int             `json:"freeQuotesRemaining"`
	CreatedAt            time.Time       `json:"createdAt"`
}

// AuctionItem represents a published listing open for bidding
type AuctionItem struct {
	ID           string        `json:"id"`
	Title        string        `json:"title"`
	Description  string        `json:"description"`
	Category     string        `json:"category"`
	Condition    string        `json:"condition"`
	ImageURL     string        `json:"imageUrl"`
	Media        []string      `json:"media,omitempty"`
	VideoURL     string        `json:"videoUrl,omitempty"`
	CurrentBid   float64       `json:"currentBid"`
	StartPrice   float64       `json:"startPrice"`
	ReservePrice float64       `json:"reservePrice"`
	BuyNowPrice  *float64      `json:"buyNowPrice,omitempty"`
	Currency     string        `json:"currency"`
	StartsAt     time.Time     `json:"startsAt"`
	EndsAt       time.Time     `json:"endsAt"`
	Status       AuctionStatus `json:"status"`
	Bids         []Bid         `json:"bids"` // newest first
	SellerID     string        `json:"sellerId"`
	SellerName   string        `json:"sellerName,omitempty"`
	IsVerified   bool          `json:"isVerified"`
	Views        int           `json:"views"`
	Location     string        `json:"location,omitempty"`
	Quantity     int           `json:"quantity"`
}

// Bid represents a single offer placed on an auction
type Bid struct {
	ID         string    `json:"id"`
	BidderID   string    `json:"bidderId"`
	BidderName string    `json:"bidderName"`
	Amount     float64   `json:"amount"`
	Timestamp  time.Time `json:"timestamp"`
}

// BidRecord is the bidder's own summary of their standing in one auction.
// ID carries the id of the bid that produced the record.
type BidRecord struct {
	ID           string          `json:"id"`
	AuctionID    string          `json:"auctionId"`
	AuctionTitle string          `json:"auctionTitle"`
	AuctionImage string          `json:"auctionImage,omitempty"`
	Amount       float64         `json:"amount"`
	Status       BidRecordStatus `json:"status"`
	Timestamp    time.Time       `json:"timestamp"`
	Condition    string          `json:"condition,omitempty"`
}

// InventoryItem represents an item owned by a seller, published or not
type InventoryItem struct {
	ID           string          `json:"id"`
	Title        string          `json:"title"`
	Description  string          `json:"description"`
	Category     string          `json:"category"`
	Condition    string          `json:"condition"`
	ImageURL     string          `json:"imageUrl"`
	Media        []string        `json:"media,omitempty"`
	VideoURL     string          `json:"videoUrl,omitempty"`
	StartPrice   float64         `json:"startPrice"`
	ReservePrice float64         `json:"reservePrice"`
	BuyNowPrice  *float64        `json:"buyNowPrice,omitempty"`
	Status       InventoryStatus `json:"status"`
	CreatedAt    time.Time       `json:"createdAt"`
	ListedAt     *time.Time      `json:"listedAt,omitempty"`
	ExpiryDate   *time.Time      `json:"expiryDate,omitempty"`
	Location     string          `json:"location,omitempty"`
	Quantity     int             `json:"quantity"`
}

// Quote is a seller's answer to a buyer request
type Quote struct {
	ID        string    `json:"id"`
	SellerID  string    `json:"sellerId"`
	Price     float64   `json:"price"`
	Message   string    `json:"message,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// BuyerRequest is a "looking for" post from a buyer
type BuyerRequest struct {
	ID          string    `json:"id"`
	BuyerID     string    `json:"buyerId"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Category    string    `json:"category,omitempty"`
	Budget      float64   `json:"budget"`
	Quotes      []Quote   `json:"quotes"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Feedback is a rating left after a completed sale
type Feedback struct {
	ID         string    `json:"id"`
	AuctionID  string    `json:"auctionId"`
	FromUserID string    `json:"fromUserId"`
	ToUserID   string    `json:"toUserId"`
	Rating     int       `json:"rating"`
	Comment    string    `json:"comment,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

// Clone returns a copy of the auction that shares no slices with the original
func (a AuctionItem) Clone() AuctionItem {
	out := a
	out.Media = append([]string(nil), a.Media...)
	out.Bids = append([]Bid(nil), a.Bids...)
	if a.BuyNowPrice != nil {
		price := *a.BuyNowPrice
		out.BuyNowPrice = &price
	}
	return out
}

// Clone returns a copy of the inventory item that shares no slices with the original
func (i InventoryItem) Clone() InventoryItem {
	out := i
	out.Media = append([]string(nil), i.Media...)
	if i.BuyNowPrice != nil {
		price := *i.BuyNowPrice
		out.BuyNowPrice = &price
	}
	return out
}

// Clone returns a copy of the user that shares no slices with the original
func (u User) Clone() User {
	out := u
	out.ParticipatedAuctions = append([]string(nil), u.ParticipatedAuctions...)
	out.BidHistory = append([]BidRecord(nil), u.BidHistory...)
	out.Watchlist = append([]string(nil), u.Watchlist...)
	if u.Inventory != nil {
		out.Inventory = make([]InventoryItem, len(u.Inventory))
		for i, item := range u.Inventory {
			out.Inventory[i] = item.Clone()
		}
	}
	return out
}

// Clone returns a copy of the request that shares no slices with the original
func (r BuyerRequest) Clone() BuyerRequest {
	out := r
	out.Quotes = append([]Quote(nil), r.Quotes...)
	return out
}
