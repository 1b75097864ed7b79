package handler

import (
	"context"

	bidding "github.com/Abdoulkarim93/Mazora-Auctons-sub001/internal/biddingService"
	"github.com/Abdoulkarim93/Mazora-Auctons-sub001/internal/content"
	model "github.com/Abdoulkarim93/Mazora-Auctons-sub001/internal/models"
	"github.com/Abdoulkarim93/Mazora-Auctons-sub001/internal/notify"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=services.go -destination=mock_services_test.go -package=handler

type AuctionServiceInterface interface {
	ListAuctions(filter bidding.AuctionFilter) []model.AuctionItem
	GetAuction(auctionID string) (model.AuctionItem, error)
	RecordView(auctionID string) error
	MinimumNextBid(auctionID string) (float64, error)
	PlaceBid(auctionID string, amount float64) (model.Bid, error)
	BuyNow(auctionID string) error
	AcceptUnderReserveBid(auctionID, bidID string) error
	ToggleWatchlist(auctionID string) (bool, error)
	BidHistory() ([]model.BidRecord, error)
}

type InventoryServiceInterface interface {
	Inventory() ([]model.InventoryItem, error)
	AddToInventory(req model.NewInventoryItem) (model.InventoryItem, error)
	UpdateInventoryItem(itemID string, upd model.InventoryUpdate) (model.InventoryItem, error)
	CancelListing(itemID string) error
}

type CommunityServiceInterface interface {
	SubmitBuyerRequest(title, description, category string, budget float64) (model.BuyerRequest, error)
	ListBuyerRequests() []model.BuyerRequest
	LeaveFeedback(auctionID, toUserID string, rating int, comment string) (model.Feedback, error)
	ListFeedback(userID string) []model.Feedback
}

type SessionServiceInterface interface {
	Login(role model.Role, identifier, password string) (model.User, error)
	Register(reg model.Registration) (model.User, error)
	Logout()
	Current() (model.User, bool)
	UpdateUser(upd model.UserUpdate) (model.User, error)
	TopUpWallet(amount float64) (model.User, error)
	RequestAuthCode(identifier string) (string, error)
}

type AdminServiceInterface interface {
	ListUsers() ([]model.User, error)
	CreateUser(reg model.Registration) (model.User, error)
	AdminUpdateUser(userID string, upd model.AdminUserUpdate) (model.User, error)
	DeleteUser(userID string) error
}

type ToastQueueInterface interface {
	Active() []notify.Toast
	Dismiss(id string) bool
}

type TranslatorInterface interface {
	T(lang, key string) string
}

type PriceServiceInterface interface {
	Supports(code string) bool
	Resolve(u model.User) string
	Convert(amount float64, code string) decimal.Decimal
	FormatIn(amount float64, code string) string
}

type FAQServiceInterface interface {
	Load(ctx context.Context, lang string) content.FAQResult
}
