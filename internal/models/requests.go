package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/Abdoulkarim93/Mazora-Auctons-sub001/internal/marketerrors"
)

// NewInventoryItem is the payload for adding an item to the session user's inventory
type NewInventoryItem struct {
	Title        string          `json:"title" binding:"required"`
	Description  string          `json:"description"`
	Category     string          `json:"category"`
	Condition    string          `json:"condition"`
	Media        []string        `json:"media"`
	VideoURL     string          `json:"videoUrl"`
	StartPrice   float64         `json:"startPrice" binding:"gte=0"`
	ReservePrice float64         `json:"reservePrice" binding:"gte=0"`
	BuyNowPrice  *float64        `json:"buyNowPrice"`
	Status       InventoryStatus `json:"status"`
	ListedAt     *time.Time      `json:"listedAt"`
	ExpiryDate   *time.Time      `json:"expiryDate"`
	Location     string          `json:"location"`
	Quantity     int             `json:"quantity"`
}

// InventoryUpdate lists every inventory field a seller may change. Nil means unchanged.
type InventoryUpdate struct {
	Title        *string          `json:"title"`
	Description  *string          `json:"description"`
	Category     *string          `json:"category"`
	Condition    *string          `json:"condition"`
	Media        *[]string        `json:"media"`
	VideoURL     *string          `json:"videoUrl"`
	StartPrice   *float64         `json:"startPrice"`
	ReservePrice *float64         `json:"reservePrice"`
	BuyNowPrice  *float64         `json:"buyNowPrice"`
	Status       *InventoryStatus `json:"status"`
	ListedAt     *time.Time       `json:"listedAt"`
	ExpiryDate   *time.Time       `json:"expiryDate"`
	Location     *string          `json:"location"`
	Quantity     *int             `json:"quantity"`
}

// UserUpdate lists the profile fields a user may change on their own account
type UserUpdate struct {
	Username          *string `json:"username"`
	Name              *string `json:"name"`
	Email             *string `json:"email"`
	Phone             *string `json:"phone"`
	Password          *string `json:"password"`
	PreferredCurrency *string `json:"preferredCurrency"`
	CountryCode       *string `json:"countryCode"`
	PreferredLanguage *string `json:"preferredLanguage"`
}

// AdminUserUpdate extends UserUpdate with the fields only an admin may set
type AdminUserUpdate struct {
	UserUpdate
	Role            *Role    `json:"role"`
	WalletBalance   *float64 `json:"walletBalance"`
	FrozenBalance   *float64 `json:"frozenBalance"`
	ReputationScore *float64 `json:"reputationScore"`
	SellerTier      *string  `json:"sellerTier"`
	IsVerified      *bool    `json:"isVerified"`
	IsBlocked       *bool    `json:"isBlocked"`
	CanPublish      *bool    `json:"canPublish"`
}

// Registration is the sign-up payload
type Registration struct {
	Username          string `json:"username" binding:"required"`
	Name              string `json:"name" binding:"required"`
	Email             string `json:"email"`
	Phone             string `json:"phone"`
	Password          string `json:"password"`
	Role              Role   `json:"role" binding:"omitempty,oneof=buyer seller admin"`
	CountryCode       string `json:"countryCode"`
	PreferredCurrency string `json:"preferredCurrency"`
	ReferredBy        string `json:"referredBy"`
	ReferralReward    bool   `json:"referralReward"`
}

// DecodeStrict decodes a JSON update payload and rejects fields the target does not declare
func DecodeStrict(data []byte, dst any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		if strings.HasPrefix(err.Error(), "json: unknown field") {
			return fmt.Errorf("%w: %s", marketerrors.ErrUnknownField, strings.TrimPrefix(err.Error(), "json: unknown field "))
		}
		return fmt.Errorf("%w: %v", marketerrors.ErrInvalidInput, err)
	}
	return nil
}

// Apply merges the non-nil fields of u into user
func (u UserUpdate) Apply(user *User) {
	if u.Username != nil {
		user.Username = *u.Username
	}
	if u.Name != nil {
		user.Name = *u.Name
	}
	if u.Email != nil {
		user.Email = *u.Email
	}
	if u.Phone != nil {
		user.Phone = *u.Phone
	}
	if u.Password != nil {
		user.Password = *u.Password
	}
	if u.PreferredCurrency != nil {
		user.PreferredCurrency = *u.PreferredCurrency
	}
	if u.CountryCode != nil {
		user.CountryCode = *u.CountryCode
	}
	if u.PreferredLanguage != nil {
		user.PreferredLanguage = *u.PreferredLanguage
	}
}

// Apply merges the non-nil fields of u into user, including admin-only fields
func (u AdminUserUpdate) Apply(user *User) {
	u.UserUpdate.Apply(user)
	if u.Role != nil {
		user.Role = *u.Role
	}
	if u.WalletBalance != nil {
		user.WalletBalance = *u.WalletBalance
	}
	if u.FrozenBalance != nil {
		user.FrozenBalance = *u.FrozenBalance
	}
	if u.ReputationScore != nil {
		user.ReputationScore = *u.ReputationScore
	}
	if u.SellerTier != nil {
		user.SellerTier = *u.SellerTier
	}
	if u.IsVerified != nil {
		user.IsVerified = *u.IsVerified
	}
	if u.IsBlocked != nil {
		user.IsBlocked = *u.IsBlocked
	}
	if u.CanPublish != nil {
		user.CanPublish = *u.CanPublish
	}
}

// Apply merges the non-nil fields of u into item. The primary image follows the first media entry.
func (u InventoryUpdate) Apply(item *InventoryItem) {
	if u.Title != nil {
		item.Title = *u.Title
	}
	if u.Description != nil {
		item.Description = *u.Description
	}
	if u.Category != nil {
		item.Category = *u.Category
	}
	if u.Condition != nil {
		item.Condition = *u.Condition
	}
	if u.Media != nil {
		item.Media = append([]string(nil), (*u.Media)...)
		item.ImageURL = ""
		if len(item.Media) > 0 {
			item.ImageURL = item.Media[0]
		}
	}
	if u.VideoURL != nil {
		item.VideoURL = *u.VideoURL
	}
	if u.StartPrice != nil {
		item.StartPrice = *u.StartPrice
	}
	if u.ReservePrice != nil {
		item.ReservePrice = *u.ReservePrice
	}
	if u.BuyNowPrice != nil {
		price := *u.BuyNowPrice
		item.BuyNowPrice = &price
	}
	if u.Status != nil {
		item.Status = *u.Status
	}
	if u.ListedAt != nil {
		t := *u.ListedAt
		item.ListedAt = &t
	}
	if u.ExpiryDate != nil {
		t := *u.ExpiryDate
		item.ExpiryDate = &t
	}
	if u.Location != nil {
		item.Location = *u.Location
	}
	if u.Quantity != nil {
		item.Quantity = *u.Quantity
	}
}

// Publishes reports whether the update asks for the item to go live
func (u InventoryUpdate) Publishes() bool {
	return u.Status != nil && *u.Status == InventoryActive
}
