package seed

import (
	"fmt"
	"time"

	bidding "github.com/Abdoulkarim93/Mazora-Auctons-sub001/internal/biddingService"
	"github.com/Abdoulkarim93/Mazora-Auctons-sub001/internal/identity"
	"github.com/Abdoulkarim93/Mazora-Auctons-sub001/internal/models"
	"github.com/Abdoulkarim93/Mazora-Auctons-sub001/internal/repository"
	"github.com/Abdoulkarim93/Mazora-Auctons-sub001/utils"
)

// Demo account ids, stable so front-ends and tests can refer to them
const (
	AdminID  = "demo-admin"
	SellerID = "demo-seller"
	BuyerID  = "demo-buyer"
)

func demoUsers(now time.Time) []models.User {
	return []models.User{
		{
			ID: AdminID, Username: "admin", Name: "Mazora Admin", Email: "admin@mazora.africa",
			Role: models.RoleAdmin, IsVerified: true, CanPublish: true, CreatedAt: now,
		},
		{
			ID: SellerID, Username: "kofi", Name: "Kofi Mensah", Email: "kofi@mazora.africa", Phone: "+225 07 11 22 33",
			Role: models.RoleSeller, IsVerified: true, CanPublish: true, SellerTier: "gold",
			CountryCode: "CI", ReputationScore: 4.8, CreatedAt: now,
		},
		{
			ID: BuyerID, Username: "awa", Name: "Awa Diallo", Email: "awa@mazora.africa", Phone: "+221 77 000 00 00",
			Role: models.RoleBuyer, WalletBalance: 250000, CountryCode: "SN",
			FreeQuotesRemaining: identity.DefaultFreeQuotes, CreatedAt: now,
		},
	}
}

func demoItems() []models.NewInventoryItem {
	buyNow := 180000.0
	return []models.NewInventoryItem{
		{
			Title: "Masque Baoulé sculpté", Description: "Bois d'ébène, pièce unique", Category: "art",
			Condition: "used", Media: []string{"https://cdn.mazora.africa/demo/masque.jpg"},
			StartPrice: 25000, ReservePrice: 60000, Location: "Abidjan", Quantity: 1,
		},
		{
			Title: "Pagne Kente tissé main", Description: "6 yards, coton", Category: "textile",
			Condition: "new", Media: []string{"https://cdn.mazora.africa/demo/kente.jpg"},
			StartPrice: 15000, ReservePrice: 30000, Location: "Kumasi", Quantity: 3,
		},
		{
			Title: "Smartphone reconditionné", Description: "128 Go, garantie 6 mois", Category: "electronics",
			Condition: "refurbished", Media: []string{"https://cdn.mazora.africa/demo/phone.jpg"},
			StartPrice: 90000, ReservePrice: 150000, BuyNowPrice: &buyNow, Location: "Dakar", Quantity: 1,
		},
	}
}

// Demo fills an empty store with an admin, a seller with published listings and a funded
// buyer. A store that already holds users is left untouched and Demo reports false.
func Demo(repo repository.MarketDB, currency string) (bool, error) {
	var populated bool
	repo.View(func(s *repository.State) { populated = len(s.Users) > 0 })
	if populated {
		return false, nil
	}

	now := time.Now().UTC()
	if err := repo.Update(func(s *repository.State) error {
		s.Users = append(s.Users, demoUsers(now)...)
		s.SessionUserID = SellerID
		return nil
	}); err != nil {
		return false, fmt.Errorf("seed: users: %w", err)
	}

	// listings go through the engine so auctions are derived exactly as for a real seller
	engine := bidding.NewAuctionEngine(repo, nil, currency)
	for _, item := range demoItems() {
		if _, err := engine.AddToInventory(item); err != nil {
			return false, fmt.Errorf("seed: listing %q: %w", item.Title, err)
		}
	}

	if err := repo.Update(func(s *repository.State) error {
		s.SessionUserID = ""
		return nil
	}); err != nil {
		return false, fmt.Errorf("seed: reset session: %w", err)
	}

	utils.Info("demo data seeded", map[string]any{"users": 3, "listings": len(demoItems())})
	return true, nil
}
