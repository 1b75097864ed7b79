package bidding

import (
	"testing"
	"time"

	"github.com/Abdoulkarim93/Mazora-Auctons-sub001/internal/models"
	"github.com/Abdoulkarim93/Mazora-Auctons-sub001/internal/repository"
	"github.com/Abdoulkarim93/Mazora-Auctons-sub001/internal/vault"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

type recordingNotifier struct {
	keys []string
}

func (n *recordingNotifier) Notify(_, key string) {
	n.keys = append(n.keys, key)
}

// newTestEngine builds an engine over an in-memory vault seeded with users and auctions.
// The first user, if any, is logged in.
func newTestEngine(t *testing.T, users []models.User, auctions []models.AuctionItem) (*AuctionEngine, *repository.VaultRepo, *vault.Vault) {
	t.Helper()

	v := vault.New(vault.NewMemoryStorage(1<<22), "test")
	repo := repository.NewVaultRepo(v)
	require.NoError(t, repo.Update(func(s *repository.State) error {
		s.Users = append(s.Users, users...)
		s.Auctions = append(s.Auctions, auctions...)
		if len(users) > 0 {
			s.SessionUserID = users[0].ID
		}
		return nil
	}))

	engine := NewAuctionEngine(repo, &recordingNotifier{}, "XOF")
	engine.now = func() time.Time { return fixedNow }
	return engine, repo, v
}

func newUser(id, name string, role models.Role) models.User {
	return models.User{
		ID:       id,
		Username: name,
		Name:     name,
		Role:     role,
	}
}

func newAuction(id, sellerID string, currentBid, reserve float64, endsIn time.Duration) models.AuctionItem {
	return models.AuctionItem{
		ID:           id,
		Title:        "Auction " + id,
		Condition:    "used",
		ImageURL:     "https://img.example/" + id + ".jpg",
		CurrentBid:   currentBid,
		StartPrice:   currentBid,
		ReservePrice: reserve,
		Currency:     "XOF",
		StartsAt:     fixedNow.Add(-time.Hour),
		EndsAt:       fixedNow.Add(endsIn),
		Status:       models.AuctionActive,
		Bids:         []models.Bid{},
		SellerID:     sellerID,
		Quantity:     1,
	}
}

func ptr[T any](v T) *T {
	return &v
}
