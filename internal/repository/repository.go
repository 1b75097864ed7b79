package repository

import (
	"fmt"
	"sync"

	"github.com/Abdoulkarim93/Mazora-Auctons-sub001/internal/marketerrors"
	model "github.com/Abdoulkarim93/Mazora-Auctons-sub001/internal/models"
	"github.com/Abdoulkarim93/Mazora-Auctons-sub001/internal/vault"
	"github.com/Abdoulkarim93/Mazora-Auctons-sub001/utils"
)

// MarketDB defines the storage interface for marketplace state
type MarketDB interface {
	// View runs fn against a read-only view of the state
	View(fn func(s *State))
	// Update runs fn against a working copy of the state. The copy replaces the live state
	// and is persisted only if fn returns nil.
	Update(fn func(s *State) error) error

	GetAuction(auctionID string) (model.AuctionItem, error)
	ListAuctions() []model.AuctionItem
	GetUser(userID string) (model.User, error)
	ListUsers() []model.User
	SessionUser() (model.User, error)
}

// State holds every collection of the application plus the session pointer.
// Users is the single authoritative record of each account; the session refers to it by id.
type State struct {
	Users         []model.User
	Auctions      []model.AuctionItem
	BuyerRequests []model.BuyerRequest
	Feedback      []model.Feedback
	SessionUserID string
}

// VaultRepo is a concurrency-safe in-memory implementation of MarketDB mirrored to a vault
type VaultRepo struct {
	mu    sync.RWMutex
	state State
	vault *vault.Vault
}

// NewVaultRepo creates a repository and restores any collections already in the vault
func NewVaultRepo(v *vault.Vault) *VaultRepo {
	r := &VaultRepo{vault: v}
	r.load()
	return r
}

func (r *VaultRepo) load() {
	v := r.vault
	v.ReadInto(vault.KeyAllUsers, &r.state.Users)
	v.ReadInto(vault.KeyAuctions, &r.state.Auctions)
	v.ReadInto(vault.KeyBuyerRequests, &r.state.BuyerRequests)
	v.ReadInto(vault.KeyFeedback, &r.state.Feedback)

	var current model.User
	if v.ReadInto(vault.KeyCurrentUser, &current) && current.ID != "" {
		if r.state.User(current.ID) == nil {
			// a session persisted before its account reached the users blob
			r.state.Users = append(r.state.Users, current)
		}
		r.state.SessionUserID = current.ID
	}

	utils.Info("repository: state restored", map[string]any{
		"users":    len(r.state.Users),
		"auctions": len(r.state.Auctions),
		"session":  r.state.SessionUserID != "",
	})
}

// View runs fn under a read lock
func (r *VaultRepo) View(fn func(s *State)) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	fn(&r.state)
}

// Update applies fn to a copy of the state and commits it atomically
func (r *VaultRepo) Update(fn func(s *State) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	working := r.state.Clone()
	if err := fn(&working); err != nil {
		return err
	}
	r.state = working
	r.persist()
	return nil
}

// persist writes every collection; each write replaces its whole blob
func (r *VaultRepo) persist() {
	r.vault.Write(vault.KeyAllUsers, r.state.Users)
	r.vault.Write(vault.KeyAuctions, r.state.Auctions)
	r.vault.Write(vault.KeyBuyerRequests, r.state.BuyerRequests)
	r.vault.Write(vault.KeyFeedback, r.state.Feedback)

	if u := r.state.SessionUser(); u != nil {
		r.vault.Write(vault.KeyCurrentUser, u)
	} else {
		r.vault.Remove(vault.KeyCurrentUser)
	}
}

// GetAuction returns a copy of one auction
func (r *VaultRepo) GetAuction(auctionID string) (model.AuctionItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a := r.state.Auction(auctionID)
	if a == nil {
		return model.AuctionItem{}, fmt.Errorf("get auction %s: %w", auctionID, marketerrors.ErrAuctionNotFound)
	}
	return a.Clone(), nil
}

// ListAuctions returns copies of all auctions in collection order
func (r *VaultRepo) ListAuctions() []model.AuctionItem {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.AuctionItem, 0, len(r.state.Auctions))
	for _, a := range r.state.Auctions {
		out = append(out, a.Clone())
	}
	return out
}

// GetUser returns a copy of one user
func (r *VaultRepo) GetUser(userID string) (model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u := r.state.User(userID)
	if u == nil {
		return model.User{}, fmt.Errorf("get user %s: %w", userID, marketerrors.ErrUserNotFound)
	}
	return u.Clone(), nil
}

// ListUsers returns copies of all users in collection order
func (r *VaultRepo) ListUsers() []model.User {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.User, 0, len(r.state.Users))
	for _, u := range r.state.Users {
		out = append(out, u.Clone())
	}
	return out
}

// SessionUser returns a copy of the logged-in user
func (r *VaultRepo) SessionUser() (model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u := r.state.SessionUser()
	if u == nil {
		return model.User{}, marketerrors.ErrNotAuthenticated
	}
	return u.Clone(), nil
}

// Clone deep-copies every collection
func (s *State) Clone() State {
	out := State{SessionUserID: s.SessionUserID}
	if s.Users != nil {
		out.Users = make([]model.User, len(s.Users))
		for i, u := range s.Users {
			out.Users[i] = u.Clone()
		}
	}
	if s.Auctions != nil {
		out.Auctions = make([]model.AuctionItem, len(s.Auctions))
		for i, a := range s.Auctions {
			out.Auctions[i] = a.Clone()
		}
	}
	if s.BuyerRequests != nil {
		out.BuyerRequests = make([]model.BuyerRequest, len(s.BuyerRequests))
		for i, br := range s.BuyerRequests {
			out.BuyerRequests[i] = br.Clone()
		}
	}
	out.Feedback = append([]model.Feedback(nil), s.Feedback...)
	return out
}

// User returns the user with the given id, or nil
func (s *State) User(userID string) *model.User {
	for i := range s.Users {
		if s.Users[i].ID == userID {
			return &s.Users[i]
		}
	}
	return nil
}

// SessionUser returns the logged-in user, or nil
func (s *State) SessionUser() *model.User {
	if s.SessionUserID == "" {
		return nil
	}
	return s.User(s.SessionUserID)
}

// RemoveUser deletes a user and ends their session if it is the current one
func (s *State) RemoveUser(userID string) bool {
	for i := range s.Users {
		if s.Users[i].ID == userID {
			s.Users = append(s.Users[:i], s.Users[i+1:]...)
			if s.SessionUserID == userID {
				s.SessionUserID = ""
			}
			return true
		}
	}
	return false
}

// Auction returns the auction with the given id, or nil
func (s *State) Auction(auctionID string) *model.AuctionItem {
	for i := range s.Auctions {
		if s.Auctions[i].ID == auctionID {
			return &s.Auctions[i]
		}
	}
	return nil
}

// UpsertAuction replaces the auction with the same id in place, or prepends it when new
func (s *State) UpsertAuction(a model.AuctionItem) (inserted bool) {
	if existing := s.Auction(a.ID); existing != nil {
		*existing = a
		return false
	}
	s.Auctions = append([]model.AuctionItem{a}, s.Auctions...)
	return true
}

// RemoveAuction deletes every auction with the given id
func (s *State) RemoveAuction(auctionID string) bool {
	kept := s.Auctions[:0]
	removed := false
	for _, a := range s.Auctions {
		if a.ID == auctionID {
			removed = true
			continue
		}
		kept = append(kept, a)
	}
	s.Auctions = kept
	return removed
}
