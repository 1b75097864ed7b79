package bidding

import (
	"fmt"

	"github.com/Abdoulkarim93/Mazora-Auctons-sub001/internal/marketerrors"
	"github.com/Abdoulkarim93/Mazora-Auctons-sub001/internal/models"
	"github.com/Abdoulkarim93/Mazora-Auctons-sub001/internal/repository"
	"github.com/Abdoulkarim93/Mazora-Auctons-sub001/utils"
)

// SubmitBuyerRequest posts a "looking for" request on behalf of the session user
func (e *AuctionEngine) SubmitBuyerRequest(title, description, category string, budget float64) (models.BuyerRequest, error) {
	var req models.BuyerRequest
	if title == "" {
		return req, fmt.Errorf("service: %w - empty request title", marketerrors.ErrInvalidInput)
	}
	err := e.repo.Update(func(s *repository.State) error {
		user := s.SessionUser()
		if user == nil {
			return fmt.Errorf("service: submit buyer request: %w", marketerrors.ErrNotAuthenticated)
		}
		req = models.BuyerRequest{
			ID:          utils.GenerateID(),
			BuyerID:     user.ID,
			Title:       title,
			Description: description,
			Category:    category,
			Budget:      budget,
			Quotes:      []models.Quote{},
			CreatedAt:   e.now(),
		}
		s.BuyerRequests = append([]models.BuyerRequest{req}, s.BuyerRequests...)
		return nil
	})
	if err != nil {
		return models.BuyerRequest{}, err
	}
	return req, nil
}

// ListBuyerRequests returns every buyer request, newest first
func (e *AuctionEngine) ListBuyerRequests() []models.BuyerRequest {
	var out []models.BuyerRequest
	e.repo.View(func(s *repository.State) {
		out = make([]models.BuyerRequest, 0, len(s.BuyerRequests))
		for _, r := range s.BuyerRequests {
			out = append(out, r.Clone())
		}
	})
	return out
}

// LeaveFeedback rates another user after an auction. Ratings run from 1 to 5.
func (e *AuctionEngine) LeaveFeedback(auctionID, toUserID string, rating int, comment string) (models.Feedback, error) {
	var fb models.Feedback
	if rating < 1 || rating > 5 {
		return fb, fmt.Errorf("service: %w - rating %d out of range", marketerrors.ErrInvalidInput, rating)
	}
	err := e.repo.Update(func(s *repository.State) error {
		user := s.SessionUser()
		if user == nil {
			return fmt.Errorf("service: leave feedback: %w", marketerrors.ErrNotAuthenticated)
		}
		if s.User(toUserID) == nil {
			return fmt.Errorf("service: leave feedback for %s: %w", toUserID, marketerrors.ErrUserNotFound)
		}
		fb = models.Feedback{
			ID:         utils.GenerateID(),
			AuctionID:  auctionID,
			FromUserID: user.ID,
			ToUserID:   toUserID,
			Rating:     rating,
			Comment:    comment,
			CreatedAt:  e.now(),
		}
		s.Feedback = append([]models.Feedback{fb}, s.Feedback...)
		return nil
	})
	if err != nil {
		return models.Feedback{}, err
	}
	return fb, nil
}

// ListFeedback returns the feedback received by userID
func (e *AuctionEngine) ListFeedback(userID string) []models.Feedback {
	out := []models.Feedback{}
	e.repo.View(func(s *repository.State) {
		for _, fb := range s.Feedback {
			if fb.ToUserID == userID {
				out = append(out, fb)
			}
		}
	})
	return out
}
