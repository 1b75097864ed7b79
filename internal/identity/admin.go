package identity

import (
	"fmt"

	"github.com/Abdoulkarim93/Mazora-Auctons-sub001/internal/marketerrors"
	"github.com/Abdoulkarim93/Mazora-Auctons-sub001/internal/models"
	"github.com/Abdoulkarim93/Mazora-Auctons-sub001/internal/repository"
	"github.com/Abdoulkarim93/Mazora-Auctons-sub001/utils"
)

func requireAdmin(s *repository.State) error {
	u := s.SessionUser()
	if u == nil {
		return marketerrors.ErrNotAuthenticated
	}
	if u.Role != models.RoleAdmin {
		return marketerrors.ErrForbidden
	}
	return nil
}

// ListUsers returns every account. Admin only.
func (m *Manager) ListUsers() ([]models.User, error) {
	var out []models.User
	var err error
	m.repo.View(func(s *repository.State) {
		if err = requireAdmin(s); err != nil {
			return
		}
		out = make([]models.User, 0, len(s.Users))
		for _, u := range s.Users {
			out = append(out, u.Clone())
		}
	})
	if err != nil {
		return nil, fmt.Errorf("identity: list users: %w", err)
	}
	return out, nil
}

// CreateUser adds an account without touching the session. Admin only.
func (m *Manager) CreateUser(reg models.Registration) (models.User, error) {
	var user models.User
	err := m.repo.Update(func(s *repository.State) error {
		if err := requireAdmin(s); err != nil {
			return fmt.Errorf("identity: create user: %w", err)
		}
		u, err := m.newUser(reg)
		if err != nil {
			return err
		}
		s.Users = append(s.Users, u)
		user = u.Clone()
		return nil
	})
	if err != nil {
		return models.User{}, err
	}
	utils.Info("admin created user", map[string]any{"user_id": user.ID, "role": user.Role})
	return user, nil
}

// AdminUpdateUser merges upd into any account, including role and standing flags. Admin only.
func (m *Manager) AdminUpdateUser(userID string, upd models.AdminUserUpdate) (models.User, error) {
	var user models.User
	err := m.repo.Update(func(s *repository.State) error {
		if err := requireAdmin(s); err != nil {
			return fmt.Errorf("identity: update user %s: %w", userID, err)
		}
		u := s.User(userID)
		if u == nil {
			return fmt.Errorf("identity: update user %s: %w", userID, marketerrors.ErrUserNotFound)
		}
		upd.Apply(u)
		user = u.Clone()
		return nil
	})
	if err != nil {
		return models.User{}, err
	}
	utils.Info("admin updated user", map[string]any{"user_id": userID})
	return user, nil
}

// DeleteUser removes an account for good. Deleting the logged-in account also ends the session.
// Admin only.
func (m *Manager) DeleteUser(userID string) error {
	err := m.repo.Update(func(s *repository.State) error {
		if err := requireAdmin(s); err != nil {
			return fmt.Errorf("identity: delete user %s: %w", userID, err)
		}
		if !s.RemoveUser(userID) {
			return fmt.Errorf("identity: delete user %s: %w", userID, marketerrors.ErrUserNotFound)
		}
		return nil
	})
	if err != nil {
		return err
	}
	utils.Info("admin deleted user", map[string]any{"user_id": userID})
	return nil
}
