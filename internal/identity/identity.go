package identity

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/Abdoulkarim93/Mazora-Auctons-sub001/internal/marketerrors"
	"github.com/Abdoulkarim93/Mazora-Auctons-sub001/internal/models"
	"github.com/Abdoulkarim93/Mazora-Auctons-sub001/internal/repository"
	"github.com/Abdoulkarim93/Mazora-Auctons-sub001/utils"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	// DemoPassword is accepted for any account that has no password of its own
	DemoPassword = "123"
	// ReferralReward is credited to accounts registered with a referral reward
	ReferralReward = 100.0
	// DefaultFreeQuotes is the number of free buyer-request quotes a new account starts with
	DefaultFreeQuotes = 5
)

// Notifier receives user-facing events as translation keys
type Notifier interface {
	Notify(kind, messageKey string)
}

type nopNotifier struct{}

func (nopNotifier) Notify(string, string) {}

// AccessFlags are the role-derived permissions of an account
type AccessFlags struct {
	IsAdmin    bool `json:"isAdmin"`
	IsSeller   bool `json:"isSeller"`
	IsBuyer    bool `json:"isBuyer"`
	CanPublish bool `json:"canPublish"`
	CanBid     bool `json:"canBid"`
}

// Manager owns the session and the user collection
type Manager struct {
	repo         repository.MarketDB
	notifier     Notifier
	loginDelay   time.Duration
	paymentDelay time.Duration

	sleep func(time.Duration)
	now   func() time.Time
}

// NewManager creates a session manager. The delays simulate the network round trips of login
// and payment; they cannot be interrupted.
func NewManager(repo repository.MarketDB, notifier Notifier, loginDelay, paymentDelay time.Duration) *Manager {
	if notifier == nil {
		notifier = nopNotifier{}
	}
	return &Manager{
		repo:         repo,
		notifier:     notifier,
		loginDelay:   loginDelay,
		paymentDelay: paymentDelay,
		sleep:        time.Sleep,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

// Login authenticates the first user, in collection order, whose email, username or phone
// matches identifier. An empty role matches any role.
func (m *Manager) Login(role models.Role, identifier, password string) (models.User, error) {
	m.sleep(m.loginDelay)

	var user models.User
	err := m.repo.Update(func(s *repository.State) error {
		for i := range s.Users {
			u := &s.Users[i]
			if role != "" && u.Role != role {
				continue
			}
			if !matchesIdentifier(u, identifier) || !matchesPassword(u, password) {
				continue
			}
			s.SessionUserID = u.ID
			user = u.Clone()
			return nil
		}
		return fmt.Errorf("identity: login %q: %w", identifier, marketerrors.ErrInvalidCredentials)
	})
	if err != nil {
		utils.Warn("login refused", map[string]any{"identifier": identifier, "role": role})
		return models.User{}, err
	}

	utils.Info("user logged in", map[string]any{"user_id": user.ID, "role": user.Role})
	m.notifier.Notify("success", "toast.login_success")
	return user, nil
}

// Register creates an account from reg and logs it in
func (m *Manager) Register(reg models.Registration) (models.User, error) {
	var user models.User
	err := m.repo.Update(func(s *repository.State) error {
		u, err := m.newUser(reg)
		if err != nil {
			return err
		}
		s.Users = append(s.Users, u)
		s.SessionUserID = u.ID
		user = u.Clone()
		return nil
	})
	if err != nil {
		return models.User{}, err
	}

	utils.Info("user registered", map[string]any{"user_id": user.ID, "role": user.Role, "referred_by": user.ReferredBy})
	m.notifier.Notify("success", "toast.welcome")
	return user, nil
}

// Logout ends the session. Logging out without a session is a no-op.
func (m *Manager) Logout() {
	var userID string
	err := m.repo.Update(func(s *repository.State) error {
		userID = s.SessionUserID
		s.SessionUserID = ""
		return nil
	})
	if err != nil {
		utils.Error("logout failed", map[string]any{"error": err.Error()})
		return
	}
	if userID != "" {
		utils.Info("user logged out", map[string]any{"user_id": userID})
		m.notifier.Notify("info", "toast.logout")
	}
}

// Current returns the logged-in user
func (m *Manager) Current() (models.User, bool) {
	u, err := m.repo.SessionUser()
	if err != nil {
		return models.User{}, false
	}
	return u, true
}

// UpdateUser merges upd into the session user's account
func (m *Manager) UpdateUser(upd models.UserUpdate) (models.User, error) {
	var user models.User
	err := m.repo.Update(func(s *repository.State) error {
		u := s.SessionUser()
		if u == nil {
			return fmt.Errorf("identity: update user: %w", marketerrors.ErrNotAuthenticated)
		}
		upd.Apply(u)
		user = u.Clone()
		return nil
	})
	if err != nil {
		return models.User{}, err
	}
	utils.Info("profile updated", map[string]any{"user_id": user.ID})
	return user, nil
}

// TopUpWallet credits the session user's wallet after a simulated payment that always succeeds
func (m *Manager) TopUpWallet(amount float64) (models.User, error) {
	if amount <= 0 {
		return models.User{}, fmt.Errorf("identity: top up %.2f: %w", amount, marketerrors.ErrInvalidAmount)
	}
	if _, ok := m.Current(); !ok {
		return models.User{}, fmt.Errorf("identity: top up: %w", marketerrors.ErrNotAuthenticated)
	}

	m.sleep(m.paymentDelay)

	var user models.User
	err := m.repo.Update(func(s *repository.State) error {
		u := s.SessionUser()
		if u == nil {
			return fmt.Errorf("identity: top up: %w", marketerrors.ErrNotAuthenticated)
		}
		u.WalletBalance += amount
		user = u.Clone()
		return nil
	})
	if err != nil {
		return models.User{}, err
	}

	utils.Info("wallet topped up", map[string]any{"user_id": user.ID, "amount": amount, "balance": user.WalletBalance})
	m.notifier.Notify("success", "toast.wallet_topped_up")
	return user, nil
}

// RequestAuthCode simulates sending a one-time code to identifier and returns it
func (m *Manager) RequestAuthCode(identifier string) (string, error) {
	if strings.TrimSpace(identifier) == "" {
		return "", fmt.Errorf("identity: %w - empty identifier", marketerrors.ErrInvalidInput)
	}
	m.sleep(m.loginDelay)

	code := utils.RandomDigits(6)
	utils.Debug("auth code issued", map[string]any{"identifier": identifier})
	m.notifier.Notify("info", "toast.code_sent")
	return code, nil
}

// Access derives the permission flags of u
func Access(u models.User) AccessFlags {
	admin := u.Role == models.RoleAdmin
	return AccessFlags{
		IsAdmin:    admin,
		IsSeller:   u.Role == models.RoleSeller || admin,
		IsBuyer:    u.Role == models.RoleBuyer,
		CanPublish: u.CanPublish || admin,
		CanBid:     !u.IsBlocked,
	}
}

func (m *Manager) newUser(reg models.Registration) (models.User, error) {
	if strings.TrimSpace(reg.Username) == "" || strings.TrimSpace(reg.Name) == "" {
		return models.User{}, fmt.Errorf("identity: register: %w - username and name are required", marketerrors.ErrInvalidInput)
	}
	role := reg.Role
	if role == "" {
		role = models.RoleBuyer
	}
	switch role {
	case models.RoleBuyer, models.RoleSeller, models.RoleAdmin:
	default:
		return models.User{}, fmt.Errorf("identity: register with role %q: %w", role, marketerrors.ErrInvalidInput)
	}

	wallet := 0.0
	if reg.ReferralReward {
		wallet = ReferralReward
	}
	return models.User{
		ID:                   utils.GenerateID(),
		Username:             reg.Username,
		Name:                 reg.Name,
		Email:                reg.Email,
		Phone:                reg.Phone,
		Password:             reg.Password,
		Role:                 role,
		WalletBalance:        wallet,
		ParticipatedAuctions: []string{},
		BidHistory:           []models.BidRecord{},
		PreferredCurrency:    reg.PreferredCurrency,
		CountryCode:          reg.CountryCode,
		ReferralCode:         ReferralCode(reg.Name),
		ReferredBy:           reg.ReferredBy,
		FreeQuotesRemaining:  DefaultFreeQuotes,
		CreatedAt:            m.now(),
	}, nil
}

// ReferralCode is the first three letters of name in upper case followed by four random digits
func ReferralCode(name string) string {
	var prefix []rune
	for _, r := range name {
		if len(prefix) == 3 {
			break
		}
		if unicode.IsLetter(r) {
			prefix = append(prefix, r)
		}
	}
	return cases.Upper(language.Und).String(string(prefix)) + utils.RandomDigits(4)
}

func matchesIdentifier(u *models.User, identifier string) bool {
	id := strings.TrimSpace(identifier)
	if id == "" {
		return false
	}
	if u.Email != "" && strings.EqualFold(u.Email, id) {
		return true
	}
	if u.Username != "" && strings.EqualFold(u.Username, id) {
		return true
	}
	phone := digitsOnly(id)
	return phone != "" && digitsOnly(u.Phone) == phone
}

func matchesPassword(u *models.User, password string) bool {
	want := u.Password
	if want == "" {
		want = DemoPassword
	}
	return password == want
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
