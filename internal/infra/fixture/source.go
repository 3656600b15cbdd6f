// Package fixture is the offline data source: fixed demo datasets with in-memory mutations.
package fixture

import (
	"context"
	"math"
	"slices"
	"strings"
	"sync"
	"time"

	"solarsavers/internal/domain/entity"
	domainerrors "solarsavers/internal/domain/errors"
	"solarsavers/internal/domain/repository"

	"github.com/google/uuid"
)

// Source serves the demo datasets. Mutations live until the process exits.
type Source struct {
	mu          sync.Mutex
	now         func() time.Time
	users       map[string]entity.User // by email
	passwords   map[string]string      // by email
	tokens      map[string]string      // token -> email
	roleTokens  map[entity.Role]string
	products    []entity.Product
	orders      []entity.Order
	inventory   []entity.InventoryItem
	suggestions []entity.ProductSuggestion
	tickets     []entity.Ticket
	blogs       []entity.Blog
}

var _ repository.FallbackSource = (*Source)(nil)

// NewSource loads a fresh copy of every dataset.
func NewSource() *Source {
	s := &Source{
		now:         time.Now,
		users:       map[string]entity.User{},
		passwords:   map[string]string{},
		tokens:      map[string]string{},
		roleTokens:  map[entity.Role]string{},
		products:    demoProducts(),
		orders:      demoOrders(),
		inventory:   demoInventory(),
		suggestions: demoSuggestions(),
		tickets:     demoTickets(),
		blogs:       demoBlogs(),
	}
	for _, acc := range demoAccounts {
		s.users[acc.user.Email] = acc.user
		s.passwords[acc.user.Email] = acc.password
	}

	return s
}

func (s *Source) timestamp() string {
	return s.now().UTC().Format(time.RFC3339)
}

// userFor resolves a token issued by Login or Register. Callers hold s.mu.
func (s *Source) userFor(token string, roles ...entity.Role) (entity.User, error) {
	email, ok := s.tokens[token]
	if !ok {
		return entity.User{}, domainerrors.ErrSessionExpired
	}

	user := s.users[email]
	if len(roles) > 0 && !entity.Roles(roles).Contains(user.Role) {
		return entity.User{}, domainerrors.ErrForbidden
	}

	return user, nil
}

// issue returns the account's token. Tokens are stable per account so a
// session stored by one process is accepted by the next.
func (s *Source) issue(user entity.User) *entity.AuthResult {
	token := "fixture-" + user.ID
	s.tokens[token] = user.Email

	return &entity.AuthResult{AccessToken: token, TokenType: "bearer", User: user}
}

func (s *Source) Login(_ context.Context, creds entity.Credentials) (*entity.AuthResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	email := strings.ToLower(creds.Email)
	if pw, ok := s.passwords[email]; !ok || pw != creds.Password {
		return nil, domainerrors.ErrInvalidCredentials
	}

	return s.issue(s.users[email]), nil
}

func (s *Source) register(name, email, password string, role entity.Role) (*entity.AuthResult, error) {
	email = strings.ToLower(email)
	if _, exists := s.users[email]; exists {
		return nil, domainerrors.ErrAccountExists.WithDetails("Email already registered")
	}

	user := entity.User{ID: uuid.NewString(), Email: email, Name: name, Role: role, CreatedAt: s.timestamp()}
	s.users[email] = user
	s.passwords[email] = password

	return s.issue(user), nil
}

func (s *Source) Register(_ context.Context, reg entity.Registration) (*entity.AuthResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.register(reg.Name, reg.Email, reg.Password, entity.RoleCustomer)
}

func (s *Source) RegisterVendor(_ context.Context, reg entity.VendorRegistration) (*entity.AuthResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.register(reg.BusinessName, reg.Email, reg.Password, entity.RoleVendor)
}

func (s *Source) Me(_ context.Context, token string) (*entity.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, err := s.userFor(token)
	if err != nil {
		return nil, err
	}

	return &user, nil
}

// Estimate is the offline sizing rule: one kW per ₹1000 of monthly bill, rounded up.
func Estimate(in entity.CalculatorInput) entity.CalculatorResult {
	size := math.Ceil(in.MonthlyBill / 1000)

	return entity.CalculatorResult{
		RecommendedSizeKW: size,
		EstimatedCost:     size * 60000,
		AnnualSavings:     in.MonthlyBill * 10,
		PaybackYears:      4.5,
		CO2ReductionKg:    size * 1200,
	}
}

func (s *Source) Calculate(_ context.Context, in entity.CalculatorInput) (*entity.CalculatorResult, error) {
	res := Estimate(in)

	return &res, nil
}

// ChatAnswer picks the canned reply for message.
func ChatAnswer(message string) string {
	lower := strings.ToLower(message)
	for _, entry := range chatAnswers {
		for _, kw := range entry.keywords {
			if strings.Contains(lower, kw) {
				return entry.answer
			}
		}
	}

	return defaultChatAnswer
}

func (s *Source) Chat(_ context.Context, msg entity.ChatMessage) (*entity.ChatReply, error) {
	sessionID := msg.SessionID
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	return &entity.ChatReply{Response: ChatAnswer(msg.Message), SessionID: sessionID}, nil
}

func (s *Source) Contact(context.Context, entity.ContactForm) error {
	return nil
}

func (s *Source) Seed(context.Context) error {
	return nil
}

// replaceByID swaps the element with the given id. It reports whether one was found.
func replaceByID[T entity.Identifiable](items []T, id string, fn func(T) T) bool {
	idx := slices.IndexFunc(items, func(it T) bool { return it.ItemID() == id })
	if idx < 0 {
		return false
	}
	items[idx] = fn(items[idx])

	return true
}

func removeByID[T entity.Identifiable](items []T, id string) ([]T, bool) {
	idx := slices.IndexFunc(items, func(it T) bool { return it.ItemID() == id })
	if idx < 0 {
		return items, false
	}

	return slices.Delete(items, idx, idx+1), true
}

func findByID[T entity.Identifiable](items []T, id string) (T, bool) {
	idx := slices.IndexFunc(items, func(it T) bool { return it.ItemID() == id })
	if idx < 0 {
		var zero T

		return zero, false
	}

	return items[idx], true
}

// TokenFor signs in the demo account holding role so demo-mode fallbacks can reach role-scoped data.
func (s *Source) TokenFor(role entity.Role) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if token, ok := s.roleTokens[role]; ok {
		return token
	}

	for _, acc := range demoAccounts {
		if acc.user.Role == role {
			token := s.issue(s.users[acc.user.Email]).AccessToken
			s.roleTokens[role] = token

			return token
		}
	}

	return ""
}
