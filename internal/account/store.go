// Package account implements the credential store for marketplace accounts.
// Accounts live in process memory for the lifetime of the server; there is no
// persistence and accounts are never deleted.
package account

import (
	"strings"
	"sync"
	"unicode"

	"golang.org/x/crypto/bcrypt"

	"gomun/internal/apperr"
)

// defaultName is used when a register payload omits the display name.
const defaultName = "User"

// Store holds all registered accounts, keyed by email.
type Store struct {
	mu       sync.RWMutex
	accounts map[string]*Account
}

// NewStore creates an empty account store
func NewStore() *Store {
	return &Store{
		accounts: make(map[string]*Account),
	}
}

// Register validates the request and stores a new account. Exactly one of two
// concurrent registrations with the same email succeeds; the other gets a
// conflict error. Validation happens before any mutation.
func (s *Store) Register(req RegisterRequest) (*Account, error) {
	if err := validatePassword(req.Password); err != nil {
		return nil, err
	}
	if s.Exists(req.Email) {
		return nil, apperr.Conflict("email already registered")
	}
	if req.Role == RoleCompany && strings.TrimSpace(req.CompanyName) == "" {
		return nil, apperr.Validation("company name is required")
	}
	if req.Role == RoleExpert && strings.TrimSpace(req.Specialty) == "" {
		return nil, apperr.Validation("specialty is required")
	}

	// Hash outside the lock; bcrypt is slow on purpose.
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperr.Internal("failed to hash password", err)
	}

	name := req.Name
	if name == "" {
		name = defaultName
	}

	acct := &Account{
		Role:         req.Role,
		Email:        req.Email,
		Name:         name,
		PasswordHash: string(hash),
		CompanyName:  req.CompanyName,
		Specialty:    req.Specialty,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	// Re-check under the write lock: of two racing registrations with the
	// same email, exactly one may insert.
	if _, exists := s.accounts[req.Email]; exists {
		return nil, apperr.Conflict("email already registered")
	}
	s.accounts[req.Email] = acct

	return acct, nil
}

// Authenticate checks role, email, and password as one compound key. Any
// mismatch yields the same auth error; callers cannot tell which field failed.
func (s *Store) Authenticate(role Role, email, password string) (*Account, error) {
	s.mu.RLock()
	acct, ok := s.accounts[email]
	s.mu.RUnlock()

	if !ok || acct.Role != role {
		return nil, apperr.Auth("invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(acct.PasswordHash), []byte(password)); err != nil {
		return nil, apperr.Auth("invalid credentials")
	}

	return acct, nil
}

// Lookup returns the account registered under email, if any.
func (s *Store) Lookup(email string) (*Account, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	acct, ok := s.accounts[email]
	return acct, ok
}

// Exists reports whether email belongs to a registered account.
func (s *Store) Exists(email string) bool {
	_, ok := s.Lookup(email)
	return ok
}

// Experts returns a snapshot of all expert accounts.
func (s *Store) Experts() []*Account {
	s.mu.RLock()
	defer s.mu.RUnlock()

	experts := make([]*Account, 0)
	for _, acct := range s.accounts {
		if acct.Role == RoleExpert {
			experts = append(experts, acct)
		}
	}
	return experts
}

// Count reports the number of registered accounts.
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.accounts)
}

// validatePassword enforces the registration password policy: at least eight
// characters containing both a letter and a digit.
func validatePassword(password string) error {
	if len(password) < 8 {
		return apperr.Validation("password must be at least 8 characters and contain letters and digits")
	}

	var hasLetter, hasDigit bool
	for _, ch := range password {
		switch {
		case unicode.IsLetter(ch):
			hasLetter = true
		case unicode.IsDigit(ch):
			hasDigit = true
		}
	}
	if !hasLetter || !hasDigit {
		return apperr.Validation("password must be at least 8 characters and contain letters and digits")
	}

	return nil
}
