package auth

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrAlreadyExists is returned when the username is already registered
	ErrAlreadyExists = errors.New("user already exists")
	// ErrInvalidCredentials is returned for an unknown username or a wrong password
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrPasswordTooLong is returned for passwords bcrypt cannot hash
	ErrPasswordTooLong = errors.New("password longer than 72 bytes")
)

// MaxPasswordBytes is bcrypt's input limit, counted in bytes rather than characters
const MaxPasswordBytes = 72

// Store keeps registered users in memory, keyed by exact (case-sensitive) username.
type Store struct {
	mu     sync.RWMutex
	users  map[string]*User
	nextID int64
	cost   int
}

// NewStore creates an empty credential store hashing with the given bcrypt cost.
// A cost outside bcrypt's accepted range falls back to bcrypt.DefaultCost.
func NewStore(cost int) *Store {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &Store{
		users:  make(map[string]*User),
		nextID: 1,
		cost:   cost,
	}
}

// Register hashes the password and stores a new user.
func (s *Store) Register(username, password string) (*User, error) {
	if len(password) > MaxPasswordBytes {
		return nil, ErrPasswordTooLong
	}
	if s.exists(username) {
		return nil, ErrAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// the name may have been taken while hashing
	if _, ok := s.users[username]; ok {
		return nil, ErrAlreadyExists
	}

	user := &User{
		ID:           s.nextID,
		Username:     username,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}
	s.users[username] = user
	s.nextID++

	out := *user
	return &out, nil
}

// Authenticate returns the user whose username and password both match.
func (s *Store) Authenticate(username, password string) (*User, error) {
	s.mu.RLock()
	user, ok := s.users[username]
	s.mu.RUnlock()
	if !ok {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword(user.PasswordHash, []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	out := *user
	return &out, nil
}

// Count returns the number of registered users
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.users)
}

func (s *Store) exists(username string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.users[username]
	return ok
}
