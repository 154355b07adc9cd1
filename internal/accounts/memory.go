package accounts

import (
	"sync"

	"github.com/example/shop-order-service/internal/domain"
)

// Memory is the in-process account registry.
type Memory struct {
	mu     sync.RWMutex
	byName map[string]domain.Account
}

func NewMemory() *Memory {
	return &Memory{byName: make(map[string]domain.Account)}
}

func (r *Memory) Get(username string) (domain.Account, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, ok := r.byName[username]
	return a, ok
}

func (r *Memory) Create(a domain.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byName[a.Username]; ok {
		return domain.ErrUsernameTaken
	}
	r.byName[a.Username] = a
	return nil
}

func (r *Memory) Authenticate(username, password string) (domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, ok := r.byName[username]
	if !ok {
		return domain.Account{}, domain.ErrNotFound
	}
	if a.Password != password {
		return domain.Account{}, domain.ErrIncorrectPassword
	}
	return a, nil
}

var _ domain.Accounts = (*Memory)(nil)
