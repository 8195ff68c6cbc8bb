package memory

import (
	"strconv"
	"sync"
	"time"

	"github.com/andriawan/minibank-backend/internal/models"
)

// accountNoBase is the reserved base for generated account numbers; the
// first allocation is base+1. Numbers are never reused.
const accountNoBase = 100000

type accountsRepo struct {
	mu     sync.RWMutex
	nextNo int64
	byNo   map[string]*models.Account
	order  []string
}

func newAccountsRepo() *accountsRepo {
	return &accountsRepo{
		nextNo: accountNoBase,
		byNo:   make(map[string]*models.Account),
	}
}

func (r *accountsRepo) Create(fullName, bankCode string) (models.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextNo++
	a := &models.Account{
		AccountNo: strconv.FormatInt(r.nextNo, 10),
		FullName:  fullName,
		BankCode:  bankCode,
		IsActive:  true,
		CreatedAt: time.Now().UTC(),
	}
	r.byNo[a.AccountNo] = a
	r.order = append(r.order, a.AccountNo)
	return *a, nil
}

func (r *accountsRepo) Get(accountNo string) (models.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, ok := r.byNo[accountNo]
	if !ok {
		return models.Account{}, models.ErrNotFound
	}
	return *a, nil
}

func (r *accountsRepo) List() ([]models.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.Account, 0, len(r.order))
	for _, no := range r.order {
		out = append(out, *r.byNo[no])
	}
	return out, nil
}

func (r *accountsRepo) Update(accountNo string, upd models.AccountUpdate) (models.Account, error) {
	if upd.BankCode != nil {
		return models.Account{}, models.ErrImmutableField
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.byNo[accountNo]
	if !ok {
		return models.Account{}, models.ErrNotFound
	}
	if upd.FullName != nil {
		a.FullName = *upd.FullName
	}
	if upd.IsActive != nil {
		// Deactivation is permanent: once false, an account never comes back.
		if !a.IsActive && *upd.IsActive {
			return models.Account{}, models.ErrAccountUnavailable
		}
		a.IsActive = *upd.IsActive
	}
	return *a, nil
}

func (r *accountsRepo) Deactivate(accountNo string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.byNo[accountNo]
	if !ok {
		return models.ErrNotFound
	}
	a.IsActive = false // idempotent
	return nil
}
