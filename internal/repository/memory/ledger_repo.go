package memory

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/andriawan/minibank-backend/internal/models"
	repo "github.com/andriawan/minibank-backend/internal/repository"
)

// ledgerRepo owns balances and per-account append-only transaction logs.
// It is pure mechanism: Debit decrements unconditionally once the account
// checks out; minimum-balance policy belongs to the rule engine.
type ledgerRepo struct {
	mu       sync.RWMutex
	dir      repo.Accounts
	balances map[string]int64
	txs      map[string][]models.Transaction
}

func newLedgerRepo(dir repo.Accounts) *ledgerRepo {
	return &ledgerRepo{
		dir:      dir,
		balances: make(map[string]int64),
		txs:      make(map[string][]models.Transaction),
	}
}

// requireActive resolves the account through the directory. Unknown
// accounts fail with ErrNotFound, deactivated ones with
// ErrAccountUnavailable.
func (r *ledgerRepo) requireActive(accountNo string) error {
	a, err := r.dir.Get(accountNo)
	if err != nil {
		return err
	}
	if !a.IsActive {
		return models.ErrAccountUnavailable
	}
	return nil
}

func (r *ledgerRepo) BalanceOf(accountNo string) (int64, error) {
	if err := r.requireActive(accountNo); err != nil {
		return 0, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.balances[accountNo], nil
}

func (r *ledgerRepo) HistoryOf(accountNo string) ([]models.Transaction, error) {
	if err := r.requireActive(accountNo); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	log := r.txs[accountNo]
	out := make([]models.Transaction, len(log))
	copy(out, log)
	return out, nil
}

// CountOnDate counts the account's records stamped on the given UTC
// calendar date, across all transaction types.
func (r *ledgerRepo) CountOnDate(accountNo string, day time.Time) (int, error) {
	if err := r.requireActive(accountNo); err != nil {
		return 0, err
	}
	y, m, d := day.UTC().Date()
	r.mu.RLock()
	defer r.mu.RUnlock()
	n := 0
	for _, tx := range r.txs[accountNo] {
		ty, tm, td := tx.CreatedAt.UTC().Date()
		if ty == y && tm == m && td == d {
			n++
		}
	}
	return n, nil
}

func (r *ledgerRepo) Credit(accountNo string, amount int64, typ models.TransactionType, note string) (models.Transaction, error) {
	return r.apply(accountNo, amount, typ, note)
}

func (r *ledgerRepo) Debit(accountNo string, amount int64, typ models.TransactionType, note string) (models.Transaction, error) {
	return r.apply(accountNo, -amount, typ, note)
}

// apply mutates the balance and appends the record in one critical section
// so the balance and the log can never diverge.
func (r *ledgerRepo) apply(accountNo string, delta int64, typ models.TransactionType, note string) (models.Transaction, error) {
	if delta == 0 || (delta < 0) != typ.IsDebit() {
		return models.Transaction{}, models.ErrValidation
	}
	if err := r.requireActive(accountNo); err != nil {
		return models.Transaction{}, err
	}
	amount := delta
	if amount < 0 {
		amount = -amount
	}
	tx := models.Transaction{
		ID:        uuid.NewString(),
		AccountNo: accountNo,
		Type:      typ,
		Amount:    amount,
		CreatedAt: time.Now().UTC(),
		Note:      note,
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.balances[accountNo] += delta
	r.txs[accountNo] = append(r.txs[accountNo], tx)
	return tx, nil
}
