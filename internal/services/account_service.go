package services

import (
	"strings"

	"github.com/andriawan/minibank-backend/internal/metrics"
	"github.com/andriawan/minibank-backend/internal/models"
	repo "github.com/andriawan/minibank-backend/internal/repository"
	"github.com/andriawan/minibank-backend/internal/validate"
	"github.com/andriawan/minibank-backend/internal/worker"
)

// AccountService is the account directory: provisioning, lookup, profile
// updates and (soft) deletion. Balances are out of its reach.
type AccountService struct {
	r     repo.Accounts
	log   repo.AuditLogs
	wp    *worker.Pool
	locks *LockTable
}

func NewAccountService(r repo.Accounts, l repo.AuditLogs, wp *worker.Pool, locks *LockTable) *AccountService {
	return &AccountService{r: r, log: l, wp: wp, locks: locks}
}

func (s *AccountService) audit(entityID, action, details string) {
	id := entityID
	var det map[string]any
	if details != "" {
		det = map[string]any{"message": details}
	}
	s.wp.Submit(func() {
		_ = s.log.Create(models.AuditLog{
			EntityType: "account",
			EntityID:   &id,
			Action:     action,
			Details:    det,
		})
	})
}

func (s *AccountService) Create(fullName, bankCode string) (models.Account, error) {
	var errs validate.Errs
	if e := validate.MinLen("full_name", fullName, 3); e != nil {
		errs = append(errs, *e)
	}
	if e := validate.MinLen("bank_code", bankCode, 2); e != nil {
		errs = append(errs, *e)
	}
	if e := validate.MaxLen("bank_code", bankCode, 10); e != nil {
		errs = append(errs, *e)
	}
	if len(errs) > 0 {
		return models.Account{}, errs
	}
	a, err := s.r.Create(strings.TrimSpace(fullName), strings.TrimSpace(bankCode))
	if err != nil {
		return models.Account{}, err
	}
	metrics.AccountsCreated.Inc()
	s.audit(a.AccountNo, "created", "account provisioned at "+a.BankCode)
	return a, nil
}

func (s *AccountService) Get(accountNo string) (models.Account, error) { return s.r.Get(accountNo) }

func (s *AccountService) List() ([]models.Account, error) { return s.r.List() }

func (s *AccountService) Update(accountNo string, upd models.AccountUpdate) (models.Account, error) {
	if upd.FullName != nil {
		if e := validate.MinLen("full_name", *upd.FullName, 3); e != nil {
			return models.Account{}, validate.Errs{*e}
		}
	}
	release := s.locks.acquire(accountNo)
	defer release()

	a, err := s.r.Update(accountNo, upd)
	if err != nil {
		return models.Account{}, err
	}
	s.audit(accountNo, "updated", "")
	return a, nil
}

// Deactivate soft-deletes the account. It takes the account's lock so it
// cannot land in the middle of an in-flight transfer leg.
func (s *AccountService) Deactivate(accountNo string) error {
	release := s.locks.acquire(accountNo)
	defer release()

	if err := s.r.Deactivate(accountNo); err != nil {
		return err
	}
	s.audit(accountNo, "deactivated", "")
	return nil
}
