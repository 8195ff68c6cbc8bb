package repository

import (
	"time"

	"github.com/andriawan/minibank-backend/internal/models"
)

type Accounts interface {
	Create(fullName, bankCode string) (models.Account, error)
	Get(accountNo string) (models.Account, error)
	List() ([]models.Account, error)
	Update(accountNo string, upd models.AccountUpdate) (models.Account, error)
	Deactivate(accountNo string) error
}

// Ledger is the mechanism half of the ledger engine: it holds balances and
// append-only transaction logs keyed by account number. It enforces
// existence/activity of the target account but no balance policy; the rule
// engine decides what is allowed before the orchestrator calls Debit.
type Ledger interface {
	BalanceOf(accountNo string) (int64, error)
	HistoryOf(accountNo string) ([]models.Transaction, error)
	CountOnDate(accountNo string, day time.Time) (int, error)
	Credit(accountNo string, amount int64, typ models.TransactionType, note string) (models.Transaction, error)
	Debit(accountNo string, amount int64, typ models.TransactionType, note string) (models.Transaction, error)
}

type AuditLogs interface {
	Create(l models.AuditLog) error
	Recent(limit int) ([]models.AuditLog, error)
}
