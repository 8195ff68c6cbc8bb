package memory

import (
	repo "github.com/andriawan/minibank-backend/internal/repository"
)

type Repositories struct {
	Accounts  repo.Accounts
	Ledger    repo.Ledger
	AuditLogs repo.AuditLogs
}

// NewRepositories wires the in-memory stores. The ledger resolves accounts
// through the directory so a credit or debit against an unknown or inactive
// account fails before touching any balance.
func NewRepositories() Repositories {
	accounts := newAccountsRepo()
	return Repositories{
		Accounts:  accounts,
		Ledger:    newLedgerRepo(accounts),
		AuditLogs: newAuditLogsRepo(),
	}
}
