// Package rules holds the ledger's decision logic. Every check is a pure
// function over a snapshot of ledger state; nothing here mutates anything.
// The orchestrator takes a decision and applies its effects atomically.
package rules

import (
	"github.com/andriawan/minibank-backend/internal/config"
	"github.com/andriawan/minibank-backend/internal/models"
)

type Engine struct {
	limits config.Limits
}

func NewEngine(limits config.Limits) *Engine { return &Engine{limits: limits} }

// Decision is the outcome of a check. On accept, Fee carries the interbank
// fee the orchestrator must debit alongside the transfer amount (0 when
// domestic). On reject, Reason is one of the domain errors.
type Decision struct {
	OK     bool
	Fee    int64
	Reason error
}

func accept(fee int64) Decision    { return Decision{OK: true, Fee: fee} }
func reject(reason error) Decision { return Decision{Reason: reason} }

// CheckWithdraw rejects a withdrawal that would leave the balance below the
// configured minimum.
func (e *Engine) CheckWithdraw(balance, amount int64) Decision {
	if balance-amount < e.limits.MinBalance {
		return reject(models.ErrInsufficientFunds)
	}
	return accept(0)
}

// CheckTransfer validates a transfer from a source with the given balance
// and today's transaction count. Checks run in a fixed order: daily count
// cap, per-transaction cap, then sufficiency over amount plus fee.
func (e *Engine) CheckTransfer(srcBalance, amount int64, interbank bool, srcTodayTxCount int) Decision {
	if srcTodayTxCount >= e.limits.DailyTxCountLimit {
		return reject(models.ErrDailyLimitExceeded)
	}
	if amount > e.limits.MaxTransferPerTx {
		return reject(models.ErrPerTxLimitExceeded)
	}
	var fee int64
	if interbank {
		fee = e.limits.InterbankFee
	}
	if srcBalance-(amount+fee) < e.limits.MinBalance {
		return reject(models.ErrInsufficientFunds)
	}
	return accept(fee)
}

// Interbank reports whether a transfer between the two accounts crosses
// banks: different bank codes mean the fixed fee applies.
func Interbank(src, dst models.Account) bool {
	return src.BankCode != dst.BankCode
}
