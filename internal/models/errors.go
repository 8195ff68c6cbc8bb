package models

import "errors"

// Domain errors. The HTTP layer maps these to status codes; the core never
// sees transport semantics. Every failed operation leaves the ledger
// untouched.
var (
	// ErrNotFound: the account number is unknown to the directory.
	ErrNotFound = errors.New("account not found")

	// ErrAccountUnavailable: the account exists but has been deactivated.
	ErrAccountUnavailable = errors.New("account inactive")

	// ErrValidation: malformed input (non-positive amount, short name or
	// bank code). Field-level detail travels via validate.Errs.
	ErrValidation = errors.New("validation failed")

	// ErrImmutableField: an update tried to change the bank code.
	ErrImmutableField = errors.New("bank_code is immutable")

	// ErrInsufficientFunds: the debit would leave the balance below the
	// configured minimum.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrPerTxLimitExceeded: transfer amount above the per-transaction cap.
	ErrPerTxLimitExceeded = errors.New("exceeds per-transaction transfer limit")

	// ErrDailyLimitExceeded: the source account already reached its daily
	// transaction count.
	ErrDailyLimitExceeded = errors.New("daily transaction count limit reached")

	// ErrPrivilegeConflict: an administrator asked for a balance or
	// statement view. Admins provision accounts; they do not read them.
	ErrPrivilegeConflict = errors.New("administrators may not view balances or statements")
)
