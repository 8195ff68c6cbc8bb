package models

import "time"

// Account is the directory profile of an account holder. The balance is
// deliberately not part of it; balances live in the ledger and are exposed
// through their own view.
type Account struct {
	AccountNo string    `json:"account_no"`
	FullName  string    `json:"full_name"`
	BankCode  string    `json:"bank_code"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

// AccountUpdate carries the mutable fields of a PATCH. Nil means "leave as
// is". BankCode is included only so the directory can reject attempts to
// change it; it is immutable after creation.
type AccountUpdate struct {
	FullName *string `json:"full_name,omitempty"`
	IsActive *bool   `json:"is_active,omitempty"`
	BankCode *string `json:"bank_code,omitempty"`
}
