package models

import "time"

type TransactionType string

const (
	TxnDeposit     TransactionType = "DEPOSIT"
	TxnWithdraw    TransactionType = "WITHDRAW"
	TxnTransferOut TransactionType = "TRANSFER_OUT"
	TxnTransferIn  TransactionType = "TRANSFER_IN"
	TxnFee         TransactionType = "FEE"
)

// Transaction is an immutable ledger record. Amount is always positive;
// the type encodes direction.
type Transaction struct {
	ID        string          `json:"id"`
	AccountNo string          `json:"account_no"`
	Type      TransactionType `json:"tx_type"`
	Amount    int64           `json:"amount"`
	CreatedAt time.Time       `json:"created_at"`
	Note      string          `json:"note,omitempty"`
}

// IsDebit reports whether the record decreases the owning account's balance.
func (t TransactionType) IsDebit() bool {
	switch t {
	case TxnWithdraw, TxnTransferOut, TxnFee:
		return true
	}
	return false
}
