package models

// BalanceView is the caller-facing balance response.
type BalanceView struct {
	AccountNo string `json:"account_no"`
	Balance   int64  `json:"balance"`
}

// StatementView lists transactions for one account. Mutating operations
// return only the records they just produced; the statement read returns
// the full history in insertion order.
type StatementView struct {
	AccountNo    string        `json:"account_no"`
	Transactions []Transaction `json:"transactions"`
}
