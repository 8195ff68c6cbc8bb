package services

import (
	"time"

	"github.com/andriawan/minibank-backend/internal/metrics"
	"github.com/andriawan/minibank-backend/internal/models"
	repo "github.com/andriawan/minibank-backend/internal/repository"
	"github.com/andriawan/minibank-backend/internal/rules"
	"github.com/andriawan/minibank-backend/internal/validate"
	"github.com/andriawan/minibank-backend/internal/worker"
)

// TransactionService orchestrates balance-affecting operations. Each
// operation validates fully before its first mutation and runs inside the
// locks of every account it touches, so a rejected operation leaves the
// ledger exactly as it found it and concurrent operations on the same
// account never interleave.
type TransactionService struct {
	ledger repo.Ledger
	dir    repo.Accounts
	log    repo.AuditLogs
	eng    *rules.Engine
	wp     *worker.Pool
	locks  *LockTable
}

func NewTransactionService(l repo.Ledger, dir repo.Accounts, al repo.AuditLogs, eng *rules.Engine, wp *worker.Pool, locks *LockTable) *TransactionService {
	return &TransactionService{
		ledger: l,
		dir:    dir,
		log:    al,
		eng:    eng,
		wp:     wp,
		locks:  locks,
	}
}

// ----------------- Helpers -----------------

func (s *TransactionService) audit(entityID, action, details string) {
	id := entityID
	var det map[string]any
	if details != "" {
		det = map[string]any{"message": details}
	}
	s.wp.Submit(func() {
		_ = s.log.Create(models.AuditLog{
			EntityType: "transaction",
			EntityID:   &id,
			Action:     action,
			Details:    det,
		})
	})
}

func (s *TransactionService) requireActive(accountNo string) (models.Account, error) {
	a, err := s.dir.Get(accountNo)
	if err != nil {
		return models.Account{}, err
	}
	if !a.IsActive {
		return models.Account{}, models.ErrAccountUnavailable
	}
	return a, nil
}

func checkAmount(amount int64) error {
	if e := validate.Positive("amount", amount); e != nil {
		return validate.Errs{*e}
	}
	return nil
}

// ----------------- Deposit -----------------

// Deposit credits the account unconditionally; any positive amount is
// accepted, including one that leaves the balance below the minimum.
func (s *TransactionService) Deposit(accountNo string, amount int64) (models.StatementView, error) {
	if err := checkAmount(amount); err != nil {
		return models.StatementView{}, err
	}
	release := s.locks.acquire(accountNo)
	defer release()

	if _, err := s.requireActive(accountNo); err != nil {
		return models.StatementView{}, err
	}
	tx, err := s.ledger.Credit(accountNo, amount, models.TxnDeposit, "cash-in")
	if err != nil {
		metrics.TransactionsFailed.Inc()
		return models.StatementView{}, err
	}
	metrics.TransactionsTotal.WithLabelValues("deposit").Inc()
	s.audit(tx.ID, "applied", "deposit to "+accountNo)
	return models.StatementView{AccountNo: accountNo, Transactions: []models.Transaction{tx}}, nil
}

// ----------------- Withdraw -----------------

func (s *TransactionService) Withdraw(accountNo string, amount int64) (models.StatementView, error) {
	if err := checkAmount(amount); err != nil {
		return models.StatementView{}, err
	}
	release := s.locks.acquire(accountNo)
	defer release()

	if _, err := s.requireActive(accountNo); err != nil {
		return models.StatementView{}, err
	}
	bal, err := s.ledger.BalanceOf(accountNo)
	if err != nil {
		return models.StatementView{}, err
	}
	if dec := s.eng.CheckWithdraw(bal, amount); !dec.OK {
		metrics.TransactionsFailed.Inc()
		return models.StatementView{}, dec.Reason
	}
	tx, err := s.ledger.Debit(accountNo, amount, models.TxnWithdraw, "cash-out")
	if err != nil {
		metrics.TransactionsFailed.Inc()
		return models.StatementView{}, err
	}
	metrics.TransactionsTotal.WithLabelValues("withdraw").Inc()
	s.audit(tx.ID, "applied", "withdrawal from "+accountNo)
	return models.StatementView{AccountNo: accountNo, Transactions: []models.Transaction{tx}}, nil
}

// ----------------- Transfer -----------------

// Transfer moves amount from src to dst as one atomic unit: debit, the
// interbank fee debit when the banks differ, then the credit. The single
// upfront check covers amount plus fee; once accepted, all legs apply.
// A transfer to self is permitted (same bank, so no fee).
func (s *TransactionService) Transfer(srcNo, dstNo string, amount int64) ([]models.StatementView, error) {
	if err := checkAmount(amount); err != nil {
		return nil, err
	}
	release := s.locks.acquire(srcNo, dstNo)
	defer release()

	src, err := s.requireActive(srcNo)
	if err != nil {
		return nil, err
	}
	dst, err := s.requireActive(dstNo)
	if err != nil {
		return nil, err
	}

	todayCount, err := s.ledger.CountOnDate(srcNo, time.Now().UTC())
	if err != nil {
		return nil, err
	}
	bal, err := s.ledger.BalanceOf(srcNo)
	if err != nil {
		return nil, err
	}
	dec := s.eng.CheckTransfer(bal, amount, rules.Interbank(src, dst), todayCount)
	if !dec.OK {
		metrics.TransactionsFailed.Inc()
		return nil, dec.Reason
	}

	// Accepted: all legs apply unconditionally, in order.
	txOut, err := s.ledger.Debit(srcNo, amount, models.TxnTransferOut, "to "+dstNo)
	if err != nil {
		metrics.TransactionsFailed.Inc()
		return nil, err
	}
	srcTxs := []models.Transaction{txOut}
	if dec.Fee > 0 {
		txFee, err := s.ledger.Debit(srcNo, dec.Fee, models.TxnFee, "interbank fee to "+dst.BankCode)
		if err != nil {
			metrics.TransactionsFailed.Inc()
			return nil, err
		}
		srcTxs = append(srcTxs, txFee)
	}
	txIn, err := s.ledger.Credit(dstNo, amount, models.TxnTransferIn, "from "+srcNo)
	if err != nil {
		metrics.TransactionsFailed.Inc()
		return nil, err
	}

	metrics.TransactionsTotal.WithLabelValues("transfer").Inc()
	s.audit(txOut.ID, "applied", "transfer "+srcNo+" -> "+dstNo)
	return []models.StatementView{
		{AccountNo: srcNo, Transactions: srcTxs},
		{AccountNo: dstNo, Transactions: []models.Transaction{txIn}},
	}, nil
}

// ----------------- Views -----------------

// Balance returns the account's current balance. Administrators are barred
// from this view.
func (s *TransactionService) Balance(accountNo string, adminCaller bool) (models.BalanceView, error) {
	if adminCaller {
		return models.BalanceView{}, models.ErrPrivilegeConflict
	}
	release := s.locks.acquire(accountNo)
	defer release()

	bal, err := s.ledger.BalanceOf(accountNo)
	if err != nil {
		return models.BalanceView{}, err
	}
	return models.BalanceView{AccountNo: accountNo, Balance: bal}, nil
}

// Statement returns the account's full transaction history in insertion
// order. Administrators are barred from this view.
func (s *TransactionService) Statement(accountNo string, adminCaller bool) (models.StatementView, error) {
	if adminCaller {
		return models.StatementView{}, models.ErrPrivilegeConflict
	}
	release := s.locks.acquire(accountNo)
	defer release()

	txs, err := s.ledger.HistoryOf(accountNo)
	if err != nil {
		return models.StatementView{}, err
	}
	return models.StatementView{AccountNo: accountNo, Transactions: txs}, nil
}
