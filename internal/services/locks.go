package services

import (
	"sort"
	"sync"
)

// LockTable serializes operations per account. Operations on disjoint
// accounts run concurrently; a transfer takes both of its accounts' locks
// in ascending account-number order so two opposing transfers cannot
// deadlock. The directory and the orchestrator share one table so a
// deactivation cannot land in the middle of a multi-leg transfer.
type LockTable struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewLockTable() *LockTable {
	return &LockTable{locks: make(map[string]*sync.Mutex)}
}

func (l *LockTable) get(accountNo string) *sync.Mutex {
	l.mu.Lock()
	defer l.mu.Unlock()
	m, ok := l.locks[accountNo]
	if !ok {
		m = &sync.Mutex{}
		l.locks[accountNo] = m
	}
	return m
}

// acquire locks the given accounts (duplicates collapsed) and returns the
// matching release function.
func (l *LockTable) acquire(accountNos ...string) (release func()) {
	seen := make(map[string]struct{}, len(accountNos))
	ordered := make([]string, 0, len(accountNos))
	for _, no := range accountNos {
		if _, dup := seen[no]; dup {
			continue
		}
		seen[no] = struct{}{}
		ordered = append(ordered, no)
	}
	sort.Strings(ordered)

	held := make([]*sync.Mutex, 0, len(ordered))
	for _, no := range ordered {
		m := l.get(no)
		m.Lock()
		held = append(held, m)
	}
	return func() {
		for i := len(held) - 1; i >= 0; i-- {
			held[i].Unlock()
		}
	}
}
