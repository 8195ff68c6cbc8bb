package memory

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andriawan/minibank-backend/internal/models"
)

func TestAccountsCreateSequence(t *testing.T) {
	r := newAccountsRepo()

	a1, err := r.Create("Alice", "BANKA")
	require.NoError(t, err)
	a2, err := r.Create("Bob", "BANKB")
	require.NoError(t, err)

	assert.Equal(t, "100001", a1.AccountNo)
	assert.Equal(t, "100002", a2.AccountNo)
	assert.True(t, a1.IsActive)

	all, err := r.List()
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "Alice", all[0].FullName) // insertion order
	assert.Equal(t, "Bob", all[1].FullName)
}

func TestAccountsConcurrentCreateUniqueNumbers(t *testing.T) {
	r := newAccountsRepo()

	const n = 100
	var wg sync.WaitGroup
	nos := make(chan string, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			a, err := r.Create("Holder", "BANKA")
			if err == nil {
				nos <- a.AccountNo
			}
		}()
	}
	wg.Wait()
	close(nos)

	seen := make(map[string]bool)
	for no := range nos {
		assert.False(t, seen[no], "duplicate account number %s", no)
		seen[no] = true
	}
	assert.Len(t, seen, n)
}

func TestAccountsUpdate(t *testing.T) {
	r := newAccountsRepo()
	a, err := r.Create("Alice", "BANKA")
	require.NoError(t, err)

	name := "Alice Smith"
	got, err := r.Update(a.AccountNo, models.AccountUpdate{FullName: &name})
	require.NoError(t, err)
	assert.Equal(t, "Alice Smith", got.FullName)
	assert.Equal(t, "BANKA", got.BankCode)

	// bank code is immutable, regardless of other fields in the same call
	code := "BANKB"
	_, err = r.Update(a.AccountNo, models.AccountUpdate{FullName: &name, BankCode: &code})
	assert.ErrorIs(t, err, models.ErrImmutableField)
	got, err = r.Get(a.AccountNo)
	require.NoError(t, err)
	assert.Equal(t, "BANKA", got.BankCode)

	_, err = r.Update("999999", models.AccountUpdate{FullName: &name})
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestAccountsDeactivate(t *testing.T) {
	r := newAccountsRepo()
	a, err := r.Create("Alice", "BANKA")
	require.NoError(t, err)

	require.NoError(t, r.Deactivate(a.AccountNo))
	got, err := r.Get(a.AccountNo)
	require.NoError(t, err)
	assert.False(t, got.IsActive)

	// idempotent
	require.NoError(t, r.Deactivate(a.AccountNo))

	// deactivation is permanent
	active := true
	_, err = r.Update(a.AccountNo, models.AccountUpdate{IsActive: &active})
	assert.ErrorIs(t, err, models.ErrAccountUnavailable)

	assert.ErrorIs(t, r.Deactivate("999999"), models.ErrNotFound)
}
