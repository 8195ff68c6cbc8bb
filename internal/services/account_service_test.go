package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andriawan/minibank-backend/internal/models"
	"github.com/andriawan/minibank-backend/internal/repository/memory"
	"github.com/andriawan/minibank-backend/internal/services"
	"github.com/andriawan/minibank-backend/internal/validate"
	"github.com/andriawan/minibank-backend/internal/worker"
)

func newAccountService(t *testing.T) (*services.AccountService, memory.Repositories) {
	t.Helper()
	repos := memory.NewRepositories()
	wp := worker.NewPool(1)
	t.Cleanup(wp.Stop)
	return services.NewAccountService(repos.Accounts, repos.AuditLogs, wp, services.NewLockTable()), repos
}

func TestAccountServiceCreate(t *testing.T) {
	svc, _ := newAccountService(t)

	a, err := svc.Create("Alice", "BANKA")
	require.NoError(t, err)
	assert.Equal(t, "100001", a.AccountNo)
	assert.Equal(t, "Alice", a.FullName)
	assert.Equal(t, "BANKA", a.BankCode)
	assert.True(t, a.IsActive)
}

func TestAccountServiceCreateValidation(t *testing.T) {
	svc, _ := newAccountService(t)

	tests := []struct {
		name     string
		fullName string
		bankCode string
		field    string
	}{
		{"name too short", "Al", "BANKA", "full_name"},
		{"bank code too short", "Alice", "B", "bank_code"},
		{"bank code too long", "Alice", "BANKABANKAB", "bank_code"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(tt.fullName, tt.bankCode)
			var verrs validate.Errs
			require.ErrorAs(t, err, &verrs)
			require.NotEmpty(t, verrs)
			assert.Equal(t, tt.field, verrs[0].Field)
		})
	}
}

func TestAccountServiceUpdate(t *testing.T) {
	svc, _ := newAccountService(t)
	a, err := svc.Create("Alice", "BANKA")
	require.NoError(t, err)

	name := "Alice Smith"
	got, err := svc.Update(a.AccountNo, models.AccountUpdate{FullName: &name})
	require.NoError(t, err)
	assert.Equal(t, "Alice Smith", got.FullName)

	short := "Al"
	_, err = svc.Update(a.AccountNo, models.AccountUpdate{FullName: &short})
	var verrs validate.Errs
	assert.ErrorAs(t, err, &verrs)

	code := "BANKB"
	_, err = svc.Update(a.AccountNo, models.AccountUpdate{BankCode: &code})
	assert.ErrorIs(t, err, models.ErrImmutableField)

	_, err = svc.Update("999999", models.AccountUpdate{FullName: &name})
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestAccountServiceDeactivateIdempotent(t *testing.T) {
	svc, _ := newAccountService(t)
	a, err := svc.Create("Alice", "BANKA")
	require.NoError(t, err)

	require.NoError(t, svc.Deactivate(a.AccountNo))
	require.NoError(t, svc.Deactivate(a.AccountNo))

	got, err := svc.Get(a.AccountNo)
	require.NoError(t, err)
	assert.False(t, got.IsActive)
}

func TestAccountServiceAudits(t *testing.T) {
	repos := memory.NewRepositories()
	wp := worker.NewPool(1)
	svc := services.NewAccountService(repos.Accounts, repos.AuditLogs, wp, services.NewLockTable())

	a, err := svc.Create("Alice", "BANKA")
	require.NoError(t, err)
	require.NoError(t, svc.Deactivate(a.AccountNo))

	wp.Stop() // drain audit writes

	logs, err := services.NewAuditService(repos.AuditLogs).Recent(10)
	require.NoError(t, err)
	require.Len(t, logs, 2)
	assert.Equal(t, "deactivated", logs[0].Action) // newest first
	assert.Equal(t, "created", logs[1].Action)
	require.NotNil(t, logs[0].EntityID)
	assert.Equal(t, a.AccountNo, *logs[0].EntityID)
}
