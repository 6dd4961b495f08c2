package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pensionbase/bankcore/internal/domain"
)

func TestAccounts_Resolution(t *testing.T) {
	accounts := NewAccounts().
		Register(domain.BankA, domain.AccountTypeDeposit, "EE157700771000000001").
		Register(domain.BankB, domain.AccountTypeWithdrawal, "EE909900990000000002").
		RegisterLedgerAccount(domain.AccountTypeDeposit, "CASH_DEPOSIT_EUR")

	accountType, err := accounts.AccountType("EE157700771000000001")
	require.NoError(t, err)
	assert.Equal(t, domain.AccountTypeDeposit, accountType)

	iban, err := accounts.IBANFor(domain.BankB, domain.AccountTypeWithdrawal)
	require.NoError(t, err)
	assert.Equal(t, "EE909900990000000002", iban)

	ledgerAccount, err := accounts.LedgerAccount(domain.AccountTypeDeposit)
	require.NoError(t, err)
	assert.Equal(t, "CASH_DEPOSIT_EUR", ledgerAccount)
}

func TestAccounts_Unresolved(t *testing.T) {
	accounts := NewAccounts().
		Register(domain.BankA, domain.AccountTypeDeposit, "EE157700771000000001")

	_, err := accounts.AccountType("EE000000000000000000")
	assert.ErrorIs(t, err, domain.ErrUnresolvedAccount)

	_, err = accounts.IBANFor(domain.BankB, domain.AccountTypeDeposit)
	assert.ErrorIs(t, err, domain.ErrUnresolvedAccount)

	_, err = accounts.LedgerAccount(domain.AccountTypeFundInvestment)
	assert.ErrorIs(t, err, domain.ErrUnresolvedAccount)
}

func TestLoadAccounts_FromEnv(t *testing.T) {
	t.Setenv("BANK_A_DEPOSIT_IBAN", "EE157700771000000001")
	t.Setenv("LEDGER_ACCOUNT_DEPOSIT", "CASH_EUR")

	accounts := loadAccounts()

	iban, err := accounts.IBANFor(domain.BankA, domain.AccountTypeDeposit)
	require.NoError(t, err)
	assert.Equal(t, "EE157700771000000001", iban)

	ledgerAccount, err := accounts.LedgerAccount(domain.AccountTypeDeposit)
	require.NoError(t, err)
	assert.Equal(t, "CASH_EUR", ledgerAccount)

	_, err = accounts.IBANFor(domain.BankB, domain.AccountTypeDeposit)
	assert.ErrorIs(t, err, domain.ErrUnresolvedAccount)
}
