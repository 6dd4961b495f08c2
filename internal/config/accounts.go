package config

import (
	"github.com/pensionbase/bankcore/internal/domain"
)

// Accounts is the configured mapping between physical bank accounts, logical
// account types and ledger system accounts. It implements
// domain.AccountResolver.
type Accounts struct {
	ibans          map[accountKey]string
	types          map[string]domain.BankAccountType
	ledgerAccounts map[domain.BankAccountType]string
}

type accountKey struct {
	bank        domain.BankID
	accountType domain.BankAccountType
}

func loadAccounts() *Accounts {
	a := &Accounts{
		ibans:          make(map[accountKey]string),
		types:          make(map[string]domain.BankAccountType),
		ledgerAccounts: make(map[domain.BankAccountType]string),
	}

	bankEnvs := map[domain.BankID]string{
		domain.BankA: "BANK_A",
		domain.BankB: "BANK_B",
	}
	typeEnvs := map[domain.BankAccountType]string{
		domain.AccountTypeDeposit:        "DEPOSIT",
		domain.AccountTypeFundInvestment: "FUND_INVESTMENT",
		domain.AccountTypeWithdrawal:     "WITHDRAWAL",
	}

	for bank, bankEnv := range bankEnvs {
		for accountType, typeEnv := range typeEnvs {
			if iban := getEnv(bankEnv+"_"+typeEnv+"_IBAN", ""); iban != "" {
				a.register(bank, accountType, iban)
			}
		}
	}

	a.ledgerAccounts[domain.AccountTypeDeposit] = getEnv("LEDGER_ACCOUNT_DEPOSIT", "CASH_DEPOSIT_EUR")
	a.ledgerAccounts[domain.AccountTypeFundInvestment] = getEnv("LEDGER_ACCOUNT_FUND_INVESTMENT", "CASH_INVESTMENT_EUR")
	a.ledgerAccounts[domain.AccountTypeWithdrawal] = getEnv("LEDGER_ACCOUNT_WITHDRAWAL", "CASH_WITHDRAWAL_EUR")

	return a
}

// NewAccounts builds a resolver from an explicit mapping, used in tests.
func NewAccounts() *Accounts {
	return &Accounts{
		ibans:          make(map[accountKey]string),
		types:          make(map[string]domain.BankAccountType),
		ledgerAccounts: make(map[domain.BankAccountType]string),
	}
}

func (a *Accounts) Register(bank domain.BankID, accountType domain.BankAccountType, iban string) *Accounts {
	a.register(bank, accountType, iban)
	return a
}

func (a *Accounts) RegisterLedgerAccount(accountType domain.BankAccountType, ledgerAccount string) *Accounts {
	a.ledgerAccounts[accountType] = ledgerAccount
	return a
}

func (a *Accounts) register(bank domain.BankID, accountType domain.BankAccountType, iban string) {
	a.ibans[accountKey{bank: bank, accountType: accountType}] = iban
	a.types[iban] = accountType
}

func (a *Accounts) AccountType(iban string) (domain.BankAccountType, error) {
	accountType, exists := a.types[iban]
	if !exists {
		return "", domain.ErrUnresolvedAccount
	}
	return accountType, nil
}

func (a *Accounts) LedgerAccount(accountType domain.BankAccountType) (string, error) {
	ledgerAccount, exists := a.ledgerAccounts[accountType]
	if !exists {
		return "", domain.ErrUnresolvedAccount
	}
	return ledgerAccount, nil
}

func (a *Accounts) IBANFor(bank domain.BankID, accountType domain.BankAccountType) (string, error) {
	iban, exists := a.ibans[accountKey{bank: bank, accountType: accountType}]
	if !exists {
		return "", domain.ErrUnresolvedAccount
	}
	return iban, nil
}
