// Package extractor parses raw gateway messages into the canonical
// statement model. One implementation per bank: the banks publish different
// schema sets, but both map onto the same output shape. Extractors are
// purely structural; no balance math, no filtering.
package extractor

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/pensionbase/bankcore/internal/domain"
	"github.com/pensionbase/bankcore/internal/iso20022"
)

type Extractor interface {
	Bank() domain.BankID
	// Supports reports whether the extractor understands the document's
	// root namespace.
	Supports(namespace string) bool
	// Extract parses rawBody into a statement. Failures are *domain.ParseError,
	// wrapping the codec error where one occurred; they must surface to the
	// caller because a silently dropped statement corrupts reconciliation.
	Extract(rawBody string) (domain.BankStatement, error)
}

// mapReport converts one camt report/statement/notification body into the
// canonical model.
func mapReport(bank domain.BankID, stmtType domain.StatementType, report iso20022.AccountReport, loc *time.Location) (domain.BankStatement, error) {
	account, err := mapAccount(bank, report.Account)
	if err != nil {
		return domain.BankStatement{}, err
	}

	balances := make([]domain.StatementBalance, 0, len(report.Balances))
	for _, bal := range report.Balances {
		mapped, err := mapBalance(bank, bal)
		if err != nil {
			return domain.BankStatement{}, err
		}
		balances = append(balances, mapped)
	}

	entries := make([]domain.StatementEntry, 0, len(report.Entries))
	for _, entry := range report.Entries {
		mapped, err := mapEntry(bank, entry)
		if err != nil {
			return domain.BankStatement{}, err
		}
		entries = append(entries, mapped)
	}

	var receivedAt time.Time
	if report.FromToDate != nil && report.FromToDate.ToDateTime != "" {
		receivedAt, err = iso20022.ParseDateTimeIn(report.FromToDate.ToDateTime, loc)
		if err != nil {
			return domain.BankStatement{}, &domain.ParseError{Bank: bank, Reason: "invalid period end time", Err: err}
		}
	}

	return domain.BankStatement{
		Type:       stmtType,
		Account:    account,
		Balances:   balances,
		Entries:    entries,
		ReceivedAt: receivedAt,
	}, nil
}

func mapAccount(bank domain.BankID, acct iso20022.Account) (domain.StatementAccount, error) {
	if acct.ID.IBAN == "" {
		return domain.StatementAccount{}, &domain.ParseError{Bank: bank, Reason: "account IBAN is missing"}
	}

	account := domain.StatementAccount{IBAN: acct.ID.IBAN}
	if acct.Owner != nil {
		account.OwnerName = acct.Owner.Name
		account.OwnerCode = firstPartyCode(acct.Owner)
	}
	return account, nil
}

func mapBalance(bank domain.BankID, bal iso20022.Balance) (domain.StatementBalance, error) {
	var balType domain.BalanceType
	switch bal.Type.CodeOrProprietary.Code {
	case iso20022.BalanceCodeOpening:
		balType = domain.BalanceTypeOpen
	case iso20022.BalanceCodeClosing:
		balType = domain.BalanceTypeClose
	default:
		return domain.StatementBalance{}, &domain.ParseError{Bank: bank, Reason: "unknown balance type code " + bal.Type.CodeOrProprietary.Code}
	}

	amount, err := signedAmount(bal.Amount.Value, bal.CreditDebitInd)
	if err != nil {
		return domain.StatementBalance{}, &domain.ParseError{Bank: bank, Reason: "invalid balance amount", Err: err}
	}

	date, err := iso20022.ParseDate(bal.Date.Date)
	if err != nil {
		return domain.StatementBalance{}, &domain.ParseError{Bank: bank, Reason: "invalid balance date", Err: err}
	}

	return domain.StatementBalance{
		Type:     balType,
		Date:     date,
		Amount:   amount,
		Currency: bal.Amount.Currency,
	}, nil
}

func mapEntry(bank domain.BankID, entry iso20022.Entry) (domain.StatementEntry, error) {
	amount, err := signedAmount(entry.Amount.Value, entry.CreditDebitInd)
	if err != nil {
		return domain.StatementEntry{}, &domain.ParseError{Bank: bank, Reason: "invalid entry amount", Err: err}
	}

	txType := domain.TransactionTypeCredit
	if entry.CreditDebitInd == iso20022.DebitIndicator {
		txType = domain.TransactionTypeDebit
	}

	externalID := entry.Reference
	if externalID == "" {
		externalID = entry.AccountServicerRef
	}
	if externalID == "" {
		return domain.StatementEntry{}, &domain.ParseError{Bank: bank, Reason: "entry has no reference"}
	}

	mapped := domain.StatementEntry{
		Amount:     amount,
		Currency:   entry.Amount.Currency,
		Type:       txType,
		ExternalID: externalID,
	}

	if tx := firstTransactionDetails(entry); tx != nil {
		if tx.References != nil {
			mapped.EndToEndID = tx.References.EndToEndID
		}
		if tx.RemittanceInfo != nil {
			for _, ustrd := range tx.RemittanceInfo.Unstructured {
				if ustrd != "" {
					mapped.Description = ustrd
					break
				}
			}
		}
		mapped.CounterParty = counterParty(entry.CreditDebitInd, tx.RelatedParties)
	}

	return mapped, nil
}

// counterParty resolves the other side of the entry: the debtor of a credit,
// the creditor of a debit. Entries without a related party (bank fees,
// interest) map to nil.
func counterParty(creditDebitInd string, parties *iso20022.RelatedParties) *domain.CounterParty {
	if parties == nil {
		return nil
	}

	var party *iso20022.Party
	var account *iso20022.Account
	if creditDebitInd == iso20022.CreditIndicator {
		party, account = parties.Debtor, parties.DebtorAccount
	} else {
		party, account = parties.Creditor, parties.CreditorAccount
	}

	if party == nil || account == nil || account.ID.IBAN == "" {
		return nil
	}

	return &domain.CounterParty{
		Name:         party.Name,
		IBAN:         account.ID.IBAN,
		PersonalCode: firstPartyCode(party),
	}
}

func firstPartyCode(party *iso20022.Party) string {
	if party == nil || party.ID == nil {
		return ""
	}
	for _, ids := range []*iso20022.PartyIdentifiers{party.ID.PrivateID, party.ID.OrgID} {
		if ids == nil {
			continue
		}
		for _, other := range ids.Other {
			if other.ID != "" {
				return other.ID
			}
		}
	}
	return ""
}

func firstTransactionDetails(entry iso20022.Entry) *iso20022.TransactionDetails {
	for i := range entry.Details {
		if len(entry.Details[i].Transactions) > 0 {
			return &entry.Details[i].Transactions[0]
		}
	}
	return nil
}

func signedAmount(value, creditDebitInd string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, err
	}
	if creditDebitInd == iso20022.DebitIndicator {
		return amount.Neg(), nil
	}
	return amount, nil
}
