package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type BankID string

const (
	BankA BankID = "BANK_A"
	BankB BankID = "BANK_B"
)

// ParseBankID validates an externally supplied bank identifier.
func ParseBankID(s string) (BankID, bool) {
	switch BankID(s) {
	case BankA, BankB:
		return BankID(s), true
	}
	return "", false
}

type StatementType string

const (
	StatementTypeIntraday     StatementType = "INTRADAY_REPORT"
	StatementTypeHistoric     StatementType = "HISTORIC_STATEMENT"
	StatementTypeConfirmation StatementType = "PAYMENT_CONFIRMATION"
)

type BalanceType string

const (
	BalanceTypeOpen  BalanceType = "OPEN"
	BalanceTypeClose BalanceType = "CLOSE"
)

type TransactionType string

const (
	TransactionTypeCredit TransactionType = "CREDIT"
	TransactionTypeDebit  TransactionType = "DEBIT"
)

// BankAccountType names a logical operating account. The mapping from an
// account type to its current IBAN and ledger system account lives in
// configuration, not here.
type BankAccountType string

const (
	AccountTypeDeposit        BankAccountType = "DEPOSIT_EUR"
	AccountTypeFundInvestment BankAccountType = "FUND_INVESTMENT_EUR"
	AccountTypeWithdrawal     BankAccountType = "WITHDRAWAL_EUR"
)

// IngestedMessage is one raw message received from a banking gateway.
// Records are append-only; only ProcessedAt/FailedAt are ever mutated, and
// never both on the same record.
type IngestedMessage struct {
	ID          uuid.UUID  `json:"id"`
	Bank        BankID     `json:"bank"`
	RequestID   string     `json:"request_id"`
	TrackingID  string     `json:"tracking_id"`
	RawBody     string     `json:"raw_body"`
	ReceivedAt  time.Time  `json:"received_at"`
	ProcessedAt *time.Time `json:"processed_at,omitempty"`
	FailedAt    *time.Time `json:"failed_at,omitempty"`
}

// Pending reports whether the message is still eligible for processing.
func (m IngestedMessage) Pending() bool {
	return m.ProcessedAt == nil && m.FailedAt == nil
}

type StatementAccount struct {
	IBAN      string
	OwnerName string
	OwnerCode string
}

type StatementBalance struct {
	Type     BalanceType
	Date     time.Time // calendar day; bank balances are dated, not timestamped
	Amount   decimal.Decimal
	Currency string
}

// CounterParty is the other side of a statement entry. Nil when the bank
// reports an operation without a related party (fees, interest).
type CounterParty struct {
	Name         string
	IBAN         string
	PersonalCode string
}

type StatementEntry struct {
	CounterParty *CounterParty
	Amount       decimal.Decimal // signed: credits positive, debits negative
	Currency     string
	Type         TransactionType
	Description  string
	ExternalID   string
	EndToEndID   string
}

// BankStatement is the canonical parse result of one inbound message. It is
// transient: produced by an extractor, consumed by one dispatch, never stored.
type BankStatement struct {
	Type       StatementType
	Account    StatementAccount
	Balances   []StatementBalance
	Entries    []StatementEntry
	ReceivedAt time.Time
}

// CloseBalance returns the statement's CLOSE balance entry.
func (s BankStatement) CloseBalance() (StatementBalance, error) {
	for _, b := range s.Balances {
		if b.Type == BalanceTypeClose {
			return b, nil
		}
	}
	return StatementBalance{}, ErrNoCloseBalance
}

// PaymentRequest describes one outbound transfer. Immutable; consumed once by
// the payment message builder. Persistence of sent payments is the payment
// workflow's concern, not this core's.
type PaymentRequest struct {
	RemitterName    string
	RemitterID      string
	RemitterIBAN    string
	BeneficiaryName string
	BeneficiaryIBAN string
	Amount          decimal.Decimal
	Description     string
	OurID           string
	EndToEndID      string
}

// ReconciliationOutcome is emitted once per reconciled historic statement.
type ReconciliationOutcome struct {
	Bank          BankID
	AccountType   BankAccountType
	BankBalance   decimal.Decimal
	LedgerBalance decimal.Decimal
	At            time.Time
	Matched       bool
}

// Diff returns the absolute difference between bank and ledger balances.
func (o ReconciliationOutcome) Diff() decimal.Decimal {
	return o.BankBalance.Sub(o.LedgerBalance).Abs()
}

// PositionRecord is an internal transaction/position row derived from a
// statement entry. The triple (Bank, AccountIBAN, ExternalID) is its natural
// identity, so a redelivered statement upserts instead of duplicating.
type PositionRecord struct {
	Bank         BankID          `json:"bank"`
	AccountIBAN  string          `json:"account_iban"`
	ExternalID   string          `json:"external_id"`
	EndToEndID   string          `json:"end_to_end_id,omitempty"`
	Counterparty string          `json:"counterparty,omitempty"`
	Amount       decimal.Decimal `json:"amount"`
	Currency     string          `json:"currency"`
	Type         TransactionType `json:"type"`
	Description  string          `json:"description"`
	RecordedAt   time.Time       `json:"recorded_at"`
}
