package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MessageLedger is the idempotent store of raw inbound gateway messages.
type MessageLedger interface {
	// Record appends a message. A redelivered (bank, requestID) pair returns
	// ErrDuplicateMessage.
	Record(ctx context.Context, bank BankID, requestID, trackingID, rawBody string) (IngestedMessage, error)

	// MarkProcessed and MarkFailed are idempotent: a second call for a field
	// that is already set is a no-op.
	MarkProcessed(ctx context.Context, id uuid.UUID) error
	MarkFailed(ctx context.Context, id uuid.UUID) error

	// FindPending returns pending messages most-recently-received first.
	// Callers page through it; it is not a one-shot snapshot.
	FindPending(ctx context.Context, limit, offset int) ([]IngestedMessage, error)
}

// PositionStore persists internal transaction/position records derived from
// statements. UpsertPositions is failure-atomic: either every record of the
// call is visible or none is.
type PositionStore interface {
	UpsertPositions(ctx context.Context, records []PositionRecord) error
	PositionsForAccount(ctx context.Context, bank BankID, iban string) ([]PositionRecord, error)
}

// BalanceSource is the external ledger collaborator, consulted read-only for
// a balance-at-time query.
type BalanceSource interface {
	BalanceAt(ctx context.Context, ledgerAccount string, at time.Time) (decimal.Decimal, error)
}

// AccountResolver maps a physical bank IBAN onto the configured logical
// account and its ledger system account.
type AccountResolver interface {
	// AccountType returns ErrUnresolvedAccount when the IBAN is not configured.
	AccountType(iban string) (BankAccountType, error)
	LedgerAccount(accountType BankAccountType) (string, error)
	IBANFor(bank BankID, accountType BankAccountType) (string, error)
}

// GatewaySender hands an outbound gateway request to the transport
// collaborator. The transport, signing and acknowledgement protocol are out
// of scope here.
type GatewaySender interface {
	Send(ctx context.Context, bank BankID, requestID uuid.UUID, body string) error
}
