package storage

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pensionbase/bankcore/internal/domain"
	"github.com/pensionbase/bankcore/pkg/clock"
)

// Schema for the two tables this core owns. Ingested messages are
// append-only; positions carry the natural statement identity as their
// primary key so redelivered statements upsert.
const Schema = `
CREATE TABLE IF NOT EXISTS ingested_messages (
    id           UUID PRIMARY KEY,
    bank         TEXT NOT NULL,
    request_id   TEXT NOT NULL,
    tracking_id  TEXT NOT NULL,
    raw_body     TEXT NOT NULL,
    received_at  TIMESTAMPTZ NOT NULL,
    processed_at TIMESTAMPTZ,
    failed_at    TIMESTAMPTZ,
    CHECK (processed_at IS NULL OR failed_at IS NULL),
    UNIQUE (bank, request_id)
);

CREATE INDEX IF NOT EXISTS idx_ingested_messages_pending
    ON ingested_messages (received_at DESC)
    WHERE processed_at IS NULL AND failed_at IS NULL;

CREATE TABLE IF NOT EXISTS positions (
    bank         TEXT NOT NULL,
    account_iban TEXT NOT NULL,
    external_id  TEXT NOT NULL,
    end_to_end_id TEXT,
    counterparty TEXT,
    amount       NUMERIC NOT NULL,
    currency     TEXT NOT NULL,
    type         TEXT NOT NULL,
    description  TEXT,
    recorded_at  TIMESTAMPTZ NOT NULL,
    PRIMARY KEY (bank, account_iban, external_id)
);
`

type PostgresStore struct {
	pool  *pgxpool.Pool
	clock clock.Clock
}

func NewPostgresStore(pool *pgxpool.Pool, clk clock.Clock) *PostgresStore {
	return &PostgresStore{pool: pool, clock: clk}
}

func (s *PostgresStore) Record(ctx context.Context, bank domain.BankID, requestID, trackingID, rawBody string) (domain.IngestedMessage, error) {
	msg := domain.IngestedMessage{
		ID:         uuid.New(),
		Bank:       bank,
		RequestID:  requestID,
		TrackingID: trackingID,
		RawBody:    rawBody,
		ReceivedAt: s.clock.Now(),
	}

	_, err := s.pool.Exec(ctx, `
        INSERT INTO ingested_messages (id, bank, request_id, tracking_id, raw_body, received_at)
        VALUES ($1, $2, $3, $4, $5, $6)
    `, msg.ID, msg.Bank, msg.RequestID, msg.TrackingID, msg.RawBody, msg.ReceivedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.IngestedMessage{}, domain.ErrDuplicateMessage
		}
		return domain.IngestedMessage{}, err
	}

	return msg, nil
}

func (s *PostgresStore) MarkProcessed(ctx context.Context, id uuid.UUID) error {
	return s.mark(ctx, id, "processed_at")
}

func (s *PostgresStore) MarkFailed(ctx context.Context, id uuid.UUID) error {
	return s.mark(ctx, id, "failed_at")
}

// mark sets the given timestamp column only when the record is still
// pending, which makes both setters idempotent and preserves the
// at-most-one-of invariant under concurrent callers.
func (s *PostgresStore) mark(ctx context.Context, id uuid.UUID, column string) error {
	tag, err := s.pool.Exec(ctx, `
        UPDATE ingested_messages
        SET `+column+` = $1
        WHERE id = $2 AND processed_at IS NULL AND failed_at IS NULL
    `, s.clock.Now(), id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		var exists bool
		if err := s.pool.QueryRow(ctx, "SELECT EXISTS (SELECT 1 FROM ingested_messages WHERE id = $1)", id).Scan(&exists); err != nil {
			return err
		}
		if !exists {
			return domain.ErrMessageNotFound
		}
	}
	return nil
}

func (s *PostgresStore) FindPending(ctx context.Context, limit, offset int) ([]domain.IngestedMessage, error) {
	if limit < 1 || offset < 0 {
		return nil, domain.ErrInvalidPageParams
	}

	rows, err := s.pool.Query(ctx, `
        SELECT id, bank, request_id, tracking_id, raw_body, received_at, processed_at, failed_at
        FROM ingested_messages
        WHERE processed_at IS NULL AND failed_at IS NULL
        ORDER BY received_at DESC
        LIMIT $1 OFFSET $2
    `, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	messages := make([]domain.IngestedMessage, 0, limit)
	for rows.Next() {
		var m domain.IngestedMessage
		if err := rows.Scan(&m.ID, &m.Bank, &m.RequestID, &m.TrackingID, &m.RawBody, &m.ReceivedAt, &m.ProcessedAt, &m.FailedAt); err != nil {
			return nil, err
		}
		messages = append(messages, m)
	}

	return messages, rows.Err()
}

// UpsertPositions writes all records of one statement in a single
// transaction; a failure rolls every row back.
func (s *PostgresStore) UpsertPositions(ctx context.Context, records []domain.PositionRecord) error {
	if len(records) == 0 {
		return nil
	}

	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	for _, r := range records {
		_, err := tx.Exec(ctx, `
            INSERT INTO positions (bank, account_iban, external_id, end_to_end_id, counterparty, amount, currency, type, description, recorded_at)
            VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
            ON CONFLICT (bank, account_iban, external_id) DO UPDATE
            SET end_to_end_id = EXCLUDED.end_to_end_id,
                counterparty  = EXCLUDED.counterparty,
                amount        = EXCLUDED.amount,
                currency      = EXCLUDED.currency,
                type          = EXCLUDED.type,
                description   = EXCLUDED.description
        `, r.Bank, r.AccountIBAN, r.ExternalID, r.EndToEndID, r.Counterparty, r.Amount, r.Currency, r.Type, r.Description, r.RecordedAt)
		if err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

func (s *PostgresStore) PositionsForAccount(ctx context.Context, bank domain.BankID, iban string) ([]domain.PositionRecord, error) {
	rows, err := s.pool.Query(ctx, `
        SELECT bank, account_iban, external_id, end_to_end_id, counterparty, amount, currency, type, description, recorded_at
        FROM positions
        WHERE bank = $1 AND account_iban = $2
        ORDER BY external_id
    `, bank, iban)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := make([]domain.PositionRecord, 0)
	for rows.Next() {
		var r domain.PositionRecord
		if err := rows.Scan(&r.Bank, &r.AccountIBAN, &r.ExternalID, &r.EndToEndID, &r.Counterparty, &r.Amount, &r.Currency, &r.Type, &r.Description, &r.RecordedAt); err != nil {
			return nil, err
		}
		records = append(records, r)
	}

	return records, rows.Err()
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return pgErr.Code == "23505"
}
