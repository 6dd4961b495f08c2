package storage

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/pensionbase/bankcore/internal/domain"
	"github.com/pensionbase/bankcore/pkg/clock"
)

// MemoryStore is the in-process implementation of the message ledger and the
// position store, used in tests and local development. The Postgres store is
// the durable twin.
type MemoryStore struct {
	mu        sync.RWMutex
	clock     clock.Clock
	messages  map[uuid.UUID]*domain.IngestedMessage
	order     []uuid.UUID
	positions map[positionKey]domain.PositionRecord
}

type positionKey struct {
	bank       domain.BankID
	iban       string
	externalID string
}

func NewMemoryStore(clk clock.Clock) *MemoryStore {
	return &MemoryStore{
		clock:     clk,
		messages:  make(map[uuid.UUID]*domain.IngestedMessage),
		positions: make(map[positionKey]domain.PositionRecord),
	}
}

func (s *MemoryStore) Record(ctx context.Context, bank domain.BankID, requestID, trackingID, rawBody string) (domain.IngestedMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.messages {
		if existing.Bank == bank && existing.RequestID == requestID {
			return domain.IngestedMessage{}, domain.ErrDuplicateMessage
		}
	}

	msg := &domain.IngestedMessage{
		ID:         uuid.New(),
		Bank:       bank,
		RequestID:  requestID,
		TrackingID: trackingID,
		RawBody:    rawBody,
		ReceivedAt: s.clock.Now(),
	}

	s.messages[msg.ID] = msg
	s.order = append(s.order, msg.ID)

	return *msg, nil
}

func (s *MemoryStore) MarkProcessed(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	msg, exists := s.messages[id]
	if !exists {
		return domain.ErrMessageNotFound
	}
	if msg.ProcessedAt != nil || msg.FailedAt != nil {
		return nil
	}

	now := s.clock.Now()
	msg.ProcessedAt = &now

	return nil
}

func (s *MemoryStore) MarkFailed(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	msg, exists := s.messages[id]
	if !exists {
		return domain.ErrMessageNotFound
	}
	if msg.ProcessedAt != nil || msg.FailedAt != nil {
		return nil
	}

	now := s.clock.Now()
	msg.FailedAt = &now

	return nil
}

func (s *MemoryStore) FindPending(ctx context.Context, limit, offset int) ([]domain.IngestedMessage, error) {
	if limit < 1 || offset < 0 {
		return nil, domain.ErrInvalidPageParams
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	pending := make([]domain.IngestedMessage, 0)
	for _, id := range s.order {
		if msg := s.messages[id]; msg.Pending() {
			pending = append(pending, *msg)
		}
	}

	// Most recently received first.
	sort.SliceStable(pending, func(i, j int) bool {
		return pending[i].ReceivedAt.After(pending[j].ReceivedAt)
	})

	if offset >= len(pending) {
		return []domain.IngestedMessage{}, nil
	}
	end := offset + limit
	if end > len(pending) {
		end = len(pending)
	}

	return pending[offset:end], nil
}

// UpsertPositions replaces or inserts every record in one critical section;
// either all records of the call land or none.
func (s *MemoryStore) UpsertPositions(ctx context.Context, records []domain.PositionRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, record := range records {
		key := positionKey{bank: record.Bank, iban: record.AccountIBAN, externalID: record.ExternalID}
		s.positions[key] = record
	}

	return nil
}

func (s *MemoryStore) PositionsForAccount(ctx context.Context, bank domain.BankID, iban string) ([]domain.PositionRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	records := make([]domain.PositionRecord, 0)
	for key, record := range s.positions {
		if key.bank == bank && key.iban == iban {
			records = append(records, record)
		}
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].ExternalID < records[j].ExternalID
	})

	return records, nil
}
