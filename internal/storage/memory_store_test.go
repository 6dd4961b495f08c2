package storage

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pensionbase/bankcore/internal/domain"
	"github.com/pensionbase/bankcore/pkg/clock"
)

type steppingClock struct {
	t time.Time
}

func (c *steppingClock) Now() time.Time {
	c.t = c.t.Add(time.Second)
	return c.t
}

func TestMemoryStore_Record(t *testing.T) {
	store := NewMemoryStore(clock.System())
	ctx := context.Background()

	msg, err := store.Record(ctx, domain.BankA, "req-1", "track-1", "<Document/>")
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, msg.ID)
	assert.Equal(t, domain.BankA, msg.Bank)
	assert.Equal(t, "req-1", msg.RequestID)
	assert.Equal(t, "<Document/>", msg.RawBody)
	assert.True(t, msg.Pending())
}

func TestMemoryStore_Record_Duplicate(t *testing.T) {
	store := NewMemoryStore(clock.System())
	ctx := context.Background()

	_, err := store.Record(ctx, domain.BankA, "req-1", "", "<Document/>")
	require.NoError(t, err)

	_, err = store.Record(ctx, domain.BankA, "req-1", "", "<Document/>")
	assert.ErrorIs(t, err, domain.ErrDuplicateMessage)

	// Same gateway id from the other bank is a distinct message.
	_, err = store.Record(ctx, domain.BankB, "req-1", "", "<Document/>")
	assert.NoError(t, err)
}

func TestMemoryStore_MarkProcessed(t *testing.T) {
	store := NewMemoryStore(clock.System())
	ctx := context.Background()

	msg, err := store.Record(ctx, domain.BankA, "req-1", "track-1", "<Document/>")
	require.NoError(t, err)

	require.NoError(t, store.MarkProcessed(ctx, msg.ID))

	pending, err := store.FindPending(ctx, 10, 0)
	require.NoError(t, err)
	assert.Empty(t, pending)
}

func TestMemoryStore_MarkProcessed_Idempotent(t *testing.T) {
	store := NewMemoryStore(clock.System())
	ctx := context.Background()

	msg, err := store.Record(ctx, domain.BankA, "req-1", "track-1", "<Document/>")
	require.NoError(t, err)

	require.NoError(t, store.MarkProcessed(ctx, msg.ID))
	// A failed mark after a processed mark must not overwrite anything.
	require.NoError(t, store.MarkFailed(ctx, msg.ID))
	require.NoError(t, store.MarkProcessed(ctx, msg.ID))

	pending, err := store.FindPending(ctx, 10, 0)
	require.NoError(t, err)
	assert.Empty(t, pending)
}

func TestMemoryStore_Mark_NotFound(t *testing.T) {
	store := NewMemoryStore(clock.System())
	ctx := context.Background()

	assert.ErrorIs(t, store.MarkProcessed(ctx, uuid.New()), domain.ErrMessageNotFound)
	assert.ErrorIs(t, store.MarkFailed(ctx, uuid.New()), domain.ErrMessageNotFound)
}

func TestMemoryStore_FindPending_Ordering(t *testing.T) {
	store := NewMemoryStore(&steppingClock{t: time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)})
	ctx := context.Background()

	first, err := store.Record(ctx, domain.BankA, "req-1", "", "a")
	require.NoError(t, err)
	second, err := store.Record(ctx, domain.BankA, "req-2", "", "b")
	require.NoError(t, err)
	third, err := store.Record(ctx, domain.BankB, "req-3", "", "c")
	require.NoError(t, err)

	pending, err := store.FindPending(ctx, 10, 0)
	require.NoError(t, err)

	require.Len(t, pending, 3)
	assert.Equal(t, third.ID, pending[0].ID)
	assert.Equal(t, second.ID, pending[1].ID)
	assert.Equal(t, first.ID, pending[2].ID)
}

func TestMemoryStore_FindPending_Pagination(t *testing.T) {
	store := NewMemoryStore(&steppingClock{t: time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)})
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		_, err := store.Record(ctx, domain.BankA, uuid.NewString(), "", "body")
		require.NoError(t, err)
	}

	page, err := store.FindPending(ctx, 2, 0)
	require.NoError(t, err)
	assert.Len(t, page, 2)

	page, err = store.FindPending(ctx, 2, 4)
	require.NoError(t, err)
	assert.Len(t, page, 1)

	page, err = store.FindPending(ctx, 2, 10)
	require.NoError(t, err)
	assert.Empty(t, page)
}

func TestMemoryStore_FindPending_InvalidParams(t *testing.T) {
	store := NewMemoryStore(clock.System())
	ctx := context.Background()

	_, err := store.FindPending(ctx, 0, 0)
	assert.ErrorIs(t, err, domain.ErrInvalidPageParams)

	_, err = store.FindPending(ctx, 10, -1)
	assert.ErrorIs(t, err, domain.ErrInvalidPageParams)
}

func TestMemoryStore_UpsertPositions_Idempotent(t *testing.T) {
	store := NewMemoryStore(clock.System())
	ctx := context.Background()

	record := domain.PositionRecord{
		Bank:        domain.BankA,
		AccountIBAN: "EE157700771000000001",
		ExternalID:  "2024011500000001",
		Amount:      decimal.RequireFromString("150.00"),
		Currency:    "EUR",
		Type:        domain.TransactionTypeCredit,
		RecordedAt:  time.Now(),
	}

	require.NoError(t, store.UpsertPositions(ctx, []domain.PositionRecord{record}))
	// Redelivered statement writes the same natural key again.
	require.NoError(t, store.UpsertPositions(ctx, []domain.PositionRecord{record}))

	positions, err := store.PositionsForAccount(ctx, domain.BankA, "EE157700771000000001")
	require.NoError(t, err)
	require.Len(t, positions, 1)
	assert.True(t, positions[0].Amount.Equal(decimal.RequireFromString("150.00")))
}

func TestMemoryStore_PositionsForAccount_Sorted(t *testing.T) {
	store := NewMemoryStore(clock.System())
	ctx := context.Background()

	records := []domain.PositionRecord{
		{Bank: domain.BankA, AccountIBAN: "EE1", ExternalID: "b", Amount: decimal.New(2, 0), Currency: "EUR", Type: domain.TransactionTypeCredit},
		{Bank: domain.BankA, AccountIBAN: "EE1", ExternalID: "a", Amount: decimal.New(1, 0), Currency: "EUR", Type: domain.TransactionTypeCredit},
		{Bank: domain.BankB, AccountIBAN: "EE1", ExternalID: "c", Amount: decimal.New(3, 0), Currency: "EUR", Type: domain.TransactionTypeCredit},
	}
	require.NoError(t, store.UpsertPositions(ctx, records))

	positions, err := store.PositionsForAccount(ctx, domain.BankA, "EE1")
	require.NoError(t, err)

	require.Len(t, positions, 2)
	assert.Equal(t, "a", positions[0].ExternalID)
	assert.Equal(t, "b", positions[1].ExternalID)
}
