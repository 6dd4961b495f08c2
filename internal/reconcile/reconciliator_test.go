package reconcile

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/pensionbase/bankcore/internal/dispatch"
	"github.com/pensionbase/bankcore/internal/domain"
	"github.com/pensionbase/bankcore/mocks"
	"github.com/pensionbase/bankcore/pkg/logger"
)

type recordingPublisher struct {
	outcomes []domain.ReconciliationOutcome
}

func (p *recordingPublisher) Publish(ctx context.Context, outcome domain.ReconciliationOutcome) {
	p.outcomes = append(p.outcomes, outcome)
}

func historicStatement(closeAmount string) domain.BankStatement {
	return domain.BankStatement{
		Type:    domain.StatementTypeHistoric,
		Account: domain.StatementAccount{IBAN: "EE157700771000000001"},
		Balances: []domain.StatementBalance{
			{
				Type:     domain.BalanceTypeOpen,
				Date:     time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
				Amount:   decimal.RequireFromString("900.00"),
				Currency: "EUR",
			},
			{
				Type:     domain.BalanceTypeClose,
				Date:     time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
				Amount:   decimal.RequireFromString(closeAmount),
				Currency: "EUR",
			},
		},
	}
}

func setup(t *testing.T) (*mocks.MockAccountResolver, *mocks.MockBalanceSource, *recordingPublisher, *Reconciliator) {
	t.Helper()

	tallinn, err := time.LoadLocation("Europe/Tallinn")
	require.NoError(t, err)

	resolver := mocks.NewMockAccountResolver(t)
	balances := mocks.NewMockBalanceSource(t)
	publisher := &recordingPublisher{}
	r := New(resolver, balances, publisher, tallinn, logger.NewNop())

	return resolver, balances, publisher, r
}

func TestReconcile_Matched(t *testing.T) {
	resolver, balances, _, r := setup(t)

	tallinn, _ := time.LoadLocation("Europe/Tallinn")
	endOfDay := time.Date(2024, 1, 15, 23, 59, 59, 999999999, tallinn)

	resolver.EXPECT().AccountType("EE157700771000000001").Return(domain.AccountTypeDeposit, nil).Once()
	resolver.EXPECT().LedgerAccount(domain.AccountTypeDeposit).Return("CASH_DEPOSIT_EUR", nil).Once()
	balances.EXPECT().
		BalanceAt(mock.Anything, "CASH_DEPOSIT_EUR", endOfDay).
		Return(decimal.RequireFromString("1000.00"), nil).
		Once()

	outcome, err := r.Reconcile(context.Background(), domain.BankA, historicStatement("1000.00"))
	require.NoError(t, err)

	assert.True(t, outcome.Matched)
	assert.Equal(t, domain.AccountTypeDeposit, outcome.AccountType)
	assert.True(t, outcome.BankBalance.Equal(decimal.RequireFromString("1000.00")))
	assert.True(t, outcome.LedgerBalance.Equal(decimal.RequireFromString("1000.00")))
	assert.Equal(t, endOfDay, outcome.At)
	assert.True(t, outcome.Diff().IsZero())
}

func TestReconcile_Mismatch(t *testing.T) {
	resolver, balances, _, r := setup(t)

	resolver.EXPECT().AccountType(mock.Anything).Return(domain.AccountTypeDeposit, nil).Once()
	resolver.EXPECT().LedgerAccount(domain.AccountTypeDeposit).Return("CASH_DEPOSIT_EUR", nil).Once()
	balances.EXPECT().
		BalanceAt(mock.Anything, "CASH_DEPOSIT_EUR", mock.Anything).
		Return(decimal.RequireFromString("999.99"), nil).
		Once()

	outcome, err := r.Reconcile(context.Background(), domain.BankA, historicStatement("1000.00"))
	require.NoError(t, err)

	assert.False(t, outcome.Matched)
	assert.Equal(t, "0.01", outcome.Diff().StringFixed(2))
}

func TestReconcile_ExactComparisonNoTolerance(t *testing.T) {
	resolver, balances, _, r := setup(t)

	resolver.EXPECT().AccountType(mock.Anything).Return(domain.AccountTypeDeposit, nil).Once()
	resolver.EXPECT().LedgerAccount(mock.Anything).Return("CASH_DEPOSIT_EUR", nil).Once()
	balances.EXPECT().
		BalanceAt(mock.Anything, mock.Anything, mock.Anything).
		Return(decimal.RequireFromString("1000.001"), nil).
		Once()

	outcome, err := r.Reconcile(context.Background(), domain.BankA, historicStatement("1000.00"))
	require.NoError(t, err)

	assert.False(t, outcome.Matched)
}

func TestReconcile_UnresolvedAccount(t *testing.T) {
	resolver, _, _, r := setup(t)

	resolver.EXPECT().AccountType(mock.Anything).Return(domain.BankAccountType(""), domain.ErrUnresolvedAccount).Once()

	_, err := r.Reconcile(context.Background(), domain.BankA, historicStatement("1000.00"))
	assert.ErrorIs(t, err, domain.ErrUnresolvedAccount)
}

func TestReconcile_NoCloseBalance(t *testing.T) {
	resolver, _, _, r := setup(t)

	resolver.EXPECT().AccountType(mock.Anything).Return(domain.AccountTypeDeposit, nil).Once()

	stmt := historicStatement("1000.00")
	stmt.Balances = stmt.Balances[:1]

	_, err := r.Reconcile(context.Background(), domain.BankA, stmt)
	assert.ErrorIs(t, err, domain.ErrNoCloseBalance)
}

func TestReconcile_BalanceSourceError(t *testing.T) {
	resolver, balances, _, r := setup(t)

	resolver.EXPECT().AccountType(mock.Anything).Return(domain.AccountTypeDeposit, nil).Once()
	resolver.EXPECT().LedgerAccount(mock.Anything).Return("CASH_DEPOSIT_EUR", nil).Once()

	sourceErr := errors.New("ledger timeout")
	balances.EXPECT().
		BalanceAt(mock.Anything, mock.Anything, mock.Anything).
		Return(decimal.Zero, sourceErr).
		Once()

	_, err := r.Reconcile(context.Background(), domain.BankA, historicStatement("1000.00"))
	assert.ErrorIs(t, err, sourceErr)
}

func TestHandle_PublishesOutcome(t *testing.T) {
	resolver, balances, publisher, r := setup(t)

	resolver.EXPECT().AccountType(mock.Anything).Return(domain.AccountTypeDeposit, nil).Once()
	resolver.EXPECT().LedgerAccount(mock.Anything).Return("CASH_DEPOSIT_EUR", nil).Once()
	balances.EXPECT().
		BalanceAt(mock.Anything, mock.Anything, mock.Anything).
		Return(decimal.RequireFromString("999.99"), nil).
		Once()

	event := dispatch.StatementReceived{
		MessageID: uuid.New(),
		Bank:      domain.BankA,
		Statement: historicStatement("1000.00"),
	}
	require.NoError(t, r.Handle(context.Background(), event))

	require.Len(t, publisher.outcomes, 1)
	assert.False(t, publisher.outcomes[0].Matched)
}

func TestHandle_SkipsIntradayAndConfirmation(t *testing.T) {
	_, _, publisher, r := setup(t)

	for _, stmtType := range []domain.StatementType{domain.StatementTypeIntraday, domain.StatementTypeConfirmation} {
		event := dispatch.StatementReceived{
			MessageID: uuid.New(),
			Bank:      domain.BankA,
			Statement: domain.BankStatement{Type: stmtType},
		}
		require.NoError(t, r.Handle(context.Background(), event))
	}

	assert.Empty(t, publisher.outcomes)
}
