package ingest

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/pensionbase/bankcore/internal/correlation"
	"github.com/pensionbase/bankcore/internal/domain"
	"github.com/pensionbase/bankcore/internal/iso20022"
	"github.com/pensionbase/bankcore/mocks"
	"github.com/pensionbase/bankcore/pkg/clock"
	"github.com/pensionbase/bankcore/pkg/logger"
)

func newGenerator(t *testing.T, resolver domain.AccountResolver, sender domain.GatewaySender) *BackfillGenerator {
	t.Helper()

	loc, err := time.LoadLocation("Europe/Tallinn")
	require.NoError(t, err)

	clk := clock.Fixed(time.Date(2024, 1, 20, 9, 30, 0, 0, time.UTC))
	return NewBackfillGenerator(resolver, sender, clk, loc, logger.NewNop())
}

func TestRequestStatements_OnePerConfiguredAccount(t *testing.T) {
	resolver := mocks.NewMockAccountResolver(t)
	sender := mocks.NewMockGatewaySender(t)
	gen := newGenerator(t, resolver, sender)

	resolver.EXPECT().IBANFor(domain.BankA, domain.AccountTypeDeposit).Return("EE111", nil).Once()
	resolver.EXPECT().IBANFor(domain.BankA, domain.AccountTypeFundInvestment).Return("", domain.ErrUnresolvedAccount).Once()
	resolver.EXPECT().IBANFor(domain.BankA, domain.AccountTypeWithdrawal).Return("EE333", nil).Once()

	var bodies []string
	var requestIDs []uuid.UUID
	sender.EXPECT().
		Send(mock.Anything, domain.BankA, mock.Anything, mock.Anything).
		Run(func(ctx context.Context, bank domain.BankID, requestID uuid.UUID, body string) {
			requestIDs = append(requestIDs, requestID)
			bodies = append(bodies, body)
		}).
		Return(nil).
		Times(2)

	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)

	sent, err := gen.RequestStatements(context.Background(), domain.BankA, from, to)
	require.NoError(t, err)

	assert.Len(t, sent, 2)
	assert.Equal(t, requestIDs, sent)
	require.Len(t, bodies, 2)

	var doc iso20022.DocumentCamt060
	require.NoError(t, iso20022.Unmarshal(bodies[0], &doc))

	assert.Equal(t, correlation.ToExternalID(requestIDs[0]), doc.Request.GroupHeader.MessageID)
	require.Len(t, doc.Request.Requests, 1)
	req := doc.Request.Requests[0]
	assert.Equal(t, "camt.053.001.02", req.RequestedMsgID)
	assert.Equal(t, "EE111", req.Account.ID.IBAN)
	assert.Equal(t, "ALLL", req.ReportingPeriod.Type)
	assert.Equal(t, "2024-01-01", req.ReportingPeriod.FromToDate.FromDate)
	assert.Equal(t, "2024-01-15", req.ReportingPeriod.FromToDate.ToDate)
	assert.Equal(t, "00:00:00.000+02:00", req.ReportingPeriod.FromToTime.FromTime)
	assert.Equal(t, "23:59:59.999+02:00", req.ReportingPeriod.FromToTime.ToTime)
}

func TestRequestStatements_InvalidRange(t *testing.T) {
	resolver := mocks.NewMockAccountResolver(t)
	sender := mocks.NewMockGatewaySender(t)
	gen := newGenerator(t, resolver, sender)

	from := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	_, err := gen.RequestStatements(context.Background(), domain.BankA, from, to)
	assert.ErrorIs(t, err, domain.ErrInvalidDateRange)
}

func TestRequestStatements_SenderErrorAborts(t *testing.T) {
	resolver := mocks.NewMockAccountResolver(t)
	sender := mocks.NewMockGatewaySender(t)
	gen := newGenerator(t, resolver, sender)

	resolver.EXPECT().IBANFor(domain.BankB, domain.AccountTypeDeposit).Return("EE111", nil).Once()
	sender.EXPECT().
		Send(mock.Anything, domain.BankB, mock.Anything, mock.Anything).
		Return(errors.New("gateway unreachable")).
		Once()

	sent, err := gen.RequestStatements(context.Background(), domain.BankB, time.Now().AddDate(0, 0, -7), time.Now())
	assert.Error(t, err)
	assert.Empty(t, sent)
}
