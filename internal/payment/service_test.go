package payment

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/pensionbase/bankcore/internal/correlation"
	"github.com/pensionbase/bankcore/internal/domain"
	"github.com/pensionbase/bankcore/mocks"
	"github.com/pensionbase/bankcore/pkg/clock"
	"github.com/pensionbase/bankcore/pkg/logger"
)

func newService(t *testing.T, sender domain.GatewaySender) *Service {
	t.Helper()

	clk := clock.Fixed(time.Date(2020, 1, 1, 14, 13, 15, 0, time.UTC))
	bics := map[domain.BankID]string{domain.BankA: "HABAEE2X"}
	return NewService(NewBuilder(clk), sender, bics, logger.NewNop())
}

func TestSend_CorrelatesEndToEndID(t *testing.T) {
	sender := mocks.NewMockGatewaySender(t)
	svc := newService(t, sender)

	var sentBody string
	var sentRequestID uuid.UUID
	sender.EXPECT().
		Send(mock.Anything, domain.BankA, mock.Anything, mock.Anything).
		Run(func(ctx context.Context, bank domain.BankID, requestID uuid.UUID, body string) {
			sentRequestID = requestID
			sentBody = body
		}).
		Return(nil).
		Once()

	req := testRequest()
	req.OurID = ""
	req.EndToEndID = ""

	paymentID, err := svc.Send(context.Background(), domain.BankA, req)
	require.NoError(t, err)

	assert.Equal(t, paymentID, sentRequestID)
	assert.Contains(t, sentBody, "<EndToEndId>"+correlation.ToExternalID(paymentID)+"</EndToEndId>")
	assert.Contains(t, sentBody, "<BICFI>HABAEE2X</BICFI>")
}

func TestSend_UnconfiguredBank(t *testing.T) {
	sender := mocks.NewMockGatewaySender(t)
	svc := newService(t, sender)

	_, err := svc.Send(context.Background(), domain.BankB, testRequest())
	assert.Error(t, err)
}
