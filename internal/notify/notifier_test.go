package notify_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/pensionbase/bankcore/internal/domain"
	"github.com/pensionbase/bankcore/internal/notify"
	"github.com/pensionbase/bankcore/mocks"
	"github.com/pensionbase/bankcore/pkg/logger"
)

func matchedOutcome() domain.ReconciliationOutcome {
	return domain.ReconciliationOutcome{
		Bank:          domain.BankA,
		AccountType:   domain.AccountTypeDeposit,
		BankBalance:   decimal.RequireFromString("1000.00"),
		LedgerBalance: decimal.RequireFromString("1000.00"),
		At:            time.Date(2024, 1, 15, 23, 59, 59, 999999999, time.UTC),
		Matched:       true,
	}
}

func mismatchOutcome() domain.ReconciliationOutcome {
	o := matchedOutcome()
	o.LedgerBalance = decimal.RequireFromString("999.99")
	o.Matched = false
	return o
}

func TestPublish_MatchedIsInfo(t *testing.T) {
	channel := mocks.NewMockChannel(t)
	notifier := notify.New(logger.NewNop(), channel)

	channel.EXPECT().
		Notify(mock.Anything, notify.SeverityInfo, mock.AnythingOfType("string")).
		Return(nil).
		Once()

	notifier.Publish(context.Background(), matchedOutcome())
}

func TestPublish_MismatchIsAlertWithDiff(t *testing.T) {
	channel := mocks.NewMockChannel(t)
	notifier := notify.New(logger.NewNop(), channel)

	var message string
	channel.EXPECT().
		Notify(mock.Anything, notify.SeverityAlert, mock.AnythingOfType("string")).
		Run(func(ctx context.Context, severity notify.Severity, msg string) {
			message = msg
		}).
		Return(nil).
		Once()

	notifier.Publish(context.Background(), mismatchOutcome())

	assert.Contains(t, message, "1000.00")
	assert.Contains(t, message, "999.99")
	assert.Contains(t, message, "0.01")
	assert.Contains(t, message, "BANK_A")
}

func TestPublish_ChannelFailureIsRetriedThenSwallowed(t *testing.T) {
	channel := mocks.NewMockChannel(t)
	notifier := notify.New(logger.NewNop(), channel)

	channel.EXPECT().
		Notify(mock.Anything, notify.SeverityInfo, mock.AnythingOfType("string")).
		Return(errors.New("webhook down")).
		Times(3)
	channel.EXPECT().Name().Return("webhook").Maybe()

	// Must not panic or propagate.
	notifier.Publish(context.Background(), matchedOutcome())
}

func TestPublish_FansOutToAllChannels(t *testing.T) {
	first := mocks.NewMockChannel(t)
	second := mocks.NewMockChannel(t)
	notifier := notify.New(logger.NewNop(), first, second)

	first.EXPECT().
		Notify(mock.Anything, notify.SeverityAlert, mock.AnythingOfType("string")).
		Return(errors.New("down")).
		Times(3)
	first.EXPECT().Name().Return("first").Maybe()
	second.EXPECT().
		Notify(mock.Anything, notify.SeverityAlert, mock.AnythingOfType("string")).
		Return(nil).
		Once()

	notifier.Publish(context.Background(), mismatchOutcome())
}

func TestLogChannel_NeverFails(t *testing.T) {
	channel := notify.NewLogChannel(logger.NewNop())

	assert.Equal(t, "log", channel.Name())
	assert.NoError(t, channel.Notify(context.Background(), notify.SeverityInfo, "ok"))
	assert.NoError(t, channel.Notify(context.Background(), notify.SeverityAlert, "mismatch"))
}
