// Package notify publishes reconciliation outcomes to operator channels.
// Notification failures never propagate into the ingestion pipeline.
package notify

import (
	"context"
	"fmt"

	"github.com/pensionbase/bankcore/internal/domain"
	"github.com/pensionbase/bankcore/pkg/logger"
	"github.com/pensionbase/bankcore/pkg/retry"
)

// Channel delivers one rendered notification. Implementations wrap chat
// webhooks, mail, paging, or plain logs.
type Channel interface {
	Name() string
	Notify(ctx context.Context, severity Severity, message string) error
}

type Severity string

const (
	SeverityInfo  Severity = "INFO"
	SeverityAlert Severity = "ALERT"
)

type Notifier struct {
	channels []Channel
	logger   *logger.Logger
}

func New(log *logger.Logger, channels ...Channel) *Notifier {
	return &Notifier{channels: channels, logger: log}
}

// Publish renders the outcome and fans it out to every channel. A matched
// outcome is informational; a mismatch is an alert. Channel failures are
// retried, then logged and dropped.
func (n *Notifier) Publish(ctx context.Context, outcome domain.ReconciliationOutcome) {
	severity := SeverityInfo
	if !outcome.Matched {
		severity = SeverityAlert
	}
	message := render(outcome)

	for _, channel := range n.channels {
		ch := channel
		err := retry.Do(ctx, func() error {
			return ch.Notify(ctx, severity, message)
		})
		if err != nil {
			channelErr := &domain.ChannelError{Channel: ch.Name(), Err: err}
			n.logger.Error(ctx, "Notification delivery failed",
				"channel", ch.Name(),
				"severity", severity,
				"error", channelErr,
			)
		}
	}
}

func render(o domain.ReconciliationOutcome) string {
	if o.Matched {
		return fmt.Sprintf("Reconciliation OK: %s %s balance %s matches ledger at %s",
			o.Bank, o.AccountType, o.BankBalance.StringFixed(2), o.At.Format("2006-01-02"))
	}
	return fmt.Sprintf("Reconciliation MISMATCH: %s %s bank balance %s vs ledger balance %s (diff %s) at %s",
		o.Bank, o.AccountType, o.BankBalance.StringFixed(2), o.LedgerBalance.StringFixed(2),
		o.Diff().StringFixed(2), o.At.Format("2006-01-02"))
}
