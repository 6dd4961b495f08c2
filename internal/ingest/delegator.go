// Package ingest drives the message pipeline: it drains pending ledger
// messages through extraction and dispatch, and originates backfill requests
// for missed statements.
package ingest

import (
	"context"

	"github.com/pensionbase/bankcore/internal/dispatch"
	"github.com/pensionbase/bankcore/internal/domain"
	"github.com/pensionbase/bankcore/internal/extractor"
	"github.com/pensionbase/bankcore/internal/iso20022"
	"github.com/pensionbase/bankcore/pkg/logger"
)

const pendingPageSize = 50

type Delegator struct {
	ledger     domain.MessageLedger
	dispatcher *dispatch.Dispatcher
	extractors map[domain.BankID]extractor.Extractor
	logger     *logger.Logger
}

func NewDelegator(ledger domain.MessageLedger, dispatcher *dispatch.Dispatcher, log *logger.Logger, extractors ...extractor.Extractor) *Delegator {
	byBank := make(map[domain.BankID]extractor.Extractor, len(extractors))
	for _, e := range extractors {
		byBank[e.Bank()] = e
	}
	return &Delegator{
		ledger:     ledger,
		dispatcher: dispatcher,
		extractors: byBank,
		logger:     log,
	}
}

// ProcessPending drains the pending message backlog. Every visited message
// leaves the pending state, either processed or failed, so the next page is
// always fetched from offset zero. Returns the number of messages handled.
func (d *Delegator) ProcessPending(ctx context.Context) (int, error) {
	total := 0

	for {
		page, err := d.ledger.FindPending(ctx, pendingPageSize, 0)
		if err != nil {
			return total, err
		}
		if len(page) == 0 {
			return total, nil
		}

		handled := 0
		for _, msg := range page {
			if err := ctx.Err(); err != nil {
				return total, err
			}
			if d.handle(ctx, msg) {
				handled++
			}
		}
		total += handled

		// A page where nothing left the pending state would repeat forever.
		if handled == 0 {
			return total, nil
		}
	}
}

// handle moves one message from pending to processed or failed. Returns
// whether the message left the pending state.
func (d *Delegator) handle(ctx context.Context, msg domain.IngestedMessage) bool {
	ctx = logger.WithMessageID(ctx, msg.ID.String())

	ext, registered := d.extractors[msg.Bank]
	if !registered {
		d.logger.Error(ctx, "No extractor registered for bank", "bank", msg.Bank)
		return d.markFailed(ctx, msg)
	}

	namespace, err := iso20022.RootNamespace(msg.RawBody)
	if err != nil {
		d.logger.Error(ctx, "Cannot determine message namespace",
			"bank", msg.Bank,
			"error", err,
		)
		return d.markFailed(ctx, msg)
	}

	if !ext.Supports(namespace) {
		// Not an error: gateways forward message types this core does not
		// consume. Mark processed so the backlog does not grow.
		d.logger.Info(ctx, "Ignoring unsupported message type",
			"bank", msg.Bank,
			"namespace", namespace,
		)
		return d.markProcessed(ctx, msg)
	}

	statement, err := ext.Extract(msg.RawBody)
	if err != nil {
		d.logger.Error(ctx, "Statement extraction failed",
			"bank", msg.Bank,
			"namespace", namespace,
			"error", err,
		)
		return d.markFailed(ctx, msg)
	}

	event := dispatch.StatementReceived{
		MessageID: msg.ID,
		Bank:      msg.Bank,
		Statement: statement,
	}
	if err := d.dispatcher.Dispatch(ctx, event); err != nil {
		d.logger.Error(ctx, "Statement processing failed",
			"bank", msg.Bank,
			"statement_type", statement.Type,
			"error", err,
		)
		return d.markFailed(ctx, msg)
	}

	return d.markProcessed(ctx, msg)
}

func (d *Delegator) markProcessed(ctx context.Context, msg domain.IngestedMessage) bool {
	if err := d.ledger.MarkProcessed(ctx, msg.ID); err != nil {
		d.logger.Error(ctx, "Cannot mark message processed", "error", err)
		return false
	}
	return true
}

func (d *Delegator) markFailed(ctx context.Context, msg domain.IngestedMessage) bool {
	if err := d.ledger.MarkFailed(ctx, msg.ID); err != nil {
		d.logger.Error(ctx, "Cannot mark message failed", "error", err)
		return false
	}
	return true
}
