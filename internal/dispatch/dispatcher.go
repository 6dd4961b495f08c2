// Package dispatch delivers StatementReceived events to registered
// listeners. Delivery is synchronous and single-threaded per event, in
// ascending priority order; listeners register per (bank, band) so no
// listener ever has to self-filter at runtime.
package dispatch

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"github.com/pensionbase/bankcore/internal/domain"
	"github.com/pensionbase/bankcore/pkg/logger"
)

// Band is a listener priority band; lower runs first. The PROCESS band
// updates internal records and is failure-atomic; the RECONCILE band
// cross-checks balances and is failure-isolated.
type Band int

const (
	ProcessBand   Band = 10
	ReconcileBand Band = 20
)

// StatementReceived carries one parsed statement through the pipeline.
type StatementReceived struct {
	MessageID uuid.UUID
	Bank      domain.BankID
	Statement domain.BankStatement
}

type Handler func(ctx context.Context, event StatementReceived) error

type registration struct {
	band    Band
	order   int
	handler Handler
}

type Dispatcher struct {
	logger    *logger.Logger
	listeners map[domain.BankID][]registration
}

func New(log *logger.Logger) *Dispatcher {
	return &Dispatcher{
		logger:    log,
		listeners: make(map[domain.BankID][]registration),
	}
}

// Register adds a handler for one bank in one priority band. Registration
// order breaks ties within a band.
func (d *Dispatcher) Register(bank domain.BankID, band Band, handler Handler) {
	regs := d.listeners[bank]
	regs = append(regs, registration{band: band, order: len(regs), handler: handler})
	sort.SliceStable(regs, func(i, j int) bool {
		if regs[i].band != regs[j].band {
			return regs[i].band < regs[j].band
		}
		return regs[i].order < regs[j].order
	})
	d.listeners[bank] = regs
}

// Dispatch runs the event's bank's PROCESS listeners to completion before
// any RECONCILE listener starts. A PROCESS failure aborts the dispatch and
// is returned to the caller, which marks the message failed. RECONCILE
// failures are logged and swallowed: the statement itself was ingested and
// processed, only the cross-check failed.
func (d *Dispatcher) Dispatch(ctx context.Context, event StatementReceived) error {
	regs, exists := d.listeners[event.Bank]
	if !exists {
		d.logger.Warn(ctx, "No listeners registered for bank",
			"bank", event.Bank,
			"message_id", event.MessageID,
		)
		return nil
	}

	for _, reg := range regs {
		if reg.band > ProcessBand {
			break
		}
		if err := reg.handler(ctx, event); err != nil {
			return err
		}
	}

	for _, reg := range regs {
		if reg.band <= ProcessBand {
			continue
		}
		if err := reg.handler(ctx, event); err != nil {
			d.logger.Error(ctx, "Post-process listener failed",
				"bank", event.Bank,
				"message_id", event.MessageID,
				"band", int(reg.band),
				"error", err,
			)
		}
	}

	return nil
}
