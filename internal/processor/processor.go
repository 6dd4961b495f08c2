// Package processor turns parsed statement entries into internal position
// records. It runs in the PROCESS band of the dispatcher, before any
// reconciliation for the same statement starts.
package processor

import (
	"context"

	"github.com/pensionbase/bankcore/internal/dispatch"
	"github.com/pensionbase/bankcore/internal/domain"
	"github.com/pensionbase/bankcore/pkg/clock"
	"github.com/pensionbase/bankcore/pkg/logger"
)

type Processor struct {
	store  domain.PositionStore
	clock  clock.Clock
	logger *logger.Logger
}

func New(store domain.PositionStore, clk clock.Clock, log *logger.Logger) *Processor {
	return &Processor{store: store, clock: clk, logger: log}
}

// Handle records every entry of the statement as a position row. The write
// is all-or-nothing; an error here fails the message so it can be retried.
func (p *Processor) Handle(ctx context.Context, event dispatch.StatementReceived) error {
	return p.Process(ctx, event.Bank, event.Statement)
}

func (p *Processor) Process(ctx context.Context, bank domain.BankID, statement domain.BankStatement) error {
	records := p.buildRecords(bank, statement)
	if len(records) == 0 {
		p.logger.Debug(ctx, "Statement carries no entries, nothing to record",
			"bank", bank,
			"statement_type", statement.Type,
		)
		return nil
	}

	if err := p.store.UpsertPositions(ctx, records); err != nil {
		return err
	}

	p.logger.Info(ctx, "Recorded statement positions",
		"bank", bank,
		"statement_type", statement.Type,
		"account_iban", statement.Account.IBAN,
		"count", len(records),
	)

	return nil
}

func (p *Processor) buildRecords(bank domain.BankID, statement domain.BankStatement) []domain.PositionRecord {
	now := p.clock.Now()
	records := make([]domain.PositionRecord, 0, len(statement.Entries))

	for _, entry := range statement.Entries {
		record := domain.PositionRecord{
			Bank:        bank,
			AccountIBAN: statement.Account.IBAN,
			ExternalID:  entry.ExternalID,
			EndToEndID:  entry.EndToEndID,
			Amount:      entry.Amount,
			Currency:    entry.Currency,
			Type:        entry.Type,
			Description: entry.Description,
			RecordedAt:  now,
		}
		if entry.CounterParty != nil {
			record.Counterparty = entry.CounterParty.Name
		}
		records = append(records, record)
	}

	return records
}
