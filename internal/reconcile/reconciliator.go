// Package reconcile cross-checks bank-reported closing balances against the
// internal ledger. It runs in the RECONCILE band of the dispatcher, strictly
// after position processing for the same statement.
package reconcile

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/pensionbase/bankcore/internal/dispatch"
	"github.com/pensionbase/bankcore/internal/domain"
	"github.com/pensionbase/bankcore/internal/iso20022"
	"github.com/pensionbase/bankcore/pkg/logger"
)

// Publisher receives every reconciliation outcome, matched or not.
type Publisher interface {
	Publish(ctx context.Context, outcome domain.ReconciliationOutcome)
}

type Reconciliator struct {
	resolver  domain.AccountResolver
	balances  domain.BalanceSource
	publisher Publisher
	location  *time.Location
	logger    *logger.Logger
}

func New(resolver domain.AccountResolver, balances domain.BalanceSource, publisher Publisher, location *time.Location, log *logger.Logger) *Reconciliator {
	return &Reconciliator{
		resolver:  resolver,
		balances:  balances,
		publisher: publisher,
		location:  location,
		logger:    log,
	}
}

// Handle reconciles a historic statement's closing balance against the ledger
// balance at the end of the statement day. Intraday reports and payment
// confirmations carry no authoritative closing balance and are skipped.
func (r *Reconciliator) Handle(ctx context.Context, event dispatch.StatementReceived) error {
	if event.Statement.Type != domain.StatementTypeHistoric {
		r.logger.Debug(ctx, "Skipping reconciliation for non-historic statement",
			"bank", event.Bank,
			"statement_type", event.Statement.Type,
		)
		return nil
	}

	outcome, err := r.Reconcile(ctx, event.Bank, event.Statement)
	if err != nil {
		return err
	}

	if outcome.Matched {
		r.logger.Info(ctx, "Balances reconciled",
			"bank", outcome.Bank,
			"account_type", outcome.AccountType,
			"balance", outcome.BankBalance.StringFixed(2),
		)
	} else {
		r.logger.Warn(ctx, "Balance mismatch detected",
			"bank", outcome.Bank,
			"account_type", outcome.AccountType,
			"bank_balance", outcome.BankBalance.StringFixed(2),
			"ledger_balance", outcome.LedgerBalance.StringFixed(2),
			"diff", outcome.Diff().StringFixed(2),
		)
	}

	r.publisher.Publish(ctx, outcome)

	return nil
}

// Reconcile compares the statement's closing balance against the ledger
// balance at the last moment of the balance day in the bank's timezone. The
// comparison is exact; no tolerance.
func (r *Reconciliator) Reconcile(ctx context.Context, bank domain.BankID, statement domain.BankStatement) (domain.ReconciliationOutcome, error) {
	accountType, err := r.resolver.AccountType(statement.Account.IBAN)
	if err != nil {
		if errors.Is(err, domain.ErrUnresolvedAccount) {
			return domain.ReconciliationOutcome{}, fmt.Errorf("statement account %q is not configured: %w", statement.Account.IBAN, err)
		}
		return domain.ReconciliationOutcome{}, err
	}

	closing, err := statement.CloseBalance()
	if err != nil {
		return domain.ReconciliationOutcome{}, fmt.Errorf("historic statement for %s: %w", accountType, err)
	}

	ledgerAccount, err := r.resolver.LedgerAccount(accountType)
	if err != nil {
		return domain.ReconciliationOutcome{}, err
	}

	at := iso20022.EndOfDay(closing.Date, r.location)
	ledgerBalance, err := r.balances.BalanceAt(ctx, ledgerAccount, at)
	if err != nil {
		return domain.ReconciliationOutcome{}, fmt.Errorf("ledger balance lookup for %s: %w", ledgerAccount, err)
	}

	return domain.ReconciliationOutcome{
		Bank:          bank,
		AccountType:   accountType,
		BankBalance:   closing.Amount,
		LedgerBalance: ledgerBalance,
		At:            at,
		Matched:       closing.Amount.Equal(ledgerBalance),
	}, nil
}
