package ingest

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/pensionbase/bankcore/internal/correlation"
	"github.com/pensionbase/bankcore/internal/domain"
	"github.com/pensionbase/bankcore/internal/iso20022"
	"github.com/pensionbase/bankcore/pkg/clock"
	"github.com/pensionbase/bankcore/pkg/logger"
)

// historicStatementMsgID is the message definition the backfill asks for.
const historicStatementMsgID = "camt.053.001.02"

const timeOfDayLayout = "15:04:05.000Z07:00"

// BackfillGenerator originates camt.060 account reporting requests asking a
// gateway to re-deliver historic statements over a date range, one request
// per configured account.
type BackfillGenerator struct {
	resolver domain.AccountResolver
	sender   domain.GatewaySender
	clock    clock.Clock
	location *time.Location
	logger   *logger.Logger
}

func NewBackfillGenerator(resolver domain.AccountResolver, sender domain.GatewaySender, clk clock.Clock, location *time.Location, log *logger.Logger) *BackfillGenerator {
	return &BackfillGenerator{
		resolver: resolver,
		sender:   sender,
		clock:    clk,
		location: location,
		logger:   log,
	}
}

// RequestStatements sends one reporting request per account configured for
// the bank, covering the inclusive [from, to] date range. Returns the
// gateway request ids of the requests sent.
func (g *BackfillGenerator) RequestStatements(ctx context.Context, bank domain.BankID, from, to time.Time) ([]uuid.UUID, error) {
	if from.After(to) {
		return nil, domain.ErrInvalidDateRange
	}

	accountTypes := []domain.BankAccountType{
		domain.AccountTypeDeposit,
		domain.AccountTypeFundInvestment,
		domain.AccountTypeWithdrawal,
	}

	sent := make([]uuid.UUID, 0, len(accountTypes))
	for _, accountType := range accountTypes {
		iban, err := g.resolver.IBANFor(bank, accountType)
		if err != nil {
			if errors.Is(err, domain.ErrUnresolvedAccount) {
				g.logger.Debug(ctx, "No account configured, skipping backfill",
					"bank", bank,
					"account_type", accountType,
				)
				continue
			}
			return sent, err
		}

		requestID := uuid.New()
		body, err := g.buildRequest(requestID, iban, from, to)
		if err != nil {
			return sent, err
		}

		if err := g.sender.Send(ctx, bank, requestID, body); err != nil {
			return sent, fmt.Errorf("backfill request for %s %s: %w", bank, accountType, err)
		}

		g.logger.Info(ctx, "Requested statement backfill",
			"bank", bank,
			"account_type", accountType,
			"request_id", requestID,
			"from", iso20022.FormatDate(from),
			"to", iso20022.FormatDate(to),
		)
		sent = append(sent, requestID)
	}

	return sent, nil
}

func (g *BackfillGenerator) buildRequest(requestID uuid.UUID, iban string, from, to time.Time) (string, error) {
	messageID := correlation.ToExternalID(requestID)

	fromY, fromM, fromD := from.Date()
	toY, toM, toD := to.Date()
	dayStart := time.Date(fromY, fromM, fromD, 0, 0, 0, 0, g.location)
	dayEnd := time.Date(toY, toM, toD, 23, 59, 59, 999000000, g.location)

	doc := iso20022.DocumentCamt060{
		Xmlns: iso20022.NamespaceCamt060,
		Request: iso20022.AccountReportingRequest{
			GroupHeader: iso20022.GroupHeader{
				MessageID:        messageID,
				CreationDateTime: iso20022.FormatDateTime(g.clock.Now()),
			},
			Requests: []iso20022.ReportingRequest{
				{
					ID:             messageID,
					RequestedMsgID: historicStatementMsgID,
					Account: iso20022.Account{
						ID: iso20022.AccountID{IBAN: iban},
					},
					ReportingPeriod: iso20022.ReportingPeriod{
						FromToDate: iso20022.DatePeriod{
							FromDate: iso20022.FormatDate(from),
							ToDate:   iso20022.FormatDate(to),
						},
						FromToTime: iso20022.TimePeriod{
							FromTime: dayStart.Format(timeOfDayLayout),
							ToTime:   dayEnd.Format(timeOfDayLayout),
						},
						Type: iso20022.QueryTypeAll,
					},
				},
			},
		},
	}

	return iso20022.Marshal(doc)
}
