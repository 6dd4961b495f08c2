package payment

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/pensionbase/bankcore/internal/correlation"
	"github.com/pensionbase/bankcore/internal/domain"
	"github.com/pensionbase/bankcore/pkg/logger"
)

// Service builds payment instructions and hands them to the gateway. The
// end-to-end id is derived from the internal payment id, so the confirmation
// statement entry correlates back without any lookup table.
type Service struct {
	builder *Builder
	sender  domain.GatewaySender
	bics    map[domain.BankID]string
	logger  *logger.Logger
}

func NewService(builder *Builder, sender domain.GatewaySender, bics map[domain.BankID]string, log *logger.Logger) *Service {
	return &Service{
		builder: builder,
		sender:  sender,
		bics:    bics,
		logger:  log,
	}
}

// Send initiates one credit transfer through the bank's gateway. Returns the
// internal payment id; its dashless form travels as the end-to-end id.
func (s *Service) Send(ctx context.Context, bank domain.BankID, req domain.PaymentRequest) (uuid.UUID, error) {
	bic, configured := s.bics[bank]
	if !configured || bic == "" {
		return uuid.Nil, fmt.Errorf("no remitter BIC configured for bank %s", bank)
	}

	paymentID := uuid.New()
	// Dashless on the wire; the canonical form would blow the 35-char id limit.
	req.OurID = correlation.ToExternalID(paymentID)
	req.EndToEndID = req.OurID

	body, err := s.builder.Build(req, bic)
	if err != nil {
		return uuid.Nil, err
	}

	if err := s.sender.Send(ctx, bank, paymentID, body); err != nil {
		return uuid.Nil, err
	}

	s.logger.Info(ctx, "Payment instruction sent",
		"bank", bank,
		"payment_id", paymentID,
		"amount", req.Amount.StringFixed(2),
	)

	return paymentID, nil
}
