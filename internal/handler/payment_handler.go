package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/pensionbase/bankcore/internal/domain"
	"github.com/pensionbase/bankcore/internal/payment"
	"github.com/pensionbase/bankcore/pkg/logger"
)

type PaymentHandler struct {
	service *payment.Service
	logger  *logger.Logger
}

func NewPaymentHandler(service *payment.Service, log *logger.Logger) *PaymentHandler {
	return &PaymentHandler{
		service: service,
		logger:  log,
	}
}

type paymentRequest struct {
	Bank            string          `json:"bank"`
	RemitterName    string          `json:"remitter_name"`
	RemitterID      string          `json:"remitter_id"`
	RemitterIBAN    string          `json:"remitter_iban"`
	BeneficiaryName string          `json:"beneficiary_name"`
	BeneficiaryIBAN string          `json:"beneficiary_iban"`
	Amount          decimal.Decimal `json:"amount"`
	Description     string          `json:"description"`
}

// Initiate builds and sends one credit transfer instruction.
func (h *PaymentHandler) Initiate(c echo.Context) error {
	ctx := c.Request().Context()

	var req paymentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "invalid request body",
		})
	}

	bank, ok := domain.ParseBankID(req.Bank)
	if !ok {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "bank must be BANK_A or BANK_B",
		})
	}
	if req.RemitterIBAN == "" || req.BeneficiaryIBAN == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "remitter_iban and beneficiary_iban are required",
		})
	}
	if !req.Amount.IsPositive() {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "amount must be positive",
		})
	}

	paymentID, err := h.service.Send(ctx, bank, domain.PaymentRequest{
		RemitterName:    req.RemitterName,
		RemitterID:      req.RemitterID,
		RemitterIBAN:    req.RemitterIBAN,
		BeneficiaryName: req.BeneficiaryName,
		BeneficiaryIBAN: req.BeneficiaryIBAN,
		Amount:          req.Amount,
		Description:     req.Description,
	})
	if err != nil {
		h.logger.Error(ctx, "Failed to initiate payment",
			"bank", bank,
			"error", err,
		)
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "failed to initiate payment",
		})
	}

	return c.JSON(http.StatusAccepted, map[string]string{
		"payment_id": paymentID.String(),
		"status":     "sent",
	})
}
