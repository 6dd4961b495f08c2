package handler

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/pensionbase/bankcore/internal/domain"
	"github.com/pensionbase/bankcore/internal/ingest"
	"github.com/pensionbase/bankcore/pkg/logger"
)

// MessageHandler covers the inbound gateway webhook and the operator
// endpoints over the message ledger.
type MessageHandler struct {
	ledger    domain.MessageLedger
	delegator *ingest.Delegator
	logger    *logger.Logger
}

func NewMessageHandler(ledger domain.MessageLedger, delegator *ingest.Delegator, log *logger.Logger) *MessageHandler {
	return &MessageHandler{
		ledger:    ledger,
		delegator: delegator,
		logger:    log,
	}
}

// Receive records one raw gateway message. The body is stored verbatim and
// parsed later by the delegator; a malformed body is not an error here.
func (h *MessageHandler) Receive(c echo.Context) error {
	ctx := c.Request().Context()

	bank, ok := domain.ParseBankID(c.Param("bank"))
	if !ok {
		return c.JSON(http.StatusNotFound, map[string]string{
			"error": "unknown bank",
		})
	}

	requestID := c.Request().Header.Get("X-Request-ID")
	if requestID == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "X-Request-ID header is required",
		})
	}
	trackingID := c.Request().Header.Get("X-Tracking-ID")

	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		h.logger.Error(ctx, "Failed to read message body",
			"error", err,
		)
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "cannot read request body",
		})
	}
	if len(body) == 0 {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "message body is required",
		})
	}

	msg, err := h.ledger.Record(ctx, bank, requestID, trackingID, string(body))
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateMessage) {
			return c.JSON(http.StatusConflict, map[string]string{
				"error": "message with this request id already recorded",
			})
		}

		h.logger.Error(ctx, "Failed to record message",
			"bank", bank,
			"error", err,
		)
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "failed to record message",
		})
	}

	h.logger.Info(ctx, "Message recorded",
		"bank", bank,
		"message_id", msg.ID,
	)

	return c.JSON(http.StatusAccepted, map[string]string{
		"message_id": msg.ID.String(),
		"status":     "pending",
	})
}

// ListPending exposes the pending backlog for operators.
func (h *MessageHandler) ListPending(c echo.Context) error {
	ctx := c.Request().Context()

	page, err := strconv.Atoi(c.QueryParam("page"))
	if err != nil || page < 1 {
		page = 1
	}

	perPage, err := strconv.Atoi(c.QueryParam("per_page"))
	if err != nil || perPage < 1 {
		perPage = 10
	}

	messages, err := h.ledger.FindPending(ctx, perPage, (page-1)*perPage)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidPageParams) {
			return c.JSON(http.StatusBadRequest, map[string]string{
				"error": "invalid pagination parameters",
			})
		}

		h.logger.Error(ctx, "Failed to list pending messages",
			"error", err,
		)
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "failed to list pending messages",
		})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"items":    messages,
		"page":     page,
		"per_page": perPage,
	})
}

// ProcessPending drains the pending backlog through extraction and dispatch.
func (h *MessageHandler) ProcessPending(c echo.Context) error {
	ctx := c.Request().Context()

	handled, err := h.delegator.ProcessPending(ctx)
	if err != nil {
		h.logger.Error(ctx, "Pending message processing aborted",
			"handled", handled,
			"error", err,
		)
		return c.JSON(http.StatusInternalServerError, map[string]interface{}{
			"error":   "processing aborted",
			"handled": handled,
		})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"handled": handled,
	})
}
