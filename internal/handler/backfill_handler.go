package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/pensionbase/bankcore/internal/domain"
	"github.com/pensionbase/bankcore/internal/ingest"
	"github.com/pensionbase/bankcore/pkg/logger"
)

const dateLayout = "2006-01-02"

type BackfillHandler struct {
	generator *ingest.BackfillGenerator
	logger    *logger.Logger
}

func NewBackfillHandler(generator *ingest.BackfillGenerator, log *logger.Logger) *BackfillHandler {
	return &BackfillHandler{
		generator: generator,
		logger:    log,
	}
}

type backfillRequest struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

// Trigger asks every bank gateway to re-deliver historic statements over the
// given inclusive date range, one request per configured account.
func (h *BackfillHandler) Trigger(c echo.Context) error {
	ctx := c.Request().Context()

	var req backfillRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "invalid request body",
		})
	}

	from, err := time.Parse(dateLayout, req.StartDate)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "start_date must be in YYYY-MM-DD format",
		})
	}

	to, err := time.Parse(dateLayout, req.EndDate)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "end_date must be in YYYY-MM-DD format",
		})
	}

	if from.After(to) {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "start_date must not be after end_date",
		})
	}

	requestIDs := make([]string, 0)
	for _, bank := range []domain.BankID{domain.BankA, domain.BankB} {
		sent, err := h.generator.RequestStatements(ctx, bank, from, to)
		if err != nil {
			if errors.Is(err, domain.ErrInvalidDateRange) {
				return c.JSON(http.StatusBadRequest, map[string]string{
					"error": "start_date must not be after end_date",
				})
			}

			h.logger.Error(ctx, "Backfill request failed",
				"bank", bank,
				"error", err,
			)
			return c.JSON(http.StatusInternalServerError, map[string]string{
				"error": "failed to send backfill requests",
			})
		}
		for _, id := range sent {
			requestIDs = append(requestIDs, id.String())
		}
	}

	h.logger.Info(ctx, "Backfill triggered",
		"start_date", req.StartDate,
		"end_date", req.EndDate,
		"requests", len(requestIDs),
	)

	return c.JSON(http.StatusAccepted, map[string]interface{}{
		"request_ids": requestIDs,
		"start_date":  req.StartDate,
		"end_date":    req.EndDate,
	})
}
