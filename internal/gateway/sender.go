// Package gateway is the outbound side of the bank gateway integration:
// it delivers signed-by-someone-else XML payloads to the per-bank gateway
// endpoints. The acknowledgement protocol is the gateway's concern.
package gateway

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/pensionbase/bankcore/internal/domain"
	"github.com/pensionbase/bankcore/pkg/logger"
	"github.com/pensionbase/bankcore/pkg/retry"
)

type HTTPSender struct {
	client *http.Client
	urls   map[domain.BankID]string
	logger *logger.Logger
}

func NewHTTPSender(urls map[domain.BankID]string, log *logger.Logger) *HTTPSender {
	return &HTTPSender{
		client: &http.Client{Timeout: 30 * time.Second},
		urls:   urls,
		logger: log,
	}
}

// Send posts the payload to the bank's gateway endpoint, retrying transient
// failures. A bank without a configured endpoint is a hard error: the caller
// asked for a delivery that cannot happen.
func (s *HTTPSender) Send(ctx context.Context, bank domain.BankID, requestID uuid.UUID, body string) error {
	url, configured := s.urls[bank]
	if url == "" || !configured {
		return fmt.Errorf("no gateway endpoint configured for bank %s", bank)
	}

	err := retry.Do(ctx, func() error {
		return s.post(ctx, url, requestID, body)
	})
	if err != nil {
		return fmt.Errorf("gateway delivery to %s: %w", bank, err)
	}

	s.logger.Debug(ctx, "Gateway request delivered",
		"bank", bank,
		"request_id", requestID,
	)

	return nil
}

func (s *HTTPSender) post(ctx context.Context, url string, requestID uuid.UUID, body string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader([]byte(body)))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/xml")
	req.Header.Set("X-Request-ID", requestID.String())

	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("gateway responded with status %d", resp.StatusCode)
	}
	return nil
}
