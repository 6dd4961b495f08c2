// Package ledgerclient queries the accounting system for system-account
// balances. Read-only; this core never writes ledger entries.
package ledgerclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/shopspring/decimal"

	"github.com/pensionbase/bankcore/pkg/retry"
)

type Client struct {
	client  *http.Client
	baseURL string
}

func New(baseURL string) *Client {
	return &Client{
		client:  &http.Client{Timeout: 15 * time.Second},
		baseURL: baseURL,
	}
}

type balanceResponse struct {
	Account string          `json:"account"`
	Balance decimal.Decimal `json:"balance"`
}

// BalanceAt returns the ledger balance of a system account at the given
// instant.
func (c *Client) BalanceAt(ctx context.Context, ledgerAccount string, at time.Time) (decimal.Decimal, error) {
	query := url.Values{}
	query.Set("account", ledgerAccount)
	query.Set("at", at.Format(time.RFC3339Nano))
	endpoint := c.baseURL + "/balances?" + query.Encode()

	var body balanceResponse
	err := retry.Do(ctx, func() error {
		return c.fetch(ctx, endpoint, &body)
	})
	if err != nil {
		return decimal.Zero, fmt.Errorf("ledger balance query for %s: %w", ledgerAccount, err)
	}

	return body.Balance, nil
}

func (c *Client) fetch(ctx context.Context, endpoint string, out *balanceResponse) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("ledger responded with status %d", resp.StatusCode)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}
