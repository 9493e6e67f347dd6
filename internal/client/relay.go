package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/AlexZinkM/sui-wallet/internal/model"

	"github.com/avast/retry-go/v4"
)

var (
	// ErrRelayUnavailable is returned when the signing relay cannot be reached
	ErrRelayUnavailable = errors.New("signing relay unavailable")

	// ErrTransactionNotFound is returned when the relay does not hold the requested transaction
	ErrTransactionNotFound = errors.New("transaction not found on relay")
)

const (
	relayAttempts = 3
	relayDelay    = 200 * time.Millisecond
	maxTxBytes    = 1 << 20
)

// RelayClient is a client for the external signing relay
type RelayClient struct {
	baseURL string
	client  *http.Client
	delay   time.Duration
}

// NewRelayClient creates a new relay client
func NewRelayClient(baseURL string, timeout time.Duration) *RelayClient {
	return &RelayClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client: &http.Client{
			Timeout: timeout,
		},
		delay: relayDelay,
	}
}

// Register uploads unsigned transaction bytes and returns the id and URL where a human can sign them
func (c *RelayClient) Register(ctx context.Context, txBytes []byte) (*model.RegisterResponse, error) {
	endpoint := c.baseURL + "/api/tx"

	resp, err := retry.DoWithData(func() (*model.RegisterResponse, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(txBytes))
		if err != nil {
			return nil, retry.Unrecoverable(err)
		}
		req.Header.Set("Content-Type", "application/octet-stream")

		httpResp, err := c.client.Do(req)
		if err != nil {
			return nil, err
		}
		defer httpResp.Body.Close()

		if err := checkStatus(httpResp); err != nil {
			return nil, err
		}

		var out model.RegisterResponse
		if err := json.NewDecoder(httpResp.Body).Decode(&out); err != nil {
			return nil, retry.Unrecoverable(fmt.Errorf("failed to decode relay response: %w", err))
		}
		return &out, nil
	}, c.retryOptions(ctx)...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRelayUnavailable, err)
	}
	return resp, nil
}

// Fetch downloads the transaction bytes registered under txID
func (c *RelayClient) Fetch(ctx context.Context, txID string) ([]byte, error) {
	endpoint := c.baseURL + "/api/tx/" + url.PathEscape(txID)

	data, err := retry.DoWithData(func() ([]byte, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return nil, retry.Unrecoverable(err)
		}

		httpResp, err := c.client.Do(req)
		if err != nil {
			return nil, err
		}
		defer httpResp.Body.Close()

		if httpResp.StatusCode == http.StatusNotFound {
			return nil, retry.Unrecoverable(ErrTransactionNotFound)
		}
		if err := checkStatus(httpResp); err != nil {
			return nil, err
		}

		return io.ReadAll(io.LimitReader(httpResp.Body, maxTxBytes))
	}, c.retryOptions(ctx)...)
	if errors.Is(err, ErrTransactionNotFound) {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRelayUnavailable, err)
	}
	return data, nil
}

func (c *RelayClient) retryOptions(ctx context.Context) []retry.Option {
	return []retry.Option{
		retry.Context(ctx),
		retry.Attempts(relayAttempts),
		retry.Delay(c.delay),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
	}
}

// checkStatus makes 5xx retryable and every other non-2xx final
func checkStatus(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
	err := fmt.Errorf("status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	if resp.StatusCode >= 500 {
		return err
	}
	return retry.Unrecoverable(err)
}
