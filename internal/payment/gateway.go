// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/shopspring/decimal"
)

// Gateway is the request/response contract with the payment processor.
// Each call is a single attempt; no retries or backoff.
type Gateway interface {
	// Initiate creates a new transaction for the given amount and
	// returns it in pending state.
	Initiate(ctx context.Context, amount decimal.Decimal, currency string) (*Transaction, error)

	// Lookup fetches the current state of a transaction by ID.
	Lookup(ctx context.Context, id string) (*Transaction, error)
}

// Config holds the credentials and endpoint for the hosted gateway.
type Config struct {
	SecretKey string
	BaseURL   string
}

// httpGateway implements Gateway against the processor's JSON API.
type httpGateway struct {
	config Config
	client *http.Client
}

// NewGateway creates a gateway client for the hosted payment API.
func NewGateway(cfg Config) Gateway {
	return &httpGateway{
		config: cfg,
		client: &http.Client{Timeout: 30 * time.Second},
	}
}

// transactionPayload mirrors the gateway's transaction resource.
type transactionPayload struct {
	ID       string `json:"id"`
	Status   string `json:"status"`
	Amount   string `json:"amount"`
	Currency string `json:"currency"`
}

func (g *httpGateway) Initiate(ctx context.Context, amount decimal.Decimal, currency string) (*Transaction, error) {
	body, err := json.Marshal(map[string]string{
		"amount":   amount.StringFixed(2),
		"currency": currency,
	})
	if err != nil {
		return nil, fmt.Errorf("payment marshal: %w", err)
	}

	payload, err := g.do(ctx, http.MethodPost, "/transactions", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	return payload.toTransaction()
}

func (g *httpGateway) Lookup(ctx context.Context, id string) (*Transaction, error) {
	payload, err := g.do(ctx, http.MethodGet, "/transactions/"+id, nil)
	if err != nil {
		return nil, err
	}
	return payload.toTransaction()
}

// do performs one HTTP call against the gateway and decodes the
// transaction resource from the response.
func (g *httpGateway) do(ctx context.Context, method, path string, body io.Reader) (*transactionPayload, error) {
	req, err := http.NewRequestWithContext(ctx, method, g.config.BaseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("payment request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+g.config.SecretKey)

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("payment http: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("payment read body: %w", err)
	}

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return nil, fmt.Errorf("payment API error (status %d): %s", resp.StatusCode, string(respBody))
	}

	var payload transactionPayload
	if err := json.Unmarshal(respBody, &payload); err != nil {
		return nil, fmt.Errorf("payment unmarshal: %w", err)
	}
	return &payload, nil
}

// toTransaction converts the wire payload to the host-visible form.
func (p *transactionPayload) toTransaction() (*Transaction, error) {
	amount, err := decimal.NewFromString(p.Amount)
	if err != nil {
		return nil, fmt.Errorf("payment amount %q: %w", p.Amount, err)
	}
	return &Transaction{
		ID:       p.ID,
		Status:   Status(p.Status),
		Amount:   amount,
		Currency: p.Currency,
	}, nil
}
