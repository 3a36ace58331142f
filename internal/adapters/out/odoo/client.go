// Package odoo implements the external catalog sync client against the Odoo
// JSON-RPC endpoint. Products created in the inventory are pushed to Odoo as
// product records using the per-user credentials stored alongside them.
package odoo

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"supplychain/internal/core/ports"
	"supplychain/internal/pkg/errs"
)

const defaultTimeout = 10 * time.Second

// Client talks to one Odoo instance over its /jsonrpc endpoint.
// Authentication happens per call since credentials vary per user.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a sync client for the given Odoo base URL.
func NewClient(baseURL string) (*Client, error) {
	if baseURL == "" {
		return nil, errs.NewValueIsRequiredError("baseURL")
	}

	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}, nil
}

// SyncProduct authenticates with the user's credentials and creates the
// product in Odoo, returning the external record ID.
func (c *Client) SyncProduct(
	ctx context.Context,
	creds ports.SyncCredentials,
	name string,
	price float64,
	quantity int,
) (int64, error) {
	uid, err := c.authenticate(ctx, creds)
	if err != nil {
		return 0, fmt.Errorf("odoo authentication failed: %w", err)
	}

	result, err := c.call(ctx, "object", "execute_kw", []any{
		creds.Database,
		uid,
		creds.Password,
		"product.product",
		"create",
		[]any{map[string]any{
			"name":          name,
			"list_price":    price,
			"qty_available": quantity,
		}},
	})
	if err != nil {
		return 0, fmt.Errorf("odoo product create failed: %w", err)
	}

	externalID, ok := result.(float64)
	if !ok {
		return 0, fmt.Errorf("odoo product create returned unexpected result %v", result)
	}

	return int64(externalID), nil
}

// authenticate resolves the credentials to an Odoo user ID.
func (c *Client) authenticate(ctx context.Context, creds ports.SyncCredentials) (int64, error) {
	result, err := c.call(ctx, "common", "login", []any{
		creds.Database,
		creds.Username,
		creds.Password,
	})
	if err != nil {
		return 0, err
	}

	// Odoo returns false instead of an error on bad credentials.
	uid, ok := result.(float64)
	if !ok || uid <= 0 {
		return 0, fmt.Errorf("credentials rejected for database %q", creds.Database)
	}

	return int64(uid), nil
}

type rpcRequest struct {
	JSONRPC string    `json:"jsonrpc"`
	Method  string    `json:"method"`
	Params  rpcParams `json:"params"`
	ID      int       `json:"id"`
}

type rpcParams struct {
	Service string `json:"service"`
	Method  string `json:"method"`
	Args    []any  `json:"args"`
}

type rpcResponse struct {
	Result any       `json:"result"`
	Error  *rpcError `json:"error"`
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *rpcError) Error() string {
	return fmt.Sprintf("odoo rpc error %d: %s", e.Code, e.Message)
}

// call performs one JSON-RPC round trip against the endpoint.
func (c *Client) call(ctx context.Context, service, method string, args []any) (any, error) {
	payload, err := json.Marshal(rpcRequest{
		JSONRPC: "2.0",
		Method:  "call",
		Params: rpcParams{
			Service: service,
			Method:  method,
			Args:    args,
		},
		ID: 1,
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/jsonrpc", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %s", resp.Status)
	}

	var rpcResp rpcResponse
	if err = json.NewDecoder(resp.Body).Decode(&rpcResp); err != nil {
		return nil, err
	}

	if rpcResp.Error != nil {
		return nil, rpcResp.Error
	}

	return rpcResp.Result, nil
}
