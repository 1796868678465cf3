package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/l0p7/nickgate/internal/lookup"
)

const topupUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// TopupClient talks to the dedicated username-resolution endpoint exposed by
// the second provider family. The endpoint rejects non-browser traffic, so
// requests impersonate one.
type TopupClient struct {
	baseURL string
	client  *http.Client
}

// NewTopupClient builds the shared client for every JSON-POST adapter.
func NewTopupClient(baseURL string, client *http.Client) *TopupClient {
	if client == nil {
		client = http.DefaultClient
	}
	return &TopupClient{baseURL: strings.TrimRight(baseURL, "/"), client: client}
}

type topupRequest struct {
	GameID    string `json:"game_id"`
	ProductID int    `json:"product_id"`
}

type topupResponse struct {
	Data struct {
		Username string `json:"username"`
	} `json:"data"`
}

// GetUsername resolves an account id through the provider's per-game slug.
func (c *TopupClient) GetUsername(ctx context.Context, slug string, productID int, accountID string) (topupResponse, error) {
	payload, err := json.Marshal(topupRequest{GameID: accountID, ProductID: productID})
	if err != nil {
		return topupResponse{}, fmt.Errorf("topup: encode body: %w", err)
	}

	endpoint := c.baseURL + "/api/top-up/" + slug + "/get-username"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return topupResponse{}, fmt.Errorf("topup: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", topupUserAgent)
	req.Header.Set("Origin", c.baseURL)
	req.Header.Set("Referer", c.baseURL+"/")

	resp, err := c.client.Do(req)
	if err != nil {
		return topupResponse{}, fmt.Errorf("topup: get username: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return topupResponse{}, fmt.Errorf("topup: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return topupResponse{}, fmt.Errorf("topup: read body: %w", err)
	}

	var decoded topupResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return topupResponse{}, fmt.Errorf("topup: decode body: %w", err)
	}
	return decoded, nil
}

type topupAdapter struct {
	code      string
	title     string
	slug      string
	productID int
	client    *TopupClient
}

func (a *topupAdapter) Code() string  { return a.code }
func (a *topupAdapter) Title() string { return a.title }

func (a *topupAdapter) Lookup(ctx context.Context, req lookup.Request) (lookup.Result, error) {
	decoded, err := a.client.GetUsername(ctx, a.slug, a.productID, req.AccountID)
	if err != nil {
		return lookup.Result{}, err
	}
	if decoded.Data.Username == "" {
		return lookup.NotFound(), nil
	}
	return lookup.Found(a.title, req, "", decoded.Data.Username), nil
}
