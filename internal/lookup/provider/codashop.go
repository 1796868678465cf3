package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/l0p7/nickgate/internal/lookup"
)

// CodashopClient talks to the storefront initPayment endpoint. The providers
// behind it expose no account-lookup API; instead a simulated price-point
// checkout returns the resolved username and country as confirmation fields.
// That quirk is the whole lookup mechanism and must be preserved.
type CodashopClient struct {
	baseURL string
	client  *http.Client
}

// NewCodashopClient builds the shared client for every form-POST adapter.
func NewCodashopClient(baseURL string, client *http.Client) *CodashopClient {
	if client == nil {
		client = http.DefaultClient
	}
	return &CodashopClient{baseURL: strings.TrimRight(baseURL, "/"), client: client}
}

// codashopCatalog holds the static per-game identifiers embedded in the
// simulated checkout body.
type codashopCatalog struct {
	voucherTypeName string
	pricePointID    string
	price           string
	shopLang        string
}

type codashopResponse struct {
	ConfirmationFields struct {
		Username string `json:"username"`
		Country  string `json:"country"`
	} `json:"confirmationFields"`
	ErrorCode string `json:"errorCode"`
}

// InitPayment issues the price-point simulation and returns the raw
// confirmation fields. Errors propagate untouched; the lookup router owns
// failure normalization.
func (c *CodashopClient) InitPayment(ctx context.Context, catalog codashopCatalog, accountID, zoneID string) (codashopResponse, error) {
	form := url.Values{}
	form.Set("voucherPricePoint.id", catalog.pricePointID)
	form.Set("voucherPricePoint.price", catalog.price)
	form.Set("voucherPricePoint.variablePrice", "0")
	form.Set("user.userId", accountID)
	form.Set("user.zoneId", zoneID)
	form.Set("voucherTypeName", catalog.voucherTypeName)
	form.Set("shopLang", catalog.shopLang)

	endpoint := c.baseURL + "/initPayment.action"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return codashopResponse{}, fmt.Errorf("codashop: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.client.Do(req)
	if err != nil {
		return codashopResponse{}, fmt.Errorf("codashop: init payment: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return codashopResponse{}, fmt.Errorf("codashop: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return codashopResponse{}, fmt.Errorf("codashop: read body: %w", err)
	}

	var payload codashopResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return codashopResponse{}, fmt.Errorf("codashop: decode body: %w", err)
	}
	return payload, nil
}

// codashopAdapter resolves one game through the checkout simulation.
type codashopAdapter struct {
	code    string
	title   string
	catalog codashopCatalog
	zoned   bool
	client  *CodashopClient
}

func (a *codashopAdapter) Code() string  { return a.code }
func (a *codashopAdapter) Title() string { return a.title }

// Lookup runs the simulation. A missing zone for a zoned game is passed
// through empty and left to the provider to reject; the adapter never
// crashes on it.
func (a *codashopAdapter) Lookup(ctx context.Context, req lookup.Request) (lookup.Result, error) {
	zone := ""
	if a.zoned {
		zone = req.Server
	}
	payload, err := a.client.InitPayment(ctx, a.catalog, req.AccountID, zone)
	if err != nil {
		return lookup.Result{}, err
	}
	if payload.ConfirmationFields.Username == "" {
		return lookup.NotFound(), nil
	}
	return lookup.Found(a.title, req, payload.ConfirmationFields.Country, payload.ConfirmationFields.Username), nil
}
