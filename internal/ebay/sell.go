package ebay

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/bookmint/bookmint/internal/metrics"
	domain "github.com/bookmint/bookmint/pkg/types"
)

const (
	defaultAPIURL      = "https://api.ebay.com"
	defaultMarketplace = "EBAY_US"

	inventoryItemPath = "/sell/inventory/v1/inventory_item"
	offerPath         = "/sell/inventory/v1/offer"
)

// SellClient implements SellAPI against the eBay Sell Inventory API.
type SellClient struct {
	tokens      TokenSource
	apiURL      string
	marketplace string
	client      *http.Client
	rateLimiter *RateLimiter
}

// SellOption configures the SellClient.
type SellOption func(*SellClient)

// WithAPIURL overrides the default API base URL.
func WithAPIURL(u string) SellOption {
	return func(c *SellClient) {
		c.apiURL = u
	}
}

// WithMarketplace overrides the default marketplace.
func WithMarketplace(m string) SellOption {
	return func(c *SellClient) {
		c.marketplace = m
	}
}

// WithSellHTTPClient overrides the default HTTP client.
func WithSellHTTPClient(hc *http.Client) SellOption {
	return func(c *SellClient) {
		c.client = hc
	}
}

// WithRateLimiter injects a rate limiter that controls per-second and daily
// API call limits. When set, every outbound call goes through Wait() first.
func WithRateLimiter(r *RateLimiter) SellOption {
	return func(c *SellClient) {
		c.rateLimiter = r
	}
}

// NewSellClient creates a new eBay Sell Inventory API client.
func NewSellClient(tokens TokenSource, opts ...SellOption) *SellClient {
	c := &SellClient{
		tokens:      tokens,
		apiURL:      defaultAPIURL,
		marketplace: defaultMarketplace,
		client:      &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// --- wire types ---

type inventoryItemRequest struct {
	Product      productDetail `json:"product"`
	Condition    string        `json:"condition"`
	Availability availability  `json:"availability"`
}

type productDetail struct {
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	ISBN        []string `json:"isbn,omitempty"`
	ImageURLs   []string `json:"imageUrls,omitempty"`
}

type availability struct {
	ShipToLocation shipToLocation `json:"shipToLocationAvailability"`
}

type shipToLocation struct {
	Quantity int `json:"quantity"`
}

type offerRequest struct {
	SKU                 string          `json:"sku"`
	MarketplaceID       string          `json:"marketplaceId"`
	Format              string          `json:"format"`
	AvailableQuantity   int             `json:"availableQuantity"`
	CategoryID          string          `json:"categoryId,omitempty"`
	ListingDescription  string          `json:"listingDescription,omitempty"`
	PricingSummary      pricingSummary  `json:"pricingSummary"`
	ListingPolicies     listingPolicies `json:"listingPolicies"`
	MerchantLocationKey string          `json:"merchantLocationKey,omitempty"`
}

type pricingSummary struct {
	Price moneyAmount `json:"price"`
}

// moneyAmount carries the price as a string, which is how the eBay API
// represents monetary values.
type moneyAmount struct {
	Value    string `json:"value"`
	Currency string `json:"currency"`
}

type listingPolicies struct {
	FulfillmentPolicyID string `json:"fulfillmentPolicyId,omitempty"`
	PaymentPolicyID     string `json:"paymentPolicyId,omitempty"`
	ReturnPolicyID      string `json:"returnPolicyId,omitempty"`
}

type offerResponse struct {
	OfferID string `json:"offerId"`
}

type publishResponse struct {
	ListingID string `json:"listingId"`
}

type inventoryItemsResponse struct {
	InventoryItems []remoteInventoryItem `json:"inventoryItems"`
	Total          int                   `json:"total"`
	Limit          int                   `json:"limit"`
	Offset         int                   `json:"offset"`
	Next           string                `json:"next"`
}

type remoteInventoryItem struct {
	SKU          string        `json:"sku"`
	Product      productDetail `json:"product"`
	Availability *availability `json:"availability"`
}

// conditionMap translates local book conditions to eBay condition enums.
var conditionMap = map[domain.Condition]string{
	domain.ConditionNew:        "NEW",
	domain.ConditionLikeNew:    "LIKE_NEW",
	domain.ConditionVeryGood:   "USED_VERY_GOOD",
	domain.ConditionGood:       "USED_GOOD",
	domain.ConditionAcceptable: "USED_ACCEPTABLE",
}

// UpsertInventoryItem creates or replaces the SKU-keyed inventory item.
// The operation is idempotent on the marketplace side, so a pipeline retry
// can safely repeat it.
func (c *SellClient) UpsertInventoryItem(
	ctx context.Context,
	userID string,
	item InventoryItem,
) error {
	cond, ok := conditionMap[item.Condition]
	if !ok {
		cond = "USED_GOOD"
	}

	body := inventoryItemRequest{
		Product: productDetail{
			Title:       item.Title,
			Description: item.Description,
		},
		Condition: cond,
		Availability: availability{
			ShipToLocation: shipToLocation{Quantity: max(item.Quantity, 1)},
		},
	}
	if item.ISBN != "" {
		body.Product.ISBN = []string{item.ISBN}
	}
	if item.ImageURL != "" {
		body.Product.ImageURLs = []string{item.ImageURL}
	}

	u := c.apiURL + inventoryItemPath + "/" + url.PathEscape(item.SKU)
	_, err := c.do(ctx, userID, http.MethodPut, u, body, StageInventory)
	return err
}

// CreateOffer creates a fixed-price offer for an existing inventory item
// and returns the marketplace-assigned offer ID. Offer creation is not
// idempotent; callers must not blindly repeat it for the same SKU.
func (c *SellClient) CreateOffer(
	ctx context.Context,
	userID string,
	offer Offer,
) (string, error) {
	body := offerRequest{
		SKU:                offer.SKU,
		MarketplaceID:      c.marketplace,
		Format:             "FIXED_PRICE",
		AvailableQuantity:  max(offer.Quantity, 1),
		CategoryID:         offer.CategoryID,
		ListingDescription: offer.ListingDescription,
		PricingSummary: pricingSummary{
			Price: moneyAmount{
				Value:    strconv.FormatFloat(offer.Price, 'f', 2, 64),
				Currency: offer.Currency,
			},
		},
		ListingPolicies: listingPolicies{
			FulfillmentPolicyID: offer.FulfillmentPolicyID,
			PaymentPolicyID:     offer.PaymentPolicyID,
			ReturnPolicyID:      offer.ReturnPolicyID,
		},
		MerchantLocationKey: offer.MerchantLocationKey,
	}

	respBody, err := c.do(ctx, userID, http.MethodPost, c.apiURL+offerPath, body, StageOffer)
	if err != nil {
		return "", err
	}

	var resp offerResponse
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return "", &StageError{Stage: StageOffer, Message: "parsing offer response", Err: err}
	}
	if resp.OfferID == "" {
		return "", &StageError{Stage: StageOffer, Message: "offer response missing offerId"}
	}

	return resp.OfferID, nil
}

// PublishOffer publishes a previously created offer, returning the live
// listing ID.
func (c *SellClient) PublishOffer(
	ctx context.Context,
	userID, offerID string,
) (string, error) {
	u := c.apiURL + offerPath + "/" + url.PathEscape(offerID) + "/publish"

	respBody, err := c.do(ctx, userID, http.MethodPost, u, nil, StagePublish)
	if err != nil {
		return "", err
	}

	var resp publishResponse
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return "", &StageError{Stage: StagePublish, Message: "parsing publish response", Err: err}
	}
	if resp.ListingID == "" {
		return "", &StageError{Stage: StagePublish, Message: "publish response missing listingId"}
	}

	return resp.ListingID, nil
}

// ListInventoryItems returns one page of the user's marketplace inventory.
func (c *SellClient) ListInventoryItems(
	ctx context.Context,
	userID string,
	limit, offset int,
) (*InventoryPage, error) {
	if limit <= 0 {
		limit = 100
	}

	params := url.Values{}
	params.Set("limit", strconv.Itoa(limit))
	if offset > 0 {
		params.Set("offset", strconv.Itoa(offset))
	}

	u := c.apiURL + inventoryItemPath + "?" + params.Encode()

	respBody, err := c.do(ctx, userID, http.MethodGet, u, nil, StageInventory)
	if err != nil {
		return nil, err
	}

	var resp inventoryItemsResponse
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return nil, fmt.Errorf("parsing inventory response: %w", err)
	}

	page := &InventoryPage{
		Total:   resp.Total,
		Limit:   resp.Limit,
		Offset:  resp.Offset,
		HasMore: resp.Next != "",
	}
	for _, it := range resp.InventoryItems {
		item := RemoteItem{
			SKU:   it.SKU,
			Title: it.Product.Title,
		}
		if len(it.Product.ISBN) > 0 {
			item.ISBN = it.Product.ISBN[0]
		}
		if it.Availability != nil {
			item.Quantity = it.Availability.ShipToLocation.Quantity
		}
		page.Items = append(page.Items, item)
	}

	return page, nil
}

// do executes one authenticated API call and classifies failures into the
// stage error taxonomy. Timeouts wrap ErrMarketplaceTimeout so callers can
// distinguish them from hard rejections.
func (c *SellClient) do(
	ctx context.Context,
	userID, method, u string,
	body any,
	stage Stage,
) ([]byte, error) {
	if c.rateLimiter != nil {
		if err := c.rateLimiter.Wait(ctx); err != nil {
			if errors.Is(err, ErrDailyLimitReached) {
				metrics.EbayDailyLimitHits.Inc()
			}
			return nil, fmt.Errorf("rate limit: %w", err)
		}
		metrics.EbayAPICallsTotal.Inc()
		metrics.EbayDailyUsage.Set(float64(c.rateLimiter.DailyCount()))
	}

	token, err := c.tokens.AccessToken(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("getting auth token: %w", err)
	}

	var reqBody io.Reader = http.NoBody
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshaling request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		return nil, fmt.Errorf("creating HTTP request: %w", err)
	}

	httpReq.Header.Set("Authorization", "Bearer "+token)
	httpReq.Header.Set("X-EBAY-C-MARKETPLACE-ID", c.marketplace)
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Content-Language", "en-US")

	resp, err := c.client.Do(httpReq)
	if err != nil {
		if isTimeout(err) {
			return nil, &StageError{Stage: stage, Message: err.Error(), Err: ErrMarketplaceTimeout}
		}
		return nil, &StageError{Stage: stage, Message: "executing request", Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &StageError{Stage: stage, Message: "reading response body", Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &StageError{
			Stage:      stage,
			StatusCode: resp.StatusCode,
			Message:    string(respBody),
		}
	}

	return respBody, nil
}

// isTimeout reports whether err is a deadline or transport timeout.
func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var ne interface{ Timeout() bool }
	return errors.As(err, &ne) && ne.Timeout()
}
