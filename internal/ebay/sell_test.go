package ebay_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bookmint/bookmint/internal/ebay"
	domain "github.com/bookmint/bookmint/pkg/types"
)

// staticTokens is a TokenSource that always returns the same token.
type staticTokens struct {
	token string
	err   error
}

func (s staticTokens) AccessToken(context.Context, string) (string, error) {
	return s.token, s.err
}

func TestSellClient_UpsertInventoryItem(t *testing.T) {
	t.Parallel()

	var gotReq *http.Request
	var gotBody map[string]any

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotReq = r.Clone(context.Background())
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c := ebay.NewSellClient(staticTokens{token: "tok-1"},
		ebay.WithAPIURL(srv.URL),
		ebay.WithMarketplace("EBAY_GB"),
	)

	err := c.UpsertInventoryItem(context.Background(), "user-1", ebay.InventoryItem{
		SKU:       "BM-0001",
		Title:     "The Go Programming Language",
		ISBN:      "9780134190440",
		Condition: domain.ConditionVeryGood,
		Quantity:  1,
	})
	require.NoError(t, err)

	assert.Equal(t, http.MethodPut, gotReq.Method)
	assert.Equal(t, "/sell/inventory/v1/inventory_item/BM-0001", gotReq.URL.Path)
	assert.Equal(t, "Bearer tok-1", gotReq.Header.Get("Authorization"))
	assert.Equal(t, "EBAY_GB", gotReq.Header.Get("X-EBAY-C-MARKETPLACE-ID"))
	assert.Equal(t, "en-US", gotReq.Header.Get("Content-Language"))

	assert.Equal(t, "USED_VERY_GOOD", gotBody["condition"])
	product := gotBody["product"].(map[string]any)
	assert.Equal(t, "The Go Programming Language", product["title"])
	assert.Equal(t, []any{"9780134190440"}, product["isbn"])
}

func TestSellClient_CreateOffer(t *testing.T) {
	t.Parallel()

	var gotBody map[string]any

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/sell/inventory/v1/offer", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"offerId":"offer-42"}`))
	}))
	defer srv.Close()

	c := ebay.NewSellClient(staticTokens{token: "tok-1"}, ebay.WithAPIURL(srv.URL))

	offerID, err := c.CreateOffer(context.Background(), "user-1", ebay.Offer{
		SKU:      "BM-0001",
		Price:    24.9,
		Currency: "USD",
		Quantity: 1,
	})
	require.NoError(t, err)
	assert.Equal(t, "offer-42", offerID)

	assert.Equal(t, "BM-0001", gotBody["sku"])
	assert.Equal(t, "FIXED_PRICE", gotBody["format"])
	assert.Equal(t, "EBAY_US", gotBody["marketplaceId"])

	pricing := gotBody["pricingSummary"].(map[string]any)
	price := pricing["price"].(map[string]any)
	assert.Equal(t, "24.90", price["value"])
	assert.Equal(t, "USD", price["currency"])
}

func TestSellClient_CreateOfferRejected(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"errors":[{"errorId":25002,"message":"duplicate offer"}]}`))
	}))
	defer srv.Close()

	c := ebay.NewSellClient(staticTokens{token: "tok-1"}, ebay.WithAPIURL(srv.URL))

	_, err := c.CreateOffer(context.Background(), "user-1", ebay.Offer{SKU: "BM-0001"})
	require.Error(t, err)

	var stageErr *ebay.StageError
	require.ErrorAs(t, err, &stageErr)
	assert.Equal(t, ebay.StageOffer, stageErr.Stage)
	assert.Equal(t, http.StatusBadRequest, stageErr.StatusCode)
	assert.Contains(t, stageErr.Message, "duplicate offer")
}

func TestSellClient_PublishOffer(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/sell/inventory/v1/offer/offer-42/publish", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"listingId":"110123456789"}`))
	}))
	defer srv.Close()

	c := ebay.NewSellClient(staticTokens{token: "tok-1"}, ebay.WithAPIURL(srv.URL))

	listingID, err := c.PublishOffer(context.Background(), "user-1", "offer-42")
	require.NoError(t, err)
	assert.Equal(t, "110123456789", listingID)
}

func TestSellClient_PublishOfferFailed(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"errors":[{"message":"offer is missing a return policy"}]}`))
	}))
	defer srv.Close()

	c := ebay.NewSellClient(staticTokens{token: "tok-1"}, ebay.WithAPIURL(srv.URL))

	_, err := c.PublishOffer(context.Background(), "user-1", "offer-42")
	require.Error(t, err)
	stage, ok := ebay.FailedStage(err)
	require.True(t, ok)
	assert.Equal(t, ebay.StagePublish, stage)
}

func TestSellClient_Timeout(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := ebay.NewSellClient(staticTokens{token: "tok-1"},
		ebay.WithAPIURL(srv.URL),
		ebay.WithSellHTTPClient(&http.Client{Timeout: 20 * time.Millisecond}),
	)

	_, err := c.PublishOffer(context.Background(), "user-1", "offer-42")
	require.ErrorIs(t, err, ebay.ErrMarketplaceTimeout)
	stage, ok := ebay.FailedStage(err)
	require.True(t, ok)
	assert.Equal(t, ebay.StagePublish, stage)
}

func TestSellClient_TokenFailurePropagates(t *testing.T) {
	t.Parallel()

	c := ebay.NewSellClient(staticTokens{err: ebay.ErrNotAuthenticated})

	err := c.UpsertInventoryItem(context.Background(), "user-1", ebay.InventoryItem{SKU: "BM-1"})
	require.ErrorIs(t, err, ebay.ErrNotAuthenticated)
}

func TestSellClient_ListInventoryItems(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/sell/inventory/v1/inventory_item", r.URL.Path)
		assert.Equal(t, "50", r.URL.Query().Get("limit"))
		assert.Equal(t, "100", r.URL.Query().Get("offset"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"inventoryItems": [
				{"sku":"BM-0001","product":{"title":"Dune","isbn":["9780441013593"]},
				 "availability":{"shipToLocationAvailability":{"quantity":1}}},
				{"sku":"BM-0002","product":{"title":"Hyperion"}}
			],
			"total": 151, "limit": 50, "offset": 100,
			"next": "/sell/inventory/v1/inventory_item?limit=50&offset=150"
		}`))
	}))
	defer srv.Close()

	c := ebay.NewSellClient(staticTokens{token: "tok-1"}, ebay.WithAPIURL(srv.URL))

	page, err := c.ListInventoryItems(context.Background(), "user-1", 50, 100)
	require.NoError(t, err)

	assert.Equal(t, 151, page.Total)
	assert.True(t, page.HasMore)
	require.Len(t, page.Items, 2)
	assert.Equal(t, "BM-0001", page.Items[0].SKU)
	assert.Equal(t, "9780441013593", page.Items[0].ISBN)
	assert.Equal(t, 1, page.Items[0].Quantity)
	assert.Equal(t, "Hyperion", page.Items[1].Title)
	assert.Empty(t, page.Items[1].ISBN)
}
