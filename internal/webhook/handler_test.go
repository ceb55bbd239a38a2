package webhook

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	storeMocks "github.com/bookmint/bookmint/internal/store/mocks"
)

const (
	testSecret   = "webhook-secret"
	testVerifTok = "verification-token"
	testEndpoint = "https://bookmint.example/webhooks/ebay"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func sign(body string) string {
	mac := hmac.New(sha256.New, []byte(testSecret))
	mac.Write([]byte(body))
	return hex.EncodeToString(mac.Sum(nil))
}

// postEvent delivers body to the webhook route with the given signature
// and returns the response recorder.
func postEvent(t *testing.T, ms *storeMocks.MockStore, body, signature string) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	NewHandler(ms, testSecret, testVerifTok, testEndpoint, quietLogger()).Register(e)

	req := httptest.NewRequest(http.MethodPost, "/webhooks/ebay", strings.NewReader(body))
	if signature != "" {
		req.Header.Set(signatureHeader, signature)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestHandler_Challenge(t *testing.T) {
	t.Parallel()

	t.Run("answers with expected digest", func(t *testing.T) {
		t.Parallel()

		ms := storeMocks.NewMockStore(t)
		e := echo.New()
		NewHandler(ms, testSecret, testVerifTok, testEndpoint, quietLogger()).Register(e)

		req := httptest.NewRequest(http.MethodGet, "/webhooks/ebay?challenge_code=abc123", nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		sum := sha256.Sum256([]byte("abc123" + testVerifTok + testEndpoint))
		assert.Contains(t, rec.Body.String(), hex.EncodeToString(sum[:]))
	})

	t.Run("missing challenge code rejected", func(t *testing.T) {
		t.Parallel()

		ms := storeMocks.NewMockStore(t)
		e := echo.New()
		NewHandler(ms, testSecret, testVerifTok, testEndpoint, quietLogger()).Register(e)

		req := httptest.NewRequest(http.MethodGet, "/webhooks/ebay", nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestHandler_RejectsInvalidSignature(t *testing.T) {
	t.Parallel()

	body := `{"metadata":{"topic":"OFFER_PUBLISHED"},"notification":{"data":{"offerId":"offer-9","listingId":"110123"}}}`

	tests := []struct {
		name      string
		signature string
	}{
		{name: "missing signature", signature: ""},
		{name: "wrong signature", signature: sign("different body")},
		{name: "garbage signature", signature: "not-a-hex-digest"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			// No store expectations: a rejected request must not touch
			// any state.
			ms := storeMocks.NewMockStore(t)

			rec := postEvent(t, ms, body, tt.signature)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}

func TestHandler_OfferPublished(t *testing.T) {
	t.Parallel()

	body := `{"metadata":{"topic":"OFFER_PUBLISHED"},"notification":{"data":{"offerId":"offer-9","listingId":"110123"}}}`

	t.Run("applies publish confirmation", func(t *testing.T) {
		t.Parallel()

		ms := storeMocks.NewMockStore(t)
		ms.EXPECT().
			MarkListingPublishedByOfferID(mock.Anything, "offer-9", "110123").
			Return(1, nil).Once()

		rec := postEvent(t, ms, body, sign(body))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("duplicate delivery still acknowledged", func(t *testing.T) {
		t.Parallel()

		ms := storeMocks.NewMockStore(t)
		ms.EXPECT().
			MarkListingPublishedByOfferID(mock.Anything, "offer-9", "110123").
			Return(0, nil).Twice()

		rec := postEvent(t, ms, body, sign(body))
		assert.Equal(t, http.StatusOK, rec.Code)

		rec = postEvent(t, ms, body, sign(body))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("redelivery after the user ended the listing is acknowledged", func(t *testing.T) {
		t.Parallel()

		// The store refuses to move an ended listing back to listed and
		// reports zero rows; the event is acknowledged so the
		// marketplace stops redelivering it.
		ms := storeMocks.NewMockStore(t)
		ms.EXPECT().
			MarkListingPublishedByOfferID(mock.Anything, "offer-9", "110123").
			Return(0, nil).Once()

		rec := postEvent(t, ms, body, sign(body))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("store failure returns 500 for redelivery", func(t *testing.T) {
		t.Parallel()

		ms := storeMocks.NewMockStore(t)
		ms.EXPECT().
			MarkListingPublishedByOfferID(mock.Anything, "offer-9", "110123").
			Return(0, assert.AnError).Once()

		rec := postEvent(t, ms, body, sign(body))
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestHandler_AccountDeletion(t *testing.T) {
	t.Parallel()

	body := `{"metadata":{"topic":"MARKETPLACE_ACCOUNT_DELETION"},"notification":{"data":{"userId":"user-7","username":"reader7"}}}`

	t.Run("purges user data", func(t *testing.T) {
		t.Parallel()

		ms := storeMocks.NewMockStore(t)
		ms.EXPECT().PurgeUser(mock.Anything, "user-7").Return(nil).Once()

		rec := postEvent(t, ms, body, sign(body))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("purge failure is not swallowed", func(t *testing.T) {
		t.Parallel()

		ms := storeMocks.NewMockStore(t)
		ms.EXPECT().PurgeUser(mock.Anything, "user-7").Return(assert.AnError).Once()

		rec := postEvent(t, ms, body, sign(body))
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})

	t.Run("falls back to username when user id absent", func(t *testing.T) {
		t.Parallel()

		noID := `{"metadata":{"topic":"MARKETPLACE_ACCOUNT_DELETION"},"notification":{"data":{"username":"reader7"}}}`

		ms := storeMocks.NewMockStore(t)
		ms.EXPECT().PurgeUser(mock.Anything, "reader7").Return(nil).Once()

		rec := postEvent(t, ms, noID, sign(noID))
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestHandler_InventoryItemUpdatedIsAcknowledged(t *testing.T) {
	t.Parallel()

	body := `{"metadata":{"topic":"INVENTORY_ITEM_UPDATED"},"notification":{"data":{"sku":"BM-0001"}}}`

	ms := storeMocks.NewMockStore(t)

	rec := postEvent(t, ms, body, sign(body))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandler_UnknownTopicIsAcknowledged(t *testing.T) {
	t.Parallel()

	body := `{"metadata":{"topic":"SOME_FUTURE_TOPIC"},"notification":{"data":{}}}`

	ms := storeMocks.NewMockStore(t)

	rec := postEvent(t, ms, body, sign(body))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandler_UnparseableVerifiedBody(t *testing.T) {
	t.Parallel()

	body := `{not json`

	ms := storeMocks.NewMockStore(t)

	rec := postEvent(t, ms, body, sign(body))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
