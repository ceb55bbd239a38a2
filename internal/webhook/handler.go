// Package webhook receives asynchronous marketplace notifications and
// reconciles local listing state. Every POST body is authenticated with an
// HMAC before any byte of it is parsed.
package webhook

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bookmint/bookmint/internal/metrics"
	"github.com/bookmint/bookmint/internal/store"
)

// Notification topics delivered by the marketplace.
const (
	TopicOfferPublished       = "OFFER_PUBLISHED"
	TopicInventoryItemUpdated = "INVENTORY_ITEM_UPDATED"
	TopicAccountDeletion      = "MARKETPLACE_ACCOUNT_DELETION"
)

const signatureHeader = "X-EBAY-SIGNATURE"

// Handler verifies and dispatches inbound marketplace events.
type Handler struct {
	store store.Store
	log   *slog.Logger

	secret            []byte
	verificationToken string
	endpointURL       string
}

// NewHandler creates a webhook Handler. secret signs event bodies;
// verificationToken and endpointURL answer the marketplace's GET challenge
// during endpoint registration.
func NewHandler(
	s store.Store,
	secret, verificationToken, endpointURL string,
	log *slog.Logger,
) *Handler {
	return &Handler{
		store:             s,
		log:               log,
		secret:            []byte(secret),
		verificationToken: verificationToken,
		endpointURL:       endpointURL,
	}
}

// Register attaches the webhook routes. These sit outside the API group:
// the caller is the marketplace, not a user, so no identity middleware
// applies.
func (h *Handler) Register(e *echo.Echo) {
	e.GET("/webhooks/ebay", h.handleChallenge)
	e.POST("/webhooks/ebay", h.handleEvent)
}

// event is the notification envelope. Only the fields the dispatcher needs
// are mapped.
type event struct {
	Metadata struct {
		Topic string `json:"topic"`
	} `json:"metadata"`
	Notification struct {
		Data struct {
			OfferID   string `json:"offerId"`
			ListingID string `json:"listingId"`
			SKU       string `json:"sku"`
			UserID    string `json:"userId"`
			Username  string `json:"username"`
		} `json:"data"`
	} `json:"notification"`
}

type challengeResponse struct {
	ChallengeResponse string `json:"challengeResponse"`
}

// handleChallenge answers the endpoint validation probe: the marketplace
// sends a challenge code and expects
// SHA-256(challengeCode + verificationToken + endpointURL) back as hex.
func (h *Handler) handleChallenge(c echo.Context) error {
	code := c.QueryParam("challenge_code")
	if code == "" {
		return c.NoContent(http.StatusBadRequest)
	}

	sum := sha256.Sum256([]byte(code + h.verificationToken + h.endpointURL))

	return c.JSON(http.StatusOK, challengeResponse{
		ChallengeResponse: hex.EncodeToString(sum[:]),
	})
}

func (h *Handler) handleEvent(c echo.Context) error {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return c.NoContent(http.StatusBadRequest)
	}

	// Authenticity first. An unverified body is never parsed.
	if !h.verify(body, c.Request().Header.Get(signatureHeader)) {
		metrics.WebhookInvalidSignaturesTotal.Inc()
		h.log.Warn("webhook signature mismatch", "remote", c.RealIP())
		return c.NoContent(http.StatusUnauthorized)
	}

	var evt event
	if err := json.Unmarshal(body, &evt); err != nil {
		h.log.Warn("webhook body unparseable", "error", err)
		return c.NoContent(http.StatusBadRequest)
	}

	topic := evt.Metadata.Topic
	metrics.WebhookEventsTotal.WithLabelValues(topic).Inc()

	ctx := c.Request().Context()

	switch topic {
	case TopicOfferPublished:
		n, err := h.store.MarkListingPublishedByOfferID(
			ctx, evt.Notification.Data.OfferID, evt.Notification.Data.ListingID,
		)
		if err != nil {
			h.log.Error("applying publish confirmation failed",
				"offer_id", evt.Notification.Data.OfferID,
				"error", err,
			)
			return c.NoContent(http.StatusInternalServerError)
		}
		if n == 0 {
			// Unknown offer or duplicate delivery; either way done.
			h.log.Debug("publish confirmation was a no-op",
				"offer_id", evt.Notification.Data.OfferID,
			)
		}

	case TopicInventoryItemUpdated:
		// No marketplace-sourced fields are mirrored locally yet, so
		// there is nothing to reconcile.
		h.log.Debug("inventory item updated",
			"sku", evt.Notification.Data.SKU,
		)

	case TopicAccountDeletion:
		userID := evt.Notification.Data.UserID
		if userID == "" {
			userID = evt.Notification.Data.Username
		}
		if err := h.store.PurgeUser(ctx, userID); err != nil {
			// Compliance obligation: never drop this silently. A non-2xx
			// makes the marketplace redeliver.
			h.log.Error("account deletion purge failed",
				"user_id", userID,
				"error", err,
			)
			return c.NoContent(http.StatusInternalServerError)
		}
		h.log.Info("purged marketplace data for deleted account", "user_id", userID)

	default:
		// Marketplaces add topics over time; unknown ones are
		// acknowledged so delivery doesn't retry forever.
		h.log.Info("ignoring unknown webhook topic", "topic", topic)
	}

	return c.NoContent(http.StatusOK)
}

// verify compares the HMAC-SHA256 of body against the hex signature from
// the request header in constant time.
func (h *Handler) verify(body []byte, signature string) bool {
	if signature == "" {
		return false
	}

	mac := hmac.New(sha256.New, h.secret)
	mac.Write(body)
	expected := hex.EncodeToString(mac.Sum(nil))

	return hmac.Equal([]byte(expected), []byte(signature))
}
