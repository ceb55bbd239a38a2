// Package main implements a mock eBay Sell API server for local
// development. It fakes the OAuth token endpoint and the Sell Inventory
// endpoints with in-memory state, so the full publication pipeline can be
// exercised without real eBay credentials.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"sync"
	"time"
)

func main() {
	port := flag.Int("port", 8089, "port to listen on")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", *port),
		Handler:      requestLogger(logger, newSellServer(logger).routes()),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	logger.Info("starting mock eBay server", "addr", srv.Addr)
	if err := srv.ListenAndServe(); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func requestLogger(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.Debug("request", "method", r.Method, "path", r.URL.Path, "query", r.URL.RawQuery)
		next.ServeHTTP(w, r)
	})
}

// sellServer holds the in-memory marketplace state.
type sellServer struct {
	logger *slog.Logger

	mu        sync.Mutex
	items     map[string]json.RawMessage // keyed by SKU
	offers    map[string]string          // offer id -> SKU
	published map[string]string          // offer id -> listing id
	nextOffer int
	nextList  int64
}

func newSellServer(logger *slog.Logger) *sellServer {
	return &sellServer{
		logger:    logger,
		items:     make(map[string]json.RawMessage),
		offers:    make(map[string]string),
		published: make(map[string]string),
		nextList:  110000000001,
	}
}

func (s *sellServer) routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /identity/v1/oauth2/token", s.handleToken)
	mux.HandleFunc("PUT /sell/inventory/v1/inventory_item/{sku}", s.handleUpsertItem)
	mux.HandleFunc("GET /sell/inventory/v1/inventory_item", s.handleListItems)
	mux.HandleFunc("POST /sell/inventory/v1/offer", s.handleCreateOffer)
	mux.HandleFunc("POST /sell/inventory/v1/offer/{id}/publish", s.handlePublishOffer)
	return mux
}

func (s *sellServer) handleToken(w http.ResponseWriter, r *http.Request) {
	if _, _, ok := r.BasicAuth(); !ok {
		s.logger.Warn("token request missing Basic Auth header")
		writeJSON(w, http.StatusUnauthorized, map[string]string{
			"error":             "invalid_client",
			"error_description": "client authentication failed",
		})
		return
	}

	if err := r.ParseForm(); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid_request"})
		return
	}

	grant := r.PostFormValue("grant_type")
	if grant != "refresh_token" && grant != "authorization_code" {
		writeJSON(w, http.StatusBadRequest, map[string]string{
			"error":             "unsupported_grant_type",
			"error_description": grant,
		})
		return
	}

	resp := map[string]any{
		"access_token": "mock-access-" + strconv.FormatInt(time.Now().UnixNano(), 16),
		"expires_in":   7200,
		"token_type":   "User Access Token",
	}
	if grant == "authorization_code" {
		resp["refresh_token"] = "mock-refresh-" + strconv.FormatInt(time.Now().UnixNano(), 16)
		resp["refresh_token_expires_in"] = 47304000
	}

	writeJSON(w, http.StatusOK, resp)
	s.logger.Info("issued mock token", "grant_type", grant)
}

func (s *sellServer) handleUpsertItem(w http.ResponseWriter, r *http.Request) {
	sku := r.PathValue("sku")

	var body json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid inventory item payload")
		return
	}

	s.mu.Lock()
	_, existed := s.items[sku]
	s.items[sku] = body
	s.mu.Unlock()

	status := http.StatusCreated
	if existed {
		status = http.StatusNoContent
	}
	w.WriteHeader(status)
	s.logger.Info("upserted inventory item", "sku", sku, "existed", existed)
}

func (s *sellServer) handleListItems(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	if limit <= 0 {
		limit = 25
	}
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))

	s.mu.Lock()
	skus := make([]string, 0, len(s.items))
	for sku := range s.items {
		skus = append(skus, sku)
	}
	s.mu.Unlock()

	total := len(skus)
	end := offset + limit
	if offset > total {
		offset = total
	}
	if end > total {
		end = total
	}

	items := make([]map[string]any, 0, end-offset)
	for _, sku := range skus[offset:end] {
		items = append(items, map[string]any{"sku": sku})
	}

	resp := map[string]any{
		"inventoryItems": items,
		"total":          total,
		"size":           len(items),
		"offset":         offset,
		"limit":          limit,
	}
	if end < total {
		resp["next"] = fmt.Sprintf("/sell/inventory/v1/inventory_item?offset=%d&limit=%d", end, limit)
	}

	writeJSON(w, http.StatusOK, resp)
}

func (s *sellServer) handleCreateOffer(w http.ResponseWriter, r *http.Request) {
	var req struct {
		SKU string `json:"sku"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.SKU == "" {
		writeError(w, http.StatusBadRequest, "offer requires a sku")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[req.SKU]; !ok {
		writeError(w, http.StatusBadRequest, "no inventory item for sku "+req.SKU)
		return
	}

	// One offer per SKU, like the real marketplace.
	for id, sku := range s.offers {
		if sku == req.SKU {
			writeError(w, http.StatusBadRequest, "offer already exists: "+id)
			return
		}
	}

	s.nextOffer++
	offerID := fmt.Sprintf("offer-%06d", s.nextOffer)
	s.offers[offerID] = req.SKU

	writeJSON(w, http.StatusCreated, map[string]string{"offerId": offerID})
	s.logger.Info("created offer", "offer_id", offerID, "sku", req.SKU)
}

func (s *sellServer) handlePublishOffer(w http.ResponseWriter, r *http.Request) {
	offerID := r.PathValue("id")

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.offers[offerID]; !ok {
		writeError(w, http.StatusNotFound, "offer not found: "+offerID)
		return
	}

	if listingID, ok := s.published[offerID]; ok {
		writeJSON(w, http.StatusOK, map[string]string{"listingId": listingID})
		return
	}

	listingID := strconv.FormatInt(s.nextList, 10)
	s.nextList++
	s.published[offerID] = listingID

	writeJSON(w, http.StatusOK, map[string]string{"listingId": listingID})
	s.logger.Info("published offer", "offer_id", offerID, "listing_id", listingID)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	//nolint:errcheck,gosec // best-effort write to HTTP response in mock server
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]any{
		"errors": []map[string]any{{"message": msg}},
	})
}
