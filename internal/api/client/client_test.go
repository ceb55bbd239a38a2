package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/bookmint/bookmint/pkg/types"
)

func TestClient_ConnectionRefused(t *testing.T) {
	t.Parallel()

	c := New("http://127.0.0.1:1") // nothing listening
	_, err := c.ListListings(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API server not running")
}

func TestClient_HTTPError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"internal"}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	_, err := c.ListListings(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API error (HTTP 500)")
}

func TestClient_SendsUserHeader(t *testing.T) {
	t.Parallel()

	var gotUser string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUser = r.Header.Get("X-User-ID")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"listings":[]}`))
	}))
	defer srv.Close()

	c := New(srv.URL, WithUser("u1"))
	_, err := c.ListListings(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "u1", gotUser)
}

func TestClient_ListBooks(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/books", r.URL.Path)
		assert.Equal(t, "in_stock", r.URL.Query().Get("status"))
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(BookList{
			Books: []domain.Book{{ID: "b1", Title: "Test Book"}},
			Total: 1,
		})
	}))
	defer srv.Close()

	c := New(srv.URL)
	list, err := c.ListBooks(context.Background(), BookFilter{Status: "in_stock"})
	require.NoError(t, err)
	require.Len(t, list.Books, 1)
	assert.Equal(t, "Test Book", list.Books[0].Title)
	assert.Equal(t, 1, list.Total)
}

func TestClient_CreateBook(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/books", r.URL.Path)

		var req map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "9780134190440", req["isbn"])
		assert.NotContains(t, req, "id")

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(domain.Book{ID: "b1", ISBN: "9780134190440"})
	}))
	defer srv.Close()

	c := New(srv.URL)
	created, err := c.CreateBook(context.Background(), &domain.Book{
		ISBN:        "9780134190440",
		SKU:         "BM-0001",
		Condition:   domain.ConditionVeryGood,
		AskingPrice: 24.90,
	})
	require.NoError(t, err)
	assert.Equal(t, "b1", created.ID)
}

func TestClient_PublishListing(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/listings/publish", r.URL.Path)

		var req map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "b1", req["book_id"])

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(domain.Listing{
			ID:            "l1",
			Status:        domain.ListingLive,
			EbayListingID: "110012345678",
		})
	}))
	defer srv.Close()

	c := New(srv.URL)
	l, err := c.PublishListing(context.Background(), "b1")
	require.NoError(t, err)
	assert.Equal(t, "110012345678", l.EbayListingID)
}

func TestClient_TriggerSync(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/sync", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(domain.SyncRun{
			ID:          "run-1",
			Status:      domain.SyncCompleted,
			ItemsSynced: 7,
			ItemsFailed: 3,
		})
	}))
	defer srv.Close()

	c := New(srv.URL)
	run, err := c.TriggerSync(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.SyncCompleted, run.Status)
	assert.Equal(t, 7, run.ItemsSynced)
}

func TestClient_DeleteBook(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/v1/books/b1", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c := New(srv.URL)
	require.NoError(t, c.DeleteBook(context.Background(), "b1"))
}
