package handlers_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bookmint/bookmint/internal/api/handlers"
	"github.com/bookmint/bookmint/internal/catalog"
	"github.com/bookmint/bookmint/internal/store"
	storeMocks "github.com/bookmint/bookmint/internal/store/mocks"
	domain "github.com/bookmint/bookmint/pkg/types"
)

const userHeader = "X-User-ID: u1"

// stubCatalog implements handlers.MetadataLookup with a canned response.
type stubCatalog struct {
	info *catalog.BookInfo
	err  error
}

func (s *stubCatalog) Lookup(_ context.Context, _ string) (*catalog.BookInfo, error) {
	return s.info, s.err
}

func TestBooksHandler_List(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		path       string
		headers    []string
		setupMock  func(*storeMocks.MockStore)
		wantStatus int
		wantBody   string
	}{
		{
			name:    "returns books",
			path:    "/api/v1/books",
			headers: []string{userHeader},
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().
					ListBooks(mock.Anything, "u1", mock.Anything).
					Return([]domain.Book{
						{ID: "b1", Title: "The Go Programming Language"},
					}, 1, nil).
					Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"The Go Programming Language"`,
		},
		{
			name:    "status filter reaches the query",
			path:    "/api/v1/books?status=in_stock",
			headers: []string{userHeader},
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().
					ListBooks(mock.Anything, "u1", mock.MatchedBy(func(q *store.BookQuery) bool {
						return q.Status != nil && *q.Status == "in_stock"
					})).
					Return(nil, 0, nil).
					Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"books":[]`,
		},
		{
			name:       "missing identity rejected",
			path:       "/api/v1/books",
			headers:    nil,
			setupMock:  func(*storeMocks.MockStore) {},
			wantStatus: http.StatusUnauthorized,
			wantBody:   `X-User-ID`,
		},
		{
			name:    "store error",
			path:    "/api/v1/books",
			headers: []string{userHeader},
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().
					ListBooks(mock.Anything, "u1", mock.Anything).
					Return(nil, 0, errors.New("db error")).
					Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `book query failed`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ms := storeMocks.NewMockStore(t)
			tt.setupMock(ms)
			h := handlers.NewBooksHandler(ms, nil)

			_, api := humatest.New(t)
			handlers.RegisterBookRoutes(api, h)

			args := make([]any, 0, len(tt.headers))
			for _, hd := range tt.headers {
				args = append(args, hd)
			}
			resp := api.Get(tt.path, args...)
			require.Equal(t, tt.wantStatus, resp.Code)
			assert.Contains(t, resp.Body.String(), tt.wantBody)
		})
	}
}

func TestBooksHandler_Get(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		id         string
		setupMock  func(*storeMocks.MockStore)
		wantStatus int
		wantBody   string
	}{
		{
			name: "found",
			id:   "b1",
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().
					GetBook(mock.Anything, "u1", "b1").
					Return(&domain.Book{ID: "b1", SKU: "BM-0001"}, nil).
					Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"BM-0001"`,
		},
		{
			name: "not found",
			id:   "b-missing",
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().
					GetBook(mock.Anything, "u1", "b-missing").
					Return(nil, pgx.ErrNoRows).
					Once()
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `book not found`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ms := storeMocks.NewMockStore(t)
			tt.setupMock(ms)
			h := handlers.NewBooksHandler(ms, nil)

			_, api := humatest.New(t)
			handlers.RegisterBookRoutes(api, h)

			resp := api.Get("/api/v1/books/"+tt.id, userHeader)
			require.Equal(t, tt.wantStatus, resp.Code)
			assert.Contains(t, resp.Body.String(), tt.wantBody)
		})
	}
}

func TestBooksHandler_Create(t *testing.T) {
	t.Parallel()

	body := map[string]any{
		"isbn":         "9780134190440",
		"sku":          "BM-0001",
		"title":        "The Go Programming Language",
		"condition":    "very_good",
		"asking_price": 24.90,
	}

	t.Run("creates with supplied metadata", func(t *testing.T) {
		t.Parallel()

		ms := storeMocks.NewMockStore(t)
		ms.EXPECT().
			CreateBook(mock.Anything, mock.MatchedBy(func(b *domain.Book) bool {
				return b.UserID == "u1" &&
					b.SKU == "BM-0001" &&
					b.Status == domain.BookInStock &&
					b.Currency == "USD"
			})).
			Return(nil).
			Once()

		h := handlers.NewBooksHandler(ms, nil)
		_, api := humatest.New(t)
		handlers.RegisterBookRoutes(api, h)

		resp := api.Post("/api/v1/books", userHeader, body)
		require.Equal(t, http.StatusCreated, resp.Code)
		assert.Contains(t, resp.Body.String(), `"in_stock"`)
	})

	t.Run("enriches missing metadata from catalog", func(t *testing.T) {
		t.Parallel()

		ms := storeMocks.NewMockStore(t)
		ms.EXPECT().
			CreateBook(mock.Anything, mock.MatchedBy(func(b *domain.Book) bool {
				return b.Title == "The Go Programming Language" &&
					b.Author == "Alan A. A. Donovan" &&
					b.Publisher == "Addison-Wesley"
			})).
			Return(nil).
			Once()

		cat := &stubCatalog{info: &catalog.BookInfo{
			Title:     "The Go Programming Language",
			Author:    "Alan A. A. Donovan",
			Publisher: "Addison-Wesley",
		}}

		h := handlers.NewBooksHandler(ms, cat)
		_, api := humatest.New(t)
		handlers.RegisterBookRoutes(api, h)

		noTitle := map[string]any{
			"isbn":         "9780134190440",
			"sku":          "BM-0001",
			"condition":    "very_good",
			"asking_price": 24.90,
		}
		resp := api.Post("/api/v1/books", userHeader, noTitle)
		require.Equal(t, http.StatusCreated, resp.Code)
	})

	t.Run("rejects when catalog has no entry and no title given", func(t *testing.T) {
		t.Parallel()

		ms := storeMocks.NewMockStore(t)
		cat := &stubCatalog{err: catalog.ErrNotFound}

		h := handlers.NewBooksHandler(ms, cat)
		_, api := humatest.New(t)
		handlers.RegisterBookRoutes(api, h)

		noTitle := map[string]any{
			"isbn":         "9780000000000",
			"sku":          "BM-0002",
			"condition":    "good",
			"asking_price": 5.00,
		}
		resp := api.Post("/api/v1/books", userHeader, noTitle)
		require.Equal(t, http.StatusUnprocessableEntity, resp.Code)
		assert.Contains(t, resp.Body.String(), "title is required")
	})

	t.Run("store error", func(t *testing.T) {
		t.Parallel()

		ms := storeMocks.NewMockStore(t)
		ms.EXPECT().
			CreateBook(mock.Anything, mock.Anything).
			Return(errors.New("duplicate sku")).
			Once()

		h := handlers.NewBooksHandler(ms, nil)
		_, api := humatest.New(t)
		handlers.RegisterBookRoutes(api, h)

		resp := api.Post("/api/v1/books", userHeader, body)
		require.Equal(t, http.StatusInternalServerError, resp.Code)
		assert.Contains(t, resp.Body.String(), "creating book failed")
	})
}

func TestBooksHandler_Update(t *testing.T) {
	t.Parallel()

	t.Run("merges supplied fields", func(t *testing.T) {
		t.Parallel()

		existing := &domain.Book{
			ID:          "b1",
			UserID:      "u1",
			Title:       "Old Title",
			AskingPrice: 10,
		}

		ms := storeMocks.NewMockStore(t)
		ms.EXPECT().
			GetBook(mock.Anything, "u1", "b1").
			Return(existing, nil).
			Once()
		ms.EXPECT().
			UpdateBook(mock.Anything, mock.MatchedBy(func(b *domain.Book) bool {
				return b.Title == "Old Title" && b.AskingPrice == 19.99
			})).
			Return(nil).
			Once()

		h := handlers.NewBooksHandler(ms, nil)
		_, api := humatest.New(t)
		handlers.RegisterBookRoutes(api, h)

		resp := api.Put("/api/v1/books/b1", userHeader, map[string]any{
			"asking_price": 19.99,
		})
		require.Equal(t, http.StatusOK, resp.Code)
		assert.Contains(t, resp.Body.String(), `19.99`)
	})

	t.Run("not found", func(t *testing.T) {
		t.Parallel()

		ms := storeMocks.NewMockStore(t)
		ms.EXPECT().
			GetBook(mock.Anything, "u1", "b-missing").
			Return(nil, pgx.ErrNoRows).
			Once()

		h := handlers.NewBooksHandler(ms, nil)
		_, api := humatest.New(t)
		handlers.RegisterBookRoutes(api, h)

		resp := api.Put("/api/v1/books/b-missing", userHeader, map[string]any{
			"asking_price": 19.99,
		})
		require.Equal(t, http.StatusNotFound, resp.Code)
	})
}

func TestBooksHandler_Delete(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		deleteErr  error
		wantStatus int
	}{
		{
			name:       "deleted",
			deleteErr:  nil,
			wantStatus: http.StatusNoContent,
		},
		{
			name:       "not found",
			deleteErr:  pgx.ErrNoRows,
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ms := storeMocks.NewMockStore(t)
			ms.EXPECT().
				DeleteBook(mock.Anything, "u1", "b1").
				Return(tt.deleteErr).
				Once()

			h := handlers.NewBooksHandler(ms, nil)
			_, api := humatest.New(t)
			handlers.RegisterBookRoutes(api, h)

			resp := api.Delete("/api/v1/books/b1", userHeader)
			require.Equal(t, tt.wantStatus, resp.Code)
		})
	}
}
