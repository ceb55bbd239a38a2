package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/jackc/pgx/v5"

	"github.com/bookmint/bookmint/internal/catalog"
	"github.com/bookmint/bookmint/internal/store"
	domain "github.com/bookmint/bookmint/pkg/types"
)

// MetadataLookup defines the catalog client methods the books handler uses.
type MetadataLookup interface {
	Lookup(ctx context.Context, isbn string) (*catalog.BookInfo, error)
}

// BooksHandler handles book inventory CRUD operations.
type BooksHandler struct {
	store   store.Store
	catalog MetadataLookup
}

// NewBooksHandler creates a new BooksHandler. catalog may be nil, in which
// case books are created with exactly the metadata the caller supplies.
func NewBooksHandler(s store.Store, c MetadataLookup) *BooksHandler {
	return &BooksHandler{store: s, catalog: c}
}

// --- Input/Output types ---

// ListBooksInput is the input for listing books with optional filters.
type ListBooksInput struct {
	Identity
	Status    string `query:"status"    doc:"Filter by status"              enum:"in_stock,listed,sold,"`
	Condition string `query:"condition" doc:"Filter by condition"           enum:"new,like_new,very_good,good,acceptable,"`
	ISBN      string `query:"isbn"      doc:"Filter by ISBN"`
	Search    string `query:"search"    doc:"Match against title or author"`
	Limit     int    `query:"limit"     doc:"Number of results (default 50)" minimum:"1" maximum:"500"`
	Offset    int    `query:"offset"    doc:"Pagination offset"              minimum:"0"`
	OrderBy   string `query:"order_by"  doc:"Sort field"                     enum:"created_at,price,title,"`
}

// ListBooksOutput is the response for listing books.
type ListBooksOutput struct {
	Body struct {
		Books  []domain.Book `json:"books"`
		Total  int           `json:"total"`
		Limit  int           `json:"limit"`
		Offset int           `json:"offset"`
	}
}

// GetBookInput is the input for getting a single book.
type GetBookInput struct {
	Identity
	ID string `path:"id" doc:"Book UUID"`
}

// GetBookOutput is the response for getting a single book.
type GetBookOutput struct {
	Body domain.Book
}

// CreateBookInput is the request body for creating a book.
type CreateBookInput struct {
	Identity
	Body struct {
		ISBN          string  `json:"isbn"                     doc:"ISBN-10 or ISBN-13"`
		SKU           string  `json:"sku"                      doc:"Seller-assigned stock keeping unit"`
		Title         string  `json:"title,omitempty"          doc:"Title, filled from the catalog when omitted"`
		Author        string  `json:"author,omitempty"`
		Description   string  `json:"description,omitempty"`
		Condition     string  `json:"condition"                enum:"new,like_new,very_good,good,acceptable"`
		PurchasePrice float64 `json:"purchase_price,omitempty" minimum:"0"`
		AskingPrice   float64 `json:"asking_price"             minimum:"0.01"`
		Currency      string  `json:"currency,omitempty"       doc:"ISO currency code (default USD)"`
	}
}

// CreateBookOutput is the response for creating a book.
type CreateBookOutput struct {
	Status int
	Body   domain.Book
}

// UpdateBookInput is the request body for updating a book.
type UpdateBookInput struct {
	Identity
	ID   string `path:"id" doc:"Book UUID"`
	Body struct {
		Title         string  `json:"title,omitempty"`
		Author        string  `json:"author,omitempty"`
		Description   string  `json:"description,omitempty"`
		Condition     string  `json:"condition,omitempty" enum:"new,like_new,very_good,good,acceptable,"`
		PurchasePrice float64 `json:"purchase_price,omitempty" minimum:"0"`
		AskingPrice   float64 `json:"asking_price,omitempty"   minimum:"0"`
	}
}

// UpdateBookOutput is the response for updating a book.
type UpdateBookOutput struct {
	Body domain.Book
}

// DeleteBookInput is the input for deleting a book.
type DeleteBookInput struct {
	Identity
	ID string `path:"id" doc:"Book UUID"`
}

// --- Handlers ---

// ListBooks returns the caller's books with optional filters.
func (h *BooksHandler) ListBooks(
	ctx context.Context,
	input *ListBooksInput,
) (*ListBooksOutput, error) {
	userID, err := input.requireUser()
	if err != nil {
		return nil, err
	}

	q := &store.BookQuery{
		Offset:  input.Offset,
		OrderBy: input.OrderBy,
	}

	if input.Status != "" {
		q.Status = &input.Status
	}

	if input.Condition != "" {
		q.Condition = &input.Condition
	}

	if input.ISBN != "" {
		q.ISBN = &input.ISBN
	}

	if input.Search != "" {
		q.Search = &input.Search
	}

	if input.Limit != 0 {
		q.Limit = input.Limit
	}

	books, total, err := h.store.ListBooks(ctx, userID, q)
	if err != nil {
		return nil, huma.Error500InternalServerError("book query failed: " + err.Error())
	}

	if books == nil {
		books = []domain.Book{}
	}

	resp := &ListBooksOutput{}
	resp.Body.Books = books
	resp.Body.Total = total
	resp.Body.Limit = q.Limit
	resp.Body.Offset = q.Offset

	return resp, nil
}

// GetBook returns a single book owned by the caller.
func (h *BooksHandler) GetBook(
	ctx context.Context,
	input *GetBookInput,
) (*GetBookOutput, error) {
	userID, err := input.requireUser()
	if err != nil {
		return nil, err
	}

	b, err := h.store.GetBook(ctx, userID, input.ID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, huma.Error404NotFound("book not found")
		}
		return nil, huma.Error500InternalServerError("fetching book failed: " + err.Error())
	}

	return &GetBookOutput{Body: *b}, nil
}

// CreateBook records a newly acquired book. When title is omitted the
// handler enriches the record from the catalog by ISBN.
func (h *BooksHandler) CreateBook(
	ctx context.Context,
	input *CreateBookInput,
) (*CreateBookOutput, error) {
	userID, err := input.requireUser()
	if err != nil {
		return nil, err
	}

	if input.Body.ISBN == "" || input.Body.SKU == "" {
		return nil, huma.Error422UnprocessableEntity("isbn and sku are required")
	}

	b := &domain.Book{
		UserID:        userID,
		ISBN:          input.Body.ISBN,
		SKU:           input.Body.SKU,
		Title:         input.Body.Title,
		Author:        input.Body.Author,
		Description:   input.Body.Description,
		Condition:     domain.Condition(input.Body.Condition),
		PurchasePrice: input.Body.PurchasePrice,
		AskingPrice:   input.Body.AskingPrice,
		Currency:      input.Body.Currency,
		Status:        domain.BookInStock,
	}

	if b.Currency == "" {
		b.Currency = "USD"
	}

	if b.Title == "" && h.catalog != nil {
		h.enrich(ctx, b)
	}

	if b.Title == "" {
		return nil, huma.Error422UnprocessableEntity(
			"title is required when the catalog has no entry for this isbn",
		)
	}

	if err := h.store.CreateBook(ctx, b); err != nil {
		return nil, huma.Error500InternalServerError("creating book failed: " + err.Error())
	}

	return &CreateBookOutput{Status: http.StatusCreated, Body: *b}, nil
}

// enrich fills empty metadata fields from the catalog. Lookup failures are
// tolerated; the caller-supplied fields stand.
func (h *BooksHandler) enrich(ctx context.Context, b *domain.Book) {
	info, err := h.catalog.Lookup(ctx, b.ISBN)
	if err != nil {
		return
	}

	if b.Title == "" {
		b.Title = info.Title
	}
	if b.Author == "" {
		b.Author = info.Author
	}
	if b.Description == "" {
		b.Description = info.Description
	}
	if b.Publisher == "" {
		b.Publisher = info.Publisher
	}
	if b.PublishedAt == "" {
		b.PublishedAt = info.PublishedAt
	}
	if b.CoverURL == "" {
		b.CoverURL = info.CoverURL
	}
}

// UpdateBook updates mutable fields of a book owned by the caller.
func (h *BooksHandler) UpdateBook(
	ctx context.Context,
	input *UpdateBookInput,
) (*UpdateBookOutput, error) {
	userID, err := input.requireUser()
	if err != nil {
		return nil, err
	}

	b, err := h.store.GetBook(ctx, userID, input.ID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, huma.Error404NotFound("book not found")
		}
		return nil, huma.Error500InternalServerError("fetching book failed: " + err.Error())
	}

	if input.Body.Title != "" {
		b.Title = input.Body.Title
	}
	if input.Body.Author != "" {
		b.Author = input.Body.Author
	}
	if input.Body.Description != "" {
		b.Description = input.Body.Description
	}
	if input.Body.Condition != "" {
		b.Condition = domain.Condition(input.Body.Condition)
	}
	if input.Body.PurchasePrice != 0 {
		b.PurchasePrice = input.Body.PurchasePrice
	}
	if input.Body.AskingPrice != 0 {
		b.AskingPrice = input.Body.AskingPrice
	}

	if err := h.store.UpdateBook(ctx, b); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, huma.Error404NotFound("book not found")
		}
		return nil, huma.Error500InternalServerError("updating book failed: " + err.Error())
	}

	return &UpdateBookOutput{Body: *b}, nil
}

// DeleteBook removes a book owned by the caller.
func (h *BooksHandler) DeleteBook(
	ctx context.Context,
	input *DeleteBookInput,
) (*struct{}, error) {
	userID, err := input.requireUser()
	if err != nil {
		return nil, err
	}

	if err := h.store.DeleteBook(ctx, userID, input.ID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, huma.Error404NotFound("book not found")
		}
		return nil, huma.Error500InternalServerError("deleting book failed: " + err.Error())
	}

	return nil, nil
}

// RegisterBookRoutes registers book endpoints with the Huma API.
func RegisterBookRoutes(api huma.API, h *BooksHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "list-books",
		Method:      http.MethodGet,
		Path:        "/api/v1/books",
		Summary:     "List books",
		Description: "Returns the caller's books with optional status, condition, and text filters.",
		Tags:        []string{"books"},
	}, h.ListBooks)

	huma.Register(api, huma.Operation{
		OperationID: "get-book",
		Method:      http.MethodGet,
		Path:        "/api/v1/books/{id}",
		Summary:     "Get a book by ID",
		Description: "Returns a single book by its UUID.",
		Tags:        []string{"books"},
		Errors:      []int{http.StatusNotFound},
	}, h.GetBook)

	huma.Register(api, huma.Operation{
		OperationID: "create-book",
		Method:      http.MethodPost,
		Path:        "/api/v1/books",
		Summary:     "Create a book",
		Description: "Records a newly acquired book, enriching metadata from the catalog by ISBN.",
		Tags:        []string{"books"},
		Errors:      []int{http.StatusUnprocessableEntity},
	}, h.CreateBook)

	huma.Register(api, huma.Operation{
		OperationID: "update-book",
		Method:      http.MethodPut,
		Path:        "/api/v1/books/{id}",
		Summary:     "Update a book",
		Description: "Updates mutable fields of an existing book.",
		Tags:        []string{"books"},
		Errors:      []int{http.StatusNotFound},
	}, h.UpdateBook)

	huma.Register(api, huma.Operation{
		OperationID:   "delete-book",
		Method:        http.MethodDelete,
		Path:          "/api/v1/books/{id}",
		Summary:       "Delete a book",
		Description:   "Deletes a book by its UUID.",
		Tags:          []string{"books"},
		DefaultStatus: http.StatusNoContent,
		Errors:        []int{http.StatusNotFound},
	}, h.DeleteBook)
}
