package client

import (
	"context"
	"net/url"
	"strconv"

	domain "github.com/bookmint/bookmint/pkg/types"
)

// bookRequest contains only the fields the API accepts for create/update.
type bookRequest struct {
	ISBN          string  `json:"isbn,omitempty"`
	SKU           string  `json:"sku,omitempty"`
	Title         string  `json:"title,omitempty"`
	Author        string  `json:"author,omitempty"`
	Description   string  `json:"description,omitempty"`
	Condition     string  `json:"condition,omitempty"`
	PurchasePrice float64 `json:"purchase_price,omitempty"`
	AskingPrice   float64 `json:"asking_price,omitempty"`
	Currency      string  `json:"currency,omitempty"`
}

// BookList is the paginated response for listing books.
type BookList struct {
	Books  []domain.Book `json:"books"`
	Total  int           `json:"total"`
	Limit  int           `json:"limit"`
	Offset int           `json:"offset"`
}

// BookFilter holds optional query filters for ListBooks.
type BookFilter struct {
	Status    string
	Condition string
	ISBN      string
	Search    string
	Limit     int
	Offset    int
}

// ListBooks returns the caller's books, optionally filtered.
func (c *Client) ListBooks(ctx context.Context, f BookFilter) (*BookList, error) {
	params := url.Values{}
	if f.Status != "" {
		params.Set("status", f.Status)
	}
	if f.Condition != "" {
		params.Set("condition", f.Condition)
	}
	if f.ISBN != "" {
		params.Set("isbn", f.ISBN)
	}
	if f.Search != "" {
		params.Set("search", f.Search)
	}
	if f.Limit > 0 {
		params.Set("limit", strconv.Itoa(f.Limit))
	}
	if f.Offset > 0 {
		params.Set("offset", strconv.Itoa(f.Offset))
	}

	path := "/api/v1/books"
	if len(params) > 0 {
		path += "?" + params.Encode()
	}

	var list BookList
	if err := c.get(ctx, path, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// GetBook returns a single book by ID.
func (c *Client) GetBook(ctx context.Context, id string) (*domain.Book, error) {
	var b domain.Book
	if err := c.get(ctx, "/api/v1/books/"+id, &b); err != nil {
		return nil, err
	}
	return &b, nil
}

// CreateBook records a newly acquired book.
func (c *Client) CreateBook(ctx context.Context, b *domain.Book) (*domain.Book, error) {
	var created domain.Book
	req := bookRequest{
		ISBN:          b.ISBN,
		SKU:           b.SKU,
		Title:         b.Title,
		Author:        b.Author,
		Description:   b.Description,
		Condition:     string(b.Condition),
		PurchasePrice: b.PurchasePrice,
		AskingPrice:   b.AskingPrice,
		Currency:      b.Currency,
	}
	if err := c.post(ctx, "/api/v1/books", req, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateBook updates an existing book.
func (c *Client) UpdateBook(ctx context.Context, b *domain.Book) (*domain.Book, error) {
	var updated domain.Book
	req := bookRequest{
		Title:         b.Title,
		Author:        b.Author,
		Description:   b.Description,
		Condition:     string(b.Condition),
		PurchasePrice: b.PurchasePrice,
		AskingPrice:   b.AskingPrice,
	}
	if err := c.put(ctx, "/api/v1/books/"+b.ID, req, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteBook deletes a book by ID.
func (c *Client) DeleteBook(ctx context.Context, id string) error {
	return c.del(ctx, "/api/v1/books/"+id, nil)
}
