package store

import (
	"fmt"
	"strings"
)

const (
	defaultLimit = 50
	maxLimit     = 500

	orderByCreated = "created_at"
	orderByPrice   = "price"
	orderByTitle   = "title"
)

// validOrderBy maps allowed OrderBy values to their SQL column expressions.
var validOrderBy = map[string]string{
	orderByCreated: "created_at DESC",
	orderByPrice:   "asking_price ASC",
	orderByTitle:   "title ASC",
}

const defaultOrderBy = "created_at DESC"

const baseBooksSelect = `SELECT id, user_id, isbn, sku,
	title, COALESCE(author, ''), COALESCE(description, ''), COALESCE(publisher, ''),
	COALESCE(published_at, ''), COALESCE(cover_url, ''), condition,
	purchase_price, asking_price, currency,
	status, created_at, updated_at
FROM books`

const countBooksSelect = "SELECT COUNT(*) FROM books"

// ToSQL builds the WHERE clause, ORDER BY, LIMIT, and OFFSET for a book
// query scoped to userID. It returns two SQL strings (one for the data
// query, one for the count query) and the positional parameters.
func (q *BookQuery) ToSQL(userID string) (dataSQL, countSQL string, args []any) {
	conditions := []string{"user_id = $1"}
	args = append(args, userID)
	paramIdx := 2

	if q.Status != nil {
		conditions = append(conditions, fmt.Sprintf("status = $%d", paramIdx))
		args = append(args, *q.Status)
		paramIdx++
	}

	if q.Condition != nil {
		conditions = append(conditions, fmt.Sprintf("condition = $%d", paramIdx))
		args = append(args, *q.Condition)
		paramIdx++
	}

	if q.ISBN != nil {
		conditions = append(conditions, fmt.Sprintf("isbn = $%d", paramIdx))
		args = append(args, *q.ISBN)
		paramIdx++
	}

	if q.Search != nil {
		conditions = append(conditions, fmt.Sprintf(
			"(title ILIKE $%d OR author ILIKE $%d)", paramIdx, paramIdx,
		))
		args = append(args, "%"+*q.Search+"%")
		paramIdx++
	}

	whereClause := " WHERE " + strings.Join(conditions, " AND ")

	// Order by
	orderClause := defaultOrderBy
	if q.OrderBy != "" {
		if col, ok := validOrderBy[q.OrderBy]; ok {
			orderClause = col
		}
	}

	// Limit
	limit := q.Limit
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	offset := max(q.Offset, 0)

	dataSQL = fmt.Sprintf(
		"%s%s ORDER BY %s LIMIT %d OFFSET %d",
		baseBooksSelect, whereClause, orderClause, limit, offset,
	)

	countSQL = countBooksSelect + whereClause

	return dataSQL, countSQL, args
}
