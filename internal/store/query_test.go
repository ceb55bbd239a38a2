package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestBookQuery_ToSQL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		query         BookQuery
		wantCountSQL  string
		wantArgs      []any
		wantDataHas   []string // substrings that must appear in dataSQL
		wantDataNotIn []string // substrings that must NOT appear
	}{
		{
			name:  "empty query uses defaults",
			query: BookQuery{},
			wantDataHas: []string{
				"FROM books",
				"WHERE user_id = $1",
				"ORDER BY created_at DESC",
				"LIMIT 50",
				"OFFSET 0",
			},
			wantCountSQL: "SELECT COUNT(*) FROM books WHERE user_id = $1",
			wantArgs:     []any{"user-1"},
		},
		{
			name: "status filter",
			query: BookQuery{
				Status: ptr("in_stock"),
			},
			wantDataHas: []string{
				"WHERE user_id = $1 AND status = $2",
				"LIMIT 50",
			},
			wantCountSQL: "SELECT COUNT(*) FROM books WHERE user_id = $1 AND status = $2",
			wantArgs:     []any{"user-1", "in_stock"},
		},
		{
			name: "condition filter",
			query: BookQuery{
				Condition: ptr("very_good"),
			},
			wantDataHas:  []string{"condition = $2"},
			wantCountSQL: "SELECT COUNT(*) FROM books WHERE user_id = $1 AND condition = $2",
			wantArgs:     []any{"user-1", "very_good"},
		},
		{
			name: "isbn filter",
			query: BookQuery{
				ISBN: ptr("9780134190440"),
			},
			wantDataHas:  []string{"isbn = $2"},
			wantCountSQL: "SELECT COUNT(*) FROM books WHERE user_id = $1 AND isbn = $2",
			wantArgs:     []any{"user-1", "9780134190440"},
		},
		{
			name: "search matches title and author with one parameter",
			query: BookQuery{
				Search: ptr("herbert"),
			},
			wantDataHas:  []string{"(title ILIKE $2 OR author ILIKE $2)"},
			wantCountSQL: "SELECT COUNT(*) FROM books WHERE user_id = $1 AND (title ILIKE $2 OR author ILIKE $2)",
			wantArgs:     []any{"user-1", "%herbert%"},
		},
		{
			name: "multiple filters with correct parameter numbering",
			query: BookQuery{
				Status:    ptr("listed"),
				Condition: ptr("good"),
				Search:    ptr("go"),
			},
			wantDataHas: []string{
				"user_id = $1",
				"status = $2",
				"condition = $3",
				"(title ILIKE $4 OR author ILIKE $4)",
				" AND ",
			},
			wantCountSQL: "SELECT COUNT(*) FROM books WHERE user_id = $1 AND status = $2 AND condition = $3 AND (title ILIKE $4 OR author ILIKE $4)",
			wantArgs:     []any{"user-1", "listed", "good", "%go%"},
		},
		{
			name: "custom limit and offset",
			query: BookQuery{
				Limit:  25,
				Offset: 75,
			},
			wantDataHas: []string{"LIMIT 25", "OFFSET 75"},
			wantArgs:    []any{"user-1"},
		},
		{
			name: "limit capped at max",
			query: BookQuery{
				Limit: 10000,
			},
			wantDataHas: []string{"LIMIT 500"},
			wantArgs:    []any{"user-1"},
		},
		{
			name: "negative offset clamped to zero",
			query: BookQuery{
				Offset: -10,
			},
			wantDataHas: []string{"OFFSET 0"},
			wantArgs:    []any{"user-1"},
		},
		{
			name: "order by price",
			query: BookQuery{
				OrderBy: "price",
			},
			wantDataHas: []string{"ORDER BY asking_price ASC"},
			wantArgs:    []any{"user-1"},
		},
		{
			name: "order by title",
			query: BookQuery{
				OrderBy: "title",
			},
			wantDataHas: []string{"ORDER BY title ASC"},
			wantArgs:    []any{"user-1"},
		},
		{
			name: "unknown order by falls back to default",
			query: BookQuery{
				OrderBy: "price; DROP TABLE books",
			},
			wantDataHas:   []string{"ORDER BY created_at DESC"},
			wantDataNotIn: []string{"DROP TABLE"},
			wantArgs:      []any{"user-1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			dataSQL, countSQL, args := tt.query.ToSQL("user-1")

			for _, want := range tt.wantDataHas {
				assert.Contains(t, dataSQL, want)
			}
			for _, notWant := range tt.wantDataNotIn {
				assert.NotContains(t, dataSQL, notWant)
			}
			if tt.wantCountSQL != "" {
				assert.Equal(t, tt.wantCountSQL, countSQL)
			}
			require.Equal(t, tt.wantArgs, args)
		})
	}
}
