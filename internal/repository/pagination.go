package repository

import (
	"strings"

	"gorm.io/gorm"
)

// Page is the envelope every list endpoint returns.
type Page[T any] struct {
	Total int64 `json:"total"`
	Size  int   `json:"size"`
	Pages int   `json:"pages"`
	Items []T   `json:"items"`
}

// ListQuery carries the list parameters shared by every resource. Handlers
// are responsible for bounds (page >= 1, size in [1,100]).
type ListQuery struct {
	Page      int
	Size      int
	Search    string
	SortBy    string
	SortOrder string
}

// Paginate counts the rows matching query, then materializes the requested
// page slice. selectExpr is applied only to the page fetch so joined
// projections do not leak into the count; order must already be resolved
// against a column allow-list. A page past the end yields an empty items
// slice with total/pages still filled in.
func Paginate[T any](query *gorm.DB, selectExpr, order string, page, size int) (*Page[T], error) {
	var total int64
	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, err
	}

	pages := 0
	if size > 0 {
		pages = int((total + int64(size) - 1) / int64(size))
	}

	items := make([]T, 0, size)
	if size > 0 {
		q := query.Session(&gorm.Session{})
		if selectExpr != "" {
			q = q.Select(selectExpr)
		}
		if order != "" {
			q = q.Order(order)
		}
		if err := q.Offset((page - 1) * size).Limit(size).Find(&items).Error; err != nil {
			return nil, err
		}
	}

	return &Page[T]{Total: total, Size: size, Pages: pages, Items: items}, nil
}

// OrderClause resolves sort_by against the per-resource column allow-list.
// Unknown or empty sort_by falls back (empty fallback means no ordering,
// matching the store's insertion order).
func OrderClause(allowed map[string]string, sortBy, sortOrder, fallback string) string {
	col, ok := allowed[sortBy]
	if !ok {
		return fallback
	}
	if strings.EqualFold(sortOrder, "desc") {
		return col + " DESC"
	}
	return col + " ASC"
}

// applySearch adds a case-insensitive substring predicate over columns.
// LOWER/LIKE keeps the clause portable between postgres and sqlite.
func applySearch(query *gorm.DB, term string, columns ...string) *gorm.DB {
	if term == "" || len(columns) == 0 {
		return query
	}
	pattern := "%" + strings.ToLower(term) + "%"
	conds := make([]string, len(columns))
	args := make([]interface{}, len(columns))
	for i, col := range columns {
		conds[i] = "LOWER(" + col + ") LIKE ?"
		args[i] = pattern
	}
	return query.Where("("+strings.Join(conds, " OR ")+")", args...)
}
