// Package listing is the shared filter/sort/paginate layer behind every list
// endpoint. Product, category, and order listings all build a gorm query and
// hand it here instead of repeating count/offset/metadata logic per entity.
package listing

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const (
	AdminPageSize = 15
	StorePageSize = 12
)

// Params describes one page request.
type Params struct {
	Search        string   // free-text term, empty to skip
	SearchColumns []string // columns the term is matched against with LIKE
	SortBy        []string // applied in order, e.g. "sort_order asc", "name asc"
	Page          int      // 1-based
	PerPage       int
}

// FromQuery reads the page number and search term from the request.
func FromQuery(c *gin.Context, perPage int) Params {
	page, err := strconv.Atoi(c.Query("page"))
	if err != nil || page < 1 {
		page = 1
	}
	return Params{
		Search:  c.Query("search"),
		Page:    page,
		PerPage: perPage,
	}
}

// Page is one stable-ordered page of results plus pagination metadata.
type Page[T any] struct {
	Data     []T   `json:"data"`
	Total    int64 `json:"total"`
	Page     int   `json:"page"`
	PerPage  int   `json:"per_page"`
	LastPage int   `json:"last_page"`
}

// Paginate applies search, ordering, and paging to an already-filtered query.
// Ties must be broken by the caller's sort keys so pagination is reproducible
// across requests.
func Paginate[T any](q *gorm.DB, p Params) (*Page[T], error) {
	if p.Search != "" && len(p.SearchColumns) > 0 {
		conds := make([]string, len(p.SearchColumns))
		args := make([]interface{}, len(p.SearchColumns))
		for i, col := range p.SearchColumns {
			conds[i] = col + " LIKE ?"
			args[i] = "%" + p.Search + "%"
		}
		q = q.Where(strings.Join(conds, " OR "), args...)
	}

	var total int64
	if err := q.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, err
	}

	for _, sort := range p.SortBy {
		q = q.Order(sort)
	}

	if p.Page < 1 {
		p.Page = 1
	}
	var data []T
	err := q.Offset((p.Page - 1) * p.PerPage).Limit(p.PerPage).Find(&data).Error
	if err != nil {
		return nil, err
	}

	lastPage := int((total + int64(p.PerPage) - 1) / int64(p.PerPage))
	if lastPage < 1 {
		lastPage = 1
	}
	return &Page[T]{
		Data:     data,
		Total:    total,
		Page:     p.Page,
		PerPage:  p.PerPage,
		LastPage: lastPage,
	}, nil
}
