package pagination

import (
	"math"
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	DefaultPage  = 1
	DefaultLimit = 100
	MaxLimit     = 1000
	MinLimit     = 1
)

// Params holds validated pagination parameters
type Params struct {
	Page   int
	Limit  int
	Offset int
}

// Meta describes the page that was returned.
type Meta struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
}

// Parse extracts and validates page/limit from query parameters
func Parse(c *gin.Context) Params {
	page, _ := strconv.Atoi(c.DefaultQuery("page", strconv.Itoa(DefaultPage)))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(DefaultLimit)))

	if page < 1 {
		page = DefaultPage
	}
	if limit < MinLimit {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	// Keep (page-1)*limit within int.
	if maxPage := math.MaxInt/limit + 1; page > maxPage {
		page = maxPage
	}

	return Params{
		Page:   page,
		Limit:  limit,
		Offset: (page - 1) * limit,
	}
}

// Slice returns the page of items selected by p. Pages past the end are empty.
func Slice[T any](items []T, p Params) []T {
	if p.Offset < 0 || p.Offset >= len(items) {
		return items[:0:0]
	}
	end := min(p.Offset+p.Limit, len(items))
	return items[p.Offset:end]
}

// MetaFor builds the Meta of p over total items.
func MetaFor(p Params, total int) Meta {
	return Meta{Page: p.Page, Limit: p.Limit, Total: total}
}
