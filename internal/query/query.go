// Package query turns raw HTTP query parameters into a driver-neutral
// listing specification: a filter, a composite sort and a page window.
package query

import (
	"math"
	"net/url"
	"strconv"
	"strings"
)

// Pagination defaults applied when the client sends nothing usable.
const (
	DefaultPage  = 1
	DefaultLimit = 10
)

// SortField is one member of a composite sort, applied left to right.
type SortField struct {
	Field string
	Desc  bool
}

// ProductQuery describes one listing request. Nil price bounds mean
// unbounded on that side.
type ProductQuery struct {
	Category string
	MinPrice *float64
	MaxPrice *float64
	Sort     []SortField
	Page     int
	Limit    int
}

// ParseProductQuery coerces raw query parameters into a ProductQuery.
// Non-numeric or non-positive page and limit values fall back to the
// defaults, unparseable price bounds are ignored, and an empty sort falls
// back to newest first. The limit is intentionally not capped.
func ParseProductQuery(values url.Values) ProductQuery {
	q := ProductQuery{
		Category: values.Get("category"),
		Sort:     parseSort(values.Get("sort")),
		Page:     positiveInt(values.Get("page"), DefaultPage),
		Limit:    positiveInt(values.Get("limit"), DefaultLimit),
	}
	if v, err := strconv.ParseFloat(values.Get("minPrice"), 64); err == nil {
		q.MinPrice = &v
	}
	if v, err := strconv.ParseFloat(values.Get("maxPrice"), 64); err == nil {
		q.MaxPrice = &v
	}
	return q
}

// Skip returns the number of matching records that precede the requested
// page. The product saturates at math.MaxInt so oversized page and limit
// values land past the end of any result set instead of wrapping negative.
func (q ProductQuery) Skip() int {
	page := q.Page - 1
	if page <= 0 || q.Limit <= 0 {
		return 0
	}
	if page > math.MaxInt/q.Limit {
		return math.MaxInt
	}
	return page * q.Limit
}

// TotalPages returns how many pages of size Limit the total spans.
func (q ProductQuery) TotalPages(total int64) int {
	if total <= 0 || q.Limit <= 0 {
		return 0
	}
	limit := int64(q.Limit)
	pages := total / limit
	if total%limit != 0 {
		pages++
	}
	return int(pages)
}

// parseSort interprets a comma-separated field list where a leading '-'
// marks that field descending, e.g. "price,-createdAt".
func parseSort(raw string) []SortField {
	var fields []SortField
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		desc := strings.HasPrefix(part, "-")
		name := strings.TrimPrefix(part, "-")
		if name == "" {
			continue
		}
		fields = append(fields, SortField{Field: name, Desc: desc})
	}
	if len(fields) == 0 {
		return []SortField{{Field: "createdAt", Desc: true}}
	}
	return fields
}

// positiveInt parses raw as a positive integer, returning def when the value
// is missing, malformed or not positive.
func positiveInt(raw string, def int) int {
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return def
	}
	return n
}
