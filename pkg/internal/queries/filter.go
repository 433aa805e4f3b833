package queries

import (
	"net/url"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/samber/lo"
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

var knownStatuses = []string{"published", "draft"}

// FilterState is the complete, serializable description of a list query.
// Two identical states always yield the same page of results; nothing
// hidden on the client side may influence them.
type FilterState struct {
	Page     int    `json:"page"`
	Limit    int    `json:"limit"`
	Search   string `json:"search"`
	Category uint   `json:"category"`
	Year     int    `json:"year"`
	Status   string `json:"status"`

	// Seq is an opaque generation token echoed back on list responses so
	// the caller can discard results that lost a race with a newer query.
	Seq uint64 `json:"seq"`
}

func DefaultFilterState() FilterState {
	return FilterState{Page: 1, Limit: DefaultPageSize}
}

// ParseFilterState rebuilds the state from request query parameters, which
// keeps every list URL shareable and bookmarkable.
func ParseFilterState(c *fiber.Ctx) FilterState {
	filter := DefaultFilterState()

	filter.Page = max(c.QueryInt("page", 1), 1)
	filter.Limit = c.QueryInt("limit", DefaultPageSize)
	if filter.Limit <= 0 || filter.Limit > MaxPageSize {
		filter.Limit = DefaultPageSize
	}

	filter.Search = c.Query("search")
	filter.Category = uint(max(c.QueryInt("category", 0), 0))
	filter.Year = max(c.QueryInt("year", 0), 0)
	if status := c.Query("status"); lo.Contains(knownStatuses, status) {
		filter.Status = status
	}

	filter.Seq, _ = strconv.ParseUint(c.Query("seq"), 10, 64)

	return filter
}

func (f FilterState) Take() int {
	return f.Limit
}

func (f FilterState) Offset() int {
	return (f.Page - 1) * f.Limit
}

// Every setter below resets the page: a stale page number under a new
// filter is a defined bug class, not a nicety.

func (f *FilterState) SetSearch(search string) {
	if f.Search == search {
		return
	}
	f.Search = search
	f.Page = 1
}

func (f *FilterState) SetCategory(category uint) {
	if f.Category == category {
		return
	}
	f.Category = category
	f.Page = 1
}

func (f *FilterState) SetYear(year int) {
	if f.Year == year {
		return
	}
	f.Year = year
	f.Page = 1
}

func (f *FilterState) SetStatus(status string) {
	if f.Status == status {
		return
	}
	f.Status = status
	f.Page = 1
}

func (f *FilterState) SetPage(page int) {
	f.Page = max(page, 1)
}

// Values serializes the state into query parameters; zero-valued fields are
// omitted so bookmarked URLs stay short.
func (f FilterState) Values() url.Values {
	values := url.Values{}
	if f.Page > 1 {
		values.Set("page", strconv.Itoa(f.Page))
	}
	if f.Limit > 0 && f.Limit != DefaultPageSize {
		values.Set("limit", strconv.Itoa(f.Limit))
	}
	if len(f.Search) > 0 {
		values.Set("search", f.Search)
	}
	if f.Category > 0 {
		values.Set("category", strconv.FormatUint(uint64(f.Category), 10))
	}
	if f.Year > 0 {
		values.Set("year", strconv.Itoa(f.Year))
	}
	if len(f.Status) > 0 {
		values.Set("status", f.Status)
	}
	return values
}

// FromValues is the inverse of Values.
func FromValues(values url.Values) FilterState {
	filter := DefaultFilterState()

	if page, err := strconv.Atoi(values.Get("page")); err == nil {
		filter.SetPage(page)
	}
	if limit, err := strconv.Atoi(values.Get("limit")); err == nil && limit > 0 && limit <= MaxPageSize {
		filter.Limit = limit
	}
	filter.Search = values.Get("search")
	if category, err := strconv.ParseUint(values.Get("category"), 10, 64); err == nil {
		filter.Category = uint(category)
	}
	if year, err := strconv.Atoi(values.Get("year")); err == nil && year > 0 {
		filter.Year = year
	}
	if status := values.Get("status"); lo.Contains(knownStatuses, status) {
		filter.Status = status
	}

	return filter
}

// Pagination is the envelope every list response carries.
type Pagination struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int   `json:"pages"`
}

func Paginate(filter FilterState, total int64) Pagination {
	pages := int((total + int64(filter.Limit) - 1) / int64(filter.Limit))
	return Pagination{
		Page:  filter.Page,
		Limit: filter.Limit,
		Total: total,
		Pages: pages,
	}
}
