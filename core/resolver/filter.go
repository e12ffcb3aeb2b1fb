package resolver

import (
	"net/url"
	"strconv"
	"strings"
)

// Filter carries the predicate fields a list or lookup can narrow by. In
// live mode fields map 1:1 to query parameters; in mock mode they drive the
// resource's Match predicate.
type Filter struct {
	ID       string
	Slug     string
	Category string
	City     string
	Featured bool
	Search   string
	// IncludeUnpublished (blogs/news) and IncludeInactive (events/pricing)
	// expose records normally hidden from public listings.
	IncludeUnpublished bool
	IncludeInactive    bool
	// Upcoming restricts events to those not yet held.
	Upcoming bool
	// Active is the tri-state visibility flag of the pricing resources:
	// nil omits the parameter, otherwise "active=true|false" is sent.
	Active *bool
	Limit  int
	Offset int
}

// queryValues maps the filter to backend query parameters. Zero values are
// omitted.
func (f Filter) queryValues() url.Values {
	q := url.Values{}
	set := func(key, val string) {
		if val != "" {
			q.Set(key, val)
		}
	}
	set("id", f.ID)
	set("slug", f.Slug)
	set("category", f.Category)
	set("city", f.City)
	set("search", f.Search)
	if f.Featured {
		q.Set("featured", "true")
	}
	if f.IncludeUnpublished {
		q.Set("includeUnpublished", "true")
	}
	if f.IncludeInactive {
		q.Set("includeInactive", "true")
	}
	if f.Upcoming {
		q.Set("upcoming", "true")
	}
	if f.Active != nil {
		q.Set("active", strconv.FormatBool(*f.Active))
	}
	if f.Limit > 0 {
		q.Set("limit", strconv.Itoa(f.Limit))
	}
	if f.Offset > 0 {
		q.Set("offset", strconv.Itoa(f.Offset))
	}
	if len(q) == 0 {
		return nil
	}
	return q
}

// EqualFold is the case-insensitive equality used for category, city, and
// slug matching. An empty want matches anything.
func EqualFold(want, got string) bool {
	return want == "" || strings.EqualFold(want, got)
}

// ContainsFold reports whether any of the haystacks contains the needle,
// case-insensitively. An empty needle matches.
func ContainsFold(needle string, haystacks ...string) bool {
	if needle == "" {
		return true
	}
	needle = strings.ToLower(needle)
	for _, h := range haystacks {
		if strings.Contains(strings.ToLower(h), needle) {
			return true
		}
	}
	return false
}

// slugKeyMatches builds the tri-key comparison for a record's slug key.
// All three components must match, case-insensitively; no partial matches.
func slugKeyMatches(recCity, recCategory, recSlug string) func(city, category, slug string) bool {
	return func(city, category, slug string) bool {
		return strings.EqualFold(recCity, city) &&
			strings.EqualFold(recCategory, category) &&
			strings.EqualFold(recSlug, slug)
	}
}

// paginate applies offset and limit to an already filtered collection.
func paginate[T any](f Filter, items []T) []T {
	if f.Offset > 0 {
		if f.Offset >= len(items) {
			return nil
		}
		items = items[f.Offset:]
	}
	if f.Limit > 0 && f.Limit < len(items) {
		items = items[:f.Limit]
	}
	return items
}
