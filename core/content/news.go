package content

import (
	"context"
	"strconv"
	"time"

	"github.com/wishcowork/sitekit/core/client"
	"github.com/wishcowork/sitekit/core/resolver"
	"github.com/wishcowork/sitekit/core/settings"
	"github.com/wishcowork/sitekit/pkg/slug"
)

// NewsQuery narrows a news listing.
type NewsQuery struct {
	IncludeUnpublished bool
	Category           string
	Featured           bool
	Search             string
	Limit              int
	Offset             int
}

func (q NewsQuery) filter() resolver.Filter {
	return resolver.Filter{
		IncludeUnpublished: q.IncludeUnpublished,
		Category:           q.Category,
		Featured:           q.Featured,
		Search:             q.Search,
		Limit:              q.Limit,
		Offset:             q.Offset,
	}
}

// NewsFeed serves press and industry updates and their admin CRUD.
type NewsFeed struct {
	res *resolver.Resolver[News]
}

// NewNewsFeed builds the news service over the shared API client and settings.
func NewNewsFeed(api *client.Client, svc *settings.Service) *NewsFeed {
	desc := resolver.Descriptor[News]{
		Resource: "news",
		Singular: "news",
		ID:       func(n News) string { return strconv.Itoa(n.ID) },
		SetID: func(n *News, id string) {
			if v, err := strconv.Atoi(id); err == nil {
				n.ID = v
			}
		},
		Match: func(n News, f resolver.Filter) bool {
			if !n.IsPublished && !f.IncludeUnpublished {
				return false
			}
			if !resolver.EqualFold(f.Category, n.Category) {
				return false
			}
			if f.Featured && !n.IsFeatured {
				return false
			}
			return resolver.ContainsFold(f.Search, n.Title, n.Summary, n.Content, n.Source)
		},
		Ident: func(n News, ident string) bool {
			return resolver.EqualFold(ident, n.Slug)
		},
		DisplayOrder:    func(n News) int { return n.DisplayOrder },
		PathIdentifiers: true,
		Seed:            SeedNews(),
	}
	return &NewsFeed{res: resolver.New(desc, api, svc)}
}

// List returns news items matching the query, ordered for display.
func (s *NewsFeed) List(ctx context.Context, q NewsQuery) ([]News, error) {
	return s.res.List(ctx, q.filter())
}

// Featured returns up to limit items flagged for the landing page.
func (s *NewsFeed) Featured(ctx context.Context, limit int) ([]News, error) {
	return s.List(ctx, NewsQuery{Featured: true, Limit: limit})
}

// ByCategory returns published items in the given category.
func (s *NewsFeed) ByCategory(ctx context.Context, category string, limit int) ([]News, error) {
	return s.List(ctx, NewsQuery{Category: category, Limit: limit})
}

// Search matches query against title, summary, body, and source.
func (s *NewsFeed) Search(ctx context.Context, query string, limit int) ([]News, error) {
	return s.List(ctx, NewsQuery{Search: query, Limit: limit})
}

// Get resolves a news item by numeric id or slug.
func (s *NewsFeed) Get(ctx context.Context, identifier string) (News, error) {
	return s.res.GetByID(ctx, identifier)
}

// Create submits a new item, deriving slug and publication date as needed.
func (s *NewsFeed) Create(ctx context.Context, n News) (News, error) {
	if n.Slug == "" {
		n.Slug = slug.Make(n.Title)
	}
	if n.IsPublished && n.PublishedAt == "" {
		n.PublishedAt = time.Now().Format("2006-01-02")
	}
	return s.res.Create(ctx, n)
}

// Update replaces the item with the given id or slug.
func (s *NewsFeed) Update(ctx context.Context, identifier string, n News) error {
	return s.res.Update(ctx, identifier, n)
}

// Delete removes a news item.
func (s *NewsFeed) Delete(ctx context.Context, id int) error {
	return s.res.Delete(ctx, strconv.Itoa(id))
}
