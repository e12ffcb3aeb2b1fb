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

// BlogQuery narrows a blog listing.
type BlogQuery struct {
	IncludeUnpublished bool
	Category           string
	Featured           bool
	Search             string
	Limit              int
	Offset             int
}

func (q BlogQuery) filter() resolver.Filter {
	return resolver.Filter{
		IncludeUnpublished: q.IncludeUnpublished,
		Category:           q.Category,
		Featured:           q.Featured,
		Search:             q.Search,
		Limit:              q.Limit,
		Offset:             q.Offset,
	}
}

// Blogs serves the editorial article listing and its admin CRUD.
type Blogs struct {
	res *resolver.Resolver[Blog]
}

// NewBlogs builds the blog service over the shared API client and settings.
func NewBlogs(api *client.Client, svc *settings.Service) *Blogs {
	desc := resolver.Descriptor[Blog]{
		Resource: "blogs",
		Singular: "blog",
		ID:       func(b Blog) string { return strconv.Itoa(b.ID) },
		SetID: func(b *Blog, id string) {
			if n, err := strconv.Atoi(id); err == nil {
				b.ID = n
			}
		},
		Match: func(b Blog, f resolver.Filter) bool {
			if !b.IsPublished && !f.IncludeUnpublished {
				return false
			}
			if !resolver.EqualFold(f.Category, b.Category) {
				return false
			}
			if f.Featured && !b.IsFeatured {
				return false
			}
			return resolver.ContainsFold(f.Search, b.Title, b.Excerpt, b.Content, b.Category)
		},
		Ident: func(b Blog, ident string) bool {
			return resolver.EqualFold(ident, b.Slug)
		},
		DisplayOrder:    func(b Blog) int { return b.DisplayOrder },
		PathIdentifiers: true,
		Seed:            SeedBlogs(),
	}
	return &Blogs{res: resolver.New(desc, api, svc)}
}

// List returns articles matching the query, ordered for display.
func (s *Blogs) List(ctx context.Context, q BlogQuery) ([]Blog, error) {
	return s.res.List(ctx, q.filter())
}

// Featured returns up to limit articles flagged for the landing page.
func (s *Blogs) Featured(ctx context.Context, limit int) ([]Blog, error) {
	return s.List(ctx, BlogQuery{Featured: true, Limit: limit})
}

// ByCategory returns published articles in the given category.
func (s *Blogs) ByCategory(ctx context.Context, category string, limit int) ([]Blog, error) {
	return s.List(ctx, BlogQuery{Category: category, Limit: limit})
}

// Search matches query against title, excerpt, body, and category.
func (s *Blogs) Search(ctx context.Context, query string, limit int) ([]Blog, error) {
	return s.List(ctx, BlogQuery{Search: query, Limit: limit})
}

// Get resolves an article by numeric id or slug.
func (s *Blogs) Get(ctx context.Context, identifier string) (Blog, error) {
	return s.res.GetByID(ctx, identifier)
}

// Create submits a new article. A missing slug is derived from the title,
// and a missing publication date defaults to today when publishing.
func (s *Blogs) Create(ctx context.Context, b Blog) (Blog, error) {
	if b.Slug == "" {
		b.Slug = slug.Make(b.Title)
	}
	if b.IsPublished && b.PublishedAt == "" {
		b.PublishedAt = time.Now().Format("2006-01-02")
	}
	return s.res.Create(ctx, b)
}

// Update replaces the article with the given id or slug.
func (s *Blogs) Update(ctx context.Context, identifier string, b Blog) error {
	return s.res.Update(ctx, identifier, b)
}

// Delete removes an article.
func (s *Blogs) Delete(ctx context.Context, id int) error {
	return s.res.Delete(ctx, strconv.Itoa(id))
}
