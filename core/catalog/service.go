package catalog

import (
	"context"
	"log/slog"

	"github.com/wishcowork/sitekit/core/client"
	"github.com/wishcowork/sitekit/core/resolver"
	"github.com/wishcowork/sitekit/core/settings"
	"github.com/wishcowork/sitekit/pkg/slug"
)

// Service exposes the property catalog: filtered listing reads that work
// offline, SEO URL resolution, and the admin mutations.
type Service struct {
	res *resolver.Resolver[Property]
}

// Option configures a Service.
type Option func(*options)

type options struct {
	log *slog.Logger
}

func WithLogger(log *slog.Logger) Option {
	return func(o *options) { o.log = log }
}

// NewService builds the catalog over the shared API client and settings.
func NewService(api *client.Client, svc *settings.Service, opts ...Option) *Service {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	desc := resolver.Descriptor[Property]{
		Resource: "properties",
		Singular: "property",
		ID:       func(p Property) string { return p.ID },
		SetID:    func(p *Property, id string) { p.ID = id },
		Match: func(p Property, f resolver.Filter) bool {
			if !resolver.EqualFold(f.Category, p.Category) || !resolver.EqualFold(f.City, p.City) {
				return false
			}
			if f.Featured && !p.Featured {
				return false
			}
			return resolver.ContainsFold(f.Search, p.Title, p.City, p.Category, p.Description)
		},
		SlugKey: func(p Property) (string, string, string) {
			return p.City, p.Category, p.Slug
		},
		Seed: SeedProperties(),
	}

	var resOpts []resolver.Option[Property]
	if o.log != nil {
		resOpts = append(resOpts, resolver.WithLogger[Property](o.log))
	}
	return &Service{res: resolver.New(desc, api, svc, resOpts...)}
}

// All returns every listing.
func (s *Service) All(ctx context.Context) ([]Property, error) {
	return s.res.List(ctx, resolver.Filter{})
}

// ByCategory returns listings in the given category slug.
func (s *Service) ByCategory(ctx context.Context, category string) ([]Property, error) {
	return s.res.List(ctx, resolver.Filter{Category: category})
}

// ByCity returns listings in the given city slug.
func (s *Service) ByCity(ctx context.Context, city string) ([]Property, error) {
	return s.res.List(ctx, resolver.Filter{City: city})
}

// ByCategoryAndCity returns listings matching both slugs.
func (s *Service) ByCategoryAndCity(ctx context.Context, category, city string) ([]Property, error) {
	return s.res.List(ctx, resolver.Filter{Category: category, City: city})
}

// Featured returns the listings flagged for the landing page.
func (s *Service) Featured(ctx context.Context) ([]Property, error) {
	return s.res.List(ctx, resolver.Filter{Featured: true})
}

// Search matches query against title, city, category, and description.
func (s *Service) Search(ctx context.Context, query string) ([]Property, error) {
	return s.res.List(ctx, resolver.Filter{Search: query})
}

// ByID returns the listing with the given id, or resolver.ErrNotFound.
func (s *Service) ByID(ctx context.Context, id string) (Property, error) {
	return s.res.GetByID(ctx, id)
}

// ByURL resolves an SEO path: city, category, and slug must all match.
func (s *Service) ByURL(ctx context.Context, city, category, slugPart string) (Property, error) {
	return s.res.GetBySlug(ctx, city, category, slugPart)
}

// PropertyURL renders the canonical SEO path for a listing.
func (s *Service) PropertyURL(p Property) string {
	return "/" + slug.Make(p.City) + "/" + slug.Make(p.Category) + "/" + p.Slug
}

// Create submits a new listing. A missing slug is derived from the title.
func (s *Service) Create(ctx context.Context, p Property) (Property, error) {
	if p.Slug == "" {
		p.Slug = slug.Make(p.Title)
	}
	return s.res.Create(ctx, p)
}

// Update replaces the listing with the given id.
func (s *Service) Update(ctx context.Context, id string, p Property) error {
	return s.res.Update(ctx, id, p)
}

// Delete removes the listing with the given id.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.res.Delete(ctx, id)
}

// ToggleAvailability flips a listing between bookable and not. It reuses
// Update so the backend sees a full record with the new state.
func (s *Service) ToggleAvailability(ctx context.Context, id string, availability Availability) error {
	p, err := s.res.GetByID(ctx, id)
	if err != nil {
		return err
	}
	p.Availability = availability
	return s.res.Update(ctx, id, p)
}

// Categories returns the workspace types shown on browse pages.
func (s *Service) Categories() []Category {
	return SeedCategories()
}

// Cities returns the serviced locations shown on browse pages.
func (s *Service) Cities() []City {
	return SeedCities()
}
