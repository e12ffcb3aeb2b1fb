package pricing

import (
	"context"
	"strconv"

	"github.com/wishcowork/sitekit/core/client"
	"github.com/wishcowork/sitekit/core/resolver"
	"github.com/wishcowork/sitekit/core/settings"
)

// Service serves the pricing page: membership plans, add-on services, and
// the FAQ block, each with its own admin CRUD.
type Service struct {
	plans  *resolver.Resolver[Plan]
	addons *resolver.Resolver[AddonService]
	faqs   *resolver.Resolver[FAQ]
}

// NewService builds the pricing service over the shared API client and
// settings.
func NewService(api *client.Client, svc *settings.Service) *Service {
	return &Service{
		plans: resolver.New(resolver.Descriptor[Plan]{
			Resource: "pricing/plans",
			Singular: "plan",
			ID:       func(p Plan) string { return strconv.Itoa(p.ID) },
			SetID: func(p *Plan, id string) {
				if v, err := strconv.Atoi(id); err == nil {
					p.ID = v
				}
			},
			Match: func(p Plan, f resolver.Filter) bool {
				return visible(p.IsActive, f) && resolver.EqualFold(f.Category, string(p.Category))
			},
			DisplayOrder: func(p Plan) int { return p.DisplayOrder },
			Seed:         SeedPlans(),
		}, api, svc),
		addons: resolver.New(resolver.Descriptor[AddonService]{
			Resource: "pricing/services",
			Singular: "service",
			ID:       func(a AddonService) string { return strconv.Itoa(a.ID) },
			SetID: func(a *AddonService, id string) {
				if v, err := strconv.Atoi(id); err == nil {
					a.ID = v
				}
			},
			Match: func(a AddonService, f resolver.Filter) bool {
				return visible(a.IsActive, f)
			},
			DisplayOrder: func(a AddonService) int { return a.DisplayOrder },
			Seed:         SeedAddons(),
		}, api, svc),
		faqs: resolver.New(resolver.Descriptor[FAQ]{
			Resource: "pricing/faqs",
			Singular: "faq",
			ID:       func(f FAQ) string { return strconv.Itoa(f.ID) },
			SetID: func(f *FAQ, id string) {
				if v, err := strconv.Atoi(id); err == nil {
					f.ID = v
				}
			},
			Match: func(q FAQ, f resolver.Filter) bool {
				return visible(q.IsActive, f)
			},
			DisplayOrder: func(f FAQ) int { return f.DisplayOrder },
			Seed:         SeedFAQs(),
		}, api, svc),
	}
}

// visible reports whether a record with the given active flag passes the
// filter's active constraint. Only active=true hides records; active=false
// and an unset flag both list everything.
func visible(isActive bool, f resolver.Filter) bool {
	return f.Active == nil || !*f.Active || isActive
}

// activeFlag maps the admin-facing includeInactive switch onto the backend's
// active parameter.
func activeFlag(includeInactive bool) resolver.Filter {
	active := !includeInactive
	return resolver.Filter{Active: &active}
}

// Plans returns membership tiers in display order. Inactive plans are
// hidden unless includeInactive is set.
func (s *Service) Plans(ctx context.Context, includeInactive bool) ([]Plan, error) {
	return s.plans.List(ctx, activeFlag(includeInactive))
}

// CreatePlan submits a new membership tier.
func (s *Service) CreatePlan(ctx context.Context, p Plan) (Plan, error) {
	return s.plans.Create(ctx, p)
}

// UpdatePlan replaces the plan carried in p, addressed by its id.
func (s *Service) UpdatePlan(ctx context.Context, p Plan) error {
	return s.plans.Update(ctx, strconv.Itoa(p.ID), p)
}

// DeletePlan removes a plan.
func (s *Service) DeletePlan(ctx context.Context, id int) error {
	return s.plans.Delete(ctx, strconv.Itoa(id))
}

// Addons returns a-la-carte services in display order.
func (s *Service) Addons(ctx context.Context, includeInactive bool) ([]AddonService, error) {
	return s.addons.List(ctx, activeFlag(includeInactive))
}

// CreateAddon submits a new add-on service.
func (s *Service) CreateAddon(ctx context.Context, a AddonService) (AddonService, error) {
	return s.addons.Create(ctx, a)
}

// UpdateAddon replaces the add-on carried in a, addressed by its id.
func (s *Service) UpdateAddon(ctx context.Context, a AddonService) error {
	return s.addons.Update(ctx, strconv.Itoa(a.ID), a)
}

// DeleteAddon removes an add-on service.
func (s *Service) DeleteAddon(ctx context.Context, id int) error {
	return s.addons.Delete(ctx, strconv.Itoa(id))
}

// FAQs returns pricing questions in display order.
func (s *Service) FAQs(ctx context.Context, includeInactive bool) ([]FAQ, error) {
	return s.faqs.List(ctx, activeFlag(includeInactive))
}

// CreateFAQ submits a new question.
func (s *Service) CreateFAQ(ctx context.Context, f FAQ) (FAQ, error) {
	return s.faqs.Create(ctx, f)
}

// UpdateFAQ replaces the question carried in f, addressed by its id.
func (s *Service) UpdateFAQ(ctx context.Context, f FAQ) error {
	return s.faqs.Update(ctx, strconv.Itoa(f.ID), f)
}

// DeleteFAQ removes a question.
func (s *Service) DeleteFAQ(ctx context.Context, id int) error {
	return s.faqs.Delete(ctx, strconv.Itoa(id))
}
