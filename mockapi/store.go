package mockapi

import (
	"sync"

	"github.com/wishcowork/sitekit/core/catalog"
	"github.com/wishcowork/sitekit/core/content"
	"github.com/wishcowork/sitekit/core/pricing"
)

// store holds all mutable backend state behind one lock. Handler load is a
// test suite or one developer, so contention is not a concern.
type store struct {
	mu sync.RWMutex

	properties []catalog.Property
	blogs      []content.Blog
	news       []content.News
	events     []content.Event
	plans      []pricing.Plan
	addons     []pricing.AddonService
	faqs       []pricing.FAQ

	views map[string]int

	nextBlogID  int
	nextNewsID  int
	nextEventID int
	nextPlanID  int
	nextAddonID int
	nextFAQID   int
}

func newStore() *store {
	st := &store{
		properties: catalog.SeedProperties(),
		blogs:      content.SeedBlogs(),
		news:       content.SeedNews(),
		events:     content.SeedEvents(),
		plans:      pricing.SeedPlans(),
		addons:     pricing.SeedAddons(),
		faqs:       pricing.SeedFAQs(),
		views:      make(map[string]int),
	}
	st.nextBlogID = maxID(st.blogs, func(b content.Blog) int { return b.ID }) + 1
	st.nextNewsID = maxID(st.news, func(n content.News) int { return n.ID }) + 1
	st.nextEventID = maxID(st.events, func(e content.Event) int { return e.ID }) + 1
	st.nextPlanID = maxID(st.plans, func(p pricing.Plan) int { return p.ID }) + 1
	st.nextAddonID = maxID(st.addons, func(a pricing.AddonService) int { return a.ID }) + 1
	st.nextFAQID = maxID(st.faqs, func(f pricing.FAQ) int { return f.ID }) + 1
	return st
}

func maxID[T any](items []T, id func(T) int) int {
	max := 0
	for _, item := range items {
		if v := id(item); v > max {
			max = v
		}
	}
	return max
}
