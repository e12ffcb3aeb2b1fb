package content

import (
	"context"
	"strconv"
	"time"

	"github.com/wishcowork/sitekit/core/client"
	"github.com/wishcowork/sitekit/core/resolver"
	"github.com/wishcowork/sitekit/core/settings"
)

// EventQuery narrows an event listing.
type EventQuery struct {
	IncludeInactive bool
	Category        string
	Upcoming        bool
	Limit           int
	Offset          int
}

func (q EventQuery) filter() resolver.Filter {
	return resolver.Filter{
		IncludeInactive: q.IncludeInactive,
		Category:        q.Category,
		Upcoming:        q.Upcoming,
		Limit:           q.Limit,
		Offset:          q.Offset,
	}
}

// Events serves the events calendar and its admin CRUD.
type Events struct {
	res *resolver.Resolver[Event]
	now func() time.Time
}

// EventsOption configures an Events service.
type EventsOption func(*Events)

// WithClock overrides the clock used for the upcoming filter.
func WithClock(now func() time.Time) EventsOption {
	return func(s *Events) {
		if now != nil {
			s.now = now
		}
	}
}

// NewEvents builds the events service over the shared API client and settings.
func NewEvents(api *client.Client, svc *settings.Service, opts ...EventsOption) *Events {
	s := &Events{now: time.Now}
	for _, opt := range opts {
		opt(s)
	}

	desc := resolver.Descriptor[Event]{
		Resource: "events",
		Singular: "event",
		ID:       func(e Event) string { return strconv.Itoa(e.ID) },
		SetID: func(e *Event, id string) {
			if v, err := strconv.Atoi(id); err == nil {
				e.ID = v
			}
		},
		Match: func(e Event, f resolver.Filter) bool {
			if !e.IsActive && !f.IncludeInactive {
				return false
			}
			if !resolver.EqualFold(f.Category, e.Category) {
				return false
			}
			if f.Upcoming && e.EventDate < s.now().Format("2006-01-02") {
				return false
			}
			return true
		},
		DisplayOrder:    func(e Event) int { return e.DisplayOrder },
		PathIdentifiers: true,
		Seed:            SeedEvents(),
	}
	s.res = resolver.New(desc, api, svc)
	return s
}

// List returns events matching the query, ordered for display.
func (s *Events) List(ctx context.Context, q EventQuery) ([]Event, error) {
	return s.res.List(ctx, q.filter())
}

// Upcoming returns active events on or after today.
func (s *Events) Upcoming(ctx context.Context) ([]Event, error) {
	return s.List(ctx, EventQuery{Upcoming: true})
}

// Get resolves an event by id.
func (s *Events) Get(ctx context.Context, id int) (Event, error) {
	return s.res.GetByID(ctx, strconv.Itoa(id))
}

// Create submits a new event.
func (s *Events) Create(ctx context.Context, e Event) (Event, error) {
	return s.res.Create(ctx, e)
}

// Update replaces the event with the given id.
func (s *Events) Update(ctx context.Context, id int, e Event) error {
	return s.res.Update(ctx, strconv.Itoa(id), e)
}

// Delete removes an event.
func (s *Events) Delete(ctx context.Context, id int) error {
	return s.res.Delete(ctx, strconv.Itoa(id))
}
