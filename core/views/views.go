package views

import (
	"context"
	"log/slog"
	"net/url"

	"github.com/wishcowork/sitekit/core/client"
	"github.com/wishcowork/sitekit/core/logger"
	"github.com/wishcowork/sitekit/pkg/async"
)

// TopProperty is one row of the most-viewed ranking.
type TopProperty struct {
	PropertyID string `json:"property_id"`
	Title      string `json:"title"`
	Views      int    `json:"views"`
}

// Stats is the aggregate returned by the views endpoint.
type Stats struct {
	Success          bool          `json:"success"`
	TotalViews       int           `json:"total_views"`
	PropertiesViewed int           `json:"properties_viewed,omitempty"`
	DaysWithViews    int           `json:"days_with_views,omitempty"`
	TopProperties    []TopProperty `json:"top_properties,omitempty"`
}

type trackRequest struct {
	PropertyID string `json:"property_id"`
}

// Tracker records property page views and reads aggregate counters.
//
// Tracking is fire-and-forget and reads degrade to zero counts: analytics
// must never break a page render.
type Tracker struct {
	api *client.Client
	log *slog.Logger
}

// Option configures a Tracker.
type Option func(*Tracker)

// WithLogger sets the structured logger.
func WithLogger(log *slog.Logger) Option {
	return func(t *Tracker) {
		if log != nil {
			t.log = log
		}
	}
}

// NewTracker builds a view tracker over the shared API client.
func NewTracker(api *client.Client, opts ...Option) *Tracker {
	t := &Tracker{api: api, log: slog.Default()}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// TrackPropertyView records a view of the given listing without blocking the
// caller. The request runs in the background, detached from ctx cancellation,
// and failures are logged and swallowed. The returned future completes when
// the attempt finishes; callers rendering a page ignore it.
func (t *Tracker) TrackPropertyView(ctx context.Context, propertyID string) *async.Future[struct{}] {
	return async.Run(context.WithoutCancel(ctx), func(ctx context.Context) (struct{}, error) {
		if _, err := t.api.Post(ctx, "/views", nil, trackRequest{PropertyID: propertyID}); err != nil {
			t.log.Warn("view tracking failed",
				logger.Component("views"), logger.Resource(propertyID), logger.Error(err))
		}
		return struct{}{}, nil
	})
}

// TotalViews returns sitewide view statistics. On failure a zeroed Stats
// with Success false is returned, never an error.
func (t *Tracker) TotalViews(ctx context.Context) Stats {
	return t.fetch(ctx, nil)
}

// PropertyViews returns the view counter for one listing, zeroed on failure.
func (t *Tracker) PropertyViews(ctx context.Context, propertyID string) Stats {
	return t.fetch(ctx, url.Values{"property_id": {propertyID}})
}

func (t *Tracker) fetch(ctx context.Context, q url.Values) Stats {
	raw, err := t.api.Get(ctx, "/views", q)
	if err != nil {
		t.log.Warn("view stats fetch failed", logger.Component("views"), logger.Error(err))
		return Stats{}
	}
	stats, err := client.Single[Stats](raw, "views")
	if err != nil {
		t.log.Warn("view stats decode failed", logger.Component("views"), logger.Error(err))
		return Stats{}
	}
	return stats
}
