package mockapi_test

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wishcowork/sitekit/core/auth"
	"github.com/wishcowork/sitekit/core/catalog"
	"github.com/wishcowork/sitekit/core/client"
	"github.com/wishcowork/sitekit/core/content"
	"github.com/wishcowork/sitekit/core/pricing"
	"github.com/wishcowork/sitekit/core/settings"
	"github.com/wishcowork/sitekit/core/storage"
	"github.com/wishcowork/sitekit/core/views"
	"github.com/wishcowork/sitekit/mockapi"
	"github.com/wishcowork/sitekit/pkg/token"
)

// The mock backend is exercised through the real frontend services in live
// mode, so these tests double as end-to-end coverage of the HTTP contract.

func liveStack(t *testing.T) (*settings.Service, *client.Client) {
	t.Helper()
	srv := httptest.NewServer(mockapi.New().Handler())
	t.Cleanup(srv.Close)

	svc := settings.NewService(storage.NewMemory(),
		settings.WithDefaults(settings.Settings{APIURL: srv.URL}))
	t.Cleanup(func() { _ = svc.Close() })
	return svc, client.New(svc.APIURL)
}

func TestLogin_EndToEnd(t *testing.T) {
	svc, _ := liveStack(t)
	mgr := auth.NewManager(storage.NewMemory(), svc)
	t.Cleanup(func() { _ = mgr.Close() })
	ctx := context.Background()

	session, err := mgr.Login(ctx, "admin@wishcowork.com", "admin123").Await()
	require.NoError(t, err)
	assert.Equal(t, "Admin User", session.User.Name)
	assert.True(t, mgr.IsAdmin())

	claims, err := token.Decode(session.Token)
	require.NoError(t, err)
	assert.Equal(t, "admin@wishcowork.com", claims.Email)

	_, err = mgr.Login(ctx, "admin@wishcowork.com", "wrong").Await()
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestProperties_EndToEnd(t *testing.T) {
	svc, api := liveStack(t)
	cat := catalog.NewService(api, svc)
	ctx := context.Background()

	all, err := cat.All(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 8)

	coworking, err := cat.ByCategoryAndCity(ctx, "coworking", "mumbai")
	require.NoError(t, err)
	assert.Len(t, coworking, 2)

	p, err := cat.ByURL(ctx, "delhi", "virtual-office", "premium-virtual-office-connaught-place")
	require.NoError(t, err)
	assert.Equal(t, "1", p.ID)

	created, err := cat.Create(ctx, catalog.Property{
		Title:    "Quiet Corner Studio",
		Category: "private-office",
		City:     "delhi",
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	fetched, err := cat.ByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "quiet-corner-studio", fetched.Slug)

	require.NoError(t, cat.Delete(ctx, created.ID))
	_, err = cat.ByID(ctx, created.ID)
	assert.Error(t, err)
}

func TestBlogs_EndToEnd(t *testing.T) {
	svc, api := liveStack(t)
	blogs := content.NewBlogs(api, svc)
	ctx := context.Background()

	public, err := blogs.List(ctx, content.BlogQuery{})
	require.NoError(t, err)
	assert.Len(t, public, 2)

	created, err := blogs.Create(ctx, content.Blog{
		Title:       "Meeting Rooms Worth Booking",
		Author:      "Arjun Mehta",
		IsPublished: true,
	})
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	bySlug, err := blogs.Get(ctx, "meeting-rooms-worth-booking")
	require.NoError(t, err)
	assert.Equal(t, created.ID, bySlug.ID)

	bySlug.Title = "Meeting Rooms Worth Booking Twice"
	require.NoError(t, blogs.Update(ctx, bySlug.Slug, bySlug))

	updated, err := blogs.Get(ctx, bySlug.Slug)
	require.NoError(t, err)
	assert.Equal(t, "Meeting Rooms Worth Booking Twice", updated.Title)

	require.NoError(t, blogs.Delete(ctx, created.ID))
}

func TestEvents_EndToEnd(t *testing.T) {
	svc, api := liveStack(t)
	events := content.NewEvents(api, svc)
	ctx := context.Background()

	active, err := events.List(ctx, content.EventQuery{})
	require.NoError(t, err)
	assert.Len(t, active, 2)

	all, err := events.List(ctx, content.EventQuery{IncludeInactive: true})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	e, err := events.Get(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, "workshop", e.Category)
}

func TestPricing_EndToEnd(t *testing.T) {
	svc, api := liveStack(t)
	pr := pricing.NewService(api, svc)
	ctx := context.Background()

	plans, err := pr.Plans(ctx, false)
	require.NoError(t, err)
	assert.Len(t, plans, 4)

	all, err := pr.Plans(ctx, true)
	require.NoError(t, err)
	assert.Len(t, all, 5)

	created, err := pr.CreatePlan(ctx, pricing.Plan{Name: "Night Owl", Category: pricing.CategoryCoworking, IsActive: true})
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	created.Price = 399
	require.NoError(t, pr.UpdatePlan(ctx, created))
	require.NoError(t, pr.DeletePlan(ctx, created.ID))
}

func TestViews_EndToEnd(t *testing.T) {
	_, api := liveStack(t)
	tr := views.NewTracker(api)
	ctx := context.Background()

	for _, id := range []string{"5", "5", "1"} {
		_, err := tr.TrackPropertyView(ctx, id).Await()
		require.NoError(t, err)
	}

	stats := tr.TotalViews(ctx)
	assert.True(t, stats.Success)
	assert.Equal(t, 3, stats.TotalViews)
	assert.Equal(t, 2, stats.PropertiesViewed)
	require.NotEmpty(t, stats.TopProperties)
	assert.Equal(t, "5", stats.TopProperties[0].PropertyID)
	assert.Equal(t, "Luxury Coworking Hub - Powai", stats.TopProperties[0].Title)

	one := tr.PropertyViews(ctx, "1")
	assert.Equal(t, 1, one.TotalViews)
}
