package resolver_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wishcowork/sitekit/core/client"
	"github.com/wishcowork/sitekit/core/resolver"
	"github.com/wishcowork/sitekit/core/settings"
	"github.com/wishcowork/sitekit/core/storage"
)

type space struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Slug     string `json:"slug"`
	Category string `json:"category"`
	City     string `json:"city"`
	Featured bool   `json:"featured"`
	Order    int    `json:"displayOrder"`
}

var seed = []space{
	{ID: "1", Title: "Premium Virtual Office", Slug: "premium-virtual-office-connaught-place", Category: "virtual-office", City: "delhi", Featured: true, Order: 2},
	{ID: "2", Title: "Modern Coworking Space", Slug: "modern-coworking-space-bandra", Category: "coworking", City: "mumbai", Featured: true, Order: 1},
	{ID: "3", Title: "Executive Private Office", Slug: "executive-private-office-koramangala", Category: "private-office", City: "bangalore", Order: 3},
	{ID: "4", Title: "Luxury Coworking Hub", Slug: "luxury-coworking-hub-powai", Category: "Coworking", City: "mumbai", Order: 4},
}

func spaceDescriptor() resolver.Descriptor[space] {
	return resolver.Descriptor[space]{
		Resource: "properties",
		Singular: "property",
		ID:       func(s space) string { return s.ID },
		SetID:    func(s *space, id string) { s.ID = id },
		Match: func(s space, f resolver.Filter) bool {
			if !resolver.EqualFold(f.Category, s.Category) || !resolver.EqualFold(f.City, s.City) {
				return false
			}
			if f.Featured && !s.Featured {
				return false
			}
			return resolver.ContainsFold(f.Search, s.Title, s.City, s.Category)
		},
		SlugKey: func(s space) (string, string, string) {
			return s.City, s.Category, s.Slug
		},
		DisplayOrder: func(s space) int { return s.Order },
		Seed:         seed,
	}
}

func newSettings(t *testing.T, s settings.Settings) *settings.Service {
	t.Helper()
	svc := settings.NewService(storage.NewMemory(), settings.WithDefaults(s))
	t.Cleanup(func() { _ = svc.Close() })
	return svc
}

func mockResolver(t *testing.T) *resolver.Resolver[space] {
	t.Helper()
	svc := newSettings(t, settings.Settings{APIURL: "http://unused", UseMockAPI: true})
	api := client.New(svc.APIURL)
	return resolver.New(spaceDescriptor(), api, svc)
}

func liveResolver(t *testing.T, srvURL string) *resolver.Resolver[space] {
	t.Helper()
	svc := newSettings(t, settings.Settings{APIURL: srvURL, UseMockAPI: false})
	api := client.New(svc.APIURL)
	return resolver.New(spaceDescriptor(), api, svc)
}

func TestList_MockFilters(t *testing.T) {
	r := mockResolver(t)
	ctx := context.Background()

	t.Run("category is case-insensitive", func(t *testing.T) {
		items, err := r.List(ctx, resolver.Filter{Category: "coworking"})
		require.NoError(t, err)
		require.Len(t, items, 2)
		for _, item := range items {
			assert.True(t, strings.EqualFold("coworking", item.Category))
		}
	})

	t.Run("category and city combine", func(t *testing.T) {
		items, err := r.List(ctx, resolver.Filter{Category: "coworking", City: "mumbai"})
		require.NoError(t, err)
		assert.Len(t, items, 2)
	})

	t.Run("featured", func(t *testing.T) {
		items, err := r.List(ctx, resolver.Filter{Featured: true})
		require.NoError(t, err)
		assert.Len(t, items, 2)
	})

	t.Run("search substring case-insensitive", func(t *testing.T) {
		items, err := r.List(ctx, resolver.Filter{Search: "COWORKING"})
		require.NoError(t, err)
		assert.Len(t, items, 2)
	})

	t.Run("sorted ascending by display order", func(t *testing.T) {
		items, err := r.List(ctx, resolver.Filter{})
		require.NoError(t, err)
		require.Len(t, items, 4)
		for i := 1; i < len(items); i++ {
			assert.LessOrEqual(t, items[i-1].Order, items[i].Order)
		}
	})

	t.Run("limit and offset", func(t *testing.T) {
		items, err := r.List(ctx, resolver.Filter{Limit: 2, Offset: 1})
		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.Equal(t, "1", items[0].ID) // order 2 is second after sorting
	})
}

func TestList_LiveQueryMappingAndEnvelopes(t *testing.T) {
	var gotQuery atomic.Value
	body := atomic.Value{}
	body.Store(`{"data":[{"id":"9","title":"From API","displayOrder":1}]}`)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery.Store(r.URL.RawQuery)
		_, _ = w.Write([]byte(body.Load().(string)))
	}))
	defer srv.Close()

	r := liveResolver(t, srv.URL)
	ctx := context.Background()

	items, err := r.List(ctx, resolver.Filter{Category: "coworking", Featured: true, Search: "wifi"})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "9", items[0].ID)

	q := gotQuery.Load().(string)
	assert.Contains(t, q, "category=coworking")
	assert.Contains(t, q, "featured=true")
	assert.Contains(t, q, "search=wifi")

	// Alternate envelope shape.
	body.Store(`{"properties":[{"id":"10"},{"id":"11"}]}`)
	items, err = r.List(ctx, resolver.Filter{})
	require.NoError(t, err)
	assert.Len(t, items, 2)

	// Bare array.
	body.Store(`[{"id":"12"}]`)
	items, err = r.List(ctx, resolver.Filter{})
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestList_LiveFailureFallsBackToSnapshot(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // all requests fail at the transport level

	r := liveResolver(t, srv.URL)

	// First load: the seed is the last known good data.
	items, err := r.List(context.Background(), resolver.Filter{})
	require.NoError(t, err, "reads must never surface transport errors")
	assert.Len(t, items, len(seed))

	// Filters still apply to the fallback data.
	items, err = r.List(context.Background(), resolver.Filter{Category: "coworking"})
	require.NoError(t, err)
	assert.Len(t, items, 2)
}

func TestList_StaleResponseDiscarded(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Query().Get("category") {
		case "x":
			<-release // X's response arrives after Y's
			_, _ = w.Write([]byte(`{"data":[{"id":"X"}]}`))
		default:
			_, _ = w.Write([]byte(`{"data":[{"id":"Y"}]}`))
		}
	}))
	defer srv.Close()

	r := liveResolver(t, srv.URL)
	ctx := context.Background()

	staleDone := make(chan []space, 1)
	go func() {
		items, _ := r.List(ctx, resolver.Filter{Category: "x"})
		staleDone <- items
	}()

	// Give request X time to be issued before superseding it.
	time.Sleep(50 * time.Millisecond)

	fresh, err := r.List(ctx, resolver.Filter{Category: "y"})
	require.NoError(t, err)
	require.Len(t, fresh, 1)
	assert.Equal(t, "Y", fresh[0].ID)

	close(release)
	stale := <-staleDone

	// The superseded response must not win: the caller sees Y's data and the
	// snapshot still holds Y.
	require.Len(t, stale, 1)
	assert.Equal(t, "Y", stale[0].ID)
	snap := r.Snapshot()
	require.Len(t, snap, 1)
	assert.Equal(t, "Y", snap[0].ID)
}

func TestGetByID(t *testing.T) {
	r := mockResolver(t)
	ctx := context.Background()

	item, err := r.GetByID(ctx, "3")
	require.NoError(t, err)
	assert.Equal(t, "Executive Private Office", item.Title)

	_, err = r.GetByID(ctx, "999")
	assert.ErrorIs(t, err, resolver.ErrNotFound)
}

func TestGetBySlug_TriKeyContract(t *testing.T) {
	r := mockResolver(t)
	ctx := context.Background()

	item, err := r.GetBySlug(ctx, "delhi", "virtual-office", "premium-virtual-office-connaught-place")
	require.NoError(t, err)
	assert.Equal(t, "1", item.ID)

	// Case differences are tolerated on every component.
	item, err = r.GetBySlug(ctx, "Delhi", "Virtual-Office", "PREMIUM-VIRTUAL-OFFICE-CONNAUGHT-PLACE")
	require.NoError(t, err)
	assert.Equal(t, "1", item.ID)

	// Any single differing key is NotFound, never a partial match.
	_, err = r.GetBySlug(ctx, "mumbai", "virtual-office", "premium-virtual-office-connaught-place")
	assert.ErrorIs(t, err, resolver.ErrNotFound)
	_, err = r.GetBySlug(ctx, "delhi", "coworking", "premium-virtual-office-connaught-place")
	assert.ErrorIs(t, err, resolver.ErrNotFound)
	_, err = r.GetBySlug(ctx, "delhi", "virtual-office", "another-slug")
	assert.ErrorIs(t, err, resolver.ErrNotFound)
}

func TestGetBySlug_LiveEnforcesTriKey(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Backend matches by slug only and returns a delhi record.
		_, _ = w.Write([]byte(`{"data":{"id":"1","slug":"premium-virtual-office-connaught-place","category":"virtual-office","city":"delhi"}}`))
	}))
	defer srv.Close()

	r := liveResolver(t, srv.URL)
	ctx := context.Background()

	_, err := r.GetBySlug(ctx, "delhi", "virtual-office", "premium-virtual-office-connaught-place")
	require.NoError(t, err)

	// The record came back, but the requested city differs: NotFound.
	_, err = r.GetBySlug(ctx, "mumbai", "virtual-office", "premium-virtual-office-connaught-place")
	assert.ErrorIs(t, err, resolver.ErrNotFound)
}

func TestCreate_SuccessAssignsIDAndRefreshes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			_, _ = w.Write([]byte(`{"success":true,"message":"created","propertyId":"77"}`))
		default:
			_, _ = w.Write([]byte(`{"data":[{"id":"77","title":"New Space"}]}`))
		}
	}))
	defer srv.Close()

	r := liveResolver(t, srv.URL)

	created, err := r.Create(context.Background(), space{Title: "New Space"})
	require.NoError(t, err)
	assert.Equal(t, "77", created.ID)

	snap := r.Snapshot()
	require.Len(t, snap, 1)
	assert.Equal(t, "77", snap[0].ID)
}

func TestCreate_RejectedByBackend(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success":false,"message":"title required"}`))
	}))
	defer srv.Close()

	r := liveResolver(t, srv.URL)

	_, err := r.Create(context.Background(), space{})
	require.ErrorIs(t, err, resolver.ErrRejected)
	assert.Contains(t, err.Error(), "title required")

	// Snapshot untouched by the failed write.
	assert.Len(t, r.Snapshot(), len(seed))
}

func TestUpdateDelete_TransportErrorSurfaced(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	r := liveResolver(t, srv.URL)
	ctx := context.Background()

	err := r.Update(ctx, "1", space{Title: "x"})
	assert.ErrorIs(t, err, client.ErrTransport)

	err = r.Delete(ctx, "1")
	assert.ErrorIs(t, err, client.ErrTransport)

	assert.Len(t, r.Snapshot(), len(seed))
}

func TestUpdate_Success(t *testing.T) {
	var putQuery atomic.Value
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPut:
			putQuery.Store(r.URL.Query().Get("id"))
			_, _ = w.Write([]byte(`{"success":true,"message":"updated"}`))
		default:
			_, _ = w.Write([]byte(`{"data":[]}`))
		}
	}))
	defer srv.Close()

	r := liveResolver(t, srv.URL)

	require.NoError(t, r.Update(context.Background(), "5", space{Title: "renamed"}))
	assert.Equal(t, "5", putQuery.Load().(string))
}
