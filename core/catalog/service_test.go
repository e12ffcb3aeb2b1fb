package catalog_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wishcowork/sitekit/core/catalog"
	"github.com/wishcowork/sitekit/core/client"
	"github.com/wishcowork/sitekit/core/resolver"
	"github.com/wishcowork/sitekit/core/settings"
	"github.com/wishcowork/sitekit/core/storage"
)

func mockService(t *testing.T) *catalog.Service {
	t.Helper()
	svc := settings.NewService(storage.NewMemory(),
		settings.WithDefaults(settings.Settings{APIURL: "http://unused", UseMockAPI: true}))
	t.Cleanup(func() { _ = svc.Close() })
	return catalog.NewService(client.New(svc.APIURL), svc)
}

func liveService(t *testing.T, srvURL string) *catalog.Service {
	t.Helper()
	svc := settings.NewService(storage.NewMemory(),
		settings.WithDefaults(settings.Settings{APIURL: srvURL}))
	t.Cleanup(func() { _ = svc.Close() })
	return catalog.NewService(client.New(svc.APIURL), svc)
}

func TestAll_SeedDataset(t *testing.T) {
	s := mockService(t)

	props, err := s.All(context.Background())
	require.NoError(t, err)
	assert.Len(t, props, 8)
}

func TestByCategory(t *testing.T) {
	s := mockService(t)
	ctx := context.Background()

	props, err := s.ByCategory(ctx, "coworking")
	require.NoError(t, err)
	require.Len(t, props, 2)
	for _, p := range props {
		assert.Equal(t, "coworking", p.Category)
	}

	props, err = s.ByCategory(ctx, "meeting-room")
	require.NoError(t, err)
	assert.Len(t, props, 2)
}

func TestByCategoryAndCity(t *testing.T) {
	s := mockService(t)

	props, err := s.ByCategoryAndCity(context.Background(), "private-office", "bangalore")
	require.NoError(t, err)
	require.Len(t, props, 2)
	for _, p := range props {
		assert.Equal(t, "bangalore", p.City)
	}
}

func TestFeatured(t *testing.T) {
	s := mockService(t)

	props, err := s.Featured(context.Background())
	require.NoError(t, err)
	require.Len(t, props, 4)
	for _, p := range props {
		assert.True(t, p.Featured)
	}
}

func TestSearch_MatchesDescription(t *testing.T) {
	s := mockService(t)
	ctx := context.Background()

	// "GST" appears only in listing 1's amenity text and description.
	props, err := s.Search(ctx, "gst registration")
	require.NoError(t, err)
	require.Len(t, props, 1)
	assert.Equal(t, "1", props[0].ID)

	props, err = s.Search(ctx, "MUMBAI")
	require.NoError(t, err)
	assert.Len(t, props, 2)
}

func TestByURL(t *testing.T) {
	s := mockService(t)
	ctx := context.Background()

	p, err := s.ByURL(ctx, "delhi", "virtual-office", "premium-virtual-office-connaught-place")
	require.NoError(t, err)
	assert.Equal(t, "1", p.ID)

	_, err = s.ByURL(ctx, "mumbai", "virtual-office", "premium-virtual-office-connaught-place")
	assert.ErrorIs(t, err, resolver.ErrNotFound)
}

func TestPropertyURL(t *testing.T) {
	s := mockService(t)

	p, err := s.ByID(context.Background(), "2")
	require.NoError(t, err)
	assert.Equal(t, "/mumbai/coworking/modern-coworking-space-bandra", s.PropertyURL(p))
}

func TestCreate_DerivesSlugFromTitle(t *testing.T) {
	var posted catalog.Property
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			body, _ := io.ReadAll(r.Body)
			require.NoError(t, json.Unmarshal(body, &posted))
			_, _ = w.Write([]byte(`{"success":true,"message":"ok","propertyId":"42"}`))
		default:
			_, _ = w.Write([]byte(`{"data":[]}`))
		}
	}))
	defer srv.Close()

	s := liveService(t, srv.URL)

	created, err := s.Create(context.Background(), catalog.Property{
		Title:    "Harbour View Coworking!",
		Category: "coworking",
		City:     "mumbai",
	})
	require.NoError(t, err)
	assert.Equal(t, "42", created.ID)
	assert.Equal(t, "harbour-view-coworking", posted.Slug)
}

func TestToggleAvailability(t *testing.T) {
	var updated catalog.Property
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			if r.URL.Query().Get("id") != "" {
				_, _ = w.Write([]byte(`{"data":{"id":"3","title":"Executive Private Office","availability":"available"}}`))
				return
			}
			_, _ = w.Write([]byte(`{"data":[]}`))
		case http.MethodPut:
			body, _ := io.ReadAll(r.Body)
			require.NoError(t, json.Unmarshal(body, &updated))
			_, _ = w.Write([]byte(`{"success":true}`))
		}
	}))
	defer srv.Close()

	s := liveService(t, srv.URL)

	require.NoError(t, s.ToggleAvailability(context.Background(), "3", catalog.Unavailable))
	assert.Equal(t, catalog.Unavailable, updated.Availability)
	assert.Equal(t, "Executive Private Office", updated.Title)
}

func TestTaxonomies(t *testing.T) {
	s := mockService(t)

	cats := s.Categories()
	require.Len(t, cats, 4)
	assert.Equal(t, "virtual-office", cats[0].Slug)

	cities := s.Cities()
	require.Len(t, cities, 4)
	assert.Equal(t, "India", cities[0].Country)
}
