package views_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wishcowork/sitekit/core/client"
	"github.com/wishcowork/sitekit/core/views"
)

func staticURL(u string) func() string {
	return func() string { return u }
}

func TestTrackPropertyView(t *testing.T) {
	var got map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/views", r.URL.Path)
		body, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(body, &got))
		_, _ = w.Write([]byte(`{"success":true}`))
	}))
	defer srv.Close()

	tr := views.NewTracker(client.New(staticURL(srv.URL)))
	_, err := tr.TrackPropertyView(context.Background(), "42").Await()

	require.NoError(t, err)
	assert.Equal(t, map[string]string{"property_id": "42"}, got)
}

func TestTrackPropertyView_DoesNotBlock(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
		_, _ = w.Write([]byte(`{"success":true}`))
	}))
	defer srv.Close()
	defer close(release)

	tr := views.NewTracker(client.New(staticURL(srv.URL)))

	done := make(chan struct{})
	go func() {
		tr.TrackPropertyView(context.Background(), "42")
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("tracking call blocked on the request round trip")
	}
}

func TestTrackPropertyView_SurvivesCanceledContext(t *testing.T) {
	var got map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(body, &got))
		_, _ = w.Write([]byte(`{"success":true}`))
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	tr := views.NewTracker(client.New(staticURL(srv.URL)))
	_, err := tr.TrackPropertyView(ctx, "42").Await()

	require.NoError(t, err)
	assert.Equal(t, map[string]string{"property_id": "42"}, got)
}

func TestTrackPropertyView_SwallowsFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	tr := views.NewTracker(client.New(staticURL(srv.URL)))
	// Must not panic or surface anything.
	_, err := tr.TrackPropertyView(context.Background(), "42").Await()
	require.NoError(t, err)
}

func TestTotalViews(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Empty(t, r.URL.RawQuery)
		_, _ = w.Write([]byte(`{"success":true,"total_views":1234,"properties_viewed":8,"top_properties":[{"property_id":"5","title":"Luxury Coworking Hub - Powai","views":312}]}`))
	}))
	defer srv.Close()

	tr := views.NewTracker(client.New(staticURL(srv.URL)))
	stats := tr.TotalViews(context.Background())

	assert.True(t, stats.Success)
	assert.Equal(t, 1234, stats.TotalViews)
	require.Len(t, stats.TopProperties, 1)
	assert.Equal(t, "5", stats.TopProperties[0].PropertyID)
}

func TestPropertyViews_QueryAndFallback(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "42", r.URL.Query().Get("property_id"))
		_, _ = w.Write([]byte(`{"success":true,"total_views":17}`))
	}))
	defer srv.Close()

	tr := views.NewTracker(client.New(staticURL(srv.URL)))
	stats := tr.PropertyViews(context.Background(), "42")
	assert.Equal(t, 17, stats.TotalViews)

	srv.Close()
	stats = tr.PropertyViews(context.Background(), "42")
	assert.False(t, stats.Success)
	assert.Zero(t, stats.TotalViews)
}
