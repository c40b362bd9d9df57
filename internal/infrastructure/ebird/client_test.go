package ebird

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testClient(handler http.HandlerFunc) (*Client, *httptest.Server) {
	srv := httptest.NewServer(handler)
	c := NewClient("test-key")
	c.baseURL = srv.URL
	return c, srv
}

func TestRecentObservationsRenamesFields(t *testing.T) {
	c, srv := testClient(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/data/obs/ES-AV/recent", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("X-eBirdApiToken"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{
			"speciesCode": "grewag1",
			"comName": "Grey Wagtail",
			"sciName": "Motacilla cinerea",
			"obsDt": "2026-08-30 09:15",
			"howMany": 2,
			"locName": "Navarrevisca, río Alberche",
			"lat": 40.36,
			"lng": -4.94
		}]`))
	})
	defer srv.Close()

	obs, err := c.RecentObservations(context.Background(), "ES-AV")
	require.NoError(t, err)
	require.Len(t, obs, 1)

	assert.Equal(t, "Grey Wagtail", obs[0].Name)
	assert.Equal(t, "Motacilla cinerea", obs[0].ScientificName)
	assert.Equal(t, "2026-08-30 09:15", obs[0].ObservedAt)
	assert.Equal(t, 2, obs[0].Count)
	assert.Equal(t, "Navarrevisca, río Alberche", obs[0].Location)
	assert.InDelta(t, 40.36, obs[0].Latitude, 1e-9)
	assert.InDelta(t, -4.94, obs[0].Longitude, 1e-9)
}

func TestNotableObservationsPath(t *testing.T) {
	c, srv := testClient(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/data/obs/ES-AV/recent/notable", r.URL.Path)
		_, _ = w.Write([]byte(`[]`))
	})
	defer srv.Close()

	obs, err := c.NotableObservations(context.Background(), "ES-AV")
	require.NoError(t, err)
	assert.Empty(t, obs)
}

func TestHotspotsRenamesFields(t *testing.T) {
	c, srv := testClient(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/ref/hotspot/ES-AV", r.URL.Path)
		assert.Equal(t, "json", r.URL.Query().Get("fmt"))
		_, _ = w.Write([]byte(`[{
			"locId": "L123",
			"locName": "Puerto de Serranillos",
			"lat": 40.34,
			"lng": -4.91,
			"numSpeciesAllTime": 87,
			"latestObsDt": "2026-08-29"
		}]`))
	})
	defer srv.Close()

	hotspots, err := c.Hotspots(context.Background(), "ES-AV")
	require.NoError(t, err)
	require.Len(t, hotspots, 1)

	assert.Equal(t, "L123", hotspots[0].LocationID)
	assert.Equal(t, "Puerto de Serranillos", hotspots[0].Name)
	assert.Equal(t, 87, hotspots[0].NumSpecies)
}

func TestUpstreamErrorIsClassified(t *testing.T) {
	c, srv := testClient(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	})
	defer srv.Close()

	_, err := c.RecentObservations(context.Background(), "ES-AV")
	assert.ErrorIs(t, err, ErrUpstream)
}

func TestEnabled(t *testing.T) {
	assert.False(t, NewClient("").Enabled())
	assert.True(t, NewClient("k").Enabled())
}
