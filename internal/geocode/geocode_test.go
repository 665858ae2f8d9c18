package geocode

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rotisserie/eris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeocode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search", r.URL.Path)
		assert.Equal(t, "eiffel tower", r.URL.Query().Get("q"))
		assert.Equal(t, "json", r.URL.Query().Get("format"))
		assert.NotEmpty(t, r.Header.Get("User-Agent"))
		w.Write([]byte(`[{"display_name":"Tour Eiffel, Paris, France","lat":"48.8584","lon":"2.2945"}]`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	res, err := c.Geocode(context.Background(), "eiffel tower")
	require.NoError(t, err)

	assert.Equal(t, "Tour Eiffel, Paris, France", res.Name)
	assert.InDelta(t, 2.2945, res.Longitude, 1e-9)
	assert.InDelta(t, 48.8584, res.Latitude, 1e-9)
}

func TestGeocodeNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	_, err := c.Geocode(context.Background(), "xyzzyqqq")
	require.Error(t, err)
	assert.True(t, eris.Is(err, ErrNotFound))
}

func TestGeocodeServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	_, err := c.Geocode(context.Background(), "paris")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected status 502")
}

func TestGeocodeBadPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"lat":"not-a-number","lon":"2.0"}]`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	_, err := c.Geocode(context.Background(), "paris")
	require.Error(t, err)
}

func TestGeocodeContextCancel(t *testing.T) {
	c := NewClient("http://127.0.0.1:0")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := c.Geocode(ctx, "paris")
	require.Error(t, err)
}
