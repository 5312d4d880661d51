package clients

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeocodeClientSearch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/search", r.URL.Path)
		assert.Equal(t, "Varanasi", r.URL.Query().Get("name"))
		assert.Equal(t, "1", r.URL.Query().Get("count"))

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"results":[{"name":"Varanasi","latitude":25.3166,"longitude":83.0104,"country":"India","timezone":"Asia/Kolkata"}]}`)
	}))
	defer srv.Close()

	client := NewGeocodeClient(srv.URL)
	res, err := client.Search(context.Background(), "Varanasi")

	require.NoError(t, err)
	assert.Equal(t, "Varanasi", res.Name)
	assert.InDelta(t, 25.3166, res.Latitude, 1e-9)
	assert.InDelta(t, 83.0104, res.Longitude, 1e-9)
	assert.Equal(t, "Asia/Kolkata", res.Timezone)
}

func TestGeocodeClientSearchNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"generationtime_ms":0.5}`)
	}))
	defer srv.Close()

	client := NewGeocodeClient(srv.URL)
	res, err := client.Search(context.Background(), "Atlantis")

	assert.ErrorIs(t, err, ErrPlaceNotFound)
	assert.Nil(t, res)
}

func TestGeocodeClientSearchServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewGeocodeClient(srv.URL)
	_, err := client.Search(context.Background(), "Delhi")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected status code")
}
