package unsplash

import (
	"context"
	"net/http"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListPhotos(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/photos", r.URL.Path)
		assert.Equal(t, "page=2&per_page=30&order_by=Popular", r.URL.RawQuery)
		w.Write([]byte("[" + photoJSON + "," + photoJSON + "]"))
	})

	photos, err := client.ListPhotos().
		Page(2).
		PerPage(30).
		OrderBy(OrderPopular).
		Get(context.Background())
	require.NoError(t, err)
	assert.Len(t, photos, 2)
	assert.Equal(t, "Dwu85P9SOIk", photos[0].ID)
}

func TestListPhotosNoParams(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.URL.RawQuery)
		w.Write([]byte("[]"))
	})

	photos, err := client.ListPhotos().Get(context.Background())
	require.NoError(t, err)
	assert.Empty(t, photos)
}

func TestListPhotosZeroValuesPanic(t *testing.T) {
	client, err := NewClient("test-key", zerolog.Nop(), WithAPIURL("http://localhost:0"))
	require.NoError(t, err)

	assert.Panics(t, func() { client.ListPhotos().Page(0) })
	assert.Panics(t, func() { client.ListPhotos().PerPage(0) })
}
