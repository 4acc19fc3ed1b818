package unsplash

import (
	"context"
	"net/http"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const photoJSON = `{
	"id": "Dwu85P9SOIk",
	"created_at": "2016-05-03T11:00:28-04:00",
	"updated_at": "2016-07-10T11:00:01-05:00",
	"width": 2448,
	"height": 3264,
	"color": "#6E633A",
	"likes": 24,
	"liked_by_user": false,
	"description": "A man drinking a coffee.",
	"user": {"id": "QPxL2MGqfrw", "username": "exampleuser", "name": "Joe Example"},
	"current_user_collections": [],
	"urls": {"raw": "https://images.unsplash.com/raw", "full": "https://images.unsplash.com/full"},
	"links": {"self": "https://api.unsplash.com/photos/Dwu85P9SOIk", "download_location": "https://api.unsplash.com/photos/Dwu85P9SOIk/download"}
}`

func TestRandomPhotoBaseStage(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/photos/random", r.URL.Path)
		assert.Equal(t, "featured=true&orientation=Landscape", r.URL.RawQuery)
		w.Write([]byte(photoJSON))
	})

	photo, err := client.RandomPhoto().
		Featured(true).
		Orientation(OrientationLandscape).
		Get(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "Dwu85P9SOIk", photo.ID)
	assert.Equal(t, 2448, photo.Width)
	assert.Equal(t, "exampleuser", photo.User.Username)
	assert.Equal(t, 2016, photo.CreatedAt.Year())
}

func TestRandomPhotoAllBaseFilters(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "featured=false&username=ansel&w=1920&h=1080&orientation=Squarish", r.URL.RawQuery)
		w.Write([]byte(photoJSON))
	})

	_, err := client.RandomPhoto().
		Featured(false).
		Username("ansel").
		Width(1920).
		Height(1080).
		Orientation(OrientationSquarish).
		Get(context.Background())
	require.NoError(t, err)
}

func TestRandomPhotoOverwritesRepeatedFilter(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "featured=false", r.URL.RawQuery)
		w.Write([]byte(photoJSON))
	})

	_, err := client.RandomPhoto().
		Featured(true).
		Featured(false).
		Get(context.Background())
	require.NoError(t, err)
}

func TestRandomPhotoQueryCount(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "query=cats&count=3", r.URL.RawQuery)
		w.Write([]byte("[" + photoJSON + "," + photoJSON + "]"))
	})

	photos, err := client.RandomPhoto().
		Query("cats").
		Count(3).
		Get(context.Background())
	require.NoError(t, err)
	assert.Len(t, photos, 2)
}

func TestRandomPhotoQueryWithoutCount(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "query=mountains", r.URL.RawQuery)
		w.Write([]byte(photoJSON))
	})

	photo, err := client.RandomPhoto().
		Query("mountains").
		Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Dwu85P9SOIk", photo.ID)
}

func TestRandomPhotoCollections(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "collection=499830%2C194162", r.URL.RawQuery)
		w.Write([]byte(photoJSON))
	})

	_, err := client.RandomPhoto().
		Collections("499830", "194162").
		Get(context.Background())
	require.NoError(t, err)
}

func TestRandomPhotoCollectionsCount(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "featured=true&collection=499830&count=2", r.URL.RawQuery)
		w.Write([]byte("[" + photoJSON + "]"))
	})

	photos, err := client.RandomPhoto().
		Featured(true).
		Collections("499830").
		Count(2).
		Get(context.Background())
	require.NoError(t, err)
	assert.Len(t, photos, 1)
}

func TestRandomPhotoCountWithoutRestriction(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "count=5", r.URL.RawQuery)
		w.Write([]byte("[" + photoJSON + "]"))
	})

	photos, err := client.RandomPhoto().
		Count(5).
		Get(context.Background())
	require.NoError(t, err)
	assert.Len(t, photos, 1)
}

// The two-step orders that are expressible must flatten identically. The
// inexpressible combinations (query then collections, or any mutation after
// a count) simply do not compile, which is the builder's contract.
func TestRandomPhotoFlattenEquivalence(t *testing.T) {
	var queries []string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		queries = append(queries, r.URL.RawQuery)
		w.Write([]byte("[" + photoJSON + "]"))
	})

	base := client.RandomPhoto().Featured(true)

	_, err := base.Query("cats").Count(3).Get(context.Background())
	require.NoError(t, err)

	_, err = base.Query("cats").Count(3).Get(context.Background())
	require.NoError(t, err)

	require.Len(t, queries, 2)
	assert.Equal(t, queries[0], queries[1])
	assert.Equal(t, "featured=true&query=cats&count=3", queries[0])
}

func TestRandomPhotoZeroCountPanics(t *testing.T) {
	client, err := NewClient("test-key", zerolog.Nop(), WithAPIURL("http://localhost:0"))
	require.NoError(t, err)

	assert.Panics(t, func() { client.RandomPhoto().Count(0) })
	assert.Panics(t, func() { client.RandomPhoto().Query("cats").Count(0) })
	assert.Panics(t, func() { client.RandomPhoto().Collections("1").Count(0) })
}
