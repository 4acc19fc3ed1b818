package unsplash

import (
	"context"
	"net/http"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const userJSON = `{
	"id": "pXhwzz1JtQU",
	"username": "jimmyexample",
	"name": "James Example",
	"total_likes": 20,
	"total_photos": 10,
	"total_collections": 5,
	"profile_image": {"small": "https://images.unsplash.com/small", "medium": "https://images.unsplash.com/medium", "large": "https://images.unsplash.com/large"},
	"links": {"self": "https://api.unsplash.com/users/jimmyexample"}
}`

func TestCurrentUser(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/me", r.URL.Path)
		assert.Empty(t, r.URL.RawQuery)
		assert.Equal(t, "Bearer user-token", r.Header.Get("Authorization"))
		w.Write([]byte(userJSON))
	}, WithBearerToken("user-token"))

	user, err := client.CurrentUser(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "jimmyexample", user.Username)
	assert.Equal(t, 10, user.TotalPhotos)
}

func TestCurrentUserRequiresBearerToken(t *testing.T) {
	client, err := NewClient("test-key", zerolog.Nop())
	require.NoError(t, err)

	_, err = client.CurrentUser(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bearer token is required")
}

func TestUpdateProfile(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/me", r.URL.Path)
		assert.Equal(t, "username=jimmy&location=Oslo&bio=photographer", r.URL.RawQuery)
		assert.Equal(t, "Bearer user-token", r.Header.Get("Authorization"))
		w.Write([]byte(userJSON))
	}, WithBearerToken("user-token"))

	user, err := client.UpdateProfile().
		Username("jimmy").
		Location("Oslo").
		Bio("photographer").
		Do(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "James Example", user.Name)
}

func TestUpdateProfileRequiresBearerToken(t *testing.T) {
	client, err := NewClient("test-key", zerolog.Nop())
	require.NoError(t, err)

	_, err = client.UpdateProfile().Bio("photographer").Do(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bearer token is required")
}
